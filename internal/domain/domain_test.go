package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		client Client
		want   string
	}{
		{"short name", Client{ShortName: "ACME", BusinessName: "ACME S.A."}, "ACME"},
		{"blank short name", Client{ShortName: "  ", BusinessName: "ACME S.A."}, "ACME S.A."},
		{"no names", Client{}, UnknownClientLabel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.client.DisplayName())
		})
	}
}

func TestSameID(t *testing.T) {
	assert.True(t, SameID(Int64Ptr(4), Int64Ptr(4)))
	assert.False(t, SameID(Int64Ptr(4), Int64Ptr(5)))
	assert.False(t, SameID(nil, Int64Ptr(4)))
	assert.False(t, SameID(nil, nil))
}

func TestCoalesceStr(t *testing.T) {
	assert.Equal(t, "b", CoalesceStr("", " ", "b", "c"))
	assert.Equal(t, "", CoalesceStr())
}

func TestUserFullNameAndRole(t *testing.T) {
	u := User{FirstName: "Ana", LastName: "Paz", Email: "ana@firm.test"}
	assert.Equal(t, "Ana Paz", u.FullName())
	assert.Equal(t, DefaultRoleLabel, u.Role())

	u = User{Email: "ops@firm.test", RoleName: "Partner"}
	assert.Equal(t, "ops@firm.test", u.FullName())
	assert.Equal(t, "Partner", u.Role())
}

func TestCountryName(t *testing.T) {
	assert.Equal(t, "Argentina", (&Country{DescriptionEN: "Argentina", DescriptionES: "Argentina"}).Name())
	assert.Equal(t, "España", (&Country{DescriptionES: "España", Code: "ES"}).Name())
	assert.Equal(t, "UY", (&Country{Code: "UY"}).Name())
}
