package domain

import "strings"

// DefaultRoleLabel is shown for users without a role name.
const DefaultRoleLabel = "Team Member"

// User is a member of the firm's staff. Read-only to this module.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	RoleID    int64  `json:"roleId"`
	RoleName  string `json:"roleName,omitempty"`
	State     string `json:"state,omitempty"`
	Type      string `json:"type,omitempty"`
	ChiefID   *int64 `json:"chiefId,omitempty"`
}

// FullName joins first and last name, falling back to the email.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	return CoalesceStr(name, u.Email)
}

// Role returns the role name or DefaultRoleLabel.
func (u *User) Role() string {
	return CoalesceStr(u.RoleName, DefaultRoleLabel)
}

// Country is an entry of the API's country catalogue.
type Country struct {
	ID            int64  `json:"id"`
	DescriptionEN string `json:"descriptionEN"`
	DescriptionES string `json:"descriptionES,omitempty"`
	Code          string `json:"code,omitempty"`
	ISOCode2      string `json:"isoCode2,omitempty"`
	ISOCode3      string `json:"isoCode3,omitempty"`
}

// Name prefers the English description.
func (c *Country) Name() string {
	return CoalesceStr(c.DescriptionEN, c.DescriptionES, c.Code)
}
