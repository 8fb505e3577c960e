package formatter

import (
	"fmt"

	"github.com/deadsycode/lexdesk/internal/domain"
)

// FormatClients renders the client listing.
func FormatClients(clients []domain.Client) string {
	if len(clients) == 0 {
		return Dim("No clients.") + "\n"
	}
	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []string{
			StyleDim.Render(fmt.Sprint(c.ID)),
			Bold(c.DisplayName()),
			OrDash(c.BusinessName),
			OrDash(c.CountryName),
		})
	}
	return RenderTable([]string{"ID", "CLIENT", "BUSINESS NAME", "COUNTRY"}, rows)
}

// FormatMatters renders the matter listing. Matters without a client show
// the unknown-client label dimmed.
func FormatMatters(matters []domain.Matter) string {
	if len(matters) == 0 {
		return Dim("No matters.") + "\n"
	}
	rows := make([][]string, 0, len(matters))
	for _, m := range matters {
		client := OrDash(m.ClientName)
		if m.ClientID == nil {
			client = Dim(domain.UnknownClientLabel)
		}
		rows = append(rows, []string{
			StyleDim.Render(fmt.Sprint(m.ID)),
			Bold(domain.CoalesceStr(m.Name, domain.UnknownMatterLabel)),
			client,
		})
	}
	return RenderTable([]string{"ID", "MATTER", "CLIENT"}, rows)
}

// FormatUsers renders the staff listing.
func FormatUsers(users []domain.User) string {
	if len(users) == 0 {
		return Dim("No users.") + "\n"
	}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			StyleDim.Render(fmt.Sprint(u.ID)),
			Bold(u.FullName()),
			u.Email,
			u.Role(),
			OrDash(u.State),
		})
	}
	return RenderTable([]string{"ID", "NAME", "EMAIL", "ROLE", "STATE"}, rows)
}

// FormatCountries renders the country catalogue.
func FormatCountries(countries []domain.Country) string {
	if len(countries) == 0 {
		return Dim("No countries.") + "\n"
	}
	rows := make([][]string, 0, len(countries))
	for _, c := range countries {
		rows = append(rows, []string{
			StyleDim.Render(fmt.Sprint(c.ID)),
			Bold(c.Name()),
			OrDash(c.ISOCode3),
		})
	}
	return RenderTable([]string{"ID", "COUNTRY", "ISO"}, rows)
}
