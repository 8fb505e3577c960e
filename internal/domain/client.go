package domain

// Client is a customer of the firm. Read-only to this module.
type Client struct {
	ID           int64  `json:"id"`
	ShortName    string `json:"shortName"`
	BusinessName string `json:"businessName"`
	CountryID    int64  `json:"countryId"`
	CountryName  string `json:"countryName,omitempty"`
}

// DisplayName returns the short name, falling back to the business name.
func (c *Client) DisplayName() string {
	return CoalesceStr(c.ShortName, c.BusinessName, UnknownClientLabel)
}

// Matter is a case or engagement opened for a client.
type Matter struct {
	ID         int64  `json:"id"`
	ClientID   *int64 `json:"clientId,omitempty"`
	Name       string `json:"name,omitempty"`
	ClientName string `json:"clientName,omitempty"`
}
