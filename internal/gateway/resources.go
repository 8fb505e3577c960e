package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/deadsycode/lexdesk/internal/domain"
)

// Session is the result of a successful login.
type Session struct {
	Token     string `json:"token"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Login exchanges credentials for a bearer token. The token is returned to
// the caller; the client does not store it.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	var s Session
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &s); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &s, nil
}

func (c *Client) ListClients(ctx context.Context) ([]domain.Client, error) {
	var dtos []clientDTO
	if err := c.do(ctx, http.MethodGet, "/clients/get-all-clients", nil, &dtos); err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	return convert(dtos, clientDTO.toDomain), nil
}

// ListClientsByCountry returns the clients registered in one country.
func (c *Client) ListClientsByCountry(ctx context.Context, countryID int64) ([]domain.Client, error) {
	var dtos []clientDTO
	path := fmt.Sprintf("/clients/get-clients-by-country/%d", countryID)
	if err := c.do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, fmt.Errorf("listing clients of country %d: %w", countryID, err)
	}
	return convert(dtos, clientDTO.toDomain), nil
}

func (c *Client) ListMatters(ctx context.Context) ([]domain.Matter, error) {
	var dtos []matterDTO
	if err := c.do(ctx, http.MethodGet, "/matter/get-all-matters", nil, &dtos); err != nil {
		return nil, fmt.Errorf("listing matters: %w", err)
	}
	return convert(dtos, matterDTO.toDomain), nil
}

// ListMattersByClient returns the matters opened for one client.
func (c *Client) ListMattersByClient(ctx context.Context, clientID int64) ([]domain.Matter, error) {
	var dtos []matterDTO
	path := fmt.Sprintf("/matter/client/%d", clientID)
	if err := c.do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, fmt.Errorf("listing matters of client %d: %w", clientID, err)
	}
	return convert(dtos, matterDTO.toDomain), nil
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var dtos []userDTO
	if err := c.do(ctx, http.MethodGet, "/users/get-all-users", nil, &dtos); err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return convert(dtos, userDTO.toDomain), nil
}

func (c *Client) ListCountries(ctx context.Context) ([]domain.Country, error) {
	var dtos []domain.Country
	if err := c.do(ctx, http.MethodGet, "/countries/get-all-countries", nil, &dtos); err != nil {
		return nil, fmt.Errorf("listing countries: %w", err)
	}
	return dtos, nil
}

func (c *Client) ListTimeEntries(ctx context.Context) ([]domain.TimeEntry, error) {
	var dtos []timeEntryDTO
	if err := c.do(ctx, http.MethodGet, "/timeentry/get-all-time-entries", nil, &dtos); err != nil {
		return nil, fmt.Errorf("listing time entries: %w", err)
	}
	return convert(dtos, timeEntryDTO.toDomain), nil
}

// RegisterTimeEntry creates a time entry and returns it as stored.
func (c *Client) RegisterTimeEntry(ctx context.Context, e domain.NewTimeEntry) (*domain.TimeEntry, error) {
	var dto timeEntryDTO
	if err := c.do(ctx, http.MethodPost, "/timeentry/register-time-entry", newTimeEntryFromDomain(e), &dto); err != nil {
		return nil, fmt.Errorf("registering time entry: %w", err)
	}
	created := dto.toDomain()
	return &created, nil
}

func (c *Client) DeleteTimeEntry(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/timeentry/%d", id), nil, nil); err != nil {
		return fmt.Errorf("deleting time entry %d: %w", id, err)
	}
	return nil
}

func (c *Client) ListProcessTypes(ctx context.Context) ([]domain.ProcessType, error) {
	var dtos []processTypeDTO
	if err := c.do(ctx, http.MethodGet, "/processtypes/get-all", nil, &dtos); err != nil {
		return nil, fmt.Errorf("listing process types: %w", err)
	}
	return convert(dtos, processTypeDTO.toDomain), nil
}

// ListProcessPhases returns the phases of a process type in API order.
// A zero id returns no phases without calling the API.
func (c *Client) ListProcessPhases(ctx context.Context, processTypeID int64) ([]domain.ProcessPhase, error) {
	if processTypeID == 0 {
		return []domain.ProcessPhase{}, nil
	}
	var dtos []processPhaseDTO
	path := fmt.Sprintf("/processphases/by-process-type/%d", processTypeID)
	if err := c.do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, fmt.Errorf("listing phases of process type %d: %w", processTypeID, err)
	}
	return convert(dtos, processPhaseDTO.toDomain), nil
}
