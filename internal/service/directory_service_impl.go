package service

import (
	"context"
	"fmt"
	"time"

	"github.com/deadsycode/lexdesk/internal/domain"
)

// ClientFilter narrows a client listing. A nil CountryID lists every client.
type ClientFilter struct {
	CountryID *int64
}

// MatterFilter narrows a matter listing. A nil ClientID lists every matter.
type MatterFilter struct {
	ClientID *int64
}

type directoryService struct {
	src      DataSource
	observer UseCaseObserver
}

func NewDirectoryService(src DataSource, observers ...UseCaseObserver) DirectoryService {
	return &directoryService{src: src, observer: useCaseObserverOrNoop(observers)}
}

func (s *directoryService) Clients(ctx context.Context, f ClientFilter) (clients []domain.Client, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "list-clients", time.Now().UTC(), fields, &err)

	if f.CountryID == nil {
		clients, err = s.src.ListClients(ctx)
	} else {
		if *f.CountryID <= 0 {
			return nil, fmt.Errorf("%w: country id must be positive", ErrInvalidInput)
		}
		fields["country"] = *f.CountryID
		clients, err = s.src.ListClientsByCountry(ctx, *f.CountryID)
	}
	if err != nil {
		return nil, fmt.Errorf("loading clients: %w", err)
	}
	fields["clients"] = len(clients)
	return clients, nil
}

// Matters lists every matter, or those of f.ClientID through the API's
// per-client route.
func (s *directoryService) Matters(ctx context.Context, f MatterFilter) (matters []domain.Matter, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "list-matters", time.Now().UTC(), fields, &err)

	if f.ClientID == nil {
		matters, err = s.src.ListMatters(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading matters: %w", err)
		}
		fields["matters"] = len(matters)
		return matters, nil
	}

	id := *f.ClientID
	if id <= 0 {
		return nil, fmt.Errorf("%w: client id must be positive", ErrInvalidInput)
	}
	fields["client"] = id
	matters, err = s.src.ListMattersByClient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading matters of client %d: %w", id, err)
	}
	fields["matters"] = len(matters)
	return matters, nil
}

func (s *directoryService) Users(ctx context.Context) (users []domain.User, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "list-users", time.Now().UTC(), fields, &err)

	users, err = s.src.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}
	fields["users"] = len(users)
	return users, nil
}

func (s *directoryService) Countries(ctx context.Context) (countries []domain.Country, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "list-countries", time.Now().UTC(), fields, &err)

	countries, err = s.src.ListCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading countries: %w", err)
	}
	fields["countries"] = len(countries)
	return countries, nil
}
