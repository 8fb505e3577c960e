package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/deadsycode/lexdesk/internal/domain"
	"github.com/deadsycode/lexdesk/internal/service"
)

// newEntryForm builds the time entry form. The matter list follows the
// chosen client.
func newEntryForm(ctx context.Context, dir service.DirectoryService, in *entryInput) (*huh.Form, error) {
	if dir == nil {
		return nil, errors.New("entry form needs a client directory")
	}
	clients, err := dir.Clients(ctx, service.ClientFilter{})
	if err != nil {
		return nil, err
	}
	matters, err := dir.Matters(ctx, service.MatterFilter{})
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, errors.New("no clients available")
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int64]().
				Title("Client").
				Options(clientOptions(clients)...).
				Value(&in.ClientID),
			huh.NewSelect[int64]().
				Title("Matter").
				OptionsFunc(func() []huh.Option[int64] {
					return matterOptions(matters, in.ClientID)
				}, &in.ClientID).
				Value(&in.MatterID).
				Validate(requirePositive("matter")),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&in.Date).
				Validate(validateDate),
			huh.NewInput().
				Title("Start").
				Placeholder("HH:MM").
				Value(&in.Start).
				Validate(validateClock),
			huh.NewInput().
				Title("End").
				Placeholder("HH:MM").
				Value(&in.End).
				Validate(validateClock),
			huh.NewText().
				Title("Description").
				Value(&in.Description),
		),
	).WithTheme(lexdeskHuhTheme()).WithShowHelp(false), nil
}

func clientOptions(clients []domain.Client) []huh.Option[int64] {
	opts := make([]huh.Option[int64], 0, len(clients))
	for i := range clients {
		opts = append(opts, huh.NewOption(clients[i].DisplayName(), clients[i].ID))
	}
	return opts
}

// matterOptions lists the matters of clientID. Orphaned matters are never
// offered.
func matterOptions(matters []domain.Matter, clientID int64) []huh.Option[int64] {
	var opts []huh.Option[int64]
	for _, m := range matters {
		if domain.SameID(m.ClientID, &clientID) {
			opts = append(opts, huh.NewOption(m.Name, m.ID))
		}
	}
	return opts
}

func requirePositive(field string) func(int64) error {
	return func(v int64) error {
		if v <= 0 {
			return fmt.Errorf("choose a %s", field)
		}
		return nil
	}
}

func validateDate(s string) error {
	_, err := parseDate(s)
	return err
}

func validateClock(s string) error {
	_, err := parseClock(s)
	return err
}
