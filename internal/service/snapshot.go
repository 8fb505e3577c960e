package service

import (
	"context"
	"fmt"

	"github.com/deadsycode/lexdesk/internal/domain"
	"golang.org/x/sync/errgroup"
)

// snapshot is the user, client, matter and entry listing loaded together.
type snapshot struct {
	users   []domain.User
	clients []domain.Client
	matters []domain.Matter
	entries []domain.TimeEntry
}

// loadSnapshot fetches the listings concurrently. The first failure cancels
// the others. Users are only fetched when withUsers is set.
func loadSnapshot(ctx context.Context, src DataSource, withUsers bool) (snapshot, error) {
	var snap snapshot
	g, gctx := errgroup.WithContext(ctx)
	if withUsers {
		g.Go(func() error {
			users, err := src.ListUsers(gctx)
			snap.users = users
			return err
		})
	}
	g.Go(func() error {
		clients, err := src.ListClients(gctx)
		snap.clients = clients
		return err
	})
	g.Go(func() error {
		matters, err := src.ListMatters(gctx)
		snap.matters = matters
		return err
	})
	g.Go(func() error {
		entries, err := src.ListTimeEntries(gctx)
		snap.entries = entries
		return err
	})
	if err := g.Wait(); err != nil {
		return snapshot{}, fmt.Errorf("loading back-office data: %w", err)
	}
	return snap, nil
}
