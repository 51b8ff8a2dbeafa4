package usecase

import (
	"context"
	"fmt"

	"github.com/mailajoket/stats-api/internal/tablestore"
)

// StoreProvider hands out the current table store. The app wires this to
// the cached workbook loader, so a provider call is cheap after the first
// load and a reload swaps the store atomically.
type StoreProvider interface {
	Store(ctx context.Context) (*tablestore.Store, error)
}

func resolveStore(ctx context.Context, provider StoreProvider) (*tablestore.Store, error) {
	store, err := provider.Store(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load table store: %v", ErrDependencyUnavailable, err)
	}
	return store, nil
}

// selectedTeamID resolves the configured team name against the store,
// aliases included. A nil result is not an error: views degrade to
// not-applicable perspectives instead.
func selectedTeamID(store *tablestore.Store, teamName string) *int64 {
	if id, ok := store.TeamIDByName(teamName); ok {
		return &id
	}
	return nil
}
