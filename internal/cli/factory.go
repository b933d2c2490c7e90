// Package cli parses the command line and wires commands to the planner.
package cli

import (
	"context"
	"fmt"

	"weekplan/internal/backend/localstorage"
	"weekplan/internal/config"
	"weekplan/internal/planner"
	"weekplan/internal/service"
)

// PlannerFactory builds the production service: a planner.Store hydrated
// from the on-disk storage slot, with the draft kept in the same directory.
func PlannerFactory(ctx context.Context, cfg *config.Config) (service.Service, error) {
	if err := cfg.EnsureDir(); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	logger := cfg.Log()

	client := localstorage.New(cfg.Filesystem(), cfg.StorageDir,
		localstorage.WithTasksKey(cfg.StorageKey),
		localstorage.WithLogger(logger),
	)
	store := planner.NewStore(client,
		planner.WithLogger(logger),
		planner.WithLayout(cfg.DateLayout),
	)
	if err := store.Load(ctx); err != nil {
		return nil, err
	}
	return service.NewPlanner(store, client, logger), nil
}
