package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/domain/interfaces"
	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/secmon-lab/continuum/pkg/utils/errutil"
	"github.com/secmon-lab/continuum/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// Initialize opens the store, loads every record and seeds the starter set when
// both the resource and the activity tables are empty. An Open failure is logged
// and loading continues, so the failure surfaces from the first read.
func (uc *UseCases) Initialize(ctx context.Context) (*model.State, error) {
	logger := logging.From(ctx)

	if err := uc.repo.Open(ctx); err != nil {
		_ = errutil.Handle(ctx, err, "failed to open store")
	}

	state, err := LoadState(ctx, uc.repo)
	if err != nil {
		return nil, err
	}

	// Risks and strategies are not part of the emptiness check
	if len(state.Resources) > 0 || len(state.Activities) > 0 {
		logger.Debug("store already initialized",
			"resources", len(state.Resources),
			"activities", len(state.Activities),
			"risks", len(state.Risks),
			"strategies", len(state.Strategies),
		)
		return state, nil
	}

	seed := model.SeedData()
	if err := writeSeed(ctx, uc.repo, seed); err != nil {
		return nil, err
	}

	logger.Info("seeded empty store",
		"resources", len(seed.Resources),
		"activities", len(seed.Activities),
		"risks", len(seed.Risks),
		"strategies", len(seed.Strategies),
	)
	return seed, nil
}

// LoadState reads the four tables concurrently
func LoadState(ctx context.Context, repo interfaces.Repository) (*model.State, error) {
	state := model.NewState()
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		v, err := repo.Resource().List(ctx)
		if err != nil {
			return goerr.Wrap(err, "failed to list resources")
		}
		state.Resources = v
		return nil
	})
	eg.Go(func() error {
		v, err := repo.Activity().List(ctx)
		if err != nil {
			return goerr.Wrap(err, "failed to list activities")
		}
		state.Activities = v
		return nil
	})
	eg.Go(func() error {
		v, err := repo.Risk().List(ctx)
		if err != nil {
			return goerr.Wrap(err, "failed to list risks")
		}
		state.Risks = v
		return nil
	})
	eg.Go(func() error {
		v, err := repo.Strategy().List(ctx)
		if err != nil {
			return goerr.Wrap(err, "failed to list strategies")
		}
		state.Strategies = v
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to load records", goerr.T(model.ErrTagStoreUnavailable))
	}
	return state, nil
}

func writeSeed(ctx context.Context, repo interfaces.Repository, seed *model.State) error {
	for _, r := range seed.Resources {
		if err := repo.Resource().Put(ctx, r); err != nil {
			return goerr.Wrap(err, "failed to seed resource", goerr.V(ResourceIDKey, r.ID), goerr.T(model.ErrTagWriteFailed))
		}
	}
	for _, a := range seed.Activities {
		if err := repo.Activity().Put(ctx, a); err != nil {
			return goerr.Wrap(err, "failed to seed activity", goerr.V(ActivityIDKey, a.ID), goerr.T(model.ErrTagWriteFailed))
		}
	}
	for _, r := range seed.Risks {
		if err := repo.Risk().Put(ctx, r); err != nil {
			return goerr.Wrap(err, "failed to seed risk", goerr.V(RiskIDKey, r.ID), goerr.T(model.ErrTagWriteFailed))
		}
	}
	if err := repo.Strategy().PutMany(ctx, seed.Strategies); err != nil {
		return goerr.Wrap(err, "failed to seed strategies", goerr.T(model.ErrTagWriteFailed))
	}
	return nil
}
