package usecase

import (
	"context"
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/domain/interfaces"
	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/secmon-lab/continuum/pkg/utils/logging"
)

// RecordUseCase writes records through to the store. Every method takes the current
// state and returns the next one; the in-memory state only changes after the store
// confirmed the write. On failure the given state is returned unchanged with the error.
type RecordUseCase struct {
	repo   interfaces.Repository
	strict bool
}

func NewRecordUseCase(repo interfaces.Repository, strict bool) *RecordUseCase {
	return &RecordUseCase{
		repo:   repo,
		strict: strict,
	}
}

// SaveResource creates the resource when its id is empty, otherwise replaces it
func (uc *RecordUseCase) SaveResource(ctx context.Context, state *model.State, resource *model.Resource) (*model.State, *model.Resource, error) {
	if err := resource.Validate(); err != nil {
		return state, nil, err
	}

	saved := resource.Clone()
	if saved.ID == "" {
		saved.ID = model.NewID()
	}

	if err := uc.repo.Resource().Put(ctx, saved); err != nil {
		return state, nil, goerr.Wrap(err, "failed to save resource",
			goerr.V(ResourceIDKey, saved.ID), goerr.T(model.ErrTagWriteFailed))
	}

	logging.From(ctx).Debug("resource saved", "id", saved.ID)
	return state.WithResource(saved), saved, nil
}

// DeleteResource removes the resource. Activities keep their references to it.
func (uc *RecordUseCase) DeleteResource(ctx context.Context, state *model.State, id string) (*model.State, error) {
	if err := uc.repo.Resource().Delete(ctx, id); err != nil {
		return state, goerr.Wrap(err, "failed to delete resource",
			goerr.V(ResourceIDKey, id), goerr.T(model.ErrTagWriteFailed))
	}
	return state.WithoutResource(id), nil
}

// SaveActivity creates the activity when its id is empty, otherwise replaces it
func (uc *RecordUseCase) SaveActivity(ctx context.Context, state *model.State, activity *model.Activity) (*model.State, *model.Activity, error) {
	if err := activity.Validate(); err != nil {
		return state, nil, err
	}
	if uc.strict {
		for _, id := range activity.Resources {
			if state.FindResource(id) == nil {
				return state, nil, goerr.Wrap(model.ErrDanglingReference, "activity refers to an unknown resource",
					goerr.V(model.FieldKey, "resources"), goerr.V(ResourceIDKey, id), goerr.T(model.ErrTagValidation))
			}
		}
	}

	saved := activity.Clone()
	if saved.ID == "" {
		saved.ID = model.NewID()
	}
	saved.Normalize()

	if err := uc.repo.Activity().Put(ctx, saved); err != nil {
		return state, nil, goerr.Wrap(err, "failed to save activity",
			goerr.V(ActivityIDKey, saved.ID), goerr.T(model.ErrTagWriteFailed))
	}

	logging.From(ctx).Debug("activity saved", "id", saved.ID)
	return state.WithActivity(saved), saved, nil
}

// DeleteActivity removes the activity. Strategies and risks referring to it are kept.
func (uc *RecordUseCase) DeleteActivity(ctx context.Context, state *model.State, id string) (*model.State, error) {
	if err := uc.repo.Activity().Delete(ctx, id); err != nil {
		return state, goerr.Wrap(err, "failed to delete activity",
			goerr.V(ActivityIDKey, id), goerr.T(model.ErrTagWriteFailed))
	}
	return state.WithoutActivity(id), nil
}

// SaveRisk creates the risk when its id is empty, otherwise replaces it
func (uc *RecordUseCase) SaveRisk(ctx context.Context, state *model.State, risk *model.Risk) (*model.State, *model.Risk, error) {
	if err := risk.Validate(); err != nil {
		return state, nil, err
	}
	if uc.strict {
		for _, id := range risk.RelatedActivityIDs {
			if state.FindActivity(id) == nil {
				return state, nil, goerr.Wrap(model.ErrDanglingReference, "risk refers to an unknown activity",
					goerr.V(model.FieldKey, "relatedActivityIds"), goerr.V(ActivityIDKey, id), goerr.T(model.ErrTagValidation))
			}
		}
	}

	saved := risk.Clone()
	if saved.ID == "" {
		saved.ID = model.NewID()
	}
	saved.Normalize()

	if err := uc.repo.Risk().Put(ctx, saved); err != nil {
		return state, nil, goerr.Wrap(err, "failed to save risk",
			goerr.V(RiskIDKey, saved.ID), goerr.T(model.ErrTagWriteFailed))
	}

	logging.From(ctx).Debug("risk saved", "id", saved.ID, "score", saved.Score())
	return state.WithRisk(saved), saved, nil
}

// DeleteRisk removes the risk
func (uc *RecordUseCase) DeleteRisk(ctx context.Context, state *model.State, id string) (*model.State, error) {
	if err := uc.repo.Risk().Delete(ctx, id); err != nil {
		return state, goerr.Wrap(err, "failed to delete risk",
			goerr.V(RiskIDKey, id), goerr.T(model.ErrTagWriteFailed))
	}
	return state.WithoutRisk(id), nil
}

// SaveStrategy creates or replaces a strategy. The selection flag is owned by
// SelectStrategy: new strategies start unselected and edits keep the stored flag.
func (uc *RecordUseCase) SaveStrategy(ctx context.Context, state *model.State, strategy *model.RecoveryStrategy) (*model.State, *model.RecoveryStrategy, error) {
	if err := strategy.Validate(); err != nil {
		return state, nil, err
	}
	if uc.strict && state.FindActivity(strategy.ActivityID) == nil {
		return state, nil, goerr.Wrap(model.ErrDanglingReference, "strategy refers to an unknown activity",
			goerr.V(model.FieldKey, "activityId"), goerr.V(ActivityIDKey, strategy.ActivityID), goerr.T(model.ErrTagValidation))
	}

	saved := strategy.Clone()
	saved.IsSelected = false
	if saved.ID == "" {
		saved.ID = model.NewID()
	} else if current := state.FindStrategy(saved.ID); current != nil {
		saved.IsSelected = current.IsSelected
		// a selected strategy moved to an activity that already has one loses its flag
		if saved.IsSelected && current.ActivityID != saved.ActivityID && state.SelectedStrategy(saved.ActivityID) != nil {
			saved.IsSelected = false
		}
	}

	if err := uc.repo.Strategy().Put(ctx, saved); err != nil {
		return state, nil, goerr.Wrap(err, "failed to save strategy",
			goerr.V(StrategyIDKey, saved.ID), goerr.T(model.ErrTagWriteFailed))
	}

	logging.From(ctx).Debug("strategy saved", "id", saved.ID, "activity_id", saved.ActivityID)
	return state.WithStrategy(saved), saved, nil
}

// DeleteStrategy removes the strategy. Deleting the selected one leaves the activity uncovered.
func (uc *RecordUseCase) DeleteStrategy(ctx context.Context, state *model.State, id string) (*model.State, error) {
	if err := uc.repo.Strategy().Delete(ctx, id); err != nil {
		return state, goerr.Wrap(err, "failed to delete strategy",
			goerr.V(StrategyIDKey, id), goerr.T(model.ErrTagWriteFailed))
	}
	return state.WithoutStrategy(id), nil
}

// SelectStrategy marks the strategy as the selected one of its activity and clears
// the flag on every other strategy of that activity. The activity's strategies are
// read from the store so selections the state has not seen are cleared too. All
// changed strategies are written in one batch, so readers never see zero or two
// selections.
func (uc *RecordUseCase) SelectStrategy(ctx context.Context, state *model.State, strategyID string) (*model.State, error) {
	target := state.FindStrategy(strategyID)
	if target == nil {
		return state, goerr.Wrap(ErrStrategyNotFound, "cannot select strategy",
			goerr.V(StrategyIDKey, strategyID), goerr.T(model.ErrTagNotFound))
	}

	stored, err := uc.repo.Strategy().ListByActivity(ctx, target.ActivityID)
	if err != nil {
		return state, goerr.Wrap(err, "failed to read strategies of activity",
			goerr.V(ActivityIDKey, target.ActivityID), goerr.T(model.ErrTagStoreUnavailable))
	}
	if !slices.ContainsFunc(stored, func(s *model.RecoveryStrategy) bool { return s.ID == strategyID }) {
		return state, goerr.Wrap(ErrStrategyNotFound, "strategy is no longer stored",
			goerr.V(StrategyIDKey, strategyID), goerr.T(model.ErrTagNotFound))
	}

	var batch []*model.RecoveryStrategy
	for _, s := range stored {
		want := s.ID == strategyID
		if s.IsSelected == want {
			continue
		}
		changed := s.Clone()
		changed.IsSelected = want
		batch = append(batch, changed)
	}

	if len(batch) == 0 {
		return state, nil
	}

	if err := uc.repo.Strategy().PutMany(ctx, batch); err != nil {
		return state, goerr.Wrap(err, "failed to select strategy",
			goerr.V(StrategyIDKey, strategyID),
			goerr.V(ActivityIDKey, target.ActivityID),
			goerr.T(model.ErrTagWriteFailed))
	}

	logging.From(ctx).Info("strategy selected",
		"id", strategyID,
		"activity_id", target.ActivityID,
		"changed", len(batch),
	)
	return state.WithStrategies(batch...), nil
}
