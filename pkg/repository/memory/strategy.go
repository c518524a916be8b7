package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/domain/model"
)

type strategyRepository struct {
	table *table[model.RecoveryStrategy]
}

func newStrategyRepository() *strategyRepository {
	return &strategyRepository{table: newTable((*model.RecoveryStrategy).Clone)}
}

func (r *strategyRepository) List(ctx context.Context) ([]*model.RecoveryStrategy, error) {
	return r.table.list(), nil
}

func (r *strategyRepository) ListByActivity(ctx context.Context, activityID string) ([]*model.RecoveryStrategy, error) {
	out := []*model.RecoveryStrategy{}
	for _, s := range r.table.list() {
		if s.ActivityID == activityID {
			out = append(out, s)
		}
	}
	slices.SortFunc(out, func(a, b *model.RecoveryStrategy) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

func (r *strategyRepository) Put(ctx context.Context, strategy *model.RecoveryStrategy) error {
	if strategy.ID == "" {
		return goerr.Wrap(model.ErrEmptyID, "cannot put strategy", goerr.T(model.ErrTagWriteFailed))
	}
	r.table.put(strategy.ID, strategy)
	return nil
}

func (r *strategyRepository) PutMany(ctx context.Context, strategies []*model.RecoveryStrategy) error {
	batch := make(map[string]*model.RecoveryStrategy, len(strategies))
	for _, s := range strategies {
		if s.ID == "" {
			return goerr.Wrap(model.ErrEmptyID, "cannot put strategies", goerr.T(model.ErrTagWriteFailed))
		}
		batch[s.ID] = s
	}
	r.table.putMany(batch)
	return nil
}

func (r *strategyRepository) Delete(ctx context.Context, id string) error {
	r.table.delete(id)
	return nil
}
