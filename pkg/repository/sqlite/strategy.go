package sqlite

import (
	"context"

	"github.com/secmon-lab/continuum/pkg/domain/model"
)

type strategyRepository struct {
	table *table[model.RecoveryStrategy]
}

func (r *strategyRepository) List(ctx context.Context) ([]*model.RecoveryStrategy, error) {
	return r.table.list(ctx)
}

func (r *strategyRepository) ListByActivity(ctx context.Context, activityID string) ([]*model.RecoveryStrategy, error) {
	return r.table.query(ctx,
		`WHERE json_extract(payload, '$.activityId') = ? ORDER BY json_extract(payload, '$.name')`,
		activityID)
}

func (r *strategyRepository) Put(ctx context.Context, strategy *model.RecoveryStrategy) error {
	return r.table.put(ctx, strategy)
}

// PutMany writes every strategy inside one SQL transaction
func (r *strategyRepository) PutMany(ctx context.Context, strategies []*model.RecoveryStrategy) error {
	return r.table.putMany(ctx, strategies)
}

func (r *strategyRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}
