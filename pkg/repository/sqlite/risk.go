package sqlite

import (
	"context"

	"github.com/secmon-lab/continuum/pkg/domain/model"
)

type riskRepository struct {
	table *table[model.Risk]
}

func (r *riskRepository) List(ctx context.Context) ([]*model.Risk, error) {
	items, err := r.table.list(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range items {
		v.Normalize()
	}
	return items, nil
}

func (r *riskRepository) Put(ctx context.Context, risk *model.Risk) error {
	return r.table.put(ctx, risk)
}

func (r *riskRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}
