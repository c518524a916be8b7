package sqlite

import (
	"context"

	"github.com/secmon-lab/continuum/pkg/domain/model"
)

type activityRepository struct {
	table *table[model.Activity]
}

func (r *activityRepository) List(ctx context.Context) ([]*model.Activity, error) {
	items, err := r.table.list(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range items {
		v.Normalize()
	}
	return items, nil
}

func (r *activityRepository) Put(ctx context.Context, activity *model.Activity) error {
	return r.table.put(ctx, activity)
}

func (r *activityRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}
