package memory

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/domain/model"
)

type activityRepository struct {
	table *table[model.Activity]
}

func newActivityRepository() *activityRepository {
	return &activityRepository{table: newTable((*model.Activity).Clone)}
}

func (r *activityRepository) List(ctx context.Context) ([]*model.Activity, error) {
	items := r.table.list()
	for _, v := range items {
		v.Normalize()
	}
	return items, nil
}

func (r *activityRepository) Put(ctx context.Context, activity *model.Activity) error {
	if activity.ID == "" {
		return goerr.Wrap(model.ErrEmptyID, "cannot put activity", goerr.T(model.ErrTagWriteFailed))
	}
	r.table.put(activity.ID, activity)
	return nil
}

func (r *activityRepository) Delete(ctx context.Context, id string) error {
	r.table.delete(id)
	return nil
}
