package sqlite

import (
	"context"

	"github.com/secmon-lab/continuum/pkg/domain/model"
)

type resourceRepository struct {
	table *table[model.Resource]
}

func (r *resourceRepository) List(ctx context.Context) ([]*model.Resource, error) {
	return r.table.list(ctx)
}

func (r *resourceRepository) Put(ctx context.Context, resource *model.Resource) error {
	return r.table.put(ctx, resource)
}

func (r *resourceRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}
