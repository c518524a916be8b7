package memory

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/domain/model"
)

type resourceRepository struct {
	table *table[model.Resource]
}

func newResourceRepository() *resourceRepository {
	return &resourceRepository{table: newTable((*model.Resource).Clone)}
}

func (r *resourceRepository) List(ctx context.Context) ([]*model.Resource, error) {
	return r.table.list(), nil
}

func (r *resourceRepository) Put(ctx context.Context, resource *model.Resource) error {
	if resource.ID == "" {
		return goerr.Wrap(model.ErrEmptyID, "cannot put resource", goerr.T(model.ErrTagWriteFailed))
	}
	r.table.put(resource.ID, resource)
	return nil
}

func (r *resourceRepository) Delete(ctx context.Context, id string) error {
	r.table.delete(id)
	return nil
}
