package memory

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/domain/model"
)

type riskRepository struct {
	table *table[model.Risk]
}

func newRiskRepository() *riskRepository {
	return &riskRepository{table: newTable((*model.Risk).Clone)}
}

func (r *riskRepository) List(ctx context.Context) ([]*model.Risk, error) {
	items := r.table.list()
	for _, v := range items {
		v.Normalize()
	}
	return items, nil
}

func (r *riskRepository) Put(ctx context.Context, risk *model.Risk) error {
	if risk.ID == "" {
		return goerr.Wrap(model.ErrEmptyID, "cannot put risk", goerr.T(model.ErrTagWriteFailed))
	}
	r.table.put(risk.ID, risk)
	return nil
}

func (r *riskRepository) Delete(ctx context.Context, id string) error {
	r.table.delete(id)
	return nil
}
