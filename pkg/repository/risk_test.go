package repository_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/continuum/pkg/domain/interfaces"
	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/secmon-lab/continuum/pkg/domain/types"
)

func runRiskRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Put then List round-trips", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		r := &model.Risk{
			ID:                 model.NewID(),
			Description:        "Regional power outage",
			Category:           types.RiskCategoryPhysical,
			Likelihood:         2,
			Impact:             5,
			RelatedActivityIDs: []string{"act-1"},
			ExistingControls:   "UPS",
			Treatment:          types.TreatmentMitigate,
		}
		gt.NoError(t, repo.Risk().Put(ctx, r)).Required()

		risks, err := repo.Risk().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(1)
		gt.Value(t, risks[0]).Equal(r)
		gt.Value(t, risks[0].Score()).Equal(10)
	})

	t.Run("nil related activities are listed as empty", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		r := &model.Risk{
			ID:          model.NewID(),
			Description: "Key supplier insolvency",
			Category:    types.RiskCategorySupplyChain,
			Likelihood:  3,
			Impact:      3,
			Treatment:   types.TreatmentTransfer,
		}
		gt.NoError(t, repo.Risk().Put(ctx, r)).Required()

		risks, err := repo.Risk().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(1)
		gt.Value(t, risks[0].RelatedActivityIDs).Equal([]string{})
	})

	t.Run("many records", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		ids := map[string]bool{}
		for i := 1; i <= 5; i++ {
			r := &model.Risk{
				ID:          model.NewID(),
				Description: "risk",
				Category:    types.RiskCategoryRegulatory,
				Likelihood:  i,
				Impact:      i,
				Treatment:   types.TreatmentAccept,
			}
			ids[r.ID] = true
			gt.NoError(t, repo.Risk().Put(ctx, r)).Required()
		}

		risks, err := repo.Risk().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(5)
		for _, r := range risks {
			gt.Bool(t, ids[r.ID]).True()
		}
	})

	t.Run("Delete", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		r := &model.Risk{ID: model.NewID(), Description: "Fire", Category: types.RiskCategoryPhysical, Likelihood: 1, Impact: 5, Treatment: types.TreatmentTransfer}
		gt.NoError(t, repo.Risk().Put(ctx, r)).Required()
		gt.NoError(t, repo.Risk().Delete(ctx, r.ID)).Required()

		risks, err := repo.Risk().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(0)
	})
}
