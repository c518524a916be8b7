package repository_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/continuum/pkg/domain/interfaces"
	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/secmon-lab/continuum/pkg/domain/types"
)

func runActivityRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Put then List keeps nested impacts and resources", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		a := &model.Activity{
			ID:          model.NewID(),
			Name:        "Invoice Processing",
			Description: "Accounts receivable",
			Department:  "Finance",
			Priority:    types.PriorityHigh,
			RTO:         types.RTO48Hours,
			RPO:         types.RPORealTime,
			MTPD:        "1 Week",
			Resources:   []string{"res-1", "res-4"},
			Impacts: []model.ImpactAssessment{
				{
					Timeframe:          "24 Hours",
					FinancialImpact:    types.PriorityHigh,
					OperationalImpact:  types.PriorityMedium,
					ReputationalImpact: types.PriorityLow,
					LegalImpact:        types.PriorityNegligible,
					Description:        "Late payments",
				},
			},
		}
		gt.NoError(t, repo.Activity().Put(ctx, a)).Required()

		activities, err := repo.Activity().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, activities).Length(1)
		gt.Value(t, activities[0]).Equal(a)
	})

	t.Run("nil lists are listed as empty", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		a := &model.Activity{
			ID:         model.NewID(),
			Name:       "Courier Dispatch",
			Department: "Logistics",
			Priority:   types.PriorityLow,
			RTO:        types.RTO1Week,
			RPO:        types.RPO24Hours,
		}
		gt.NoError(t, repo.Activity().Put(ctx, a)).Required()

		activities, err := repo.Activity().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, activities).Length(1)
		gt.Value(t, activities[0].Resources).Equal([]string{})
		gt.Value(t, activities[0].Impacts).Equal([]model.ImpactAssessment{})

		a.Resources = []string{}
		a.Impacts = []model.ImpactAssessment{}
		gt.Value(t, activities[0]).Equal(a)
	})

	t.Run("Delete of unknown ID succeeds", func(t *testing.T) {
		repo := newRepo(t)
		gt.NoError(t, repo.Activity().Delete(context.Background(), "missing")).Required()
	})

	t.Run("Delete does not cascade to strategies", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		a := model.NewActivityDraft("Payroll", "HR")
		a.ID = model.NewID()
		gt.NoError(t, repo.Activity().Put(ctx, a)).Required()

		s := &model.RecoveryStrategy{
			ID:            model.NewID(),
			ActivityID:    a.ID,
			Name:          "Manual payroll",
			Cost:          types.RatingLow,
			Feasibility:   types.RatingMedium,
			RTOAchievable: types.RTO1Week,
		}
		gt.NoError(t, repo.Strategy().Put(ctx, s)).Required()

		gt.NoError(t, repo.Activity().Delete(ctx, a.ID)).Required()

		activities, err := repo.Activity().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, activities).Length(0)

		strategies, err := repo.Strategy().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, strategies).Length(1)
		gt.Value(t, strategies[0].ActivityID).Equal(a.ID)
	})
}
