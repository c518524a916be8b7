package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/secmon-lab/continuum/pkg/domain/types"
	"github.com/secmon-lab/continuum/pkg/repository/memory"
	"github.com/secmon-lab/continuum/pkg/usecase"
)

func seededState(t *testing.T, repo *memory.Memory) *model.State {
	t.Helper()
	state, err := usecase.New(repo).Initialize(context.Background())
	gt.NoError(t, err).Required()
	return state
}

func newStrategy(activityID, name string) *model.RecoveryStrategy {
	return &model.RecoveryStrategy{
		ActivityID:    activityID,
		Name:          name,
		Cost:          types.RatingMedium,
		Feasibility:   types.RatingMedium,
		RTOAchievable: types.RTO24Hours,
	}
}

func TestRecordResource(t *testing.T) {
	ctx := context.Background()

	t.Run("create assigns id and writes through", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.NewRecordUseCase(repo, false)

		state, saved, err := uc.SaveResource(ctx, model.NewState(), &model.Resource{
			Name: "Backup Generator",
			Type: types.ResourceTypeEquipment,
		})
		gt.NoError(t, err).Required()
		gt.String(t, saved.ID).NotEqual("")
		gt.A(t, state.Resources).Length(1)

		stored, err := repo.Resource().List(ctx)
		gt.NoError(t, err)
		gt.A(t, stored).Length(1)
		gt.Value(t, stored[0].ID).Equal(saved.ID)
	})

	t.Run("edit replaces in place", func(t *testing.T) {
		repo := memory.New()
		state := seededState(t, repo)
		uc := usecase.NewRecordUseCase(repo, false)

		edited := state.FindResource("res-2").Clone()
		edited.Name = "Support Team"
		next, _, err := uc.SaveResource(ctx, state, edited)
		gt.NoError(t, err).Required()
		gt.A(t, next.Resources).Length(4)
		gt.Value(t, next.FindResource("res-2").Name).Equal("Support Team")
		gt.Value(t, state.FindResource("res-2").Name).Equal("Customer Support Team")
	})

	t.Run("validation failure does not write", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.NewRecordUseCase(repo, false)
		state := model.NewState()

		next, saved, err := uc.SaveResource(ctx, state, &model.Resource{Type: types.ResourceTypePeople})
		gt.Error(t, err).Is(model.ErrMissingRequired)
		gt.Bool(t, goerr.HasTag(err, model.ErrTagValidation)).True()
		gt.Value(t, saved).Nil()
		gt.Value(t, next).Equal(state)

		stored, err := repo.Resource().List(ctx)
		gt.NoError(t, err)
		gt.A(t, stored).Length(0)
	})

	t.Run("write failure leaves state unchanged", func(t *testing.T) {
		repo := newFailingRepository()
		uc := usecase.NewRecordUseCase(repo, false)
		state := model.NewState()
		repo.failWrite = true

		next, _, err := uc.SaveResource(ctx, state, &model.Resource{
			Name: "Server",
			Type: types.ResourceTypeITSystem,
		})
		gt.Error(t, err).Is(errInjected)
		gt.Bool(t, goerr.HasTag(err, model.ErrTagWriteFailed)).True()
		gt.A(t, next.Resources).Length(0)
	})

	t.Run("delete keeps activity references", func(t *testing.T) {
		repo := memory.New()
		state := seededState(t, repo)
		uc := usecase.NewRecordUseCase(repo, false)

		next, err := uc.DeleteResource(ctx, state, "res-1")
		gt.NoError(t, err).Required()
		gt.A(t, next.Resources).Length(3)
		gt.Value(t, next.FindResource("res-1")).Nil()
		gt.A(t, next.FindActivity("act-1").Resources).Has("res-1")
	})

	t.Run("delete failure leaves state unchanged", func(t *testing.T) {
		repo := newFailingRepository()
		state, err := usecase.New(repo).Initialize(ctx)
		gt.NoError(t, err).Required()
		repo.failWrite = true

		next, err := usecase.NewRecordUseCase(repo, false).DeleteResource(ctx, state, "res-1")
		gt.Error(t, err).Is(errInjected)
		gt.A(t, next.Resources).Length(4)
	})
}

func TestRecordActivity(t *testing.T) {
	ctx := context.Background()

	t.Run("create from draft", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.NewRecordUseCase(repo, false)

		next, saved, err := uc.SaveActivity(ctx, model.NewState(), model.NewActivityDraft("Order Intake", "Sales"))
		gt.NoError(t, err).Required()
		gt.String(t, saved.ID).NotEqual("")
		gt.Value(t, saved.Priority).Equal(types.PriorityMedium)
		gt.A(t, next.Activities).Length(1)
	})

	t.Run("nil lists are stored empty", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.NewRecordUseCase(repo, false)

		_, saved, err := uc.SaveActivity(ctx, model.NewState(), &model.Activity{
			Name:       "Billing",
			Department: "Finance",
			Priority:   types.PriorityHigh,
			RTO:        types.RTO4Hours,
			RPO:        types.RPO1Hour,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, saved.Resources).Equal([]string{})
		gt.Value(t, saved.Impacts).Equal([]model.ImpactAssessment{})

		stored, err := repo.Activity().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, stored).Length(1)
		gt.Value(t, stored[0].Resources).Equal([]string{})
		gt.Value(t, stored[0].Impacts).Equal([]model.ImpactAssessment{})
	})

	t.Run("delete keeps strategies and risks", func(t *testing.T) {
		repo := memory.New()
		state := seededState(t, repo)
		uc := usecase.NewRecordUseCase(repo, false)

		next, err := uc.DeleteActivity(ctx, state, "act-1")
		gt.NoError(t, err).Required()
		gt.A(t, next.Activities).Length(1)
		gt.A(t, next.Strategies).Length(2)
		gt.A(t, next.FindRisk("risk-1").RelatedActivityIDs).Has("act-1")
	})

	t.Run("strict mode rejects unknown resource", func(t *testing.T) {
		repo := memory.New()
		state := seededState(t, repo)
		uc := usecase.NewRecordUseCase(repo, true)

		draft := model.NewActivityDraft("Order Intake", "Sales")
		draft.Resources = []string{"res-1", "res-missing"}
		next, _, err := uc.SaveActivity(ctx, state, draft)
		gt.Error(t, err).Is(model.ErrDanglingReference)
		gt.Bool(t, goerr.HasTag(err, model.ErrTagValidation)).True()
		gt.A(t, next.Activities).Length(2)
	})

	t.Run("lenient mode keeps unknown resource", func(t *testing.T) {
		repo := memory.New()
		state := seededState(t, repo)
		uc := usecase.NewRecordUseCase(repo, false)

		draft := model.NewActivityDraft("Order Intake", "Sales")
		draft.Resources = []string{"res-missing"}
		_, saved, err := uc.SaveActivity(ctx, state, draft)
		gt.NoError(t, err).Required()
		gt.A(t, saved.Resources).Has("res-missing")
	})
}

func TestRecordRisk(t *testing.T) {
	ctx := context.Background()

	risk := func() *model.Risk {
		return &model.Risk{
			Description:        "Regional power outage",
			Category:           types.RiskCategoryPhysical,
			Likelihood:         2,
			Impact:             4,
			RelatedActivityIDs: []string{"act-2"},
			Treatment:          types.TreatmentTransfer,
		}
	}

	t.Run("create and delete", func(t *testing.T) {
		repo := memory.New()
		state := seededState(t, repo)
		uc := usecase.NewRecordUseCase(repo, true)

		next, saved, err := uc.SaveRisk(ctx, state, risk())
		gt.NoError(t, err).Required()
		gt.A(t, next.Risks).Length(3)
		gt.Value(t, saved.Score()).Equal(8)

		next, err = uc.DeleteRisk(ctx, next, saved.ID)
		gt.NoError(t, err).Required()
		gt.A(t, next.Risks).Length(2)
	})

	t.Run("out of range likelihood", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.NewRecordUseCase(repo, false)

		r := risk()
		r.Likelihood = 6
		_, _, err := uc.SaveRisk(ctx, model.NewState(), r)
		gt.Error(t, err).Is(model.ErrOutOfRange)
	})

	t.Run("strict mode rejects unknown activity", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.NewRecordUseCase(repo, true)

		_, _, err := uc.SaveRisk(ctx, model.NewState(), risk())
		gt.Error(t, err).Is(model.ErrDanglingReference)
	})
}

func TestRecordStrategy(t *testing.T) {
	ctx := context.Background()

	t.Run("new strategy starts unselected", func(t *testing.T) {
		repo := memory.New()
		state := seededState(t, repo)
		uc := usecase.NewRecordUseCase(repo, false)

		s := newStrategy("act-2", "Manual payroll")
		s.IsSelected = true
		next, saved, err := uc.SaveStrategy(ctx, state, s)
		gt.NoError(t, err).Required()
		gt.Bool(t, saved.IsSelected).False()
		gt.A(t, next.Strategies).Length(3)
	})

	t.Run("edit keeps stored selection", func(t *testing.T) {
		repo := memory.New()
		state := seededState(t, repo)
		uc := usecase.NewRecordUseCase(repo, false)

		edited := state.FindStrategy("strat-1").Clone()
		edited.Name = "Remote Work"
		edited.IsSelected = false
		next, saved, err := uc.SaveStrategy(ctx, state, edited)
		gt.NoError(t, err).Required()
		gt.Bool(t, saved.IsSelected).True()
		gt.Value(t, next.SelectedStrategy("act-1").ID).Equal("strat-1")
	})

	t.Run("moving selected strategy onto covered activity clears flag", func(t *testing.T) {
		repo := memory.New()
		state := seededState(t, repo)
		uc := usecase.NewRecordUseCase(repo, false)

		state, other, err := uc.SaveStrategy(ctx, state, newStrategy("act-2", "Manual payroll"))
		gt.NoError(t, err).Required()
		state, err = uc.SelectStrategy(ctx, state, other.ID)
		gt.NoError(t, err).Required()

		moved := state.FindStrategy("strat-1").Clone()
		moved.ActivityID = "act-2"
		next, saved, err := uc.SaveStrategy(ctx, state, moved)
		gt.NoError(t, err).Required()
		gt.Bool(t, saved.IsSelected).False()
		gt.Value(t, next.SelectedStrategy("act-2").ID).Equal(other.ID)
		gt.Value(t, next.SelectedStrategy("act-1")).Nil()
	})

	t.Run("strict mode rejects unknown activity", func(t *testing.T) {
		repo := memory.New()
		state := seededState(t, repo)
		uc := usecase.NewRecordUseCase(repo, true)

		_, _, err := uc.SaveStrategy(ctx, state, newStrategy("act-missing", "Nothing"))
		gt.Error(t, err).Is(model.ErrDanglingReference)
	})

	t.Run("deleting selected strategy leaves activity uncovered", func(t *testing.T) {
		repo := memory.New()
		state := seededState(t, repo)
		uc := usecase.NewRecordUseCase(repo, false)

		next, err := uc.DeleteStrategy(ctx, state, "strat-1")
		gt.NoError(t, err).Required()
		gt.Value(t, next.SelectedStrategy("act-1")).Nil()
		gt.Value(t, model.NewDashboard(next).Coverage).Equal(0)
	})
}

func TestSelectStrategy(t *testing.T) {
	ctx := context.Background()

	t.Run("switches selection within activity", func(t *testing.T) {
		repo := memory.New()
		state := seededState(t, repo)
		uc := usecase.NewRecordUseCase(repo, false)

		next, err := uc.SelectStrategy(ctx, state, "strat-2")
		gt.NoError(t, err).Required()
		gt.Bool(t, next.FindStrategy("strat-2").IsSelected).True()
		gt.Bool(t, next.FindStrategy("strat-1").IsSelected).False()

		stored, err := usecase.LoadState(ctx, repo)
		gt.NoError(t, err).Required()
		gt.Bool(t, stored.FindStrategy("strat-2").IsSelected).True()
		gt.Bool(t, stored.FindStrategy("strat-1").IsSelected).False()

		gt.Bool(t, state.FindStrategy("strat-1").IsSelected).True()
	})

	t.Run("other activities are untouched", func(t *testing.T) {
		repo := memory.New()
		state := seededState(t, repo)
		uc := usecase.NewRecordUseCase(repo, false)

		state, s, err := uc.SaveStrategy(ctx, state, newStrategy("act-2", "Manual payroll"))
		gt.NoError(t, err).Required()
		state, err = uc.SelectStrategy(ctx, state, s.ID)
		gt.NoError(t, err).Required()

		gt.Value(t, state.SelectedStrategy("act-1").ID).Equal("strat-1")
		gt.Value(t, state.SelectedStrategy("act-2").ID).Equal(s.ID)
	})

	t.Run("selecting the selected one is a no-op", func(t *testing.T) {
		repo := newFailingRepository()
		state, err := usecase.New(repo).Initialize(ctx)
		gt.NoError(t, err).Required()
		repo.failWrite = true

		next, err := usecase.NewRecordUseCase(repo, false).SelectStrategy(ctx, state, "strat-1")
		gt.NoError(t, err)
		gt.Value(t, next).Equal(state)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		repo := memory.New()
		state := seededState(t, repo)

		next, err := usecase.NewRecordUseCase(repo, false).SelectStrategy(ctx, state, "strat-missing")
		gt.Error(t, err).Is(usecase.ErrStrategyNotFound)
		gt.Bool(t, goerr.HasTag(err, model.ErrTagNotFound)).True()
		gt.Value(t, next).Equal(state)
	})

	t.Run("clears selections only the store knows about", func(t *testing.T) {
		repo := memory.New()
		state := seededState(t, repo)

		// written by another process after the state was loaded
		unseen := newStrategy("act-1", "Reciprocal agreement")
		unseen.ID = "strat-unseen"
		unseen.IsSelected = true
		gt.NoError(t, repo.Strategy().Put(ctx, unseen)).Required()

		next, err := usecase.NewRecordUseCase(repo, false).SelectStrategy(ctx, state, "strat-2")
		gt.NoError(t, err).Required()
		gt.Value(t, next.SelectedStrategy("act-1").ID).Equal("strat-2")

		stored, err := repo.Strategy().ListByActivity(ctx, "act-1")
		gt.NoError(t, err).Required()
		selected := 0
		for _, s := range stored {
			if s.IsSelected {
				selected++
				gt.Value(t, s.ID).Equal("strat-2")
			}
		}
		gt.Value(t, selected).Equal(1)
	})

	t.Run("strategy removed from the store", func(t *testing.T) {
		repo := memory.New()
		state := seededState(t, repo)
		gt.NoError(t, repo.Strategy().Delete(ctx, "strat-2")).Required()

		next, err := usecase.NewRecordUseCase(repo, false).SelectStrategy(ctx, state, "strat-2")
		gt.Error(t, err).Is(usecase.ErrStrategyNotFound)
		gt.Bool(t, goerr.HasTag(err, model.ErrTagNotFound)).True()
		gt.Value(t, next).Equal(state)

		strategies, err := repo.Strategy().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, strategies).Length(1)
	})

	t.Run("read failure leaves the store untouched", func(t *testing.T) {
		repo := newFailingRepository()
		state, err := usecase.New(repo).Initialize(ctx)
		gt.NoError(t, err).Required()
		repo.failList = true

		next, err := usecase.NewRecordUseCase(repo, false).SelectStrategy(ctx, state, "strat-2")
		gt.Error(t, err).Is(errInjected)
		gt.Bool(t, goerr.HasTag(err, model.ErrTagStoreUnavailable)).True()
		gt.Value(t, next).Equal(state)

		repo.failList = false
		stored, err := usecase.LoadState(ctx, repo)
		gt.NoError(t, err).Required()
		gt.Bool(t, stored.FindStrategy("strat-1").IsSelected).True()
	})

	t.Run("write failure keeps previous selection", func(t *testing.T) {
		repo := newFailingRepository()
		state, err := usecase.New(repo).Initialize(ctx)
		gt.NoError(t, err).Required()
		repo.failWrite = true

		next, err := usecase.NewRecordUseCase(repo, false).SelectStrategy(ctx, state, "strat-2")
		gt.Error(t, err).Is(errInjected)
		gt.Bool(t, goerr.HasTag(err, model.ErrTagWriteFailed)).True()
		gt.Value(t, next.SelectedStrategy("act-1").ID).Equal("strat-1")

		repo.failWrite = false
		stored, err := usecase.LoadState(ctx, repo)
		gt.NoError(t, err).Required()
		gt.Bool(t, stored.FindStrategy("strat-1").IsSelected).True()
		gt.Bool(t, stored.FindStrategy("strat-2").IsSelected).False()
	})
}
