package repository_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/continuum/pkg/domain/interfaces"
	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/secmon-lab/continuum/pkg/domain/types"
)

func newTestStrategy(activityID, name string, selected bool) *model.RecoveryStrategy {
	return &model.RecoveryStrategy{
		ID:            model.NewID(),
		ActivityID:    activityID,
		Name:          name,
		Description:   name + " description",
		Cost:          types.RatingMedium,
		Feasibility:   types.RatingHigh,
		RTOAchievable: types.RTO4Hours,
		IsSelected:    selected,
	}
}

func runStrategyRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Put then List round-trips", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		s := newTestStrategy("act-1", "Hot site", true)
		gt.NoError(t, repo.Strategy().Put(ctx, s)).Required()

		strategies, err := repo.Strategy().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, strategies).Length(1)
		gt.Value(t, strategies[0]).Equal(s)
	})

	t.Run("ListByActivity filters by activity and orders by name", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		warm := newTestStrategy("act-1", "Warm site", false)
		cloud := newTestStrategy("act-1", "Cloud failover", true)
		other := newTestStrategy("act-2", "Manual workaround", false)
		gt.NoError(t, repo.Strategy().PutMany(ctx, []*model.RecoveryStrategy{warm, cloud, other})).Required()

		strategies, err := repo.Strategy().ListByActivity(ctx, "act-1")
		gt.NoError(t, err).Required()
		gt.Array(t, strategies).Length(2)
		gt.Value(t, strategies[0]).Equal(cloud)
		gt.Value(t, strategies[1]).Equal(warm)

		none, err := repo.Strategy().ListByActivity(ctx, "act-missing")
		gt.NoError(t, err).Required()
		gt.Array(t, none).Length(0)
	})

	t.Run("PutMany writes every strategy", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		s1 := newTestStrategy("act-1", "Hot site", true)
		s2 := newTestStrategy("act-1", "Cold site", false)
		gt.NoError(t, repo.Strategy().PutMany(ctx, []*model.RecoveryStrategy{s1, s2})).Required()

		// flip the selection in one batch
		s1.IsSelected = false
		s2.IsSelected = true
		gt.NoError(t, repo.Strategy().PutMany(ctx, []*model.RecoveryStrategy{s1, s2})).Required()

		strategies, err := repo.Strategy().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, strategies).Length(2)

		selected := 0
		for _, s := range strategies {
			if s.IsSelected {
				selected++
				gt.Value(t, s.ID).Equal(s2.ID)
			}
		}
		gt.Value(t, selected).Equal(1)
	})

	t.Run("PutMany with an empty ID writes nothing", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		good := newTestStrategy("act-1", "Hot site", false)
		bad := newTestStrategy("act-1", "Broken", false)
		bad.ID = ""

		err := repo.Strategy().PutMany(ctx, []*model.RecoveryStrategy{good, bad})
		gt.Error(t, err).Is(model.ErrEmptyID)

		strategies, err := repo.Strategy().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, strategies).Length(0)
	})

	t.Run("PutMany with no strategies is a no-op", func(t *testing.T) {
		repo := newRepo(t)
		gt.NoError(t, repo.Strategy().PutMany(context.Background(), nil)).Required()
	})

	t.Run("Delete is idempotent", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		s := newTestStrategy("act-2", "Manual workaround", false)
		gt.NoError(t, repo.Strategy().Put(ctx, s)).Required()
		gt.NoError(t, repo.Strategy().Delete(ctx, s.ID)).Required()
		gt.NoError(t, repo.Strategy().Delete(ctx, s.ID)).Required()

		strategies, err := repo.Strategy().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, strategies).Length(0)
	})
}
