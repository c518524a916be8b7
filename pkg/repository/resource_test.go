package repository_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/continuum/pkg/domain/interfaces"
	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/secmon-lab/continuum/pkg/domain/types"
)

func runResourceRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("List on empty store returns no records", func(t *testing.T) {
		repo := newRepo(t)
		resources, err := repo.Resource().List(context.Background())
		gt.NoError(t, err).Required()
		gt.Array(t, resources).Length(0)
	})

	t.Run("Put then List round-trips every field", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		r := &model.Resource{
			ID:          model.NewID(),
			Name:        "Backup Generator",
			Type:        types.ResourceTypeEquipment,
			Description: "Diesel, 72h of fuel",
		}
		gt.NoError(t, repo.Resource().Put(ctx, r)).Required()

		resources, err := repo.Resource().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, resources).Length(1)
		gt.Value(t, resources[0]).Equal(r)
	})

	t.Run("Put with same ID replaces", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		r := &model.Resource{ID: model.NewID(), Name: "Office", Type: types.ResourceTypeFacility}
		gt.NoError(t, repo.Resource().Put(ctx, r)).Required()

		updated := r.Clone()
		updated.Name = "Head Office"
		gt.NoError(t, repo.Resource().Put(ctx, updated)).Required()

		resources, err := repo.Resource().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, resources).Length(1)
		gt.Value(t, resources[0].Name).Equal("Head Office")
	})

	t.Run("Delete removes record and is idempotent", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		keep := &model.Resource{ID: model.NewID(), Name: "Vendor A", Type: types.ResourceTypeVendor}
		drop := &model.Resource{ID: model.NewID(), Name: "Vendor B", Type: types.ResourceTypeVendor}
		gt.NoError(t, repo.Resource().Put(ctx, keep)).Required()
		gt.NoError(t, repo.Resource().Put(ctx, drop)).Required()

		gt.NoError(t, repo.Resource().Delete(ctx, drop.ID)).Required()
		gt.NoError(t, repo.Resource().Delete(ctx, drop.ID)).Required()
		gt.NoError(t, repo.Resource().Delete(ctx, model.NewID())).Required()

		resources, err := repo.Resource().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, resources).Length(1)
		gt.Value(t, resources[0].ID).Equal(keep.ID)
	})

	t.Run("Put with empty ID fails", func(t *testing.T) {
		repo := newRepo(t)
		err := repo.Resource().Put(context.Background(), &model.Resource{Name: "No ID", Type: types.ResourceTypePeople})
		gt.Error(t, err).Is(model.ErrEmptyID)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		r := &model.Resource{ID: model.NewID(), Name: "Laptop fleet", Type: types.ResourceTypeEquipment}
		gt.NoError(t, repo.Resource().Put(ctx, r)).Required()
		r.Name = "changed after put"

		first, err := repo.Resource().List(ctx)
		gt.NoError(t, err).Required()
		first[0].Name = "changed after list"

		second, err := repo.Resource().List(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, second[0].Name).Equal("Laptop fleet")
	})
}
