package usecase_test

import (
	"context"
	"errors"

	"github.com/secmon-lab/continuum/pkg/domain/interfaces"
	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/secmon-lab/continuum/pkg/repository/memory"
	"github.com/secmon-lab/continuum/pkg/service/suggest"
)

var errInjected = errors.New("injected failure")

// failingRepository wraps the memory repository and fails the operations switched on
type failingRepository struct {
	*memory.Memory
	failOpen  bool
	failList  bool
	failWrite bool
}

func newFailingRepository() *failingRepository {
	return &failingRepository{Memory: memory.New()}
}

func (r *failingRepository) Open(ctx context.Context) error {
	if r.failOpen {
		return errInjected
	}
	return nil
}

func (r *failingRepository) Resource() interfaces.ResourceRepository {
	return &failingResource{ResourceRepository: r.Memory.Resource(), parent: r}
}

func (r *failingRepository) Activity() interfaces.ActivityRepository {
	return &failingActivity{ActivityRepository: r.Memory.Activity(), parent: r}
}

func (r *failingRepository) Risk() interfaces.RiskRepository {
	return &failingRisk{RiskRepository: r.Memory.Risk(), parent: r}
}

func (r *failingRepository) Strategy() interfaces.StrategyRepository {
	return &failingStrategy{StrategyRepository: r.Memory.Strategy(), parent: r}
}

type failingResource struct {
	interfaces.ResourceRepository
	parent *failingRepository
}

func (f *failingResource) List(ctx context.Context) ([]*model.Resource, error) {
	if f.parent.failList {
		return nil, errInjected
	}
	return f.ResourceRepository.List(ctx)
}

func (f *failingResource) Put(ctx context.Context, v *model.Resource) error {
	if f.parent.failWrite {
		return errInjected
	}
	return f.ResourceRepository.Put(ctx, v)
}

func (f *failingResource) Delete(ctx context.Context, id string) error {
	if f.parent.failWrite {
		return errInjected
	}
	return f.ResourceRepository.Delete(ctx, id)
}

type failingActivity struct {
	interfaces.ActivityRepository
	parent *failingRepository
}

func (f *failingActivity) Put(ctx context.Context, v *model.Activity) error {
	if f.parent.failWrite {
		return errInjected
	}
	return f.ActivityRepository.Put(ctx, v)
}

func (f *failingActivity) Delete(ctx context.Context, id string) error {
	if f.parent.failWrite {
		return errInjected
	}
	return f.ActivityRepository.Delete(ctx, id)
}

type failingRisk struct {
	interfaces.RiskRepository
	parent *failingRepository
}

func (f *failingRisk) Put(ctx context.Context, v *model.Risk) error {
	if f.parent.failWrite {
		return errInjected
	}
	return f.RiskRepository.Put(ctx, v)
}

type failingStrategy struct {
	interfaces.StrategyRepository
	parent *failingRepository
}

func (f *failingStrategy) ListByActivity(ctx context.Context, activityID string) ([]*model.RecoveryStrategy, error) {
	if f.parent.failList {
		return nil, errInjected
	}
	return f.StrategyRepository.ListByActivity(ctx, activityID)
}

func (f *failingStrategy) Put(ctx context.Context, v *model.RecoveryStrategy) error {
	if f.parent.failWrite {
		return errInjected
	}
	return f.StrategyRepository.Put(ctx, v)
}

func (f *failingStrategy) PutMany(ctx context.Context, v []*model.RecoveryStrategy) error {
	if f.parent.failWrite {
		return errInjected
	}
	return f.StrategyRepository.PutMany(ctx, v)
}

// mockSuggestService is a mock suggest.Service for testing
type mockSuggestService struct {
	suggestFn func(ctx context.Context, input suggest.Input) (*model.Suggestion, error)
	calls     int
}

func (m *mockSuggestService) Suggest(ctx context.Context, input suggest.Input) (*model.Suggestion, error) {
	m.calls++
	if m.suggestFn != nil {
		return m.suggestFn(ctx, input)
	}
	return &model.Suggestion{}, nil
}
