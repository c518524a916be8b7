package interfaces

import (
	"context"

	"github.com/secmon-lab/continuum/pkg/domain/model"
)

// StrategyRepository defines the interface for RecoveryStrategy data access
type StrategyRepository interface {
	// List retrieves all strategies
	List(ctx context.Context) ([]*model.RecoveryStrategy, error)

	// ListByActivity retrieves the strategies of one activity ordered by name
	ListByActivity(ctx context.Context, activityID string) ([]*model.RecoveryStrategy, error)

	// Put inserts or replaces a strategy by ID
	Put(ctx context.Context, strategy *model.RecoveryStrategy) error

	// PutMany inserts or replaces all strategies as a single batch. Either every
	// write is applied or none is.
	PutMany(ctx context.Context, strategies []*model.RecoveryStrategy) error

	// Delete deletes a strategy by ID
	Delete(ctx context.Context, id string) error
}
