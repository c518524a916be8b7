package interfaces

import (
	"context"
)

// Repository defines the interface for data persistence of the continuity records.
// Open must be called before any per-kind operation and may be called more than once.
type Repository interface {
	Open(ctx context.Context) error
	Close() error

	Resource() ResourceRepository
	Activity() ActivityRepository
	Risk() RiskRepository
	Strategy() StrategyRepository
}
