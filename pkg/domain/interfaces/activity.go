package interfaces

import (
	"context"

	"github.com/secmon-lab/continuum/pkg/domain/model"
)

// ActivityRepository defines the interface for Activity data access
type ActivityRepository interface {
	// List retrieves all activities. Order is unspecified. Resources and impacts
	// are never nil; a nil list written by Put comes back empty.
	List(ctx context.Context) ([]*model.Activity, error)

	// Put inserts or replaces an activity by ID
	Put(ctx context.Context, activity *model.Activity) error

	// Delete deletes an activity by ID. Strategies and risks referring to it are kept.
	Delete(ctx context.Context, id string) error
}
