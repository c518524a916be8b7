package interfaces

import (
	"context"

	"github.com/secmon-lab/continuum/pkg/domain/model"
)

// RiskRepository defines the interface for Risk data access
type RiskRepository interface {
	// List retrieves all risks. RelatedActivityIDs is never nil.
	List(ctx context.Context) ([]*model.Risk, error)

	// Put inserts or replaces a risk by ID
	Put(ctx context.Context, risk *model.Risk) error

	// Delete deletes a risk by ID
	Delete(ctx context.Context, id string) error
}
