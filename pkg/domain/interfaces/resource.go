package interfaces

import (
	"context"

	"github.com/secmon-lab/continuum/pkg/domain/model"
)

// ResourceRepository defines the interface for Resource data access
type ResourceRepository interface {
	// List retrieves all resources. Order is unspecified.
	List(ctx context.Context) ([]*model.Resource, error)

	// Put inserts or replaces a resource by ID
	Put(ctx context.Context, resource *model.Resource) error

	// Delete deletes a resource by ID. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error
}
