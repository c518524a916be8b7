package model

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/domain/types"
)

// NewID generates a new UUID v4 record identifier
func NewID() string {
	return uuid.New().String()
}

// Resource is a person, system, facility, piece of equipment or vendor an activity depends on
type Resource struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Type        types.ResourceType `json:"type"`
	Description string             `json:"description"`
}

// Validate checks the fields required before the resource reaches the store
func (r *Resource) Validate() error {
	if r.Name == "" {
		return invalid(ErrMissingRequired, "resource name is required", goerr.V(FieldKey, "name"))
	}
	if !r.Type.IsValid() {
		return invalid(ErrInvalidEnum, "invalid resource type", goerr.V(FieldKey, "type"), goerr.V(ValueKey, r.Type))
	}
	return nil
}

// Clone returns a copy of the resource
func (r *Resource) Clone() *Resource {
	c := *r
	return &c
}
