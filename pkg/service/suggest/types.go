package suggest

import (
	"context"

	"github.com/secmon-lab/continuum/pkg/domain/model"
)

// Service drafts business impact analysis fields for an activity
type Service interface {
	// Suggest returns a description, recovery objectives, an impact narrative and
	// typical resources for the activity. Values outside the RTO and RPO sets are errors.
	Suggest(ctx context.Context, input Input) (*model.Suggestion, error)
}

// Input is the activity context sent to the model
type Input struct {
	ActivityName string
	Department   string
}
