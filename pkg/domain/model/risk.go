package model

import (
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/domain/types"
)

// Risk is an entry of the risk register
type Risk struct {
	ID                 string             `json:"id"`
	Description        string             `json:"description"`
	Category           types.RiskCategory `json:"category"`
	Likelihood         int                `json:"likelihood"`
	Impact             int                `json:"impact"`
	RelatedActivityIDs []string           `json:"relatedActivityIds"`
	ExistingControls   string             `json:"existingControls"`
	Treatment          types.Treatment    `json:"treatment"`
}

// Score returns likelihood x impact. It is never stored.
func (r *Risk) Score() int {
	return r.Likelihood * r.Impact
}

// Level returns the banded classification of the score
func (r *Risk) Level() types.RiskLevel {
	return types.RiskLevelFromScore(r.Score())
}

// Validate checks the fields required before the risk reaches the store
func (r *Risk) Validate() error {
	if r.Description == "" {
		return invalid(ErrMissingRequired, "risk description is required", goerr.V(FieldKey, "description"))
	}
	if r.Category == "" {
		return invalid(ErrMissingRequired, "risk category is required", goerr.V(FieldKey, "category"))
	}
	if !r.Category.IsValid() {
		return invalid(ErrInvalidEnum, "invalid risk category", goerr.V(FieldKey, "category"), goerr.V(ValueKey, r.Category))
	}
	if !types.IsValidRating(r.Likelihood) {
		return invalid(ErrOutOfRange, "likelihood must be between 1 and 5", goerr.V(FieldKey, "likelihood"), goerr.V(ValueKey, r.Likelihood))
	}
	if !types.IsValidRating(r.Impact) {
		return invalid(ErrOutOfRange, "impact must be between 1 and 5", goerr.V(FieldKey, "impact"), goerr.V(ValueKey, r.Impact))
	}
	if !r.Treatment.IsValid() {
		return invalid(ErrInvalidEnum, "invalid risk treatment", goerr.V(FieldKey, "treatment"), goerr.V(ValueKey, r.Treatment))
	}
	return nil
}

// Normalize replaces a nil related activity list with an empty one
func (r *Risk) Normalize() {
	if r.RelatedActivityIDs == nil {
		r.RelatedActivityIDs = []string{}
	}
}

// Clone returns a deep copy of the risk
func (r *Risk) Clone() *Risk {
	c := *r
	c.RelatedActivityIDs = slices.Clone(r.RelatedActivityIDs)
	return &c
}
