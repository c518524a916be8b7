package model

import (
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/domain/types"
)

// ImpactAssessment rates the consequences of disrupting an activity for one timeframe
type ImpactAssessment struct {
	Timeframe          string         `json:"timeframe"`
	FinancialImpact    types.Priority `json:"financialImpact"`
	OperationalImpact  types.Priority `json:"operationalImpact"`
	ReputationalImpact types.Priority `json:"reputationalImpact"`
	LegalImpact        types.Priority `json:"legalImpact"`
	Description        string         `json:"description"`
}

// Activity is a business activity assessed in the business impact analysis
type Activity struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Department  string             `json:"department"`
	Priority    types.Priority     `json:"priority"`
	RTO         types.RTO          `json:"rto"`
	RPO         types.RPO          `json:"rpo"`
	MTPD        string             `json:"mtpd"`
	Resources   []string           `json:"resources"`
	Impacts     []ImpactAssessment `json:"impacts"`
}

// NewActivityDraft returns an activity with the defaults of a new entry form
func NewActivityDraft(name, department string) *Activity {
	return &Activity{
		Name:       name,
		Department: department,
		Priority:   types.PriorityMedium,
		RTO:        types.RTO24Hours,
		RPO:        types.RPO24Hours,
		MTPD:       "48 Hours",
		Resources:  []string{},
		Impacts:    []ImpactAssessment{},
	}
}

// Validate checks the fields required before the activity reaches the store
func (a *Activity) Validate() error {
	if a.Name == "" {
		return invalid(ErrMissingRequired, "activity name is required", goerr.V(FieldKey, "name"))
	}
	if a.Department == "" {
		return invalid(ErrMissingRequired, "activity department is required", goerr.V(FieldKey, "department"))
	}
	if !a.Priority.IsValid() {
		return invalid(ErrInvalidEnum, "invalid activity priority", goerr.V(FieldKey, "priority"), goerr.V(ValueKey, a.Priority))
	}
	if !a.RTO.IsValid() {
		return invalid(ErrInvalidEnum, "invalid activity RTO", goerr.V(FieldKey, "rto"), goerr.V(ValueKey, a.RTO))
	}
	if !a.RPO.IsValid() {
		return invalid(ErrInvalidEnum, "invalid activity RPO", goerr.V(FieldKey, "rpo"), goerr.V(ValueKey, a.RPO))
	}
	for i, impact := range a.Impacts {
		for _, p := range []types.Priority{impact.FinancialImpact, impact.OperationalImpact, impact.ReputationalImpact, impact.LegalImpact} {
			if !p.IsValid() {
				return invalid(ErrInvalidEnum, "invalid impact level", goerr.V(FieldKey, "impacts"), goerr.V("index", i), goerr.V(ValueKey, p))
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the activity
func (a *Activity) Clone() *Activity {
	c := *a
	c.Resources = slices.Clone(a.Resources)
	c.Impacts = slices.Clone(a.Impacts)
	return &c
}

// Normalize replaces nil lists with empty ones
func (a *Activity) Normalize() {
	if a.Resources == nil {
		a.Resources = []string{}
	}
	if a.Impacts == nil {
		a.Impacts = []ImpactAssessment{}
	}
}

// ApplySuggestion returns a copy of the activity with the suggested description and
// objectives filled in. MTPD follows the suggested RTO.
func (a *Activity) ApplySuggestion(s *Suggestion) *Activity {
	c := a.Clone()
	if s == nil {
		return c
	}
	c.Description = s.Description
	c.RTO = s.RTO
	c.RPO = s.RPO
	if s.RTO == types.RTO4Hours {
		c.MTPD = "8 Hours"
	} else {
		c.MTPD = "1 Week"
	}
	return c
}
