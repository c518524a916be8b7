package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/domain/types"
)

// RecoveryStrategy is a candidate way of restoring one activity.
// At most one strategy per activity is selected.
type RecoveryStrategy struct {
	ID            string       `json:"id"`
	ActivityID    string       `json:"activityId"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Cost          types.Rating `json:"cost"`
	Feasibility   types.Rating `json:"feasibility"`
	RTOAchievable types.RTO    `json:"rtoAchievable"`
	IsSelected    bool         `json:"isSelected"`
}

// Validate checks the fields required before the strategy reaches the store
func (s *RecoveryStrategy) Validate() error {
	if s.Name == "" {
		return invalid(ErrMissingRequired, "strategy name is required", goerr.V(FieldKey, "name"))
	}
	if s.ActivityID == "" {
		return invalid(ErrMissingRequired, "strategy activity is required", goerr.V(FieldKey, "activityId"))
	}
	if !s.Cost.IsValid() {
		return invalid(ErrInvalidEnum, "invalid strategy cost", goerr.V(FieldKey, "cost"), goerr.V(ValueKey, s.Cost))
	}
	if !s.Feasibility.IsValid() {
		return invalid(ErrInvalidEnum, "invalid strategy feasibility", goerr.V(FieldKey, "feasibility"), goerr.V(ValueKey, s.Feasibility))
	}
	if !s.RTOAchievable.IsValid() {
		return invalid(ErrInvalidEnum, "invalid achievable RTO", goerr.V(FieldKey, "rtoAchievable"), goerr.V(ValueKey, s.RTOAchievable))
	}
	return nil
}

// Clone returns a copy of the strategy
func (s *RecoveryStrategy) Clone() *RecoveryStrategy {
	c := *s
	return &c
}
