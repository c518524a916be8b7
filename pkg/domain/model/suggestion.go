package model

import "github.com/secmon-lab/continuum/pkg/domain/types"

// Suggestion is the AI generated draft for a business activity
type Suggestion struct {
	Description        string    `json:"suggestedDescription"`
	RTO                types.RTO `json:"suggestedRTO"`
	RPO                types.RPO `json:"suggestedRPO"`
	ImpactNarrative    string    `json:"impactNarrative"`
	SuggestedResources []string  `json:"suggestedResources"`
}
