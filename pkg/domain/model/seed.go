package model

import "github.com/secmon-lab/continuum/pkg/domain/types"

// SeedData returns a fresh copy of the starter records written into an empty store
func SeedData() *State {
	return &State{
		Resources: []*Resource{
			{ID: "res-1", Name: "AWS Cloud Infrastructure", Type: types.ResourceTypeITSystem, Description: "Core hosting environment for all apps"},
			{ID: "res-2", Name: "Customer Support Team", Type: types.ResourceTypePeople, Description: "Level 1 and 2 support agents (24/7)"},
			{ID: "res-3", Name: "HQ Office - New York", Type: types.ResourceTypeFacility, Description: "Primary office location, 500 seats"},
			{ID: "res-4", Name: "Payroll SaaS", Type: types.ResourceTypeITSystem, Description: "Third party payroll provider"},
		},
		Activities: []*Activity{
			{
				ID:          "act-1",
				Name:        "Customer Ticket Resolution",
				Department:  "Support",
				Description: "Handling incoming customer issues via email and phone.",
				Priority:    types.PriorityHigh,
				RTO:         types.RTO4Hours,
				RPO:         types.RPO1Hour,
				MTPD:        "24 Hours",
				Resources:   []string{"res-2", "res-1"},
				Impacts:     []ImpactAssessment{},
			},
			{
				ID:          "act-2",
				Name:        "Monthly Payroll Run",
				Department:  "HR",
				Description: "Processing employee salaries and tax deductions.",
				Priority:    types.PriorityCritical,
				RTO:         types.RTO1Week,
				RPO:         types.RPO24Hours,
				MTPD:        "5 Days",
				Resources:   []string{"res-4"},
				Impacts:     []ImpactAssessment{},
			},
		},
		Risks: []*Risk{
			{
				ID:                 "risk-1",
				Description:        "Ransomware attack encrypting customer database",
				Category:           types.RiskCategoryTechnology,
				Likelihood:         3,
				Impact:             5,
				RelatedActivityIDs: []string{"act-1"},
				ExistingControls:   "Daily immutable backups, Endpoint protection",
				Treatment:          types.TreatmentMitigate,
			},
			{
				ID:                 "risk-2",
				Description:        "Key personnel unavailability during flu season",
				Category:           types.RiskCategoryPersonnel,
				Likelihood:         4,
				Impact:             3,
				RelatedActivityIDs: []string{"act-1", "act-2"},
				ExistingControls:   "Cross-training program",
				Treatment:          types.TreatmentAccept,
			},
		},
		Strategies: []*RecoveryStrategy{
			{
				ID:            "strat-1",
				ActivityID:    "act-1",
				Name:          "Remote Work Activation",
				Description:   "Shift all support agents to work-from-home via VPN.",
				Cost:          types.RatingLow,
				Feasibility:   types.RatingHigh,
				RTOAchievable: types.RTO1Hour,
				IsSelected:    true,
			},
			{
				ID:            "strat-2",
				ActivityID:    "act-1",
				Name:          "Outsource Spillover",
				Description:   "Route calls to 3rd party BPO vendor.",
				Cost:          types.RatingHigh,
				Feasibility:   types.RatingMedium,
				RTOAchievable: types.RTO4Hours,
				IsSelected:    false,
			},
		},
	}
}
