package model

import (
	"slices"
	"time"

	"github.com/secmon-lab/continuum/pkg/domain/types"
)

// Report is the compliance summary of the continuity program. It is derived on
// demand and never persisted.
type Report struct {
	Organization       string                `json:"organization"`
	Standard           string                `json:"standard"`
	GeneratedAt        time.Time             `json:"generatedAt"`
	TotalActivities    int                   `json:"totalActivities"`
	CriticalActivities int                   `json:"criticalActivities"`
	HighRisks          int                   `json:"highRisks"`
	CoveredActivities  int                   `json:"coveredActivities"`
	Coverage           int                   `json:"coverage"`
	Readiness          int                   `json:"readiness"`
	KeyActivities      []ReportActivity      `json:"keyActivities"`
	RiskHighlights     []ReportRiskHighlight `json:"riskHighlights"`
}

// ReportActivity is a Critical or High priority activity with its selected strategy
type ReportActivity struct {
	ActivityID    string         `json:"activityId"`
	Name          string         `json:"name"`
	Department    string         `json:"department"`
	Priority      types.Priority `json:"priority"`
	RTO           types.RTO      `json:"rto"`
	StrategyID    string         `json:"strategyId,omitempty"`
	StrategyName  string         `json:"strategyName,omitempty"`
	RTOAchievable types.RTO      `json:"rtoAchievable,omitempty"`
}

// HasStrategy reports whether a strategy is selected for the activity
func (a ReportActivity) HasStrategy() bool {
	return a.StrategyID != ""
}

// ReportRiskHighlight is a risk scoring High or above
type ReportRiskHighlight struct {
	RiskID      string             `json:"riskId"`
	Category    types.RiskCategory `json:"category"`
	Description string             `json:"description"`
	Score       int                `json:"score"`
	Level       types.RiskLevel    `json:"level"`
}

// CompileReport aggregates the collections into a Report. The input slices and
// records are only read.
func CompileReport(settings *Settings, activities []*Activity, risks []*Risk, strategies []*RecoveryStrategy, generatedAt time.Time) *Report {
	if settings == nil {
		settings = DefaultSettings()
	}

	report := &Report{
		Organization:       settings.OrganizationName,
		Standard:           settings.Standard,
		GeneratedAt:        generatedAt,
		TotalActivities:    len(activities),
		CriticalActivities: CriticalActivityCount(activities),
		HighRisks:          HighRiskCount(risks),
		CoveredActivities:  CoveredActivityCount(strategies),
		Coverage:           StrategyCoverage(activities, strategies),
		Readiness:          ReadinessScore(activities, risks, strategies),
		KeyActivities:      []ReportActivity{},
		RiskHighlights:     []ReportRiskHighlight{},
	}

	for _, a := range activities {
		if a.Priority != types.PriorityCritical && a.Priority != types.PriorityHigh {
			continue
		}
		row := ReportActivity{
			ActivityID: a.ID,
			Name:       a.Name,
			Department: a.Department,
			Priority:   a.Priority,
			RTO:        a.RTO,
		}
		for _, s := range strategies {
			if s.ActivityID == a.ID && s.IsSelected {
				row.StrategyID = s.ID
				row.StrategyName = s.Name
				row.RTOAchievable = s.RTOAchievable
				break
			}
		}
		report.KeyActivities = append(report.KeyActivities, row)
	}

	for _, r := range risks {
		score := r.Score()
		if score < types.RiskScoreHighFloor {
			continue
		}
		report.RiskHighlights = append(report.RiskHighlights, ReportRiskHighlight{
			RiskID:      r.ID,
			Category:    r.Category,
			Description: r.Description,
			Score:       score,
			Level:       types.RiskLevelFromScore(score),
		})
	}
	slices.SortStableFunc(report.RiskHighlights, func(a, b ReportRiskHighlight) int {
		return b.Score - a.Score
	})

	return report
}
