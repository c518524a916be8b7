package model

import (
	"math"

	"github.com/secmon-lab/continuum/pkg/domain/types"
)

// Readiness weights. Each part counts once the collection is non-empty.
const (
	ReadinessActivityWeight = 40
	ReadinessRiskWeight     = 30
	ReadinessStrategyWeight = 30
)

// Distribution counts activities per priority bucket.
// Critical includes Catastrophic, Low includes Negligible.
type Distribution struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// Total returns the number of counted activities
func (d Distribution) Total() int {
	return d.Critical + d.High + d.Medium + d.Low
}

// PriorityDistribution counts each activity into exactly one bucket
func PriorityDistribution(activities []*Activity) Distribution {
	var d Distribution
	for _, a := range activities {
		switch a.Priority {
		case types.PriorityCritical, types.PriorityCatastrophic:
			d.Critical++
		case types.PriorityHigh:
			d.High++
		case types.PriorityMedium:
			d.Medium++
		default:
			d.Low++
		}
	}
	return d
}

// CoveredActivityCount returns the number of distinct activities with a selected strategy
func CoveredActivityCount(strategies []*RecoveryStrategy) int {
	covered := make(map[string]struct{})
	for _, s := range strategies {
		if s.IsSelected {
			covered[s.ActivityID] = struct{}{}
		}
	}
	return len(covered)
}

// StrategyCoverage returns the percentage of activities with a selected strategy,
// rounded to the nearest integer. Selected strategies pointing at unknown activities
// still count, matching the advisory reference model.
func StrategyCoverage(activities []*Activity, strategies []*RecoveryStrategy) int {
	if len(activities) == 0 {
		return 0
	}
	return int(math.Round(float64(CoveredActivityCount(strategies)) / float64(len(activities)) * 100))
}

// ReadinessScore is a coarse completeness heuristic over the three collections
func ReadinessScore(activities []*Activity, risks []*Risk, strategies []*RecoveryStrategy) int {
	score := 0
	if len(activities) > 0 {
		score += ReadinessActivityWeight
	}
	if len(risks) > 0 {
		score += ReadinessRiskWeight
	}
	for _, s := range strategies {
		if s.IsSelected {
			score += ReadinessStrategyWeight
			break
		}
	}
	return min(100, score)
}

// HighRiskCount returns the number of risks scoring at least High
func HighRiskCount(risks []*Risk) int {
	n := 0
	for _, r := range risks {
		if r.Score() >= types.RiskScoreHighFloor {
			n++
		}
	}
	return n
}

// CriticalActivityCount returns the number of activities with Critical priority
func CriticalActivityCount(activities []*Activity) int {
	n := 0
	for _, a := range activities {
		if a.Priority == types.PriorityCritical {
			n++
		}
	}
	return n
}

// Heatmap counts risks per cell, indexed [likelihood-1][impact-1]
type Heatmap [types.MaxRating][types.MaxRating]int

// Count returns the number of risks in the cell, or 0 for out of range coordinates
func (h *Heatmap) Count(likelihood, impact int) int {
	if !types.IsValidRating(likelihood) || !types.IsValidRating(impact) {
		return 0
	}
	return h[likelihood-1][impact-1]
}

// RiskHeatmap builds the 5x5 likelihood by impact grid. Risks with out of range
// ratings are skipped.
func RiskHeatmap(risks []*Risk) Heatmap {
	var h Heatmap
	for _, r := range risks {
		if !types.IsValidRating(r.Likelihood) || !types.IsValidRating(r.Impact) {
			continue
		}
		h[r.Likelihood-1][r.Impact-1]++
	}
	return h
}

// Dashboard bundles the derived metrics shown on the overview screen
type Dashboard struct {
	TotalActivities    int          `json:"totalActivities"`
	CriticalActivities int          `json:"criticalActivities"`
	HighRisks          int          `json:"highRisks"`
	CoveredActivities  int          `json:"coveredActivities"`
	Coverage           int          `json:"coverage"`
	Readiness          int          `json:"readiness"`
	Distribution       Distribution `json:"distribution"`
	Heatmap            Heatmap      `json:"heatmap"`
}

// NewDashboard computes every dashboard metric from the state
func NewDashboard(s *State) *Dashboard {
	return &Dashboard{
		TotalActivities:    len(s.Activities),
		CriticalActivities: CriticalActivityCount(s.Activities),
		HighRisks:          HighRiskCount(s.Risks),
		CoveredActivities:  CoveredActivityCount(s.Strategies),
		Coverage:           StrategyCoverage(s.Activities, s.Strategies),
		Readiness:          ReadinessScore(s.Activities, s.Risks, s.Strategies),
		Distribution:       PriorityDistribution(s.Activities),
		Heatmap:            RiskHeatmap(s.Risks),
	}
}
