package types

// RiskLevel is the banded classification of a risk score
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "Low"
	RiskLevelMedium   RiskLevel = "Medium"
	RiskLevelHigh     RiskLevel = "High"
	RiskLevelCritical RiskLevel = "Critical"
)

// Score band lower bounds, inclusive
const (
	RiskScoreMediumFloor   = 5
	RiskScoreHighFloor     = 10
	RiskScoreCriticalFloor = 15
)

// Likelihood and impact ratings are integers in [MinRating, MaxRating]
const (
	MinRating = 1
	MaxRating = 5
)

// AllRiskLevels returns all risk levels in ascending order
func AllRiskLevels() []RiskLevel {
	return []RiskLevel{RiskLevelLow, RiskLevelMedium, RiskLevelHigh, RiskLevelCritical}
}

// RiskLevelFromScore classifies a likelihood x impact score
func RiskLevelFromScore(score int) RiskLevel {
	switch {
	case score >= RiskScoreCriticalFloor:
		return RiskLevelCritical
	case score >= RiskScoreHighFloor:
		return RiskLevelHigh
	case score >= RiskScoreMediumFloor:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// Rank returns the position of the level in ascending order, or -1 if invalid
func (l RiskLevel) Rank() int {
	switch l {
	case RiskLevelLow:
		return 0
	case RiskLevelMedium:
		return 1
	case RiskLevelHigh:
		return 2
	case RiskLevelCritical:
		return 3
	default:
		return -1
	}
}

// String returns the string representation of the risk level
func (l RiskLevel) String() string {
	return string(l)
}

// IsValidRating reports whether v is a valid likelihood or impact rating
func IsValidRating(v int) bool {
	return v >= MinRating && v <= MaxRating
}
