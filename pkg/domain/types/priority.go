package types

import "fmt"

// Priority represents the business impact priority of an activity
type Priority string

const (
	PriorityNegligible   Priority = "Negligible"
	PriorityLow          Priority = "Low"
	PriorityMedium       Priority = "Medium"
	PriorityHigh         Priority = "High"
	PriorityCritical     Priority = "Critical"
	PriorityCatastrophic Priority = "Catastrophic"
)

// AllPriorities returns all valid priorities in ascending order
func AllPriorities() []Priority {
	return []Priority{
		PriorityNegligible,
		PriorityLow,
		PriorityMedium,
		PriorityHigh,
		PriorityCritical,
		PriorityCatastrophic,
	}
}

// IsValid checks if the priority is valid
func (p Priority) IsValid() bool {
	return p.Rank() >= 0
}

// Rank returns the position of the priority in ascending order, or -1 if invalid
func (p Priority) Rank() int {
	switch p {
	case PriorityNegligible:
		return 0
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityCritical:
		return 4
	case PriorityCatastrophic:
		return 5
	default:
		return -1
	}
}

// String returns the string representation of the priority
func (p Priority) String() string {
	return string(p)
}

// ParsePriority parses a string into a Priority
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}
