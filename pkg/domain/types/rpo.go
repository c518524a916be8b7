package types

import "fmt"

// RPO is a Recovery Point Objective label
type RPO string

const (
	RPORealTime RPO = "0 Minutes (Real-time)"
	RPO1Hour    RPO = "1 Hour"
	RPO4Hours   RPO = "4 Hours"
	RPO24Hours  RPO = "24 Hours"
)

// AllRPOs returns all valid RPO labels
func AllRPOs() []RPO {
	return []RPO{
		RPORealTime,
		RPO1Hour,
		RPO4Hours,
		RPO24Hours,
	}
}

// IsValid checks if the RPO is valid
func (r RPO) IsValid() bool {
	switch r {
	case RPORealTime, RPO1Hour, RPO4Hours, RPO24Hours:
		return true
	default:
		return false
	}
}

// String returns the string representation of the RPO
func (r RPO) String() string {
	return string(r)
}

// ParseRPO parses a string into an RPO
func ParseRPO(s string) (RPO, error) {
	r := RPO(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid RPO: %s", s)
	}
	return r, nil
}
