package types

import "fmt"

// RTO is a Recovery Time Objective label
type RTO string

const (
	RTO1Hour   RTO = "1 Hour"
	RTO4Hours  RTO = "4 Hours"
	RTO24Hours RTO = "24 Hours"
	RTO48Hours RTO = "48 Hours"
	RTO1Week   RTO = "1 Week"
	RTO2Weeks  RTO = "2 Weeks"
	RTO1Month  RTO = "1 Month"
)

// AllRTOs returns all valid RTO labels from shortest to longest
func AllRTOs() []RTO {
	return []RTO{
		RTO1Hour,
		RTO4Hours,
		RTO24Hours,
		RTO48Hours,
		RTO1Week,
		RTO2Weeks,
		RTO1Month,
	}
}

// Rank returns the position of the RTO from shortest to longest, or -1 if invalid
func (r RTO) Rank() int {
	for i, v := range AllRTOs() {
		if v == r {
			return i
		}
	}
	return -1
}

// IsValid checks if the RTO is valid
func (r RTO) IsValid() bool {
	return r.Rank() >= 0
}

// String returns the string representation of the RTO
func (r RTO) String() string {
	return string(r)
}

// ParseRTO parses a string into an RTO
func ParseRTO(s string) (RTO, error) {
	r := RTO(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid RTO: %s", s)
	}
	return r, nil
}
