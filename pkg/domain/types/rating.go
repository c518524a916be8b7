package types

import "fmt"

// Rating is a three step scale used for strategy cost and feasibility
type Rating string

const (
	RatingLow    Rating = "Low"
	RatingMedium Rating = "Medium"
	RatingHigh   Rating = "High"
)

// AllRatings returns all valid ratings
func AllRatings() []Rating {
	return []Rating{RatingLow, RatingMedium, RatingHigh}
}

// IsValid checks if the rating is valid
func (r Rating) IsValid() bool {
	switch r {
	case RatingLow, RatingMedium, RatingHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation of the rating
func (r Rating) String() string {
	return string(r)
}

// ParseRating parses a string into a Rating
func ParseRating(s string) (Rating, error) {
	r := Rating(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid rating: %s", s)
	}
	return r, nil
}
