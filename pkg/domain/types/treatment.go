package types

import "fmt"

// Treatment is the chosen response to a risk
type Treatment string

const (
	TreatmentAccept   Treatment = "Accept"
	TreatmentMitigate Treatment = "Mitigate"
	TreatmentTransfer Treatment = "Transfer"
	TreatmentAvoid    Treatment = "Avoid"
)

// AllTreatments returns all valid treatments
func AllTreatments() []Treatment {
	return []Treatment{
		TreatmentAccept,
		TreatmentMitigate,
		TreatmentTransfer,
		TreatmentAvoid,
	}
}

// IsValid checks if the treatment is valid
func (t Treatment) IsValid() bool {
	switch t {
	case TreatmentAccept, TreatmentMitigate, TreatmentTransfer, TreatmentAvoid:
		return true
	default:
		return false
	}
}

// String returns the string representation of the treatment
func (t Treatment) String() string {
	return string(t)
}

// ParseTreatment parses a string into a Treatment
func ParseTreatment(s string) (Treatment, error) {
	t := Treatment(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid treatment: %s", s)
	}
	return t, nil
}
