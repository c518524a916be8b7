package types

import "fmt"

// RiskCategory classifies a risk by its source
type RiskCategory string

const (
	RiskCategoryTechnology   RiskCategory = "Technology"
	RiskCategoryPersonnel    RiskCategory = "Personnel"
	RiskCategoryPhysical     RiskCategory = "Physical/Facility"
	RiskCategorySupplyChain  RiskCategory = "Supply Chain"
	RiskCategoryRegulatory   RiskCategory = "Regulatory"
	RiskCategoryReputational RiskCategory = "Reputational"
)

// AllRiskCategories returns all valid risk categories
func AllRiskCategories() []RiskCategory {
	return []RiskCategory{
		RiskCategoryTechnology,
		RiskCategoryPersonnel,
		RiskCategoryPhysical,
		RiskCategorySupplyChain,
		RiskCategoryRegulatory,
		RiskCategoryReputational,
	}
}

// IsValid checks if the risk category is valid
func (c RiskCategory) IsValid() bool {
	switch c {
	case RiskCategoryTechnology,
		RiskCategoryPersonnel,
		RiskCategoryPhysical,
		RiskCategorySupplyChain,
		RiskCategoryRegulatory,
		RiskCategoryReputational:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk category
func (c RiskCategory) String() string {
	return string(c)
}

// ParseRiskCategory parses a string into a RiskCategory
func ParseRiskCategory(s string) (RiskCategory, error) {
	c := RiskCategory(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid risk category: %s", s)
	}
	return c, nil
}
