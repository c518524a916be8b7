package model

// Settings holds organization wide parameters of the continuity program
type Settings struct {
	OrganizationName  string `json:"organizationName"`
	Standard          string `json:"standard"`
	Currency          string `json:"currency"`
	ReviewCycleMonths int    `json:"reviewCycleMonths"`
}

// DefaultSettings returns the settings used when no settings file is given
func DefaultSettings() *Settings {
	return &Settings{
		OrganizationName:  "Acme Corp",
		Standard:          "ISO 22301:2019",
		Currency:          "USD",
		ReviewCycleMonths: 12,
	}
}
