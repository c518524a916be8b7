package types

import "fmt"

// ResourceType represents the kind of a supporting resource
type ResourceType string

const (
	ResourceTypePeople    ResourceType = "People"
	ResourceTypeITSystem  ResourceType = "IT System"
	ResourceTypeFacility  ResourceType = "Facility"
	ResourceTypeEquipment ResourceType = "Equipment"
	ResourceTypeVendor    ResourceType = "Vendor"
)

// AllResourceTypes returns all valid resource types
func AllResourceTypes() []ResourceType {
	return []ResourceType{
		ResourceTypePeople,
		ResourceTypeITSystem,
		ResourceTypeFacility,
		ResourceTypeEquipment,
		ResourceTypeVendor,
	}
}

// IsValid checks if the resource type is valid
func (r ResourceType) IsValid() bool {
	switch r {
	case ResourceTypePeople,
		ResourceTypeITSystem,
		ResourceTypeFacility,
		ResourceTypeEquipment,
		ResourceTypeVendor:
		return true
	default:
		return false
	}
}

// String returns the string representation of the resource type
func (r ResourceType) String() string {
	return string(r)
}

// ParseResourceType parses a string into a ResourceType
func ParseResourceType(s string) (ResourceType, error) {
	r := ResourceType(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid resource type: %s", s)
	}
	return r, nil
}
