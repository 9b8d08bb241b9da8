// Package greenops turns an annual footprint in kg CO2 into relatable
// equivalencies ("miles driven", "smartphones charged", "tree seedlings")
// and formats numbers for display.
package greenops

import "fmt"

// EquivalencyType represents a category of carbon emission equivalency.
type EquivalencyType int

const (
	// EquivalencyMilesDriven converts CO2e to miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged converts CO2e to smartphone full charges.
	EquivalencySmartphonesCharged

	// EquivalencyTreeSeedlings converts CO2e to tree seedlings grown for 10 years.
	EquivalencyTreeSeedlings

	// EquivalencyHomeDays converts CO2e to days of average US home electricity use.
	EquivalencyHomeDays
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	case EquivalencyHomeDays:
		return "HomeDays"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e EquivalencyType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// EquivalencyResult represents a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput contains all equivalency results for display.
type EquivalencyOutput struct {
	// InputKg is the footprint the equivalencies were derived from.
	InputKg float64 `json:"input_kg"`

	// Results are in display priority order.
	Results []EquivalencyResult `json:"results"`

	// DisplayText is the prose line for CLI and TUI output.
	// Example: "Equivalent to driving ~58,729 miles or charging ~1,371,776 smartphones"
	DisplayText string `json:"display_text"`

	// CompactText is the abbreviated form for narrow layouts.
	CompactText string `json:"compact_text"`

	// IsEmpty is true if no equivalencies were calculated.
	IsEmpty bool `json:"is_empty"`
}
