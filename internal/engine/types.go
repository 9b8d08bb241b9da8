package engine

import (
	"fmt"
	"strings"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/greenops"
)

// Result is one complete estimate: the report plus everything displayed
// alongside it.
type Result struct {
	Survey      footprint.SurveyResponse   `json:"survey"`
	Report      footprint.EmissionsReport  `json:"report"`
	Benchmarks  footprint.BenchmarkTable   `json:"benchmarks"`
	Tips        []string                   `json:"tips"`
	Equivalency greenops.EquivalencyOutput `json:"equivalency"`

	// Precision is the number of decimals totals are displayed with.
	Precision int `json:"-"`
}

// SummaryLine is the one-sentence headline for r.
// Example: "Your estimated annual carbon footprint is 11,276.00 kg CO2."
func (r *Result) SummaryLine() string {
	return fmt.Sprintf("Your estimated annual carbon footprint is %s kg CO2.",
		greenops.FormatFloat(r.Report.TotalKgCO2, r.Precision))
}

// OutputFormat selects the structured rendering of a Result.
type OutputFormat string

// Supported output formats.
const (
	OutputTable  OutputFormat = "table"
	OutputJSON   OutputFormat = "json"
	OutputNDJSON OutputFormat = "ndjson"
)

// OutputFormats lists every supported format.
func OutputFormats() []OutputFormat {
	return []OutputFormat{OutputTable, OutputJSON, OutputNDJSON}
}

// IsValid reports whether f is a supported format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputTable, OutputJSON, OutputNDJSON:
		return true
	default:
		return false
	}
}

// ParseOutputFormat resolves s case-insensitively.
func ParseOutputFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
	return f, nil
}
