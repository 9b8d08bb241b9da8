package greenops

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the English-locale printer used for thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat rounds f half away from zero to precision decimals and formats
// it with thousand separators. Example: FormatFloat(11276.5, 2) returns "11,276.50".
func FormatFloat(f float64, precision int) string {
	if precision <= 0 {
		return FormatNumber(int64(math.Round(f)))
	}
	const base = 10
	multiplier := math.Pow(base, float64(precision))
	rounded := math.Round(f*multiplier) / multiplier

	return printer.Sprintf(fmt.Sprintf("%%.%df", precision), rounded)
}

// FormatKg formats a kg CO2 value the way chart bars are annotated:
// whole kilograms with thousand separators. Example: FormatKg(11276.4) returns "11,276".
func FormatKg(kg float64) string {
	return FormatNumber(int64(math.Round(kg)))
}

// FormatLarge formats large numbers with abbreviated notation:
// "~X.X billion" at or above BillionThreshold, "~X.X million" at or above
// LargeNumberThreshold, comma-separated integers below.
func FormatLarge(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	}
	if n >= LargeNumberThreshold {
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	}
	return FormatNumber(int64(math.Round(n)))
}
