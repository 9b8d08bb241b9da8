package greenops

import (
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"
)

// equivalencyFactor pairs an equivalency type with its EPA divisor and label.
type equivalencyFactor struct {
	typ    EquivalencyType
	factor float64
	label  string
}

//nolint:gochecknoglobals // Immutable lookup table.
var equivalencyFactors = []equivalencyFactor{
	{EquivalencyMilesDriven, EPAMilesDrivenFactor, "miles driven"},
	{EquivalencySmartphonesCharged, EPASmartphoneChargeFactor, "smartphones charged"},
	{EquivalencyTreeSeedlings, EPATreeSeedlingFactor, "tree seedlings grown for 10 years"},
	{EquivalencyHomeDays, EPAHomeDayFactor, "days of home electricity"},
}

// Calculate computes EPA equivalencies for an annual footprint in kg CO2.
//
// Totals below MinEquivalencyThresholdKg return an empty output and no error.
// Negative totals return ErrNegativeValue; non-finite input or results return
// ErrCalculationOverflow. In both error cases the output is empty.
func Calculate(kg float64) (EquivalencyOutput, error) {
	if math.IsInf(kg, 0) || math.IsNaN(kg) {
		return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
	}
	if kg < 0 {
		return EquivalencyOutput{IsEmpty: true}, ErrNegativeValue
	}
	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	results := make([]EquivalencyResult, 0, len(equivalencyFactors))
	for _, f := range equivalencyFactors {
		v := kg / f.factor
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
		}
		results = append(results, EquivalencyResult{
			Type:           f.typ,
			Value:          v,
			FormattedValue: formatEquivalencyValue(v),
			Label:          f.label,
		})
	}

	miles := results[EquivalencyMilesDriven].FormattedValue
	phones := results[EquivalencySmartphonesCharged].FormattedValue

	return EquivalencyOutput{
		InputKg:     kg,
		Results:     results,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones", miles, phones),
		CompactText: fmt.Sprintf("(≈ %s mi, %s phones)", miles, phones),
		IsEmpty:     false,
	}, nil
}

// CalculateOrEmpty is Calculate for display paths: failures are logged at
// warn level and an empty output is returned.
func CalculateOrEmpty(logger zerolog.Logger, kg float64) EquivalencyOutput {
	output, err := Calculate(kg)
	if err != nil {
		logger.Warn().Err(err).Float64("kg_co2", kg).Msg("equivalency calculation failed")
		return EquivalencyOutput{IsEmpty: true}
	}
	return output
}

// formatEquivalencyValue uses million/billion scaling for large values and
// comma-separated integers otherwise. The "~" is left to the caller.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return strings.TrimPrefix(FormatLarge(v), "~")
	}
	return FormatNumber(int64(math.Round(v)))
}
