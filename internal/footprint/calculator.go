package footprint

import (
	"fmt"
	"math"
)

// Calculator computes EmissionsReports from survey answers. A Calculator holds
// only immutable configuration and is safe for concurrent use.
type Calculator struct {
	factors   EmissionFactors
	precision int
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithFactors replaces the default emission factors.
func WithFactors(f EmissionFactors) Option {
	return func(c *Calculator) {
		c.factors = f.clone()
	}
}

// WithPrecision sets the number of decimal places the total is rounded to.
func WithPrecision(p int) Option {
	return func(c *Calculator) {
		c.precision = p
	}
}

// NewCalculator builds a Calculator. It returns ErrInvalidFactors if the
// configured factor table is incomplete or out of range.
func NewCalculator(opts ...Option) (*Calculator, error) {
	c := &Calculator{
		factors:   DefaultFactors(),
		precision: DefaultPrecision,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.factors.Validate(); err != nil {
		return nil, err
	}
	if c.precision < 0 || c.precision > maxPrecision {
		return nil, fmt.Errorf("%w: precision must be between 0 and %d, got %d",
			ErrInvalidFactors, maxPrecision, c.precision)
	}
	return c, nil
}

// Factors returns a copy of the calculator's emission factors.
func (c *Calculator) Factors() EmissionFactors {
	return c.factors.clone()
}

// Precision returns the rounding precision of the total.
func (c *Calculator) Precision() int {
	return c.precision
}

// Calculate sums the five category contributions for r:
//
//	car          = miles × CarKgPerMile
//	flights      = flights × FlightKgPerRoundTrip
//	diet         = Diet[category]
//	electricity  = kWh × ElectricityKgPerKWh / household size
//	shopping     = Shopping[frequency] + Recycling[habit]
//
// The total is rounded half away from zero to the calculator's precision.
// Invalid input yields an error wrapping ErrInvalidInput and no report.
func (c *Calculator) Calculate(r SurveyResponse) (EmissionsReport, error) {
	if err := r.Validate(); err != nil {
		return EmissionsReport{}, err
	}

	b := Breakdown{
		Car:         r.AnnualCarMiles * c.factors.CarKgPerMile,
		Flights:     float64(r.AnnualRoundTripFlights) * c.factors.FlightKgPerRoundTrip,
		Diet:        c.factors.Diet[r.Diet],
		Electricity: r.AnnualElectricityKWh * c.factors.ElectricityKgPerKWh / float64(r.HouseholdSize),
		Shopping:    c.factors.Shopping[r.Shopping],
		Recycling:   c.factors.Recycling[r.Recycling],
	}

	total := b.Sum()
	if !isFinite(total) {
		return EmissionsReport{}, fmt.Errorf("%w: total is not a finite number", ErrInvalidInput)
	}

	rounded := Round(total, c.precision)
	if !isFinite(rounded) {
		return EmissionsReport{}, fmt.Errorf("%w: rounded total is not a finite number", ErrInvalidInput)
	}

	return EmissionsReport{
		TotalKgCO2: rounded,
		Breakdown:  b,
	}, nil
}

//nolint:gochecknoglobals // Immutable default calculator built from validated constants.
var defaultCalculator = &Calculator{factors: DefaultFactors(), precision: DefaultPrecision}

// Calculate computes a report with the default factors and precision.
func Calculate(r SurveyResponse) (EmissionsReport, error) {
	return defaultCalculator.Calculate(r)
}

// maxExactFloat is 2^53; every float64 at or above it is already an integer.
const maxExactFloat = 1 << 53

// Round rounds v half away from zero to the given number of decimal places.
// Values too large to carry a fractional digit at that precision are
// returned unchanged.
func Round(v float64, precision int) float64 {
	const base = 10
	multiplier := math.Pow(base, float64(precision))
	scaled := v * multiplier
	if math.IsInf(scaled, 0) || math.Abs(scaled) >= maxExactFloat {
		return v
	}
	return math.Round(scaled) / multiplier
}
