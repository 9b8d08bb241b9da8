package footprint

import (
	"fmt"
	"math"
)

// Default emission factors, in kg CO2 per unit of activity.
const (
	// DefaultCarKgPerMile is kg CO2 per mile driven in an average passenger car.
	DefaultCarKgPerMile = 0.404

	// DefaultFlightKgPerRoundTrip is kg CO2 per domestic round-trip flight.
	DefaultFlightKgPerRoundTrip = 900.0

	// DefaultElectricityKgPerKWh is kg CO2 per kWh on the US average grid.
	DefaultElectricityKgPerKWh = 0.417

	// DefaultPrecision is the number of decimal places the total is rounded to.
	DefaultPrecision = 2
)

// maxPrecision bounds the rounding precision so the scaling factor stays exact.
const maxPrecision = 6

// EmissionFactors converts survey answers into kg CO2. The lookup tables must
// hold an entry for every declared enum value; Validate enforces that.
type EmissionFactors struct {
	CarKgPerMile         float64                       `yaml:"car_kg_per_mile" json:"car_kg_per_mile"`
	FlightKgPerRoundTrip float64                       `yaml:"flight_kg_per_round_trip" json:"flight_kg_per_round_trip"`
	ElectricityKgPerKWh  float64                       `yaml:"electricity_kg_per_kwh" json:"electricity_kg_per_kwh"`
	Diet                 map[Diet]float64              `yaml:"diet" json:"diet"`
	Shopping             map[ShoppingFrequency]float64 `yaml:"shopping" json:"shopping"`
	Recycling            map[RecyclingHabit]float64    `yaml:"recycling" json:"recycling"`
}

// DefaultFactors returns a fresh copy of the built-in factor table.
func DefaultFactors() EmissionFactors {
	return EmissionFactors{
		CarKgPerMile:         DefaultCarKgPerMile,
		FlightKgPerRoundTrip: DefaultFlightKgPerRoundTrip,
		ElectricityKgPerKWh:  DefaultElectricityKgPerKWh,
		Diet: map[Diet]float64{
			DietMeatHeavy:  2500,
			DietAverage:    2000,
			DietVegetarian: 1700,
			DietVegan:      1500,
		},
		Shopping: map[ShoppingFrequency]float64{
			ShoppingWeekly:         600,
			ShoppingMonthly:        400,
			ShoppingEveryFewMonths: 200,
			ShoppingRarely:         100,
		},
		Recycling: map[RecyclingHabit]float64{
			RecyclingAlways:    -200,
			RecyclingSometimes: -100,
			RecyclingRarely:    -50,
			RecyclingNever:     0,
		},
	}
}

// Merge returns a copy of f with every non-zero scalar and every table entry
// from override applied on top. Tables are merged per key.
func (f EmissionFactors) Merge(override EmissionFactors) EmissionFactors {
	out := f.clone()
	if override.CarKgPerMile != 0 {
		out.CarKgPerMile = override.CarKgPerMile
	}
	if override.FlightKgPerRoundTrip != 0 {
		out.FlightKgPerRoundTrip = override.FlightKgPerRoundTrip
	}
	if override.ElectricityKgPerKWh != 0 {
		out.ElectricityKgPerKWh = override.ElectricityKgPerKWh
	}
	for k, v := range override.Diet {
		out.Diet[k] = v
	}
	for k, v := range override.Shopping {
		out.Shopping[k] = v
	}
	for k, v := range override.Recycling {
		out.Recycling[k] = v
	}
	return out
}

func (f EmissionFactors) clone() EmissionFactors {
	out := EmissionFactors{
		CarKgPerMile:         f.CarKgPerMile,
		FlightKgPerRoundTrip: f.FlightKgPerRoundTrip,
		ElectricityKgPerKWh:  f.ElectricityKgPerKWh,
		Diet:                 make(map[Diet]float64, len(f.Diet)),
		Shopping:             make(map[ShoppingFrequency]float64, len(f.Shopping)),
		Recycling:            make(map[RecyclingHabit]float64, len(f.Recycling)),
	}
	for k, v := range f.Diet {
		out.Diet[k] = v
	}
	for k, v := range f.Shopping {
		out.Shopping[k] = v
	}
	for k, v := range f.Recycling {
		out.Recycling[k] = v
	}
	return out
}

// Validate checks that every declared category has a factor, that scalar
// factors are finite and non-negative, and that recycling entries are credits (<= 0).
func (f EmissionFactors) Validate() error {
	scalars := []struct {
		name  string
		value float64
	}{
		{"car_kg_per_mile", f.CarKgPerMile},
		{"flight_kg_per_round_trip", f.FlightKgPerRoundTrip},
		{"electricity_kg_per_kwh", f.ElectricityKgPerKWh},
	}
	for _, s := range scalars {
		if !isFinite(s.value) || s.value < 0 {
			return fmt.Errorf("%w: %s must be a finite number >= 0, got %v", ErrInvalidFactors, s.name, s.value)
		}
	}

	for _, d := range Diets() {
		v, ok := f.Diet[d]
		if !ok {
			return fmt.Errorf("%w: missing diet factor for %s", ErrInvalidFactors, d)
		}
		if !isFinite(v) || v < 0 {
			return fmt.Errorf("%w: diet factor for %s must be >= 0, got %v", ErrInvalidFactors, d, v)
		}
	}
	for _, s := range ShoppingFrequencies() {
		v, ok := f.Shopping[s]
		if !ok {
			return fmt.Errorf("%w: missing shopping factor for %s", ErrInvalidFactors, s)
		}
		if !isFinite(v) || v < 0 {
			return fmt.Errorf("%w: shopping factor for %s must be >= 0, got %v", ErrInvalidFactors, s, v)
		}
	}
	for _, r := range RecyclingHabits() {
		v, ok := f.Recycling[r]
		if !ok {
			return fmt.Errorf("%w: missing recycling credit for %s", ErrInvalidFactors, r)
		}
		if !isFinite(v) || v > 0 {
			return fmt.Errorf("%w: recycling credit for %s must be <= 0, got %v", ErrInvalidFactors, r, v)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
