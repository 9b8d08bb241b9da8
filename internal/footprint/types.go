// Package footprint estimates a household's annual carbon dioxide emissions
// from a short lifestyle survey.
//
// The package is pure: Calculate maps a SurveyResponse to an EmissionsReport
// using a fixed table of emission factors, and NewBenchmarkTable places the
// result next to published reference averages. Nothing here performs I/O.
package footprint

import (
	"fmt"
	"strings"
)

// Diet is the respondent's diet category.
type Diet int

const (
	// DietMeatHeavy is a diet with meat at most meals.
	DietMeatHeavy Diet = iota
	// DietAverage is a mixed diet.
	DietAverage
	// DietVegetarian excludes meat.
	DietVegetarian
	// DietVegan excludes all animal products.
	DietVegan
)

// Diets lists every declared Diet value in display order.
func Diets() []Diet {
	return []Diet{DietMeatHeavy, DietAverage, DietVegetarian, DietVegan}
}

// String returns the canonical name of the diet.
func (d Diet) String() string {
	switch d {
	case DietMeatHeavy:
		return "meat-heavy"
	case DietAverage:
		return "average"
	case DietVegetarian:
		return "vegetarian"
	case DietVegan:
		return "vegan"
	default:
		return fmt.Sprintf("Diet(%d)", int(d))
	}
}

// Label returns the form label shown to respondents.
func (d Diet) Label() string {
	switch d {
	case DietMeatHeavy:
		return "Meat-heavy"
	case DietAverage:
		return "Average (mixed) diet"
	case DietVegetarian:
		return "Vegetarian"
	case DietVegan:
		return "Vegan"
	default:
		return d.String()
	}
}

// Valid reports whether d is one of the declared diets.
func (d Diet) Valid() bool {
	return d >= DietMeatHeavy && d <= DietVegan
}

// ParseDiet resolves a canonical name or form label to a Diet.
// Matching is case-insensitive. Unknown values wrap ErrInvalidInput.
func ParseDiet(s string) (Diet, error) {
	key := normalizeKey(s)
	for _, d := range Diets() {
		if key == normalizeKey(d.String()) || key == normalizeKey(d.Label()) {
			return d, nil
		}
	}
	if key == "mixed" {
		return DietAverage, nil
	}
	return 0, fmt.Errorf("%w: unknown diet %q", ErrInvalidInput, s)
}

// ShoppingFrequency is how often the respondent buys new clothes.
type ShoppingFrequency int

const (
	// ShoppingWeekly buys every week.
	ShoppingWeekly ShoppingFrequency = iota
	// ShoppingMonthly buys every month.
	ShoppingMonthly
	// ShoppingEveryFewMonths buys every few months.
	ShoppingEveryFewMonths
	// ShoppingRarely rarely buys.
	ShoppingRarely
)

// ShoppingFrequencies lists every declared ShoppingFrequency value in display order.
func ShoppingFrequencies() []ShoppingFrequency {
	return []ShoppingFrequency{ShoppingWeekly, ShoppingMonthly, ShoppingEveryFewMonths, ShoppingRarely}
}

// String returns the canonical name of the frequency.
func (s ShoppingFrequency) String() string {
	switch s {
	case ShoppingWeekly:
		return "weekly"
	case ShoppingMonthly:
		return "monthly"
	case ShoppingEveryFewMonths:
		return "every-few-months"
	case ShoppingRarely:
		return "rarely"
	default:
		return fmt.Sprintf("ShoppingFrequency(%d)", int(s))
	}
}

// Label returns the form label shown to respondents.
func (s ShoppingFrequency) Label() string {
	switch s {
	case ShoppingWeekly:
		return "Every week"
	case ShoppingMonthly:
		return "Every month"
	case ShoppingEveryFewMonths:
		return "Every few months"
	case ShoppingRarely:
		return "Rarely"
	default:
		return s.String()
	}
}

// Valid reports whether s is one of the declared frequencies.
func (s ShoppingFrequency) Valid() bool {
	return s >= ShoppingWeekly && s <= ShoppingRarely
}

// ParseShoppingFrequency resolves a canonical name or form label.
func ParseShoppingFrequency(s string) (ShoppingFrequency, error) {
	key := normalizeKey(s)
	for _, f := range ShoppingFrequencies() {
		if key == normalizeKey(f.String()) || key == normalizeKey(f.Label()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown shopping frequency %q", ErrInvalidInput, s)
}

// RecyclingHabit is how consistently the respondent recycles paper, plastics and metals.
type RecyclingHabit int

const (
	// RecyclingAlways recycles consistently.
	RecyclingAlways RecyclingHabit = iota
	// RecyclingSometimes recycles some of the time.
	RecyclingSometimes
	// RecyclingRarely seldom recycles.
	RecyclingRarely
	// RecyclingNever does not recycle.
	RecyclingNever
)

// RecyclingHabits lists every declared RecyclingHabit value in display order.
func RecyclingHabits() []RecyclingHabit {
	return []RecyclingHabit{RecyclingAlways, RecyclingSometimes, RecyclingRarely, RecyclingNever}
}

// String returns the canonical name of the habit.
func (r RecyclingHabit) String() string {
	switch r {
	case RecyclingAlways:
		return "always"
	case RecyclingSometimes:
		return "sometimes"
	case RecyclingRarely:
		return "rarely"
	case RecyclingNever:
		return "never"
	default:
		return fmt.Sprintf("RecyclingHabit(%d)", int(r))
	}
}

// Label returns the form label shown to respondents.
func (r RecyclingHabit) Label() string {
	switch r {
	case RecyclingAlways:
		return "Always"
	case RecyclingSometimes:
		return "Sometimes"
	case RecyclingRarely:
		return "Rarely"
	case RecyclingNever:
		return "Never"
	default:
		return r.String()
	}
}

// Valid reports whether r is one of the declared habits.
func (r RecyclingHabit) Valid() bool {
	return r >= RecyclingAlways && r <= RecyclingNever
}

// ParseRecyclingHabit resolves a canonical name or form label.
func ParseRecyclingHabit(s string) (RecyclingHabit, error) {
	key := normalizeKey(s)
	for _, r := range RecyclingHabits() {
		if key == normalizeKey(r.String()) || key == normalizeKey(r.Label()) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown recycling habit %q", ErrInvalidInput, s)
}

// normalizeKey lowercases s and folds spaces and underscores into hyphens,
// so "Every few months", "every_few_months" and "EVERY-FEW-MONTHS" compare equal.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "-", "_", "-").Replace(s)
	return s
}

// SurveyResponse is one respondent's answers. It is a value type; callers
// build a fresh one per calculation.
type SurveyResponse struct {
	// AnnualCarMiles is miles driven per year.
	AnnualCarMiles float64 `json:"annual_car_miles" yaml:"annual_car_miles"`

	// AnnualRoundTripFlights is domestic round-trip flights per year.
	AnnualRoundTripFlights int `json:"annual_round_trip_flights" yaml:"annual_round_trip_flights"`

	// Diet is the diet category.
	Diet Diet `json:"diet_category" yaml:"diet_category"`

	// HouseholdSize is the number of people sharing the electricity bill. Must be >= 1.
	HouseholdSize int `json:"household_size" yaml:"household_size"`

	// AnnualElectricityKWh is the household's yearly electricity use.
	AnnualElectricityKWh float64 `json:"annual_electricity_kwh" yaml:"annual_electricity_kwh"`

	// Shopping is how often new clothes are bought.
	Shopping ShoppingFrequency `json:"shopping_frequency" yaml:"shopping_frequency"`

	// Recycling is how consistently the household recycles.
	Recycling RecyclingHabit `json:"recycling_habit" yaml:"recycling_habit"`
}

// DefaultSurvey returns the answers a blank form starts with.
func DefaultSurvey() SurveyResponse {
	return SurveyResponse{
		AnnualCarMiles:         10000,
		AnnualRoundTripFlights: 2,
		Diet:                   DietAverage,
		HouseholdSize:          1,
		AnnualElectricityKWh:   8000,
		Shopping:               ShoppingEveryFewMonths,
		Recycling:              RecyclingSometimes,
	}
}

// Breakdown holds the unrounded contribution of each survey category in kg CO2.
type Breakdown struct {
	Car         float64 `json:"car_kg_co2"`
	Flights     float64 `json:"flights_kg_co2"`
	Diet        float64 `json:"diet_kg_co2"`
	Electricity float64 `json:"electricity_kg_co2"`
	Shopping    float64 `json:"shopping_kg_co2"`
	Recycling   float64 `json:"recycling_kg_co2"`
}

// Sum returns the unrounded total of all contributions.
func (b Breakdown) Sum() float64 {
	return b.Car + b.Flights + b.Diet + b.Electricity + b.Shopping + b.Recycling
}

// EmissionsReport is the result of one calculation.
type EmissionsReport struct {
	// TotalKgCO2 is the annual total, rounded to the calculator's precision.
	TotalKgCO2 float64 `json:"total_kg_co2"`

	// Breakdown itemises the total by category.
	Breakdown Breakdown `json:"breakdown"`
}

// MarshalText implements encoding.TextMarshaler so diets serialise by name.
func (d Diet) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: diet %d", ErrInvalidInput, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Diet) UnmarshalText(text []byte) error {
	v, err := ParseDiet(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s ShoppingFrequency) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: shopping frequency %d", ErrInvalidInput, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ShoppingFrequency) UnmarshalText(text []byte) error {
	v, err := ParseShoppingFrequency(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (r RecyclingHabit) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: recycling habit %d", ErrInvalidInput, int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *RecyclingHabit) UnmarshalText(text []byte) error {
	v, err := ParseRecyclingHabit(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
