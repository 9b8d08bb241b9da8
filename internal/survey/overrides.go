package survey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rshade/footprint/internal/footprint"
)

// keyValueParts is the expected number of parts when splitting key=value strings.
const keyValueParts = 2

// DoS protection limits for --set parsing.
const (
	maxOverrides      = 32
	maxOverrideKeyLen = 64
	maxOverrideValLen = 256
)

// fieldAliases maps accepted --set keys to the canonical survey field name.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var fieldAliases = map[string]string{
	"annual_car_miles":          "annual_car_miles",
	"car_miles":                 "annual_car_miles",
	"miles":                     "annual_car_miles",
	"annual_round_trip_flights": "annual_round_trip_flights",
	"flights":                   "annual_round_trip_flights",
	"diet_category":             "diet_category",
	"diet":                      "diet_category",
	"household_size":            "household_size",
	"household":                 "household_size",
	"annual_electricity_kwh":    "annual_electricity_kwh",
	"electricity_kwh":           "annual_electricity_kwh",
	"kwh":                       "annual_electricity_kwh",
	"shopping_frequency":        "shopping_frequency",
	"shopping":                  "shopping_frequency",
	"recycling_habit":           "recycling_habit",
	"recycling":                 "recycling_habit",
}

// ParseOverrides parses --set key=value flags into a map keyed by canonical
// field name. Later flags for the same field win.
func ParseOverrides(sets []string) (map[string]string, error) {
	if len(sets) > maxOverrides {
		return nil, fmt.Errorf("%w: too many --set overrides: %d (max %d)",
			footprint.ErrInvalidInput, len(sets), maxOverrides)
	}

	overrides := make(map[string]string, len(sets))
	for _, s := range sets {
		parts := strings.SplitN(s, "=", keyValueParts)
		if len(parts) != keyValueParts {
			return nil, fmt.Errorf("%w: invalid --set format %q: expected key=value", footprint.ErrInvalidInput, s)
		}
		key := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])
		if key == "" {
			return nil, fmt.Errorf("%w: --set key cannot be empty in %q", footprint.ErrInvalidInput, s)
		}
		if len(key) > maxOverrideKeyLen {
			return nil, fmt.Errorf("%w: --set key too long: %d bytes (max %d)",
				footprint.ErrInvalidInput, len(key), maxOverrideKeyLen)
		}
		if len(value) > maxOverrideValLen {
			return nil, fmt.Errorf("%w: --set value too large for key %q: %d bytes (max %d)",
				footprint.ErrInvalidInput, key, len(value), maxOverrideValLen)
		}
		field, ok := fieldAliases[strings.ReplaceAll(key, "-", "_")]
		if !ok {
			return nil, fmt.Errorf("%w: unknown survey field %q", footprint.ErrInvalidInput, key)
		}
		overrides[field] = value
	}
	return overrides, nil
}

// ApplyOverrides returns a copy of base with each override applied. The
// result is not validated; callers validate once all sources are merged.
func ApplyOverrides(base footprint.SurveyResponse, overrides map[string]string) (footprint.SurveyResponse, error) {
	out := base
	for field, value := range overrides {
		if err := setField(&out, field, value); err != nil {
			return footprint.SurveyResponse{}, err
		}
	}
	return out, nil
}

func setField(r *footprint.SurveyResponse, field, value string) error {
	var err error
	switch field {
	case "annual_car_miles":
		r.AnnualCarMiles, err = parseFloat(field, value)
	case "annual_round_trip_flights":
		r.AnnualRoundTripFlights, err = parseInt(field, value)
	case "diet_category":
		r.Diet, err = footprint.ParseDiet(value)
	case "household_size":
		r.HouseholdSize, err = parseInt(field, value)
	case "annual_electricity_kwh":
		r.AnnualElectricityKWh, err = parseFloat(field, value)
	case "shopping_frequency":
		r.Shopping, err = footprint.ParseShoppingFrequency(value)
	case "recycling_habit":
		r.Recycling, err = footprint.ParseRecyclingHabit(value)
	default:
		err = fmt.Errorf("%w: unknown survey field %q", footprint.ErrInvalidInput, field)
	}
	return err
}

func parseFloat(field, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number, got %q", footprint.ErrInvalidInput, field, value)
	}
	return v, nil
}

func parseInt(field, value string) (int, error) {
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %q", footprint.ErrInvalidInput, field, value)
	}
	return v, nil
}
