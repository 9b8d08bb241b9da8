package survey_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/survey"
)

func TestParseOverrides(t *testing.T) {
	got, err := survey.ParseOverrides([]string{
		"miles=12,000",
		" Diet = Vegan ",
		"household-size=3",
		"flights=1",
		"flights=4",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"annual_car_miles":          "12,000",
		"diet_category":             "Vegan",
		"household_size":            "3",
		"annual_round_trip_flights": "4",
	}, got)
}

func TestParseOverrides_Errors(t *testing.T) {
	tooMany := make([]string, 33)
	for i := range tooMany {
		tooMany[i] = fmt.Sprintf("miles=%d", i)
	}

	tests := []struct {
		name    string
		input   []string
		wantMsg string
	}{
		{"missing equals", []string{"miles"}, "expected key=value"},
		{"empty key", []string{"=5"}, "key cannot be empty"},
		{"unknown field", []string{"bus_miles=5"}, "unknown survey field"},
		{"key too long", []string{strings.Repeat("k", 65) + "=1"}, "key too long"},
		{"value too large", []string{"diet=" + strings.Repeat("v", 257)}, "value too large"},
		{"too many", tooMany, "too many --set overrides"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := survey.ParseOverrides(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, footprint.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	overrides, err := survey.ParseOverrides([]string{
		"miles=12,000",
		"kwh=4000.5",
		"shopping=Every week",
		"recycling=rarely",
		"diet=mixed",
	})
	require.NoError(t, err)

	base := footprint.DefaultSurvey()
	got, err := survey.ApplyOverrides(base, overrides)
	require.NoError(t, err)

	assert.Equal(t, 12000.0, got.AnnualCarMiles)
	assert.Equal(t, 4000.5, got.AnnualElectricityKWh)
	assert.Equal(t, footprint.ShoppingWeekly, got.Shopping)
	assert.Equal(t, footprint.RecyclingRarely, got.Recycling)
	assert.Equal(t, footprint.DietAverage, got.Diet)
	assert.Equal(t, 2, got.AnnualRoundTripFlights)

	// base is untouched.
	assert.Equal(t, footprint.DefaultSurvey(), base)
}

func TestApplyOverrides_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
	}{
		{"non-numeric miles", map[string]string{"annual_car_miles": "lots"}},
		{"fractional household", map[string]string{"household_size": "1.5"}},
		{"unknown habit", map[string]string{"recycling_habit": "occasionally"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := survey.ApplyOverrides(footprint.DefaultSurvey(), tt.overrides)
			require.Error(t, err)
			assert.ErrorIs(t, err, footprint.ErrInvalidInput)
		})
	}
}
