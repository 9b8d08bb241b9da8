package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseDiet(t *testing.T) {
	tests := []struct {
		input   string
		want    Diet
		wantErr bool
	}{
		{input: "meat-heavy", want: DietMeatHeavy},
		{input: "Meat-heavy", want: DietMeatHeavy},
		{input: "MEAT_HEAVY", want: DietMeatHeavy},
		{input: "Average (mixed) diet", want: DietAverage},
		{input: "average", want: DietAverage},
		{input: "mixed", want: DietAverage},
		{input: " Vegetarian ", want: DietVegetarian},
		{input: "vegan", want: DietVegan},
		{input: "pescatarian", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDiet(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseShoppingFrequency(t *testing.T) {
	tests := []struct {
		input   string
		want    ShoppingFrequency
		wantErr bool
	}{
		{input: "Every week", want: ShoppingWeekly},
		{input: "weekly", want: ShoppingWeekly},
		{input: "Every month", want: ShoppingMonthly},
		{input: "every-few-months", want: ShoppingEveryFewMonths},
		{input: "Every few months", want: ShoppingEveryFewMonths},
		{input: "rarely", want: ShoppingRarely},
		{input: "daily", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseShoppingFrequency(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRecyclingHabit(t *testing.T) {
	for _, habit := range RecyclingHabits() {
		got, err := ParseRecyclingHabit(habit.Label())
		require.NoError(t, err)
		assert.Equal(t, habit, got)
	}

	_, err := ParseRecyclingHabit("occasionally")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEnumStringRoundTrip(t *testing.T) {
	for _, d := range Diets() {
		got, err := ParseDiet(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	for _, s := range ShoppingFrequencies() {
		got, err := ParseShoppingFrequency(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	assert.Equal(t, "Diet(7)", Diet(7).String())
	assert.Equal(t, "ShoppingFrequency(-1)", ShoppingFrequency(-1).String())
	assert.Equal(t, "RecyclingHabit(4)", RecyclingHabit(4).String())
}

func TestSurveyResponse_YAML(t *testing.T) {
	doc := `
annual_car_miles: 5000
annual_round_trip_flights: 1
diet_category: Vegetarian
household_size: 2
annual_electricity_kwh: 6000
shopping_frequency: Every month
recycling_habit: always
`
	var r SurveyResponse
	require.NoError(t, yaml.Unmarshal([]byte(doc), &r))

	assert.Equal(t, SurveyResponse{
		AnnualCarMiles:         5000,
		AnnualRoundTripFlights: 1,
		Diet:                   DietVegetarian,
		HouseholdSize:          2,
		AnnualElectricityKWh:   6000,
		Shopping:               ShoppingMonthly,
		Recycling:              RecyclingAlways,
	}, r)

	out, err := yaml.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(out), "diet_category: vegetarian")
	assert.Contains(t, string(out), "shopping_frequency: monthly")
}

func TestSurveyResponse_YAMLRejectsUnknownEnum(t *testing.T) {
	var r SurveyResponse
	err := yaml.Unmarshal([]byte("diet_category: carnivore\n"), &r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown diet")
}

func TestBreakdownSum(t *testing.T) {
	b := Breakdown{Car: 1, Flights: 2, Diet: 3, Electricity: 4, Shopping: 5, Recycling: -6}
	assert.InDelta(t, 9.0, b.Sum(), 1e-12)
}
