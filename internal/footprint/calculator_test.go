package footprint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_DefaultSurvey(t *testing.T) {
	got, err := Calculate(DefaultSurvey())
	require.NoError(t, err)

	// 4040 + 1800 + 2000 + 3336 + 200 - 100
	assert.Equal(t, 11276.0, got.TotalKgCO2)
	assert.InDelta(t, 4040.0, got.Breakdown.Car, 1e-9)
	assert.InDelta(t, 1800.0, got.Breakdown.Flights, 1e-9)
	assert.InDelta(t, 2000.0, got.Breakdown.Diet, 1e-9)
	assert.InDelta(t, 3336.0, got.Breakdown.Electricity, 1e-9)
	assert.InDelta(t, 200.0, got.Breakdown.Shopping, 1e-9)
	assert.InDelta(t, -100.0, got.Breakdown.Recycling, 1e-9)
}

func TestCalculate_MinimumInputs(t *testing.T) {
	r := SurveyResponse{
		AnnualCarMiles:         0,
		AnnualRoundTripFlights: 0,
		Diet:                   DietVegan,
		HouseholdSize:          1,
		AnnualElectricityKWh:   0,
		Shopping:               ShoppingRarely,
		Recycling:              RecyclingAlways,
	}

	got, err := Calculate(r)
	require.NoError(t, err)
	assert.Equal(t, 1400.0, got.TotalKgCO2)
}

func TestCalculate_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SurveyResponse)
		field  string
	}{
		{
			name:   "zero household size",
			mutate: func(r *SurveyResponse) { r.HouseholdSize = 0 },
			field:  "household_size",
		},
		{
			name:   "negative household size",
			mutate: func(r *SurveyResponse) { r.HouseholdSize = -3 },
			field:  "household_size",
		},
		{
			name:   "negative car miles",
			mutate: func(r *SurveyResponse) { r.AnnualCarMiles = -1 },
			field:  "annual_car_miles",
		},
		{
			name:   "NaN car miles",
			mutate: func(r *SurveyResponse) { r.AnnualCarMiles = math.NaN() },
			field:  "annual_car_miles",
		},
		{
			name:   "negative flights",
			mutate: func(r *SurveyResponse) { r.AnnualRoundTripFlights = -2 },
			field:  "annual_round_trip_flights",
		},
		{
			name:   "infinite electricity",
			mutate: func(r *SurveyResponse) { r.AnnualElectricityKWh = math.Inf(1) },
			field:  "annual_electricity_kwh",
		},
		{
			name:   "undeclared diet",
			mutate: func(r *SurveyResponse) { r.Diet = Diet(42) },
			field:  "diet_category",
		},
		{
			name:   "undeclared shopping frequency",
			mutate: func(r *SurveyResponse) { r.Shopping = ShoppingFrequency(-1) },
			field:  "shopping_frequency",
		},
		{
			name:   "undeclared recycling habit",
			mutate: func(r *SurveyResponse) { r.Recycling = RecyclingHabit(9) },
			field:  "recycling_habit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultSurvey()
			tt.mutate(&r)

			got, err := Calculate(r)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.field)
			assert.Equal(t, EmissionsReport{}, got, "no partial report on invalid input")
		})
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	r := DefaultSurvey()
	r.AnnualCarMiles = 12345.678
	r.AnnualElectricityKWh = 9876.5
	r.HouseholdSize = 3

	first, err := Calculate(r)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		again, err := Calculate(r)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.False(t, math.IsNaN(first.TotalKgCO2))
	assert.False(t, math.IsInf(first.TotalKgCO2, 0))
}

func TestCalculate_LargeInputStaysFinite(t *testing.T) {
	tests := []struct {
		name  string
		miles float64
	}{
		{"scaled product overflows", 1e307},
		{"beyond exact integer range", 1e17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultSurvey()
			r.AnnualCarMiles = tt.miles

			got, err := Calculate(r)
			require.NoError(t, err)
			assert.False(t, math.IsInf(got.TotalKgCO2, 0))
			assert.False(t, math.IsNaN(got.TotalKgCO2))
			assert.Greater(t, got.TotalKgCO2, 0.0)
		})
	}
}

func TestRound_LargeValuesUnchanged(t *testing.T) {
	assert.Equal(t, 1e307, Round(1e307, 2))
	assert.Equal(t, -1e307, Round(-1e307, 2))
	assert.Equal(t, float64(1<<54), Round(float64(1<<54), 3))
}

func TestCalculate_Monotonicity(t *testing.T) {
	base := DefaultSurvey()
	baseline, err := Calculate(base)
	require.NoError(t, err)

	t.Run("more car miles increases total", func(t *testing.T) {
		r := base
		r.AnnualCarMiles += 100
		got, err := Calculate(r)
		require.NoError(t, err)
		assert.Greater(t, got.TotalKgCO2, baseline.TotalKgCO2)
	})

	t.Run("more flights increases total", func(t *testing.T) {
		r := base
		r.AnnualRoundTripFlights++
		got, err := Calculate(r)
		require.NoError(t, err)
		assert.Greater(t, got.TotalKgCO2, baseline.TotalKgCO2)
	})

	t.Run("more electricity increases total", func(t *testing.T) {
		r := base
		r.AnnualElectricityKWh += 100
		got, err := Calculate(r)
		require.NoError(t, err)
		assert.Greater(t, got.TotalKgCO2, baseline.TotalKgCO2)
	})

	t.Run("larger household decreases electricity share", func(t *testing.T) {
		prev := baseline
		for size := 2; size <= 6; size++ {
			r := base
			r.HouseholdSize = size
			got, err := Calculate(r)
			require.NoError(t, err)
			assert.Less(t, got.Breakdown.Electricity, prev.Breakdown.Electricity)
			assert.Less(t, got.TotalKgCO2, prev.TotalKgCO2)
			prev = got
		}
	})
}

func TestCalculate_RecyclingOrdering(t *testing.T) {
	var totals []float64
	for _, habit := range RecyclingHabits() {
		r := DefaultSurvey()
		r.Recycling = habit
		got, err := Calculate(r)
		require.NoError(t, err)
		totals = append(totals, got.TotalKgCO2)
	}

	// Always <= Sometimes <= Rarely <= Never
	for i := 1; i < len(totals); i++ {
		assert.LessOrEqual(t, totals[i-1], totals[i])
	}
}

func TestCalculate_DietOrdering(t *testing.T) {
	contribution := make(map[Diet]float64)
	for _, d := range Diets() {
		r := DefaultSurvey()
		r.Diet = d
		got, err := Calculate(r)
		require.NoError(t, err)
		contribution[d] = got.Breakdown.Diet
	}

	assert.LessOrEqual(t, contribution[DietVegan], contribution[DietVegetarian])
	assert.LessOrEqual(t, contribution[DietVegetarian], contribution[DietAverage])
	assert.LessOrEqual(t, contribution[DietAverage], contribution[DietMeatHeavy])
}

func TestCalculate_ShoppingCanGoNegative(t *testing.T) {
	r := DefaultSurvey()
	r.Shopping = ShoppingRarely
	r.Recycling = RecyclingAlways

	got, err := Calculate(r)
	require.NoError(t, err)
	assert.InDelta(t, -100.0, got.Breakdown.Shopping+got.Breakdown.Recycling, 1e-9)
}

func TestCalculate_RoundsToTwoDecimals(t *testing.T) {
	r := DefaultSurvey()
	r.AnnualCarMiles = 1.234 // 0.498536 kg
	r.AnnualRoundTripFlights = 0
	r.AnnualElectricityKWh = 0

	got, err := Calculate(r)
	require.NoError(t, err)
	assert.Equal(t, 2100.5, got.TotalKgCO2)
}

func TestNewCalculator(t *testing.T) {
	t.Run("custom factors", func(t *testing.T) {
		f := DefaultFactors()
		f.CarKgPerMile = 0.2
		c, err := NewCalculator(WithFactors(f))
		require.NoError(t, err)

		got, err := c.Calculate(DefaultSurvey())
		require.NoError(t, err)
		assert.Equal(t, 9236.0, got.TotalKgCO2)
	})

	t.Run("custom precision", func(t *testing.T) {
		c, err := NewCalculator(WithPrecision(0))
		require.NoError(t, err)

		r := DefaultSurvey()
		r.AnnualCarMiles = 1.234
		got, err := c.Calculate(r)
		require.NoError(t, err)
		assert.Equal(t, 0, c.Precision())
		assert.Equal(t, math.Round(got.Breakdown.Sum()), got.TotalKgCO2)
	})

	t.Run("rejects incomplete factor table", func(t *testing.T) {
		f := DefaultFactors()
		delete(f.Diet, DietVegan)
		_, err := NewCalculator(WithFactors(f))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidFactors)
	})

	t.Run("rejects out of range precision", func(t *testing.T) {
		_, err := NewCalculator(WithPrecision(-1))
		assert.ErrorIs(t, err, ErrInvalidFactors)
	})

	t.Run("factors are copied", func(t *testing.T) {
		f := DefaultFactors()
		c, err := NewCalculator(WithFactors(f))
		require.NoError(t, err)

		f.Diet[DietVegan] = 99999
		got := c.Factors()
		assert.Equal(t, 1500.0, got.Diet[DietVegan])
	})
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.13, Round(0.125, 2))
	assert.Equal(t, 1.23, Round(1.23456, 2))
	assert.Equal(t, 3.0, Round(2.5, 0))
	assert.Equal(t, -3.0, Round(-2.5, 0))
	assert.Equal(t, 11276.0, Round(11276.000000001, 2))
}

func BenchmarkCalculate(b *testing.B) {
	r := DefaultSurvey()
	for i := 0; i < b.N; i++ {
		_, _ = Calculate(r)
	}
}
