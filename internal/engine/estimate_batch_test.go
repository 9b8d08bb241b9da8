package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/footprint"
)

func TestEstimateBatch(t *testing.T) {
	surveys := make([]footprint.SurveyResponse, 120)
	for i := range surveys {
		surveys[i] = footprint.DefaultSurvey()
		surveys[i].AnnualRoundTripFlights = i % 3
	}
	surveys[7].HouseholdSize = 0
	surveys[101].AnnualCarMiles = -1

	got, err := engine.New(nil).EstimateBatch(context.Background(), surveys)
	require.NoError(t, err)
	require.Len(t, got.Items, len(surveys))
	assert.Equal(t, 118, got.Valid)
	assert.Equal(t, 2, got.Invalid)

	for i, item := range got.Items {
		assert.Equal(t, i, item.Index)
		switch i {
		case 7, 101:
			assert.Nil(t, item.Result)
			assert.Contains(t, item.Error, "invalid input")
		default:
			require.NotNil(t, item.Result, "item %d", i)
			assert.Empty(t, item.Error)
			// 11276 with 2 flights; each flight is 900.
			want := 11276.0 + float64(i%3-2)*900
			assert.InDelta(t, want, item.Result.Report.TotalKgCO2, 1e-9, "item %d", i)
		}
	}
}

func TestEstimateBatch_Limits(t *testing.T) {
	eng := engine.New(nil)

	_, err := eng.EstimateBatch(context.Background(), nil)
	assert.ErrorIs(t, err, footprint.ErrInvalidInput)

	tooMany := make([]footprint.SurveyResponse, engine.MaxBatchSurveys+1)
	_, err = eng.EstimateBatch(context.Background(), tooMany)
	assert.ErrorIs(t, err, footprint.ErrInvalidInput)
}

func TestEstimateBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.New(nil).EstimateBatch(ctx, []footprint.SurveyResponse{footprint.DefaultSurvey()})
	assert.ErrorIs(t, err, context.Canceled)
}
