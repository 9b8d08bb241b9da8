package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/footprint"
)

func defaultResult(t *testing.T) *engine.Result {
	t.Helper()
	result, err := engine.New(nil).Estimate(context.Background(), footprint.DefaultSurvey())
	require.NoError(t, err)
	return result
}

func TestRenderReport(t *testing.T) {
	out := RenderReport(defaultResult(t), 100, 40)

	assert.Contains(t, out, "Your estimated annual carbon footprint is 11,276.00 kg CO₂.")
	assert.Contains(t, out, BreakdownHeader)
	assert.Contains(t, out, "Electricity:")
	assert.Contains(t, out, "3,336.00")
	assert.Contains(t, out, "Equivalent to driving ~58,729 miles")
	assert.Contains(t, out, CompareHeading)
	assert.Contains(t, out, ChartTitle)
	assert.Contains(t, out, "Low Impact Goal")
	assert.Contains(t, out, engine.TipsHeading)
	for _, tip := range footprint.Tips() {
		assert.Contains(t, out, tip)
	}
}

func TestRenderReport_Nil(t *testing.T) {
	assert.Contains(t, RenderReport(nil, 80, 40), "No result to display.")
}

func TestRenderSummaryBox_NarrowUsesCompactEquivalency(t *testing.T) {
	out := RenderSummaryBox(defaultResult(t), 40)

	assert.Contains(t, out, "58,729 mi")
	assert.NotContains(t, out, "Equivalent to driving")
}

func TestRenderTips(t *testing.T) {
	out := RenderTips([]string{"first", "second"})

	assert.Contains(t, out, engine.TipsHeading)
	assert.Contains(t, out, IconBullet+" first")
	assert.Contains(t, out, IconBullet+" second")
}
