// Package engine runs a footprint estimate end to end: it validates a
// survey, computes the emissions report, builds the benchmark comparison,
// attaches the reduction tips and carbon equivalencies, and renders the
// result as a table, JSON or NDJSON.
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/greenops"
	"github.com/rshade/footprint/internal/logging"
)

// Engine produces Results from survey responses. It holds only the
// immutable calculator and is safe for concurrent use.
type Engine struct {
	calc *footprint.Calculator
}

// New returns an Engine using calc. A nil calc uses the default factors and
// precision.
func New(calc *footprint.Calculator) *Engine {
	if calc == nil {
		calc, _ = footprint.NewCalculator()
	}
	return &Engine{calc: calc}
}

// Precision returns the rounding precision of report totals.
func (e *Engine) Precision() int {
	return e.calc.Precision()
}

// Estimate computes the full Result for resp.
//
// Invalid responses return an error wrapping footprint.ErrInvalidInput and
// no partial result. Equivalency failures are logged and leave the
// equivalency section empty.
func (e *Engine) Estimate(ctx context.Context, resp footprint.SurveyResponse) (*Result, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "estimate").
		Str("diet", resp.Diet.String()).
		Int("household_size", resp.HouseholdSize).
		Msg("starting footprint estimate")

	report, err := e.calc.Calculate(resp)
	if err != nil {
		if errors.Is(err, footprint.ErrInvalidInput) {
			log.Debug().Ctx(ctx).Str("component", "engine").Err(err).Msg("footprint estimate rejected")
		} else {
			log.Error().Ctx(ctx).Str("component", "engine").Err(err).Msg("footprint estimate failed")
		}
		return nil, err
	}

	result := &Result{
		Survey:      resp,
		Report:      report,
		Benchmarks:  footprint.NewBenchmarkTable(report),
		Tips:        footprint.Tips(),
		Equivalency: greenops.CalculateOrEmpty(*log, report.TotalKgCO2),
		Precision:   e.calc.Precision(),
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Float64("total_kg_co2", report.TotalKgCO2).
		Dur("duration_ms", time.Since(start)).
		Msg("footprint estimate complete")

	return result, nil
}
