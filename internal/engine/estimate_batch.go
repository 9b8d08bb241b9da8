package engine

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/rshade/footprint/internal/engine/batch"
	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/logging"
)

// MaxBatchSurveys bounds the number of surveys accepted by EstimateBatch.
const MaxBatchSurveys = 1000

// batchSize is the number of surveys estimated per worker batch.
const batchSize = 50

// BatchItem is the outcome for one survey of a batch. Exactly one of Result
// and Error is set.
type BatchItem struct {
	Index  int     `json:"index"`
	Result *Result `json:"result,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// BatchResult holds one item per input survey, in input order.
type BatchResult struct {
	Items   []BatchItem `json:"items"`
	Valid   int         `json:"valid"`
	Invalid int         `json:"invalid"`
}

// EstimateBatch estimates every survey in surveys. Invalid surveys are
// reported on their item and do not fail the batch; an empty or oversized
// batch returns an error wrapping footprint.ErrInvalidInput.
func (e *Engine) EstimateBatch(ctx context.Context, surveys []footprint.SurveyResponse) (*BatchResult, error) {
	if len(surveys) == 0 {
		return nil, fmt.Errorf("%w: no surveys to estimate", footprint.ErrInvalidInput)
	}
	if len(surveys) > MaxBatchSurveys {
		return nil, fmt.Errorf("%w: %d surveys exceeds the limit of %d",
			footprint.ErrInvalidInput, len(surveys), MaxBatchSurveys)
	}

	log := logging.FromContext(ctx)
	items := make([]BatchItem, len(surveys))

	proc, err := batch.NewProcessor[footprint.SurveyResponse](batchSize)
	if err != nil {
		return nil, err
	}
	proc.WithProgressCallback(func(s batch.Snapshot) {
		log.Debug().Ctx(ctx).
			Str("component", "engine").
			Int("processed", s.ProcessedItems).
			Int("total", s.TotalItems).
			Float64("percent", s.PercentComplete()).
			Msg("batch estimate progress")
	})

	// Each batch writes only its own slice of items.
	estimate := func(ctx context.Context, chunk []footprint.SurveyResponse, batchIndex int) error {
		offset := batchIndex * proc.BatchSize()
		for i, resp := range chunk {
			idx := offset + i
			result, estErr := e.Estimate(ctx, resp)
			switch {
			case estErr == nil:
				items[idx] = BatchItem{Index: idx, Result: result}
			case errors.Is(estErr, footprint.ErrInvalidInput):
				items[idx] = BatchItem{Index: idx, Error: estErr.Error()}
			default:
				return fmt.Errorf("survey %d: %w", idx, estErr)
			}
		}
		return nil
	}

	if err = proc.ProcessConcurrent(ctx, surveys, estimate, runtime.GOMAXPROCS(0)); err != nil {
		return nil, err
	}

	out := &BatchResult{Items: items}
	for _, item := range items {
		if item.Result != nil {
			out.Valid++
		} else {
			out.Invalid++
		}
	}
	return out, nil
}
