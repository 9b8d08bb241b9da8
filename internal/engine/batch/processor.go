package batch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Default batch processing configuration.
const (
	// DefaultBatchSize is the default number of items per batch.
	DefaultBatchSize = 100

	// MinBatchSize is the minimum allowed batch size.
	MinBatchSize = 1

	// MaxBatchSize is the maximum allowed batch size.
	MaxBatchSize = 1000
)

// Common batch processing errors.
var (
	ErrInvalidBatchSize = errors.New("batch size must be between 1 and 1000")
	ErrNilCallback      = errors.New("batch callback cannot be nil")
	ErrEmptyItems       = errors.New("items slice cannot be empty")
)

// Callback processes one batch. batchIndex is 0-based; the batch starts at
// item batchIndex*BatchSize() of the original slice.
type Callback[T any] func(ctx context.Context, batch []T, batchIndex int) error

// ProgressCallback is invoked after each batch completes.
type ProgressCallback func(snapshot Snapshot)

// Processor splits items into fixed-size batches.
type Processor[T any] struct {
	batchSize  int
	onProgress ProgressCallback
}

// NewProcessor creates a processor with the given batch size.
func NewProcessor[T any](batchSize int) (*Processor[T], error) {
	if batchSize < MinBatchSize || batchSize > MaxBatchSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBatchSize, batchSize)
	}
	return &Processor[T]{batchSize: batchSize}, nil
}

// NewProcessorWithDefaults creates a processor with DefaultBatchSize.
func NewProcessorWithDefaults[T any]() *Processor[T] {
	return &Processor[T]{batchSize: DefaultBatchSize}
}

// WithProgressCallback sets a progress callback. It may be called from
// several goroutines at once.
func (p *Processor[T]) WithProgressCallback(callback ProgressCallback) *Processor[T] {
	p.onProgress = callback
	return p
}

// BatchSize returns the configured batch size.
func (p *Processor[T]) BatchSize() int {
	return p.batchSize
}

// ProcessConcurrent runs callback over every batch with at most
// maxConcurrency batches in flight. The first error cancels the context
// passed to the remaining batches and is returned.
func (p *Processor[T]) ProcessConcurrent(
	ctx context.Context,
	items []T,
	callback Callback[T],
	maxConcurrency int,
) error {
	if len(items) == 0 {
		return ErrEmptyItems
	}
	if callback == nil {
		return ErrNilCallback
	}
	maxConcurrency = max(maxConcurrency, 1)

	bounds := p.CalculateBatches(len(items))
	progress := NewProgress(len(items), len(bounds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)

	for i, b := range bounds {
		i, b := i, b
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := callback(gctx, items[b[0]:b[1]], i); err != nil {
				return fmt.Errorf("batch %d failed: %w", i, err)
			}
			progress.AddProcessed(b[1] - b[0])
			if p.onProgress != nil {
				p.onProgress(progress.Snapshot())
			}
			return nil
		})
	}

	return g.Wait()
}

// CalculateBatches returns the [start, end) bounds of each batch.
func (p *Processor[T]) CalculateBatches(totalItems int) [][2]int {
	total := (totalItems + p.batchSize - 1) / p.batchSize
	batches := make([][2]int, total)
	for i := 0; i < total; i++ {
		start := i * p.batchSize
		batches[i] = [2]int{start, min(start+p.batchSize, totalItems)}
	}
	return batches
}
