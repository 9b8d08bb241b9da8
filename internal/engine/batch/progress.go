package batch

import (
	"sync"
	"time"
)

const percentMultiplier = 100

// Progress tracks completed items and batches. It is safe for concurrent use.
type Progress struct {
	mu               sync.Mutex
	totalItems       int
	processedItems   int
	totalBatches     int
	processedBatches int
	startTime        time.Time
}

// Snapshot is an immutable copy of progress state.
type Snapshot struct {
	TotalItems       int
	ProcessedItems   int
	TotalBatches     int
	ProcessedBatches int
	Elapsed          time.Duration
}

// NewProgress creates a tracker for totalItems split into totalBatches.
func NewProgress(totalItems, totalBatches int) *Progress {
	return &Progress{
		totalItems:   totalItems,
		totalBatches: totalBatches,
		startTime:    time.Now(),
	}
}

// AddProcessed records one finished batch of n items.
func (p *Progress) AddProcessed(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processedItems += n
	p.processedBatches++
}

// Snapshot returns the current state.
func (p *Progress) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		TotalItems:       p.totalItems,
		ProcessedItems:   p.processedItems,
		TotalBatches:     p.totalBatches,
		ProcessedBatches: p.processedBatches,
		Elapsed:          time.Since(p.startTime),
	}
}

// PercentComplete returns completion in the range 0-100.
func (s Snapshot) PercentComplete() float64 {
	if s.TotalItems == 0 {
		return 0
	}
	return float64(s.ProcessedItems) / float64(s.TotalItems) * percentMultiplier
}

// IsComplete reports whether every item has been processed.
func (s Snapshot) IsComplete() bool {
	return s.ProcessedItems >= s.TotalItems
}
