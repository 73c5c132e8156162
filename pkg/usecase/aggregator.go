package usecase

import (
	"sync"

	"github.com/secmon-lab/demote/pkg/domain/model"
)

// Aggregator accumulates the counters and ordered results of one run.
// It is safe for concurrent use.
type Aggregator struct {
	mu      sync.Mutex
	stats   model.RunStats
	results []*model.IndexedResult
}

// NewAggregator creates an empty Aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Reset zeroes the counters, drops the results and sets the expected total
func (a *Aggregator) Reset(total int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stats = model.RunStats{Total: total}
	a.results = nil
}

// RecordSuccess counts one successful item
func (a *Aggregator) RecordSuccess() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stats.Success++
}

// RecordFailure counts one failed item
func (a *Aggregator) RecordFailure() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stats.Failed++
}

// Append stores a result in arrival order
func (a *Aggregator) Append(item *model.IndexedResult) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.results = append(a.results, item)
}

// Snapshot returns a copy of the counters
func (a *Aggregator) Snapshot() model.RunStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// Results returns a copy of the stored results
func (a *Aggregator) Results() []*model.IndexedResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	results := make([]*model.IndexedResult, len(a.results))
	copy(results, a.results)
	return results
}
