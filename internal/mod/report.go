package mod

import (
	"sync"

	"github.com/osse101/TemplateOverrides_Go/internal/override"
)

// Report collects the results of every override pass of a run.
type Report struct {
	mu      sync.RWMutex
	results []override.Result
}

// NewReport creates an empty Report
func NewReport() *Report {
	return &Report{}
}

// Add appends the result of one pass.
func (r *Report) Add(res override.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
}

// Results returns the recorded results in pass order.
func (r *Report) Results() []override.Result {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]override.Result(nil), r.results...)
}
