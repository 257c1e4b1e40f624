// Package report collects and orders the outcomes of batch-executed
// programs.
package report

import (
	"sort"
	"sync"
)

// RunResult captures the terminal state of one batch job: final PC/SP,
// A/F, how many steps executed, and whether the program halted on its
// own or was cut off by the step budget.
type RunResult struct {
	Name    string
	Steps   int
	Halted  bool
	FinalPC uint16
	FinalSP uint16
	A       uint8
	F       uint8
}

// Table stores the results of a batch run, safe for concurrent Add from
// multiple worker goroutines.
type Table struct {
	mu      sync.Mutex
	results []RunResult
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// Add inserts one result into the table.
func (t *Table) Add(r RunResult) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.results = append(t.results, r)
}

// Results returns a copy of all results, sorted by name.
func (t *Table) Results() []RunResult {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]RunResult, len(t.results))
	copy(out, t.results)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of results recorded so far.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.results)
}
