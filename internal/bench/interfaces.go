package bench

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/accumcalc/internal/metrics"
	"github.com/agbru/accumcalc/internal/sysmon"
)

// Result aggregates every round of one strategy.
type Result struct {
	// Name is the strategy tag (e.g. "mutex").
	Name string
	// Value is the final accumulator value of the last round.
	Value uint8
	// Distinct is the number of different final values seen across rounds.
	Distinct int
	// Applied and Failures come from the last round.
	Applied  int
	Failures int
	// Duration is the fastest round; Mean is the average over all rounds.
	Duration time.Duration
	Mean     time.Duration
	// Memory is the per-round allocation average.
	Memory metrics.MemoryDelta
	// System is the machine load sampled across all rounds.
	System sysmon.Stats
}

// Progress announces that a round is about to start.
type Progress struct {
	// Index is the position of the strategy in the run list.
	Index  int
	Name   string
	Round  int
	Rounds int
}

// ProgressReporter displays harness progress. DisplayProgress runs in its
// own goroutine until progressChan is closed, then calls wg.Done.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan Progress, numRunners int, out io.Writer)
}

// NullProgressReporter drains the channel without output.
type NullProgressReporter struct{}

// DisplayProgress drains the channel.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan Progress, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
	}
}

// ResultPresenter renders harness results.
type ResultPresenter interface {
	// PresentComparisonTable displays one row per strategy.
	PresentComparisonTable(results []Result, out io.Writer)
	// PresentSummary displays the closing remarks (fastest strategy and
	// whether the final values agree).
	PresentSummary(summary Summary, out io.Writer)
}
