package bench

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/agbru/accumcalc/internal/metrics"
	"github.com/agbru/accumcalc/internal/runner"
	"github.com/agbru/accumcalc/internal/sysmon"
)

// Options configures a harness execution.
type Options struct {
	// Rounds is the number of times each runner is executed; values below 1
	// are treated as 1.
	Rounds int
}

// Execute runs every runner over paths, one after another and never
// concurrently, so that a strategy's timing is not disturbed by another's
// workers.
//
// Parameters:
//   - ctx: Propagated to every run for tracing.
//   - runners: The strategies to time, in presentation order.
//   - paths: The identical input set handed to every runner.
//   - opts: Harness options.
//   - reporter: Progress display (NullProgressReporter for quiet mode).
//   - out: Writer passed to the progress reporter.
//
// Returns:
//   - []Result: One entry per runner, in the order given.
func Execute(ctx context.Context, runners []runner.Runner, paths []string, opts Options, reporter ProgressReporter, out io.Writer) []Result {
	rounds := max(opts.Rounds, 1)
	results := make([]Result, len(runners))
	progressChan := make(chan Progress, len(runners)*rounds)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(runners), out)

	mc := metrics.NewMemoryCollector()
	for i, r := range runners {
		results[i] = measure(ctx, r, paths, rounds, i, mc, progressChan)
	}

	close(progressChan)
	displayWg.Wait()
	return results
}

func measure(ctx context.Context, r runner.Runner, paths []string, rounds, index int, mc *metrics.MemoryCollector, progressChan chan<- Progress) Result {
	res := Result{Name: r.Name()}
	seen := make(map[uint8]struct{})
	var total time.Duration
	var mem metrics.MemoryDelta

	res.System = sysmon.Measure(func() {
		for round := 1; round <= rounds; round++ {
			progressChan <- Progress{Index: index, Name: r.Name(), Round: round, Rounds: rounds}

			before := mc.Snapshot()
			start := time.Now()
			out := r.Run(ctx, paths)
			elapsed := time.Since(start)
			delta := mc.Snapshot().Since(before)

			total += elapsed
			if round == 1 || elapsed < res.Duration {
				res.Duration = elapsed
			}
			mem.TotalAlloc += delta.TotalAlloc
			mem.Mallocs += delta.Mallocs
			mem.NumGC += delta.NumGC

			seen[out.Value] = struct{}{}
			res.Value = out.Value
			res.Applied = out.Applied
			res.Failures = len(out.Failures)
		}
	})

	res.Distinct = len(seen)
	res.Mean = total / time.Duration(rounds)
	res.Memory = metrics.MemoryDelta{
		TotalAlloc: mem.TotalAlloc / uint64(rounds),
		Mallocs:    mem.Mallocs / uint64(rounds),
		NumGC:      mem.NumGC / uint32(rounds),
	}
	return res
}

// Summary is the outcome of AnalyzeResults.
type Summary struct {
	// Fastest is the strategy with the lowest best-round duration.
	Fastest string
	// Agree reports whether every strategy ended on the same value.
	Agree bool
	// Reference is the sequential value when a sequential result exists.
	Reference    uint8
	HasReference bool
}

// AnalyzeResults orders results by duration, presents the comparison and
// summary, and returns the summary. Differing values are reported, not
// treated as a failure.
func AnalyzeResults(results []Result, presenter ResultPresenter, out io.Writer) Summary {
	sorted := append([]Result(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Duration < sorted[j].Duration
	})

	summary := Summary{Agree: true}
	if len(sorted) > 0 {
		summary.Fastest = sorted[0].Name
	}
	for i, r := range sorted {
		if r.Name == runner.StrategySequential {
			summary.Reference = r.Value
			summary.HasReference = true
		}
		if i > 0 && r.Value != sorted[0].Value {
			summary.Agree = false
		}
	}

	presenter.PresentComparisonTable(sorted, out)
	presenter.PresentSummary(summary, out)
	return summary
}
