package runner

import (
	"context"
	"time"

	"github.com/agbru/accumcalc/internal/accumulator"
	"github.com/agbru/accumcalc/internal/ops"
)

// Sequential applies files in argument order and, within a file, lines in
// order, on the calling goroutine. It is the reference result for any single
// file.
type Sequential struct {
	cfg settings
}

// NewSequential creates a sequential runner.
func NewSequential(opts ...Option) *Sequential {
	return &Sequential{cfg: newSettings(opts)}
}

// Name returns StrategySequential.
func (s *Sequential) Name() string { return StrategySequential }

// Run processes paths one after another.
func (s *Sequential) Run(ctx context.Context, paths []string) Result {
	_, end := startSpan(ctx, "runner.sequential", s.Name(), len(paths))
	start := time.Now()
	rep := newReporter(s.Name(), s.cfg)
	acc := accumulator.New()
	applied := 0

	for _, path := range paths {
		scanFile(path, s.cfg.opener, rep, func(op ops.Operation, line int) {
			if lineErr := apply(acc, op, path, line); lineErr != nil {
				rep.lineFailed(lineErr)
				return
			}
			applied++
			s.cfg.recorder.OperationApplied(s.Name())
		})
	}

	res := Result{Value: acc.Value(), Applied: applied, Failures: rep.snapshot()}
	s.cfg.recorder.RunCompleted(s.Name(), time.Since(start))
	end(res)
	return res
}
