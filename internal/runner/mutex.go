package runner

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/accumcalc/internal/accumulator"
	"github.com/agbru/accumcalc/internal/logging"
	"github.com/agbru/accumcalc/internal/ops"
)

// Mutex runs one worker goroutine per file. Workers read and parse without
// holding any lock and take the shared accumulator's mutex only around a
// single apply.
type Mutex struct {
	cfg settings
}

// NewMutex creates a lock-synchronized runner.
func NewMutex(opts ...Option) *Mutex {
	return &Mutex{cfg: newSettings(opts)}
}

// Name returns StrategyMutex.
func (m *Mutex) Name() string { return StrategyMutex }

// lockedAccumulator is the shared cell handed to every worker.
type lockedAccumulator struct {
	mu      sync.Mutex
	acc     *accumulator.Accumulator
	applied int
}

// apply holds the lock for exactly one transition.
func (l *lockedAccumulator) apply(op ops.Operation, path string, line int) *LineError {
	l.mu.Lock()
	defer l.mu.Unlock()
	if lineErr := apply(l.acc, op, path, line); lineErr != nil {
		return lineErr
	}
	l.applied++
	return nil
}

// Run processes every file concurrently and returns once all workers have
// been joined.
func (m *Mutex) Run(ctx context.Context, paths []string) Result {
	ctx, end := startSpan(ctx, "runner.mutex", m.Name(), len(paths))
	start := time.Now()
	rep := newReporter(m.Name(), m.cfg)
	shared := &lockedAccumulator{acc: accumulator.New()}

	var g errgroup.Group
	for _, path := range paths {
		g.Go(func() error {
			defer startWorkerSpan(ctx, path)()
			scanFile(path, m.cfg.opener, rep, func(op ops.Operation, line int) {
				if lineErr := shared.apply(op, path, line); lineErr != nil {
					rep.lineFailed(lineErr)
					return
				}
				m.cfg.recorder.OperationApplied(m.Name())
			})
			m.cfg.logger.Debug("worker done", logging.String("strategy", m.Name()), logging.String("file", path))
			return nil
		})
	}
	// Workers never return errors; failures go through the reporter.
	_ = g.Wait()

	// Wait establishes happens-before with every worker's last apply.
	res := Result{Value: shared.acc.Value(), Applied: shared.applied, Failures: rep.snapshot()}
	m.cfg.recorder.RunCompleted(m.Name(), time.Since(start))
	end(res)
	return res
}
