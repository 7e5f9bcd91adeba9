package runner

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/accumcalc/internal/accumulator"
	"github.com/agbru/accumcalc/internal/logging"
	"github.com/agbru/accumcalc/internal/ops"
)

// Channel runs one producer goroutine per file and a single consumer that
// owns the accumulator. Producers only send; the consumer is the only code
// that ever touches the accumulator, so no lock is needed.
type Channel struct {
	cfg settings
}

// NewChannel creates a channel-based runner.
func NewChannel(opts ...Option) *Channel {
	return &Channel{cfg: newSettings(opts)}
}

// Name returns StrategyChannel.
func (c *Channel) Name() string { return StrategyChannel }

// envelope carries an operation with its origin so the consumer can report
// a division by zero against the right file and line.
type envelope struct {
	op   ops.Operation
	path string
	line int
}

type consumerResult struct {
	value   uint8
	applied int
}

// Run fans file producers into one channel, closes it once every producer
// has been joined, and waits for the consumer to drain it.
func (c *Channel) Run(ctx context.Context, paths []string) Result {
	ctx, end := startSpan(ctx, "runner.channel", c.Name(), len(paths))
	start := time.Now()
	rep := newReporter(c.Name(), c.cfg)

	opsCh := make(chan envelope, c.cfg.buffer)
	done := make(chan consumerResult, 1)
	go c.consume(opsCh, rep, done)

	var g errgroup.Group
	for _, path := range paths {
		g.Go(func() error {
			defer startWorkerSpan(ctx, path)()
			scanFile(path, c.cfg.opener, rep, func(op ops.Operation, line int) {
				opsCh <- envelope{op: op, path: path, line: line}
			})
			c.cfg.logger.Debug("producer done", logging.String("strategy", c.Name()), logging.String("file", path))
			return nil
		})
	}
	_ = g.Wait()
	close(opsCh)

	out := <-done
	res := Result{Value: out.value, Applied: out.applied, Failures: rep.snapshot()}
	c.cfg.recorder.RunCompleted(c.Name(), time.Since(start))
	end(res)
	return res
}

// consume applies operations in arrival order until opsCh is closed and
// drained, then publishes the final state on done.
func (c *Channel) consume(opsCh <-chan envelope, rep *reporter, done chan<- consumerResult) {
	acc := accumulator.New()
	applied := 0
	for env := range opsCh {
		if lineErr := apply(acc, env.op, env.path, env.line); lineErr != nil {
			rep.lineFailed(lineErr)
			continue
		}
		applied++
		c.cfg.recorder.OperationApplied(c.Name())
	}
	done <- consumerResult{value: acc.Value(), applied: applied}
}
