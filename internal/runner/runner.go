package runner

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/agbru/accumcalc/internal/accumulator"
	"github.com/agbru/accumcalc/internal/logging"
	"github.com/agbru/accumcalc/internal/metrics"
	"github.com/agbru/accumcalc/internal/ops"
)

// Strategy tags accepted by Factory.Get.
const (
	StrategySequential = "sequential"
	StrategyMutex      = "mutex"
	StrategyChannel    = "channel"
)

// DefaultChannelBuffer is the capacity of the operation channel used by the
// Channel runner when no WithChannelBuffer option is given.
const DefaultChannelBuffer = 64

var tracer = otel.Tracer("github.com/agbru/accumcalc/internal/runner")

// Result is the outcome of one run over a set of files.
type Result struct {
	// Value is the final accumulator value.
	Value uint8
	// Applied counts operations applied to the accumulator. Skipped lines
	// and divisions by zero are not counted.
	Applied int
	// Failures lists every reported *FileError and *LineError. Order across
	// files is unspecified for concurrent strategies.
	Failures []error
}

// Runner folds the operations of every file in paths into a fresh
// accumulator and returns the final state. Runs cannot be cancelled; ctx
// only carries tracing information.
type Runner interface {
	Name() string
	Run(ctx context.Context, paths []string) Result
}

// Option configures a runner.
type Option func(*settings)

type settings struct {
	opener   Opener
	logger   logging.Logger
	recorder metrics.Recorder
	buffer   int
}

func newSettings(opts []Option) settings {
	cfg := settings{
		opener:   OpenFile,
		logger:   logging.NewNop(),
		recorder: metrics.NopRecorder{},
		buffer:   DefaultChannelBuffer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithOpener replaces the file opener.
func WithOpener(open Opener) Option {
	return func(s *settings) { s.opener = open }
}

// WithLogger sets the logger failures are reported to.
func WithLogger(l logging.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(s *settings) { s.recorder = r }
}

// WithChannelBuffer sets the operation channel capacity of the Channel
// runner. 0 makes the channel unbuffered. Other runners ignore it.
func WithChannelBuffer(n int) Option {
	return func(s *settings) {
		if n >= 0 {
			s.buffer = n
		}
	}
}

// apply folds op into acc. Division by zero leaves acc unchanged and is
// returned as a *LineError for the caller to report outside any lock.
func apply(acc *accumulator.Accumulator, op ops.Operation, path string, line int) *LineError {
	if err := acc.Apply(op); err != nil {
		return &LineError{Path: path, Line: line, Cause: err}
	}
	return nil
}

func startSpan(ctx context.Context, name, strategy string, files int) (context.Context, func(Result)) {
	ctx, span := tracer.Start(ctx, name)
	span.SetAttributes(attribute.String("strategy", strategy), attribute.Int("files", files))
	return ctx, func(res Result) {
		span.SetAttributes(
			attribute.Int("value", int(res.Value)),
			attribute.Int("applied", res.Applied),
			attribute.Int("failures", len(res.Failures)),
		)
		span.End()
	}
}

func startWorkerSpan(ctx context.Context, path string) func() {
	_, span := tracer.Start(ctx, "runner.worker")
	span.SetAttributes(attribute.String("file", path))
	return func() { span.End() }
}
