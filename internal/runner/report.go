package runner

import (
	"sync"

	"github.com/agbru/accumcalc/internal/logging"
	"github.com/agbru/accumcalc/internal/metrics"
)

// reporter collects failures from concurrent workers, logging each one as
// it happens and keeping them in arrival order for the Result.
type reporter struct {
	strategy string
	logger   logging.Logger
	recorder metrics.Recorder

	mu       sync.Mutex
	failures []error
}

func newReporter(strategy string, cfg settings) *reporter {
	return &reporter{strategy: strategy, logger: cfg.logger, recorder: cfg.recorder}
}

func (r *reporter) fileFailed(err *FileError) {
	if err.Stage == StageOpen {
		r.logger.Error("failed to open file", err.Cause, logging.String("file", err.Path))
	} else {
		r.logger.Error("failed to read line", err.Cause,
			logging.String("file", err.Path), logging.Int("line", err.Line+1))
	}
	r.recorder.FileFailed(r.strategy, reason(err))
	r.add(err)
}

func (r *reporter) lineFailed(err *LineError) {
	msg := "failed to parse line"
	if reason(err) == "divide_by_zero" {
		msg = "failed to apply operation"
	}
	r.logger.Error(msg, err.Cause, logging.String("file", err.Path), logging.Int("line", err.Line))
	r.recorder.LineFailed(r.strategy, reason(err))
	r.add(err)
}

func (r *reporter) add(err error) {
	r.mu.Lock()
	r.failures = append(r.failures, err)
	r.mu.Unlock()
}

// snapshot returns the failures collected so far. Callers invoke it after
// every worker has been joined.
func (r *reporter) snapshot() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.failures...)
}
