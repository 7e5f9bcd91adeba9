package app

import (
	"context"
	"io"
	"time"

	"github.com/agbru/accumcalc/internal/bench"
	"github.com/agbru/accumcalc/internal/cli"
	apperrors "github.com/agbru/accumcalc/internal/errors"
	"github.com/agbru/accumcalc/internal/format"
	"github.com/agbru/accumcalc/internal/logging"
)

// runSingle runs the configured strategy once and prints its final value.
// Per-file and per-line failures are logged by the runner and never change
// the exit code.
func (a *Application) runSingle(ctx context.Context, out io.Writer) int {
	r, err := a.newFactory(a.Logger).Get(a.Config.Strategy)
	if err != nil {
		a.Logger.Error("failed to build runner", err)
		return apperrors.ExitErrorConfig
	}

	start := time.Now()
	res := r.Run(ctx, a.Config.Paths)
	a.Logger.Debug("run completed",
		logging.String("strategy", r.Name()),
		logging.Int("files", len(a.Config.Paths)),
		logging.Int("applied", res.Applied),
		logging.Int("failures", len(res.Failures)),
		logging.String("duration", format.FormatExecutionDuration(time.Since(start))),
	)

	cli.DisplayValue(out, res.Value)
	return apperrors.ExitSuccess
}

// runBench times every strategy over the same files. Runner failures repeat
// on every round, so they are only logged in verbose mode; the table still
// counts them.
func (a *Application) runBench(ctx context.Context, out io.Writer) int {
	logger := a.Logger
	if !a.Config.Verbose {
		logger = logging.NewNop()
	}
	runners := a.newFactory(logger).GetAll()

	var reporter bench.ProgressReporter = bench.NullProgressReporter{}
	progressOut := io.Discard
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		reporter = cli.CLIProgressReporter{}
		progressOut = a.ErrWriter
	}

	results := bench.Execute(ctx, runners, a.Config.Paths, bench.Options{Rounds: a.Config.Rounds}, reporter, progressOut)
	if a.Config.Quiet {
		cli.DisplayQuietResults(out, results)
		return apperrors.ExitSuccess
	}

	bench.AnalyzeResults(results, cli.CLIResultPresenter{}, out)
	return apperrors.ExitSuccess
}
