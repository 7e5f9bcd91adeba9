//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"

	"github.com/agbru/accumcalc/internal/bench"
)

// ProgressRefreshRate defines the spinner refresh frequency.
const ProgressRefreshRate = 100 * time.Millisecond

// Spinner abstracts the terminal spinner so DisplayProgress can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts *spinner.Spinner to Spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix takes the spinner's lock since its animation goroutine reads
// Suffix concurrently.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// isTerminal reports whether w is an interactive terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// FormatProgress renders the spinner suffix for a round about to start.
func FormatProgress(p bench.Progress, numRunners int) string {
	return fmt.Sprintf(" Running %s (%d/%d), round %d/%d", p.Name, p.Index+1, numRunners, p.Round, p.Rounds)
}

// DisplayProgress shows a spinner on out while the harness runs. When out
// is not a terminal the updates are drained silently.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan bench.Progress, numRunners int, out io.Writer) {
	defer wg.Done()
	if !isTerminal(out) {
		for range progressChan {
		}
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.Start()
	defer s.Stop()
	for p := range progressChan {
		s.UpdateSuffix(FormatProgress(p, numRunners))
	}
}
