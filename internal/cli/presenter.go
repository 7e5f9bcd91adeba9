package cli

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/agbru/accumcalc/internal/bench"
	"github.com/agbru/accumcalc/internal/format"
	"github.com/agbru/accumcalc/internal/ui"
)

// CLIProgressReporter implements bench.ProgressReporter with a spinner.
type CLIProgressReporter struct{}

var _ bench.ProgressReporter = CLIProgressReporter{}

// DisplayProgress delegates to DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan bench.Progress, numRunners int, out io.Writer) {
	DisplayProgress(wg, progressChan, numRunners, out)
}

// CLIResultPresenter implements bench.ResultPresenter for terminal output.
type CLIResultPresenter struct{}

var _ bench.ResultPresenter = CLIResultPresenter{}

var comparisonHeaders = []string{"Strategy", "Best", "Mean", "Value", "Distinct", "Applied", "Failures", "Alloc/round", "CPU"}

// PresentComparisonTable renders one row per strategy. Results arrive
// sorted fastest first, so the first row is highlighted.
func (CLIResultPresenter) PresentComparisonTable(results []bench.Result, out io.Writer) {
	theme := ui.GetCurrentTableTheme()
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Name,
			format.FormatExecutionDuration(r.Duration),
			format.FormatExecutionDuration(r.Mean),
			strconv.Itoa(int(r.Value)),
			strconv.Itoa(r.Distinct),
			strconv.Itoa(r.Applied),
			strconv.Itoa(r.Failures),
			format.FormatBytes(r.Memory.TotalAlloc),
			fmt.Sprintf("%.0f%%", r.System.CPUPercent),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(comparisonHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return style.Bold(true).Foreground(theme.Header)
			case col == 0 && row == 0:
				return style.Bold(true).Foreground(theme.Fastest)
			case col == 0:
				return style.Foreground(theme.Name)
			case col == 3:
				return style.Foreground(theme.Value)
			case col == 6 && results[row].Failures > 0:
				return style.Foreground(theme.Warning)
			}
			return style
		})

	fmt.Fprintf(out, "\n--- Comparison Summary ---\n%s\n", t.Render())
	if anyFailures(results) {
		fmt.Fprintf(out, "%sSome strategies skipped lines or files%s; run with -v to see each failure.\n",
			ui.ColorError(), ui.ColorReset())
	}
}

func anyFailures(results []bench.Result) bool {
	for _, r := range results {
		if r.Failures > 0 {
			return true
		}
	}
	return false
}

// PresentSummary prints the fastest strategy and whether values agree.
func (CLIResultPresenter) PresentSummary(s bench.Summary, out io.Writer) {
	if s.Fastest == "" {
		fmt.Fprintf(out, "\nNo strategy was run.\n")
		return
	}
	fmt.Fprintf(out, "\n%sFastest strategy:%s %s%s%s\n",
		ui.ColorBold(), ui.ColorReset(), ui.ColorSuccess(), s.Fastest, ui.ColorReset())
	if s.HasReference {
		fmt.Fprintf(out, "Sequential reference value: %s%d%s\n", ui.ColorWarning(), s.Reference, ui.ColorReset())
	}
	if s.Agree {
		fmt.Fprintf(out, "All strategies ended on the same value.\n")
	} else {
		fmt.Fprintf(out, "%sFinal values differ across strategies%s: concurrent runs interleave files in any order.\n",
			ui.ColorWarning(), ui.ColorReset())
	}
}
