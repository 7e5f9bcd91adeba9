package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/accumcalc/internal/config"
	"github.com/agbru/accumcalc/internal/ui"
)

// PrintExecutionConfig displays the benchmark configuration: input set,
// rounds, channel capacity and the runtime environment.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Benchmarking %s%d%s file(s) with %s%d%s round(s) per strategy.\n",
		ui.ColorPrimary(), len(cfg.Paths), ui.ColorReset(), ui.ColorWarning(), cfg.Rounds, ui.ColorReset())
	fmt.Fprintf(out, "Channel capacity: %s%d%s.\n", ui.ColorPrimary(), cfg.Buffer, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, GOMAXPROCS=%d, %sGo %s%s.\n",
		ui.ColorPrimary(), runtime.NumCPU(), ui.ColorReset(), runtime.GOMAXPROCS(0),
		ui.ColorSecondary(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
