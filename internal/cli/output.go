// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayValue], [DisplayQuietResults], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult], [FormatProgress].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteMetricsFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/agbru/accumcalc/internal/bench"
	"github.com/agbru/accumcalc/internal/metrics"
)

// DisplayValue prints the final accumulator value in decimal followed by a
// newline. It is the only thing a plain run writes to standard output.
func DisplayValue(out io.Writer, value uint8) {
	fmt.Fprintln(out, value)
}

// FormatQuietResult formats one harness result as a single script-friendly
// line: strategy, final value and best-round duration in nanoseconds.
func FormatQuietResult(r bench.Result) string {
	return fmt.Sprintf("%s %d %d", r.Name, r.Value, r.Duration.Nanoseconds())
}

// DisplayQuietResults prints FormatQuietResult for every result.
func DisplayQuietResults(out io.Writer, results []bench.Result) {
	for _, r := range results {
		fmt.Fprintln(out, FormatQuietResult(r))
	}
}

// WriteMetricsFile writes the recorder's Prometheus text exposition to path,
// creating parent directories as needed.
//
// Parameters:
//   - path: Destination file; it is truncated if it exists.
//   - rec: The recorder holding the run's metrics.
//
// Returns:
//   - error: An error if the directory or file cannot be written.
func WriteMetricsFile(path string, rec *metrics.PrometheusRecorder) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create metrics file: %w", err)
	}
	if err := rec.WriteText(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return file.Close()
}
