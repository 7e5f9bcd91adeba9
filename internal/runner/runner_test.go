package runner

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agbru/accumcalc/internal/accumulator"
	"github.com/agbru/accumcalc/internal/logging"
	"github.com/agbru/accumcalc/internal/metrics"
	"github.com/agbru/accumcalc/internal/ops"
)

func TestSequentialScenarios(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		files        []string
		wantValue    uint8
		wantApplied  int
		wantFailures int
	}{
		{"single file", []string{"+ 10\n* 3\n- 5\n"}, 25, 3, 0},
		{"wrap across files", []string{"+ 200\n+ 100\n", "* 2\n"}, 88, 3, 0},
		{"empty file", []string{""}, 0, 0, 0},
		{"no files", nil, 0, 0, 0},
		{"malformed line skipped", []string{"+ 4\nfoo\n* 2\n"}, 8, 2, 1},
		{"divide by zero is a no-op", []string{"+ 9\n/ 0\n- 1\n"}, 8, 2, 1},
		{"no trailing newline", []string{"+ 1\n+ 2"}, 3, 2, 0},
		{"windows line endings", []string{"+ 6\r\n/ 4\r\n"}, 1, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			paths := writeFiles(t, tt.files...)
			res := NewSequential().Run(context.Background(), paths)
			if res.Value != tt.wantValue {
				t.Errorf("Value = %d, want %d", res.Value, tt.wantValue)
			}
			if res.Applied != tt.wantApplied {
				t.Errorf("Applied = %d, want %d", res.Applied, tt.wantApplied)
			}
			if len(res.Failures) != tt.wantFailures {
				t.Errorf("Failures = %v, want %d", res.Failures, tt.wantFailures)
			}
		})
	}
}

func TestRunnersReportFailures(t *testing.T) {
	t.Parallel()
	for _, r := range allRunners() {
		t.Run(r.Name(), func(t *testing.T) {
			t.Parallel()
			paths := writeFiles(t, "foo\n+ 7\n% 1\n+ 300\n/ 0\n")
			missing := filepath.Join(t.TempDir(), "missing.txt")
			res := r.Run(context.Background(), append([]string{missing}, paths...))

			if res.Value != 7 {
				t.Errorf("Value = %d, want 7", res.Value)
			}
			want := []error{ErrFileOpen, ops.ErrWrongArity, ops.ErrUnknownOperator, ops.ErrInvalidOperand, accumulator.ErrDivideByZero}
			if len(res.Failures) != len(want) {
				t.Fatalf("Failures = %v, want %d entries", res.Failures, len(want))
			}
			for _, target := range want {
				if !containsError(res.Failures, target) {
					t.Errorf("Failures %v should contain %v", res.Failures, target)
				}
			}
		})
	}
}

func TestLineErrorLocation(t *testing.T) {
	t.Parallel()
	paths := writeFiles(t, "+ 1\n\n+ 2\n")
	res := NewSequential().Run(context.Background(), paths)
	if len(res.Failures) != 1 {
		t.Fatalf("Failures = %v, want 1", res.Failures)
	}
	var lineErr *LineError
	if !errors.As(res.Failures[0], &lineErr) {
		t.Fatalf("failure should be *LineError, got %T", res.Failures[0])
	}
	if lineErr.Line != 2 || lineErr.Path != paths[0] {
		t.Errorf("LineError at %s:%d, want %s:2", lineErr.Path, lineErr.Line, paths[0])
	}
	if !errors.Is(lineErr, ops.ErrWrongArity) {
		t.Errorf("blank line should be WrongArity, got %v", lineErr.Cause)
	}
}

func TestReadErrorStopsOnlyThatFile(t *testing.T) {
	t.Parallel()
	for _, name := range []string{StrategySequential, StrategyMutex, StrategyChannel} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			paths := writeFiles(t, "", "+ 5\n")
			opener := failingOpener(map[string]string{paths[0]: "+ 3\n+ 4\n"})
			r, err := NewDefaultFactory(WithOpener(opener)).Get(name)
			if err != nil {
				t.Fatal(err)
			}
			res := r.Run(context.Background(), paths)

			if res.Value != 12 {
				t.Errorf("Value = %d, want 12", res.Value)
			}
			if len(res.Failures) != 1 || !errors.Is(res.Failures[0], ErrLineRead) {
				t.Fatalf("Failures = %v, want one read error", res.Failures)
			}
			var fileErr *FileError
			if !errors.As(res.Failures[0], &fileErr) || !errors.Is(fileErr, errDisk) {
				t.Errorf("read error should wrap the reader failure, got %v", res.Failures[0])
			}
			if fileErr.Line != 2 {
				t.Errorf("FileError.Line = %d, want 2", fileErr.Line)
			}
		})
	}
}

func TestLongLineIsParsed(t *testing.T) {
	t.Parallel()
	long := "+" + strings.Repeat(" ", 70000) + "5"
	paths := writeFiles(t, "+ 1\n"+long+"\n+ 2\n")
	for _, r := range allRunners() {
		t.Run(r.Name(), func(t *testing.T) {
			t.Parallel()
			res := r.Run(context.Background(), paths)
			if res.Value != 8 || res.Applied != 3 {
				t.Errorf("Value = %d, Applied = %d, want 8 and 3", res.Value, res.Applied)
			}
			if len(res.Failures) != 0 {
				t.Errorf("unexpected failures: %v", res.Failures)
			}
		})
	}
}

func TestInvalidUTF8StopsFile(t *testing.T) {
	t.Parallel()
	paths := writeFiles(t, "+ 1\n+ \xff\n+ 2\n", "* 3\n")
	for _, r := range allRunners() {
		t.Run(r.Name(), func(t *testing.T) {
			t.Parallel()
			res := r.Run(context.Background(), paths[:1])
			if res.Value != 1 || res.Applied != 1 {
				t.Errorf("Value = %d, Applied = %d, want 1 and 1", res.Value, res.Applied)
			}
			if len(res.Failures) != 1 || !errors.Is(res.Failures[0], ErrLineRead) || !errors.Is(res.Failures[0], ErrInvalidUTF8) {
				t.Fatalf("Failures = %v, want one invalid UTF-8 read error", res.Failures)
			}
			var fileErr *FileError
			if errors.As(res.Failures[0], &fileErr) && fileErr.Line != 1 {
				t.Errorf("FileError.Line = %d, want 1", fileErr.Line)
			}

			// The next file is still processed.
			res = r.Run(context.Background(), paths)
			if r.Name() == StrategySequential && res.Value != 3 {
				t.Errorf("Value = %d, want 3", res.Value)
			}
			if res.Applied != 2 {
				t.Errorf("Applied = %d, want 2", res.Applied)
			}
		})
	}
}

func TestFailuresAreLogged(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := logging.NewLogger(&lockedWriter{w: &buf}, "runner")
	paths := writeFiles(t, "foo\n/ 0\n")
	missing := filepath.Join(t.TempDir(), "nope.txt")

	NewChannel(WithLogger(logger)).Run(context.Background(), append(paths, missing))

	out := buf.String()
	for _, want := range []string{"failed to parse line", "failed to apply operation", "failed to open file", "nope.txt", "division by zero"} {
		if !strings.Contains(out, want) {
			t.Errorf("log should contain %q, got:\n%s", want, out)
		}
	}
}

func TestRecorderCounts(t *testing.T) {
	t.Parallel()
	rec := metrics.NewPrometheusRecorder()
	paths := writeFiles(t, "+ 1\n+ 1\nbad\n", "+ 1\n/ 0\n")
	NewMutex(WithRecorder(rec)).Run(context.Background(), paths)

	var buf bytes.Buffer
	if err := rec.WriteText(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`accumcalc_operations_applied_total{strategy="mutex"} 3`,
		`accumcalc_line_failures_total{reason="wrong_arity",strategy="mutex"} 1`,
		`accumcalc_line_failures_total{reason="divide_by_zero",strategy="mutex"} 1`,
		`accumcalc_run_duration_seconds_count{strategy="mutex"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics should contain %q, got:\n%s", want, out)
		}
	}
}

func TestSingleFileMatchesSequential(t *testing.T) {
	t.Parallel()
	paths := writeFiles(t, "+ 200\n* 3\n- 17\n/ 3\n* 255\n+ 1\n/ 0\n- 9\n")
	want := NewSequential().Run(context.Background(), paths)
	for _, r := range allRunners() {
		for i := 0; i < 20; i++ {
			got := r.Run(context.Background(), paths)
			if got.Value != want.Value || got.Applied != want.Applied {
				t.Fatalf("%s run %d = (%d, %d), want (%d, %d)", r.Name(), i, got.Value, got.Applied, want.Value, want.Applied)
			}
		}
	}
}

func TestNoLostUpdates(t *testing.T) {
	t.Parallel()
	const files, lines = 16, 1000
	content := strings.Repeat("+ 1\n", lines)
	contents := make([]string, files)
	for i := range contents {
		contents[i] = content
	}
	paths := writeFiles(t, contents...)

	for _, r := range allRunners(WithChannelBuffer(0)) {
		res := r.Run(context.Background(), paths)
		if want := uint8(files * lines % 256); res.Value != want {
			t.Errorf("%s: Value = %d, want %d", r.Name(), res.Value, want)
		}
		if res.Applied != files*lines {
			t.Errorf("%s: Applied = %d, want %d", r.Name(), res.Applied, files*lines)
		}
	}
}

func TestConcurrentResultIsReachable(t *testing.T) {
	t.Parallel()
	seqs := [][]ops.Operation{
		{{Kind: ops.Add, Operand: 7}, {Kind: ops.Multiply, Operand: 3}, {Kind: ops.Subtract, Operand: 2}},
		{{Kind: ops.Multiply, Operand: 5}, {Kind: ops.Divide, Operand: 2}},
		{{Kind: ops.Add, Operand: 250}, {Kind: ops.Divide, Operand: 0}, {Kind: ops.Add, Operand: 9}},
	}
	contents := make([]string, len(seqs))
	for i, s := range seqs {
		contents[i] = render(s)
	}
	paths := writeFiles(t, contents...)
	valid := reachable(seqs)

	for _, r := range []Runner{NewMutex(), NewChannel(), NewChannel(WithChannelBuffer(0))} {
		for i := 0; i < 200; i++ {
			res := r.Run(context.Background(), paths)
			if !valid[res.Value] {
				t.Fatalf("%s produced %d, which no interleaving reaches (valid: %v)", r.Name(), res.Value, valid)
			}
			if res.Applied != 7 || len(res.Failures) != 1 {
				t.Fatalf("%s: Applied=%d Failures=%v, want 7 and 1", r.Name(), res.Applied, res.Failures)
			}
		}
	}
}

func TestReachableHelper(t *testing.T) {
	t.Parallel()
	got := reachable([][]ops.Operation{
		{{Kind: ops.Add, Operand: 1}},
		{{Kind: ops.Multiply, Operand: 2}},
	})
	// (0+1)*2 = 2, 0*2+1 = 1
	if len(got) != 2 || !got[1] || !got[2] {
		t.Errorf("reachable = %v, want {1, 2}", got)
	}
}

func containsError(errs []error, target error) bool {
	for _, err := range errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
