package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/agbru/accumcalc/internal/errors"
	"github.com/agbru/accumcalc/internal/logging"
)

// writeInputs writes one file per content string and returns their paths.
func writeInputs(t *testing.T, contents ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(contents))
	for i, c := range contents {
		paths[i] = filepath.Join(dir, "input"+string(rune('a'+i))+".txt")
		if err := os.WriteFile(paths[i], []byte(c), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return paths
}

func newTestApp(t *testing.T, args ...string) (*Application, *bytes.Buffer) {
	t.Helper()
	var errBuf bytes.Buffer
	a, err := New(append([]string{"accumcalc"}, args...), &errBuf)
	if err != nil {
		t.Fatalf("New(%v) error = %v\nstderr: %s", args, err, errBuf.String())
	}
	return a, &errBuf
}

func TestNew_Defaults(t *testing.T) {
	a, _ := newTestApp(t, "a.txt", "b.txt")
	if a.Config.Strategy != "sequential" {
		t.Errorf("Strategy = %q, want sequential", a.Config.Strategy)
	}
	if len(a.Config.Paths) != 2 {
		t.Errorf("Paths = %v, want 2 entries", a.Config.Paths)
	}
	if a.Logger == nil || a.Recorder == nil {
		t.Error("New should build a logger and a recorder")
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantHelp bool
		wantExit int
	}{
		{name: "help", args: []string{"-h"}, wantHelp: true},
		{name: "unknown strategy", args: []string{"-strategy", "fastest"}, wantExit: apperrors.ExitErrorConfig},
		{name: "zero rounds", args: []string{"-bench", "-rounds", "0"}, wantExit: apperrors.ExitErrorConfig},
		{name: "negative buffer", args: []string{"-buffer", "-1"}, wantExit: apperrors.ExitErrorConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(append([]string{"accumcalc"}, tt.args...), &bytes.Buffer{})
			if err == nil {
				t.Fatal("expected an error")
			}
			if IsHelpError(err) != tt.wantHelp {
				t.Errorf("IsHelpError() = %v, want %v", !tt.wantHelp, tt.wantHelp)
			}
			if !tt.wantHelp && apperrors.ExitCode(err) != tt.wantExit {
				t.Errorf("ExitCode() = %d, want %d", apperrors.ExitCode(err), tt.wantExit)
			}
		})
	}
}

func TestRun_Strategies(t *testing.T) {
	paths := writeInputs(t, "+ 5\n* 5\n")
	for _, strategy := range []string{"sequential", "mutex", "channel"} {
		t.Run(strategy, func(t *testing.T) {
			a, _ := newTestApp(t, append([]string{"-strategy", strategy}, paths...)...)
			var out bytes.Buffer
			if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
				t.Fatalf("Run() = %d, want %d", code, apperrors.ExitSuccess)
			}
			if out.String() != "25\n" {
				t.Errorf("stdout = %q, want %q", out.String(), "25\n")
			}
		})
	}
}

func TestRun_NoFiles(t *testing.T) {
	a, _ := newTestApp(t)
	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	if out.String() != "0\n" {
		t.Errorf("stdout = %q, want %q", out.String(), "0\n")
	}
}

func TestRun_FailuresKeepExitCode(t *testing.T) {
	paths := writeInputs(t, "+ 3\nhello\n/ 0\n")
	missing := filepath.Join(t.TempDir(), "missing.txt")

	a, errBuf := newTestApp(t, append(paths, missing)...)
	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, want success despite bad input", code)
	}
	if out.String() != "3\n" {
		t.Errorf("stdout = %q, want %q", out.String(), "3\n")
	}
	for _, want := range []string{"failed to parse line", "failed to apply operation", "failed to open file"} {
		if !strings.Contains(errBuf.String(), want) {
			t.Errorf("stderr missing %q:\n%s", want, errBuf.String())
		}
	}
}

func TestRun_EnvStrategy(t *testing.T) {
	t.Setenv("ACCUMCALC_STRATEGY", "channel")
	a, _ := newTestApp(t)
	if a.Config.Strategy != "channel" {
		t.Errorf("Strategy = %q, want channel", a.Config.Strategy)
	}
}

func TestRun_BenchQuiet(t *testing.T) {
	paths := writeInputs(t, "+ 5\n* 5\n", "- 1\n")
	a, _ := newTestApp(t, append([]string{"-bench", "-q", "-rounds", "2"}, paths...)...)

	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected one line per strategy, got:\n%s", out.String())
	}
	if !strings.HasPrefix(lines[0], "sequential 24 ") {
		t.Errorf("first line = %q, want the sequential reference 24", lines[0])
	}
}

func TestRun_BenchTable(t *testing.T) {
	paths := writeInputs(t, "+ 7\n")
	a, _ := newTestApp(t, append([]string{"-bench", "-no-color"}, paths...)...)

	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	for _, want := range []string{
		"--- Execution Configuration ---",
		"--- Comparison Summary ---",
		"sequential", "mutex", "channel",
		"Sequential reference value: 7",
		"All strategies ended on the same value.",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("stdout missing %q:\n%s", want, out.String())
		}
	}
}

func TestRun_MetricsOut(t *testing.T) {
	paths := writeInputs(t, "+ 1\n+ 1\nbad\n")
	metricsPath := filepath.Join(t.TempDir(), "out", "metrics.prom")
	a, _ := newTestApp(t, append([]string{"-strategy", "mutex", "-metrics-out", metricsPath}, paths...)...)

	if code := a.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	content, err := os.ReadFile(metricsPath)
	if err != nil {
		t.Fatalf("metrics file not written: %v", err)
	}
	for _, want := range []string{
		`accumcalc_operations_applied_total{strategy="mutex"} 2`,
		`accumcalc_line_failures_total{reason="wrong_arity",strategy="mutex"} 1`,
	} {
		if !strings.Contains(string(content), want) {
			t.Errorf("metrics missing %q:\n%s", want, content)
		}
	}
}

func TestRun_MetricsOutUnwritable(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(parent, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	var errBuf bytes.Buffer
	a, err := New([]string{"accumcalc", "-metrics-out", filepath.Join(parent, "m.prom")}, &errBuf,
		WithLogger(logging.NewConsoleLogger(&errBuf, "test", false)))
	if err != nil {
		t.Fatal(err)
	}
	if code := a.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitErrorGeneric {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitErrorGeneric)
	}
	if !strings.Contains(errBuf.String(), "failed to write metrics") {
		t.Errorf("stderr missing metrics failure:\n%s", errBuf.String())
	}
}

func TestRun_Completion(t *testing.T) {
	a, _ := newTestApp(t, "-completion", "zsh")
	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	if !strings.Contains(out.String(), "#compdef accumcalc") {
		t.Errorf("unexpected completion output:\n%s", out.String())
	}

	a, _ = newTestApp(t, "-completion", "tcsh")
	if code := a.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitErrorConfig {
		t.Errorf("Run() = %d, want %d for an unsupported shell", code, apperrors.ExitErrorConfig)
	}
}
