package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/agbru/accumcalc/internal/ops"
)

// allRunners returns one instance of every strategy.
func allRunners(opts ...Option) []Runner {
	return NewDefaultFactory(opts...).GetAll()
}

// writeFiles creates one temp file per content string and returns their
// paths in the same order.
func writeFiles(t testing.TB, contents ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(contents))
	for i, c := range contents {
		paths[i] = filepath.Join(dir, fmt.Sprintf("input%02d.txt", i))
		if err := os.WriteFile(paths[i], []byte(c), 0o600); err != nil {
			t.Fatalf("write %s: %v", paths[i], err)
		}
	}
	return paths
}

// render formats operations as file content, one per line.
func render(seq []ops.Operation) string {
	var b strings.Builder
	for _, op := range seq {
		b.WriteString(op.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// reachable returns every final value produced by some interleaving of the
// per-file sequences that keeps each file's own order.
func reachable(files [][]ops.Operation) map[uint8]bool {
	type state struct {
		pos   [4]int
		value uint8
	}
	if len(files) > 4 {
		panic("reachable supports at most 4 files")
	}
	finals := make(map[uint8]bool)
	seen := make(map[state]bool)
	var walk func(s state)
	walk = func(s state) {
		if seen[s] {
			return
		}
		seen[s] = true
		done := true
		for i, f := range files {
			if s.pos[i] == len(f) {
				continue
			}
			done = false
			next := s
			next.pos[i]++
			next.value = applyValue(s.value, f[s.pos[i]])
			walk(next)
		}
		if done {
			finals[s.value] = true
		}
	}
	walk(state{})
	return finals
}

func applyValue(v uint8, op ops.Operation) uint8 {
	switch op.Kind {
	case ops.Add:
		return v + op.Operand
	case ops.Subtract:
		return v - op.Operand
	case ops.Multiply:
		return v * op.Operand
	default:
		if op.Operand == 0 {
			return v
		}
		return v / op.Operand
	}
}

var errDisk = errors.New("input/output error")

// failingReader yields content, then fails with errDisk.
type failingReader struct {
	r io.Reader
}

func (f *failingReader) Read(p []byte) (int, error) {
	n, err := f.r.Read(p)
	if err == io.EOF {
		return n, errDisk
	}
	return n, err
}

func (f *failingReader) Close() error { return nil }

// failingOpener serves content for every path listed in broken through a
// reader that fails after it, and falls back to OpenFile otherwise.
func failingOpener(broken map[string]string) Opener {
	return func(path string) (io.ReadCloser, error) {
		if content, ok := broken[path]; ok {
			return &failingReader{r: strings.NewReader(content)}, nil
		}
		return OpenFile(path)
	}
}

// lockedWriter serializes writes from concurrent workers into w.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
