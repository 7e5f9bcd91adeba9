package runner

import (
	"bufio"
	"io"
	"math"
	"os"
	"unicode/utf8"

	"github.com/agbru/accumcalc/internal/ops"
)

// Opener opens an input file for reading. OpenFile is the default; tests
// substitute readers that fail part way through.
type Opener func(path string) (io.ReadCloser, error)

// OpenFile opens path on the local filesystem.
func OpenFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// initialLineBuffer is the scanner's starting buffer; lines may grow past it
// without limit.
const initialLineBuffer = 64 * 1024

// scanFile reads path line by line and calls emit, in line order, for every
// line that parses. Parse failures are reported and skipped; an open or read
// failure, including a line that is not valid UTF-8, is reported and ends
// the file. Line numbers start at 1.
func scanFile(path string, open Opener, rep *reporter, emit func(op ops.Operation, line int)) {
	rc, err := open(path)
	if err != nil {
		rep.fileFailed(&FileError{Path: path, Stage: StageOpen, Cause: err})
		return
	}
	defer rc.Close()

	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), math.MaxInt)
	line := 0
	for scanner.Scan() {
		if !utf8.Valid(scanner.Bytes()) {
			rep.fileFailed(&FileError{Path: path, Stage: StageRead, Line: line, Cause: ErrInvalidUTF8})
			return
		}
		line++
		op, err := ops.Parse(scanner.Text())
		if err != nil {
			rep.lineFailed(&LineError{Path: path, Line: line, Cause: err})
			continue
		}
		emit(op, line)
	}
	if err := scanner.Err(); err != nil {
		rep.fileFailed(&FileError{Path: path, Stage: StageRead, Line: line, Cause: err})
	}
}
