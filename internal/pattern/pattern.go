// Package pattern loads initial grid seeds from text files: one row of N
// characters per line, '0' for a dead cell and any other character for a
// live one. Both generation buffers end up identical, so the first
// exported frame and the first step see the same seed.
package pattern

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"lifelab/internal/core"
)

// SourceError reports a seed file that could not be opened.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("pattern: cannot open %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// TruncatedError reports a seed source that ended before all N rows were
// read. Row is the zero-based index of the first missing row.
type TruncatedError struct {
	Row  int
	Want int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("pattern: input ends at row %d of %d", e.Row, e.Want)
}

// RowLengthError reports a row whose width does not match the grid side.
type RowLengthError struct {
	Row  int
	Got  int
	Want int
}

func (e *RowLengthError) Error() string {
	return fmt.Sprintf("pattern: row %d is %d cells wide, want %d", e.Row, e.Got, e.Want)
}

// Load populates both buffers of store identically from r. Every row must
// be exactly N characters followed by a newline; a width mismatch is a
// RowLengthError and a missing row is a TruncatedError. On error the
// store contents are unspecified and the caller must not step.
func Load(r io.Reader, store *core.Store) error {
	n := store.N()
	prev := store.Prev().Cells()
	cur := store.Cur().Cells()

	sc := bufio.NewScanner(r)
	if n+2 > bufio.MaxScanTokenSize {
		sc.Buffer(make([]byte, 0, n+2), n+2)
	}

	for y := 0; y < n; y++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("pattern: read row %d: %w", y, err)
			}
			return &TruncatedError{Row: y, Want: n}
		}
		line := sc.Bytes()
		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
		if len(line) != n {
			return &RowLengthError{Row: y, Got: len(line), Want: n}
		}
		base := y * n
		for x, ch := range line {
			var v uint8
			if ch != '0' {
				v = 1
			}
			prev[base+x] = v
			cur[base+x] = v
		}
	}
	return nil
}

// LoadFile opens path and loads it into store via Load.
func LoadFile(path string, store *core.Store) error {
	f, err := os.Open(path)
	if err != nil {
		return &SourceError{Path: path, Err: err}
	}
	defer f.Close()
	if err := Load(f, store); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
