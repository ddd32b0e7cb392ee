package pattern

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lifelab/internal/core"
)

func newStore(t *testing.T, n int) *core.Store {
	t.Helper()
	s, err := core.NewStore(n)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestLoadReproducesThePattern(t *testing.T) {
	src := "00000\n" +
		"00100\n" +
		"00100\n" +
		"00100\n" +
		"00000\n"
	s := newStore(t, 5)
	if err := Load(strings.NewReader(src), s); err != nil {
		t.Fatal(err)
	}

	want := make([]uint8, 25)
	want[1*5+2] = 1
	want[2*5+2] = 1
	want[3*5+2] = 1

	if !bytes.Equal(s.Prev().Cells(), want) {
		t.Fatalf("prev = %v, want %v", s.Prev().Cells(), want)
	}
	if !bytes.Equal(s.Prev().Cells(), s.Cur().Cells()) {
		t.Fatal("buffers differ after Load")
	}
}

func TestLoadTreatsAnyNonZeroCharacterAsAlive(t *testing.T) {
	src := "0x0\n*.1\n 00\n"
	s := newStore(t, 3)
	if err := Load(strings.NewReader(src), s); err != nil {
		t.Fatal(err)
	}
	want := []uint8{
		0, 1, 0,
		1, 1, 1,
		1, 0, 0,
	}
	if !bytes.Equal(s.Prev().Cells(), want) {
		t.Fatalf("cells = %v, want %v", s.Prev().Cells(), want)
	}
}

func TestLoadAcceptsCRLFRows(t *testing.T) {
	src := "010\r\n111\r\n010\r\n"
	s := newStore(t, 3)
	if err := Load(strings.NewReader(src), s); err != nil {
		t.Fatal(err)
	}
	if s.Prev().Cells()[1*3+1] != 1 {
		t.Fatal("center cell not alive")
	}
}

func TestLoadReportsTruncatedInput(t *testing.T) {
	src := "00000\n00000\n00000\n"
	s := newStore(t, 5)
	err := Load(strings.NewReader(src), s)
	var trunc *TruncatedError
	if !errors.As(err, &trunc) {
		t.Fatalf("err = %v, want TruncatedError", err)
	}
	if trunc.Row != 3 || trunc.Want != 5 {
		t.Fatalf("TruncatedError = %+v, want Row=3 Want=5", trunc)
	}
}

func TestLoadReportsRowWidthMismatch(t *testing.T) {
	cases := []struct {
		name string
		src  string
		got  int
	}{
		{"short row", "000\n00\n000\n", 2},
		{"long row", "000\n0000\n000\n", 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newStore(t, 3)
			err := Load(strings.NewReader(tc.src), s)
			var rle *RowLengthError
			if !errors.As(err, &rle) {
				t.Fatalf("err = %v, want RowLengthError", err)
			}
			if rle.Row != 1 || rle.Got != tc.got || rle.Want != 3 {
				t.Fatalf("RowLengthError = %+v, want Row=1 Got=%d Want=3", rle, tc.got)
			}
		})
	}
}

func TestLoadFileMissingSource(t *testing.T) {
	s := newStore(t, 3)
	err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"), s)
	var src *SourceError
	if !errors.As(err, &src) {
		t.Fatalf("err = %v, want SourceError", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want to wrap fs.ErrNotExist", err)
	}
}

func TestLoadFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blinker.txt")
	if err := os.WriteFile(path, []byte("00000\n01110\n00000\n00000\n00000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := newStore(t, 5)
	if err := LoadFile(path, s); err != nil {
		t.Fatal(err)
	}
	for x := 1; x <= 3; x++ {
		if s.Prev().Cells()[1*5+x] != 1 {
			t.Fatalf("cell (%d,1) not alive", x)
		}
	}
}
