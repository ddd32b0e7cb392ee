package core

import (
	"errors"
	"testing"
)

func TestNewStoreRejectsInvalidDimension(t *testing.T) {
	for _, n := range []int{0, -1, -64} {
		if _, err := NewStore(n); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("NewStore(%d) err = %v, want ErrInvalidDimension", n, err)
		}
	}
}

func TestNewStoreStartsDead(t *testing.T) {
	s, err := NewStore(7)
	if err != nil {
		t.Fatal(err)
	}
	if s.N() != 7 {
		t.Fatalf("N = %d, want 7", s.N())
	}
	for _, b := range []*Buffer{s.Prev(), s.Cur()} {
		if len(b.Cells()) != 49 {
			t.Fatalf("buffer has %d cells, want 49", len(b.Cells()))
		}
		for i, c := range b.Cells() {
			if c != 0 {
				t.Fatalf("cell %d = %d, want dead", i, c)
			}
		}
	}
	if s.Prev() == s.Cur() {
		t.Fatal("prev and cur alias the same buffer")
	}
}

func TestSwapIsAnInvolutionWithoutCopying(t *testing.T) {
	s, err := NewStore(4)
	if err != nil {
		t.Fatal(err)
	}
	a, b := s.Prev(), s.Cur()

	// Mark a cell through a slice captured before the swap. If Swap moved
	// data instead of rebinding roles, the mark would not be visible
	// through the store afterwards.
	aCells := a.Cells()
	aCells[5] = 1

	s.Swap()
	if s.Prev() != b || s.Cur() != a {
		t.Fatal("one swap did not exchange the buffer roles")
	}
	if s.Cur().Cells()[5] != 1 {
		t.Fatal("swap lost data written before the swap")
	}

	s.Swap()
	if s.Prev() != a || s.Cur() != b {
		t.Fatal("two swaps did not restore the original bindings")
	}
}

func TestBufferIndexIsRowMajor(t *testing.T) {
	b := NewBuffer(5)
	if got := b.Index(0, 0); got != 0 {
		t.Errorf("Index(0,0) = %d, want 0", got)
	}
	if got := b.Index(3, 2); got != 13 {
		t.Errorf("Index(3,2) = %d, want 13", got)
	}
	if got := b.Index(4, 4); got != 24 {
		t.Errorf("Index(4,4) = %d, want 24", got)
	}
}
