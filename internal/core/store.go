package core

// Store owns the two generation buffers of a double-buffered run. The
// buffer holding the latest completed generation is always Prev; Cur is
// the scratch destination for the step in progress. Exactly two buffers
// exist for the lifetime of the store, however many times Swap is called.
type Store struct {
	prev *Buffer
	cur  *Buffer
}

// NewStore allocates both generation buffers at side length n, all cells
// dead. n <= 0 returns ErrInvalidDimension before any allocation.
func NewStore(n int) (*Store, error) {
	if n <= 0 {
		return nil, ErrInvalidDimension
	}
	return &Store{prev: NewBuffer(n), cur: NewBuffer(n)}, nil
}

// N returns the side length shared by both buffers.
func (s *Store) N() int { return s.prev.N }

// Prev returns the buffer holding the latest completed generation.
func (s *Store) Prev() *Buffer { return s.prev }

// Cur returns the buffer the next step writes into.
func (s *Store) Cur() *Buffer { return s.cur }

// Swap exchanges the prev/cur roles in O(1). No cell data moves; only
// the two bindings change. Calling it twice restores the original roles.
func (s *Store) Swap() {
	s.prev, s.cur = s.cur, s.prev
}
