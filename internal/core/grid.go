package core

import "errors"

// ErrInvalidDimension reports a non-positive grid side length.
var ErrInvalidDimension = errors.New("grid side length must be positive")

// Buffer stores one square generation of cells in row-major order.
// A cell holds 1 when alive and 0 when dead.
type Buffer struct {
	N    int
	data []uint8
}

// NewBuffer allocates an N×N buffer with every cell dead.
func NewBuffer(n int) *Buffer {
	return &Buffer{N: n, data: make([]uint8, n*n)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (b *Buffer) Cells() []uint8 { return b.data }

// Index returns the linear slice index for coordinates (x, y).
func (b *Buffer) Index(x, y int) int { return y*b.N + x }

// Clear fills the buffer with dead cells.
func (b *Buffer) Clear() {
	for i := range b.data {
		b.data[i] = 0
	}
}
