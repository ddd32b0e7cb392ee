package life

import (
	"sync"

	"lifelab/internal/core"
	rng "lifelab/pkg/core"
)

// Life evolves Conway's Game of Life on a square grid with a fixed
// boundary: the outermost ring of cells keeps whatever state the initial
// seed gave it and is never evaluated or rewritten. Only the interior,
// 1 <= x, y <= N-2, follows the transition rule.
type Life struct {
	store   *core.Store
	n       int
	gen     int
	workers int
}

// New returns a Life simulation with side length n. Both generation
// buffers start fully dead. n <= 0 returns core.ErrInvalidDimension.
func New(n int) (*Life, error) {
	store, err := core.NewStore(n)
	if err != nil {
		return nil, err
	}
	return &Life{store: store, n: n, workers: 1}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.n, H: l.n} }

// Cells exposes the latest completed generation.
func (l *Life) Cells() []uint8 { return l.store.Prev().Cells() }

// Generation returns the number of steps taken since the last seed.
func (l *Life) Generation() int { return l.gen }

// Store exposes the underlying double buffer so loaders can seed it.
func (l *Life) Store() *core.Store { return l.store }

// SetWorkers sets how many goroutines Step uses for the interior update.
// Values below 2 select the plain sequential loop.
func (l *Life) SetWorkers(w int) {
	if w < 1 {
		w = 1
	}
	l.workers = w
}

// Reset seeds roughly N²/10 random interior cells into both buffers,
// leaving the boundary ring dead. Deterministic for a given seed.
func (l *Life) Reset(seed int64) {
	prev := l.store.Prev()
	cur := l.store.Cur()
	prev.Clear()
	cur.Clear()
	l.gen = 0

	interior := l.n - 2
	if interior <= 0 {
		return
	}
	r := rng.NewRNG(seed)
	for i := 0; i < (l.n*l.n)/10; i++ {
		pos := r.IntN(interior * interior)
		idx := prev.Index(pos%interior+1, pos/interior+1)
		prev.Cells()[idx] = 1
		cur.Cells()[idx] = 1
	}
}

// Step advances the simulation by one generation. The new state of every
// interior cell is a pure function of the previous generation's
// 8-neighborhood; boundary cells are left untouched. The buffers swap
// roles afterwards, so Cells always points at the completed generation.
func (l *Life) Step() {
	n := l.n
	if n > 2 {
		prev := l.store.Prev().Cells()
		cur := l.store.Cur().Cells()
		if l.workers > 1 {
			l.stepParallel(prev, cur)
		} else {
			stepRows(prev, cur, n, 1, n-1)
		}
	}
	l.store.Swap()
	l.gen++
}

// stepRows applies the transition rule to rows [y0, y1). Iteration is
// row-major so the eight neighbor reads stay within three consecutive
// rows of the previous buffer.
func stepRows(prev, cur []uint8, n, y0, y1 int) {
	for y := y0; y < y1; y++ {
		row := y * n
		up := row - n
		down := row + n
		for x := 1; x < n-1; x++ {
			nbrs := prev[up+x-1] + prev[up+x] + prev[up+x+1] +
				prev[row+x-1] + prev[row+x+1] +
				prev[down+x-1] + prev[down+x] + prev[down+x+1]
			if nbrs == 3 || prev[row+x]+nbrs == 3 {
				cur[row+x] = 1
			} else {
				cur[row+x] = 0
			}
		}
	}
}

// stepParallel splits the interior rows into contiguous bands and updates
// them fork-join style. Workers read only prev and write disjoint rows of
// cur, so the only synchronization is the final barrier before the swap.
func (l *Life) stepParallel(prev, cur []uint8) {
	n := l.n
	rows := n - 2
	workers := l.workers
	if workers > rows {
		workers = rows
	}
	band := rows / workers

	var wg sync.WaitGroup
	y := 1
	for w := 0; w < workers; w++ {
		y0 := y
		y1 := y0 + band
		if w == workers-1 {
			y1 = n - 1
		}
		y = y1
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			stepRows(prev, cur, n, y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}
