// Package life implements a bit-packed, outer-totalistic 2-D cellular
// automaton engine: the cluster kernel, the halo primitive, the padded
// grid container, and the column-sweep generation-advance loop, all under
// a Dirichlet (fixed-zero) boundary.
package life

import (
	"math/bits"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/lifeclusters/bitlife/life/contrib/workerpool"
)

// Grid is a logical m x n cell grid advanced one generation at a time by
// Step, per spec.md §3/§4.3. Physical storage is column-major: cols[j] is
// a contiguous []Cluster of all cluster-rows in cluster-column j, so that
// every cluster word in "the current column" is contiguous in memory, as
// spec.md §3 asks for. cols has shape (P+2) columns x (m+2) rows; column
// 0, column P+1, row 0 and row m+1 are the zero Dirichlet border and are
// never written by Step.
type Grid struct {
	m, n int // logical height, width
	p    int // active cluster columns, ceil(n / ClusterCells)

	cols [][]Cluster // length p+2, each length m+2

	rule   Rule
	kernel func(above, center, below Cluster) Cluster

	bufA, bufB []Cluster // scratch columns, length m+2, reused across Step calls

	pool *workerpool.Pool
}

// NewGrid constructs a logical m x n grid under rule, per spec.md §6. It
// returns a *ConfigurationError if m or n is not positive.
func NewGrid(m, n int, rule Rule) (*Grid, error) {
	if m <= 0 {
		return nil, configErrorf("height must be positive, got %d", m)
	}
	if n <= 0 {
		return nil, configErrorf("width must be positive, got %d", n)
	}

	p := (n + ClusterCells - 1) / ClusterCells

	cols := make([][]Cluster, p+2)
	for j := range cols {
		cols[j] = make([]Cluster, m+2)
	}

	kfn, ok := specializedKernel(rule)
	if !ok {
		birth, survival := rule.BirthMask, rule.SurvivalMask
		kfn = func(above, center, below Cluster) Cluster {
			return kernel(above, center, below, birth, survival)
		}
	}

	return &Grid{
		m:      m,
		n:      n,
		p:      p,
		cols:   cols,
		rule:   rule,
		kernel: kfn,
		bufA:   make([]Cluster, m+2),
		bufB:   make([]Cluster, m+2),
		pool:   workerpool.New(runtime.GOMAXPROCS(0)),
	}, nil
}

// Close releases the grid's worker pool. Callers that create many
// short-lived grids should call Close when done with one; reusing one
// long-lived Grid across many Step calls (the intended usage, per
// spec.md §3's "destroyed when the owner drops it") makes Close
// unnecessary until then.
func (g *Grid) Close() {
	g.pool.Close()
}

// Width returns the logical grid width n.
func (g *Grid) Width() int { return g.n }

// Height returns the logical grid height m.
func (g *Grid) Height() int { return g.m }

// Rule returns the grid's rule.
func (g *Grid) Rule() Rule { return g.rule }

// cellLocation converts a 0-based (i, j) cell coordinate to its
// 1-based cluster row, 1-based cluster column, and bit position (1..C).
func (g *Grid) cellLocation(i, j int) (row, col int, bit uint) {
	row = i + 1
	col = j/ClusterCells + 1
	bit = uint(j%ClusterCells) + 1
	return row, col, bit
}

func (g *Grid) checkBounds(i, j int) {
	if i < 0 || i >= g.m || j < 0 || j >= g.n {
		panic(&BoundsError{I: i, J: j, Height: g.m, Width: g.n})
	}
}

// Get reports whether the cell at 0-based (i, j) is alive. It panics with
// a *BoundsError if (i, j) is outside the logical grid.
func (g *Grid) Get(i, j int) bool {
	g.checkBounds(i, j)
	row, col, bit := g.cellLocation(i, j)
	return (g.cols[col][row]>>bit)&1 != 0
}

// Set sets the cell at 0-based (i, j) to v. It panics with a
// *BoundsError if (i, j) is outside the logical grid.
func (g *Grid) Set(i, j int, v bool) {
	g.checkBounds(i, j)
	row, col, bit := g.cellLocation(i, j)
	if v {
		g.cols[col][row] |= 1 << bit
	} else {
		g.cols[col][row] &^= 1 << bit
	}
}

// LiveCount returns the number of live cells in the grid, a population
// census grounded in the teacher's hwy/bitops.go PopCount idiom: one
// bits.OnesCount64 per cluster word, with the two halo bits masked off so
// that halo-valid clusters (which mirror a neighboring cluster's edge
// cell into a halo bit) never double-count a cell.
//
// Cluster columns, not row chunks, are the natural unit of work here —
// each column's popcount loop is independent of every other column's —
// so the count is accumulated with the worker pool's ParallelForAtomic
// work-stealing dispatch (one work item per column) rather than
// RunChunks' fixed-length row tiling, the same dispatch the teacher uses
// for its own per-item reductions (hwy/contrib/nn/sdpa.go's per-head
// attention loop, hwy/contrib/matmul/matmul_parallel.go's per-row pass).
func (g *Grid) LiveCount() int {
	if g.p <= 0 {
		return 0
	}
	var total atomic.Int64
	g.pool.ParallelForAtomic(g.p, func(idx int) {
		col := idx + 1
		var local int64
		for row := 1; row <= g.m; row++ {
			local += int64(bits.OnesCount64(uint64(g.cols[col][row] & dataBitsMask)))
		}
		total.Add(local)
	})
	return int(total.Load())
}

// String renders the grid as a '#'/'.' ASCII grid, one row per line, for
// debugging and for cmd/lifebench's -print flag. It is not part of the
// core per spec.md §1 (no animation front-end is specified).
func (g *Grid) String() string {
	var b strings.Builder
	for i := 0; i < g.m; i++ {
		for j := 0; j < g.n; j++ {
			if g.Get(i, j) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		if i != g.m-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
