package distance

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/junction/point"
	"golang.org/x/sync/errgroup"
)

// Index is the immutable, totally ordered sequence of all pair edges of a
// point.Store.
type Index struct {
	store *point.Store
	edges []Edge
}

// Euclidean returns the exact squared distance between p and q and its
// square root.
func Euclidean(p, q point.Point) (squared int64, dist float64) {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z
	squared = dx*dx + dy*dy + dz*dz

	return squared, math.Sqrt(float64(squared))
}

// Build computes every unordered pair edge of store and sorts them.
//
// Error Conditions:
//   - ErrNilStore        : store == nil.
//   - ErrTooFewPoints    : store.Len() < 2.
//   - ErrOptionViolation : an Option was invalid.
//
// Steps:
//  1. Resolve options and validate the store.
//  2. Allocate n·(n−1)/2 edges; row i owns the slots of pairs (i, j>i).
//  3. Fill rows sequentially or via errgroup workers.
//  4. Sort by (Distance, A, B).
func Build(store *point.Store, opts ...Option) (*Index, error) {
	// 1. Options and validation.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if store == nil {
		return nil, ErrNilStore
	}
	n := store.Len()
	if n < 2 {
		return nil, fmt.Errorf("got %d: %w", n, ErrTooFewPoints)
	}

	// 2. Flat triangle storage.
	pts := store.Points()
	edges := make([]Edge, n*(n-1)/2)

	// 3. Pair distances.
	if o.Workers <= 1 {
		for i := 0; i < n-1; i++ {
			fillRow(pts, edges, i)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(o.Workers)
		for i := 0; i < n-1; i++ {
			row := i
			g.Go(func() error {
				fillRow(pts, edges, row)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	// 4. Total order.
	sort.Slice(edges, func(i, j int) bool { return Less(edges[i], edges[j]) })

	return &Index{store: store, edges: edges}, nil
}

// fillRow writes the edges (i, j) for every j > i into their reserved slots.
func fillRow(pts []point.Point, edges []Edge, i int) {
	n := len(pts)
	k := rowOffset(i, n)
	for j := i + 1; j < n; j++ {
		sq, d := Euclidean(pts[i], pts[j])
		edges[k] = Edge{A: i, B: j, Squared: sq, Distance: d}
		k++
	}
}

// rowOffset is the number of pairs (a, b), a < b, with a < i.
func rowOffset(i, n int) int {
	return i * (2*n - i - 1) / 2
}

// Len returns the number of edges, n·(n−1)/2.
func (ix *Index) Len() int { return len(ix.edges) }

// At returns the i-th edge in order. ok is false when i is out of range.
func (ix *Index) At(i int) (e Edge, ok bool) {
	if i < 0 || i >= len(ix.edges) {
		return Edge{}, false
	}

	return ix.edges[i], true
}

// Edges returns a copy of the full ordered edge sequence.
func (ix *Index) Edges() []Edge {
	return ix.Prefix(len(ix.edges))
}

// Prefix returns a copy of the first n edges, clamped to [0, Len()].
func (ix *Index) Prefix(n int) []Edge {
	n = max(0, min(n, len(ix.edges)))
	out := make([]Edge, n)
	copy(out, ix.edges[:n])

	return out
}

// Points returns the store the index was built from.
func (ix *Index) Points() *point.Store { return ix.store }

// Each calls fn for edges in order until fn returns false. The callback
// receives the 0-based position of the edge.
func (ix *Index) Each(fn func(i int, e Edge) bool) {
	for i, e := range ix.edges {
		if !fn(i, e) {
			return
		}
	}
}
