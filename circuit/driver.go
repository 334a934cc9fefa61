package circuit

import (
	"fmt"
	"math/bits"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/junction/distance"
	"github.com/katalvlaran/junction/partition"
)

// Driver replays a distance.Index against fresh partitions.
// It holds no mutable state between queries.
type Driver struct {
	index *distance.Index
	opts  Options
}

// New returns a Driver over index.
//
// Error Conditions:
//   - ErrOptionViolation : an Option was invalid.
//   - ErrNilIndex        : index == nil.
func New(index *distance.Index, opts ...Option) (*Driver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if index == nil {
		return nil, ErrNilIndex
	}

	return &Driver{index: index, opts: o}, nil
}

// Edges returns the number of edges available to a replay.
func (d *Driver) Edges() int { return d.index.Len() }

// BoundedTopKProduct multiplies the sizes of the k largest circuits after the
// first edgeLimit edges.
//
// Steps:
//  1. Validate 1 ≤ edgeLimit ≤ Edges() and k ≥ 1.
//  2. Replay exactly edgeLimit edges; no-op edges count toward the limit.
//  3. Rank circuit sizes; fewer than k circuits → ErrInsufficientClusters.
//  4. Multiply the top k sizes, failing on uint64 overflow.
func (d *Driver) BoundedTopKProduct(edgeLimit, k int) (product uint64, err error) {
	start := time.Now()
	defer func() { d.finish(QueryTopK, start, err) }()

	// 1. Preconditions.
	if edgeLimit < 1 || edgeLimit > d.index.Len() {
		return 0, fmt.Errorf("%w: edgeLimit=%d outside [1, %d]", ErrInvalidArgument, edgeLimit, d.index.Len())
	}
	if k < 1 {
		return 0, fmt.Errorf("%w: k=%d < 1", ErrInvalidArgument, k)
	}

	// 2. Replay.
	p, err := d.replay(edgeLimit, nil)
	if err != nil {
		return 0, err
	}

	// 3. Rank.
	sizes := p.Sizes()
	if len(sizes) < k {
		return 0, fmt.Errorf("%w: want %d, have %d after %d edges", ErrInsufficientClusters, k, len(sizes), edgeLimit)
	}

	// 4. Product.
	product = 1
	for _, s := range sizes[:k] {
		hi, lo := bits.Mul64(product, uint64(s))
		if hi != 0 {
			return 0, fmt.Errorf("%w: top %d sizes %v", ErrProductOverflow, k, sizes[:k])
		}
		product = lo
	}
	d.opts.Logger.Info().
		Int("edges", edgeLimit).
		Int("k", k).
		Int("clusters", len(sizes)).
		Uint64("product", product).
		Msg("bounded top-k product")

	return product, nil
}

// ConvergenceEndpointProduct returns X(a) * X(b) for the closing edge (a, b).
func (d *Driver) ConvergenceEndpointProduct() (int64, error) {
	c, err := d.Converge()
	if err != nil {
		return 0, err
	}

	return c.Product, nil
}

// Converge replays edges until a single circuit remains and reports the
// closing edge.
func (d *Driver) Converge() (c Convergence, err error) {
	start := time.Now()
	defer func() { d.finish(QueryConverge, start, err) }()

	merges := 0
	var closing *Step
	_, err = d.replay(d.index.Len(), func(s Step) bool {
		if !s.Merged {
			return false
		}
		merges++
		if s.Clusters == 1 {
			closing = &s
			return true
		}
		return false
	})
	if err != nil {
		return Convergence{}, err
	}
	if closing == nil {
		return Convergence{}, fmt.Errorf("%w: %d merges over %d edges", ErrNeverConverges, merges, d.index.Len())
	}

	store := d.index.Points()
	pa, okA := store.At(closing.Edge.A)
	pb, okB := store.At(closing.Edge.B)
	if !okA || !okB {
		return Convergence{}, fmt.Errorf("%w: closing edge %v references unknown point", ErrNeverConverges, closing.Edge)
	}

	c = Convergence{
		Edge:    closing.Edge,
		Step:    closing.Index + 1,
		Merges:  merges,
		Product: pa.X * pb.X,
	}
	d.opts.Logger.Info().
		Stringer("closing", c.Edge).
		Int("step", c.Step).
		Int64("product", c.Product).
		Msg("converged")

	return c, nil
}

// Snapshot returns the circuits after the first edgeLimit edges, ordered by
// size descending with ties broken by lowest member. edgeLimit 0 yields
// singletons.
func (d *Driver) Snapshot(edgeLimit int) (out []Cluster, err error) {
	start := time.Now()
	defer func() { d.finish(QuerySnapshot, start, err) }()

	if edgeLimit < 0 || edgeLimit > d.index.Len() {
		return nil, fmt.Errorf("%w: edgeLimit=%d outside [0, %d]", ErrInvalidArgument, edgeLimit, d.index.Len())
	}
	p, err := d.replay(edgeLimit, nil)
	if err != nil {
		return nil, err
	}

	store := d.index.Points()
	groups := p.SortedBySizeDescending()
	out = make([]Cluster, len(groups))
	for i, members := range groups {
		centroid := store.Centroid(members)
		var radius float64
		for _, id := range members {
			pt, _ := store.At(id)
			radius = max(radius, r3.Norm(r3.Sub(pt.Vec(), centroid)))
		}
		out[i] = Cluster{Members: members, Size: len(members), Centroid: centroid, Radius: radius}
	}

	return out, nil
}

// replay applies the first limit edges to a fresh partition. stop, if non-nil,
// is consulted after every edge and ends the replay early when it returns
// true.
func (d *Driver) replay(limit int, stop func(Step) bool) (partition.Clusters, error) {
	p, err := partition.New(d.opts.Strategy, d.index.Points().Len())
	if err != nil {
		return nil, err
	}

	log := d.opts.Logger
	d.index.Each(func(i int, e distance.Edge) bool {
		if i >= limit {
			return false
		}
		merged := p.Union(e.A, e.B)
		s := Step{Index: i, Edge: e, Merged: merged, Clusters: p.Count()}

		if merged {
			log.Debug().Int("step", i).Int("a", e.A).Int("b", e.B).
				Float64("distance", e.Distance).Int("clusters", s.Clusters).Msg("merge")
		}
		d.opts.Observer.ObserveEdge(merged)
		d.opts.OnMerge(s)

		return stop == nil || !stop(s)
	})

	return p, nil
}

func (d *Driver) finish(query string, start time.Time, err error) {
	took := time.Since(start)
	d.opts.Observer.ObserveQuery(query, took, err)
	if err != nil {
		d.opts.Logger.Warn().Err(err).Str("query", query).Dur("took", took).Msg("query failed")
	}
}
