package circuit

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/junction/distance"
	"github.com/katalvlaran/junction/partition"
)

// Sentinel errors for driver construction and queries.
var (
	// ErrNilIndex is returned by New for a nil index.
	ErrNilIndex = errors.New("circuit: index is nil")

	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("circuit: invalid option supplied")

	// ErrInvalidArgument indicates an edge limit or k outside its range.
	ErrInvalidArgument = errors.New("circuit: invalid argument")

	// ErrInsufficientClusters indicates fewer circuits than the requested k.
	ErrInsufficientClusters = errors.New("circuit: insufficient clusters")

	// ErrProductOverflow indicates a top-k product larger than a uint64.
	ErrProductOverflow = errors.New("circuit: product overflows uint64")

	// ErrNeverConverges indicates the edges ran out before one circuit remained.
	ErrNeverConverges = errors.New("circuit: edges exhausted before convergence")
)

// Query names reported to an Observer.
const (
	QueryTopK     = "topk"
	QueryConverge = "converge"
	QuerySnapshot = "snapshot"
)

// Step describes one consumed edge.
type Step struct {
	// Index is the 0-based position of Edge in the ordered sequence.
	Index int

	// Edge is the connection that was applied.
	Edge distance.Edge

	// Merged is false when both endpoints were already connected.
	Merged bool

	// Clusters is the circuit count after applying Edge.
	Clusters int
}

// Convergence describes the closing edge of a full replay.
type Convergence struct {
	// Edge joined the last two circuits.
	Edge distance.Edge

	// Step is Edge's 1-based position, i.e. the number of edges consumed.
	Step int

	// Merges is the number of effective unions, always n-1.
	Merges int

	// Product is X(Edge.A) * X(Edge.B).
	Product int64
}

// Cluster is one circuit of a Snapshot.
type Cluster struct {
	// Members are point IDs in ascending order.
	Members []int

	// Size is len(Members).
	Size int

	// Centroid is the mean member position.
	Centroid r3.Vec

	// Radius is the largest member distance from Centroid.
	Radius float64
}

// Observer receives replay and query events, e.g. for metrics.
type Observer interface {
	ObserveEdge(merged bool)
	ObserveQuery(query string, took time.Duration, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveEdge(bool)                          {}
func (nopObserver) ObserveQuery(string, time.Duration, error) {}

// Option configures a Driver via functional arguments.
type Option func(*Options)

// Options holds Driver parameters and callbacks.
type Options struct {
	// Strategy selects the partition implementation for every query.
	Strategy partition.Strategy

	// Logger receives per-merge debug events and per-query results.
	Logger zerolog.Logger

	// Observer receives edge and query events.
	Observer Observer

	// OnMerge is called for every consumed edge, merged or not.
	OnMerge func(Step)

	err error
}

// DefaultOptions returns the scan partition, a disabled logger, and no-op
// observer and hook.
func DefaultOptions() Options {
	return Options{
		Strategy: partition.StrategyScan,
		Logger:   zerolog.Nop(),
		Observer: nopObserver{},
		OnMerge:  func(Step) {},
	}
}

// WithStrategy selects the partition implementation.
func WithStrategy(s partition.Strategy) Option {
	return func(o *Options) {
		if _, err := partition.ParseStrategy(string(s)); err != nil {
			o.err = fmt.Errorf("%w: %w", ErrOptionViolation, err)
			return
		}
		o.Strategy = s
	}
}

// WithLogger sets the structured logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithObserver registers an Observer; nil is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithOnMerge registers a callback run after every consumed edge; nil is
// ignored.
func WithOnMerge(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMerge = fn
		}
	}
}
