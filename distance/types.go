package distance

import (
	"errors"
	"fmt"
)

// Sentinel errors for index construction.
var (
	// ErrNilStore is returned when Build receives a nil store.
	ErrNilStore = errors.New("distance: store is nil")

	// ErrTooFewPoints is returned when the store has fewer than two points.
	ErrTooFewPoints = errors.New("distance: at least two points required")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distance: invalid option supplied")
)

// Edge is a candidate connection between two distinct points.
// A < B always holds.
type Edge struct {
	A, B int

	// Squared is the exact integer squared Euclidean distance.
	Squared int64

	// Distance is sqrt(Squared).
	Distance float64
}

// Less reports whether e sorts before o in the index's total order.
func Less(e, o Edge) bool {
	if e.Distance != o.Distance {
		return e.Distance < o.Distance
	}
	if e.A != o.A {
		return e.A < o.A
	}

	return e.B < o.B
}

func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%.3f)", e.A, e.B, e.Distance)
}

// Option configures Build via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when Build runs.
type Option func(*Options)

// Options holds Build parameters.
type Options struct {
	// Workers is the number of goroutines computing pair distances.
	// Values <= 1 run sequentially.
	Workers int

	err error
}

// DefaultOptions returns sequential construction.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// WithWorkers sets the degree of parallelism for distance computation.
//
//	n > 1 : fan out over n goroutines
//	n 0,1 : sequential
//	n < 0 : invalid → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
