package point

import (
	"errors"
	"fmt"
)

// MaxCoordinate bounds the absolute value of every coordinate.
// With |v| <= 2^29 a coordinate difference is at most 2^30, its square at most
// 2^60, and the sum of three squares stays below 2^62.
const MaxCoordinate int64 = 1 << 29

// Sentinel errors for point ingestion and store construction.
var (
	// ErrMalformedLine indicates a line that is not three comma-separated integers.
	ErrMalformedLine = errors.New("point: malformed line")

	// ErrCoordinateRange indicates a coordinate outside [-MaxCoordinate, MaxCoordinate].
	ErrCoordinateRange = errors.New("point: coordinate out of range")

	// ErrEmpty indicates that no points were supplied.
	ErrEmpty = errors.New("point: no points")

	// ErrBadID indicates that a Point's ID does not match its position.
	ErrBadID = errors.New("point: id does not match position")
)

// Point is a junction box location. ID is its index in the owning Store.
type Point struct {
	ID      int
	X, Y, Z int64
}

// String renders the point in its input form, prefixed by its ID.
func (p Point) String() string {
	return fmt.Sprintf("#%d(%d,%d,%d)", p.ID, p.X, p.Y, p.Z)
}

// ParseError reports a malformed input line.
// Line is 1-based; Text is the raw line as read.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("point: line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the underlying sentinel to errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }
