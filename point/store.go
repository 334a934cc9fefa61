package point

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Store is an immutable, ID-indexed list of points.
type Store struct {
	points []Point
}

// New builds a Store from points whose IDs are exactly 0..len(points)-1 in
// order. The slice is copied; later changes by the caller are not observed.
//
// Error Conditions:
//   - ErrEmpty           : len(points) == 0.
//   - ErrBadID           : points[i].ID != i.
//   - ErrCoordinateRange : any coordinate outside [-MaxCoordinate, MaxCoordinate].
func New(points []Point) (*Store, error) {
	if len(points) == 0 {
		return nil, ErrEmpty
	}

	owned := make([]Point, len(points))
	for i, p := range points {
		if p.ID != i {
			return nil, fmt.Errorf("point %d has id %d: %w", i, p.ID, ErrBadID)
		}
		if err := checkRange(p.X, p.Y, p.Z); err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		owned[i] = p
	}

	return &Store{points: owned}, nil
}

// FromCoordinates builds a Store assigning IDs in slice order.
func FromCoordinates(coords [][3]int64) (*Store, error) {
	points := make([]Point, len(coords))
	for i, c := range coords {
		points[i] = Point{ID: i, X: c[0], Y: c[1], Z: c[2]}
	}

	return New(points)
}

// Len returns the number of points.
func (s *Store) Len() int { return len(s.points) }

// At returns the point with the given ID. ok is false for an unknown ID.
func (s *Store) At(id int) (p Point, ok bool) {
	if id < 0 || id >= len(s.points) {
		return Point{}, false
	}

	return s.points[id], true
}

// Points returns a copy of all points in ID order.
func (s *Store) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)

	return out
}

// Vec converts the point to a gonum spatial vector.
func (p Point) Vec() r3.Vec {
	return r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}

// Centroid returns the arithmetic mean position of the given point IDs.
// Unknown IDs are skipped; with no known IDs the zero vector is returned.
func (s *Store) Centroid(ids []int) r3.Vec {
	var (
		sum   r3.Vec
		count int
	)
	for _, id := range ids {
		p, ok := s.At(id)
		if !ok {
			continue
		}
		sum = r3.Add(sum, p.Vec())
		count++
	}
	if count == 0 {
		return r3.Vec{}
	}

	n := float64(count)

	return r3.Vec{X: sum.X / n, Y: sum.Y / n, Z: sum.Z / n}
}

func checkRange(coords ...int64) error {
	for _, v := range coords {
		if v < -MaxCoordinate || v > MaxCoordinate {
			return fmt.Errorf("%d exceeds ±%d: %w", v, MaxCoordinate, ErrCoordinateRange)
		}
	}

	return nil
}
