// Package point holds the immutable set of 3-D integer points that a
// junction wiring run is built over, and the ingestion of the plain-text
// "x,y,z" format those points arrive in.
//
// What & Why
//
//   - A Point is an identifier (its 0-based position in the Store) plus three
//     signed integer coordinates. Points never change once a Store is built.
//   - A Store is the single source of coordinates for the distance index and
//     the merge driver; both refer to points only by ID.
//
// Input Format
//
//	162,817,812
//	57,618,57
//	906,360,560
//
// One point per line, exactly three base-10 signed integers separated by
// commas, no header and no blank lines inside the block. Whitespace around a
// field is tolerated; trailing blank lines at end of input are ignored.
//
// Error Conditions
//
//   - ErrMalformedLine   : wrong field count or a non-numeric field.
//   - ErrCoordinateRange : a coordinate outside [-MaxCoordinate, MaxCoordinate].
//   - ErrEmpty           : the input holds no points at all.
//
// Parsing failures are reported as *ParseError carrying the 1-based line
// number; use errors.Is against the sentinels above and errors.As to recover
// the line.
//
// Coordinates are bounded so that a squared Euclidean distance always fits in
// an int64, which keeps distance ordering exact.
package point
