package point

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const fieldsPerLine = 3

// Parse reads "x,y,z" lines from r and builds a Store.
// See ParseLines for the accepted grammar.
func Parse(r io.Reader) (*Store, error) {
	sc := bufio.NewScanner(r)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("point: read input: %w", err)
	}

	return ParseLines(lines)
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("point: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// ParseLines builds a Store from one point per line.
//
// Steps:
//  1. Drop trailing blank lines (end-of-file padding is not an error).
//  2. Reject any remaining blank line: the block must be contiguous.
//  3. Split on ',' and require exactly three fields.
//  4. Parse each field as a base-10 int64, trimming surrounding whitespace.
//  5. Range-check the coordinates.
//
// The first failing line aborts the parse with a *ParseError.
func ParseLines(lines []string) (*Store, error) {
	// 1. Trim end-of-input blank lines.
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	if end == 0 {
		return nil, ErrEmpty
	}

	points := make([]Point, 0, end)
	for i := 0; i < end; i++ {
		raw := strings.TrimSuffix(lines[i], "\r")
		x, y, z, err := parseLine(raw)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: raw, Err: err}
		}
		points = append(points, Point{ID: len(points), X: x, Y: y, Z: z})
	}

	return &Store{points: points}, nil
}

func parseLine(line string) (x, y, z int64, err error) {
	// 2. Interior blank line.
	if strings.TrimSpace(line) == "" {
		return 0, 0, 0, fmt.Errorf("blank line inside point block: %w", ErrMalformedLine)
	}

	// 3. Field count.
	fields := strings.Split(line, ",")
	if len(fields) != fieldsPerLine {
		return 0, 0, 0, fmt.Errorf("want %d fields, got %d: %w", fieldsPerLine, len(fields), ErrMalformedLine)
	}

	// 4. Numeric fields.
	var coords [fieldsPerLine]int64
	for i, f := range fields {
		v, perr := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if perr != nil {
			return 0, 0, 0, fmt.Errorf("field %d %q: %w", i+1, f, ErrMalformedLine)
		}
		coords[i] = v
	}

	// 5. Range.
	if err := checkRange(coords[:]...); err != nil {
		return 0, 0, 0, err
	}

	return coords[0], coords[1], coords[2], nil
}
