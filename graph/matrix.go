package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrMalformedBanner = errors.New("graph: malformed Matrix Market banner")
	ErrNotSquare       = errors.New("graph: matrix is not square")
	ErrMalformedEntry  = errors.New("graph: malformed entry")
)

const banner = "%%matrixmarket"

// Query asks for a path from From to To.
type Query struct {
	From uint32
	To   uint32
}

// ReadMatrixMarket parses a coordinate Matrix Market file into a graph.
// Entry (i, j) means node i links to node j. Ids are 1-based in the file
// and kept as-is, so the graph holds m+1 node ids.
func ReadMatrixMarket(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	line := 0

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: empty input", ErrMalformedBanner)
	}
	line++
	header := strings.Fields(strings.ToLower(sc.Text()))
	if len(header) < 3 || header[0] != banner || header[1] != "matrix" || header[2] != "coordinate" {
		return nil, fmt.Errorf("%w: %q", ErrMalformedBanner, sc.Text())
	}

	var g *Graph
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "%") {
			continue
		}

		fields := strings.Fields(text)
		if g == nil {
			m, n, err := parseSize(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			if m != n {
				return nil, fmt.Errorf("line %d: %w: m=%d n=%d", line, ErrNotSquare, m, n)
			}
			g = New(m + 1)
			continue
		}

		i, j, err := parsePair(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if err := g.AddEdge(i, j); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("%w: missing size line", ErrMalformedEntry)
	}

	return g, nil
}

// ReadQueries parses "from to" pairs, one per line.
func ReadQueries(r io.Reader) ([]Query, error) {
	sc := bufio.NewScanner(r)
	var queries []Query
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		i, j, err := parsePair(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		queries = append(queries, Query{From: i, To: j})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return queries, nil
}

func parseSize(fields []string) (m, n int, err error) {
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("%w: size line needs 3 fields, got %d", ErrMalformedEntry, len(fields))
	}
	var dims [3]int
	for k, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return 0, 0, fmt.Errorf("%w: size %q", ErrMalformedEntry, f)
		}
		dims[k] = v
	}
	return dims[0], dims[1], nil
}

func parsePair(fields []string) (uint32, uint32, error) {
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("%w: need 2 fields, got %d", ErrMalformedEntry, len(fields))
	}
	i, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedEntry, fields[0])
	}
	j, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedEntry, fields[1])
	}
	return uint32(i), uint32(j), nil
}
