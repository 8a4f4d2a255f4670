package dijkstra

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Column names expected in the header row of an edge list.
const (
	ColumnSource      = "source"
	ColumnDestination = "destination"
	ColumnWeight      = "weight"
)

// LoadCSV reads a directed edge list and returns the resulting graph.
//
// The first row is a header naming the columns source, destination and weight
// (any order, case-insensitive, extra columns ignored). Each following row adds
// one edge. Destinations are registered as nodes even when they have no
// outgoing edges, so every referenced node is present before Dijkstra runs.
//
// Errors wrap ErrBadCSV with the offending line number, or ErrNegativeWeight.
func LoadCSV(r io.Reader) (*Graph, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	// 1) Header: locate the three required columns.
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header", ErrBadCSV)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCSV, err)
	}

	idx := map[string]int{ColumnSource: -1, ColumnDestination: -1, ColumnWeight: -1}
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, wanted := idx[key]; wanted {
			idx[key] = i
		}
	}
	for _, col := range []string{ColumnSource, ColumnDestination, ColumnWeight} {
		if idx[col] < 0 {
			return nil, fmt.Errorf("%w: header has no %q column", ErrBadCSV, col)
		}
	}

	// 2) Rows: one edge each.
	g := NewGraph()
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadCSV, err)
		}
		line, _ := cr.FieldPos(0)

		from := strings.TrimSpace(rec[idx[ColumnSource]])
		to := strings.TrimSpace(rec[idx[ColumnDestination]])
		w, err := strconv.ParseInt(strings.TrimSpace(rec[idx[ColumnWeight]]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad weight %q", ErrBadCSV, line, rec[idx[ColumnWeight]])
		}
		if err = g.AddEdge(from, to, w); err != nil {
			if errors.Is(err, ErrEmptyNodeID) {
				return nil, fmt.Errorf("%w: line %d: empty node id", ErrBadCSV, line)
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}

	return g, nil
}
