// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballots

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/danielhkuo/quickly-tally/tally"
)

var (
	ErrInvalidWeight = errors.New("invalid ballot weight")
	ErrMalformedRow  = errors.New("malformed ballot row")
)

// LoadFile reads a ballot table from a CSV file
func LoadFile(path string) (tally.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return tally.Table{}, fmt.Errorf("failed to open ballots: %w", err)
	}
	defer f.Close()

	t, err := ParseCSV(f)
	if err != nil {
		return tally.Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseCSV reads a headerless weight,pref1,pref2,... table
func ParseCSV(r io.Reader) (tally.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var t tally.Table
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return tally.Table{}, err
		}

		line, _ := cr.FieldPos(0)
		row, err := parseRecord(rec)
		if err != nil {
			return tally.Table{}, fmt.Errorf("line %d: %w", line, err)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func parseRecord(rec []string) (tally.Row, error) {
	weight, err := ParseWeight(rec[0])
	if err != nil {
		return tally.Row{}, err
	}

	cells := rec[1:]
	for len(cells) > 0 && strings.TrimSpace(cells[len(cells)-1]) == "" {
		cells = cells[:len(cells)-1]
	}

	prefs := make([]tally.Candidate, len(cells))
	for i, cell := range cells {
		c := strings.TrimSpace(cell)
		if c == "" {
			return tally.Row{}, fmt.Errorf("empty preference at column %d: %w", i+1, ErrMalformedRow)
		}
		prefs[i] = tally.Candidate(c)
	}
	return tally.Row{Weight: weight, Preferences: prefs}, nil
}

// ParseWeight parses a non-negative integer weight
func ParseWeight(s string) (int64, error) {
	w, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidWeight)
	}
	if w < 0 {
		return 0, fmt.Errorf("%d is negative: %w", w, ErrInvalidWeight)
	}
	return w, nil
}
