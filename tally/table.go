// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"fmt"
	"math"
)

// Candidate identifies a ballot choice
type Candidate string

// Row is one distinct ranking and the number of voters who cast it
type Row struct {
	Weight      int64       `json:"weight"`
	Preferences []Candidate `json:"preferences"`
}

// Table is the ballot table handed to a tabulator. Tabulators only read it.
type Table struct {
	Rows []Row `json:"rows"`
}

// Candidates returns every candidate in first-seen order
func (t Table) Candidates() []Candidate {
	seen := make(map[Candidate]struct{})
	var out []Candidate
	for _, row := range t.Rows {
		for _, c := range row.Preferences {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// TotalWeight is the number of voters in the table.
// It saturates at math.MaxInt64; tabulators report ErrWeightOverflow instead.
func (t Table) TotalWeight() int64 {
	total, err := t.totalWeight()
	if err != nil {
		return math.MaxInt64
	}
	return total
}

// Clone returns a deep copy of the table
func (t Table) Clone() Table {
	rows := make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		prefs := make([]Candidate, len(row.Preferences))
		copy(prefs, row.Preferences)
		rows[i] = Row{Weight: row.Weight, Preferences: prefs}
	}
	return Table{Rows: rows}
}

// candidates validates that the table has rows and at least one candidate
func (t Table) candidates() ([]Candidate, error) {
	if len(t.Rows) == 0 {
		return nil, ErrEmptyBallotTable
	}
	cands := t.Candidates()
	if len(cands) == 0 {
		return nil, ErrNoCandidatesFound
	}
	return cands, nil
}

// requireFirstPreferences rejects rows that cannot be consulted at column 0
func (t Table) requireFirstPreferences() error {
	for i, row := range t.Rows {
		if len(row.Preferences) == 0 {
			return fmt.Errorf("row %d has no first preference: %w", i, ErrRowIndexOutOfRange)
		}
	}
	return nil
}

// requirePermutations checks every row ranks each candidate exactly once
func (t Table) requirePermutations(cands []Candidate) error {
	k := len(cands)
	for i, row := range t.Rows {
		if len(row.Preferences) != k {
			return fmt.Errorf("row %d ranks %d of %d candidates: %w",
				i, len(row.Preferences), k, ErrIncompleteRanking)
		}
		seen := make(map[Candidate]struct{}, k)
		for _, c := range row.Preferences {
			if _, dup := seen[c]; dup {
				return fmt.Errorf("row %d ranks %q more than once: %w", i, c, ErrIncompleteRanking)
			}
			seen[c] = struct{}{}
		}
	}
	return nil
}
