// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import "fmt"

// Plurality elects the candidates with the most first-preference weight.
// With two candidates this is majority rule; an even split is a tie.
func Plurality(t Table) (Result, error) {
	cands, err := t.candidates()
	if err != nil {
		return Result{}, err
	}
	if err := t.requireFirstPreferences(); err != nil {
		return Result{}, err
	}

	total, err := t.totalWeight()
	if err != nil {
		return Result{}, err
	}

	scores, err := firstPreferences(t, cands)
	if err != nil {
		return Result{}, err
	}
	winners, tie := scores.Max()
	return singleRound(MethodPlurality, total, scores, winners, tie), nil
}

// firstPreferences sums row weights by first choice.
// Candidates never ranked first stay in the tally with zero.
func firstPreferences(t Table, cands []Candidate) (*Tally, error) {
	scores := NewTally(cands)
	for i, row := range t.Rows {
		if err := scores.addChecked(row.Preferences[0], row.Weight); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return scores, nil
}
