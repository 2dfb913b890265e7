// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import "fmt"

// Positional scores each ranking with descending weights: with k candidates,
// position j of a row with weight w earns w*(k-j). Highest total wins.
//
// This rule has been published under the name "condorcet", but it compares
// positions, not head-to-head majorities.
func Positional(t Table) (Result, error) {
	scores, total, err := positionalScores(t, func(k, j int) int64 { return int64(k - j) })
	if err != nil {
		return Result{}, err
	}
	winners, tie := scores.Max()
	return singleRound(MethodPositional, total, scores, winners, tie), nil
}

// positionalScores visits every cell once, adding w*points(k, j).
// Every row must rank every candidate exactly once.
func positionalScores(t Table, points func(k, j int) int64) (*Tally, int64, error) {
	cands, err := t.candidates()
	if err != nil {
		return nil, 0, err
	}
	if err := t.requirePermutations(cands); err != nil {
		return nil, 0, err
	}
	total, err := t.totalWeight()
	if err != nil {
		return nil, 0, err
	}

	k := len(cands)
	scores := NewTally(cands)
	for i, row := range t.Rows {
		for j, c := range row.Preferences {
			pts, ok := mulWeight(row.Weight, points(k, j))
			if !ok {
				return nil, 0, fmt.Errorf("row %d: %d points for %q: %w", i, row.Weight, c, ErrWeightOverflow)
			}
			if err := scores.addChecked(c, pts); err != nil {
				return nil, 0, fmt.Errorf("row %d: %w", i, err)
			}
		}
	}
	return scores, total, nil
}
