// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"cmp"
	"slices"
)

// Runoff runs two-round plurality.
//
// Round 1 is a plurality count; a candidate holding more than half of the total
// weight wins outright. Otherwise the two leading candidates go to round 2,
// where each row counts for whichever finalist it ranks first. Rows ranking
// neither finalist are exhausted and count for nobody.
func Runoff(t Table) (Result, error) {
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
	first, err := firstPreferences(t, cands)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Method:      MethodRunoff,
		TotalWeight: total,
		Rounds:      []Round{{Number: 1, Scores: first.Scores()}},
	}

	for _, s := range first.Scores() {
		// s.Value > total/2 without doubling
		if s.Value > total-s.Value {
			res.Winners = []Candidate{s.Candidate}
			return res, nil
		}
	}

	res.Finalists = finalists(first)
	second, exhausted := secondRound(t, res.Finalists)
	res.Rounds = append(res.Rounds, Round{
		Number:    2,
		Scores:    second.Scores(),
		Exhausted: exhausted,
	})
	res.Winners, res.Tie = second.Max()
	return res, nil
}

// finalists picks the top two by round-1 weight.
// Equal weights keep first-seen order.
func finalists(first *Tally) []Candidate {
	scores := first.Scores()
	slices.SortStableFunc(scores, func(a, b Score) int {
		return cmp.Compare(b.Value, a.Value)
	})
	n := min(2, len(scores))
	out := make([]Candidate, n)
	for i := range n {
		out[i] = scores[i].Candidate
	}
	return out
}

// secondRound scans preference columns left to right. At each column every
// unattributed row whose entry is a finalist is credited to that finalist and
// leaves the remaining set. Rows shorter than the current column are exhausted.
func secondRound(t Table, finals []Candidate) (*Tally, int64) {
	scores := NewTally(finals)

	remaining := make([]int, len(t.Rows))
	for i := range remaining {
		remaining[i] = i
	}

	var exhausted int64
	for col := 0; len(remaining) > 0; col++ {
		next := remaining[:0]
		for _, i := range remaining {
			row := t.Rows[i]
			if col >= len(row.Preferences) {
				exhausted += row.Weight
				continue
			}
			c := row.Preferences[col]
			if _, ok := scores.Score(c); ok {
				scores.Add(c, row.Weight)
				continue
			}
			next = append(next, i)
		}
		remaining = next
	}
	return scores, exhausted
}
