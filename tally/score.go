// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import "fmt"

// Tally maps candidates to scores and remembers insertion order
type Tally struct {
	order []Candidate
	index map[Candidate]int
	value []int64
}

// NewTally seeds a tally with zero scores for cands, in order
func NewTally(cands []Candidate) *Tally {
	t := &Tally{index: make(map[Candidate]int, len(cands))}
	for _, c := range cands {
		t.Add(c, 0)
	}
	return t
}

// Add adds delta to c's score, appending c if it is new
func (t *Tally) Add(c Candidate, delta int64) {
	if t.index == nil {
		t.index = make(map[Candidate]int)
	}
	i, ok := t.index[c]
	if !ok {
		i = len(t.order)
		t.index[c] = i
		t.order = append(t.order, c)
		t.value = append(t.value, 0)
	}
	t.value[i] += delta
}

// addChecked is Add that refuses to wrap c's score
func (t *Tally) addChecked(c Candidate, delta int64) error {
	cur, _ := t.Score(c)
	if _, ok := addWeight(cur, delta); !ok {
		return fmt.Errorf("score of %q: %w", c, ErrWeightOverflow)
	}
	t.Add(c, delta)
	return nil
}

// Score returns c's score and whether c is in the tally
func (t *Tally) Score(c Candidate) (int64, bool) {
	i, ok := t.index[c]
	if !ok {
		return 0, false
	}
	return t.value[i], true
}

// Candidates returns the candidates in insertion order
func (t *Tally) Candidates() []Candidate {
	out := make([]Candidate, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of candidates in the tally
func (t *Tally) Len() int {
	return len(t.order)
}

// Scores returns a snapshot of the tally in insertion order
func (t *Tally) Scores() []Score {
	out := make([]Score, len(t.order))
	for i, c := range t.order {
		out[i] = Score{Candidate: c, Value: t.value[i]}
	}
	return out
}

// Max returns every candidate holding the highest score
func (t *Tally) Max() (winners []Candidate, tie bool) {
	return t.extremes(func(a, b int64) bool { return a > b })
}

// Min returns every candidate holding the lowest score
func (t *Tally) Min() (winners []Candidate, tie bool) {
	return t.extremes(func(a, b int64) bool { return a < b })
}

// extremes collects all candidates at the extremal value under better
func (t *Tally) extremes(better func(a, b int64) bool) ([]Candidate, bool) {
	if len(t.order) == 0 {
		return nil, false
	}
	best := t.value[0]
	for _, v := range t.value[1:] {
		if better(v, best) {
			best = v
		}
	}
	var winners []Candidate
	for i, v := range t.value {
		if v == best {
			winners = append(winners, t.order[i])
		}
	}
	return winners, len(winners) > 1
}
