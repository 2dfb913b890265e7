// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

// Score is one candidate's total in a round
type Score struct {
	Candidate Candidate `json:"candidate"`
	Value     int64     `json:"value"`
}

// Round holds the scores of one counting round.
// Exhausted is the weight of rows that were never attributed to a candidate.
type Round struct {
	Number    int     `json:"number"`
	Scores    []Score `json:"scores"`
	Exhausted int64   `json:"exhausted"`
}

// Result is the outcome of a single tabulation
type Result struct {
	Method      Method      `json:"method"`
	Winners     []Candidate `json:"winners"`
	Tie         bool        `json:"tie"`
	Rounds      []Round     `json:"rounds"`
	Finalists   []Candidate `json:"finalists,omitempty"`
	TotalWeight int64       `json:"total_weight"`
}

// Outright reports whether the result was decided in the first round
func (r Result) Outright() bool {
	return len(r.Rounds) == 1
}

// FinalRound returns the round the winners were taken from
func (r Result) FinalRound() Round {
	if len(r.Rounds) == 0 {
		return Round{}
	}
	return r.Rounds[len(r.Rounds)-1]
}

func singleRound(m Method, total int64, scores *Tally, winners []Candidate, tie bool) Result {
	return Result{
		Method:      m,
		Winners:     winners,
		Tie:         tie,
		Rounds:      []Round{{Number: 1, Scores: scores.Scores()}},
		TotalWeight: total,
	}
}
