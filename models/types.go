// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "github.com/danielhkuo/quickly-tally/tally"

// Error codes for tally failures
const (
	CodeEmptyBallotTable   = "empty_ballot_table"
	CodeNoCandidatesFound  = "no_candidates_found"
	CodeIncompleteRanking  = "incomplete_ranking"
	CodeRowIndexOutOfRange = "row_index_out_of_range"
	CodeUnknownMethod      = "unknown_method"
	CodeInvalidBallots     = "invalid_ballots"
	CodeWeightOverflow     = "weight_overflow"
	CodeBodyTooLarge       = "body_too_large"
)

// Request types

type BallotRow struct {
	Weight      int64    `json:"weight"`
	Preferences []string `json:"preferences"`
}

type TallyRequest struct {
	Rows []BallotRow `json:"rows"`
}

// Response types

type ScoreEntry struct {
	Candidate string `json:"candidate"`
	Score     int64  `json:"score"`
}

type RoundResult struct {
	Round     int          `json:"round"`
	Scores    []ScoreEntry `json:"scores"`
	Exhausted int64        `json:"exhausted,omitempty"`
}

type TallyResponse struct {
	Method      string        `json:"method"`
	Winners     []string      `json:"winners"`
	Tie         bool          `json:"tie"`
	Outright    bool          `json:"outright"`
	Finalists   []string      `json:"finalists,omitempty"`
	TotalWeight int64         `json:"total_weight"`
	Rounds      []RoundResult `json:"rounds"`
}

type MethodsResponse struct {
	Methods []string `json:"methods"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// Table converts a request body into a ballot table
func (r TallyRequest) Table() tally.Table {
	t := tally.Table{Rows: make([]tally.Row, len(r.Rows))}
	for i, row := range r.Rows {
		prefs := make([]tally.Candidate, len(row.Preferences))
		for j, p := range row.Preferences {
			prefs[j] = tally.Candidate(p)
		}
		t.Rows[i] = tally.Row{Weight: row.Weight, Preferences: prefs}
	}
	return t
}

// NewTallyResponse flattens a tally result for JSON clients
func NewTallyResponse(res tally.Result) TallyResponse {
	resp := TallyResponse{
		Method:      string(res.Method),
		Winners:     candidateStrings(res.Winners),
		Tie:         res.Tie,
		Outright:    res.Outright(),
		Finalists:   candidateStrings(res.Finalists),
		TotalWeight: res.TotalWeight,
		Rounds:      make([]RoundResult, len(res.Rounds)),
	}
	for i, round := range res.Rounds {
		scores := make([]ScoreEntry, len(round.Scores))
		for j, s := range round.Scores {
			scores[j] = ScoreEntry{Candidate: string(s.Candidate), Score: s.Value}
		}
		resp.Rounds[i] = RoundResult{Round: round.Number, Scores: scores, Exhausted: round.Exhausted}
	}
	return resp
}

func candidateStrings(cands []tally.Candidate) []string {
	if cands == nil {
		return nil
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = string(c)
	}
	return out
}
