// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import "errors"

var (
	ErrEmptyBallotTable   = errors.New("empty ballot table")
	ErrNoCandidatesFound  = errors.New("no candidates found")
	ErrIncompleteRanking  = errors.New("incomplete ranking")
	ErrRowIndexOutOfRange = errors.New("row index out of range")
	ErrUnknownMethod      = errors.New("unknown tally method")
	ErrWeightOverflow     = errors.New("ballot weight overflows a score")
)
