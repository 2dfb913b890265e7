// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

// Borda charges each candidate w*j for position j (first place costs 0).
// The lowest total wins.
func Borda(t Table) (Result, error) {
	scores, total, err := positionalScores(t, func(_, j int) int64 { return int64(j) })
	if err != nil {
		return Result{}, err
	}
	winners, tie := scores.Min()
	return singleRound(MethodBorda, total, scores, winners, tie), nil
}
