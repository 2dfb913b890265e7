// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally computes election winners from a table of weighted, ranked
ballots.

# Ballot Table

A Table is an ordered list of rows. Each row carries a weight (the number of
voters who cast the same ranking) and a preference order, first choice first:

	t := tally.Table{Rows: []tally.Row{
		{Weight: 5, Preferences: []tally.Candidate{"A", "B", "C"}},
		{Weight: 3, Preferences: []tally.Candidate{"B", "C", "A"}},
	}}

Candidates are discovered from the data. Every tally, tie list and finalist
list follows first-seen order (rows top to bottom, columns left to right), so
results are identical across runs.

# Methods

  - Plurality: most first-preference weight wins.
  - Runoff: plurality with a second round between the top two.
  - Positional: descending positional score, w*(k-j). Historically called
    "condorcet"; it is not a pairwise method.
  - Borda: ascending positional cost, w*j, lowest wins.

Each tabulator returns a Result holding the winner set and a Tie flag:

	res, err := tally.Tabulate(tally.MethodBorda, t)
	if err != nil {
		// errors.Is(err, tally.ErrIncompleteRanking) ...
	}
	if res.Tie {
		// more than one winner
	}

# Errors

  - ErrEmptyBallotTable: no rows
  - ErrNoCandidatesFound: rows present but no candidate anywhere
  - ErrIncompleteRanking: positional and Borda need full permutations
  - ErrRowIndexOutOfRange: a row has no first preference

Tabulators never modify the Table they are given and are safe to call
concurrently on the same Table.
*/
package tally
