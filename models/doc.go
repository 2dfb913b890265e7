// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

  - TallyRequest: rows of {weight, preferences}
  - BallotRow: one weighted ranking

TallyRequest.Table converts the body into a tally.Table.

# Response Types

  - TallyResponse: method, winners, tie, outright, finalists, rounds
  - RoundResult: per-round scores and exhausted weight
  - MethodsResponse: supported method names
  - ErrorResponse: error, message, code

# Error Codes

Tally failures carry a machine-readable code:

	empty_ballot_table
	no_candidates_found
	incomplete_ranking
	row_index_out_of_range
	unknown_method
	invalid_ballots
*/
package models
