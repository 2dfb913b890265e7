// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the tally API.

# Handler Types

TallyHandler is a struct with database and config dependencies:

	tallyHandler := handlers.NewTallyHandler(db, cfg)

The database is optional; without it only inline ballot tables can be tallied.

# Endpoints

	GET  /methods                        → Methods
	POST /tally                          → Tally with the configured default method
	POST /tally/{method}                 → Tally (JSON or text/csv body)
	GET  /elections/{id}/tally/{method}  → ElectionTally (ballot_row source)

{method} is plurality, runoff, positional (or condorcet) or borda.

# Request Bodies

JSON:

	{"rows": [{"weight": 5, "preferences": ["A", "B", "C"]}]}

CSV (Content-Type: text/csv), no header:

	5,A,B,C
	3,B,C,A

# Errors

Engine errors become 422 responses with a code:

	empty_ballot_table, no_candidates_found,
	incomplete_ranking, row_index_out_of_range

Unknown methods and unreadable bodies are 400. Each handler calls exactly one
tabulator and never modifies the loaded table.
*/
package handlers
