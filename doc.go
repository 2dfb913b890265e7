// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for quickly-tally.

quickly-tally computes election winners from weighted ranked ballots using
plurality, plurality with runoff, a descending positional score (published as
"condorcet") or Borda count.

# Tallying a File

	go run . -f votes.csv -m runoff

The file has no header; column 0 is the weight, the rest is the ranking.
Output is text on a terminal and JSON otherwise (-o text|json to force).

# Starting the Server

	go run . -p 3318

With a ballot database:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .
	go run . -t sqlite -d ballots.db

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): Ballot source connection string (optional)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - BALLOT_FILE (-f): Tally this CSV file and exit
  - TALLY_METHOD (-m): Method for -f
  - OUTPUT_FORMAT (-o): auto, text or json

Variables may also come from a .env file (-env to choose another path).

# Architecture

  - tally: the tabulation engine
  - ballots: CSV and SQL loaders
  - report: text and JSON rendering
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: request IDs, logging, CORS, JSON helpers
  - models: Request/response types
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
