// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Ballot source connection string (optional)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - BallotFile: CSV file to tally once and exit
  - Method: plurality, runoff, positional (alias condorcet) or borda
  - OutputFormat: auto, text or json (default: auto)

# CLI Flags

	-p    Server port
	-d    Database URL
	-t    Database type
	-f    Ballot CSV file
	-m    Tally method
	-o    Output format
	-env  Environment file (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	BALLOT_FILE   → -f
	TALLY_METHOD  → -m
	OUTPUT_FORMAT → -o

CLI flags take precedence over environment variables. The environment file is
loaded with godotenv and never overrides variables that are already set; a
missing file is ignored.

# Validation

ParseFlags returns an error if:

  - the method name is unknown
  - a ballot file is given without a method
  - the output format is not auto, text or json
*/
package cliparse
