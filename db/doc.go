// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the ballot source database and creates its schema.

# Drivers

Open picks the driver from the configured database type:

  - postgres: github.com/lib/pq
  - sqlite: modernc.org/sqlite (default, pure Go)

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

# Schema Creation

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - ballot_row: (election_id, position, weight, ranking)

ranking holds the preference order as comma-separated candidate identifiers,
first choice first. Rows are read back ordered by position, so the ballot
table handed to a tabulator is stable. Nothing in this service writes to it.
*/
package db
