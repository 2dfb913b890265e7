// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypePostgres = "postgres"
	TypeSQLite   = "sqlite"
)

// Open connects to the ballot source and verifies the connection
func Open(dbType, url string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case TypePostgres, "postgresql":
		driver = "postgres"
	case TypeSQLite, "sqlite3", "":
		driver = "sqlite"
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	// in-memory sqlite databases exist per connection
	if driver == "sqlite" {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to reach %s database: %w", driver, err)
	}
	return conn, nil
}

// CreateSchema creates the ballot source tables.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Works on both postgres and sqlite
const schema = `
-- One row per distinct ranking; ranking is a comma-separated preference list
CREATE TABLE IF NOT EXISTS ballot_row (
    election_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    weight BIGINT NOT NULL CHECK (weight >= 0),
    ranking TEXT NOT NULL,
    PRIMARY KEY (election_id, position)
);

CREATE INDEX IF NOT EXISTS idx_ballot_row_election_id ON ballot_row(election_id);
`
