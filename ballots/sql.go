// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballots

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/danielhkuo/quickly-tally/tally"
)

// LoadSQL reads an election's ballot rows in position order
func LoadSQL(ctx context.Context, db *sql.DB, electionID string) (tally.Table, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT weight, ranking
		FROM ballot_row
		WHERE election_id = $1
		ORDER BY position
	`, electionID)
	if err != nil {
		return tally.Table{}, fmt.Errorf("failed to query ballot rows: %w", err)
	}
	defer rows.Close()

	var t tally.Table
	for rows.Next() {
		var weight int64
		var ranking string
		if err := rows.Scan(&weight, &ranking); err != nil {
			return tally.Table{}, fmt.Errorf("failed to scan ballot row: %w", err)
		}
		if weight < 0 {
			return tally.Table{}, fmt.Errorf("row %d: %d is negative: %w", len(t.Rows), weight, ErrInvalidWeight)
		}
		prefs, err := SplitRanking(ranking)
		if err != nil {
			return tally.Table{}, fmt.Errorf("row %d: %w", len(t.Rows), err)
		}
		t.Rows = append(t.Rows, tally.Row{Weight: weight, Preferences: prefs})
	}

	return t, rows.Err()
}

// SplitRanking parses a comma-separated preference list the way ParseCSV
// reads preference cells: trailing blanks are dropped, interior blanks are
// ErrMalformedRow.
func SplitRanking(s string) ([]tally.Candidate, error) {
	parts := strings.Split(s, ",")
	for len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}

	var prefs []tally.Candidate
	for i, part := range parts {
		c := strings.TrimSpace(part)
		if c == "" {
			return nil, fmt.Errorf("empty preference at position %d: %w", i+1, ErrMalformedRow)
		}
		prefs = append(prefs, tally.Candidate(c))
	}
	return prefs, nil
}

// JoinRanking is the inverse of SplitRanking
func JoinRanking(prefs []tally.Candidate) string {
	parts := make([]string, len(prefs))
	for i, c := range prefs {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}
