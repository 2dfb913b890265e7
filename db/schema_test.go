// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "testing"

func TestOpenSQLiteAndCreateSchema(t *testing.T) {
	conn, err := Open(TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	// Safe to call twice
	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn); err != nil {
			t.Fatalf("CreateSchema call %d failed: %v", i+1, err)
		}
	}

	_, err = conn.Exec(`
		INSERT INTO ballot_row (election_id, position, weight, ranking)
		VALUES ($1, $2, $3, $4)
	`, "e1", 0, 5, "A,B")
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO ballot_row (election_id, position, weight, ranking)
		VALUES ($1, $2, $3, $4)
	`, "e1", 1, -2, "B,A")
	if err == nil {
		t.Error("Expected negative weight to violate the CHECK constraint")
	}
}

func TestOpenUnsupportedType(t *testing.T) {
	if _, err := Open("oracle", "whatever"); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}
