// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/quickly-tally/cliparse"
)

func TestTallyFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "votes.csv")
	if err := os.WriteFile(good, []byte("4,A,B,C\n4,C,B,A\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	partial := filepath.Join(dir, "partial.csv")
	if err := os.WriteFile(partial, []byte("4,A,B,C\n4,C\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		file     string
		method   string
		expected int
	}{
		{"borda tie", good, "borda", 0},
		{"runoff", good, "runoff", 0},
		{"plurality accepts partial rankings", partial, "plurality", 0},
		{"borda rejects partial rankings", partial, "borda", 1},
		{"missing file", filepath.Join(dir, "nope.csv"), "plurality", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := cliparse.Config{BallotFile: tt.file, Method: tt.method, OutputFormat: "json"}
			if got := tallyFile(cfg); got != tt.expected {
				t.Errorf("Expected exit code %d, got %d", tt.expected, got)
			}
		})
	}
}
