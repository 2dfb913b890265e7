// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballots

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-tally/tally"
)

func TestParseCSV(t *testing.T) {
	input := `5,A,B,C
3, B , C ,A
# comment lines are skipped
2,A,,
`
	tbl, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	want := tally.Table{Rows: []tally.Row{
		{Weight: 5, Preferences: []tally.Candidate{"A", "B", "C"}},
		{Weight: 3, Preferences: []tally.Candidate{"B", "C", "A"}},
		{Weight: 2, Preferences: []tally.Candidate{"A"}},
	}}
	assert.Equal(t, want, tbl)
}

func TestParseCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"non-integer weight", "five,A,B\n", ErrInvalidWeight},
		{"fractional weight", "2.5,A,B\n", ErrInvalidWeight},
		{"negative weight", "-1,A,B\n", ErrInvalidWeight},
		{"gap in ranking", "1,A,,B\n", ErrMalformedRow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "line 1")
		})
	}
}

func TestParseCSVEmptyInput(t *testing.T) {
	tbl, err := ParseCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, tbl.Rows)

	// the engine, not the loader, rejects an empty table
	_, err = tally.Plurality(tbl)
	assert.ErrorIs(t, err, tally.ErrEmptyBallotTable)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "votes.csv")
	require.NoError(t, os.WriteFile(path, []byte("5,A,B\n3,B,A\n2,A,B\n"), 0o644))

	tbl, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(10), tbl.TotalWeight())

	res, err := tally.Plurality(tbl)
	require.NoError(t, err)
	assert.Equal(t, []tally.Candidate{"A"}, res.Winners)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRankingRoundTrip(t *testing.T) {
	prefs := []tally.Candidate{"A", "B", "C"}
	assert.Equal(t, "A,B,C", JoinRanking(prefs))

	got, err := SplitRanking(" A, B ,C,")
	require.NoError(t, err)
	assert.Equal(t, prefs, got)

	got, err = SplitRanking("")
	require.NoError(t, err)
	assert.Empty(t, got)

	for _, s := range []string{"A,,B", ",A", " , A"} {
		_, err := SplitRanking(s)
		assert.ErrorIs(t, err, ErrMalformedRow, s)
	}
}
