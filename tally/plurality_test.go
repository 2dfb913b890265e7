// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlurality(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		winners []Candidate
		tie     bool
		scores  []Score
	}{
		{
			name: "clear winner",
			table: Table{Rows: []Row{
				row(5, "A", "B"),
				row(3, "B", "A"),
				row(2, "A", "B"),
			}},
			winners: []Candidate{"A"},
			scores:  []Score{{"A", 7}, {"B", 3}},
		},
		{
			name: "two way tie",
			table: Table{Rows: []Row{
				row(4, "A", "B"),
				row(4, "B", "A"),
			}},
			winners: []Candidate{"A", "B"},
			tie:     true,
			scores:  []Score{{"A", 4}, {"B", 4}},
		},
		{
			name: "all tied",
			table: Table{Rows: []Row{
				row(2, "C", "A", "B"),
				row(2, "A", "B", "C"),
				row(2, "B", "C", "A"),
			}},
			winners: []Candidate{"C", "A", "B"},
			tie:     true,
			scores:  []Score{{"C", 2}, {"A", 2}, {"B", 2}},
		},
		{
			name: "candidate never ranked first",
			table: Table{Rows: []Row{
				row(3, "A", "C"),
				row(2, "B", "C"),
			}},
			winners: []Candidate{"A"},
			scores:  []Score{{"A", 3}, {"C", 0}, {"B", 2}},
		},
		{
			name:    "single row partial ranking",
			table:   Table{Rows: []Row{row(1, "A")}},
			winners: []Candidate{"A"},
			scores:  []Score{{"A", 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Plurality(tt.table)
			require.NoError(t, err)
			assert.Equal(t, MethodPlurality, res.Method)
			assert.Equal(t, tt.winners, res.Winners)
			assert.Equal(t, tt.tie, res.Tie)
			require.Len(t, res.Rounds, 1)
			assert.Equal(t, tt.scores, res.Rounds[0].Scores)
			assert.Equal(t, tt.table.TotalWeight(), res.TotalWeight)
		})
	}
}

func TestPluralityWinnerHasMaxFirstPreferenceWeight(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := range 200 {
		tbl := randomTable(r, 2+r.IntN(4), 1+r.IntN(10))
		res, err := Plurality(tbl)
		require.NoError(t, err)
		require.NotEmpty(t, res.Winners)

		round := res.Rounds[0]
		best := scoreOf(t, round, res.Winners[0])
		for _, w := range res.Winners {
			assert.Equal(t, best, scoreOf(t, round, w), "case %d", i)
		}
		for _, s := range round.Scores {
			assert.LessOrEqual(t, s.Value, best, "case %d", i)
		}
		assert.Equal(t, len(res.Winners) > 1, res.Tie)
	}
}
