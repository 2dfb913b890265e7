// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballots loads ballot tables for the tally engine.

# CSV

Files have no header. Column 0 is the integer weight, the remaining columns
are candidates in preference order:

	5,A,B,C
	3,B,C,A
	2,A,C,B

	t, err := ballots.LoadFile("votes.csv")

Cells are trimmed and trailing empty cells are ignored, so partial rankings may
be padded to a rectangle.

# SQL

LoadSQL reads the ballot_row table created by package db:

	t, err := ballots.LoadSQL(ctx, conn, "mayor-2025")
*/
package ballots
