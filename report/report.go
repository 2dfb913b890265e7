// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/tally"
)

type Format string

const (
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Write renders res in the given format. FormatAuto resolves via Detect.
func Write(w io.Writer, res tally.Result, format Format) error {
	if format == FormatAuto || format == "" {
		format = Detect(w)
	}
	switch format {
	case FormatText:
		return Text(w, res)
	case FormatJSON:
		return JSON(w, res)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// Detect returns FormatText for terminals and FormatJSON for everything else
func Detect(w io.Writer) Format {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return FormatJSON
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return FormatText
	}
	return FormatJSON
}

// JSON writes the API representation of res
func JSON(w io.Writer, res tally.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(models.NewTallyResponse(res))
}

// Text writes a human readable summary of res
func Text(w io.Writer, res tally.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "Method:\t%s\t\n", res.Method)
	fmt.Fprintf(tw, "Voters:\t%s\t\n", humanize.Comma(res.TotalWeight))

	for _, round := range res.Rounds {
		fmt.Fprintf(tw, "Round %d\t\t\n", round.Number)
		for _, s := range round.Scores {
			fmt.Fprintf(tw, "%s\t%s\t\n", s.Candidate, humanize.Comma(s.Value))
		}
		if round.Exhausted > 0 {
			fmt.Fprintf(tw, "exhausted\t%s\t\n", humanize.Comma(round.Exhausted))
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if res.Tie {
		_, err := fmt.Fprintf(w, "There has been a tie between: %s\n", joinCandidates(res.Winners))
		return err
	}
	_, err := fmt.Fprintf(w, "Winner: %s\n", joinCandidates(res.Winners))
	return err
}

func joinCandidates(cands []tally.Candidate) string {
	parts := make([]string, len(cands))
	for i, c := range cands {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}
