// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/tally"
)

func runoffResult(t *testing.T) tally.Result {
	t.Helper()
	res, err := tally.Runoff(tally.Table{Rows: []tally.Row{
		{Weight: 4000, Preferences: []tally.Candidate{"A"}},
		{Weight: 3000, Preferences: []tally.Candidate{"B"}},
		{Weight: 2000, Preferences: []tally.Candidate{"C"}},
	}})
	if err != nil {
		t.Fatalf("Runoff failed: %v", err)
	}
	return res
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, runoffResult(t)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{"runoff", "9,000", "Round 1", "Round 2", "4,000", "exhausted", "Winner: A"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "tie") {
		t.Errorf("unexpected tie message:\n%s", out)
	}
}

func TestTextTie(t *testing.T) {
	res, err := tally.Plurality(tally.Table{Rows: []tally.Row{
		{Weight: 4, Preferences: []tally.Candidate{"A", "B"}},
		{Weight: 4, Preferences: []tally.Candidate{"B", "A"}},
	}})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Text(&buf, res); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "There has been a tie between: A, B") {
		t.Errorf("expected tie message, got:\n%s", buf.String())
	}
}

func TestJSON(t *testing.T) {
	res := runoffResult(t)

	var buf bytes.Buffer
	if err := JSON(&buf, res); err != nil {
		t.Fatal(err)
	}

	var got models.TallyResponse
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if diff := cmp.Diff(models.NewTallyResponse(res), got); diff != "" {
		t.Errorf("JSON output mismatch (-want +got):\n%s", diff)
	}
	if got.Outright || got.Rounds[1].Exhausted != 2000 {
		t.Errorf("expected a second round with 2000 exhausted, got %+v", got)
	}
}

func TestWriteFormats(t *testing.T) {
	res := runoffResult(t)

	// a buffer is not a terminal, so auto means JSON
	var auto bytes.Buffer
	if err := Write(&auto, res, FormatAuto); err != nil {
		t.Fatal(err)
	}
	if !json.Valid(auto.Bytes()) {
		t.Errorf("expected JSON for non-terminal writer, got:\n%s", auto.String())
	}

	var text bytes.Buffer
	if err := Write(&text, res, FormatText); err != nil {
		t.Fatal(err)
	}
	if json.Valid(text.Bytes()) {
		t.Error("expected text output")
	}

	if err := Write(&text, res, Format("xml")); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestDetectRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if got := Detect(f); got != FormatJSON {
		t.Errorf("expected json for a regular file, got %s", got)
	}
}
