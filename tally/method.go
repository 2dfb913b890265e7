// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"fmt"
	"strings"
)

// Method names a tabulation rule
type Method string

const (
	MethodPlurality  Method = "plurality"
	MethodRunoff     Method = "runoff"
	MethodPositional Method = "positional"
	MethodBorda      Method = "borda"
)

// Methods lists the supported rules
func Methods() []Method {
	return []Method{MethodPlurality, MethodRunoff, MethodPositional, MethodBorda}
}

// ParseMethod resolves a method name, case-insensitively.
// "condorcet" is accepted as the legacy name of the positional rule.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "plurality", "majority":
		return MethodPlurality, nil
	case "runoff", "plurality-runoff", "plurality_runoff":
		return MethodRunoff, nil
	case "positional", "condorcet":
		return MethodPositional, nil
	case "borda":
		return MethodBorda, nil
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownMethod)
}

// Tabulate runs the tabulator for m over t
func Tabulate(m Method, t Table) (Result, error) {
	switch m {
	case MethodPlurality:
		return Plurality(t)
	case MethodRunoff:
		return Runoff(t)
	case MethodPositional:
		return Positional(t)
	case MethodBorda:
		return Borda(t)
	}
	return Result{}, fmt.Errorf("%q: %w", m, ErrUnknownMethod)
}
