// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package report renders tally results for people (text) and programs (JSON).
// Tie messages live here; the engine only sets Result.Tie.
package report
