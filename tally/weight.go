// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"fmt"
	"math"
)

// addWeight returns a+b, or false when the sum leaves the int64 range
func addWeight(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

// mulWeight returns w*p for p >= 0, or false when the product leaves the int64 range
func mulWeight(w, p int64) (int64, bool) {
	if p != 0 && (w > math.MaxInt64/p || w < math.MinInt64/p) {
		return 0, false
	}
	return w * p, true
}

// totalWeight sums row weights, failing instead of wrapping
func (t Table) totalWeight() (int64, error) {
	var total int64
	for i, row := range t.Rows {
		var ok bool
		if total, ok = addWeight(total, row.Weight); !ok {
			return 0, fmt.Errorf("row %d: total weight exceeds %d: %w", i, int64(math.MaxInt64), ErrWeightOverflow)
		}
	}
	return total, nil
}
