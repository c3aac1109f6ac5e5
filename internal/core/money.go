// Package core holds the transaction model and the analytics engine.
//
// This file contains amount parsing and rounding helpers. Amounts travel as
// plain decimals on the wire; rounding happens once, at the edge, when a
// value is emitted.
package core

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts a decimal string to a positive amount. It accepts
// both dot (12.34) and comma (12,34) separators. Returns ErrInvalidAmount
// for malformed input, zero, and negative values.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// Round2 rounds a monetary value to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds a percentage to 1 decimal place, half away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
