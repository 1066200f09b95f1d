// Package core provides fundamental types and utilities for the shooter.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// WrapAdd returns (a + b) mod limit, always in [0, limit).
// Negative operands wrap around from the other edge.
func WrapAdd(a, b, limit int) int {
	if limit <= 0 {
		return 0
	}
	r := (a + b) % limit
	if r < 0 {
		r += limit
	}
	return r
}

// WrapInc moves one cell right, wrapping from limit-1 back to 0.
func WrapInc(v, limit int) int {
	return WrapAdd(v, 1, limit)
}

// WrapDec moves one cell left, wrapping from 0 to limit-1.
func WrapDec(v, limit int) int {
	return WrapAdd(v, limit-1, limit)
}

// AbsDiff returns the non-negative distance between a and b.
func AbsDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
