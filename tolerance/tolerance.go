// Copyright © 2026 The Assure authors

// Package tolerance models the amount of variance permitted when comparing
// numeric values, and computes the displayed difference between two values
// under a tolerance mode.
package tolerance

import (
	"reflect"
)

// Mode is the interpretation of a tolerance amount.
type Mode int

const (
	// None applies no tolerance: values must match exactly.
	None Mode = iota

	// Linear treats the amount as an absolute difference.
	Linear

	// Percent treats the amount as a percentage of the expected value.
	Percent

	// Ulps is reserved for comparison in units of least precision. It is
	// recognized but never rendered as a difference line.
	Ulps
)

func (m Mode) String() string {
	switch m {
	case None:
		return "None"
	case Linear:
		return "Linear"
	case Percent:
		return "Percent"
	case Ulps:
		return "Ulps"
	default:
		return "Unknown"
	}
}

// Tolerance is an immutable mode/amount pair. The zero value is the exact
// (no variance) tolerance.
type Tolerance struct {
	mode   Mode
	amount any
}

// Default returns the exact tolerance: mode None, no amount.
func Default() Tolerance {
	return Tolerance{}
}

// Within returns a linear (absolute difference) tolerance of amount, which
// may be a number or a time.Duration.
func Within(amount any) Tolerance {
	return Tolerance{mode: Linear, amount: amount}
}

// WithinPercent returns a tolerance of pct percent of the expected value.
func WithinPercent(pct float64) Tolerance {
	return Tolerance{mode: Percent, amount: pct}
}

// Mode reports the tolerance mode.
func (t Tolerance) Mode() Mode {
	return t.mode
}

// Amount reports the tolerance amount. It is nil for the default tolerance.
func (t Tolerance) Amount() any {
	return t.amount
}

// HasVariance reports whether the tolerance permits any variance at all:
// the mode is not None and the amount is non-zero.
func (t Tolerance) HasVariance() bool {
	if t.mode == None || t.amount == nil {
		return false
	}
	return !reflect.ValueOf(t.amount).IsZero()
}
