// Copyright © 2026 The Assure authors

package tolerance

import (
	"math"
	"reflect"
	"time"

	"github.com/go-assure/assure/display"
)

// Difference renders the difference between expected and actual under the
// given tolerance. The second return value is false when the operands are
// not numerically comparable (mixed or non-numeric types), when the mode
// produces no difference line (None, Ulps), or when the computed difference
// is not a number; callers omit the difference line entirely in that case.
//
// Under Linear the difference is |actual − expected|, reduced by a positive
// tolerance amount so the line reports how far the actual value fell outside
// the tolerance band. Under Percent it is |actual − expected| / |expected|
// × 100, with no unit suffix.
func Difference(expected, actual any, tol Tolerance) (string, bool) {
	switch tol.Mode() {
	case Linear:
		if de, ok := asDuration(expected); ok {
			da, ok := asDuration(actual)
			if !ok {
				return "", false
			}
			return durationDifference(de, da, tol), true
		}
		e, okE := numericValue(expected)
		a, okA := numericValue(actual)
		if !okE || !okA {
			return "", false
		}
		d := math.Abs(a - e)
		if amt, ok := numericValue(tol.Amount()); ok && amt > 0 {
			d -= amt
		}
		return formatDifference(d, expected, actual, tol.Amount())
	case Percent:
		e, okE := numericValue(expected)
		a, okA := numericValue(actual)
		if !okE || !okA {
			return "", false
		}
		d := math.Abs(a-e) / math.Abs(e) * 100
		if math.IsNaN(d) {
			return "", false
		}
		return display.Value(d), true
	default:
		return "", false
	}
}

func durationDifference(expected, actual time.Duration, tol Tolerance) string {
	d := actual - expected
	if d < 0 {
		d = -d
	}
	if amt, ok := asDuration(tol.Amount()); ok && amt > 0 {
		d -= amt
	}
	return display.Value(d)
}

// formatDifference renders d, preferring an integral form when every operand
// was an integer so that integer comparisons do not sprout a floating-point
// suffix.
func formatDifference(d float64, expected, actual, amount any) (string, bool) {
	if math.IsNaN(d) {
		return "", false
	}
	if d == math.Trunc(d) && !math.IsInf(d, 0) &&
		isInteger(expected) && isInteger(actual) && (amount == nil || isInteger(amount)) {
		return display.Value(int64(d)), true
	}
	return display.Value(d), true
}

// asDuration reports v as a time.Duration. Only values whose type is
// exactly time.Duration qualify; a bare int64 is not a duration.
func asDuration(v any) (time.Duration, bool) {
	d, ok := v.(time.Duration)
	return d, ok
}

// numericValue widens any numeric value to float64. Durations and other
// non-numeric values are rejected.
func numericValue(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	if _, ok := v.(time.Duration); ok {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func isInteger(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}
