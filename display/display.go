// Copyright © 2026 The Assure authors

// Package display converts arbitrary Go values into the canonical textual
// form used in failure messages. Strings are quoted with control characters
// escaped, floating-point values keep an explicit decimal point and carry a
// width suffix, and collections render as a bounded, comma-joined window so
// a large slice never floods a failure report.
package display

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// Null is the rendering of a nil value.
const Null = "null"

// Empty is the rendering of a collection with no elements.
const Empty = "<empty>"

// maxElements bounds how many collection elements Value renders before
// eliding the rest.
const maxElements = 10

// composite renders structs, maps, and pointers deterministically: keys are
// sorted and pointer addresses suppressed so two renderings of equal values
// are byte-identical.
var composite = &spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Value returns the canonical display form of v.
func Value(v any) string {
	if v == nil {
		return Null
	}
	switch val := v.(type) {
	case string:
		return `"` + Escape(val) + `"`
	case time.Duration:
		return val.String()
	case float64:
		return formatFloat(val, 64, "d")
	case float32:
		return formatFloat(float64(val), 32, "f")
	case bool:
		return strconv.FormatBool(val)
	case error:
		return Value(val.Error())
	case fmt.Stringer:
		return val.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return `"` + Escape(rv.String()) + `"`
	case reflect.Float32:
		return formatFloat(rv.Float(), 32, "f")
	case reflect.Float64:
		return formatFloat(rv.Float(), 64, "d")
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return Empty
		}
		return "< " + Collection(v, 0, maxElements) + " >"
	case reflect.Ptr:
		if rv.IsNil() {
			return Null
		}
		return composite.Sprintf("%v", v)
	case reflect.Map, reflect.Struct:
		return composite.Sprintf("%v", v)
	}
	return fmt.Sprintf("%v", v)
}

// formatFloat renders f in its shortest round-trippable decimal form,
// guaranteeing a decimal point so integral values still read as floating
// point, and appends the width suffix ("d" for 64-bit, "f" for 32-bit).
// Non-finite values render bare, with no suffix.
func formatFloat(f float64, bits int, suffix string) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s + suffix
}

// Escape replaces control characters in s with visible escape sequences so
// line-oriented output is never corrupted by embedded control bytes. NUL
// becomes `\0`, the common C escapes keep their letter form, and any other
// control character renders as `\xhh`.
func Escape(s string) string {
	if strings.IndexFunc(s, isControl) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case 0:
			b.WriteString(`\0`)
		case '\a':
			b.WriteString(`\a`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\v':
			b.WriteString(`\v`)
		default:
			if isControl(r) {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}

// Iterator yields successive elements of a one-shot sequence. A value
// implementing Iterator is traversed at most once and never rewound.
type Iterator interface {
	Next() (any, bool)
}

// Collection renders the elements of seq beginning at index start, stopping
// after max elements, joined by ", ". When elements remain past the window
// the rendering ends with ", ...". Slices and arrays are accepted, as is any
// Iterator. The sequence is never mutated; a non-sequence renders as its
// Value.
func Collection(seq any, start, max int) string {
	next := iterate(seq)
	if next == nil {
		return Value(seq)
	}
	for i := 0; i < start; i++ {
		if _, ok := next(); !ok {
			return ""
		}
	}
	var b strings.Builder
	n := 0
	for {
		v, ok := next()
		if !ok {
			break
		}
		if n > 0 {
			b.WriteString(", ")
		}
		if n == max {
			b.WriteString("...")
			break
		}
		b.WriteString(Value(v))
		n++
	}
	return b.String()
}

// iterate returns a pull function over seq, or nil when seq is not a
// sequence.
func iterate(seq any) func() (any, bool) {
	if it, ok := seq.(Iterator); ok {
		return it.Next
	}
	rv := reflect.ValueOf(seq)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		i := 0
		return func() (any, bool) {
			if i >= rv.Len() {
				return nil, false
			}
			v := rv.Index(i).Interface()
			i++
			return v, true
		}
	}
	return nil
}
