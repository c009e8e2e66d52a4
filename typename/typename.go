// Copyright © 2026 The Assure authors

// Package typename disambiguates two values whose displayed forms are
// identical but whose underlying types differ, such as int32(4) and
// int64(4), by finding the shortest pair of type names that tells them
// apart.
package typename

import (
	"reflect"
)

// Resolve returns a pair of type names for expected and actual, escalating
// from short names to package-qualified names to fully qualified names
// until the pair differs. When even fully qualified names collide the fully
// qualified forms are returned as-is: degraded labels beat no labels while
// reporting a failure.
func Resolve(expected, actual any) (string, string) {
	te := reflect.TypeOf(expected)
	ta := reflect.TypeOf(actual)
	if e, a := shortName(te), shortName(ta); e != a {
		return e, a
	}
	if e, a := te.String(), ta.String(); e != a {
		return e, a
	}
	return fullName(te), fullName(ta)
}

// Label decorates a resolved type name for direct concatenation onto a
// formatted value, e.g. " (int32)".
func Label(name string) string {
	return " (" + name + ")"
}

// shortName is the unqualified name of t. Unnamed types (slices, pointers,
// and the like) have no short name and fall back to their syntax form.
func shortName(t reflect.Type) string {
	if n := t.Name(); n != "" {
		return n
	}
	return t.String()
}

// fullName qualifies t with its full package import path.
func fullName(t reflect.Type) string {
	if p := t.PkgPath(); p != "" {
		return p + "." + t.Name()
	}
	return t.String()
}
