// Copyright © 2026 The Assure authors

// Package strdiff locates the first point of divergence between two strings
// and clips long strings to a display-width budget without losing that
// point. It also renders line-level diffs for multi-line comparisons.
package strdiff

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// ellipsis marks clipped-away content at either end of a window.
const ellipsis = "..."

// FindMismatch scans expected and actual in lock-step from rune index start
// and returns the index of the first differing rune, or -1 when the strings
// are equal or one is a prefix of the other.
func FindMismatch(expected, actual string, start int, ignoreCase bool) int {
	er := []rune(expected)
	ar := []rune(actual)
	n := len(er)
	if len(ar) < n {
		n = len(ar)
	}
	if start < 0 {
		start = 0
	}
	for i := start; i < n; i++ {
		ec, ac := er[i], ar[i]
		if ignoreCase {
			ec = unicode.ToLower(ec)
			ac = unicode.ToLower(ac)
		}
		if ec != ac {
			return i
		}
	}
	return -1
}

// Clip truncates expected and actual to at most maxLen display columns each,
// choosing a single shared window that keeps the rune at mismatch visible in
// both. The window favors trailing content when the mismatch already fits,
// and otherwise centers leading context ahead of the mismatch. Clipped-away
// content is marked with a leading or trailing ellipsis. Because both
// strings are windowed from the same start, recomputing the mismatch with
// FindMismatch on the clipped pair lands on the same logical rune.
func Clip(expected, actual string, maxLen, mismatch int) (string, string) {
	er := []rune(expected)
	ar := []rune(actual)
	longest := len(er)
	if len(ar) > longest {
		longest = len(ar)
	}
	if longest <= maxLen &&
		runewidth.StringWidth(expected) <= maxLen &&
		runewidth.StringWidth(actual) <= maxLen {
		return expected, actual
	}
	window := maxLen - len(ellipsis)
	start := longest - window
	if start > mismatch {
		start = mismatch - window/2
		if start < 0 {
			start = 0
		}
	}
	// The window is sized in runes but the budget is spent in columns, so
	// wide runes can push the mismatch past the kept span. Pull the start
	// forward until the mismatch fits inside the inner column budget.
	if mismatch >= 0 && start <= mismatch {
		r := er
		if mismatch >= len(r) {
			r = ar
		}
		if mismatch < len(r) {
			inner := maxLen - 2*len(ellipsis)
			w := runewidth.StringWidth(string(r[start : mismatch+1]))
			for start < mismatch && w > inner {
				w -= runewidth.RuneWidth(r[start])
				start++
			}
		}
	}
	return clipString(er, maxLen, start), clipString(ar, maxLen, start)
}

// clipString windows r from rune index start into at most maxLen display
// columns, adding ellipses for whatever falls outside the window. The
// budget is counted in columns, not runes, so wide runes cannot overrun it.
func clipString(r []rune, maxLen, start int) string {
	if start <= 0 && runewidth.StringWidth(string(r)) <= maxLen {
		return string(r)
	}
	var b strings.Builder
	budget := maxLen
	if start > 0 {
		budget -= len(ellipsis)
		b.WriteString(ellipsis)
	}
	if start >= len(r) {
		return b.String()
	}
	rest := r[start:]
	if runewidth.StringWidth(string(rest)) > budget {
		budget -= len(ellipsis)
		if budget < 0 {
			budget = 0
		}
		b.WriteString(truncateWidth(rest, budget))
		b.WriteString(ellipsis)
	} else {
		b.WriteString(string(rest))
	}
	return b.String()
}

// truncateWidth returns the longest prefix of r no wider than budget
// display columns.
func truncateWidth(r []rune, budget int) string {
	w := 0
	for i, c := range r {
		cw := runewidth.RuneWidth(c)
		if w+cw > budget {
			return string(r[:i])
		}
		w += cw
	}
	return string(r)
}
