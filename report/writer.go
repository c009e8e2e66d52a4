// Copyright © 2026 The Assure authors

// Package report renders the multi-line diagnostic block explaining a
// failed comparison: an Expected line, a But-was line, and, when a numeric
// tolerance is in play, an Off-by line. String comparisons additionally get
// a caret line marking the first point of divergence. The package does not
// decide whether an assertion passed; it only explains a failure it is
// handed.
package report

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/indent"

	"github.com/go-assure/assure/display"
	"github.com/go-assure/assure/strdiff"
	"github.com/go-assure/assure/tolerance"
	"github.com/go-assure/assure/typename"
)

// DefaultMaxLineLength is the line-width budget a new writer starts with.
const DefaultMaxLineLength = 78

// indentUnit is one level of message indentation. The standard line
// prefixes embed exactly one unit.
const indentUnit = "  "

// PrefixLength is the width every standard line prefix is padded to. All
// clipping and caret arithmetic is relative to this one constant; the
// prefixes below are derived from it so they can never fall out of
// alignment.
const PrefixLength = 12

var (
	pfxExpected = makePrefix("Expected:")
	pfxActual   = makePrefix("But was:")
	pfxDiff     = makePrefix("Off by:")
)

// makePrefix pads label out to PrefixLength columns behind the standard
// indent. Panics at init when a label cannot fit the prefix width.
func makePrefix(label string) string {
	return indentUnit + label + strings.Repeat(" ", PrefixLength-len(indentUnit)-len(label))
}

// ErrFormat reports a message template whose arguments did not match its
// verbs. This is a programming error in the caller and surfaces immediately
// instead of emitting a mangled line.
var ErrFormat = errors.New("message format mismatch")

// renderState tracks the call-scoped type-disambiguation labels. The writer
// is idle between top-level rendering calls; entering a value comparison
// whose operands format identically but differ in type moves it to the
// rendering state with a label pair cached for that call only.
type renderState int

const (
	stateIdle renderState = iota
	stateRendering
)

// MessageWriter is a line-oriented writer for failure messages. A writer
// owns transient per-call state and is not safe for concurrent use; give
// each goroutine its own instance.
type MessageWriter struct {
	sink          Sink
	maxLineLength int

	state         renderState
	expectedLabel string
	actualLabel   string

	err error
}

// Option configures a MessageWriter.
type Option func(*MessageWriter)

// WithMaxLineLength sets the line-width budget used for clipping and other
// width-dependent computations.
func WithMaxLineLength(n int) Option {
	return func(w *MessageWriter) {
		w.maxLineLength = n
	}
}

// NewMessageWriter returns a writer rendering into sink.
func NewMessageWriter(sink Sink, opts ...Option) *MessageWriter {
	w := &MessageWriter{
		sink:          sink,
		maxLineLength: DefaultMaxLineLength,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// MaxLineLength reports the current line-width budget.
func (w *MessageWriter) MaxLineLength() int {
	return w.maxLineLength
}

// SetMaxLineLength changes the line-width budget. The change takes effect
// for the next width-dependent write.
func (w *MessageWriter) SetMaxLineLength(n int) {
	w.maxLineLength = n
}

// Err returns the first sink error encountered, if any. Once a sink write
// fails, subsequent writes short-circuit.
func (w *MessageWriter) Err() error {
	return w.err
}

func (w *MessageWriter) write(s string) {
	if w.err != nil {
		return
	}
	w.err = w.sink.Write(s)
}

func (w *MessageWriter) writeLine(s string) {
	if w.err != nil {
		return
	}
	w.err = w.sink.WriteLine(s)
}

func (w *MessageWriter) newline() {
	if w.err != nil {
		return
	}
	w.err = w.sink.WriteBlankLine()
}

// WriteMessageLine emits one message line indented by level units. When
// args are given they are interpolated into format; a template whose verbs
// do not match its arguments returns ErrFormat without emitting anything.
// NUL characters are escaped so an embedded control byte cannot corrupt the
// line structure.
func (w *MessageWriter) WriteMessageLine(level int, format string, args ...any) error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
		if strings.Contains(msg, "%!") {
			return fmt.Errorf("%w: %q", ErrFormat, format)
		}
	}
	msg = strings.ReplaceAll(msg, "\x00", `\0`)
	if level > 0 {
		msg = indent.String(msg, uint(2*level))
	}
	w.writeLine(msg)
	return w.err
}

// DisplayResultDifferences renders the standard failure block for a
// comparison result: the Expected line taken verbatim from the result's
// description, the But-was line rendered by the result's own callback, and
// whatever additional lines the result wants appended, in that order.
func (w *MessageWriter) DisplayResultDifferences(result ComparisonResult) {
	w.reset()
	w.write(pfxExpected)
	w.writeLine(result.Description())
	w.write(pfxActual)
	result.WriteActualValueTo(w)
	w.newline()
	result.WriteAdditionalLinesTo(w)
}

// DisplayDifferences renders the Expected/But-was block for a raw value
// pair with no tolerance.
func (w *MessageWriter) DisplayDifferences(expected, actual any) {
	w.DisplayToleranceDifferences(expected, actual, tolerance.Default())
}

// DisplayToleranceDifferences renders the Expected/But-was block for a raw
// value pair, annotating the Expected line with the tolerance when it has
// variance and appending an Off-by line when the values are numerically
// comparable under the tolerance mode. When the two values format
// identically but have different underlying types, both lines carry a
// distinguishing type label.
func (w *MessageWriter) DisplayToleranceDifferences(expected, actual any, tol tolerance.Tolerance) {
	w.reset()
	if sameRepresentation(expected, actual) {
		e, a := typename.Resolve(expected, actual)
		w.state = stateRendering
		w.expectedLabel = typename.Label(e)
		w.actualLabel = typename.Label(a)
	}

	w.write(pfxExpected)
	w.WriteExpectedValue(expected)
	if tol.HasVariance() {
		w.WriteConnector("+/-")
		w.WriteValue(tol.Amount())
		if tol.Mode() != tolerance.Linear {
			w.write(" " + tol.Mode().String())
		}
	}
	w.newline()

	w.write(pfxActual)
	w.WriteActualValue(actual)
	w.newline()

	if tol.Mode() != tolerance.None {
		if diff, ok := tolerance.Difference(expected, actual, tol); ok {
			w.write(pfxDiff)
			w.writeLine(diff)
		}
	}
}

// DisplayStringDifferences renders the failure block for a string pair.
// When clipping is requested both strings are clipped to the width budget
// left over after the prefix and surrounding quotes, keeping the mismatch
// point visible. Control characters are escaped before the mismatch index
// is recomputed, so escape substitutions cannot desynchronize the caret
// from the visible text. The caret line is emitted only when a mismatch
// index was found against the final, displayed strings.
func (w *MessageWriter) DisplayStringDifferences(expected, actual string, mismatch int, ignoreCase, clipping bool) {
	w.reset()
	// Reserve room for the prefix and the two quote characters added by
	// value formatting.
	maxContent := w.maxLineLength - PrefixLength - 2
	if clipping {
		expected, actual = strdiff.Clip(expected, actual, maxContent, mismatch)
	}
	expected = display.Escape(expected)
	actual = display.Escape(actual)
	mismatch = strdiff.FindMismatch(expected, actual, 0, ignoreCase)

	w.write(pfxExpected)
	w.write(`"` + expected + `"`)
	if ignoreCase {
		w.WriteModifier("ignoring case")
	}
	w.newline()

	w.write(pfxActual)
	w.writeLine(`"` + actual + `"`)

	if mismatch >= 0 {
		w.writeCaretLine(mismatch, actual)
	}
}

// writeCaretLine draws the line that points at the first mismatching
// character of the But-was line. The dash run is sized from PrefixLength
// and the display width of the actual value up to the mismatch, so the
// caret lands under the offending character once both lines share the same
// prefix width.
func (w *MessageWriter) writeCaretLine(mismatch int, actual string) {
	r := []rune(actual)
	if mismatch > len(r) {
		mismatch = len(r)
	}
	width := runewidth.StringWidth(string(r[:mismatch]))
	w.writeLine(indentUnit + strings.Repeat("-", PrefixLength+width-2) + "^")
}

// DisplayLineDiff appends a line-level diff of two multi-line strings,
// marking removed lines with "-" and added lines with "+". Long runs of
// unchanged lines are elided to one line of context on each side.
func (w *MessageWriter) DisplayLineDiff(expected, actual string) {
	for _, e := range strdiff.LineDiff(expected, actual) {
		switch e.Op {
		case strdiff.OpDelete:
			for _, line := range e.Lines {
				w.writeDiffLine("- ", line)
			}
		case strdiff.OpInsert:
			for _, line := range e.Lines {
				w.writeDiffLine("+ ", line)
			}
		default:
			if n := len(e.Lines); n > 2 {
				w.writeDiffLine("  ", e.Lines[0])
				w.writeDiffLine("  ", "...")
				w.writeDiffLine("  ", e.Lines[n-1])
			} else {
				for _, line := range e.Lines {
					w.writeDiffLine("  ", line)
				}
			}
		}
	}
}

// writeDiffLine emits one line of a line diff. Compared text goes through
// the raw line path, never the format path, so a line containing fmt verb
// syntax cannot be mistaken for a bad template.
func (w *MessageWriter) writeDiffLine(marker, line string) {
	line = strings.ReplaceAll(line, "\x00", `\0`)
	w.writeLine(indentUnit + marker + line)
}

// WriteValue writes the canonical display form of v onto the current line.
func (w *MessageWriter) WriteValue(v any) {
	w.write(display.Value(v))
}

// WriteExpectedValue writes v, suffixed with its disambiguation label when
// the current rendering call established one.
func (w *MessageWriter) WriteExpectedValue(v any) {
	w.WriteValue(v)
	if w.state == stateRendering {
		w.write(w.expectedLabel)
	}
}

// WriteActualValue writes v, suffixed with its disambiguation label when
// the current rendering call established one. Custom comparison results
// may call this from their rendering callbacks.
func (w *MessageWriter) WriteActualValue(v any) {
	w.WriteValue(v)
	if w.state == stateRendering {
		w.write(w.actualLabel)
	}
}

// WriteCollectionElements writes a windowed rendering of seq onto the
// current line: max elements starting at index start.
func (w *MessageWriter) WriteCollectionElements(seq any, start, max int) {
	w.write(display.Collection(seq, start, max))
}

// WritePredicate writes a phrase describing what was expected, followed by
// a space so a value can follow.
func (w *MessageWriter) WritePredicate(predicate string) {
	w.write(predicate + " ")
}

// WriteConnector writes a connecting word between two values, surrounded
// by spaces.
func (w *MessageWriter) WriteConnector(connector string) {
	w.write(" " + connector + " ")
}

// WriteModifier writes a trailing qualifier such as "ignoring case".
func (w *MessageWriter) WriteModifier(modifier string) {
	w.write(", " + modifier)
}

// reset returns the writer to the idle state. Every top-level Display call
// resets on entry so stale disambiguation labels from a previous failure
// are never reused.
func (w *MessageWriter) reset() {
	w.state = stateIdle
	w.expectedLabel = ""
	w.actualLabel = ""
}

// sameRepresentation reports whether expected and actual are of different
// dynamic types yet render identically, the "4 vs 4.0" ambiguity that
// requires type labels to tell the reader what actually differed.
func sameRepresentation(expected, actual any) bool {
	if expected == nil || actual == nil {
		return false
	}
	if reflect.TypeOf(expected) == reflect.TypeOf(actual) {
		return false
	}
	return display.Value(expected) == display.Value(actual)
}
