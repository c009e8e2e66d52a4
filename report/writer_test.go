// Copyright © 2026 The Assure authors

package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-assure/assure/tolerance"
)

func newTestWriter(opts ...Option) (*MessageWriter, *BufferSink) {
	sink := &BufferSink{}
	return NewMessageWriter(sink, opts...), sink
}

func TestPrefixesShareOneWidth(t *testing.T) {
	assert.Equal(t, PrefixLength, len(pfxExpected))
	assert.Equal(t, PrefixLength, len(pfxActual))
	assert.Equal(t, PrefixLength, len(pfxDiff))
	assert.Equal(t, "  Expected: ", pfxExpected)
	assert.Equal(t, "  But was:  ", pfxActual)
	assert.Equal(t, "  Off by:   ", pfxDiff)
}

func TestDisplayToleranceDifferences_Linear(t *testing.T) {
	w, sink := newTestWriter()
	w.DisplayToleranceDifferences(5.0, 6.0, tolerance.Within(0.05))
	require.NoError(t, w.Err())
	assert.Equal(t, []string{
		"  Expected: 5.0d +/- 0.05d",
		"  But was:  6.0d",
		"  Off by:   0.95d",
	}, sink.Lines())
}

func TestDisplayToleranceDifferences_PercentModeName(t *testing.T) {
	w, sink := newTestWriter()
	w.DisplayToleranceDifferences(200.0, 210.0, tolerance.WithinPercent(5))
	require.NoError(t, w.Err())
	assert.Equal(t, []string{
		"  Expected: 200.0d +/- 5.0d Percent",
		"  But was:  210.0d",
		"  Off by:   5.0d",
	}, sink.Lines())
}

func TestDisplayDifferences_NoTolerance(t *testing.T) {
	w, sink := newTestWriter()
	w.DisplayDifferences("alpha", "bravo")
	require.NoError(t, w.Err())
	assert.Equal(t, []string{
		`  Expected: "alpha"`,
		`  But was:  "bravo"`,
	}, sink.Lines())
}

func TestDisplayToleranceDifferences_SuppressedDifference(t *testing.T) {
	// Mixed types are not numerically comparable: no Off-by line.
	w, sink := newTestWriter()
	w.DisplayToleranceDifferences("abc", 5, tolerance.Within(1))
	require.NoError(t, w.Err())
	assert.Equal(t, []string{
		`  Expected: "abc" +/- 1`,
		"  But was:  5",
	}, sink.Lines())
}

func TestDisplayDifferences_TypeDisambiguation(t *testing.T) {
	w, sink := newTestWriter()
	w.DisplayDifferences(int32(4), int64(4))
	require.NoError(t, w.Err())
	assert.Equal(t, []string{
		"  Expected: 4 (int32)",
		"  But was:  4 (int64)",
	}, sink.Lines())
}

func TestDisplayDifferences_StateResetsBetweenCalls(t *testing.T) {
	w, sink := newTestWriter()
	w.DisplayDifferences(int32(4), int64(4))
	sink.Reset()

	// A second call with same-typed operands must not reuse stale labels.
	w.DisplayDifferences(4, 5)
	require.NoError(t, w.Err())
	assert.Equal(t, []string{
		"  Expected: 4",
		"  But was:  5",
	}, sink.Lines())
}

func TestDisplayDifferences_Idempotent(t *testing.T) {
	w1, sink1 := newTestWriter()
	w2, sink2 := newTestWriter()
	w1.DisplayToleranceDifferences(5.0, 6.0, tolerance.Within(0.05))
	w2.DisplayToleranceDifferences(5.0, 6.0, tolerance.Within(0.05))
	assert.Equal(t, sink1.String(), sink2.String())
}

func TestDisplayStringDifferences_Caret(t *testing.T) {
	w, sink := newTestWriter()
	w.DisplayStringDifferences("abcde", "abXde", 2, false, false)
	require.NoError(t, w.Err())
	lines := sink.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, `  Expected: "abcde"`, lines[0])
	assert.Equal(t, `  But was:  "abXde"`, lines[1])
	// PrefixLength + mismatch - 2 dashes behind the two-space indent.
	assert.Equal(t, "  "+strings.Repeat("-", 12)+"^", lines[2])
}

func TestDisplayStringDifferences_CaretDashFormula(t *testing.T) {
	w, sink := newTestWriter()
	w.DisplayStringDifferences("abcX", "abcY", 3, false, false)
	require.NoError(t, w.Err())
	lines := sink.Lines()
	require.Len(t, lines, 3)
	caret := lines[2]
	require.True(t, strings.HasPrefix(caret, "  "))
	require.True(t, strings.HasSuffix(caret, "^"))
	dashes := strings.TrimSuffix(strings.TrimPrefix(caret, "  "), "^")
	assert.Equal(t, strings.Repeat("-", PrefixLength+3-2), dashes)
}

func TestDisplayStringDifferences_IgnoreCase(t *testing.T) {
	w, sink := newTestWriter()
	w.DisplayStringDifferences("ABC", "abc", -1, true, false)
	require.NoError(t, w.Err())
	// Case-folded strings match: no caret line.
	assert.Equal(t, []string{
		`  Expected: "ABC", ignoring case`,
		`  But was:  "abc"`,
	}, sink.Lines())
}

func TestDisplayStringDifferences_EscapingBeforeCaret(t *testing.T) {
	// The escape substitution lengthens the string; the caret index must be
	// computed against the escaped text, not the raw one.
	w, sink := newTestWriter()
	w.DisplayStringDifferences("a\tbc", "a\tbd", 3, false, false)
	require.NoError(t, w.Err())
	lines := sink.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, `  Expected: "a\tbc"`, lines[0])
	assert.Equal(t, `  But was:  "a\tbd"`, lines[1])
	// Mismatch recomputed against the escaped strings lands at index 4.
	assert.Equal(t, "  "+strings.Repeat("-", PrefixLength+4-2)+"^", lines[2])
}

func TestDisplayStringDifferences_Clipped(t *testing.T) {
	base := strings.Repeat("a", 200)
	expected := base[:150] + "X" + base[151:]
	actual := base[:150] + "Y" + base[151:]

	w, sink := newTestWriter(WithMaxLineLength(40))
	w.DisplayStringDifferences(expected, actual, 150, false, true)
	require.NoError(t, w.Err())
	lines := sink.Lines()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "X")
	assert.Contains(t, lines[1], "Y")
	assert.Contains(t, lines[0], "...")
	// Lines respect the width budget: prefix + quotes + clipped content.
	assert.LessOrEqual(t, len(lines[0]), 40)
	assert.LessOrEqual(t, len(lines[1]), 40)
	// The caret points into the clipped window.
	assert.True(t, strings.HasSuffix(lines[2], "^"))
}

func TestWriteMessageLine(t *testing.T) {
	w, sink := newTestWriter()
	require.NoError(t, w.WriteMessageLine(0, "plain message"))
	require.NoError(t, w.WriteMessageLine(1, "indented %d", 42))
	require.NoError(t, w.WriteMessageLine(2, "deeper"))
	assert.Equal(t, []string{
		"plain message",
		"  indented 42",
		"    deeper",
	}, sink.Lines())
}

func TestWriteMessageLine_FormatError(t *testing.T) {
	w, sink := newTestWriter()
	// The mismatch must only be visible at runtime; a constant template
	// here would be rejected statically before the test could run.
	format := "count: %d"
	err := w.WriteMessageLine(0, format, "not a number")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFormat)
	// Nothing mangled was emitted.
	assert.Empty(t, sink.String())
}

func TestWriteMessageLine_EscapesNUL(t *testing.T) {
	w, sink := newTestWriter()
	require.NoError(t, w.WriteMessageLine(0, "a\x00b"))
	assert.Equal(t, `a\0b`+"\n", sink.String())
}

func TestWriteMessageLine_MultiLineIndent(t *testing.T) {
	w, sink := newTestWriter()
	require.NoError(t, w.WriteMessageLine(1, "first\nsecond"))
	assert.Equal(t, []string{"  first", "  second"}, sink.Lines())
}

type fakeResult struct {
	description string
	actual      any
	extra       string
}

func (r *fakeResult) Description() string { return r.description }

func (r *fakeResult) WriteActualValueTo(w *MessageWriter) {
	w.WriteActualValue(r.actual)
}

func (r *fakeResult) WriteAdditionalLinesTo(w *MessageWriter) {
	if r.extra != "" {
		_ = w.WriteMessageLine(1, r.extra)
	}
}

func TestDisplayResultDifferences(t *testing.T) {
	w, sink := newTestWriter()
	w.DisplayResultDifferences(&fakeResult{
		description: "a value greater than 10",
		actual:      7,
		extra:       "collection had 3 elements",
	})
	require.NoError(t, w.Err())
	assert.Equal(t, []string{
		"  Expected: a value greater than 10",
		"  But was:  7",
		"  collection had 3 elements",
	}, sink.Lines())
}

func TestLowLevelPrimitives(t *testing.T) {
	w, sink := newTestWriter()
	w.WritePredicate("equal to")
	w.WriteValue("abc")
	w.WriteConnector("or")
	w.WriteValue("def")
	w.WriteModifier("ignoring case")
	w.newline()
	w.WriteCollectionElements([]int{1, 2, 3, 4}, 1, 2)
	w.newline()
	require.NoError(t, w.Err())
	assert.Equal(t, []string{
		`equal to "abc" or "def", ignoring case`,
		"2, 3, ...",
	}, sink.Lines())
}

func TestDisplayLineDiff(t *testing.T) {
	w, sink := newTestWriter()
	w.DisplayLineDiff("alpha\nbeta\ngamma\n", "alpha\nbravo\ngamma\n")
	require.NoError(t, w.Err())
	lines := sink.Lines()
	assert.Contains(t, lines, "  - beta")
	assert.Contains(t, lines, "  + bravo")
}

func TestDisplayLineDiff_FmtVerbSyntaxSurvives(t *testing.T) {
	// Compared text is data, not a template: lines that look like fmt
	// error markers must render verbatim instead of being dropped.
	w, sink := newTestWriter()
	w.DisplayLineDiff("fmt: %!d(int=1)\n", "fmt: %!d(int=2)\n")
	require.NoError(t, w.Err())
	lines := sink.Lines()
	assert.Contains(t, lines, "  - fmt: %!d(int=1)")
	assert.Contains(t, lines, "  + fmt: %!d(int=2)")
}

type failingSink struct {
	writes int
}

var errSinkClosed = errors.New("sink closed")

func (s *failingSink) Write(string) error     { s.writes++; return errSinkClosed }
func (s *failingSink) WriteLine(string) error { s.writes++; return errSinkClosed }
func (s *failingSink) WriteBlankLine() error  { s.writes++; return errSinkClosed }

func TestSinkErrorShortCircuits(t *testing.T) {
	sink := &failingSink{}
	w := NewMessageWriter(sink)
	w.DisplayDifferences(1, 2)
	assert.ErrorIs(t, w.Err(), errSinkClosed)
	// Only the first write reached the sink.
	assert.Equal(t, 1, sink.writes)
}

func TestSetMaxLineLength_TakesEffectNextWrite(t *testing.T) {
	w, sink := newTestWriter()
	long := strings.Repeat("x", 100) + "Q"
	w.SetMaxLineLength(30)
	w.DisplayStringDifferences(long, long[:100]+"R", 100, false, true)
	require.NoError(t, w.Err())
	for _, line := range sink.Lines()[:2] {
		assert.LessOrEqual(t, len(line), 30)
	}
}
