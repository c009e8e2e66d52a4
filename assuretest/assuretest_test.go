// Copyright © 2026 The Assure authors

package assuretest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTB struct {
	testing.TB
	logged []string
}

func (r *recordingTB) Log(args ...any) {
	for _, a := range args {
		r.logged = append(r.logged, a.(string))
	}
}

func TestLogger_ForwardsCompleteLines(t *testing.T) {
	tb := &recordingTB{}
	log := NewLogger(tb)

	n, err := log.Write([]byte("first\nsec"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, []string{"first"}, tb.logged)

	_, err = log.Write([]byte("ond\nthird\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, tb.logged)
}

func TestLogger_FlushEmitsPartialLine(t *testing.T) {
	tb := &recordingTB{}
	log := NewLogger(tb)
	_, err := log.Write([]byte("partial"))
	require.NoError(t, err)
	assert.Empty(t, tb.logged)

	log.Flush()
	assert.Equal(t, []string{"partial"}, tb.logged)

	// A second flush is a no-op.
	log.Flush()
	assert.Equal(t, []string{"partial"}, tb.logged)
}

func TestCapture(t *testing.T) {
	c := NewCapture()
	c.Writer.DisplayDifferences("a", "b")
	require.NoError(t, c.Writer.Err())
	assert.Equal(t, []string{
		`  Expected: "a"`,
		`  But was:  "b"`,
	}, c.Lines())

	c.Reset()
	assert.Empty(t, c.String())
}
