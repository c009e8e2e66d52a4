// Copyright © 2026 The Assure authors

package assuretest

import (
	"github.com/go-assure/assure/report"
)

// Capture pairs a MessageWriter with an in-memory sink so tests of custom
// constraints can assert on exactly what was rendered.
type Capture struct {
	Writer *report.MessageWriter

	sink *report.BufferSink
}

// NewCapture returns a capture whose writer renders into an in-memory
// buffer.
func NewCapture(opts ...report.Option) *Capture {
	sink := &report.BufferSink{}
	return &Capture{
		Writer: report.NewMessageWriter(sink, opts...),
		sink:   sink,
	}
}

// String returns everything rendered so far.
func (c *Capture) String() string {
	return c.sink.String()
}

// Lines returns the rendered output split into lines.
func (c *Capture) Lines() []string {
	return c.sink.Lines()
}

// Reset discards captured output while keeping the writer's configuration.
func (c *Capture) Reset() {
	c.sink.Reset()
}
