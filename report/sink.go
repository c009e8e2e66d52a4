// Copyright © 2026 The Assure authors

package report

import (
	"io"
	"strings"
)

// Sink is the character-stream target a MessageWriter renders into. The
// writer never depends on the sink's concrete nature; a sink may buffer, go
// to a stream, or discard. A sink error aborts the rendering call that hit
// it (see MessageWriter.Err).
type Sink interface {
	// Write appends text to the current line.
	Write(text string) error

	// WriteLine appends text and terminates the line.
	WriteLine(text string) error

	// WriteBlankLine terminates the current line.
	WriteBlankLine() error
}

type writerSink struct {
	w io.Writer
}

// NewWriterSink adapts an io.Writer into a Sink.
func NewWriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

func (s *writerSink) Write(text string) error {
	_, err := io.WriteString(s.w, text)
	return err
}

func (s *writerSink) WriteLine(text string) error {
	_, err := io.WriteString(s.w, text+"\n")
	return err
}

func (s *writerSink) WriteBlankLine() error {
	_, err := io.WriteString(s.w, "\n")
	return err
}

// BufferSink accumulates rendered text in memory. The zero value is ready
// to use.
type BufferSink struct {
	b strings.Builder
}

func (s *BufferSink) Write(text string) error {
	s.b.WriteString(text)
	return nil
}

func (s *BufferSink) WriteLine(text string) error {
	s.b.WriteString(text)
	s.b.WriteByte('\n')
	return nil
}

func (s *BufferSink) WriteBlankLine() error {
	s.b.WriteByte('\n')
	return nil
}

// String returns everything rendered so far.
func (s *BufferSink) String() string {
	return s.b.String()
}

// Lines splits the rendered text into lines, dropping the trailing empty
// entry produced by a final newline.
func (s *BufferSink) Lines() []string {
	text := s.b.String()
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// Reset discards everything rendered so far.
func (s *BufferSink) Reset() {
	s.b.Reset()
}
