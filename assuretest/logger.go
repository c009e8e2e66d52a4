// Copyright © 2026 The Assure authors

// Package assuretest provides helpers for testing code that renders
// failure messages: a sink-backed capture for asserting rendered output
// and a logger that forwards rendered lines to a testing.TB.
package assuretest

import (
	"bytes"
	"io"
	"testing"
)

// Logger is an io.Writer that buffers written bytes and forwards each
// complete line to t.Log, so rendered failure blocks show up in test
// output with go test's usual prefixes.
type Logger struct {
	t   testing.TB
	buf []byte
}

var _ io.Writer = (*Logger)(nil)

func NewLogger(t testing.TB) *Logger {
	return &Logger{t: t}
}

func (log *Logger) Write(b []byte) (int, error) {
	log.buf = append(log.buf, b...)
	for {
		i := bytes.IndexByte(log.buf, '\n')
		if i < 0 {
			return len(b), nil
		}
		log.t.Log(string(log.buf[:i])) // logged line excludes the \n
		log.buf = log.buf[i+1:]
	}
}

// Flush logs any buffered partial line. Call it before the test returns so
// output not ending in a newline is not lost.
func (log *Logger) Flush() {
	if len(log.buf) == 0 {
		return
	}
	log.t.Log(string(log.buf))
	log.buf = nil
}
