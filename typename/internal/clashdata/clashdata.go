// Copyright © 2026 The Assure authors

// Package clashdata exists to supply a type whose short name collides with
// one declared in the typename test suite.
package clashdata

type clash struct {
	n int //nolint:unused // forces a distinct type identity
}

// New returns a value of an unexported type named "clash".
func New() any {
	return clash{}
}
