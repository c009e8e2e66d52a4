// Copyright © 2026 The Assure authors

package strdiff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op classifies a line-diff edit.
type Op int

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

// Edit is one run of consecutive lines sharing a single diff operation.
type Edit struct {
	Op    Op
	Lines []string
}

// LineDiff computes a line-level diff between expected and actual. Runs of
// unchanged lines come back as OpEqual edits so renderers can elide them.
// The result is deterministic for a given input pair.
func LineDiff(expected, actual string) []Edit {
	dmp := diffmatchpatch.New()
	e, a, lines := dmp.DiffLinesToChars(expected, actual)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(e, a, false), lines)

	edits := make([]Edit, 0, len(diffs))
	for _, d := range diffs {
		edit := Edit{Lines: strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n")}
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			edit.Op = OpDelete
		case diffmatchpatch.DiffInsert:
			edit.Op = OpInsert
		default:
			edit.Op = OpEqual
		}
		edits = append(edits, edit)
	}
	return edits
}
