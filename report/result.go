// Copyright © 2026 The Assure authors

package report

// ComparisonResult is the record a constraint engine hands to the writer
// once a comparison has already failed. It carries a description of what
// was expected plus two rendering capabilities: any result variant that
// needs custom actual-value rendering implements them, and the writer is
// written against this interface only, never against concrete variants.
// Both callbacks may call back into the writer's low-level primitives
// (WriteActualValue, WriteValue, WriteCollectionElements).
type ComparisonResult interface {
	// Description explains what was expected. It is written verbatim on the
	// Expected line, with no value formatting.
	Description() string

	// WriteActualValueTo renders the actual value onto the current line.
	WriteActualValueTo(w *MessageWriter)

	// WriteAdditionalLinesTo appends any extra lines the result wants after
	// the Expected/But-was block, such as nested diffs.
	WriteAdditionalLinesTo(w *MessageWriter)
}
