package tree

import "errors"

var (
	// ErrElementMissing reports that a path addressed a child expected to
	// exist but absent. Deterministic input error, never transient.
	ErrElementMissing = errors.New("element missing")

	// ErrBadPath reports a malformed path expression.
	ErrBadPath = errors.New("bad path")
)
