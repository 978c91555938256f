package stenolex

import (
	"errors"

	"stenolex/internal/keys"
	"stenolex/internal/rules"
)

// ErrNoCandidates is returned by BestOf when no key candidates are given.
// This is a programming error on the caller's side, not a data error.
var ErrNoCandidates = errors.New("stenolex: no key candidates")

// Build-time error types, re-exported so callers can use errors.As without
// reaching into internal packages.
type (
	// LayoutError reports an invalid key layout.
	LayoutError = keys.LayoutError

	// UnknownReferenceError reports a rule pattern referencing an
	// identifier that does not exist.
	UnknownReferenceError = rules.UnknownReferenceError

	// CircularReferenceError reports rule patterns referencing each other
	// in a cycle.
	CircularReferenceError = rules.CircularReferenceError
)
