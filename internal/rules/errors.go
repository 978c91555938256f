package rules

import "strings"

// UnknownReferenceError is returned when a rule pattern references an
// identifier that does not exist in the raw definition map.
type UnknownReferenceError struct {
	// Parent is the identifier of the rule whose pattern holds the reference.
	Parent string

	// Child is the identifier that could not be found.
	Child string
}

// Error implements the error interface.
func (e *UnknownReferenceError) Error() string {
	return "rule " + e.Parent + " references unknown rule " + e.Child
}

// CircularReferenceError is returned when rule patterns reference each other
// in a cycle. Chain lists the identifiers along the cycle, ending with the
// identifier that closed it.
type CircularReferenceError struct {
	// Chain is the resolution path that formed the cycle.
	Chain []string
}

// Error implements the error interface.
func (e *CircularReferenceError) Error() string {
	return "circular rule reference: " + strings.Join(e.Chain, " -> ")
}
