package keys

// LayoutError describes a structural problem with a key layout.
type LayoutError struct {
	// Field is the name of the offending Layout field.
	Field string

	// Reason describes the violation.
	Reason string
}

// Error implements the error interface.
func (e *LayoutError) Error() string {
	return "invalid key layout: " + e.Field + ": " + e.Reason
}
