package model

import "fmt"

// InputError reports a malformed or out-of-range scalar input.
// Nothing is computed when one is returned.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func inputErrorf(field, format string, args ...any) error {
	return &InputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// AlignmentError reports generation and consumption series that do not line up
// on the same time index. Index is the first offending position, or -1 when the
// series differ in length.
type AlignmentError struct {
	Index  int
	Reason string
}

func (e *AlignmentError) Error() string {
	if e.Index < 0 {
		return "series misaligned: " + e.Reason
	}
	return fmt.Sprintf("series misaligned at index %d: %s", e.Index, e.Reason)
}
