package model

import (
	"fmt"
	"strings"
)

// InterpretationError reports that the language model could not produce a
// usable filter for a question: the API was unreachable, timed out, or
// returned output that is not the expected JSON object. Never retried by
// the core; the caller decides what to do.
type InterpretationError struct {
	Question string
	Err      error
}

func (e *InterpretationError) Error() string {
	return fmt.Sprintf("interpret question %q: %v", e.Question, e.Err)
}

func (e *InterpretationError) Unwrap() error {
	return e.Err
}

// UnknownColumnError reports a filter targeting a column the dataset does
// not have. Usually means the model drifted from the declared schema, or
// the schema and the data file disagree.
type UnknownColumnError struct {
	Column    string
	Available []string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("column %q not found in dataset. Available columns: %s",
		e.Column, strings.Join(e.Available, ", "))
}
