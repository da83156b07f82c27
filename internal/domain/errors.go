package domain

import (
	"errors"
	"fmt"
)

// Kinds of malformed input. Every diagnostic raised while reading wraps one of these.
var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrAmbiguousCardinality = errors.New("ambiguous cardinality")
	ErrConflictingMarking   = errors.New("conflicting marking")
	ErrDuplicateValue       = errors.New("duplicate value")
	ErrUnknownReference     = errors.New("unknown reference")
	ErrStructuralInvalidity = errors.New("structural invalidity")
)

// ReadError is one diagnostic about malformed input.
type ReadError struct {
	Kind    error
	Message string
}

func NewReadError(kind error, format string, args ...any) *ReadError {
	return &ReadError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *ReadError) Error() string {
	if e.Kind == nil {
		return e.Message
	}
	return e.Kind.Error() + ": " + e.Message
}

func (e *ReadError) Unwrap() error {
	return e.Kind
}

// KindName returns a short stable name for a diagnostic kind, used as a log field.
func KindName(kind error) string {
	switch {
	case errors.Is(kind, ErrMissingRequiredField):
		return "missing_required_field"
	case errors.Is(kind, ErrAmbiguousCardinality):
		return "ambiguous_cardinality"
	case errors.Is(kind, ErrConflictingMarking):
		return "conflicting_marking"
	case errors.Is(kind, ErrDuplicateValue):
		return "duplicate_value"
	case errors.Is(kind, ErrUnknownReference):
		return "unknown_reference"
	case errors.Is(kind, ErrStructuralInvalidity):
		return "structural_invalidity"
	}
	return "unknown"
}
