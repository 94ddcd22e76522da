package nlp

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn is returned when neither an explicit nor an automatically
	// detected text column is available.
	ErrMissingColumn = errors.New("there is no column with text in the frame")
	// ErrColumnNotFound is matched by every *ColumnNotFoundError.
	ErrColumnNotFound = errors.New("column not found")
	// ErrInvalidFilter is matched by every *InvalidFilterError.
	ErrInvalidFilter = errors.New("invalid part-of-speech filter")
)

// ColumnNotFoundError reports an explicitly named column absent from the table.
type ColumnNotFoundError struct {
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("the column %q doesn't exist in the frame", e.Column)
}

func (e *ColumnNotFoundError) Is(target error) bool { return target == ErrColumnNotFound }

// InvalidFilterError reports a part-of-speech filter entry that names no
// category.
type InvalidFilterError struct {
	Label string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("%v: %q is not one of %v", ErrInvalidFilter, e.Label, AllCategories)
}

func (e *InvalidFilterError) Is(target error) bool { return target == ErrInvalidFilter }

// Unavailable marks a result that could not be computed because a runtime
// capability is missing. It is a soft failure: the analyzer returns it on the
// result with a nil error.
type Unavailable struct {
	Dependency string `json:"dependency" yaml:"dependency"`
	Reason     string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

func (u *Unavailable) String() string {
	if u == nil {
		return ""
	}
	if u.Reason == "" {
		return u.Dependency + " unavailable"
	}
	return fmt.Sprintf("%s unavailable: %s", u.Dependency, u.Reason)
}
