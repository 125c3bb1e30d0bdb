package settings

import (
	"errors"
	"fmt"
)

// ErrNoSettings is returned when the document decodes to nothing.
var ErrNoSettings = errors.New("settings: document is empty")

// MissingFieldError names the dotted path of a required key that is absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("settings: missing required field %q", e.Field)
}

// InvalidFieldError reports a key that is present but has the wrong shape.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("settings: invalid field %q: %s", e.Field, e.Reason)
}

func missing(field string) error {
	return &MissingFieldError{Field: field}
}

func invalid(field, format string, args ...any) error {
	return &InvalidFieldError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
