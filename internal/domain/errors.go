package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports a rejected input value. It is returned before any
// state is mutated, so a caller receiving one can assume nothing changed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
