package level

import (
	"errors"
	"fmt"
)

// ErrNoData marks a reset or sync against a guild with nothing stored.
// Callers report it as an informational response, not a failure.
var ErrNoData = errors.New("no leveling data")

// ValidationError rejects bad admin input before any state changes.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
