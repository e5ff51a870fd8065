package viewstate

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	// ErrClosed is returned by operations on a controller after Close.
	ErrClosed = errors.New("viewstate: controller closed")

	// errStaleTimer marks an expiry from a countdown that was cancelled or
	// superseded. It never leaves the package.
	errStaleTimer = errors.New("viewstate: stale toast timer")
)

// ValidationError reports a value outside its allowed set. The operation that
// returned it left the controller state unchanged.
type ValidationError struct {
	Field   string
	Value   string
	Allowed []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("viewstate: invalid %s %q", e.Field, e.Value)
	}
	return fmt.Sprintf("viewstate: invalid %s %q (allowed: %s)",
		e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
