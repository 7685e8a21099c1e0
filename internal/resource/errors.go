package resource

import "errors"

// ErrNotFound is returned by stores when an identifier does not resolve.
// Handlers map it to 404; everything else unexpected maps to 500.
var ErrNotFound = errors.New("not found")

// ValidationError rejects a create/update input before the store is touched.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Invalid builds a ValidationError with the given message.
func Invalid(msg string) error { return &ValidationError{Message: msg} }
