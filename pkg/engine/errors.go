package engine

import "fmt"

// ValidationError marks malformed or out-of-domain input: address shape,
// network membership, URI prefix, numeric range. The engine rejects before
// touching either store, so a ValidationError implies no state change.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError marks an unknown session id. It is treated as a client
// input problem, not a server fault.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}
