package client

import (
	"errors"
	"fmt"
)

// ErrRemote is the single failure class the storefront distinguishes: a
// remote operation did not succeed. Validation, authorization and transport
// errors all collapse into it; callers roll back and notify, never retry.
var ErrRemote = errors.New("remote operation failed")

// APIError carries the detail behind an ErrRemote failure.
type APIError struct {
	Status  int    // zero when the request never completed
	Message string
	Err     error // underlying transport or decode error, if any
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("remote operation failed: %v", e.Err)
	}
	return fmt.Sprintf("remote operation failed: %s (status %d)", e.Message, e.Status)
}

func (e *APIError) Unwrap() error { return e.Err }

func (e *APIError) Is(target error) bool { return target == ErrRemote }

// MappingError reports a backend payload that does not match the shape the
// client expects. Raised at the boundary instead of propagating zero values.
type MappingError struct {
	Resource string
	Field    string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("cannot map %s response: missing or invalid %q", e.Resource, e.Field)
}
