package api

import (
	"errors"
	"fmt"
)

// Error is a non-2xx response from the account service. Message carries the
// service-provided error payload when one was present.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("account service: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("account service: status %d", e.Status)
}

// Message extracts the service-provided error message from err, or returns
// an empty string when err is a transport failure or carries no payload.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
