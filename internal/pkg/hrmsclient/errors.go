package hrmsclient

import (
	"errors"
	"fmt"
)

// APIError is a non-2xx reply. Message is whatever the server put in the
// envelope and may be empty.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("hrms api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("hrms api: status %d: %s", e.StatusCode, e.Message)
}

// ServerMessage returns the server-provided message carried by err, if any.
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
