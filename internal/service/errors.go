package service

import "fmt"

// AuthError indicates the API token was rejected (HTTP 401).
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// NotFoundError indicates the requested resource does not exist (HTTP 404).
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Resource)
}

// APIError covers any other non-2xx response or transport failure.
type APIError struct {
	StatusCode int // 0 for transport-level failures
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: %s", e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }
