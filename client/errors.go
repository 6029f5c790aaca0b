// client/errors.go
package client

import "fmt"

// NetworkError is a transport-level failure (connection refused, timeout,
// 5xx). Safe to retry.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ValidationError is a 4xx payload rejection with optional per-field
// messages. Not retryable without changing the input.
type ValidationError struct {
	Message     string
	FieldErrors map[string]string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// AuthError is a 401/403; the caller should trigger re-authentication.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth error (%d): %s", e.Status, e.Message)
}

// NotFoundError means the id no longer exists on the server. For deletes
// this is treated as already done.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "not found"
}

// ScopeResolutionError signals an incomplete identity: the fetch policy
// refuses to issue an unscoped request.
type ScopeResolutionError struct {
	Reason string
}

func (e *ScopeResolutionError) Error() string {
	return "cannot resolve scope: " + e.Reason
}
