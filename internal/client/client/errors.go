package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable           = errors.New("server unavailable")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrLocalDataNotAvailable = errors.New("local data unavailable")
	ErrNoTokenSource         = errors.New("no token source configured")
)

// HTTPError is returned for every non-2xx response.
type HTTPError struct {
	Message  string
	Resource string
	Method   string
	Status   int
}

func newHTTPError(resource, method string, status int) *HTTPError {
	return &HTTPError{
		Message:  fmt.Sprintf("Got error response from server %s: %d", resource, status),
		Resource: resource,
		Method:   method,
		Status:   status,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is lets callers match broad classes of HTTP failures with the package
// sentinels.
func (e *HTTPError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	case ErrUnavailable:
		return e.Status == http.StatusBadGateway ||
			e.Status == http.StatusServiceUnavailable ||
			e.Status == http.StatusGatewayTimeout
	}
	return false
}

// FeatureNotFoundError means the backend has no feature with FeatureID.
type FeatureNotFoundError struct {
	FeatureID int64
}

func (e *FeatureNotFoundError) Error() string {
	return fmt.Sprintf("feature not found: %d", e.FeatureID)
}
