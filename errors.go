package homeassistant

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Sentinel errors returned by the Home Assistant client.
var (
	// ErrEmptyToken is returned by New/NewWithConfig when no access token
	// is provided.
	ErrEmptyToken = errors.New("homeassistant: access token cannot be empty")

	// ErrEmptyEntityID is returned by entity-scoped calls when the entity
	// id is empty.
	ErrEmptyEntityID = errors.New("homeassistant: entity id cannot be empty")
)

// APIError represents a non-2xx response from the Home Assistant instance.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Message is the upstream error message, parsed from the JSON error
	// payload when present, otherwise the raw response body.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("homeassistant: API error %d", e.StatusCode)
	}
	return fmt.Sprintf("homeassistant: API error %d: %s", e.StatusCode, e.Message)
}

// apiErrorFromResponse converts an error response body into an *APIError.
// Home Assistant reports errors as {"message": "..."}; anything else is
// surfaced verbatim.
func apiErrorFromResponse(statusCode int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &APIError{StatusCode: statusCode, Message: payload.Message}
	}
	return &APIError{StatusCode: statusCode, Message: string(body)}
}

// IsUnauthorized returns true if the error indicates that the access token
// was rejected by the instance.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsNotFound returns true if the error indicates that the requested entity
// or endpoint does not exist.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsTimeout returns true if the error indicates a transport-level timeout.
func IsTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
