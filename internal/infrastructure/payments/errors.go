package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Error taxonomy for the MAIB integration.
//
// AuthError, GatewayError, TimeoutError and NetworkError propagate out of the
// gateway operations untouched; the HTTP layer maps them to response codes.

// AuthError means the token endpoint rejected us or returned no token.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("maib auth failed (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("maib auth failed: %s", e.Message)
}

// GatewayError means a gateway operation returned a non-success response.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("maib api error (%d): %s", e.StatusCode, e.Message)
}

// TimeoutError means an outbound call exceeded the request timeout.
type TimeoutError struct {
	Op string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("maib %s timed out", e.Op)
}

// NetworkError is a transport-level failure before any HTTP status was read.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("maib %s transport failure: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// wrapTransportError classifies a failed round trip. Caller cancellation is
// passed through so the HTTP layer can tell it apart from a gateway problem.
func wrapTransportError(op string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Op: op}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Op: op}
	}
	return &NetworkError{Op: op, Err: err}
}

// errorMessageFromBody extracts a human-readable message from a MAIB error
// body. Priority: message, error, raw text, then a generic status line.
func errorMessageFromBody(statusCode int, body []byte) string {
	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err == nil {
		for _, key := range []string{"message", "error"} {
			if v, ok := parsed[key].(string); ok && strings.TrimSpace(v) != "" {
				return v
			}
		}
	}
	if raw := strings.TrimSpace(string(body)); raw != "" {
		return raw
	}
	return fmt.Sprintf("HTTP error! status: %d", statusCode)
}
