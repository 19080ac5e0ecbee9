package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// DefaultErrorMessage is used when neither the backend nor the transport
// produced anything readable.
const DefaultErrorMessage = "Request failed"

// TransportError is a network or HTTP level failure seen before a structured
// body was available.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return ExtractMessage(nil, e.Err)
}

// Unwrap returns the underlying cause
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ShapeError reports a successful response whose body lacks the expected field.
type ShapeError struct {
	Field string
	Body  []byte
}

// Error implements the error interface
func (e *ShapeError) Error() string {
	return fmt.Sprintf("malformed response: missing %q field", e.Field)
}

// BackendRejection is an HTTP error status carrying a structured body.
type BackendRejection struct {
	StatusCode int
	Message    string
	Payload    []byte
}

// Error implements the error interface
func (e *BackendRejection) Error() string {
	return e.Message
}

// errorPayload mirrors the loosely typed error bodies the backend returns.
type errorPayload struct {
	Message json.RawMessage `json:"message"`
	Error   json.RawMessage `json:"error"`
}

// ExtractMessage collapses a backend error payload and the transport error
// into one display string. It never fails.
//
// Order: message as string array (joined with ", "), message as string,
// error field, transport message, DefaultErrorMessage.
func ExtractMessage(payload []byte, transportErr error) string {
	fallback := DefaultErrorMessage
	if transportErr != nil && transportErr.Error() != "" {
		fallback = transportErr.Error()
	}

	p, ok := parseErrorPayload(payload)
	if !ok {
		return fallback
	}

	if isPresent(p.Message) {
		var list []string
		if err := json.Unmarshal(p.Message, &list); err == nil {
			return strings.Join(list, ", ")
		}
		var mixed []interface{}
		if err := json.Unmarshal(p.Message, &mixed); err == nil {
			parts := make([]string, len(mixed))
			for i, m := range mixed {
				if m != nil {
					parts[i] = fmt.Sprint(m)
				}
			}
			return strings.Join(parts, ", ")
		}
		var msg string
		if err := json.Unmarshal(p.Message, &msg); err == nil {
			return msg
		}
	}

	if isPresent(p.Error) {
		var msg string
		if err := json.Unmarshal(p.Error, &msg); err == nil && msg != "" {
			return msg
		}
	}

	return fallback
}

// parseErrorPayload reports whether payload is a JSON object.
func parseErrorPayload(payload []byte) (errorPayload, bool) {
	var p errorPayload
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return p, false
	}
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return p, false
	}
	return p, true
}

func isPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var rej *BackendRejection
	if errors.As(err, &rej) {
		return rej.StatusCode
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te.StatusCode
	}
	return 0
}

// IsUnauthorized checks if the error is an authentication error
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is a forbidden error
func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
