package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		transport error
		want      string
	}{
		{"message list is joined", `{"message":["A","B"]}`, nil, "A, B"},
		{"single message list", `{"message":["Name is required"]}`, nil, "Name is required"},
		{"message string", `{"message":"Category not found"}`, nil, "Category not found"},
		{"error field", `{"error":"X"}`, nil, "X"},
		{"message beats error", `{"message":"first","error":"second"}`, nil, "first"},
		{"transport message", ``, errors.New("connection refused"), "connection refused"},
		{"non object payload", `<html>bad gateway</html>`, errors.New("Request failed with status code 502"), "Request failed with status code 502"},
		{"nothing at all", ``, nil, DefaultErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractMessage([]byte(tt.payload), tt.transport))
		})
	}
}

func TestStatusCode(t *testing.T) {
	assert.True(t, IsUnauthorized(&BackendRejection{StatusCode: 401, Message: "Unauthorized"}))
	assert.True(t, IsNotFound(&TransportError{StatusCode: 404, Err: errors.New("nope")}))
	assert.True(t, IsForbidden(&BackendRejection{StatusCode: 403}))
	assert.Equal(t, 0, StatusCode(errors.New("plain")))
}
