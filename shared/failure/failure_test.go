package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"lbm/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected *failure.Failure
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			if f.Code != tt.expected.Code || f.Message != tt.expected.Message {
				t.Errorf("expected %+v, got %+v", tt.expected, f)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		result  error
		code    int
		message string
	}{
		{
			name:    "BadRequestFromString",
			result:  failure.BadRequestFromString("custom bad request"),
			code:    http.StatusBadRequest,
			message: "custom bad request",
		},
		{
			name:    "Unauthorized",
			result:  failure.Unauthorized("token expired"),
			code:    http.StatusUnauthorized,
			message: "token expired",
		},
		{
			name:    "InternalError",
			result:  failure.InternalError(errors.New("database connection failed")),
			code:    http.StatusInternalServerError,
			message: "database connection failed",
		},
		{
			name:    "NotFound",
			result:  failure.NotFound("booking not found"),
			code:    http.StatusNotFound,
			message: "booking not found",
		},
		{
			name:    "Conflict",
			result:  failure.Conflict("username already exists"),
			code:    http.StatusConflict,
			message: "username already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", tt.result)
			}

			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}
			if f.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, f.Message)
			}
		})
	}
}

func TestUnavailable(t *testing.T) {
	result := failure.Unavailable("Database connection unavailable", "disconnected", "start PostgreSQL")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusServiceUnavailable {
		t.Errorf("expected code to be %d, got %d", http.StatusServiceUnavailable, f.Code)
	}
	if f.Message != "Database connection unavailable" {
		t.Errorf("expected message to be 'Database connection unavailable', got %s", f.Message)
	}
	if f.State != "disconnected" {
		t.Errorf("expected state to be 'disconnected', got %s", f.State)
	}
	if f.Hint != "start PostgreSQL" {
		t.Errorf("expected hint to be 'start PostgreSQL', got %s", f.Hint)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("context: %w", failure.NotFound("booking not found")),
			expected: http.StatusNotFound,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestAs(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expectOK bool
		code     int
	}{
		{
			name:     "failure error",
			input:    failure.Unauthorized("invalid username or password"),
			expectOK: true,
			code:     http.StatusUnauthorized,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("login: %w", failure.Unauthorized("invalid username or password")),
			expectOK: true,
			code:     http.StatusUnauthorized,
		},
		{
			name:     "regular error",
			input:    errors.New("boom"),
			expectOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := failure.As(tt.input)

			if ok != tt.expectOK {
				t.Fatalf("expected ok to be %v, got %v", tt.expectOK, ok)
			}

			if tt.expectOK && f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}
		})
	}
}
