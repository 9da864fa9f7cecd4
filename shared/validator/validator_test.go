package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"lbm/shared/failure"
	"lbm/shared/validator"
)

type bookingForm struct {
	Name    string `validate:"required,max=100"          json:"name"`
	Email   string `validate:"required,email"            json:"email"`
	Service string `validate:"required"                  json:"service"`
	Status  string `validate:"oneof=pending confirmed"   json:"status"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name            string
		data            *bookingForm
		expectedMessage string
	}{
		{
			name: "valid struct",
			data: &bookingForm{
				Name:    "Jane Doe",
				Email:   "jane@example.com",
				Service: "checkup",
				Status:  "pending",
			},
		},
		{
			name: "missing required field",
			data: &bookingForm{
				Email:   "jane@example.com",
				Service: "checkup",
				Status:  "pending",
			},
			expectedMessage: "Name is required",
		},
		{
			name: "invalid email",
			data: &bookingForm{
				Name:    "Jane Doe",
				Email:   "not-an-email",
				Service: "checkup",
				Status:  "pending",
			},
			expectedMessage: "Email must be a valid email address",
		},
		{
			name: "value outside oneof",
			data: &bookingForm{
				Name:    "Jane Doe",
				Email:   "jane@example.com",
				Service: "checkup",
				Status:  "done",
			},
			expectedMessage: "Status must be one of pending confirmed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectedMessage == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}

			if failure.GetCode(err) != http.StatusBadRequest {
				t.Errorf("expected code %d, got %d", http.StatusBadRequest, failure.GetCode(err))
			}

			if err.Error() != tt.expectedMessage {
				t.Errorf("expected message %q, got %q", tt.expectedMessage, err.Error())
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid payload",
			body:        `{"name":"Jane Doe","email":"jane@example.com","service":"checkup","status":"pending"}`,
			expectError: false,
		},
		{
			name:        "malformed json",
			body:        `{"name":`,
			expectError: true,
		},
		{
			name:        "payload failing validation",
			body:        `{"email":"jane@example.com","service":"checkup","status":"pending"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data bookingForm

			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}

			if tt.expectError && failure.GetCode(err) != http.StatusBadRequest {
				t.Errorf("expected code %d, got %d", http.StatusBadRequest, failure.GetCode(err))
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("jane@example.com", "required,email"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := validator.ValidateVar("", "required"); err == nil {
		t.Error("expected error for empty required var, got nil")
	}
}

func TestEmptyValidation(t *testing.T) {
	type claims struct {
		Subject string `validate:"empty" json:"subject"`
	}

	if err := validator.ValidateStruct(&claims{}); err != nil {
		t.Errorf("expected zero value to pass, got %v", err)
	}

	if err := validator.ValidateStruct(&claims{Subject: "set"}); err == nil {
		t.Error("expected non-zero value to fail, got nil")
	}
}
