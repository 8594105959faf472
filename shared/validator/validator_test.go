package validator_test

import (
	"strings"
	"testing"

	"hotelsite/shared/validator"
)

type CreateRequest struct {
	Title string   `validate:"required" json:"title"`
	Price *float64 `validate:"required" json:"price"`
	Image string   `validate:"omitempty" json:"image"`
}

func TestValidateStruct(t *testing.T) {
	price := 199.0

	tests := []struct {
		name        string
		data        *CreateRequest
		expectError bool
	}{
		{
			name: "valid struct",
			data: &CreateRequest{
				Title: "Deluxe Room",
				Price: &price,
			},
			expectError: false,
		},
		{
			name: "missing required title",
			data: &CreateRequest{
				Price: &price,
			},
			expectError: true,
		},
		{
			name:        "missing required price pointer",
			data:        &CreateRequest{Title: "Deluxe Room"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
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
			name:        "valid json body",
			body:        `{"title": "Deluxe Room", "price": 199}`,
			expectError: false,
		},
		{
			name:        "malformed json",
			body:        `{"title": `,
			expectError: true,
		},
		{
			name:        "valid json failing validation",
			body:        `{"image": "x.png"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{
			name:        "required present",
			field:       "room-id",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "required missing",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid uuid",
			field:       "550e8400-e29b-41d4-a716-446655440000",
			tag:         "uuid",
			expectError: false,
		},
		{
			name:        "invalid uuid",
			field:       "not-a-uuid",
			tag:         "uuid",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got: %v", err)
			}
		})
	}
}

func TestValidateMimetypes(t *testing.T) {
	type imagePayload struct {
		Image string `validate:"omitempty,mimetypes=image/png image/jpeg" json:"image"`
	}

	tests := []struct {
		name        string
		image       string
		expectError bool
	}{
		{
			name:        "allowed png",
			image:       "data:image/png;base64,iVBORw0KGgo=",
			expectError: false,
		},
		{
			name:        "disallowed gif",
			image:       "data:image/gif;base64,R0lGODlhAQ==",
			expectError: true,
		},
		{
			name:        "empty image skipped",
			image:       "",
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&imagePayload{Image: tt.image})

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got: %v", err)
			}
		})
	}
}
