package dto_test

import (
	"encoding/json"
	"testing"

	"hotelsite/shared/dto"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{
			name:     "plain number",
			input:    `199.99`,
			expected: 199.99,
		},
		{
			name:     "integer number",
			input:    `450`,
			expected: 450,
		},
		{
			name:     "numeric string",
			input:    `"120.50"`,
			expected: 120.50,
		},
		{
			name:     "numeric string with spaces",
			input:    `" 75 "`,
			expected: 75,
		},
		{
			name:     "null coerces to zero",
			input:    `null`,
			expected: 0,
		},
		{
			name:     "garbage string coerces to zero",
			input:    `"not-a-price"`,
			expected: 0,
		},
		{
			name:     "empty string coerces to zero",
			input:    `""`,
			expected: 0,
		},
		{
			name:     "boolean coerces to zero",
			input:    `true`,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a dto.Amount

			if err := json.Unmarshal([]byte(tt.input), &a); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if a.Float64() != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, a.Float64())
			}
		})
	}
}

func TestAmount_UnmarshalJSONInStruct(t *testing.T) {
	type payload struct {
		TotalPrice dto.Amount `json:"total_price"`
	}

	inputs := []string{
		`{"total_price": 100}`,
		`{"total_price": "bad"}`,
		`{"total_price": 50}`,
	}

	var sum float64

	for _, input := range inputs {
		var p payload
		if err := json.Unmarshal([]byte(input), &p); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		sum += p.TotalPrice.Float64()
	}

	if sum != 150 {
		t.Errorf("expected sum to be 150, got %v", sum)
	}
}

func TestAmount_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		amount   dto.Amount
		expected string
	}{
		{
			name:     "whole number",
			amount:   dto.Amount(200),
			expected: "200",
		},
		{
			name:     "decimal number",
			amount:   dto.Amount(99.5),
			expected: "99.5",
		},
		{
			name:     "zero",
			amount:   dto.Amount(0),
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.amount)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if string(data) != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, string(data))
			}
		})
	}
}
