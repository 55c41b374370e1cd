package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateDimension(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"typical width", 800, false},
		{"small", 1, false},
		{"upper bound", 20000, false},

		{"zero", 0, true},
		{"negative", -10, true},
		{"too large", 20001, true},
		{"NaN", math.NaN(), true},
		{"infinite", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimension("width", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimension(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateDimension(%v) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateEpsilon(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"default", 0.005, false},
		{"disabled", 0, false},
		{"large but valid", 3, false},

		{"negative", -0.1, true},
		{"pi", math.Pi, true},
		{"NaN", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEpsilon(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEpsilon(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNodePath(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		wantErr bool
	}{
		{"root", nil, false},
		{"single", []string{"x"}, false},
		{"nested", []string{"x", "y"}, false},
		{"spaces allowed", []string{"New York", "Queens"}, false},

		{"empty segment", []string{"x", ""}, true},
		{"control char", []string{"x\ny"}, true},
		{"null byte", []string{"x\x00"}, true},
		{"segment too long", []string{strings.Repeat("a", 300)}, true},
		{"too deep", make([]string, 65), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNodePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateNodePath(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}
