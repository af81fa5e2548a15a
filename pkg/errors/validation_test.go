package errors

import (
	"math"
	"testing"
)

func TestValidateDocumentPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"json", "charts/sales.json", false},
		{"yaml", "sales.yaml", false},
		{"yml upper", "SALES.YML", false},
		{"toml", "/abs/path/heat.toml", false},

		{"empty", "", true},
		{"no extension", "chart", true},
		{"csv", "data.csv", true},
		{"control char", "foo\x01.json", true},
		{"too long", string(make([]byte, 5000)) + ".json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocumentPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDocumentPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDimension(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"default", 0, false},
		{"typical", 300, false},
		{"max", MaxDimension, false},

		{"negative", -1, true},
		{"too large", MaxDimension + 1, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimension("width", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimension(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfig) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidConfig)
			}
		})
	}
}

func TestValidateOutputPrefix(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"out/chart", false},
		{"chart", false},
		{"", true},
		{"out/", true},
		{"a\x00b", true},
	}
	for _, tt := range tests {
		if err := ValidateOutputPrefix(tt.input); (err != nil) != tt.wantErr {
			t.Errorf("ValidateOutputPrefix(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
