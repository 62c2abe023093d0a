package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	ok := []string{"sales", "Q3 revenue", "brand-dark", "umsatz_2024", "ümlaut", "v1.2"}
	bad := []string{"", "../etc", "a/b", `a\b`, "x\x00y", "line\nbreak", strings.Repeat("n", maxNameLen+1)}

	for _, name := range ok {
		if err := ValidateName("chart", name); err != nil {
			t.Errorf("ValidateName(%q) = %v", name, err)
		}
	}
	for _, name := range bad {
		err := ValidateName("chart", name)
		if !Is(err, ErrCodeInvalidInput) {
			t.Errorf("ValidateName(%q) = %v, want INVALID_INPUT", name, err)
		}
	}
}

func TestValidateFormat(t *testing.T) {
	allowed := []string{"svg", "png", "pdf", "json"}
	if err := ValidateFormat("png", allowed); err != nil {
		t.Errorf("png rejected: %v", err)
	}
	for _, f := range []string{"gif", "SVG", ""} {
		if err := ValidateFormat(f, allowed); !Is(err, ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) = %v", f, err)
		}
	}
}

func TestValidateDimension(t *testing.T) {
	tests := []struct {
		v    float64
		fail bool
	}{
		{0, false},
		{640, false},
		{maxDimension, false},
		{-1, true},
		{maxDimension + 1, true},
		{math.NaN(), true},
		{math.Inf(1), true},
	}
	for _, tt := range tests {
		err := ValidateDimension("width", tt.v)
		if (err != nil) != tt.fail {
			t.Errorf("ValidateDimension(%v) = %v", tt.v, err)
		}
	}
}
