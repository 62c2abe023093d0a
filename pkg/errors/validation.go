package errors

import (
	"math"
	"slices"
	"strings"
	"unicode"
)

const (
	maxNameLen   = 128
	maxDimension = 8192
)

// ValidateName checks a chart or theme name. Names become part of output
// file names and cache keys, so path syntax and control characters are
// rejected.
func ValidateName(kind, name string) error {
	switch {
	case name == "":
		return New(ErrCodeInvalidInput, "%s name is empty", kind)
	case len(name) > maxNameLen:
		return New(ErrCodeInvalidInput, "%s name longer than %d bytes", kind, maxNameLen)
	case strings.ContainsFunc(name, unicode.IsControl):
		return New(ErrCodeInvalidInput, "%s name %q contains control characters", kind, name)
	case strings.ContainsAny(name, `/\`), strings.Contains(name, ".."):
		return New(ErrCodeInvalidInput, "%s name %q looks like a path", kind, name)
	}
	return nil
}

// ValidateFormat checks that format is one of allowed.
func ValidateFormat(format string, allowed []string) error {
	if !slices.Contains(allowed, format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
	}
	return nil
}

// ValidateDimension checks a canvas size in CSS pixels. Zero means "use the
// default" and is accepted.
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > maxDimension {
		return New(ErrCodeInvalidInput, "%s must be between 0 and %d, got %v", name, maxDimension, v)
	}
	return nil
}
