package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{New(ErrCodeInvalidTheme, "unknown theme %q", "neon"), `INVALID_THEME: unknown theme "neon"`},
		{Wrap(ErrCodeInvalidDocument, errors.New("unexpected EOF"), "decode %s", "a.json"), "INVALID_DOCUMENT: decode a.json: unexpected EOF"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("permission denied")
	err := fmt.Errorf("write output: %w", Wrap(ErrCodeInvalidPath, cause, "out/chart.svg"))

	if !errors.Is(err, cause) {
		t.Error("cause not reachable through errors.Is")
	}
	var e *Error
	if !errors.As(err, &e) || e.Cause != cause {
		t.Errorf("errors.As = %v", e)
	}
	if got := UserMessage(err); got != "out/chart.svg" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestCodes(t *testing.T) {
	inner := New(ErrCodeInvalidChart, "unknown chart type")

	tests := []struct {
		name   string
		err    error
		code   Code
		status int
	}{
		{"chart", inner, ErrCodeInvalidChart, http.StatusBadRequest},
		{"outermost wins", Wrap(ErrCodeInvalidDocument, inner, "decode"), ErrCodeInvalidDocument, http.StatusBadRequest},
		{"through fmt", fmt.Errorf("layout: %w", New(ErrCodeChartNotFound, "sales")), ErrCodeChartNotFound, http.StatusNotFound},
		{"converter", New(ErrCodeUnsupported, "no converter"), ErrCodeUnsupported, http.StatusNotImplemented},
		{"timeout", New(ErrCodeTimeout, "render"), ErrCodeTimeout, http.StatusGatewayTimeout},
		{"cache", New(ErrCodeCache, "redis down"), ErrCodeCache, http.StatusInternalServerError},
		{"plain", errors.New("boom"), "", http.StatusInternalServerError},
		{"nil", nil, "", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if tt.code != "" && !Is(tt.err, tt.code) {
				t.Errorf("Is(%q) = false", tt.code)
			}
			if Is(tt.err, ErrCodeInvalidFormat) {
				t.Error("Is(INVALID_FORMAT) = true")
			}
			if got := HTTPStatus(tt.err); got != tt.status {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.status)
			}
		})
	}
}

func TestUserMessagePlain(t *testing.T) {
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q", got)
	}
}
