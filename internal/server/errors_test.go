package server

import (
	"errors"
	"testing"

	"github.com/localrivet/counterdemo/internal/errortypes"
)

func TestErrorResponseFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{
			name:     "not found error",
			err:      errortypes.NotFoundError(ErrUnknownTool, "no tool registered with name reset"),
			wantCode: CodeMethodNotFound,
		},
		{
			name:     "validation error",
			err:      errortypes.ValidationError(errors.New("bad arguments"), "invalid request"),
			wantCode: CodeValidationError,
		},
		{
			name:     "config error",
			err:      errortypes.ConfigError(errors.New("missing store"), "initialization failed"),
			wantCode: CodeConfigError,
		},
		{
			name:     "internal error",
			err:      errortypes.InternalError(errors.New("boom"), "unexpected failure"),
			wantCode: CodeInternalError,
		},
		{
			name:     "external error",
			err:      errortypes.ExternalError(errors.New("transport closed"), "transport failure"),
			wantCode: CodeExternalError,
		},
		{
			name:     "plain error",
			err:      errors.New("generic error"),
			wantCode: CodeUnknownError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ErrorResponseFor(tt.err)

			if resp.Status != "error" {
				t.Errorf("Status = %q, want %q", resp.Status, "error")
			}
			if resp.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", resp.Code, tt.wantCode)
			}
			if resp.Message == "" {
				t.Error("Expected non-empty message")
			}
		})
	}
}

func TestErrorResponseCarriesFields(t *testing.T) {
	err := errortypes.NotFoundError(ErrUnknownTool, "no tool registered with name reset").
		WithField("tool", "reset")

	resp := ErrorResponseFor(err)

	if resp.Details["tool"] != "reset" {
		t.Errorf("Details[tool] = %v, want %q", resp.Details["tool"], "reset")
	}
}
