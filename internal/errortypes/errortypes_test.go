package errortypes

import (
	"errors"
	"fmt"
	"testing"
)

var errBase = errors.New("base error")

func TestAppErrorMessage(t *testing.T) {
	appErr := ValidationError(errBase, "validation failed")

	if appErr.Type != ErrorTypeValidation {
		t.Errorf("Expected error type %s, got %s", ErrorTypeValidation, appErr.Type)
	}

	want := "validation failed: base error"
	if appErr.Error() != want {
		t.Errorf("Error() = %q, want %q", appErr.Error(), want)
	}
}

func TestUnwrap(t *testing.T) {
	appErr := NotFoundError(errBase, "no such tool")

	if !errors.Is(appErr, errBase) {
		t.Error("errors.Is should find the wrapped base error")
	}

	wrapped := fmt.Errorf("dispatch: %w", appErr)
	var target *AppError
	if !errors.As(wrapped, &target) {
		t.Fatal("errors.As should find the AppError through wrapping")
	}
	if target.Type != ErrorTypeNotFound {
		t.Errorf("Expected error type %s, got %s", ErrorTypeNotFound, target.Type)
	}
}

func TestWithField(t *testing.T) {
	appErr := InternalError(errBase, "boom").WithField("tool", "increment")

	if appErr.Fields["tool"] != "increment" {
		t.Errorf("Expected field tool=increment, got %v", appErr.Fields["tool"])
	}
}

func TestTypePredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"validation matches", ValidationError(errBase, ""), IsValidationError, true},
		{"not_found matches", NotFoundError(errBase, ""), IsNotFoundError, true},
		{"config matches", ConfigError(errBase, ""), IsConfigError, true},
		{"internal matches", InternalError(errBase, ""), IsInternalError, true},
		{"external matches", ExternalError(errBase, ""), IsExternalError, true},
		{"wrong type", ValidationError(errBase, ""), IsNotFoundError, false},
		{"plain error", errBase, IsValidationError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("predicate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNilErrorReplaced(t *testing.T) {
	appErr := ConfigError(nil, "missing config")
	if appErr.Err == nil {
		t.Error("Expected a placeholder underlying error for nil input")
	}
}

func TestStackCaptured(t *testing.T) {
	appErr := InternalError(errBase, "boom")
	if appErr.StackInfo == "" {
		t.Error("Expected captured stack info")
	}
}
