package server

import (
	"errors"

	"github.com/localrivet/counterdemo/internal/errortypes"
)

// ErrorResponse is the structured error surfaced for a failed tool call:
// a machine-readable code plus a human-readable message. The protocol
// library maps it onto the wire-level error object for the call.
type ErrorResponse struct {
	Status  string                 `json:"status"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error response codes
const (
	// CodeMethodNotFound indicates an invocation named a tool outside the
	// registered set
	CodeMethodNotFound = "METHOD_NOT_FOUND"

	// CodeValidationError indicates a malformed request
	CodeValidationError = "VALIDATION_ERROR"

	// CodeConfigError indicates a server configuration failure
	CodeConfigError = "CONFIG_ERROR"

	// CodeInternalError indicates an internal server error
	CodeInternalError = "INTERNAL_ERROR"

	// CodeExternalError indicates a failure in an external collaborator
	CodeExternalError = "EXTERNAL_ERROR"

	// CodeUnknownError is used when the error carries no type information
	CodeUnknownError = "UNKNOWN_ERROR"
)

// ErrorResponseFor converts an error into a standardized ErrorResponse,
// mapping the errortypes taxonomy onto response codes.
func ErrorResponseFor(err error) ErrorResponse {
	var code string
	var details map[string]interface{}

	var appErr *errortypes.AppError
	if errors.As(err, &appErr) {
		details = appErr.Fields

		switch appErr.Type {
		case errortypes.ErrorTypeNotFound:
			code = CodeMethodNotFound
		case errortypes.ErrorTypeValidation:
			code = CodeValidationError
		case errortypes.ErrorTypeConfig:
			code = CodeConfigError
		case errortypes.ErrorTypeInternal:
			code = CodeInternalError
		case errortypes.ErrorTypeExternal:
			code = CodeExternalError
		default:
			code = CodeUnknownError
		}
	} else {
		code = CodeUnknownError
	}

	return ErrorResponse{
		Status:  "error",
		Code:    code,
		Message: err.Error(),
		Details: details,
	}
}
