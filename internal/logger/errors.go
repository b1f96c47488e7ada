package logger

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrorType represents different categories of errors in the system
type ErrorType string

// Error types used by the command wiring
const (
	// ErrorTypeUnknown is used when the error type is not specified
	ErrorTypeUnknown ErrorType = "unknown"

	// ErrorTypeValidation indicates an input validation error
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeConfiguration indicates a configuration-related error
	ErrorTypeConfiguration ErrorType = "configuration"

	// ErrorTypeExternal indicates an error from an external system
	ErrorTypeExternal ErrorType = "external"

	// ErrorTypeInternal indicates an internal system error
	ErrorTypeInternal ErrorType = "internal"
)

// AppError represents a structured error with context
type AppError struct {
	// Original error that we're wrapping
	Err error

	// Error type category
	Type ErrorType

	// Message provides additional context
	Message string

	// Fields contains additional structured data about the error
	Fields map[string]interface{}

	// Stack contains the call stack when the error was created
	Stack []string
}

// NewError creates a new structured error
func NewError(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		err = errors.New("no error specified")
	}

	// If the input is already our error type, enrich it
	var existingErr *AppError
	if errors.As(err, &existingErr) {
		newErr := &AppError{
			Err:     existingErr.Err,
			Type:    errType,
			Message: message + ": " + existingErr.Message,
			Fields:  make(map[string]interface{}),
			Stack:   getCallStack(2),
		}

		for k, v := range existingErr.Fields {
			newErr.Fields[k] = v
		}

		return newErr
	}

	return &AppError{
		Err:     err,
		Type:    errType,
		Message: message,
		Fields:  make(map[string]interface{}),
		Stack:   getCallStack(2),
	}
}

// WithField adds a field to the error
func (e *AppError) WithField(key string, value interface{}) *AppError {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// Error returns the error string
func (e *AppError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// LogError logs the error with appropriate context
func LogError(err error) {
	var structuredErr *AppError
	if errors.As(err, &structuredErr) {
		fields := structuredErr.Fields
		if fields == nil {
			fields = make(map[string]interface{})
		}

		fields["error_type"] = string(structuredErr.Type)

		// Only add the stack if it's not too large
		if len(structuredErr.Stack) > 0 {
			fields["stack"] = strings.Join(structuredErr.Stack[:min(3, len(structuredErr.Stack))], " > ")
		}

		GetDefaultLogger().WithFields(fields).Error(structuredErr.Error())
		return
	}

	Error("Unstructured error: %v", err)
}

// Helper function to get a call stack
func getCallStack(skip int) []string {
	stack := make([]string, 0, 10)

	for i := skip; i < skip+10; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		fn := runtime.FuncForPC(pc)
		funcName := "unknown"
		if fn != nil {
			funcName = fn.Name()
			if idx := strings.LastIndex(funcName, "/"); idx >= 0 {
				funcName = funcName[idx+1:]
			}
		}

		stack = append(stack, fmt.Sprintf("%s:%d:%s", truncatePath(file), line, funcName))
	}

	return stack
}

// Helper to truncate file paths
func truncatePath(path string) string {
	parts := strings.Split(path, "/")
	if len(parts) <= 2 {
		return path
	}
	return strings.Join(parts[len(parts)-2:], "/")
}

// Helper functions to create errors of specific types

// ValidationError creates a validation error
func ValidationError(err error, message string) *AppError {
	return NewError(err, ErrorTypeValidation, message)
}

// ConfigError creates a configuration error
func ConfigError(err error, message string) *AppError {
	return NewError(err, ErrorTypeConfiguration, message)
}

// ExternalError creates an error from an external system
func ExternalError(err error, message string) *AppError {
	return NewError(err, ErrorTypeExternal, message)
}

// InternalError creates an internal system error
func InternalError(err error, message string) *AppError {
	return NewError(err, ErrorTypeInternal, message)
}

// IsErrorType checks if an error is of a specific ErrorType
func IsErrorType(err error, errType ErrorType) bool {
	var structuredErr *AppError
	if errors.As(err, &structuredErr) {
		return structuredErr.Type == errType
	}
	return false
}
