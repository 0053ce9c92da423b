package errors

import (
	"errors"
	"fmt"
)

// AppError carries a business code alongside the underlying cause
type AppError struct {
	Code    int    // Business error code
	Message string // Message from the code table
	Err     error  // Underlying error (if any)
	Details string // Additional details
}

func (e *AppError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	case e.Details != "":
		return fmt.Sprintf("[%d] %s: %s", e.Code, e.Message, e.Details)
	default:
		return fmt.Sprintf("[%d] %s", e.Code, e.Message)
	}
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status code for this error
func (e *AppError) HTTPStatus() int {
	return GetHTTPStatus(e.Code)
}

// New creates a new AppError with the given code
func New(code int, details ...string) *AppError {
	return &AppError{
		Code:    code,
		Message: GetMessage(code),
		Details: first(details),
	}
}

// Wrap attaches a code to err. An error that already carries a code keeps it.
func Wrap(err error, code int, details ...string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		wrapped := *appErr
		if d := first(details); d != "" {
			wrapped.Details = d
		}
		return &wrapped
	}

	return &AppError{
		Code:    code,
		Message: GetMessage(code),
		Err:     err,
		Details: first(details),
	}
}

// Is checks if err is an AppError with the given code
func Is(err error, code int) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// ExtractCode extracts the error code from an error
func ExtractCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrInternalServer
}

// GetDetails returns the details, or the underlying message when none were given
func GetDetails(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Details != "" {
			return appErr.Details
		}
		if appErr.Err != nil {
			return appErr.Err.Error()
		}
		return ""
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// NewInternalError creates an internal server error
func NewInternalError(details ...string) *AppError {
	return New(ErrInternalServer, details...)
}

// NewValidationError creates an invalid parameters error
func NewValidationError(details string) *AppError {
	return New(ErrInvalidParams, details)
}

func first(details []string) string {
	if len(details) > 0 {
		return details[0]
	}
	return ""
}
