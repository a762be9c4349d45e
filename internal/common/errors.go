package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors with a stable kind code.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Terminal error kinds for an analysis run. None are retried.
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrOCRInit              = errors.New("ocr engine initialization failed")
	ErrNoReadableText       = errors.New("no readable text in any file")
	ErrNoBillItems          = errors.New("no bill items found")
	ErrNotFound             = errors.New("resource not found")
	ErrInvalidInput         = errors.New("invalid input")
)

func NewAppError(code, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// ErrorKind returns the stable kind string for a terminal pipeline error,
// or "InternalError" when the error is none of the named kinds.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedMediaType):
		return "UnsupportedMediaType"
	case errors.Is(err, ErrOCRInit):
		return "OcrInitError"
	case errors.Is(err, ErrNoReadableText):
		return "NoReadableText"
	case errors.Is(err, ErrNoBillItems):
		return "NoBillItemsFound"
	case errors.Is(err, ErrNotFound):
		return "NotFound"
	case errors.Is(err, ErrInvalidInput):
		return "InvalidInput"
	default:
		return "InternalError"
	}
}
