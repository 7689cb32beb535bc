package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// Configuration errors
	ErrMissingToken  = errors.New("WEBEX_TOKEN is not set")
	ErrInvalidConfig = errors.New("invalid configuration")

	// API errors
	ErrAPIConnection = errors.New("API connection failed")
	ErrAPIResponse   = errors.New("invalid API response")

	// File system errors
	ErrFileNotFound = errors.New("file not found")

	// CSV errors
	ErrMissingHeader = errors.New("missing required CSV header")
)

// Wrap wraps an error with additional context
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is checks if the error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As checks if the error can be unwrapped to the target type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
