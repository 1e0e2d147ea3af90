// Package apperrors defines the typed errors surfaced by the weather
// store and its collaborators.
package apperrors

import (
	"errors"
	"fmt"
)

type ErrorType string

const (
	// FetchError covers network failures and non-2xx responses from the
	// weather provider or sample resources.
	FetchError ErrorType = "FETCH_ERROR"
	// DecodeError covers malformed payload JSON.
	DecodeError ErrorType = "DECODE_ERROR"
	// ConversionError covers malformed raw hourly readings.
	ConversionError ErrorType = "CONVERSION_ERROR"
	// DatasetKeyError covers unknown sample dataset keys.
	DatasetKeyError ErrorType = "DATASET_KEY_ERROR"
	// CacheError covers payload cache failures.
	CacheError ErrorType = "CACHE_ERROR"
	// ConfigurationError covers bad environment configuration.
	ConfigurationError ErrorType = "CONFIGURATION_ERROR"
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

func NewFetchError(message string, cause error) *AppError {
	return Wrap(FetchError, message, cause)
}

func NewDecodeError(message string, cause error) *AppError {
	return Wrap(DecodeError, message, cause)
}

func NewConversionError(message string) *AppError {
	return New(ConversionError, message)
}

func NewDatasetKeyError(key string) *AppError {
	return New(DatasetKeyError, fmt.Sprintf("unknown sample dataset %q", key))
}

func NewCacheError(message string, cause error) *AppError {
	return Wrap(CacheError, message, cause)
}

// IsType reports whether err is (or wraps) an AppError of the given type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}
