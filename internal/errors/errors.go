package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies an application error.
type ErrorType string

const (
	ErrTypeFileNotFound  ErrorType = "FILE_NOT_FOUND"
	ErrTypeMissingColumn ErrorType = "MISSING_COLUMN"
	ErrTypeEmptyDataset  ErrorType = "EMPTY_DATASET"
	ErrTypeNotFound      ErrorType = "NOT_FOUND"
	ErrTypeInvalidInput  ErrorType = "INVALID_INPUT"
	ErrTypeExport        ErrorType = "EXPORT"
)

// AppError is an application-specific error with a type, message and
// optional cause.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new application error
func New(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType reports whether err is (or wraps) an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// NewFileNotFoundError creates an error for a dataset file that does not exist
func NewFileNotFoundError(path string, cause error) *AppError {
	return New(ErrTypeFileNotFound, fmt.Sprintf("file %s not found", path), cause)
}

// NewMissingColumnError creates an error for a CSV missing required columns
func NewMissingColumnError(columns []string) *AppError {
	return New(ErrTypeMissingColumn, fmt.Sprintf("CSV file is invalid, missing required columns: %v", columns), nil)
}

// NewEmptyDatasetError creates an error for operations on an empty dataset
func NewEmptyDatasetError() *AppError {
	return New(ErrTypeEmptyDataset, "dataset contains no records", nil)
}

// NewNotFoundError creates an error for an unmatched filter
func NewNotFoundError(what string) *AppError {
	return New(ErrTypeNotFound, fmt.Sprintf("%s not found", what), nil)
}

// NewInvalidInputError creates an error for invalid caller input
func NewInvalidInputError(message string, cause error) *AppError {
	return New(ErrTypeInvalidInput, message, cause)
}

// NewExportError creates an error for a failed report export
func NewExportError(message string, cause error) *AppError {
	return New(ErrTypeExport, message, cause)
}
