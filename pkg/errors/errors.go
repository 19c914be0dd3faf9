// Package errors provides custom error types for the atlas ingestion pipeline.
// These errors enable programmatic checking of the pipeline's error taxonomy:
// missing source files and malformed documents are recoverable, a missing
// data root is fatal.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is, As and Join are re-exported so callers need a single errors import.
var (
	Is   = errors.Is
	As   = errors.As
	Join = errors.Join
)

// Common sentinel errors for the atlas pipeline
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingSource indicates that a declared input file is absent
	ErrMissingSource = errors.New("missing source file")

	// ErrMalformedDocument indicates that a whole source document could not be parsed
	ErrMalformedDocument = errors.New("malformed document")

	// ErrMalformedField indicates that a single field within a record could not be parsed
	ErrMalformedField = errors.New("malformed field")

	// ErrRootNotFound indicates that the input root directory does not exist
	ErrRootNotFound = errors.New("data root not found")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// SourceError reports a declared source that could not be consumed.
// A missing file matches ErrMissingSource; anything else is a malformed document.
type SourceError struct {
	Source  string
	Path    string
	Missing bool
	Err     error
}

// Error implements the error interface
func (e *SourceError) Error() string {
	if e.Missing {
		return fmt.Sprintf("source %s: file %s not found", e.Source, e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("source %s (%s): %v", e.Source, e.Path, e.Err)
	}
	return fmt.Sprintf("source %s (%s): unreadable", e.Source, e.Path)
}

// Unwrap implements errors.Unwrap
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *SourceError) Is(target error) bool {
	if e.Missing {
		return target == ErrMissingSource
	}
	return target == ErrMalformedDocument
}

// NewMissingSourceError creates a SourceError for an absent input file
func NewMissingSourceError(source, path string) *SourceError {
	return &SourceError{Source: source, Path: path, Missing: true}
}

// RootNotFoundError is the only fatal input condition: the data root is absent.
type RootNotFoundError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *RootNotFoundError) Error() string {
	return fmt.Sprintf("data root %s not found", e.Path)
}

// Unwrap implements errors.Unwrap
func (e *RootNotFoundError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *RootNotFoundError) Is(target error) bool {
	return target == ErrRootNotFound
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml", "toml", "brace-ascii"
	File    string
	Line    int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d: %s", e.Format, e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedDocument
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// FieldError reports one unparsable field inside an otherwise valid record.
// Callers log it and leave the field absent.
type FieldError struct {
	Field string
	Token string
	Err   error
}

// Error implements the error interface
func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: cannot parse %q", e.Field, e.Token)
}

// Unwrap implements errors.Unwrap
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *FieldError) Is(target error) bool {
	return target == ErrMalformedField
}

// NewFieldError creates a new FieldError
func NewFieldError(field, token string, err error) *FieldError {
	return &FieldError{Field: field, Token: token, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "rename", "open"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ResourceError represents an error during resource operations
type ResourceError struct {
	Operation string // "load", "emit", "open", "create"
	Resource  string // "catalog", "manifest", "database"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsMissingSource checks if an error reports an absent source file
func IsMissingSource(err error) bool {
	return errors.Is(err, ErrMissingSource)
}

// IsMalformedDocument checks if an error reports an unparsable document
func IsMalformedDocument(err error) bool {
	return errors.Is(err, ErrMalformedDocument)
}

// IsMalformedField checks if an error reports an unparsable field
func IsMalformedField(err error) bool {
	return errors.Is(err, ErrMalformedField)
}

// IsRootNotFound checks if an error is the fatal missing-root condition
func IsRootNotFound(err error) bool {
	return errors.Is(err, ErrRootNotFound)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapSource wraps a reader failure as a malformed-document SourceError
func WrapSource(source, path string, err error) error {
	if err == nil {
		return nil
	}
	return &SourceError{Source: source, Path: path, Err: err}
}
