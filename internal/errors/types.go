// Package errors defines the typed errors shared across the analyzer.
//
// The four core codes (NameNotGlobal, UnsupportedOperation,
// UnsupportedExpression, MalformedDecorator) are non-fatal by design:
// the extractor converts them into per-function diagnostics and keeps
// walking. The remaining codes cover the collaborator layers (parsing,
// file system, configuration, formatting) and can surface to the CLI.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies an analyzer error.
type ErrorCode int

const (
	UnknownCode ErrorCode = iota

	// Core, per-function codes.
	NameNotGlobalCode
	UnsupportedOperationCode
	UnsupportedExpressionCode
	MalformedDecoratorCode
	MalformedRouteCode

	// Collaborator codes.
	ParseCode
	FileSystemCode
	ConfigurationCode
	FormatCode
)

// String returns the code's canonical name.
func (c ErrorCode) String() string {
	switch c {
	case NameNotGlobalCode:
		return "NameNotGlobal"
	case UnsupportedOperationCode:
		return "UnsupportedOperation"
	case UnsupportedExpressionCode:
		return "UnsupportedExpression"
	case MalformedDecoratorCode:
		return "MalformedDecorator"
	case MalformedRouteCode:
		return "MalformedRoute"
	case ParseCode:
		return "ParseError"
	case FileSystemCode:
		return "FileSystemError"
	case ConfigurationCode:
		return "ConfigurationError"
	case FormatCode:
		return "FormatError"
	default:
		return "UnknownError"
	}
}

// SourceLocation points at the source construct an error refers to.
type SourceLocation struct {
	File   string
	Line   int // 1-based
	Column int // 0-based
}

// String renders the location as file:line:column, omitting missing
// parts.
func (s SourceLocation) String() string {
	if s.File == "" {
		if s.Line == 0 {
			return "unknown location"
		}
		return fmt.Sprintf("line %d", s.Line)
	}
	if s.Line == 0 {
		return s.File
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}

// IsEmpty reports whether the location carries no information.
func (s SourceLocation) IsEmpty() bool {
	return s.File == "" && s.Line == 0
}

// BaseError is the concrete error type used throughout the repository.
type BaseError struct {
	Code    ErrorCode
	Message string
	Loc     SourceLocation
	Cause   error
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	if e.Loc.IsEmpty() {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Loc, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *BaseError) Unwrap() error {
	return e.Cause
}

// Is matches two BaseErrors by code, so code-level checks through
// errors.Is work without comparing messages.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// WithLocation returns the error annotated with a source location.
func (e *BaseError) WithLocation(loc SourceLocation) *BaseError {
	e.Loc = loc
	return e
}

// New creates a BaseError with the given code and message.
func New(code ErrorCode, format string, args ...any) *BaseError {
	return &BaseError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a BaseError that records cause for unwrapping.
func Wrap(code ErrorCode, message string, cause error) *BaseError {
	return &BaseError{Code: code, Message: message, Cause: cause}
}

// CodeOf extracts the ErrorCode from err, or UnknownCode if err is not
// a BaseError.
func CodeOf(err error) ErrorCode {
	var base *BaseError
	if errors.As(err, &base) {
		return base.Code
	}
	return UnknownCode
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
