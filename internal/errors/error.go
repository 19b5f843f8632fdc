package errors

import (
	stderrors "errors"
	"fmt"
)

// Category groups error codes by the part of the tool that raises them.
type Category string

const (
	CategoryPreview Category = "preview"
	CategoryConfig  Category = "config"
	CategoryExport  Category = "export"
	CategoryServer  Category = "server"
	CategoryCLI     Category = "cli"
)

// CosmosError is an error meant for a person at a terminal: a registered
// code with its explanation and fix, plus the underlying cause.
type CosmosError struct {
	Code string
	ErrorTemplate
	Wrapped error
}

// Error renders "<code>: <message>: <cause>", leaving out empty parts.
func (e *CosmosError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

func (e *CosmosError) Unwrap() error { return e.Wrapped }

func (e *CosmosError) WithSuggestion(s string) *CosmosError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the registered explanation.
func (e *CosmosError) WithDetail(d string) *CosmosError {
	e.Detail = d
	return e
}

func (e *CosmosError) Wrap(err error) *CosmosError {
	e.Wrapped = err
	return e
}

// New creates an error from the template registered under code. Unknown
// codes get the message "Unknown error".
func New(code string) *CosmosError {
	t, ok := registry[code]
	if !ok {
		t = ErrorTemplate{Message: "Unknown error"}
	}
	return &CosmosError{Code: code, ErrorTemplate: t}
}

// Newf creates an error without a code.
func Newf(category Category, format string, args ...any) *CosmosError {
	return &CosmosError{ErrorTemplate: ErrorTemplate{Category: category, Message: fmt.Sprintf(format, args...)}}
}

// FromError returns the CosmosError carried by err, or wraps err in a new
// one with code. A nil err yields nil.
func FromError(err error, code string) *CosmosError {
	if err == nil {
		return nil
	}
	if ce := (*CosmosError)(nil); stderrors.As(err, &ce) {
		return ce
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err carries a CosmosError with code.
func HasCode(err error, code string) bool {
	var ce *CosmosError
	return stderrors.As(err, &ce) && ce.Code == code
}
