package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryConfig     Category = "config"
	CategoryCatalog    Category = "catalog"
	CategoryProtocol   Category = "protocol"
	CategoryValidation Category = "validation"
	CategoryPublish    Category = "publish"
	CategoryCLI        Category = "cli"
)

// ShowcaseError is a structured error with a code, an explanation and a hint.
type ShowcaseError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Path is the file the error relates to, if any.
	Path string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *ShowcaseError) Error() string {
	msg := e.Message
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *ShowcaseError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *ShowcaseError) WithSuggestion(s string) *ShowcaseError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *ShowcaseError) WithDetail(d string) *ShowcaseError {
	e.Detail = d
	return e
}

// WithPath records the file the error relates to.
func (e *ShowcaseError) WithPath(path string) *ShowcaseError {
	e.Path = path
	return e
}

// Wrap wraps another error.
func (e *ShowcaseError) Wrap(err error) *ShowcaseError {
	e.Wrapped = err
	return e
}

// New creates a ShowcaseError from a registered error code.
func New(code string) *ShowcaseError {
	template, ok := registry[code]
	if !ok {
		return &ShowcaseError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &ShowcaseError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Suggestion: template.Suggestion,
	}
}

// Newf creates a new ShowcaseError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *ShowcaseError {
	return &ShowcaseError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a ShowcaseError.
func FromError(err error, code string) *ShowcaseError {
	if err == nil {
		return nil
	}
	if se, ok := err.(*ShowcaseError); ok {
		return se
	}
	return New(code).Wrap(err)
}
