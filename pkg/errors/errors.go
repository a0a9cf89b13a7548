package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration or input validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// AssistError represents a failed bio generation request.
type AssistError struct {
	Model string
	Err   error
}

// NewAssistError constructs an AssistError for the given model.
func NewAssistError(model string, err error) error {
	return &AssistError{Model: model, Err: err}
}

func (e *AssistError) Error() string {
	if e == nil {
		return ""
	}
	if e.Model != "" {
		return fmt.Sprintf("assist error [%s]: %v", e.Model, e.Err)
	}
	return fmt.Sprintf("assist error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *AssistError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExportError indicates the share card could not be produced.
type ExportError struct {
	Stage string
	Err   error
}

// NewExportError constructs an ExportError for the failing stage
// ("render", "rasterize" or "write").
func NewExportError(stage string, err error) error {
	return &ExportError{Stage: stage, Err: err}
}

func (e *ExportError) Error() string {
	if e == nil {
		return ""
	}
	if e.Stage != "" {
		return fmt.Sprintf("export error during %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("export error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *ExportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
