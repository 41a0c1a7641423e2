package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents an invalid flag or config value
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// UserError represents an error caused by user input or invocation.
// Suggestion can provide a concrete fix for the user.
type UserError struct {
	Message    string
	Suggestion string
	Err        error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a UserError with a message and optional suggestion.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion}
}

// WrapUserError wraps an underlying error with a user-facing message and suggestion.
func WrapUserError(err error, message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion, Err: err}
}

// InputError represents a failure to open or read the table source.
// Path is "-" for standard input.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	if e.Path == "-" {
		return fmt.Sprintf("failed to read stdin: %v", e.Err)
	}
	return fmt.Sprintf("failed to read file %q: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// EncodingError means the input bytes are not text in a supported encoding.
// Offset is the byte offset of the first invalid sequence after decoding.
type EncodingError struct {
	Path   string
	Offset int
}

func (e *EncodingError) Error() string {
	if e.Path == "-" {
		return fmt.Sprintf("stdin is not valid UTF-8 (invalid byte at offset %d)", e.Offset)
	}
	return fmt.Sprintf("file %q is not valid UTF-8 (invalid byte at offset %d)", e.Path, e.Offset)
}

// SourceError wraps a table parse failure with the name of the input it
// came from.
type SourceError struct {
	Name string
	Err  error
}

// WrapSource attaches the input name to a parse error.
// Returns nil if err is nil.
func WrapSource(name string, err error) error {
	if err == nil {
		return nil
	}
	return &SourceError{Name: name, Err: err}
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// UnformattedError is returned by --check when the input differs from its
// canonical rendering.
type UnformattedError struct {
	Name string
}

func (e *UnformattedError) Error() string {
	return fmt.Sprintf("%s is not formatted", e.Name)
}

// Type checkers
func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}

func IsInputError(err error) bool {
	var e *InputError
	return errors.As(err, &e)
}

func IsEncodingError(err error) bool {
	var e *EncodingError
	return errors.As(err, &e)
}

func IsSourceError(err error) bool {
	var e *SourceError
	return errors.As(err, &e)
}

func IsUnformattedError(err error) bool {
	var e *UnformattedError
	return errors.As(err, &e)
}

// UserSuggestion returns a suggestion string if err is a UserError.
func UserSuggestion(err error) string {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Suggestion
	}
	return ""
}

// ArgCountError reports a wrong number of positional file arguments.
func ArgCountError(got int) error {
	return NewUserError(
		fmt.Sprintf("expected zero or one file argument, got %d", got),
		"Pass a single file path, or pipe the table on stdin:\n  tfmt table.md\n  cat table.md | tfmt",
	)
}

// InvalidChoiceError reports a flag or config value outside its allowed set.
func InvalidChoiceError(field, value string, choices []string) error {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%q is not one of %s", value, formatChoices(choices)),
	}
}

func formatChoices(choices []string) string {
	var result string
	for i, c := range choices {
		if i > 0 {
			result += "|"
		}
		result += c
	}
	return result
}
