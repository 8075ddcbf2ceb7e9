// Package errors provides structured error types and exit codes for dictmatch.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess         = 0 // Every case passed
	ExitAssertionFailed = 1 // At least one case failed its comparison
	ExitConfigError     = 2 // Invalid settings or case file
	ExitRuntimeError    = 3 // Anything else (I/O failure, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
	// KindCardinality marks an unordered comparison with too many items.
	// It is fatal to the assertion that triggered it, not to the run.
	KindCardinality
)

func (k ErrorKind) String() string {
	switch k {
	case KindRuntime:
		return "runtime"
	case KindConfig:
		return "config"
	case KindNotFound:
		return "not found"
	case KindValidation:
		return "validation"
	case KindCardinality:
		return "cardinality"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// DictmatchError is the base error type for dictmatch.
type DictmatchError struct {
	Kind      ErrorKind
	Message   string
	Case      string // Case name if applicable
	Assertion string // Assertion kind if applicable (match, match_all)
	Cause     error  // Underlying error
}

func (e *DictmatchError) Error() string {
	if e.Case != "" && e.Assertion != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Case, e.Assertion, e.Message)
	}
	if e.Case != "" {
		return fmt.Sprintf("[%s] %s", e.Case, e.Message)
	}
	return e.Message
}

func (e *DictmatchError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *DictmatchError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindCardinality:
		return ExitAssertionFailed
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *DictmatchError {
	return &DictmatchError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *DictmatchError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *DictmatchError {
	return &DictmatchError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *DictmatchError {
	return Config(fmt.Sprintf(format, args...))
}

// Validation wraps a schema or field validation failure.
func Validation(err error, message string) *DictmatchError {
	return &DictmatchError{
		Kind:    KindValidation,
		Message: message,
		Cause:   err,
	}
}

// Cardinality creates the error raised when an unordered comparison has
// more items than the matcher accepts.
func Cardinality(values, expected, limit int) *DictmatchError {
	return &DictmatchError{
		Kind: KindCardinality,
		Message: fmt.Sprintf("unordered comparison of %d values against %d expected items exceeds the limit of %d; split the input into smaller groups",
			values, expected, limit),
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *DictmatchError {
	return &DictmatchError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// CaseError attributes an error to a specific case and assertion kind,
// keeping the kind of err when it is already a DictmatchError.
func CaseError(name, assertion string, err error) *DictmatchError {
	kind := KindRuntime
	var de *DictmatchError
	if stderrors.As(err, &de) {
		kind = de.Kind
	}
	return &DictmatchError{
		Kind:      kind,
		Case:      name,
		Assertion: assertion,
		Message:   err.Error(),
		Cause:     err,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *DictmatchError {
	return &DictmatchError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// Is reports whether err is a DictmatchError of the given kind.
func Is(err error, kind ErrorKind) bool {
	var de *DictmatchError
	return stderrors.As(err, &de) && de.Kind == kind
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var de *DictmatchError
	if stderrors.As(err, &de) {
		return de.ExitCode()
	}
	return ExitRuntimeError
}
