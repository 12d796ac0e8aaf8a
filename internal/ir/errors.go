package ir

import (
	"errors"
	"fmt"

	"github.com/roach88/odsf/internal/category"
)

// ErrorCode categorizes construction errors.
type ErrorCode string

const (
	// ErrCodeCategory indicates an operand does not derive a required category.
	ErrCodeCategory ErrorCode = "CATEGORY_VIOLATION"

	// ErrCodeArity indicates a missing, surplus, or wrongly omitted argument.
	ErrCodeArity ErrorCode = "ARITY_VIOLATION"

	// ErrCodeShape indicates an empty or ragged array, or an empty sequence.
	ErrCodeShape ErrorCode = "SHAPE_VIOLATION"

	// ErrCodeLiteral indicates a nil child, a non-finite float, or a
	// reference without an addressing collaborator.
	ErrCodeLiteral ErrorCode = "INVALID_LITERAL"

	// ErrCodeOperator indicates an operator outside the supported set.
	ErrCodeOperator ErrorCode = "UNKNOWN_OPERATOR"

	// ErrCodeName indicates a function name that cannot be emitted.
	ErrCodeName ErrorCode = "INVALID_NAME"
)

// BuildError is returned by node constructors when a composition is invalid.
//
// BuildError includes structured fields so callers can report exactly which
// operand failed and why.
type BuildError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Node names the node being built, e.g. "Binary(&)" or "Call(SUM)".
	Node string

	// Arg is the 1-based operand or argument position (0 if not tied to one).
	Arg int

	// Required is the category the operand had to satisfy (category violations).
	Required category.Category

	// Actual is the operand's category set (category violations).
	Actual category.Set

	// Message is a human-readable description for non-category errors.
	Message string
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Code == ErrCodeCategory {
		return fmt.Sprintf("%s: %s operand %d requires %s, got %s",
			e.Code, e.Node, e.Arg, e.Required, e.Actual)
	}
	if e.Arg > 0 {
		return fmt.Sprintf("%s: %s operand %d: %s", e.Code, e.Node, e.Arg, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Node, e.Message)
}

// CodeOf returns the ErrorCode of a BuildError anywhere in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var be *BuildError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

// IsCategoryError returns true if the error is a category violation.
// Uses errors.As to handle wrapped errors.
func IsCategoryError(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == ErrCodeCategory
}

// IsArityError returns true if the error is an arity violation.
// Uses errors.As to handle wrapped errors.
func IsArityError(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == ErrCodeArity
}

func categoryError(node string, arg int, required category.Category, actual category.Set) *BuildError {
	return &BuildError{
		Code:     ErrCodeCategory,
		Node:     node,
		Arg:      arg,
		Required: required,
		Actual:   actual,
	}
}

func arityError(node string, arg int, format string, args ...any) *BuildError {
	return &BuildError{
		Code:    ErrCodeArity,
		Node:    node,
		Arg:     arg,
		Message: fmt.Sprintf(format, args...),
	}
}

func shapeError(node string, format string, args ...any) *BuildError {
	return &BuildError{
		Code:    ErrCodeShape,
		Node:    node,
		Message: fmt.Sprintf(format, args...),
	}
}

// Must returns v, panicking if err is non-nil.
// Use only in tests or when inputs are known to be valid.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
