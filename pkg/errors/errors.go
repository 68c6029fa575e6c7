// Package errors provides structured error handling for the strut layout
// kernel.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindPrecondition indicates a node entered a layout pass without the
	// geometry that pass requires (for example, an unseeded root).
	KindPrecondition
	// KindTreeShape indicates a malformed tree, such as a table whose
	// direct child is not a row or row section.
	KindTreeShape
	// KindConfig indicates a configuration loading or validation error.
	KindConfig
	// KindInternal indicates a broken internal invariant, such as a layout
	// convergence loop exceeding its iteration cap.
	KindInternal
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindPrecondition:
		return "precondition"
	case KindTreeShape:
		return "tree_shape"
	case KindConfig:
		return "config"
	case KindInternal:
		return "internal"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// LayoutError represents a structured error in the layout kernel.
type LayoutError struct {
	// Op is the operation that failed (e.g., "engine.Calculate").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.Calc").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives reported errors and panics.
type ErrorHandler interface {
	HandleError(err *LayoutError)
	HandlePanic(err *PanicError)
}

// New creates a LayoutError from an operation, kind and message.
func New(op string, kind ErrorKind, format string, args ...any) *LayoutError {
	return &LayoutError{
		Op:        op,
		Kind:      kind,
		Err:       fmt.Errorf(format, args...),
		Timestamp: time.Now(),
	}
}

// Wrap creates a LayoutError around an existing error.
func Wrap(op string, kind ErrorKind, err error) *LayoutError {
	if err == nil {
		return nil
	}
	return &LayoutError{
		Op:        op,
		Kind:      kind,
		Err:       err,
		Timestamp: time.Now(),
	}
}
