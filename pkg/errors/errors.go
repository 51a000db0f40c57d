// Package errors provides the structured error types used across gokrr.
// The taxonomy mirrors scikit-learn's exception hierarchy: every failure a
// model can surface (unfitted use, shape mismatch, unknown kernel, singular
// system) has a concrete type callers can match with As, and every
// constructor attaches a stack trace via cockroachdb/errors.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// NotFittedError is returned when Predict is called on a model whose Fit
// has not completed successfully.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("gokrr: %s: model is not fitted yet; call Fit() before %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace attached.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError is returned when the shape of an input disagrees with what
// the operation expects. Axis 0 means rows (samples), axis 1 means columns
// (features).
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("gokrr: %s: dimension mismatch on axis %d (%s): expected %d, got %d",
		e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace attached.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// InvalidKernelError is returned by kernel construction when the requested
// kernel name is not one of the supported variants.
type InvalidKernelError struct {
	Name      string
	Supported []string
}

func (e *InvalidKernelError) Error() string {
	return fmt.Sprintf("gokrr: unknown kernel %q (supported: %v)", e.Name, e.Supported)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *InvalidKernelError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("kernel", e.Name).
		Strs("supported", e.Supported).
		Str("type", "InvalidKernelError")
}

// NewInvalidKernelError creates an InvalidKernelError with a stack trace attached.
func NewInvalidKernelError(name string, supported []string) error {
	err := &InvalidKernelError{Name: name, Supported: supported}
	return errors.WithStack(err)
}

// ValueError is returned when an argument value is invalid for the
// operation, e.g. a non-positive regularization strength.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("gokrr: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace attached.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ModelError wraps a lower-level failure inside a model operation, such as
// the linear solver reporting a singular system during Fit.
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gokrr: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("gokrr: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError creates a ModelError with a stack trace attached.
func NewModelError(op, kind string, err error) error {
	modelErr := &ModelError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(modelErr)
}

// Sentinel errors for conditions callers commonly branch on with Is.
var (
	// ErrSingularMatrix indicates that the regularized kernel matrix could
	// not be factorized. Increasing lambda is the usual remedy.
	ErrSingularMatrix = errors.New("singular matrix")

	// ErrEmptyData indicates that an input matrix has zero rows or columns.
	ErrEmptyData = errors.New("empty data")
)

// Re-exports so callers depend on this package only.

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message, preserving the chain.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message, preserving the chain.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace at the point of the call.
func WithStack(err error) error {
	return errors.WithStack(err)
}
