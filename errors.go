package enumkit

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for enum lookup and registration.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrNameNotFound indicates that no constant of the enumeration is
	// declared under the requested name.
	ErrNameNotFound = errors.New("name not found")

	// ErrTypeNotRegistered indicates that a type descriptor does not
	// resolve to a known enumeration.
	ErrTypeNotRegistered = errors.New("enum type not registered")

	// ErrDuplicateName indicates that two constants of one enumeration
	// share a name.
	ErrDuplicateName = errors.New("duplicate constant name")

	// ErrInvalidConfig indicates the provided catalog configuration is
	// invalid or incomplete.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Error kinds categorize errors by their type.
const (
	// KindInvalidArgument represents errors caused by an argument the
	// callee cannot accept, such as an unknown constant name.
	KindInvalidArgument = "invalid_argument"

	// KindNotFound represents errors where a type or resource was not found.
	KindNotFound = "not_found"

	// KindValidation represents errors raised while building an enumeration.
	KindValidation = "validation"

	// KindConfiguration represents errors related to configuration files.
	KindConfiguration = "configuration"

	// KindInternal represents internal errors.
	KindInternal = "internal"
)

// Error is a structured error type that wraps underlying errors with
// the operation that failed and the category of error.
//
// Error supports unwrapping, so errors.Is() and errors.As() see both the
// sentinel it wraps and, through Is, other *Error values of the same kind.
//
// Example usage:
//
//	err := &Error{
//		Op:   "enum.Lookup",
//		Kind: KindInvalidArgument,
//		Err:  ErrNameNotFound,
//	}
type Error struct {
	// Op is the operation that failed (e.g., "enum.Lookup", "catalog.Load").
	Op string

	// Kind categorizes the error (e.g., KindInvalidArgument, KindNotFound).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context carries the offending values, such as the constant name and
	// the enumeration type name.
	Context map[string]any
}

// Error implements the error interface, returning a formatted error message
// that includes the operation, kind, and underlying error.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("enumkit: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("enumkit: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("enumkit: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind (and, when the
// target names one, the same operation), or matches the wrapped error.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// WithContext returns a copy of e with the provided context merged in.
// The receiver is left untouched.
func (e *Error) WithContext(ctx map[string]any) *Error {
	newErr := *e
	merged := make(map[string]any, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	newErr.Context = merged
	return &newErr
}

// NewInvalidArgumentError creates a new Error with KindInvalidArgument.
func NewInvalidArgumentError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindInvalidArgument, Err: err}
}

// NewNotFoundError creates a new Error with KindNotFound.
func NewNotFoundError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindNotFound, Err: err}
}

// NewValidationError creates a new Error with KindValidation.
func NewValidationError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindValidation, Err: err}
}

// NewConfigurationError creates a new Error with KindConfiguration.
func NewConfigurationError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindConfiguration, Err: err}
}

// NewInternalError creates a new Error with KindInternal.
func NewInternalError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindInternal, Err: err}
}

// IsKind reports whether err is, or wraps, an *Error of the given kind.
func IsKind(err error, kind string) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// CloseWithLog closes the provided resource and logs any error at warning
// level. It is meant for defer statements.
//
// If logger is nil, slog.Default() is used.
//
//	defer enumkit.CloseWithLog(f, logger, "catalog file")
func CloseWithLog(closer io.Closer, logger *slog.Logger, name string) {
	if closer == nil {
		return
	}

	if logger == nil {
		logger = slog.Default()
	}

	if err := closer.Close(); err != nil {
		logger.Warn("failed to close resource",
			"resource", name,
			"error", err)
	}
}
