// Package errs defines the error taxonomy shared by every package of the module.
//
// Fatal conditions are reported as sentinel errors, usually wrapped with
// additional context via fmt.Errorf("...: %w", err). Use errors.Is to test for
// them. Recoverable conditions (non-monotonic input that was corrected, combine
// requests between incompatible attribute kinds) are not errors; they are
// reported through internal/diag instead.
package errs

import (
	"errors"
	"fmt"
)

// Range and validation errors.
var (
	// ErrInvalidRange is returned for malformed numeric range parameters:
	// end < start, a non-positive ratio, a zero count, NaN bounds, or a merge
	// that would produce a non-monotonic scale.
	ErrInvalidRange = errors.New("invalid range")

	// ErrNonMonotonic is returned when strict validation is requested and the
	// supplied points are not strictly monotonic.
	ErrNonMonotonic = errors.New("points are not strictly monotonic")

	// ErrLengthMismatch is returned when value or error arrays do not match the
	// length of the scale they are attached to.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrTypeMismatch is returned when a payload cannot be converted to the
	// requested attribute kind.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnsupportedFeature is returned for options that are recognised by the
	// API but not implemented (e.g. histogram smoothing).
	ErrUnsupportedFeature = errors.New("unsupported feature")

	// ErrUnknownAttributeKind is returned when decoding an attribute kind tag
	// that is not known to this version.
	ErrUnknownAttributeKind = errors.New("unknown attribute kind")

	// ErrInsufficientData is returned when a fit is requested on fewer points
	// than the model needs.
	ErrInsufficientData = errors.New("insufficient data points")

	// ErrNilFunction is returned when a function-backed series is built
	// without a function.
	ErrNilFunction = errors.New("nil function")

	// ErrNilSeries is returned when an operation receives a nil series.
	ErrNilSeries = errors.New("nil series")

	// ErrDuplicateName is returned when a name that must be unique repeats.
	ErrDuplicateName = errors.New("duplicate name")
)

// Persistence errors.
var (
	ErrPersistence           = errors.New("persistence failure")
	ErrSizeLimitExceeded     = errors.New("encoded size exceeds limit")
	ErrInvalidHeaderSize     = errors.New("invalid header size")
	ErrInvalidHeaderFlags    = errors.New("invalid header flags")
	ErrChecksumMismatch      = errors.New("payload checksum mismatch")
	ErrCorruptPayload        = errors.New("corrupt payload")
	ErrUnserializableFunc    = errors.New("function-backed series has no parametric form")
	ErrUnsupportedModelType  = errors.New("unsupported model type")
	ErrInvalidCompressionCfg = errors.New("invalid compression configuration")
)

// PersistenceError reports a failure of the compress/inflate collaborator.
//
// Op names the failing step ("encode", "compress", "decompress", "decode") and
// Err carries the underlying cause. A PersistenceError always matches
// ErrPersistence under errors.Is, in addition to its cause.
type PersistenceError struct {
	Op  string
	Err error
}

// NewPersistenceError wraps err as a PersistenceError for the given operation.
// It returns nil when err is nil.
func NewPersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}

	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}

	return &PersistenceError{Op: op, Err: err}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrPersistence.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
