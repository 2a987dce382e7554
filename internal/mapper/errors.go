package mapper

import (
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	ErrInvalidSpec      = errors.New("invalid model spec")
	ErrInvalidJSON      = errors.New("invalid JSON")
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrFieldNotFound    = errors.New("model field not found")
	ErrUnsupportedValue = errors.New("unsupported Go value for shape")
	ErrNotPointer       = errors.New("deserialize target must be a non-nil pointer")
)

// ValidationError reports a value that cannot be sent: a missing required
// field, a disallowed enum value or a value of the wrong type.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// DecodeError reports a wire document that cannot be read into a model.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func required(path string) error {
	return &ValidationError{Field: path, Reason: "is required"}
}

func mustBe(path string, kind Kind) error {
	return &ValidationError{Field: path, Reason: "must be of type " + kind.String()}
}

func mismatch(path string, want Kind, found string) error {
	return &DecodeError{
		Path: path,
		Err:  fmt.Errorf("%w: expected %s, found %s", ErrShapeMismatch, want, found),
	}
}
