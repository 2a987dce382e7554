package media

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/fivetwenty-io/media-client/internal/mapper"
)

// Common static errors that can be wrapped with context.
var (
	ErrNilConfig      = errors.New("config is nil")
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrNoMoreItems    = errors.New("no more items")
	ErrInvalidOptions = errors.New("invalid options")
)

// ValidationError reports an argument or model value that cannot be sent.
// No request is issued when it is returned.
type ValidationError = mapper.ValidationError

// DeserializationError reports a success response whose body could not be
// decoded into the expected model.
type DeserializationError struct {
	Err      error
	Request  *Request
	Response *Response
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("error occurred in deserializing the response body: %v", e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// OperationError reports a response whose status code the operation does not
// accept.
//
// Message is the raw response body unless the body is JSON carrying an error
// message or code. Body holds the decoded error document when it parsed.
// ParseErr is set when the body was not JSON.
type OperationError struct {
	StatusCode int
	Code       string
	Message    string
	Body       *APIError
	ParseErr   error
	Request    *Request
	Response   *Response
}

func (e *OperationError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (status: %d, code: %s)", e.Message, e.StatusCode, e.Code)
	}

	return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
}

// TransportError wraps a failure to obtain any response.
type TransportError struct {
	Err     error
	Request *Request
}

func (e *TransportError) Error() string {
	if e.Request != nil {
		return fmt.Sprintf("%s %s: %v", e.Request.Method, e.Request.URL, e.Err)
	}

	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status of an OperationError in err's chain, or 0.
func StatusCode(err error) int {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.StatusCode
	}

	return 0
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return StatusCode(err) == http.StatusConflict
}

// IsValidationError checks if an error was raised before any request was sent.
func IsValidationError(err error) bool {
	var validationErr *ValidationError

	return errors.As(err, &validationErr)
}

func newConfigError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]

		return fmt.Errorf("%w: %s failed %q", ErrInvalidConfig, first.Namespace(), first.Tag())
	}

	return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
}
