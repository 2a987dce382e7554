package media

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestOptions carries per-call settings shared by every operation.
type RequestOptions struct {
	// CustomHeaders are applied last and override client headers.
	CustomHeaders map[string]string
}

// ListOptions narrows a list operation.
type ListOptions struct {
	RequestOptions

	// Filter is an OData $filter expression.
	Filter string
	// Top limits the number of items returned in the first page.
	Top *int `validate:"omitempty,gte=0"`
	// OrderBy is an OData $orderby expression.
	OrderBy string
}

// NewListOptions creates empty list options.
func NewListOptions() *ListOptions {
	return &ListOptions{}
}

// WithFilter sets the $filter expression.
func (o *ListOptions) WithFilter(filter string) *ListOptions {
	o.Filter = filter

	return o
}

// WithTop sets the $top limit.
func (o *ListOptions) WithTop(top int) *ListOptions {
	o.Top = &top

	return o
}

// WithOrderBy sets the $orderby expression.
func (o *ListOptions) WithOrderBy(orderBy string) *ListOptions {
	o.OrderBy = orderBy

	return o
}

// WithHeader adds a custom header.
func (o *ListOptions) WithHeader(key, value string) *ListOptions {
	if o.CustomHeaders == nil {
		o.CustomHeaders = make(map[string]string)
	}

	o.CustomHeaders[key] = value

	return o
}

// Validate checks the options before a request is built.
func (o *ListOptions) Validate() error {
	if o == nil {
		return nil
	}

	err := validate.Struct(o)
	if err != nil {
		return newOptionsError(err)
	}

	return nil
}

// newOptionsError reports the first failed option as a *ValidationError so
// IsValidationError holds for it.
func newOptionsError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	first := fieldErrs[0]
	reason := "failed " + first.Tag()

	if first.Tag() == "gte" {
		reason = "must be greater than or equal to " + first.Param()
	}

	return fmt.Errorf("%w: %w", ErrInvalidOptions, &ValidationError{
		Field:  strings.ToLower(first.Field()),
		Reason: reason,
	})
}

// Query returns the supplied OData parameters keyed by parameter name.
func (o *ListOptions) Query() map[string]any {
	query := make(map[string]any)
	if o == nil {
		return query
	}

	if o.Filter != "" {
		query["filter"] = o.Filter
	}

	if o.Top != nil {
		query["top"] = *o.Top
	}

	if o.OrderBy != "" {
		query["orderby"] = o.OrderBy
	}

	return query
}

// Headers returns the custom headers, tolerating nil options.
func (o *RequestOptions) Headers() map[string]string {
	if o == nil {
		return nil
	}

	return o.CustomHeaders
}
