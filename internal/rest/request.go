package rest

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/fivetwenty-io/media-client/internal/mapper"
	"github.com/fivetwenty-io/media-client/pkg/media"
)

// Header names set by the builder.
const (
	HeaderContentType     = "Content-Type"
	HeaderClientRequestID = "x-ms-client-request-id"
	HeaderAcceptLanguage  = "accept-language"

	ContentTypeJSON = "application/json; charset=utf-8"
)

// Static errors for err113 compliance.
var (
	ErrUnresolvedPlaceholder = errors.New("path template has unresolved placeholders")
	ErrInvalidBaseURL        = errors.New("invalid base URL")
)

// BuildRequest validates values against contract and produces the request
// descriptor. Nothing is sent; any error here means no I/O happened.
func BuildRequest(contract *OperationContract, baseURL string, values RequestValues) (*media.Request, error) {
	for _, param := range contract.PathParams {
		err := checkParam(param, values.Path[param.Name], true)
		if err != nil {
			return nil, err
		}
	}

	if strings.TrimSpace(values.APIVersion) == "" {
		return nil, &media.ValidationError{Field: "apiVersion", Reason: "cannot be null or empty"}
	}

	for _, param := range contract.QueryParams {
		err := checkParam(param, values.Query[param.Name], false)
		if err != nil {
			return nil, err
		}
	}

	path := contract.PathTemplate
	for _, param := range contract.PathParams {
		path = strings.ReplaceAll(path, "{"+param.Name+"}", escapeComponent(formatParam(values.Path[param.Name])))
	}

	if strings.ContainsAny(path, "{}") {
		return nil, fmt.Errorf("%w: %s", ErrUnresolvedPlaceholder, path)
	}

	base, err := normalizeBase(baseURL)
	if err != nil {
		return nil, err
	}

	query := []string{"api-version=" + escapeComponent(values.APIVersion)}

	for _, param := range contract.QueryParams {
		value, ok := values.Query[param.Name]
		if !ok || value == nil {
			continue
		}

		query = append(query, param.WireName+"="+escapeComponent(formatParam(value)))
	}

	req := &media.Request{
		Method:   contract.Method,
		URL:      base + "/" + strings.TrimPrefix(path, "/") + "?" + strings.Join(query, "&"),
		Headers:  buildHeaders(values.Headers),
		Metadata: map[string]interface{}{media.MetadataOperation: contract.Name},
	}

	if contract.Body != nil {
		bodyName := contract.BodyName
		if bodyName == "" {
			bodyName = "parameters"
		}

		body, err := mapper.Serialize(contract.Body, values.Body, bodyName)
		if err != nil {
			return nil, err
		}

		req.Body = body
	}

	return req, nil
}

// BuildNextRequest prepares a GET for a continuation link returned by a list
// operation. The link is used verbatim.
func BuildNextRequest(name, nextLink string, headers HeaderOptions) (*media.Request, error) {
	if strings.TrimSpace(nextLink) == "" {
		return nil, &media.ValidationError{Field: "nextPageLink", Reason: "cannot be null or empty"}
	}

	return &media.Request{
		Method:   http.MethodGet,
		URL:      nextLink,
		Headers:  buildHeaders(headers),
		Metadata: map[string]interface{}{media.MetadataOperation: name},
	}, nil
}

func buildHeaders(opts HeaderOptions) http.Header {
	headers := make(http.Header)
	headers.Set(HeaderContentType, ContentTypeJSON)

	if opts.GenerateClientRequestID {
		headers.Set(HeaderClientRequestID, uuid.New().String())
	}

	if opts.AcceptLanguage != "" {
		headers.Set(HeaderAcceptLanguage, opts.AcceptLanguage)
	}

	for key, value := range opts.Custom {
		headers.Set(key, value)
	}

	return headers
}

// checkParam enforces presence and primitive type. Required path parameters
// also reject empty strings.
func checkParam(param Param, value any, isPath bool) error {
	if value == nil {
		if param.Required {
			return &media.ValidationError{Field: param.Name, Reason: "cannot be null or undefined"}
		}

		return nil
	}

	var ok bool

	switch param.Kind {
	case ParamString:
		var s string

		s, ok = value.(string)
		if ok && isPath && param.Required && s == "" {
			return &media.ValidationError{Field: param.Name, Reason: "cannot be empty"}
		}
	case ParamInt:
		switch value.(type) {
		case int, int32, int64:
			ok = true
		}
	case ParamBool:
		_, ok = value.(bool)
	}

	if !ok {
		return &media.ValidationError{Field: param.Name, Reason: "must be of type " + param.Kind.String()}
	}

	return nil
}

func formatParam(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// escapeComponent escapes a path segment or query value the way a URI
// component is escaped, with spaces as %20.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func normalizeBase(baseURL string) (string, error) {
	base := strings.TrimRight(baseURL, "/")

	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	return base, nil
}
