package rest

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/fivetwenty-io/media-client/internal/mapper"
	"github.com/fivetwenty-io/media-client/pkg/media"
)

//nolint:gochecknoglobals
var (
	// ODataErrorSpec describes one error entry; details nest recursively.
	ODataErrorSpec = &mapper.ModelSpec{Name: "ODataError"}

	// APIErrorSpec describes the error body every operation may return.
	APIErrorSpec = &mapper.ModelSpec{
		Name: "ApiError",
		Fields: []mapper.FieldSpec{
			{Name: "Error", WireName: "error", Shape: mapper.Composite(ODataErrorSpec)},
		},
	}
)

//nolint:gochecknoinits
func init() {
	ODataErrorSpec.Fields = []mapper.FieldSpec{
		{Name: "Code", WireName: "code", Shape: mapper.String()},
		{Name: "Message", WireName: "message", Shape: mapper.String()},
		{Name: "Target", WireName: "target", Shape: mapper.String()},
		{Name: "Details", WireName: "details", Shape: mapper.Sequence(mapper.Composite(ODataErrorSpec))},
	}
}

// Classify decides the outcome of resp for contract. On a success code with a
// response spec and a body other than empty or null it decodes into out and
// reports true.
// Any other status yields a *media.OperationError.
func Classify(contract *OperationContract, req *media.Request, resp *media.Response, out any) (bool, error) {
	spec, ok := contract.Responses[resp.StatusCode]
	if !ok {
		return false, newOperationError(req, resp)
	}

	if spec == nil || out == nil || isEmptyBody(resp.Body) {
		return false, nil
	}

	err := mapper.Deserialize(spec, resp.Body, out, "result")
	if err != nil {
		var decodeErr *mapper.DecodeError
		if errors.As(err, &decodeErr) {
			return false, &media.DeserializationError{Err: err, Request: req, Response: resp}
		}

		return false, fmt.Errorf("decoding %s response: %w", contract.Name, err)
	}

	return true, nil
}

// isEmptyBody treats a blank body and a bare JSON null as no body.
func isEmptyBody(body []byte) bool {
	trimmed := bytes.TrimSpace(body)

	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func newOperationError(req *media.Request, resp *media.Response) *media.OperationError {
	opErr := &media.OperationError{
		StatusCode: resp.StatusCode,
		Message:    string(resp.Body),
		Request:    req,
		Response:   resp,
	}

	if len(resp.Body) == 0 {
		opErr.Message = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))

		return opErr
	}

	if !gjson.ValidBytes(resp.Body) {
		opErr.ParseErr = fmt.Errorf("error response body: %w", mapper.ErrInvalidJSON)

		return opErr
	}

	doc := gjson.ParseBytes(resp.Body)
	if !doc.IsObject() {
		return opErr
	}

	source := doc
	if inner := doc.Get("error"); inner.IsObject() {
		source = inner
	}

	code := source.Get("code").String()
	message := source.Get("message").String()

	opErr.Code = code

	switch {
	case message != "":
		opErr.Message = message
	case code != "":
		opErr.Message = code
	}

	var body media.APIError

	err := mapper.Deserialize(APIErrorSpec, resp.Body, &body, "error")
	if err != nil {
		opErr.ParseErr = err
	} else {
		opErr.Body = &body
	}

	return opErr
}
