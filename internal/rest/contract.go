// Package rest turns operation contracts into HTTP requests and classifies
// the responses that come back.
package rest

import (
	"github.com/fivetwenty-io/media-client/internal/mapper"
)

// ParamKind is the primitive type a path or query parameter must carry.
type ParamKind int

// Parameter kinds.
const (
	ParamString ParamKind = iota
	ParamInt
	ParamBool
)

func (k ParamKind) String() string {
	switch k {
	case ParamInt:
		return "number"
	case ParamBool:
		return "boolean"
	default:
		return "string"
	}
}

// Param declares one path or query parameter. Name is the key callers use in
// RequestValues and, for path parameters, the template placeholder. WireName
// is the query key sent to the service.
type Param struct {
	Name     string
	WireName string
	Kind     ParamKind
	Required bool
}

// OperationContract is the static description of one remote operation.
//
// A status code present in Responses is a success code. A nil spec marks a
// success that carries no body to decode.
type OperationContract struct {
	Name         string
	Method       string
	PathTemplate string
	PathParams   []Param
	QueryParams  []Param
	Body         *mapper.ModelSpec
	BodyName     string
	Responses    map[int]*mapper.ModelSpec
}

// IsSuccess reports whether status is one of the operation's success codes.
func (c *OperationContract) IsSuccess(status int) bool {
	_, ok := c.Responses[status]

	return ok
}

// HeaderOptions are the client-wide header settings applied to every request.
type HeaderOptions struct {
	AcceptLanguage          string
	GenerateClientRequestID bool
	Custom                  map[string]string
}

// RequestValues are the caller-supplied values for one invocation.
type RequestValues struct {
	APIVersion string
	Path       map[string]any
	Query      map[string]any
	Headers    HeaderOptions
	Body       any
}
