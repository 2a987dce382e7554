package rest

import (
	"context"

	"github.com/fivetwenty-io/media-client/pkg/media"
)

// Sender delivers a request and returns the raw response. Any status code is
// a response; an error means no response was obtained.
type Sender interface {
	Send(ctx context.Context, req *media.Request) (*media.Response, error)
}

// Result is the outcome of one successful invocation.
type Result struct {
	Request  *media.Request
	Response *media.Response
	Decoded  bool
}

// Invoke builds, sends and classifies one call, decoding into out when the
// response carries a body for its status code.
func Invoke(
	ctx context.Context,
	sender Sender,
	contract *OperationContract,
	baseURL string,
	values RequestValues,
	out any,
) (*Result, error) {
	req, err := BuildRequest(contract, baseURL, values)
	if err != nil {
		return nil, err
	}

	return send(ctx, sender, contract, req, out)
}

// InvokeNext follows a continuation link for a list contract.
func InvokeNext(
	ctx context.Context,
	sender Sender,
	contract *OperationContract,
	nextLink string,
	headers HeaderOptions,
	out any,
) (*Result, error) {
	req, err := BuildNextRequest(contract.Name, nextLink, headers)
	if err != nil {
		return nil, err
	}

	return send(ctx, sender, contract, req, out)
}

func send(ctx context.Context, sender Sender, contract *OperationContract, req *media.Request, out any) (*Result, error) {
	resp, err := sender.Send(ctx, req)
	if err != nil {
		return nil, &media.TransportError{Err: err, Request: req}
	}

	decoded, err := Classify(contract, req, resp, out)
	if err != nil {
		return nil, err
	}

	return &Result{Request: req, Response: resp, Decoded: decoded}, nil
}
