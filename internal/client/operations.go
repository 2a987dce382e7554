package client

import (
	"context"
	"fmt"
	"maps"

	"github.com/fivetwenty-io/media-client/internal/rest"
	"github.com/fivetwenty-io/media-client/pkg/media"
)

// operations holds the client-wide values every invocation needs.
type operations struct {
	sender         rest.Sender
	baseURL        string
	subscriptionID string
	apiVersion     string
	headers        rest.HeaderOptions
}

// values assembles the request values of one call. The subscription ID is
// always part of the path.
func (o *operations) values(path, query map[string]any, custom map[string]string, body any) rest.RequestValues {
	fullPath := map[string]any{paramSubscriptionID: o.subscriptionID}
	maps.Copy(fullPath, path)

	return rest.RequestValues{
		APIVersion: o.apiVersion,
		Path:       fullPath,
		Query:      query,
		Headers:    o.headerOptions(custom),
		Body:       body,
	}
}

func (o *operations) headerOptions(custom map[string]string) rest.HeaderOptions {
	headers := o.headers
	headers.Custom = custom

	return headers
}

func (o *operations) invoke(
	ctx context.Context,
	contract *rest.OperationContract,
	values rest.RequestValues,
	out any,
) (*rest.Result, error) {
	return rest.Invoke(ctx, o.sender, contract, o.baseURL, values, out)
}

func (o *operations) invokeNext(
	ctx context.Context,
	contract *rest.OperationContract,
	nextLink string,
	custom map[string]string,
	out any,
) (*rest.Result, error) {
	return rest.InvokeNext(ctx, o.sender, contract, nextLink, o.headerOptions(custom), out)
}

// newResult pairs the descriptors of res with value, which is only reported
// when the response body was decoded into it.
func newResult[T any](res *rest.Result, value *T) *media.Result[T] {
	result := &media.Result[T]{Request: res.Request, Response: res.Response}
	if res.Decoded {
		result.Value = value
	}

	return result
}

// accountValues returns the path values shared by account-scoped operations.
func accountValues(resourceGroupName, accountName string) map[string]any {
	return map[string]any{
		paramResourceGroupName: resourceGroupName,
		paramAccountName:       accountName,
	}
}

func listHeaders(opts *media.ListOptions) map[string]string {
	if opts == nil {
		return nil
	}

	return opts.CustomHeaders
}

// resourceClient runs the standard list/get/put/patch/delete operations of
// one child resource of an account.
type resourceClient[T any] struct {
	ops       *operations
	kind      string
	plural    string
	contracts resourceContracts
}

func newResourceClient[T any](ops *operations, kind, plural string, contracts resourceContracts) *resourceClient[T] {
	return &resourceClient[T]{ops: ops, kind: kind, plural: plural, contracts: contracts}
}

func (c *resourceClient[T]) list(
	ctx context.Context,
	path map[string]any,
	opts *media.ListOptions,
) (*media.Result[media.Collection[T]], error) {
	err := opts.Validate()
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.plural, err)
	}

	var page media.Collection[T]

	res, err := c.ops.invoke(ctx, c.contracts.list, c.ops.values(path, opts.Query(), listHeaders(opts), nil), &page)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.plural, err)
	}

	return newResult(res, &page), nil
}

func (c *resourceClient[T]) listNext(
	ctx context.Context,
	nextPageLink string,
	opts *media.RequestOptions,
) (*media.Result[media.Collection[T]], error) {
	var page media.Collection[T]

	res, err := c.ops.invokeNext(ctx, c.contracts.list, nextPageLink, opts.Headers(), &page)
	if err != nil {
		return nil, fmt.Errorf("listing next page of %s: %w", c.plural, err)
	}

	return newResult(res, &page), nil
}

// listAll follows continuation links from the first page until the service
// stops returning one. Custom headers apply to every page.
func (c *resourceClient[T]) listAll(ctx context.Context, path map[string]any, opts *media.ListOptions) *media.PaginationIterator[T] {
	nextOpts := &media.RequestOptions{CustomHeaders: listHeaders(opts)}

	return media.NewPaginationIterator(ctx, func(ctx context.Context, nextLink string) (*media.Collection[T], error) {
		var (
			res *media.Result[media.Collection[T]]
			err error
		)

		if nextLink == "" {
			res, err = c.list(ctx, path, opts)
		} else {
			res, err = c.listNext(ctx, nextLink, nextOpts)
		}

		if err != nil {
			return nil, err
		}

		return res.Value, nil
	})
}

func (c *resourceClient[T]) get(
	ctx context.Context,
	path map[string]any,
	opts *media.RequestOptions,
) (*media.Result[T], error) {
	var value T

	res, err := c.ops.invoke(ctx, c.contracts.get, c.ops.values(path, nil, opts.Headers(), nil), &value)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", c.kind, err)
	}

	return newResult(res, &value), nil
}

func (c *resourceClient[T]) put(
	ctx context.Context,
	path map[string]any,
	parameters *T,
	opts *media.RequestOptions,
) (*media.Result[T], error) {
	return c.write(ctx, c.contracts.put, "creating", path, parameters, opts)
}

func (c *resourceClient[T]) patch(
	ctx context.Context,
	path map[string]any,
	parameters *T,
	opts *media.RequestOptions,
) (*media.Result[T], error) {
	return c.write(ctx, c.contracts.patch, "updating", path, parameters, opts)
}

func (c *resourceClient[T]) write(
	ctx context.Context,
	contract *rest.OperationContract,
	verb string,
	path map[string]any,
	parameters *T,
	opts *media.RequestOptions,
) (*media.Result[T], error) {
	var value T

	res, err := c.ops.invoke(ctx, contract, c.ops.values(path, nil, opts.Headers(), parameters), &value)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", verb, c.kind, err)
	}

	return newResult(res, &value), nil
}

func (c *resourceClient[T]) delete(
	ctx context.Context,
	path map[string]any,
	opts *media.RequestOptions,
) (*media.Result[media.Empty], error) {
	res, err := c.ops.invoke(ctx, c.contracts.delete, c.ops.values(path, nil, opts.Headers(), nil), nil)
	if err != nil {
		return nil, fmt.Errorf("deleting %s: %w", c.kind, err)
	}

	return newResult[media.Empty](res, nil), nil
}

// valueOf unwraps the plain form of an operation from its result form.
func valueOf[T any](result *media.Result[T], err error) (*T, error) {
	if err != nil {
		return nil, err
	}

	return result.Value, nil
}
