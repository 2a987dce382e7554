package client

import (
	"context"

	"github.com/fivetwenty-io/media-client/pkg/media"
)

// StreamingPoliciesClient implements media.StreamingPoliciesClient.
type StreamingPoliciesClient struct {
	resources *resourceClient[media.StreamingPolicy]
}

func streamingPolicyValues(resourceGroupName, accountName, streamingPolicyName string) map[string]any {
	values := accountValues(resourceGroupName, accountName)
	values[paramStreamingPolicyName] = streamingPolicyName

	return values
}

// List implements media.StreamingPoliciesClient.List.
func (c *StreamingPoliciesClient) List(
	ctx context.Context,
	resourceGroupName, accountName string,
	opts *media.ListOptions,
) (*media.StreamingPolicyCollection, error) {
	return valueOf(c.ListWithResponse(ctx, resourceGroupName, accountName, opts))
}

// ListWithResponse implements media.StreamingPoliciesClient.ListWithResponse.
func (c *StreamingPoliciesClient) ListWithResponse(
	ctx context.Context,
	resourceGroupName, accountName string,
	opts *media.ListOptions,
) (*media.Result[media.StreamingPolicyCollection], error) {
	return c.resources.list(ctx, accountValues(resourceGroupName, accountName), opts)
}

// ListAll implements media.StreamingPoliciesClient.ListAll.
func (c *StreamingPoliciesClient) ListAll(
	ctx context.Context,
	resourceGroupName, accountName string,
	opts *media.ListOptions,
) *media.PaginationIterator[media.StreamingPolicy] {
	return c.resources.listAll(ctx, accountValues(resourceGroupName, accountName), opts)
}

// ListNext implements media.StreamingPoliciesClient.ListNext.
func (c *StreamingPoliciesClient) ListNext(
	ctx context.Context,
	nextPageLink string,
	opts *media.RequestOptions,
) (*media.StreamingPolicyCollection, error) {
	return valueOf(c.ListNextWithResponse(ctx, nextPageLink, opts))
}

// ListNextWithResponse implements media.StreamingPoliciesClient.ListNextWithResponse.
func (c *StreamingPoliciesClient) ListNextWithResponse(
	ctx context.Context,
	nextPageLink string,
	opts *media.RequestOptions,
) (*media.Result[media.StreamingPolicyCollection], error) {
	return c.resources.listNext(ctx, nextPageLink, opts)
}

// Get implements media.StreamingPoliciesClient.Get.
func (c *StreamingPoliciesClient) Get(
	ctx context.Context,
	resourceGroupName, accountName, streamingPolicyName string,
	opts *media.RequestOptions,
) (*media.StreamingPolicy, error) {
	return valueOf(c.GetWithResponse(ctx, resourceGroupName, accountName, streamingPolicyName, opts))
}

// GetWithResponse implements media.StreamingPoliciesClient.GetWithResponse.
func (c *StreamingPoliciesClient) GetWithResponse(
	ctx context.Context,
	resourceGroupName, accountName, streamingPolicyName string,
	opts *media.RequestOptions,
) (*media.Result[media.StreamingPolicy], error) {
	return c.resources.get(ctx, streamingPolicyValues(resourceGroupName, accountName, streamingPolicyName), opts)
}

// Create implements media.StreamingPoliciesClient.Create.
func (c *StreamingPoliciesClient) Create(
	ctx context.Context,
	resourceGroupName, accountName, streamingPolicyName string,
	parameters *media.StreamingPolicy,
	opts *media.RequestOptions,
) (*media.StreamingPolicy, error) {
	return valueOf(c.CreateWithResponse(ctx, resourceGroupName, accountName, streamingPolicyName, parameters, opts))
}

// CreateWithResponse implements media.StreamingPoliciesClient.CreateWithResponse.
func (c *StreamingPoliciesClient) CreateWithResponse(
	ctx context.Context,
	resourceGroupName, accountName, streamingPolicyName string,
	parameters *media.StreamingPolicy,
	opts *media.RequestOptions,
) (*media.Result[media.StreamingPolicy], error) {
	return c.resources.put(ctx, streamingPolicyValues(resourceGroupName, accountName, streamingPolicyName), parameters, opts)
}

// Delete implements media.StreamingPoliciesClient.Delete.
func (c *StreamingPoliciesClient) Delete(
	ctx context.Context,
	resourceGroupName, accountName, streamingPolicyName string,
	opts *media.RequestOptions,
) error {
	_, err := c.DeleteWithResponse(ctx, resourceGroupName, accountName, streamingPolicyName, opts)

	return err
}

// DeleteWithResponse implements media.StreamingPoliciesClient.DeleteWithResponse.
func (c *StreamingPoliciesClient) DeleteWithResponse(
	ctx context.Context,
	resourceGroupName, accountName, streamingPolicyName string,
	opts *media.RequestOptions,
) (*media.Result[media.Empty], error) {
	return c.resources.delete(ctx, streamingPolicyValues(resourceGroupName, accountName, streamingPolicyName), opts)
}
