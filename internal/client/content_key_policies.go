package client

import (
	"context"

	"github.com/fivetwenty-io/media-client/pkg/media"
)

// ContentKeyPoliciesClient implements media.ContentKeyPoliciesClient.
type ContentKeyPoliciesClient struct {
	resources *resourceClient[media.ContentKeyPolicy]
}

func contentKeyPolicyValues(resourceGroupName, accountName, contentKeyPolicyName string) map[string]any {
	values := accountValues(resourceGroupName, accountName)
	values[paramContentKeyPolicyName] = contentKeyPolicyName

	return values
}

// List implements media.ContentKeyPoliciesClient.List.
func (c *ContentKeyPoliciesClient) List(
	ctx context.Context,
	resourceGroupName, accountName string,
	opts *media.ListOptions,
) (*media.ContentKeyPolicyCollection, error) {
	return valueOf(c.ListWithResponse(ctx, resourceGroupName, accountName, opts))
}

// ListWithResponse implements media.ContentKeyPoliciesClient.ListWithResponse.
func (c *ContentKeyPoliciesClient) ListWithResponse(
	ctx context.Context,
	resourceGroupName, accountName string,
	opts *media.ListOptions,
) (*media.Result[media.ContentKeyPolicyCollection], error) {
	return c.resources.list(ctx, accountValues(resourceGroupName, accountName), opts)
}

// ListAll implements media.ContentKeyPoliciesClient.ListAll.
func (c *ContentKeyPoliciesClient) ListAll(
	ctx context.Context,
	resourceGroupName, accountName string,
	opts *media.ListOptions,
) *media.PaginationIterator[media.ContentKeyPolicy] {
	return c.resources.listAll(ctx, accountValues(resourceGroupName, accountName), opts)
}

// ListNext implements media.ContentKeyPoliciesClient.ListNext.
func (c *ContentKeyPoliciesClient) ListNext(
	ctx context.Context,
	nextPageLink string,
	opts *media.RequestOptions,
) (*media.ContentKeyPolicyCollection, error) {
	return valueOf(c.ListNextWithResponse(ctx, nextPageLink, opts))
}

// ListNextWithResponse implements media.ContentKeyPoliciesClient.ListNextWithResponse.
func (c *ContentKeyPoliciesClient) ListNextWithResponse(
	ctx context.Context,
	nextPageLink string,
	opts *media.RequestOptions,
) (*media.Result[media.ContentKeyPolicyCollection], error) {
	return c.resources.listNext(ctx, nextPageLink, opts)
}

// Get implements media.ContentKeyPoliciesClient.Get.
func (c *ContentKeyPoliciesClient) Get(
	ctx context.Context,
	resourceGroupName, accountName, contentKeyPolicyName string,
	opts *media.RequestOptions,
) (*media.ContentKeyPolicy, error) {
	return valueOf(c.GetWithResponse(ctx, resourceGroupName, accountName, contentKeyPolicyName, opts))
}

// GetWithResponse implements media.ContentKeyPoliciesClient.GetWithResponse.
func (c *ContentKeyPoliciesClient) GetWithResponse(
	ctx context.Context,
	resourceGroupName, accountName, contentKeyPolicyName string,
	opts *media.RequestOptions,
) (*media.Result[media.ContentKeyPolicy], error) {
	return c.resources.get(ctx, contentKeyPolicyValues(resourceGroupName, accountName, contentKeyPolicyName), opts)
}

// CreateOrUpdate implements media.ContentKeyPoliciesClient.CreateOrUpdate.
func (c *ContentKeyPoliciesClient) CreateOrUpdate(
	ctx context.Context,
	resourceGroupName, accountName, contentKeyPolicyName string,
	parameters *media.ContentKeyPolicy,
	opts *media.RequestOptions,
) (*media.ContentKeyPolicy, error) {
	return valueOf(c.CreateOrUpdateWithResponse(ctx, resourceGroupName, accountName, contentKeyPolicyName, parameters, opts))
}

// CreateOrUpdateWithResponse implements media.ContentKeyPoliciesClient.CreateOrUpdateWithResponse.
func (c *ContentKeyPoliciesClient) CreateOrUpdateWithResponse(
	ctx context.Context,
	resourceGroupName, accountName, contentKeyPolicyName string,
	parameters *media.ContentKeyPolicy,
	opts *media.RequestOptions,
) (*media.Result[media.ContentKeyPolicy], error) {
	return c.resources.put(ctx, contentKeyPolicyValues(resourceGroupName, accountName, contentKeyPolicyName), parameters, opts)
}

// Delete implements media.ContentKeyPoliciesClient.Delete.
func (c *ContentKeyPoliciesClient) Delete(
	ctx context.Context,
	resourceGroupName, accountName, contentKeyPolicyName string,
	opts *media.RequestOptions,
) error {
	_, err := c.DeleteWithResponse(ctx, resourceGroupName, accountName, contentKeyPolicyName, opts)

	return err
}

// DeleteWithResponse implements media.ContentKeyPoliciesClient.DeleteWithResponse.
func (c *ContentKeyPoliciesClient) DeleteWithResponse(
	ctx context.Context,
	resourceGroupName, accountName, contentKeyPolicyName string,
	opts *media.RequestOptions,
) (*media.Result[media.Empty], error) {
	return c.resources.delete(ctx, contentKeyPolicyValues(resourceGroupName, accountName, contentKeyPolicyName), opts)
}
