package client

import (
	"context"

	"github.com/fivetwenty-io/media-client/pkg/media"
)

// LiveOutputsClient implements media.LiveOutputsClient. Outputs live under a
// live event, so every path carries the event name.
type LiveOutputsClient struct {
	resources *resourceClient[media.LiveOutput]
}

func liveEventValues(resourceGroupName, accountName, liveEventName string) map[string]any {
	values := accountValues(resourceGroupName, accountName)
	values[paramLiveEventName] = liveEventName

	return values
}

func liveOutputValues(resourceGroupName, accountName, liveEventName, liveOutputName string) map[string]any {
	values := liveEventValues(resourceGroupName, accountName, liveEventName)
	values[paramLiveOutputName] = liveOutputName

	return values
}

// List implements media.LiveOutputsClient.List.
func (c *LiveOutputsClient) List(
	ctx context.Context,
	resourceGroupName, accountName, liveEventName string,
	opts *media.ListOptions,
) (*media.LiveOutputCollection, error) {
	return valueOf(c.ListWithResponse(ctx, resourceGroupName, accountName, liveEventName, opts))
}

// ListWithResponse implements media.LiveOutputsClient.ListWithResponse.
func (c *LiveOutputsClient) ListWithResponse(
	ctx context.Context,
	resourceGroupName, accountName, liveEventName string,
	opts *media.ListOptions,
) (*media.Result[media.LiveOutputCollection], error) {
	return c.resources.list(ctx, liveEventValues(resourceGroupName, accountName, liveEventName), opts)
}

// ListAll implements media.LiveOutputsClient.ListAll.
func (c *LiveOutputsClient) ListAll(
	ctx context.Context,
	resourceGroupName, accountName, liveEventName string,
	opts *media.ListOptions,
) *media.PaginationIterator[media.LiveOutput] {
	return c.resources.listAll(ctx, liveEventValues(resourceGroupName, accountName, liveEventName), opts)
}

// ListNext implements media.LiveOutputsClient.ListNext.
func (c *LiveOutputsClient) ListNext(
	ctx context.Context,
	nextPageLink string,
	opts *media.RequestOptions,
) (*media.LiveOutputCollection, error) {
	return valueOf(c.ListNextWithResponse(ctx, nextPageLink, opts))
}

// ListNextWithResponse implements media.LiveOutputsClient.ListNextWithResponse.
func (c *LiveOutputsClient) ListNextWithResponse(
	ctx context.Context,
	nextPageLink string,
	opts *media.RequestOptions,
) (*media.Result[media.LiveOutputCollection], error) {
	return c.resources.listNext(ctx, nextPageLink, opts)
}

// Get implements media.LiveOutputsClient.Get.
func (c *LiveOutputsClient) Get(
	ctx context.Context,
	resourceGroupName, accountName, liveEventName, liveOutputName string,
	opts *media.RequestOptions,
) (*media.LiveOutput, error) {
	return valueOf(c.GetWithResponse(ctx, resourceGroupName, accountName, liveEventName, liveOutputName, opts))
}

// GetWithResponse implements media.LiveOutputsClient.GetWithResponse.
func (c *LiveOutputsClient) GetWithResponse(
	ctx context.Context,
	resourceGroupName, accountName, liveEventName, liveOutputName string,
	opts *media.RequestOptions,
) (*media.Result[media.LiveOutput], error) {
	return c.resources.get(ctx, liveOutputValues(resourceGroupName, accountName, liveEventName, liveOutputName), opts)
}

// Create implements media.LiveOutputsClient.Create. A 202 answer starts a
// long-running creation and yields no value.
func (c *LiveOutputsClient) Create(
	ctx context.Context,
	resourceGroupName, accountName, liveEventName, liveOutputName string,
	parameters *media.LiveOutput,
	opts *media.RequestOptions,
) (*media.LiveOutput, error) {
	return valueOf(c.CreateWithResponse(ctx, resourceGroupName, accountName, liveEventName, liveOutputName, parameters, opts))
}

// CreateWithResponse implements media.LiveOutputsClient.CreateWithResponse.
func (c *LiveOutputsClient) CreateWithResponse(
	ctx context.Context,
	resourceGroupName, accountName, liveEventName, liveOutputName string,
	parameters *media.LiveOutput,
	opts *media.RequestOptions,
) (*media.Result[media.LiveOutput], error) {
	return c.resources.put(ctx, liveOutputValues(resourceGroupName, accountName, liveEventName, liveOutputName), parameters, opts)
}

// Delete implements media.LiveOutputsClient.Delete.
func (c *LiveOutputsClient) Delete(
	ctx context.Context,
	resourceGroupName, accountName, liveEventName, liveOutputName string,
	opts *media.RequestOptions,
) error {
	_, err := c.DeleteWithResponse(ctx, resourceGroupName, accountName, liveEventName, liveOutputName, opts)

	return err
}

// DeleteWithResponse implements media.LiveOutputsClient.DeleteWithResponse.
func (c *LiveOutputsClient) DeleteWithResponse(
	ctx context.Context,
	resourceGroupName, accountName, liveEventName, liveOutputName string,
	opts *media.RequestOptions,
) (*media.Result[media.Empty], error) {
	return c.resources.delete(ctx, liveOutputValues(resourceGroupName, accountName, liveEventName, liveOutputName), opts)
}
