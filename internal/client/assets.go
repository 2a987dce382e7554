package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/media-client/pkg/media"
)

// AssetsClient implements media.AssetsClient.
type AssetsClient struct {
	resources *resourceClient[media.Asset]
}

func assetValues(resourceGroupName, accountName, assetName string) map[string]any {
	values := accountValues(resourceGroupName, accountName)
	values[paramAssetName] = assetName

	return values
}

// List implements media.AssetsClient.List.
func (c *AssetsClient) List(ctx context.Context, resourceGroupName, accountName string, opts *media.ListOptions) (*media.AssetCollection, error) {
	return valueOf(c.ListWithResponse(ctx, resourceGroupName, accountName, opts))
}

// ListWithResponse implements media.AssetsClient.ListWithResponse.
func (c *AssetsClient) ListWithResponse(
	ctx context.Context,
	resourceGroupName, accountName string,
	opts *media.ListOptions,
) (*media.Result[media.AssetCollection], error) {
	return c.resources.list(ctx, accountValues(resourceGroupName, accountName), opts)
}

// ListAll implements media.AssetsClient.ListAll.
func (c *AssetsClient) ListAll(
	ctx context.Context,
	resourceGroupName, accountName string,
	opts *media.ListOptions,
) *media.PaginationIterator[media.Asset] {
	return c.resources.listAll(ctx, accountValues(resourceGroupName, accountName), opts)
}

// ListNext implements media.AssetsClient.ListNext.
func (c *AssetsClient) ListNext(ctx context.Context, nextPageLink string, opts *media.RequestOptions) (*media.AssetCollection, error) {
	return valueOf(c.ListNextWithResponse(ctx, nextPageLink, opts))
}

// ListNextWithResponse implements media.AssetsClient.ListNextWithResponse.
func (c *AssetsClient) ListNextWithResponse(
	ctx context.Context,
	nextPageLink string,
	opts *media.RequestOptions,
) (*media.Result[media.AssetCollection], error) {
	return c.resources.listNext(ctx, nextPageLink, opts)
}

// Get implements media.AssetsClient.Get.
func (c *AssetsClient) Get(ctx context.Context, resourceGroupName, accountName, assetName string, opts *media.RequestOptions) (*media.Asset, error) {
	return valueOf(c.GetWithResponse(ctx, resourceGroupName, accountName, assetName, opts))
}

// GetWithResponse implements media.AssetsClient.GetWithResponse.
func (c *AssetsClient) GetWithResponse(
	ctx context.Context,
	resourceGroupName, accountName, assetName string,
	opts *media.RequestOptions,
) (*media.Result[media.Asset], error) {
	return c.resources.get(ctx, assetValues(resourceGroupName, accountName, assetName), opts)
}

// CreateOrUpdate implements media.AssetsClient.CreateOrUpdate.
func (c *AssetsClient) CreateOrUpdate(
	ctx context.Context,
	resourceGroupName, accountName, assetName string,
	parameters *media.Asset,
	opts *media.RequestOptions,
) (*media.Asset, error) {
	return valueOf(c.CreateOrUpdateWithResponse(ctx, resourceGroupName, accountName, assetName, parameters, opts))
}

// CreateOrUpdateWithResponse implements media.AssetsClient.CreateOrUpdateWithResponse.
func (c *AssetsClient) CreateOrUpdateWithResponse(
	ctx context.Context,
	resourceGroupName, accountName, assetName string,
	parameters *media.Asset,
	opts *media.RequestOptions,
) (*media.Result[media.Asset], error) {
	return c.resources.put(ctx, assetValues(resourceGroupName, accountName, assetName), parameters, opts)
}

// Update implements media.AssetsClient.Update.
func (c *AssetsClient) Update(
	ctx context.Context,
	resourceGroupName, accountName, assetName string,
	parameters *media.Asset,
	opts *media.RequestOptions,
) (*media.Asset, error) {
	return valueOf(c.UpdateWithResponse(ctx, resourceGroupName, accountName, assetName, parameters, opts))
}

// UpdateWithResponse implements media.AssetsClient.UpdateWithResponse.
func (c *AssetsClient) UpdateWithResponse(
	ctx context.Context,
	resourceGroupName, accountName, assetName string,
	parameters *media.Asset,
	opts *media.RequestOptions,
) (*media.Result[media.Asset], error) {
	return c.resources.patch(ctx, assetValues(resourceGroupName, accountName, assetName), parameters, opts)
}

// Delete implements media.AssetsClient.Delete.
func (c *AssetsClient) Delete(ctx context.Context, resourceGroupName, accountName, assetName string, opts *media.RequestOptions) error {
	_, err := c.DeleteWithResponse(ctx, resourceGroupName, accountName, assetName, opts)

	return err
}

// DeleteWithResponse implements media.AssetsClient.DeleteWithResponse.
func (c *AssetsClient) DeleteWithResponse(
	ctx context.Context,
	resourceGroupName, accountName, assetName string,
	opts *media.RequestOptions,
) (*media.Result[media.Empty], error) {
	return c.resources.delete(ctx, assetValues(resourceGroupName, accountName, assetName), opts)
}

// ListContainerSas implements media.AssetsClient.ListContainerSas.
func (c *AssetsClient) ListContainerSas(
	ctx context.Context,
	resourceGroupName, accountName, assetName string,
	parameters *media.ListContainerSasInput,
	opts *media.RequestOptions,
) (*media.AssetContainerSas, error) {
	return valueOf(c.ListContainerSasWithResponse(ctx, resourceGroupName, accountName, assetName, parameters, opts))
}

// ListContainerSasWithResponse implements media.AssetsClient.ListContainerSasWithResponse.
func (c *AssetsClient) ListContainerSasWithResponse(
	ctx context.Context,
	resourceGroupName, accountName, assetName string,
	parameters *media.ListContainerSasInput,
	opts *media.RequestOptions,
) (*media.Result[media.AssetContainerSas], error) {
	ops := c.resources.ops

	var sas media.AssetContainerSas

	values := ops.values(assetValues(resourceGroupName, accountName, assetName), nil, opts.Headers(), parameters)

	res, err := ops.invoke(ctx, listContainerSasContract, values, &sas)
	if err != nil {
		return nil, fmt.Errorf("listing asset container SAS URLs: %w", err)
	}

	return newResult(res, &sas), nil
}
