package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/media-client/pkg/media"
)

// MediaServicesClient implements media.MediaServicesClient.
type MediaServicesClient struct {
	ops *operations
}

// Get implements media.MediaServicesClient.Get.
func (c *MediaServicesClient) Get(ctx context.Context, resourceGroupName, accountName string, opts *media.RequestOptions) (*media.MediaService, error) {
	return valueOf(c.GetWithResponse(ctx, resourceGroupName, accountName, opts))
}

// GetWithResponse implements media.MediaServicesClient.GetWithResponse.
func (c *MediaServicesClient) GetWithResponse(
	ctx context.Context,
	resourceGroupName, accountName string,
	opts *media.RequestOptions,
) (*media.Result[media.MediaService], error) {
	var account media.MediaService

	values := c.ops.values(accountValues(resourceGroupName, accountName), nil, opts.Headers(), nil)

	res, err := c.ops.invoke(ctx, mediaServiceGetContract, values, &account)
	if err != nil {
		return nil, fmt.Errorf("getting media account: %w", err)
	}

	return newResult(res, &account), nil
}

// SyncStorageKeys implements media.MediaServicesClient.SyncStorageKeys.
func (c *MediaServicesClient) SyncStorageKeys(
	ctx context.Context,
	resourceGroupName, accountName string,
	parameters *media.SyncStorageKeysInput,
	opts *media.RequestOptions,
) error {
	_, err := c.SyncStorageKeysWithResponse(ctx, resourceGroupName, accountName, parameters, opts)

	return err
}

// SyncStorageKeysWithResponse implements media.MediaServicesClient.SyncStorageKeysWithResponse.
func (c *MediaServicesClient) SyncStorageKeysWithResponse(
	ctx context.Context,
	resourceGroupName, accountName string,
	parameters *media.SyncStorageKeysInput,
	opts *media.RequestOptions,
) (*media.Result[media.Empty], error) {
	values := c.ops.values(accountValues(resourceGroupName, accountName), nil, opts.Headers(), parameters)

	res, err := c.ops.invoke(ctx, syncStorageKeysContract, values, nil)
	if err != nil {
		return nil, fmt.Errorf("synchronizing storage keys: %w", err)
	}

	return newResult[media.Empty](res, nil), nil
}
