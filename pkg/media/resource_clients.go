package media

import "context"

// StreamingPoliciesClient defines operations for streaming policies.
type StreamingPoliciesClient interface {
	List(ctx context.Context, resourceGroupName, accountName string, opts *ListOptions) (*StreamingPolicyCollection, error)
	ListWithResponse(ctx context.Context, resourceGroupName, accountName string, opts *ListOptions) (*Result[StreamingPolicyCollection], error)
	ListAll(ctx context.Context, resourceGroupName, accountName string, opts *ListOptions) *PaginationIterator[StreamingPolicy]
	ListNext(ctx context.Context, nextPageLink string, opts *RequestOptions) (*StreamingPolicyCollection, error)
	ListNextWithResponse(ctx context.Context, nextPageLink string, opts *RequestOptions) (*Result[StreamingPolicyCollection], error)

	// Get returns nil and no error when the policy does not exist.
	Get(ctx context.Context, resourceGroupName, accountName, streamingPolicyName string, opts *RequestOptions) (*StreamingPolicy, error)
	GetWithResponse(ctx context.Context, resourceGroupName, accountName, streamingPolicyName string, opts *RequestOptions) (*Result[StreamingPolicy], error)
	Create(ctx context.Context, resourceGroupName, accountName, streamingPolicyName string, parameters *StreamingPolicy, opts *RequestOptions) (*StreamingPolicy, error)
	CreateWithResponse(ctx context.Context, resourceGroupName, accountName, streamingPolicyName string, parameters *StreamingPolicy, opts *RequestOptions) (*Result[StreamingPolicy], error)
	Delete(ctx context.Context, resourceGroupName, accountName, streamingPolicyName string, opts *RequestOptions) error
	DeleteWithResponse(ctx context.Context, resourceGroupName, accountName, streamingPolicyName string, opts *RequestOptions) (*Result[Empty], error)
}

// AssetsClient defines operations for assets.
type AssetsClient interface {
	List(ctx context.Context, resourceGroupName, accountName string, opts *ListOptions) (*AssetCollection, error)
	ListWithResponse(ctx context.Context, resourceGroupName, accountName string, opts *ListOptions) (*Result[AssetCollection], error)
	ListAll(ctx context.Context, resourceGroupName, accountName string, opts *ListOptions) *PaginationIterator[Asset]
	ListNext(ctx context.Context, nextPageLink string, opts *RequestOptions) (*AssetCollection, error)
	ListNextWithResponse(ctx context.Context, nextPageLink string, opts *RequestOptions) (*Result[AssetCollection], error)

	// Get returns nil and no error when the asset does not exist.
	Get(ctx context.Context, resourceGroupName, accountName, assetName string, opts *RequestOptions) (*Asset, error)
	GetWithResponse(ctx context.Context, resourceGroupName, accountName, assetName string, opts *RequestOptions) (*Result[Asset], error)
	CreateOrUpdate(ctx context.Context, resourceGroupName, accountName, assetName string, parameters *Asset, opts *RequestOptions) (*Asset, error)
	CreateOrUpdateWithResponse(ctx context.Context, resourceGroupName, accountName, assetName string, parameters *Asset, opts *RequestOptions) (*Result[Asset], error)
	Update(ctx context.Context, resourceGroupName, accountName, assetName string, parameters *Asset, opts *RequestOptions) (*Asset, error)
	UpdateWithResponse(ctx context.Context, resourceGroupName, accountName, assetName string, parameters *Asset, opts *RequestOptions) (*Result[Asset], error)
	Delete(ctx context.Context, resourceGroupName, accountName, assetName string, opts *RequestOptions) error
	DeleteWithResponse(ctx context.Context, resourceGroupName, accountName, assetName string, opts *RequestOptions) (*Result[Empty], error)
	ListContainerSas(ctx context.Context, resourceGroupName, accountName, assetName string, parameters *ListContainerSasInput, opts *RequestOptions) (*AssetContainerSas, error)
	ListContainerSasWithResponse(ctx context.Context, resourceGroupName, accountName, assetName string, parameters *ListContainerSasInput, opts *RequestOptions) (*Result[AssetContainerSas], error)
}

// ContentKeyPoliciesClient defines operations for content key policies.
type ContentKeyPoliciesClient interface {
	List(ctx context.Context, resourceGroupName, accountName string, opts *ListOptions) (*ContentKeyPolicyCollection, error)
	ListWithResponse(ctx context.Context, resourceGroupName, accountName string, opts *ListOptions) (*Result[ContentKeyPolicyCollection], error)
	ListAll(ctx context.Context, resourceGroupName, accountName string, opts *ListOptions) *PaginationIterator[ContentKeyPolicy]
	ListNext(ctx context.Context, nextPageLink string, opts *RequestOptions) (*ContentKeyPolicyCollection, error)
	ListNextWithResponse(ctx context.Context, nextPageLink string, opts *RequestOptions) (*Result[ContentKeyPolicyCollection], error)

	// Get returns nil and no error when the policy does not exist.
	Get(ctx context.Context, resourceGroupName, accountName, contentKeyPolicyName string, opts *RequestOptions) (*ContentKeyPolicy, error)
	GetWithResponse(ctx context.Context, resourceGroupName, accountName, contentKeyPolicyName string, opts *RequestOptions) (*Result[ContentKeyPolicy], error)
	CreateOrUpdate(ctx context.Context, resourceGroupName, accountName, contentKeyPolicyName string, parameters *ContentKeyPolicy, opts *RequestOptions) (*ContentKeyPolicy, error)
	CreateOrUpdateWithResponse(ctx context.Context, resourceGroupName, accountName, contentKeyPolicyName string, parameters *ContentKeyPolicy, opts *RequestOptions) (*Result[ContentKeyPolicy], error)
	Delete(ctx context.Context, resourceGroupName, accountName, contentKeyPolicyName string, opts *RequestOptions) error
	DeleteWithResponse(ctx context.Context, resourceGroupName, accountName, contentKeyPolicyName string, opts *RequestOptions) (*Result[Empty], error)
}

// LiveOutputsClient defines operations for the outputs of a live event.
type LiveOutputsClient interface {
	List(ctx context.Context, resourceGroupName, accountName, liveEventName string, opts *ListOptions) (*LiveOutputCollection, error)
	ListWithResponse(ctx context.Context, resourceGroupName, accountName, liveEventName string, opts *ListOptions) (*Result[LiveOutputCollection], error)
	ListAll(ctx context.Context, resourceGroupName, accountName, liveEventName string, opts *ListOptions) *PaginationIterator[LiveOutput]
	ListNext(ctx context.Context, nextPageLink string, opts *RequestOptions) (*LiveOutputCollection, error)
	ListNextWithResponse(ctx context.Context, nextPageLink string, opts *RequestOptions) (*Result[LiveOutputCollection], error)

	// Get returns nil and no error when the output does not exist.
	Get(ctx context.Context, resourceGroupName, accountName, liveEventName, liveOutputName string, opts *RequestOptions) (*LiveOutput, error)
	GetWithResponse(ctx context.Context, resourceGroupName, accountName, liveEventName, liveOutputName string, opts *RequestOptions) (*Result[LiveOutput], error)
	// Create starts a long-running creation; a 202 response carries no body.
	Create(ctx context.Context, resourceGroupName, accountName, liveEventName, liveOutputName string, parameters *LiveOutput, opts *RequestOptions) (*LiveOutput, error)
	CreateWithResponse(ctx context.Context, resourceGroupName, accountName, liveEventName, liveOutputName string, parameters *LiveOutput, opts *RequestOptions) (*Result[LiveOutput], error)
	Delete(ctx context.Context, resourceGroupName, accountName, liveEventName, liveOutputName string, opts *RequestOptions) error
	DeleteWithResponse(ctx context.Context, resourceGroupName, accountName, liveEventName, liveOutputName string, opts *RequestOptions) (*Result[Empty], error)
}

// MediaServicesClient defines account-level operations.
type MediaServicesClient interface {
	Get(ctx context.Context, resourceGroupName, accountName string, opts *RequestOptions) (*MediaService, error)
	GetWithResponse(ctx context.Context, resourceGroupName, accountName string, opts *RequestOptions) (*Result[MediaService], error)
	SyncStorageKeys(ctx context.Context, resourceGroupName, accountName string, parameters *SyncStorageKeysInput, opts *RequestOptions) error
	SyncStorageKeysWithResponse(ctx context.Context, resourceGroupName, accountName string, parameters *SyncStorageKeysInput, opts *RequestOptions) (*Result[Empty], error)
}
