package media

import "time"

// Resource carries the identity every ARM resource reports. All of its fields
// are assigned by the service.
type Resource struct {
	ID   *string `json:"id,omitempty"   yaml:"id,omitempty"`
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
	Type *string `json:"type,omitempty" yaml:"type,omitempty"`
}

// ProxyResource is a resource without a location or tags.
type ProxyResource struct {
	Resource `yaml:",inline"`
}

// TrackedResource is a top-level resource with a location and tags.
type TrackedResource struct {
	Resource `yaml:",inline"`

	Tags     map[string]string `json:"tags,omitempty"     yaml:"tags,omitempty"`
	Location *string           `json:"location,omitempty" yaml:"location,omitempty"`
}

// Empty is the result type of operations that return no body.
type Empty struct{}

// AssetStorageEncryptionFormat is the encryption applied to asset storage.
type AssetStorageEncryptionFormat string

// Asset storage encryption formats.
const (
	AssetStorageEncryptionFormatNone                         AssetStorageEncryptionFormat = "None"
	AssetStorageEncryptionFormatMediaStorageClientEncryption AssetStorageEncryptionFormat = "MediaStorageClientEncryption"
	AssetStorageEncryptionFormatStaticCommonEncryption       AssetStorageEncryptionFormat = "StaticCommonEncryption"
	AssetStorageEncryptionFormatStaticEnvelopeEncryption     AssetStorageEncryptionFormat = "StaticEnvelopeEncryption"
)

// Asset is a container for media files stored in a storage account.
type Asset struct {
	ProxyResource `yaml:",inline"`

	// AssetID is assigned by the service.
	AssetID      *string    `json:"assetId,omitempty"      yaml:"assetId,omitempty"`
	Created      *time.Time `json:"created,omitempty"      yaml:"created,omitempty"`
	LastModified *time.Time `json:"lastModified,omitempty" yaml:"lastModified,omitempty"`

	AlternateID             *string                       `json:"alternateId,omitempty"             yaml:"alternateId,omitempty"`
	Description             *string                       `json:"description,omitempty"             yaml:"description,omitempty"`
	Container               *string                       `json:"container,omitempty"               yaml:"container,omitempty"`
	StorageAccountID        *string                       `json:"storageAccountId,omitempty"        yaml:"storageAccountId,omitempty"`
	StorageEncryptionFormat *AssetStorageEncryptionFormat `json:"storageEncryptionFormat,omitempty" yaml:"storageEncryptionFormat,omitempty"`
	StorageEncryptionKey    *string                       `json:"storageEncryptionKey,omitempty"    yaml:"storageEncryptionKey,omitempty"`
}

// AssetContainerPermission is the access granted by a container SAS URL.
type AssetContainerPermission string

// Container SAS permissions.
const (
	AssetContainerPermissionRead            AssetContainerPermission = "Read"
	AssetContainerPermissionReadWrite       AssetContainerPermission = "ReadWrite"
	AssetContainerPermissionReadWriteDelete AssetContainerPermission = "ReadWriteDelete"
)

// ListContainerSasInput requests SAS URLs for an asset's storage container.
type ListContainerSasInput struct {
	Permissions *AssetContainerPermission `json:"permissions,omitempty" yaml:"permissions,omitempty"`
	ExpiryTime  *time.Time                `json:"expiryTime,omitempty"  yaml:"expiryTime,omitempty"`
}

// AssetContainerSas holds SAS URLs for an asset's storage container.
type AssetContainerSas struct {
	AssetContainerSasUrls []string `json:"assetContainerSasUrls,omitempty" yaml:"assetContainerSasUrls,omitempty"`
}

// EnabledProtocols selects the delivery protocols of a streaming policy.
type EnabledProtocols struct {
	Download        *bool `json:"download"        yaml:"download"`
	Dash            *bool `json:"dash"            yaml:"dash"`
	Hls             *bool `json:"hls"             yaml:"hls"`
	SmoothStreaming *bool `json:"smoothStreaming" yaml:"smoothStreaming"`
}

// NoEncryption configures clear streaming.
type NoEncryption struct {
	EnabledProtocols *EnabledProtocols `json:"enabledProtocols,omitempty" yaml:"enabledProtocols,omitempty"`
}

// StreamingPolicy controls how assets are packaged and protected on delivery.
type StreamingPolicy struct {
	ProxyResource `yaml:",inline"`

	Created                     *time.Time    `json:"created,omitempty"                     yaml:"created,omitempty"`
	DefaultContentKeyPolicyName *string       `json:"defaultContentKeyPolicyName,omitempty" yaml:"defaultContentKeyPolicyName,omitempty"`
	NoEncryption                *NoEncryption `json:"noEncryption,omitempty"                yaml:"noEncryption,omitempty"`
}

// ContentKeyPolicyOption is one key delivery configuration of a policy.
type ContentKeyPolicyOption struct {
	PolicyOptionID *string `json:"policyOptionId,omitempty" yaml:"policyOptionId,omitempty"`
	Name           *string `json:"name,omitempty"           yaml:"name,omitempty"`
	// Configuration and Restriction are polymorphic on the wire and are
	// passed through untouched.
	Configuration any `json:"configuration,omitempty" yaml:"configuration,omitempty"`
	Restriction   any `json:"restriction,omitempty"   yaml:"restriction,omitempty"`
}

// ContentKeyPolicy describes how content keys are delivered to clients.
type ContentKeyPolicy struct {
	ProxyResource `yaml:",inline"`

	PolicyID     *string                  `json:"policyId,omitempty"     yaml:"policyId,omitempty"`
	Created      *time.Time               `json:"created,omitempty"      yaml:"created,omitempty"`
	LastModified *time.Time               `json:"lastModified,omitempty" yaml:"lastModified,omitempty"`
	Description  *string                  `json:"description,omitempty"  yaml:"description,omitempty"`
	Options      []ContentKeyPolicyOption `json:"options,omitempty"      yaml:"options,omitempty"`
}

// Hls configures HLS packaging of a live output.
type Hls struct {
	FragmentsPerTsSegment *int32 `json:"fragmentsPerTsSegment,omitempty" yaml:"fragmentsPerTsSegment,omitempty"`
}

// LiveOutputResourceState is the lifecycle state of a live output.
type LiveOutputResourceState string

// Live output states.
const (
	LiveOutputResourceStateCreating LiveOutputResourceState = "Creating"
	LiveOutputResourceStateRunning  LiveOutputResourceState = "Running"
	LiveOutputResourceStateDeleting LiveOutputResourceState = "Deleting"
)

// LiveOutput archives a live event into an asset.
type LiveOutput struct {
	ProxyResource `yaml:",inline"`

	Description         *string        `json:"description,omitempty"         yaml:"description,omitempty"`
	AssetName           *string        `json:"assetName,omitempty"           yaml:"assetName,omitempty"`
	ArchiveWindowLength *time.Duration `json:"archiveWindowLength,omitempty" yaml:"archiveWindowLength,omitempty"`
	ManifestName        *string        `json:"manifestName,omitempty"        yaml:"manifestName,omitempty"`
	Hls                 *Hls           `json:"hls,omitempty"                 yaml:"hls,omitempty"`
	OutputSnapTime      *int64         `json:"outputSnapTime,omitempty"      yaml:"outputSnapTime,omitempty"`

	Created           *time.Time               `json:"created,omitempty"           yaml:"created,omitempty"`
	LastModified      *time.Time               `json:"lastModified,omitempty"      yaml:"lastModified,omitempty"`
	ProvisioningState *string                  `json:"provisioningState,omitempty" yaml:"provisioningState,omitempty"`
	ResourceState     *LiveOutputResourceState `json:"resourceState,omitempty"     yaml:"resourceState,omitempty"`
}

// StorageAccountType marks the role of a storage account.
type StorageAccountType string

// Storage account roles.
const (
	StorageAccountTypePrimary   StorageAccountType = "Primary"
	StorageAccountTypeSecondary StorageAccountType = "Secondary"
)

// StorageAccount is a storage account attached to a media account.
type StorageAccount struct {
	ID   *string             `json:"id,omitempty"   yaml:"id,omitempty"`
	Type *StorageAccountType `json:"type,omitempty" yaml:"type,omitempty"`
}

// MediaService is a Media Services account.
type MediaService struct {
	TrackedResource `yaml:",inline"`

	MediaServiceID  *string          `json:"mediaServiceId,omitempty"  yaml:"mediaServiceId,omitempty"`
	StorageAccounts []StorageAccount `json:"storageAccounts,omitempty" yaml:"storageAccounts,omitempty"`
}

// SyncStorageKeysInput names the storage account whose keys are synchronized.
type SyncStorageKeysInput struct {
	ID *string `json:"id,omitempty" yaml:"id,omitempty"`
}

// ODataError carries the code and message of a failed call.
type ODataError struct {
	Code    *string      `json:"code,omitempty"    yaml:"code,omitempty"`
	Message *string      `json:"message,omitempty" yaml:"message,omitempty"`
	Target  *string      `json:"target,omitempty"  yaml:"target,omitempty"`
	Details []ODataError `json:"details,omitempty" yaml:"details,omitempty"`
}

// APIError is the error body returned by the service.
type APIError struct {
	Error *ODataError `json:"error,omitempty" yaml:"error,omitempty"`
}

// Collection is one page of a list operation.
type Collection[T any] struct {
	Value         []T     `json:"value"                     yaml:"value"`
	ODataNextLink *string `json:"@odata.nextLink,omitempty" yaml:"nextLink,omitempty"`
}

// NextLink returns the continuation URL, or "" on the last page.
func (c *Collection[T]) NextLink() string {
	if c == nil || c.ODataNextLink == nil {
		return ""
	}

	return *c.ODataNextLink
}

// Collection aliases for list results.
type (
	StreamingPolicyCollection  = Collection[StreamingPolicy]
	AssetCollection            = Collection[Asset]
	ContentKeyPolicyCollection = Collection[ContentKeyPolicy]
	LiveOutputCollection       = Collection[LiveOutput]
)

// Result pairs a decoded value with the request and response descriptors of
// the call that produced it. Value is nil when the response carried no body
// to decode.
type Result[T any] struct {
	Value    *T
	Request  *Request
	Response *Response
}
