package client

import (
	"github.com/fivetwenty-io/media-client/internal/mapper"
)

// Wire metadata for every model exchanged with the service. Field names are
// the Go field names of the pkg/media models; promoted fields of embedded
// resources resolve through the embedding.
//
//nolint:gochecknoglobals
var (
	resourceSpec = &mapper.ModelSpec{
		Name: "Resource",
		Fields: []mapper.FieldSpec{
			{Name: "ID", WireName: "id", ReadOnly: true, Shape: mapper.String()},
			{Name: "Name", WireName: "name", ReadOnly: true, Shape: mapper.String()},
			{Name: "Type", WireName: "type", ReadOnly: true, Shape: mapper.String()},
		},
	}

	proxyResourceSpec = &mapper.ModelSpec{Name: "ProxyResource", Base: resourceSpec}

	trackedResourceSpec = &mapper.ModelSpec{
		Name: "TrackedResource",
		Base: resourceSpec,
		Fields: []mapper.FieldSpec{
			{Name: "Tags", WireName: "tags", Shape: mapper.Dictionary(mapper.String())},
			{Name: "Location", WireName: "location", Shape: mapper.String()},
		},
	}

	enabledProtocolsSpec = &mapper.ModelSpec{
		Name: "EnabledProtocols",
		Fields: []mapper.FieldSpec{
			{Name: "Download", WireName: "download", Required: true, Shape: mapper.Boolean()},
			{Name: "Dash", WireName: "dash", Required: true, Shape: mapper.Boolean()},
			{Name: "Hls", WireName: "hls", Required: true, Shape: mapper.Boolean()},
			{Name: "SmoothStreaming", WireName: "smoothStreaming", Required: true, Shape: mapper.Boolean()},
		},
	}

	noEncryptionSpec = &mapper.ModelSpec{
		Name: "NoEncryption",
		Fields: []mapper.FieldSpec{
			{Name: "EnabledProtocols", WireName: "enabledProtocols", Shape: mapper.Composite(enabledProtocolsSpec)},
		},
	}

	streamingPolicySpec = &mapper.ModelSpec{
		Name: "StreamingPolicy",
		Base: proxyResourceSpec,
		Fields: []mapper.FieldSpec{
			{Name: "Created", WireName: "properties.created", ReadOnly: true, Shape: mapper.DateTime()},
			{Name: "DefaultContentKeyPolicyName", WireName: "properties.defaultContentKeyPolicyName", Shape: mapper.String()},
			{Name: "NoEncryption", WireName: "properties.noEncryption", Shape: mapper.Composite(noEncryptionSpec)},
		},
	}

	assetSpec = &mapper.ModelSpec{
		Name: "Asset",
		Base: proxyResourceSpec,
		Fields: []mapper.FieldSpec{
			{Name: "AssetID", WireName: "properties.assetId", ReadOnly: true, Shape: mapper.String()},
			{Name: "Created", WireName: "properties.created", ReadOnly: true, Shape: mapper.DateTime()},
			{Name: "LastModified", WireName: "properties.lastModified", ReadOnly: true, Shape: mapper.DateTime()},
			{Name: "AlternateID", WireName: "properties.alternateId", Shape: mapper.String()},
			{Name: "Description", WireName: "properties.description", Shape: mapper.String()},
			{Name: "Container", WireName: "properties.container", Shape: mapper.String()},
			{Name: "StorageAccountID", WireName: "properties.storageAccountId", Shape: mapper.String()},
			{Name: "StorageEncryptionFormat", WireName: "properties.storageEncryptionFormat", Shape: mapper.String()},
			{Name: "StorageEncryptionKey", WireName: "properties.storageEncryptionKey", Shape: mapper.String()},
		},
	}

	listContainerSasInputSpec = &mapper.ModelSpec{
		Name: "ListContainerSasInput",
		Fields: []mapper.FieldSpec{
			{Name: "Permissions", WireName: "permissions", Shape: mapper.Enum("Read", "ReadWrite", "ReadWriteDelete")},
			{Name: "ExpiryTime", WireName: "expiryTime", Shape: mapper.DateTime()},
		},
	}

	assetContainerSasSpec = &mapper.ModelSpec{
		Name: "AssetContainerSas",
		Fields: []mapper.FieldSpec{
			{Name: "AssetContainerSasUrls", WireName: "assetContainerSasUrls", Shape: mapper.Sequence(mapper.String())},
		},
	}

	contentKeyPolicyOptionSpec = &mapper.ModelSpec{
		Name: "ContentKeyPolicyOption",
		Fields: []mapper.FieldSpec{
			{Name: "PolicyOptionID", WireName: "policyOptionId", ReadOnly: true, Shape: mapper.String()},
			{Name: "Name", WireName: "name", Shape: mapper.String()},
			{Name: "Configuration", WireName: "configuration", Required: true, Shape: mapper.Object()},
			{Name: "Restriction", WireName: "restriction", Required: true, Shape: mapper.Object()},
		},
	}

	contentKeyPolicySpec = &mapper.ModelSpec{
		Name: "ContentKeyPolicy",
		Base: proxyResourceSpec,
		Fields: []mapper.FieldSpec{
			{Name: "PolicyID", WireName: "properties.policyId", ReadOnly: true, Shape: mapper.String()},
			{Name: "Created", WireName: "properties.created", ReadOnly: true, Shape: mapper.DateTime()},
			{Name: "LastModified", WireName: "properties.lastModified", ReadOnly: true, Shape: mapper.DateTime()},
			{Name: "Description", WireName: "properties.description", Shape: mapper.String()},
			{
				Name:     "Options",
				WireName: "properties.options",
				Required: true,
				Shape:    mapper.Sequence(mapper.Composite(contentKeyPolicyOptionSpec)),
			},
		},
	}

	hlsSpec = &mapper.ModelSpec{
		Name: "Hls",
		Fields: []mapper.FieldSpec{
			{Name: "FragmentsPerTsSegment", WireName: "fragmentsPerTsSegment", Shape: mapper.Number()},
		},
	}

	liveOutputSpec = &mapper.ModelSpec{
		Name: "LiveOutput",
		Base: proxyResourceSpec,
		Fields: []mapper.FieldSpec{
			{Name: "Description", WireName: "properties.description", Shape: mapper.String()},
			{Name: "AssetName", WireName: "properties.assetName", Shape: mapper.String()},
			{Name: "ArchiveWindowLength", WireName: "properties.archiveWindowLength", Shape: mapper.Duration()},
			{Name: "ManifestName", WireName: "properties.manifestName", Shape: mapper.String()},
			{Name: "Hls", WireName: "properties.hls", Shape: mapper.Composite(hlsSpec)},
			{Name: "OutputSnapTime", WireName: "properties.outputSnapTime", Shape: mapper.Number()},
			{Name: "Created", WireName: "properties.created", ReadOnly: true, Shape: mapper.DateTime()},
			{Name: "LastModified", WireName: "properties.lastModified", ReadOnly: true, Shape: mapper.DateTime()},
			{Name: "ProvisioningState", WireName: "properties.provisioningState", ReadOnly: true, Shape: mapper.String()},
			{
				Name:     "ResourceState",
				WireName: "properties.resourceState",
				ReadOnly: true,
				Shape:    mapper.Enum("Creating", "Running", "Deleting"),
			},
		},
	}

	storageAccountSpec = &mapper.ModelSpec{
		Name: "StorageAccount",
		Fields: []mapper.FieldSpec{
			{Name: "ID", WireName: "id", Shape: mapper.String()},
			{Name: "Type", WireName: "type", Required: true, Shape: mapper.Enum("Primary", "Secondary")},
		},
	}

	mediaServiceSpec = &mapper.ModelSpec{
		Name: "MediaService",
		Base: trackedResourceSpec,
		Fields: []mapper.FieldSpec{
			{Name: "MediaServiceID", WireName: "properties.mediaServiceId", ReadOnly: true, Shape: mapper.String()},
			{
				Name:     "StorageAccounts",
				WireName: "properties.storageAccounts",
				Shape:    mapper.Sequence(mapper.Composite(storageAccountSpec)),
			},
		},
	}

	syncStorageKeysInputSpec = &mapper.ModelSpec{
		Name: "SyncStorageKeysInput",
		Fields: []mapper.FieldSpec{
			{Name: "ID", WireName: "id", Shape: mapper.String()},
		},
	}

	streamingPolicyCollectionSpec  = collectionSpec("StreamingPolicyCollection", streamingPolicySpec)
	assetCollectionSpec            = collectionSpec("AssetCollection", assetSpec)
	contentKeyPolicyCollectionSpec = collectionSpec("ContentKeyPolicyCollection", contentKeyPolicySpec)
	liveOutputCollectionSpec       = collectionSpec("LiveOutputListResult", liveOutputSpec)
)

// collectionSpec describes one page of a list result.
func collectionSpec(name string, item *mapper.ModelSpec) *mapper.ModelSpec {
	return &mapper.ModelSpec{
		Name: name,
		Fields: []mapper.FieldSpec{
			{Name: "Value", WireName: "value", Shape: mapper.Sequence(mapper.Composite(item))},
			{Name: "ODataNextLink", WireName: `@odata\.nextLink`, Shape: mapper.String()},
		},
	}
}
