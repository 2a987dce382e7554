package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/media-client/internal/constants"
	"github.com/fivetwenty-io/media-client/internal/storage"
	"github.com/fivetwenty-io/media-client/pkg/media"
	"github.com/fivetwenty-io/media-client/pkg/mediaclient"
)

// NewAssetsCommand creates the assets command group.
func NewAssetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assets",
		Aliases: []string{"asset"},
		Short:   "Manage assets",
		Long:    "List and manage media assets and upload files into their storage containers",
	}

	cmd.AddCommand(newAssetsListCommand())
	cmd.AddCommand(newAssetsGetCommand())
	cmd.AddCommand(newAssetsCreateCommand())
	cmd.AddCommand(newAssetsUpdateCommand())
	cmd.AddCommand(newAssetsDeleteCommand())
	cmd.AddCommand(newAssetsContainerSasCommand())
	cmd.AddCommand(newAssetsUploadCommand())

	return cmd
}

func newAssetsListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assets",
		Long:  "List the assets of the media account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, client, scope, err := commandContext(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			assets, more, err := listResources(flags,
				func() (*media.AssetCollection, error) {
					return client.Assets().List(ctx, scope.resourceGroup, scope.account, flags.options())
				},
				func() *media.PaginationIterator[media.Asset] {
					return client.Assets().ListAll(ctx, scope.resourceGroup, scope.account, flags.options())
				})
			if err != nil {
				return fmt.Errorf("failed to list assets: %w", err)
			}

			err = renderOutput(cmd.OutOrStdout(), assets, func(table *tablewriter.Table) {
				table.Header("Name", "Container", "Description", "Created")

				for _, asset := range assets {
					_ = table.Append(valueOrNA(asset.Name), valueOrNA(asset.Container), valueOrNA(asset.Description), formatTime(asset.Created))
				}
			})
			if err != nil {
				return err
			}

			printMoreHint(cmd.OutOrStdout(), more)

			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func newAssetsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ASSET_NAME",
		Short: "Get asset details",
		Long:  "Display detailed information about a specific asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, client, scope, err := commandContext(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			asset, err := client.Assets().Get(ctx, scope.resourceGroup, scope.account, args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to get asset: %w", err)
			}

			if asset == nil {
				return fmt.Errorf("asset '%s': %w", args[0], constants.ErrResourceNotFound)
			}

			return renderOutput(cmd.OutOrStdout(), asset, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("Name", valueOrNA(asset.Name))
				_ = table.Append("Asset ID", valueOrNA(asset.AssetID))
				_ = table.Append("Alternate ID", valueOrNA(asset.AlternateID))
				_ = table.Append("Description", valueOrNA(asset.Description))
				_ = table.Append("Container", valueOrNA(asset.Container))
				_ = table.Append("Storage Account ID", valueOrNA(asset.StorageAccountID))
				_ = table.Append("Created", formatTime(asset.Created))
				_ = table.Append("Last Modified", formatTime(asset.LastModified))
			})
		},
	}
}

// assetFlags are the writable asset properties.
type assetFlags struct {
	alternateID      string
	description      string
	container        string
	storageAccountID string
}

func (f *assetFlags) register(cmd *cobra.Command, withPlacement bool) {
	cmd.Flags().StringVar(&f.alternateID, "alternate-id", "", "alternate ID of the asset")
	cmd.Flags().StringVar(&f.description, "description", "", "asset description")

	if withPlacement {
		cmd.Flags().StringVar(&f.container, "container", "", "blob container name")
		cmd.Flags().StringVar(&f.storageAccountID, "storage-account-id", "", "ARM resource ID of the storage account")
	}
}

func (f *assetFlags) asset(cmd *cobra.Command) *media.Asset {
	asset := &media.Asset{}

	if cmd.Flags().Changed("alternate-id") {
		asset.AlternateID = &f.alternateID
	}

	if cmd.Flags().Changed("description") {
		asset.Description = &f.description
	}

	if f.container != "" {
		asset.Container = &f.container
	}

	if f.storageAccountID != "" {
		asset.StorageAccountID = &f.storageAccountID
	}

	return asset
}

func newAssetsCreateCommand() *cobra.Command {
	flags := &assetFlags{}

	cmd := &cobra.Command{
		Use:   "create ASSET_NAME",
		Short: "Create or update an asset",
		Long:  "Create an asset, or replace the properties of an existing one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, client, scope, err := commandContext(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			asset, err := client.Assets().CreateOrUpdate(ctx, scope.resourceGroup, scope.account, args[0], flags.asset(cmd), nil)
			if err != nil {
				return fmt.Errorf("failed to create asset: %w", err)
			}

			containerName := constants.NotAvailable
			if asset != nil {
				containerName = valueOrNA(asset.Container)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully created asset '%s' (container: %s)\n", args[0], containerName)

			return nil
		},
	}

	flags.register(cmd, true)

	return cmd
}

func newAssetsUpdateCommand() *cobra.Command {
	flags := &assetFlags{}

	cmd := &cobra.Command{
		Use:   "update ASSET_NAME",
		Short: "Update an asset",
		Long:  "Update the alternate ID or description of an existing asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, client, scope, err := commandContext(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			_, err = client.Assets().Update(ctx, scope.resourceGroup, scope.account, args[0], flags.asset(cmd), nil)
			if err != nil {
				return fmt.Errorf("failed to update asset: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully updated asset '%s'\n", args[0])

			return nil
		},
	}

	flags.register(cmd, false)

	return cmd
}

func newAssetsDeleteCommand() *cobra.Command {
	return createDeleteCommand(deleteConfig{
		Use:        "delete ASSET_NAME",
		Short:      "Delete an asset",
		Long:       "Delete an asset and its storage container",
		EntityType: "asset",
		Args:       cobra.ExactArgs(1),
		Name:       func(args []string) string { return args[0] },
		DeleteFunc: func(ctx context.Context, client *mediaclient.Client, scope accountScope, args []string) error {
			return client.Assets().Delete(ctx, scope.resourceGroup, scope.account, args[0], nil)
		},
	})
}

func newAssetsContainerSasCommand() *cobra.Command {
	var (
		permissions string
		expiry      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "container-sas ASSET_NAME",
		Short: "List SAS URLs of an asset container",
		Long:  "Request SAS URLs granting access to the storage container of an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, client, scope, err := commandContext(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			sas, err := listContainerSas(ctx, client, scope, args[0], media.AssetContainerPermission(permissions), expiry)
			if err != nil {
				return err
			}

			return renderOutput(cmd.OutOrStdout(), sas, func(table *tablewriter.Table) {
				table.Header("#", "SAS URL")

				for i, url := range sas.AssetContainerSasUrls {
					_ = table.Append(strconv.Itoa(i+1), url)
				}
			})
		},
	}

	cmd.Flags().StringVar(&permissions, "permissions", string(media.AssetContainerPermissionRead), "granted permissions (Read, ReadWrite, ReadWriteDelete)")
	cmd.Flags().DurationVar(&expiry, "expiry", constants.DefaultSasExpiry, "how long the URLs stay valid")

	return cmd
}

func newAssetsUploadCommand() *cobra.Command {
	var (
		concurrency int
		create      bool
	)

	cmd := &cobra.Command{
		Use:   "upload ASSET_NAME FILE...",
		Short: "Upload files into an asset",
		Long: `Upload local files into the storage container of an asset. Each file becomes
a blob named after the file. With --create the asset is created first.`,
		Args: cobra.MinimumNArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, client, scope, err := commandContext(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			assetName, paths := args[0], args[1:]

			if create {
				_, err = client.Assets().CreateOrUpdate(ctx, scope.resourceGroup, scope.account, assetName, &media.Asset{}, nil)
				if err != nil {
					return fmt.Errorf("failed to create asset: %w", err)
				}
			}

			sas, err := listContainerSas(ctx, client, scope, assetName, media.AssetContainerPermissionReadWrite, constants.DefaultSasExpiry)
			if err != nil {
				return err
			}

			sasURL, err := storage.PrimarySasURL(sas)
			if err != nil {
				return err
			}

			results, err := newUploader(concurrency).UploadFiles(ctx, sasURL, paths)
			if err != nil {
				return err
			}

			return renderOutput(cmd.OutOrStdout(), results, func(table *tablewriter.Table) {
				table.Header("File", "Blob", "Size")

				for _, result := range results {
					_ = table.Append(result.Path, result.BlobName, strconv.FormatInt(result.Size, 10))
				}
			})
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", constants.DefaultUploadConcurrency, "number of files uploaded at once")
	cmd.Flags().BoolVar(&create, "create", false, "create the asset before uploading")

	return cmd
}

func listContainerSas(
	ctx context.Context,
	client *mediaclient.Client,
	scope accountScope,
	assetName string,
	permissions media.AssetContainerPermission,
	validFor time.Duration,
) (*media.AssetContainerSas, error) {
	permission := media.AssetContainerPermission(strings.TrimSpace(string(permissions)))
	expiryTime := time.Now().UTC().Add(validFor)

	sas, err := client.Assets().ListContainerSas(ctx, scope.resourceGroup, scope.account, assetName, &media.ListContainerSasInput{
		Permissions: &permission,
		ExpiryTime:  &expiryTime,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list container SAS URLs: %w", err)
	}

	if sas == nil {
		return nil, constants.ErrNoContainerSas
	}

	return sas, nil
}

func newUploader(concurrency int) *storage.Uploader {
	opts := []storage.Option{
		storage.WithConcurrency(concurrency),
		storage.WithClientOptions(&container.ClientOptions{
			ClientOptions: azcore.ClientOptions{
				Transport: &http.Client{Timeout: constants.ExtendedHTTPTimeout},
			},
		}),
	}

	if viper.GetBool("verbose") {
		opts = append(opts, storage.WithLogger(newCLILogger(os.Stderr)))
	}

	return storage.NewUploader(opts...)
}
