package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/sosodev/duration"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/media-client/internal/constants"
	"github.com/fivetwenty-io/media-client/pkg/media"
	"github.com/fivetwenty-io/media-client/pkg/mediaclient"
)

// NewLiveOutputsCommand creates the live-outputs command group.
func NewLiveOutputsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "live-outputs",
		Aliases: []string{"live-output", "lo"},
		Short:   "Manage live outputs",
		Long:    "List and manage the outputs that archive a live event into an asset",
	}

	cmd.AddCommand(newLiveOutputsListCommand())
	cmd.AddCommand(newLiveOutputsGetCommand())
	cmd.AddCommand(newLiveOutputsCreateCommand())
	cmd.AddCommand(newLiveOutputsDeleteCommand())

	return cmd
}

func newLiveOutputsListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list LIVE_EVENT_NAME",
		Short: "List live outputs",
		Long:  "List the outputs of a live event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, client, scope, err := commandContext(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			outputs, more, err := listResources(flags,
				func() (*media.LiveOutputCollection, error) {
					return client.LiveOutputs().List(ctx, scope.resourceGroup, scope.account, args[0], flags.options())
				},
				func() *media.PaginationIterator[media.LiveOutput] {
					return client.LiveOutputs().ListAll(ctx, scope.resourceGroup, scope.account, args[0], flags.options())
				})
			if err != nil {
				return fmt.Errorf("failed to list live outputs: %w", err)
			}

			err = renderOutput(cmd.OutOrStdout(), outputs, func(table *tablewriter.Table) {
				table.Header("Name", "Asset", "Archive Window", "State")

				for _, output := range outputs {
					_ = table.Append(
						valueOrNA(output.Name),
						valueOrNA(output.AssetName),
						formatArchiveWindow(output.ArchiveWindowLength),
						formatResourceState(output.ResourceState),
					)
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

func newLiveOutputsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get LIVE_EVENT_NAME OUTPUT_NAME",
		Short: "Get live output details",
		Long:  "Display detailed information about a live output",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, client, scope, err := commandContext(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			output, err := client.LiveOutputs().Get(ctx, scope.resourceGroup, scope.account, args[0], args[1], nil)
			if err != nil {
				return fmt.Errorf("failed to get live output: %w", err)
			}

			if output == nil {
				return fmt.Errorf("live output '%s/%s': %w", args[0], args[1], constants.ErrResourceNotFound)
			}

			return renderOutput(cmd.OutOrStdout(), output, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("Name", valueOrNA(output.Name))
				_ = table.Append("Description", valueOrNA(output.Description))
				_ = table.Append("Asset", valueOrNA(output.AssetName))
				_ = table.Append("Archive Window", formatArchiveWindow(output.ArchiveWindowLength))
				_ = table.Append("Manifest", valueOrNA(output.ManifestName))
				_ = table.Append("Provisioning State", valueOrNA(output.ProvisioningState))
				_ = table.Append("Resource State", formatResourceState(output.ResourceState))
				_ = table.Append("Created", formatTime(output.Created))
			})
		},
	}
}

func newLiveOutputsCreateCommand() *cobra.Command {
	var (
		assetName     string
		archiveWindow string
		manifestName  string
		description   string
	)

	cmd := &cobra.Command{
		Use:   "create LIVE_EVENT_NAME OUTPUT_NAME",
		Short: "Create a live output",
		Long: `Create a live output that archives the live event into an asset. The archive
window accepts a Go duration (25m) or an ISO 8601 duration (PT25M).`,
		Args: cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			parameters := &media.LiveOutput{AssetName: &assetName}

			if archiveWindow != "" {
				window, err := parseArchiveWindow(archiveWindow)
				if err != nil {
					return err
				}

				parameters.ArchiveWindowLength = &window
			}

			if manifestName != "" {
				parameters.ManifestName = &manifestName
			}

			if description != "" {
				parameters.Description = &description
			}

			ctx, client, scope, err := commandContext(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			output, err := client.LiveOutputs().Create(ctx, scope.resourceGroup, scope.account, args[0], args[1], parameters, nil)
			if err != nil {
				return fmt.Errorf("failed to create live output: %w", err)
			}

			if output == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Creating live output '%s'...\n", args[1])

				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully created live output '%s'\n", args[1])

			return nil
		},
	}

	cmd.Flags().StringVar(&assetName, "asset", "", "asset that receives the archive (required)")
	cmd.Flags().StringVar(&archiveWindow, "archive-window", "", "length of the archive window")
	cmd.Flags().StringVar(&manifestName, "manifest", "", "manifest name")
	cmd.Flags().StringVar(&description, "description", "", "output description")
	_ = cmd.MarkFlagRequired("asset")

	return cmd
}

func newLiveOutputsDeleteCommand() *cobra.Command {
	return createDeleteCommand(deleteConfig{
		Use:        "delete LIVE_EVENT_NAME OUTPUT_NAME",
		Short:      "Delete a live output",
		Long:       "Stop archiving and delete a live output. The asset is kept.",
		EntityType: "live output",
		Args:       cobra.ExactArgs(2), //nolint:mnd
		Name:       func(args []string) string { return strings.Join(args, "/") },
		DeleteFunc: func(ctx context.Context, client *mediaclient.Client, scope accountScope, args []string) error {
			return client.LiveOutputs().Delete(ctx, scope.resourceGroup, scope.account, args[0], args[1], nil)
		},
	})
}

func parseArchiveWindow(value string) (time.Duration, error) {
	window, err := time.ParseDuration(value)
	if err == nil {
		return window, nil
	}

	iso, err := duration.Parse(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", constants.ErrInvalidDuration, value)
	}

	return iso.ToTimeDuration(), nil
}

func formatArchiveWindow(window *time.Duration) string {
	if window == nil {
		return constants.NotAvailable
	}

	return window.String()
}

func formatResourceState(state *media.LiveOutputResourceState) string {
	if state == nil {
		return constants.NotAvailable
	}

	return string(*state)
}
