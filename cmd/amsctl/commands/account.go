package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/media-client/internal/constants"
	"github.com/fivetwenty-io/media-client/pkg/media"
)

// NewAccountCommand creates the account command group.
func NewAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Inspect the media account",
		Long:  "Show the media account and synchronize the keys of its storage accounts",
	}

	cmd.AddCommand(newAccountShowCommand())
	cmd.AddCommand(newAccountSyncStorageKeysCommand())

	return cmd
}

func newAccountShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the media account",
		Long:  "Display the media account and its storage accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, client, scope, err := commandContext(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			account, err := client.MediaServices().Get(ctx, scope.resourceGroup, scope.account, nil)
			if err != nil {
				return fmt.Errorf("failed to get media account: %w", err)
			}

			if account == nil {
				return fmt.Errorf("media account '%s': %w", scope.account, constants.ErrResourceNotFound)
			}

			return renderOutput(cmd.OutOrStdout(), account, func(table *tablewriter.Table) {
				table.Header("Storage Account", "Type")

				for _, storage := range account.StorageAccounts {
					storageType := constants.NotAvailable
					if storage.Type != nil {
						storageType = string(*storage.Type)
					}

					_ = table.Append(valueOrNA(storage.ID), storageType)
				}
			})
		},
	}
}

func newAccountSyncStorageKeysCommand() *cobra.Command {
	var storageAccountID string

	cmd := &cobra.Command{
		Use:   "sync-storage-keys",
		Short: "Synchronize storage account keys",
		Long:  "Make the media account pick up rotated keys of an attached storage account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, client, scope, err := commandContext(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			err = client.MediaServices().SyncStorageKeys(ctx, scope.resourceGroup, scope.account, &media.SyncStorageKeysInput{ID: &storageAccountID}, nil)
			if err != nil {
				return fmt.Errorf("failed to synchronize storage keys: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Synchronized keys of storage account '%s'\n", storageAccountID)

			return nil
		},
	}

	cmd.Flags().StringVar(&storageAccountID, "storage-account-id", "", "ARM resource ID of the storage account (required)")
	_ = cmd.MarkFlagRequired("storage-account-id")

	return cmd
}
