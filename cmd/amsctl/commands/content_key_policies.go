package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/media-client/internal/constants"
	"github.com/fivetwenty-io/media-client/pkg/media"
	"github.com/fivetwenty-io/media-client/pkg/mediaclient"
)

// NewContentKeyPoliciesCommand creates the content-key-policies command group.
func NewContentKeyPoliciesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "content-key-policies",
		Aliases: []string{"content-key-policy", "ckp"},
		Short:   "Manage content key policies",
		Long:    "List, inspect, create and delete the content key policies of a media account",
	}

	cmd.AddCommand(newContentKeyPoliciesListCommand())
	cmd.AddCommand(newContentKeyPoliciesGetCommand())
	cmd.AddCommand(newContentKeyPoliciesCreateCommand())
	cmd.AddCommand(newContentKeyPoliciesDeleteCommand())

	return cmd
}

func newContentKeyPoliciesListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List content key policies",
		Long:  "List the content key policies of the media account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, client, scope, err := commandContext(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			policies, more, err := listResources(flags,
				func() (*media.ContentKeyPolicyCollection, error) {
					return client.ContentKeyPolicies().List(ctx, scope.resourceGroup, scope.account, flags.options())
				},
				func() *media.PaginationIterator[media.ContentKeyPolicy] {
					return client.ContentKeyPolicies().ListAll(ctx, scope.resourceGroup, scope.account, flags.options())
				})
			if err != nil {
				return fmt.Errorf("failed to list content key policies: %w", err)
			}

			err = renderOutput(cmd.OutOrStdout(), policies, func(table *tablewriter.Table) {
				table.Header("Name", "Description", "Options", "Last Modified")

				for _, policy := range policies {
					_ = table.Append(
						valueOrNA(policy.Name),
						valueOrNA(policy.Description),
						strconv.Itoa(len(policy.Options)),
						formatTime(policy.LastModified),
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

func newContentKeyPoliciesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get POLICY_NAME",
		Short: "Get content key policy details",
		Long:  "Display a content key policy and its options",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, client, scope, err := commandContext(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			policy, err := client.ContentKeyPolicies().Get(ctx, scope.resourceGroup, scope.account, args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to get content key policy: %w", err)
			}

			if policy == nil {
				return fmt.Errorf("content key policy '%s': %w", args[0], constants.ErrResourceNotFound)
			}

			return renderOutput(cmd.OutOrStdout(), policy, func(table *tablewriter.Table) {
				table.Header("Option", "Option ID", "Configuration", "Restriction")

				for _, option := range policy.Options {
					_ = table.Append(
						valueOrNA(option.Name),
						valueOrNA(option.PolicyOptionID),
						odataType(option.Configuration),
						odataType(option.Restriction),
					)
				}
			})
		},
	}
}

func newContentKeyPoliciesCreateCommand() *cobra.Command {
	var (
		description string
		optionsFile string
	)

	cmd := &cobra.Command{
		Use:   "create POLICY_NAME",
		Short: "Create or update a content key policy",
		Long: `Create a content key policy, or replace an existing one. The options are read
from a YAML or JSON file holding a list of options, each with a name, a
configuration and a restriction object carrying its "@odata.type".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := readPolicyOptions(optionsFile)
			if err != nil {
				return err
			}

			parameters := &media.ContentKeyPolicy{Options: options}
			if description != "" {
				parameters.Description = &description
			}

			ctx, client, scope, err := commandContext(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			_, err = client.ContentKeyPolicies().CreateOrUpdate(ctx, scope.resourceGroup, scope.account, args[0], parameters, nil)
			if err != nil {
				return fmt.Errorf("failed to create content key policy: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully created content key policy '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "policy description")
	cmd.Flags().StringVarP(&optionsFile, "options-file", "f", "", "YAML or JSON file with the policy options (required)")
	_ = cmd.MarkFlagRequired("options-file")

	return cmd
}

func newContentKeyPoliciesDeleteCommand() *cobra.Command {
	return createDeleteCommand(deleteConfig{
		Use:        "delete POLICY_NAME",
		Short:      "Delete a content key policy",
		Long:       "Delete a content key policy from the media account",
		EntityType: "content key policy",
		Args:       cobra.ExactArgs(1),
		Name:       func(args []string) string { return args[0] },
		DeleteFunc: func(ctx context.Context, client *mediaclient.Client, scope accountScope, args []string) error {
			return client.ContentKeyPolicies().Delete(ctx, scope.resourceGroup, scope.account, args[0], nil)
		},
	})
}

// readPolicyOptions parses a list of options. JSON input is accepted since it
// is valid YAML.
func readPolicyOptions(path string) ([]media.ContentKeyPolicyOption, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}

	var options []media.ContentKeyPolicyOption

	err = yaml.Unmarshal(data, &options)
	if err != nil {
		return nil, fmt.Errorf("failed to parse options file: %w", err)
	}

	return options, nil
}

func odataType(value any) string {
	object, ok := value.(map[string]any)
	if !ok {
		return constants.NotAvailable
	}

	if odataType, ok := object["@odata.type"].(string); ok {
		return odataType
	}

	return constants.NotAvailable
}
