package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/media-client/internal/constants"
	"github.com/fivetwenty-io/media-client/pkg/media"
	"github.com/fivetwenty-io/media-client/pkg/mediaclient"
)

// NewStreamingPoliciesCommand creates the streaming-policies command group.
func NewStreamingPoliciesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "streaming-policies",
		Aliases: []string{"streaming-policy", "sp"},
		Short:   "Manage streaming policies",
		Long:    "List, inspect, create and delete the streaming policies of a media account",
	}

	cmd.AddCommand(newStreamingPoliciesListCommand())
	cmd.AddCommand(newStreamingPoliciesGetCommand())
	cmd.AddCommand(newStreamingPoliciesCreateCommand())
	cmd.AddCommand(newStreamingPoliciesDeleteCommand())

	return cmd
}

func newStreamingPoliciesListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List streaming policies",
		Long:  "List the streaming policies of the media account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, client, scope, err := commandContext(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			policies, more, err := listResources(flags,
				func() (*media.StreamingPolicyCollection, error) {
					return client.StreamingPolicies().List(ctx, scope.resourceGroup, scope.account, flags.options())
				},
				func() *media.PaginationIterator[media.StreamingPolicy] {
					return client.StreamingPolicies().ListAll(ctx, scope.resourceGroup, scope.account, flags.options())
				})
			if err != nil {
				return fmt.Errorf("failed to list streaming policies: %w", err)
			}

			err = renderOutput(cmd.OutOrStdout(), policies, func(table *tablewriter.Table) {
				table.Header("Name", "Default Content Key Policy", "Protocols", "Created")

				for _, policy := range policies {
					_ = table.Append(
						valueOrNA(policy.Name),
						valueOrNA(policy.DefaultContentKeyPolicyName),
						formatProtocols(policy.NoEncryption),
						formatTime(policy.Created),
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

func newStreamingPoliciesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get POLICY_NAME",
		Short: "Get streaming policy details",
		Long:  "Display detailed information about a specific streaming policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, client, scope, err := commandContext(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			policy, err := client.StreamingPolicies().Get(ctx, scope.resourceGroup, scope.account, args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to get streaming policy: %w", err)
			}

			if policy == nil {
				return fmt.Errorf("streaming policy '%s': %w", args[0], constants.ErrResourceNotFound)
			}

			return renderOutput(cmd.OutOrStdout(), policy, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("Name", valueOrNA(policy.Name))
				_ = table.Append("ID", valueOrNA(policy.ID))
				_ = table.Append("Default Content Key Policy", valueOrNA(policy.DefaultContentKeyPolicyName))
				_ = table.Append("Protocols", formatProtocols(policy.NoEncryption))
				_ = table.Append("Created", formatTime(policy.Created))
			})
		},
	}
}

func newStreamingPoliciesCreateCommand() *cobra.Command {
	var (
		contentKeyPolicy string
		protocols        []string
	)

	cmd := &cobra.Command{
		Use:   "create POLICY_NAME",
		Short: "Create a streaming policy",
		Long: `Create a streaming policy. With --protocols the policy streams in the clear
over the listed protocols (dash, hls, smooth-streaming, download).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parameters := &media.StreamingPolicy{}

			if contentKeyPolicy != "" {
				parameters.DefaultContentKeyPolicyName = &contentKeyPolicy
			}

			if len(protocols) > 0 {
				enabled, err := parseProtocols(protocols)
				if err != nil {
					return err
				}

				parameters.NoEncryption = &media.NoEncryption{EnabledProtocols: enabled}
			}

			ctx, client, scope, err := commandContext(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			_, err = client.StreamingPolicies().Create(ctx, scope.resourceGroup, scope.account, args[0], parameters, nil)
			if err != nil {
				return fmt.Errorf("failed to create streaming policy: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully created streaming policy '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&contentKeyPolicy, "default-content-key-policy", "", "default content key policy name")
	cmd.Flags().StringSliceVar(&protocols, "protocols", nil, "clear streaming protocols (dash, hls, smooth-streaming, download)")

	return cmd
}

func newStreamingPoliciesDeleteCommand() *cobra.Command {
	return createDeleteCommand(deleteConfig{
		Use:        "delete POLICY_NAME",
		Short:      "Delete a streaming policy",
		Long:       "Delete a streaming policy from the media account",
		EntityType: "streaming policy",
		Args:       cobra.ExactArgs(1),
		Name:       func(args []string) string { return args[0] },
		DeleteFunc: func(ctx context.Context, client *mediaclient.Client, scope accountScope, args []string) error {
			return client.StreamingPolicies().Delete(ctx, scope.resourceGroup, scope.account, args[0], nil)
		},
	})
}

func parseProtocols(names []string) (*media.EnabledProtocols, error) {
	enabled := &media.EnabledProtocols{
		Download:        new(bool),
		Dash:            new(bool),
		Hls:             new(bool),
		SmoothStreaming: new(bool),
	}

	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "download":
			*enabled.Download = true
		case "dash":
			*enabled.Dash = true
		case "hls":
			*enabled.Hls = true
		case "smooth-streaming", "smoothstreaming", "smooth":
			*enabled.SmoothStreaming = true
		default:
			return nil, fmt.Errorf("%w: %s", constants.ErrUnknownProtocol, name)
		}
	}

	return enabled, nil
}

func formatProtocols(noEncryption *media.NoEncryption) string {
	if noEncryption == nil || noEncryption.EnabledProtocols == nil {
		return constants.NotAvailable
	}

	protocols := noEncryption.EnabledProtocols

	var names []string

	for _, p := range []struct {
		name    string
		enabled *bool
	}{
		{"Dash", protocols.Dash},
		{"Hls", protocols.Hls},
		{"SmoothStreaming", protocols.SmoothStreaming},
		{"Download", protocols.Download},
	} {
		if p.enabled != nil && *p.enabled {
			names = append(names, p.name)
		}
	}

	if len(names) == 0 {
		return "none"
	}

	return strings.Join(names, ", ")
}
