package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/media-client/internal/auth"
	"github.com/fivetwenty-io/media-client/internal/constants"
	"github.com/fivetwenty-io/media-client/pkg/media"
	"github.com/fivetwenty-io/media-client/pkg/mediaclient"
)

// JSON formatting.
const defaultJSONIndent = 2

// renderOutput writes value as JSON or YAML, or builds a table with fill,
// depending on the output setting.
func renderOutput(w io.Writer, value any, fill func(table *tablewriter.Table)) error {
	switch format := viper.GetString("output"); format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", defaultJSONIndent))

		err := encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}

		return nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)

		err := encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return encoder.Close()
	case constants.FormatTable, "":
		table := tablewriter.NewWriter(w)
		fill(table)

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedFormat, format)
	}
}

// CreateClient builds a client from the CLI configuration. Client credentials
// take precedence over a stored token; tokens they obtain are written back to
// the configuration file.
func CreateClient(ctx context.Context) (*mediaclient.Client, error) {
	config := loadConfig()

	if config.SubscriptionID == "" {
		return nil, constants.ErrNoSubscription
	}

	mediaConfig := buildMediaConfig(config)

	if config.ClientID == "" || config.ClientSecret == "" {
		mediaConfig.AccessToken = config.AccessToken

		return mediaclient.New(ctx, mediaConfig)
	}

	tokenManager, err := createTokenManager(config)
	if err != nil {
		return nil, err
	}

	return mediaclient.NewWithTokenManager(ctx, mediaConfig, tokenManager)
}

func buildMediaConfig(config *Config) *media.Config {
	mediaConfig := &media.Config{
		BaseURL:        config.BaseURL,
		SubscriptionID: config.SubscriptionID,
		APIVersion:     config.APIVersion,
		RateLimit:      config.RateLimit,
		EventsURL:      config.EventsURL,
	}

	if viper.GetBool("verbose") {
		mediaConfig.Logger = newCLILogger(os.Stderr)
		mediaConfig.Debug = true
	}

	return mediaConfig
}

func createTokenManager(config *Config) (auth.TokenManager, error) {
	if config.TenantID == "" {
		return nil, constants.ErrTenantRequired
	}

	authorityHost := config.AuthorityHost
	if authorityHost == "" {
		authorityHost = media.DefaultAuthorityHost
	}

	var expiresAt time.Time
	if config.TokenExpiresAt != nil {
		expiresAt = *config.TokenExpiresAt
	}

	return auth.NewConfigTokenManager(
		&auth.OAuth2Config{
			TokenURL:     auth.AzureADTokenURL(authorityHost, config.TenantID),
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Scopes:       []string{media.DefaultScope},
		},
		NewConfigPersister(),
		config.SubscriptionID,
		config.AccessToken,
		expiresAt,
		func(err error) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: could not save token: %v\n", err)
		},
	), nil
}

// accountScope is the resource group and account a command works on.
type accountScope struct {
	resourceGroup string
	account       string
}

func resolveAccountScope() (accountScope, error) {
	scope := accountScope{
		resourceGroup: viper.GetString("resource_group"),
		account:       viper.GetString("account_name"),
	}

	if scope.resourceGroup == "" {
		return scope, constants.ErrNoResourceGroup
	}

	if scope.account == "" {
		return scope, constants.ErrNoAccount
	}

	return scope, nil
}

// commandContext resolves the account scope and creates a client.
func commandContext(cmd *cobra.Command) (context.Context, *mediaclient.Client, accountScope, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	scope, err := resolveAccountScope()
	if err != nil {
		return nil, nil, scope, err
	}

	client, err := CreateClient(ctx)
	if err != nil {
		return nil, nil, scope, err
	}

	return ctx, client, scope, nil
}

// listFlags are the paging and query flags shared by list commands.
type listFlags struct {
	all     bool
	top     int
	filter  string
	orderBy string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.all, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&f.top, "top", 0, "maximum number of results per page")
	cmd.Flags().StringVar(&f.filter, "filter", "", "OData filter expression")
	cmd.Flags().StringVar(&f.orderBy, "orderby", "", "OData order by expression")
}

func (f *listFlags) options() *media.ListOptions {
	opts := media.NewListOptions()

	if f.top > 0 {
		opts.WithTop(f.top)
	}

	if f.filter != "" {
		opts.WithFilter(f.filter)
	}

	if f.orderBy != "" {
		opts.WithOrderBy(f.orderBy)
	}

	return opts
}

// listResources fetches one page, or every page when --all is set, and
// reports whether more pages remain.
func listResources[T any](
	flags *listFlags,
	page func() (*media.Collection[T], error),
	all func() *media.PaginationIterator[T],
) ([]T, bool, error) {
	if flags.all {
		items, err := all().All()

		return items, false, err
	}

	collection, err := page()
	if err != nil {
		return nil, false, err
	}

	return collection.Value, collection.NextLink() != "", nil
}

func printMoreHint(w io.Writer, more bool) {
	if more && viper.GetString("output") == constants.FormatTable {
		_, _ = fmt.Fprintln(w, "\nMore results available. Use --all to fetch all pages.")
	}
}

// deleteConfig describes a delete command.
type deleteConfig struct {
	Use        string
	Short      string
	Long       string
	EntityType string
	Args       cobra.PositionalArgs
	// Name returns the display name of the resource being deleted.
	Name       func(args []string) string
	DeleteFunc func(ctx context.Context, client *mediaclient.Client, scope accountScope, args []string) error
}

func createDeleteCommand(config deleteConfig) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   config.Use,
		Short: config.Short,
		Long:  config.Long,
		Args:  config.Args,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := config.Name(args)
			out := cmd.OutOrStdout()

			if !force && !confirm(cmd.InOrStdin(), out, fmt.Sprintf("Really delete %s '%s'? (y/N): ", config.EntityType, name)) {
				_, _ = fmt.Fprintln(out, "Cancelled")

				return nil
			}

			ctx, client, scope, err := commandContext(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			err = config.DeleteFunc(ctx, client, scope, args)
			if err != nil {
				return fmt.Errorf("failed to delete %s: %w", config.EntityType, err)
			}

			_, _ = fmt.Fprintf(out, "Successfully deleted %s '%s'\n", config.EntityType, name)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	_, _ = fmt.Fprint(out, prompt)

	response, _ := bufio.NewReader(in).ReadString('\n')
	response = strings.TrimSpace(response)

	return response == "y" || response == "Y"
}

func valueOrNA(value *string) string {
	if value == nil || *value == "" {
		return constants.NotAvailable
	}

	return *value
}

func formatTime(value *time.Time) string {
	if value == nil {
		return constants.NotAvailable
	}

	return value.Format(time.RFC3339)
}

func formatBool(value *bool) string {
	if value == nil {
		return constants.NotAvailable
	}

	return strconv.FormatBool(*value)
}

// cliLogger adapts slog to media.Logger.
type cliLogger struct {
	logger *slog.Logger
}

func newCLILogger(w io.Writer) *cliLogger {
	return &cliLogger{logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))}
}

func (l *cliLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, attrs(fields)...)
}

func (l *cliLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, attrs(fields)...)
}

func (l *cliLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, attrs(fields)...)
}

func (l *cliLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, attrs(fields)...)
}

func attrs(fields map[string]interface{}) []any {
	args := make([]any, 0, len(fields))
	for key, value := range fields {
		args = append(args, slog.Any(key, value))
	}

	return args
}
