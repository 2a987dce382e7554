package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/media-client/internal/constants"
)

// Config represents the CLI configuration.
type Config struct {
	SubscriptionID string `json:"subscription_id,omitempty" yaml:"subscription_id,omitempty"`
	ResourceGroup  string `json:"resource_group,omitempty"  yaml:"resource_group,omitempty"`
	AccountName    string `json:"account_name,omitempty"    yaml:"account_name,omitempty"`

	// Authentication
	TenantID       string     `json:"tenant_id,omitempty"        yaml:"tenant_id,omitempty"`
	ClientID       string     `json:"client_id,omitempty"        yaml:"client_id,omitempty"`
	ClientSecret   string     `json:"client_secret,omitempty"    yaml:"client_secret,omitempty"`
	AuthorityHost  string     `json:"authority_host,omitempty"   yaml:"authority_host,omitempty"`
	AccessToken    string     `json:"access_token,omitempty"     yaml:"access_token,omitempty"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty" yaml:"token_expires_at,omitempty"`

	// Service
	BaseURL    string  `json:"base_url,omitempty"    yaml:"base_url,omitempty"`
	APIVersion string  `json:"api_version,omitempty" yaml:"api_version,omitempty"`
	RateLimit  float64 `json:"rate_limit,omitempty"  yaml:"rate_limit,omitempty"`
	EventsURL  string  `json:"events_url,omitempty"  yaml:"events_url,omitempty"`

	Output string `json:"output" yaml:"output"`
}

// configKeys maps the keys accepted by "config set" to their setters.
//
//nolint:gochecknoglobals
var configKeys = map[string]func(*Config, string) error{
	"subscription_id": stringKey(func(c *Config) *string { return &c.SubscriptionID }),
	"resource_group":  stringKey(func(c *Config) *string { return &c.ResourceGroup }),
	"account_name":    stringKey(func(c *Config) *string { return &c.AccountName }),
	"tenant_id":       stringKey(func(c *Config) *string { return &c.TenantID }),
	"client_id":       stringKey(func(c *Config) *string { return &c.ClientID }),
	"client_secret":   stringKey(func(c *Config) *string { return &c.ClientSecret }),
	"authority_host":  stringKey(func(c *Config) *string { return &c.AuthorityHost }),
	"base_url":        stringKey(func(c *Config) *string { return &c.BaseURL }),
	"api_version":     stringKey(func(c *Config) *string { return &c.APIVersion }),
	"events_url":      stringKey(func(c *Config) *string { return &c.EventsURL }),
	"access_token": func(c *Config, v string) error {
		c.AccessToken = v
		c.TokenExpiresAt = nil

		return nil
	},
	"rate_limit": func(c *Config, v string) error {
		if v == "" {
			c.RateLimit = 0

			return nil
		}

		limit, err := strconv.ParseFloat(v, 64)
		if err != nil || limit < 0 {
			return fmt.Errorf("%w: %q", constants.ErrInvalidRateLimit, v)
		}

		c.RateLimit = limit

		return nil
	},
	"output": func(c *Config, v string) error {
		switch v {
		case "", constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
			c.Output = v

			return nil
		default:
			return fmt.Errorf("%w: %s", constants.ErrUnsupportedFormat, v)
		}
	},
}

func stringKey(field func(*Config) *string) func(*Config, string) error {
	return func(c *Config, v string) error {
		*field(c) = v

		return nil
	}
}

// secretKeys are prompted for when no value is given and masked on display.
//
//nolint:gochecknoglobals
var secretKeys = map[string]bool{
	"client_secret": true,
	"access_token":  true,
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage amsctl configuration including credentials and the default media account",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := maskSecrets(loadConfig())

			return renderOutput(cmd.OutOrStdout(), config, func(table *tablewriter.Table) {
				table.Header("Property", "Value")

				for _, row := range configRows(config) {
					_ = table.Append(row)
				}
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY [VALUE]",
		Short: "Set a configuration value",
		Long: `Set a configuration value. Known keys: ` + strings.Join(configKeyNames(), ", ") + `.

Secrets (client_secret, access_token) are read from the terminal without echo
when VALUE is omitted.`,
		Args: cobra.RangeArgs(1, 2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			setter, ok := configKeys[key]
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			var value string

			switch {
			case len(args) == 2: //nolint:mnd
				value = args[1]
			case secretKeys[key]:
				secret, err := readSecret(cmd.ErrOrStderr(), key)
				if err != nil {
					return err
				}

				value = secret
			default:
				return fmt.Errorf("%w: %s", constants.ErrMissingConfigValue, key)
			}

			config := loadConfig()

			err := setter(config, value)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			display := value
			if secretKeys[key] {
				display = constants.MaskedSecret
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s\n", key, display)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a specific configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			setter, ok := configKeys[key]
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			config := loadConfig()

			err := setter(config, "")
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", key)

			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := configFilePath()
			if err != nil {
				return err
			}

			err = os.Remove(configFile)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cleared all configuration")

			return nil
		},
	}
}

func loadConfig() *Config {
	config := &Config{
		SubscriptionID: viper.GetString("subscription_id"),
		ResourceGroup:  viper.GetString("resource_group"),
		AccountName:    viper.GetString("account_name"),
		TenantID:       viper.GetString("tenant_id"),
		ClientID:       viper.GetString("client_id"),
		ClientSecret:   viper.GetString("client_secret"),
		AuthorityHost:  viper.GetString("authority_host"),
		AccessToken:    viper.GetString("access_token"),
		BaseURL:        viper.GetString("base_url"),
		APIVersion:     viper.GetString("api_version"),
		RateLimit:      viper.GetFloat64("rate_limit"),
		EventsURL:      viper.GetString("events_url"),
		Output:         viper.GetString("output"),
	}

	if viper.IsSet("token_expires_at") {
		expiresAt := viper.GetTime("token_expires_at")
		if !expiresAt.IsZero() {
			config.TokenExpiresAt = &expiresAt
		}
	}

	return config
}

func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", constants.ErrConfigDirResolving, err)
	}

	return filepath.Join(home, ".amsctl", "config.yml"), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	// Later reads in this process see the saved values.
	viper.SetConfigFile(configFile)

	err = viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("failed to reload config file: %w", err)
	}

	return nil
}

func readSecret(prompt io.Writer, key string) (string, error) {
	fd := int(os.Stdin.Fd()) //nolint:gosec // stdin descriptor fits in int
	if !term.IsTerminal(fd) {
		return "", constants.ErrSecretNotProvided
	}

	_, _ = fmt.Fprintf(prompt, "%s: ", key)

	secret, err := term.ReadPassword(fd)

	_, _ = fmt.Fprintln(prompt)

	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}

	return strings.TrimSpace(string(secret)), nil
}

func maskSecrets(config *Config) *Config {
	masked := *config

	if masked.ClientSecret != "" {
		masked.ClientSecret = constants.MaskedSecret
	}

	if masked.AccessToken != "" {
		masked.AccessToken = constants.MaskedSecret
	}

	return &masked
}

func configRows(config *Config) [][]string {
	expiry := ""
	if config.TokenExpiresAt != nil {
		expiry = config.TokenExpiresAt.Format(time.RFC3339)
	}

	rateLimit := ""
	if config.RateLimit > 0 {
		rateLimit = strconv.FormatFloat(config.RateLimit, 'f', -1, 64)
	}

	return [][]string{
		{"Subscription", formatConfigValue(config.SubscriptionID)},
		{"Resource Group", formatConfigValue(config.ResourceGroup)},
		{"Account", formatConfigValue(config.AccountName)},
		{"Tenant", formatConfigValue(config.TenantID)},
		{"Client ID", formatConfigValue(config.ClientID)},
		{"Client Secret", formatConfigValue(config.ClientSecret)},
		{"Access Token", formatConfigValue(config.AccessToken)},
		{"Token Expires", formatConfigValue(expiry)},
		{"Base URL", formatConfigValue(config.BaseURL)},
		{"API Version", formatConfigValue(config.APIVersion)},
		{"Rate Limit", formatConfigValue(rateLimit)},
		{"Events URL", formatConfigValue(config.EventsURL)},
		{"Output", formatConfigValue(config.Output)},
	}
}

func configKeyNames() []string {
	names := make([]string, 0, len(configKeys))
	for name := range configKeys {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func formatConfigValue(value string) string {
	if value == "" {
		return "-"
	}

	return value
}
