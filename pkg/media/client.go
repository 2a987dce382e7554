package media

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Client is the main interface for the Media Services management API.
type Client interface {
	StreamingPolicies() StreamingPoliciesClient
	Assets() AssetsClient
	ContentKeyPolicies() ContentKeyPoliciesClient
	LiveOutputs() LiveOutputsClient
	MediaServices() MediaServicesClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Default service settings.
const (
	DefaultBaseURL        = "https://management.azure.com"
	DefaultAPIVersion     = "2018-07-01"
	DefaultAcceptLanguage = "en-US"
	DefaultAuthorityHost  = "https://login.microsoftonline.com"
	DefaultScope          = "https://management.azure.com/.default"
)

// Config represents client configuration for building a media.Client.
//
// # Authentication precedence
//
// The concrete client implementation (see pkg/mediaclient and
// internal/client) picks the first usable option:
//  1. AccessToken: used as a static bearer token.
//  2. TenantID + ClientID + ClientSecret: Azure AD client credentials grant,
//     refreshed automatically before expiry.
//
// When neither is provided requests are sent without an Authorization header,
// which is only useful against test servers.
type Config struct {
	// BaseURL is the management endpoint. mediaclient.New trims a trailing
	// slash, adds "https://" when no scheme is present and defaults to
	// DefaultBaseURL.
	BaseURL string `validate:"omitempty,url"`
	// SubscriptionID identifies the Azure subscription every path is scoped to.
	SubscriptionID string `validate:"required"`
	// APIVersion is sent as the api-version query parameter on every call.
	APIVersion string
	// AcceptLanguage is sent as the accept-language header. Defaults to en-US.
	AcceptLanguage string
	// DisableClientRequestID stops the client from sending a fresh
	// x-ms-client-request-id with each request.
	DisableClientRequestID bool

	// Authentication options (provide one)
	// AccessToken: pre-obtained bearer token.
	AccessToken string
	// TenantID: Azure AD tenant for the client credentials grant.
	TenantID string
	// ClientID: service principal application ID.
	ClientID string `validate:"required_with=ClientSecret"`
	// ClientSecret: service principal secret.
	ClientSecret string `validate:"required_with=ClientID"`
	// TokenURL overrides the token endpoint derived from AuthorityHost and TenantID.
	TokenURL string `validate:"omitempty,url"`
	// AuthorityHost defaults to DefaultAuthorityHost.
	AuthorityHost string `validate:"omitempty,url"`
	// Scopes requested for the token. Defaults to DefaultScope.
	Scopes []string

	// HTTP configuration
	HTTPTimeout  time.Duration `validate:"gte=0"`
	RetryMax     int           `validate:"gte=0"`
	RetryWaitMin time.Duration `validate:"gte=0"`
	RetryWaitMax time.Duration `validate:"gte=0"`
	// RateLimit caps outgoing requests per second. Zero disables limiting.
	RateLimit float64 `validate:"gte=0"`
	// RateBurst is the limiter bucket size. Defaults to 1 when RateLimit is set.
	RateBurst int `validate:"gte=0"`

	// EventsURL is a NATS server URL. When set, a call event is published to
	// EventsSubject after every response.
	EventsURL     string
	EventsSubject string

	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer and helpers.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}

//nolint:gochecknoglobals
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration for missing or malformed values.
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}

	err := validate.Struct(c)
	if err != nil {
		return newConfigError(err)
	}

	return nil
}
