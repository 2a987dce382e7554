// Package client implements media.Client on top of the contract pipeline in
// internal/rest and the transport in internal/http.
package client

import (
	"context"
	"errors"
	"time"

	"github.com/fivetwenty-io/media-client/internal/auth"
	"github.com/fivetwenty-io/media-client/internal/constants"
	mediahttp "github.com/fivetwenty-io/media-client/internal/http"
	"github.com/fivetwenty-io/media-client/internal/rest"
	"github.com/fivetwenty-io/media-client/pkg/media"
)

// Static errors for err113 compliance.
var (
	ErrTenantRequired           = errors.New("tenant ID is required for client credentials without a token URL")
	ErrStaticTokenCannotRefresh = errors.New("static token cannot be refreshed")
)

var (
	_ media.Client                   = (*Client)(nil)
	_ media.StreamingPoliciesClient  = (*StreamingPoliciesClient)(nil)
	_ media.AssetsClient             = (*AssetsClient)(nil)
	_ media.ContentKeyPoliciesClient = (*ContentKeyPoliciesClient)(nil)
	_ media.LiveOutputsClient        = (*LiveOutputsClient)(nil)
	_ media.MediaServicesClient      = (*MediaServicesClient)(nil)
)

// Client implements the media.Client interface.
type Client struct {
	httpClient   *mediahttp.Client
	tokenManager auth.TokenManager
	ops          *operations

	streamingPolicies  *StreamingPoliciesClient
	assets             *AssetsClient
	contentKeyPolicies *ContentKeyPoliciesClient
	liveOutputs        *LiveOutputsClient
	mediaServices      *MediaServicesClient
}

// New creates a client from config. Extra transport options are applied after
// the ones derived from config.
func New(config *media.Config, opts ...mediahttp.Option) (*Client, error) {
	err := config.Validate()
	if err != nil {
		return nil, err
	}

	tokenManager, err := createTokenManager(config)
	if err != nil {
		return nil, err
	}

	return NewWithTokenManager(config, tokenManager, opts...)
}

// NewWithTokenManager creates a client that authenticates with tokenManager.
// A nil tokenManager sends requests without an Authorization header.
func NewWithTokenManager(config *media.Config, tokenManager auth.TokenManager, opts ...mediahttp.Option) (*Client, error) {
	err := config.Validate()
	if err != nil {
		return nil, err
	}

	httpOpts := append(createHTTPClientOptions(config), opts...)
	httpClient := mediahttp.NewClient(tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		ops: &operations{
			sender:         httpClient,
			baseURL:        config.BaseURL,
			subscriptionID: config.SubscriptionID,
			apiVersion:     config.APIVersion,
			headers: rest.HeaderOptions{
				AcceptLanguage:          config.AcceptLanguage,
				GenerateClientRequestID: !config.DisableClientRequestID,
			},
		},
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.streamingPolicies = &StreamingPoliciesClient{
		resources: newResourceClient[media.StreamingPolicy](c.ops, "streaming policy", "streaming policies", streamingPolicyContracts),
	}
	c.assets = &AssetsClient{
		resources: newResourceClient[media.Asset](c.ops, "asset", "assets", assetContracts),
	}
	c.contentKeyPolicies = &ContentKeyPoliciesClient{
		resources: newResourceClient[media.ContentKeyPolicy](c.ops, "content key policy", "content key policies", contentKeyPolicyContracts),
	}
	c.liveOutputs = &LiveOutputsClient{
		resources: newResourceClient[media.LiveOutput](c.ops, "live output", "live outputs", liveOutputContracts),
	}
	c.mediaServices = &MediaServicesClient{ops: c.ops}
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// StreamingPolicies implements media.Client.StreamingPolicies.
func (c *Client) StreamingPolicies() media.StreamingPoliciesClient {
	return c.streamingPolicies
}

// Assets implements media.Client.Assets.
func (c *Client) Assets() media.AssetsClient {
	return c.assets
}

// ContentKeyPolicies implements media.Client.ContentKeyPolicies.
func (c *Client) ContentKeyPolicies() media.ContentKeyPoliciesClient {
	return c.contentKeyPolicies
}

// LiveOutputs implements media.Client.LiveOutputs.
func (c *Client) LiveOutputs() media.LiveOutputsClient {
	return c.liveOutputs
}

// MediaServices implements media.Client.MediaServices.
func (c *Client) MediaServices() media.MediaServicesClient {
	return c.mediaServices
}

// createTokenManager picks the authentication method described on media.Config.
func createTokenManager(config *media.Config) (auth.TokenManager, error) {
	hasClientCredentials := config.ClientID != "" && config.ClientSecret != ""

	if config.AccessToken != "" && !hasClientCredentials {
		return &staticTokenManager{token: config.AccessToken}, nil
	}

	if !hasClientCredentials {
		return nil, nil //nolint:nilnil // no authentication
	}

	tokenURL := config.TokenURL
	if tokenURL == "" {
		if config.TenantID == "" {
			return nil, ErrTenantRequired
		}

		authorityHost := config.AuthorityHost
		if authorityHost == "" {
			authorityHost = media.DefaultAuthorityHost
		}

		tokenURL = auth.AzureADTokenURL(authorityHost, config.TenantID)
	}

	scopes := config.Scopes
	if len(scopes) == 0 {
		scopes = []string{media.DefaultScope}
	}

	return auth.NewOAuth2TokenManager(&auth.OAuth2Config{
		TokenURL:     tokenURL,
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		Scopes:       scopes,
		AccessToken:  config.AccessToken,
	}), nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *media.Config) []mediahttp.Option {
	var httpOpts []mediahttp.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, mediahttp.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, mediahttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, mediahttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, mediahttp.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, mediahttp.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// staticTokenManager provides a static token.
type staticTokenManager struct {
	token string
}

func (m *staticTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, nil
}

func (m *staticTokenManager) RefreshToken(ctx context.Context) error {
	return ErrStaticTokenCannotRefresh
}

func (m *staticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.token = token
}
