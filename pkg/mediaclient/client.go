package mediaclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fivetwenty-io/media-client/internal/auth"
	"github.com/fivetwenty-io/media-client/internal/client"
	"github.com/fivetwenty-io/media-client/internal/constants"
	mediahttp "github.com/fivetwenty-io/media-client/internal/http"
	"github.com/fivetwenty-io/media-client/pkg/media"
)

// Client is a media.Client that also exposes per-operation metrics and owns
// the optional events connection.
type Client struct {
	media.Client

	metrics *media.MetricsCollector
	events  *nats.Conn
}

// New creates an Azure Media Services client. config is copied, so the
// defaults applied here never leak back to the caller.
func New(ctx context.Context, config *media.Config) (*Client, error) {
	return build(ctx, config, client.New)
}

// NewWithTokenManager creates a client that authenticates with tokenManager
// instead of the credentials in config.
func NewWithTokenManager(ctx context.Context, config *media.Config, tokenManager auth.TokenManager) (*Client, error) {
	return build(ctx, config, func(cfg *media.Config, opts ...mediahttp.Option) (*client.Client, error) {
		return client.NewWithTokenManager(cfg, tokenManager, opts...)
	})
}

type innerFactory func(config *media.Config, opts ...mediahttp.Option) (*client.Client, error)

func build(ctx context.Context, config *media.Config, newInner innerFactory) (*Client, error) {
	if config == nil {
		return nil, media.ErrNilConfig
	}

	cfg := *config
	applyDefaults(&cfg)

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	metrics := media.NewMetricsCollector()
	chain := media.NewInterceptorChain()
	chain.AddRequestInterceptor(media.MetricsRequestInterceptor(metrics))

	if cfg.RateLimit > 0 {
		chain.AddRequestInterceptor(media.RateLimitInterceptor(cfg.RateLimit, cfg.RateBurst))
	}

	if cfg.Logger != nil {
		chain.AddRequestInterceptor(media.LoggingInterceptor(cfg.Logger))
		chain.AddResponseInterceptor(media.LoggingResponseInterceptor(cfg.Logger))
	}

	chain.AddResponseInterceptor(media.MetricsResponseInterceptor(metrics))

	var events *nats.Conn

	if cfg.EventsURL != "" {
		events, err = connectEvents(ctx, &cfg)
		if err != nil {
			return nil, err
		}

		chain.AddResponseInterceptor(media.EventPublisherInterceptor(events, cfg.EventsSubject, cfg.Logger))
	}

	inner, err := newInner(&cfg, mediahttp.WithInterceptors(chain))
	if err != nil {
		if events != nil {
			events.Close()
		}

		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return &Client{Client: inner, metrics: metrics, events: events}, nil
}

// Metrics returns the collector fed by every call this client makes. Keys are
// the HTTP method followed by the operation name, e.g. "GET Assets_Get".
func (c *Client) Metrics() *media.MetricsCollector {
	return c.metrics
}

// Close drains and closes the events connection, if any.
func (c *Client) Close() error {
	if c.events == nil {
		return nil
	}

	err := c.events.Drain()
	if err != nil {
		c.events.Close()

		return fmt.Errorf("closing events connection: %w", err)
	}

	return nil
}

func applyDefaults(cfg *media.Config) {
	cfg.BaseURL = normalizeBaseURL(cfg.BaseURL)

	if cfg.APIVersion == "" {
		cfg.APIVersion = media.DefaultAPIVersion
	}

	if cfg.AcceptLanguage == "" {
		cfg.AcceptLanguage = media.DefaultAcceptLanguage
	}

	if cfg.AuthorityHost == "" {
		cfg.AuthorityHost = media.DefaultAuthorityHost
	}

	if len(cfg.Scopes) == 0 {
		cfg.Scopes = []string{media.DefaultScope}
	}

	if cfg.RateLimit > 0 && cfg.RateBurst == 0 {
		cfg.RateBurst = 1
	}

	if cfg.EventsURL != "" && cfg.EventsSubject == "" {
		cfg.EventsSubject = constants.DefaultEventsSubject
	}
}

func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return media.DefaultBaseURL
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

func connectEvents(ctx context.Context, cfg *media.Config) (*nats.Conn, error) {
	opts := []nats.Option{nats.Name(constants.DefaultUserAgent)}

	if deadline, ok := ctx.Deadline(); ok {
		opts = append(opts, nats.Timeout(time.Until(deadline)))
	}

	conn, err := nats.Connect(cfg.EventsURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to events server: %w", err)
	}

	return conn, nil
}

// NewWithAccessToken creates a client that sends a pre-obtained bearer token.
func NewWithAccessToken(ctx context.Context, subscriptionID, accessToken string) (*Client, error) {
	return New(ctx, &media.Config{
		SubscriptionID: subscriptionID,
		AccessToken:    accessToken,
	})
}

// NewWithClientCredentials creates a client that authenticates as a service
// principal of tenantID.
func NewWithClientCredentials(ctx context.Context, subscriptionID, tenantID, clientID, clientSecret string) (*Client, error) {
	return New(ctx, &media.Config{
		SubscriptionID: subscriptionID,
		TenantID:       tenantID,
		ClientID:       clientID,
		ClientSecret:   clientSecret,
	})
}
