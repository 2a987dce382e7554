package mediaclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/media-client/pkg/media"
	"github.com/fivetwenty-io/media-client/pkg/mediaclient"
)

const testSubscription = "00000000-0000-0000-0000-000000000000"

type capturedRequest struct {
	path       string
	apiVersion string
	language   string
	auth       string
}

func newAssetServer(t *testing.T) (*httptest.Server, *[]capturedRequest) {
	t.Helper()

	var (
		mu       sync.Mutex
		captured []capturedRequest
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		captured = append(captured, capturedRequest{
			path:       r.URL.Path,
			apiVersion: r.URL.Query().Get("api-version"),
			language:   r.Header.Get("accept-language"),
			auth:       r.Header.Get("Authorization"),
		})
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"value":[{"name":"a1","properties":{"container":"asset-a1"}}]}`))
	}))
	t.Cleanup(server.Close)

	return server, &captured
}

func TestNew(t *testing.T) {
	t.Parallel()

	client, err := mediaclient.New(context.Background(), &media.Config{SubscriptionID: testSubscription})
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.NotNil(t, client.Assets())
	assert.NotNil(t, client.StreamingPolicies())
	assert.NotNil(t, client.Metrics())
	require.NoError(t, client.Close())
}

func TestNewErrors(t *testing.T) {
	t.Parallel()

	_, err := mediaclient.New(context.Background(), nil)
	require.ErrorIs(t, err, media.ErrNilConfig)

	_, err = mediaclient.New(context.Background(), &media.Config{})
	require.ErrorIs(t, err, media.ErrInvalidConfig)

	_, err = mediaclient.New(context.Background(), &media.Config{
		SubscriptionID: testSubscription,
		ClientID:       "app",
		ClientSecret:   "secret",
	})
	require.Error(t, err)
}

func TestNewAppliesDefaults(t *testing.T) {
	t.Parallel()

	server, captured := newAssetServer(t)

	config := &media.Config{
		BaseURL:        server.URL + "/",
		SubscriptionID: testSubscription,
		AccessToken:    "token",
	}

	client, err := mediaclient.New(context.Background(), config)
	require.NoError(t, err)

	page, err := client.Assets().List(context.Background(), "rg", "acct", nil)
	require.NoError(t, err)
	require.Len(t, page.Value, 1)
	assert.Equal(t, "asset-a1", *page.Value[0].Container)

	require.Len(t, *captured, 1)
	req := (*captured)[0]
	assert.Equal(t, "/subscriptions/"+testSubscription+"/resourceGroups/rg/providers/Microsoft.Media/mediaServices/acct/assets", req.path)
	assert.Equal(t, media.DefaultAPIVersion, req.apiVersion)
	assert.Equal(t, media.DefaultAcceptLanguage, req.language)
	assert.Equal(t, "Bearer token", req.auth)

	assert.Equal(t, server.URL+"/", config.BaseURL, "caller config is not modified")
	assert.Empty(t, config.APIVersion)
}

func TestNewWithAccessToken(t *testing.T) {
	t.Parallel()

	client, err := mediaclient.NewWithAccessToken(context.Background(), testSubscription, "token")
	require.NoError(t, err)
	assert.NotNil(t, client.MediaServices())
}

func TestNewWithClientCredentials(t *testing.T) {
	t.Parallel()

	client, err := mediaclient.NewWithClientCredentials(context.Background(), testSubscription, "contoso.onmicrosoft.com", "app", "secret")
	require.NoError(t, err)
	assert.NotNil(t, client.LiveOutputs())

	_, err = mediaclient.NewWithClientCredentials(context.Background(), testSubscription, "", "app", "secret")
	require.Error(t, err)
}

type fixedTokenManager struct{ token string }

func (m *fixedTokenManager) GetToken(ctx context.Context) (string, error) { return m.token, nil }
func (m *fixedTokenManager) RefreshToken(ctx context.Context) error          { return nil }
func (m *fixedTokenManager) SetToken(token string, expiresAt time.Time)         { m.token = token }

func TestNewWithTokenManager(t *testing.T) {
	t.Parallel()

	server, captured := newAssetServer(t)

	client, err := mediaclient.NewWithTokenManager(context.Background(), &media.Config{
		BaseURL:        server.URL,
		SubscriptionID: testSubscription,
	}, &fixedTokenManager{token: "managed"})
	require.NoError(t, err)

	_, err = client.Assets().List(context.Background(), "rg", "acct", nil)
	require.NoError(t, err)
	require.Len(t, *captured, 1)
	assert.Equal(t, "Bearer managed", (*captured)[0].auth)
}

func TestMetricsAndLogging(t *testing.T) {
	t.Parallel()

	server, _ := newAssetServer(t)
	logger := &recordingLogger{}

	client, err := mediaclient.New(context.Background(), &media.Config{
		BaseURL:        server.URL,
		SubscriptionID: testSubscription,
		Logger:         logger,
		RateLimit:      100,
	})
	require.NoError(t, err)

	for range 2 {
		_, err = client.Assets().List(context.Background(), "rg", "acct", nil)
		require.NoError(t, err)
	}

	metrics, ok := client.Metrics().GetMetrics("GET Assets_List")
	require.True(t, ok)
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Zero(t, metrics.TotalErrors)

	assert.Contains(t, logger.all(), "API Request")
	assert.Contains(t, logger.all(), "API Response")
}

func TestEventsConnectionFailure(t *testing.T) {
	t.Parallel()

	_, err := mediaclient.New(context.Background(), &media.Config{
		SubscriptionID: testSubscription,
		EventsURL:      "nats://127.0.0.1:1",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connecting to events server")
}

type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) record(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.messages = append(l.messages, msg)
}

func (l *recordingLogger) all() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return strings.Join(l.messages, "\n")
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.record(msg) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  { l.record(msg) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  { l.record(msg) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.record(msg) }
