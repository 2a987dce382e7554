package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	mediahttp "github.com/fivetwenty-io/media-client/internal/http"
	"github.com/fivetwenty-io/media-client/pkg/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInterceptor = errors.New("blocked")

// MockTokenManager for testing.
type MockTokenManager struct {
	mu        sync.Mutex
	token     string
	refreshed string
	refreshes int
	err       error
}

func (m *MockTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.token, m.err
}

func (m *MockTokenManager) RefreshToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.refreshes++
	if m.refreshed != "" {
		m.token = m.refreshed
	}

	return nil
}

func (m *MockTokenManager) SetToken(token string, expiresAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
}

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) add(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.add("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.add("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.add("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.add("error", msg, fields) }

func (l *MockLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, 0, len(l.logs))
	for _, entry := range l.logs {
		msg, _ := entry["msg"].(string)
		out = append(out, msg)
	}

	return out
}

func fastRetries() mediahttp.Option {
	return mediahttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Send(t *testing.T) {
	t.Parallel()

	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/subscriptions/s/assets", request.URL.Path)
			assert.Equal(t, "api-version=2018-07-01", request.URL.RawQuery)
			assert.Equal(t, http.MethodGet, request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "en-US", request.Header.Get("accept-language"))
			assert.NotEmpty(t, request.Header.Get("User-Agent"))

			_, _ = writer.Write([]byte(`{"value":[]}`))
		}))
		defer server.Close()

		client := mediahttp.NewClient(&MockTokenManager{token: "test-token"})

		req := &media.Request{
			Method:  http.MethodGet,
			URL:     server.URL + "/subscriptions/s/assets?api-version=2018-07-01",
			Headers: http.Header{"Accept-Language": []string{"en-US"}},
		}

		resp, err := client.Send(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"value":[]}`, resp.BodyText())
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPut, request.Method)
			assert.Equal(t, "application/json; charset=utf-8", request.Header.Get("Content-Type"))

			body, _ := io.ReadAll(request.Body)
			assert.JSONEq(t, `{"properties":{"description":"d"}}`, string(body))

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := mediahttp.NewClient(nil)

		req := &media.Request{
			Method:  http.MethodPut,
			URL:     server.URL + "/assets/a",
			Headers: http.Header{"Content-Type": []string{"application/json; charset=utf-8"}},
			Body:    []byte(`{"properties":{"description":"d"}}`),
		}

		resp, err := client.Send(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("error status is returned as a response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"error":{"code":"NotFound"}}`))
		}))
		defer server.Close()

		client := mediahttp.NewClient(nil)

		resp, err := client.Send(context.Background(), &media.Request{Method: http.MethodGet, URL: server.URL})
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, resp.BodyText(), "NotFound")
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := mediahttp.NewClient(nil, mediahttp.WithLogger(logger), mediahttp.WithDebug(true))

		_, err := client.Send(context.Background(), &media.Request{Method: http.MethodGet, URL: server.URL})
		require.NoError(t, err)

		messages := logger.messages()
		assert.Contains(t, messages, "HTTP Request")
		assert.Contains(t, messages, "HTTP Response")
	})

	t.Run("without debug nothing is logged", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := mediahttp.NewClient(nil, mediahttp.WithLogger(logger))

		_, err := client.Send(context.Background(), &media.Request{Method: http.MethodGet, URL: server.URL})
		require.NoError(t, err)
		assert.Empty(t, logger.messages())
	})

	t.Run("connection failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		url := server.URL
		server.Close()

		client := mediahttp.NewClient(nil, mediahttp.WithRetryConfig(0, time.Millisecond, time.Millisecond))

		resp, err := client.Send(context.Background(), &media.Request{Method: http.MethodGet, URL: url})
		require.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestClient_Interceptors(t *testing.T) {
	t.Parallel()

	t.Run("request and response interceptors run", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "intercepted", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		var seenStatus int

		chain := media.NewInterceptorChain()
		chain.AddRequestInterceptor(media.HeaderInterceptor(map[string]string{"X-Custom-Header": "intercepted"}))
		chain.AddResponseInterceptor(func(ctx context.Context, req *media.Request, resp *media.Response) error {
			seenStatus = resp.StatusCode

			return nil
		})

		client := mediahttp.NewClient(nil, mediahttp.WithInterceptors(chain))

		_, err := client.Send(context.Background(), &media.Request{Method: http.MethodDelete, URL: server.URL})
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, seenStatus)
	})

	t.Run("failing request interceptor prevents the call", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			calls.Add(1)
		}))
		defer server.Close()

		chain := media.NewInterceptorChain()
		chain.AddRequestInterceptor(func(ctx context.Context, req *media.Request) error {
			return errInterceptor
		})

		client := mediahttp.NewClient(nil, mediahttp.WithInterceptors(chain))

		_, err := client.Send(context.Background(), &media.Request{Method: http.MethodGet, URL: server.URL})
		require.ErrorIs(t, err, errInterceptor)
		assert.Equal(t, int32(0), calls.Load())
	})
}

func TestClient_RefreshesTokenOnUnauthorized(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Header.Get("Authorization") != "Bearer fresh" {
			writer.WriteHeader(http.StatusUnauthorized)

			return
		}

		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	tokens := &MockTokenManager{token: "stale", refreshed: "fresh"}
	client := mediahttp.NewClient(tokens)

	resp, err := client.Send(context.Background(), &media.Request{Method: http.MethodGet, URL: server.URL})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, tokens.refreshes)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()

	t.Run("retries on 5xx errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := mediahttp.NewClient(nil, fastRetries())

		resp, err := client.Send(context.Background(), &media.Request{Method: http.MethodGet, URL: server.URL})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(3), attempts.Load())
	})

	t.Run("retries on rate limiting", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) < 2 {
				writer.WriteHeader(http.StatusTooManyRequests)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := mediahttp.NewClient(nil, fastRetries())

		resp, err := client.Send(context.Background(), &media.Request{Method: http.MethodGet, URL: server.URL})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(2), attempts.Load())
	})

	t.Run("returns last response when retries are exhausted", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := mediahttp.NewClient(nil, fastRetries())

		resp, err := client.Send(context.Background(), &media.Request{Method: http.MethodGet, URL: server.URL})
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, int32(4), attempts.Load())
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := mediahttp.NewClient(nil, fastRetries())

		resp, err := client.Send(context.Background(), &media.Request{Method: http.MethodGet, URL: server.URL})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, int32(1), attempts.Load())
	})
}
