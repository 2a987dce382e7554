package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenServer(t *testing.T, accessToken string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tenant/oauth2/v2.0/token", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		err := r.ParseForm()
		assert.NoError(t, err)
		assert.Equal(t, "client_credentials", r.Form.Get("grant_type"))
		assert.Equal(t, "client-id", r.Form.Get("client_id"))
		assert.Equal(t, "client-secret", r.Form.Get("client_secret"))
		assert.Equal(t, "https://management.azure.com/.default", r.Form.Get("scope"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": accessToken,
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	}))
	t.Cleanup(server.Close)

	return server
}

func TestOAuth2TokenManager_GetToken(t *testing.T) {
	t.Parallel()

	t.Run("returns existing valid token", func(t *testing.T) {
		t.Parallel()

		manager := NewOAuth2TokenManager(&OAuth2Config{AccessToken: "existing-token"})

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "existing-token", token)
	})

	t.Run("uses client credentials when expired", func(t *testing.T) {
		t.Parallel()

		server := tokenServer(t, "client-token")
		manager := NewAzureADTokenManager(server.URL, "tenant", "client-id", "client-secret",
			[]string{"https://management.azure.com/.default"})
		manager.SetToken("expired-token", time.Now().Add(-time.Hour))

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "client-token", token)

		stored := manager.CurrentToken()
		require.NotNil(t, stored)
		assert.True(t, stored.Valid())
		assert.Positive(t, stored.ExpiresIn)
	})

	t.Run("handles token request error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error":             "invalid_client",
				"error_description": "Client authentication failed",
			})
		}))
		defer server.Close()

		manager := NewOAuth2TokenManager(&OAuth2Config{
			TokenURL:     server.URL + "/token",
			ClientID:     "bad-client",
			ClientSecret: "bad-secret",
		})

		token, err := manager.GetToken(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid_client")
		assert.Empty(t, token)
	})

	t.Run("no credentials available", func(t *testing.T) {
		t.Parallel()

		manager := NewOAuth2TokenManager(&OAuth2Config{TokenURL: "http://example.com/token"})

		token, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, ErrNoCredentials)
		assert.Contains(t, err.Error(), "no valid credentials available")
		assert.Empty(t, token)
	})
}

func TestOAuth2TokenManager_SetToken(t *testing.T) {
	t.Parallel()

	manager := NewOAuth2TokenManager(&OAuth2Config{})

	expiresAt := time.Now().Add(1 * time.Hour)
	manager.SetToken("manual-token", expiresAt)

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "manual-token", token)

	storedToken := manager.store.Get()
	assert.Equal(t, "bearer", storedToken.TokenType)
	assert.Equal(t, expiresAt.Unix(), storedToken.ExpiresAt.Unix())
}

func TestOAuth2TokenManager_RefreshToken(t *testing.T) {
	t.Parallel()

	server := tokenServer(t, "refreshed-token")
	manager := NewAzureADTokenManager(server.URL+"/", "tenant", "client-id", "client-secret",
		[]string{"https://management.azure.com/.default"})

	manager.SetToken("current-token", time.Now().Add(1*time.Hour))

	require.NoError(t, manager.RefreshToken(context.Background()))

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "refreshed-token", token)
}

func TestAzureADTokenURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://login.microsoftonline.com/contoso/oauth2/v2.0/token",
		AzureADTokenURL("https://login.microsoftonline.com/", "contoso"))
}

type memoryPersister struct {
	calls   int
	token   string
	expires time.Time
}

func (p *memoryPersister) UpdateToken(subscriptionID, token string, expiresAt time.Time) error {
	p.calls++
	p.token = token
	p.expires = expiresAt

	return nil
}

func TestConfigTokenManager_PersistsNewTokens(t *testing.T) {
	t.Parallel()

	server := tokenServer(t, "fresh-token")
	persister := &memoryPersister{}

	manager := NewConfigTokenManager(&OAuth2Config{
		TokenURL:     AzureADTokenURL(server.URL, "tenant"),
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Scopes:       []string{"https://management.azure.com/.default"},
	}, persister, "sub", "saved-token", time.Now().Add(-time.Minute), nil)

	assert.True(t, manager.IsTokenExpiringSoon(time.Minute))

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
	assert.Equal(t, 1, persister.calls)
	assert.Equal(t, "fresh-token", persister.token)

	_, err = manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, persister.calls, "unchanged token is not persisted again")
}

func TestConfigTokenManager_ReportsMissingPersister(t *testing.T) {
	t.Parallel()

	server := tokenServer(t, "fresh-token")

	var reported error

	manager := NewConfigTokenManager(&OAuth2Config{
		TokenURL:     AzureADTokenURL(server.URL, "tenant"),
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Scopes:       []string{"https://management.azure.com/.default"},
	}, nil, "sub", "", time.Time{}, func(err error) { reported = err })

	require.NoError(t, manager.RefreshToken(context.Background()))
	require.ErrorIs(t, reported, ErrNoConfigPersister)
}
