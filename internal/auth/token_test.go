package auth_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/fivetwenty-io/media-client/internal/auth"
)

func TestTokenValidityAroundExpiryBuffer(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := map[string]struct {
		token *auth.Token
		valid bool
	}{
		"nil":                             {token: nil},
		"blank access token":              {token: &auth.Token{ExpiresAt: now.Add(time.Hour)}},
		"zero expiry never lapses":        {token: &auth.Token{AccessToken: "static"}, valid: true},
		"expired":                         {token: &auth.Token{AccessToken: "old", ExpiresAt: now.Add(-time.Minute)}},
		"lapses within the buffer":        {token: &auth.Token{AccessToken: "soon", ExpiresAt: now.Add(10 * time.Second)}},
		"lapses just inside the buffer":   {token: &auth.Token{AccessToken: "edge", ExpiresAt: now.Add(29 * time.Second)}},
		"lapses just outside the buffer":  {token: &auth.Token{AccessToken: "edge", ExpiresAt: now.Add(45 * time.Second)}, valid: true},
		"typical Azure AD token lifetime": {token: &auth.Token{AccessToken: "fresh", ExpiresAt: now.Add(time.Hour)}, valid: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.valid, tt.token.Valid())
		})
	}
}

func TestTokenStoreLifecycle(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore()
	assert.Nil(t, store.Get())

	first := &auth.Token{AccessToken: "first", TokenType: "bearer"}
	store.Set(first)
	assert.Same(t, first, store.Get())

	second := &auth.Token{AccessToken: "second", ExpiresAt: time.Now().Add(time.Hour)}
	store.Set(second)
	assert.Equal(t, "second", store.Get().AccessToken)

	store.Clear()
	assert.Nil(t, store.Get())
	assert.False(t, store.Get().Valid())
}

func TestTokenStoreSharedAcrossGoroutines(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore()
	store.Set(&auth.Token{AccessToken: "seed"})

	var g errgroup.Group

	for i := range 8 {
		g.Go(func() error {
			store.Set(&auth.Token{AccessToken: fmt.Sprintf("writer-%d", i)})

			return nil
		})
		g.Go(func() error {
			if token := store.Get(); token == nil || token.AccessToken == "" {
				return fmt.Errorf("reader %d saw no token", i)
			}

			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.True(t, store.Get().Valid())
}

func TestOAuth2TokenManagerHonoursStoredExpiry(t *testing.T) {
	t.Parallel()

	t.Run("configured token is stored without expiry", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewOAuth2TokenManager(&auth.OAuth2Config{AccessToken: "pre-issued"})

		current := manager.CurrentToken()
		require.NotNil(t, current)
		assert.True(t, current.ExpiresAt.IsZero())

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "pre-issued", token)
	})

	t.Run("token inside the buffer is not handed out", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewOAuth2TokenManager(&auth.OAuth2Config{})
		manager.SetToken("about-to-lapse", time.Now().Add(5*time.Second))

		_, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, auth.ErrNoCredentials)
		assert.Equal(t, "about-to-lapse", manager.CurrentToken().AccessToken)
	})

	t.Run("set token replaces the stored one", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewOAuth2TokenManager(&auth.OAuth2Config{AccessToken: "old"})
		expiresAt := time.Now().Add(time.Hour)
		manager.SetToken("new", expiresAt)

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "new", token)
		assert.Equal(t, expiresAt, manager.CurrentToken().ExpiresAt)
	})
}
