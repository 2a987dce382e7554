package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrNoConfigPersister = errors.New("no config persister configured")
)

// ConfigPersister saves a freshly issued token so later runs can reuse it.
type ConfigPersister interface {
	UpdateToken(subscriptionID, token string, expiresAt time.Time) error
}

// ConfigTokenManager wraps OAuth2TokenManager and persists every token it
// obtains. Persistence failures are reported through onPersistError and
// never fail the call.
type ConfigTokenManager struct {
	oauth2Manager   *OAuth2TokenManager
	configPersister ConfigPersister
	subscriptionID  string
	onPersistError  func(error)

	mu          sync.Mutex
	savedToken  string
	savedExpiry time.Time
}

// NewConfigTokenManager creates a config-persisting token manager seeded with
// a previously saved token.
func NewConfigTokenManager(
	config *OAuth2Config,
	persister ConfigPersister,
	subscriptionID, initialToken string,
	initialExpiry time.Time,
	onPersistError func(error),
) *ConfigTokenManager {
	oauth2Manager := NewOAuth2TokenManager(config)

	if initialToken != "" {
		oauth2Manager.SetToken(initialToken, initialExpiry)
	}

	return &ConfigTokenManager{
		oauth2Manager:   oauth2Manager,
		configPersister: persister,
		subscriptionID:  subscriptionID,
		onPersistError:  onPersistError,
		savedToken:      initialToken,
		savedExpiry:     initialExpiry,
	}
}

// GetToken returns a valid access token, persisting it when it changed.
func (m *ConfigTokenManager) GetToken(ctx context.Context) (string, error) {
	token, err := m.oauth2Manager.GetToken(ctx)
	if err != nil {
		return "", err
	}

	m.persistIfChanged()

	return token, nil
}

// RefreshToken forces a token refresh and persists the result.
func (m *ConfigTokenManager) RefreshToken(ctx context.Context) error {
	err := m.oauth2Manager.RefreshToken(ctx)
	if err != nil {
		return err
	}

	m.persistIfChanged()

	return nil
}

// SetToken manually sets the access token without persisting it.
func (m *ConfigTokenManager) SetToken(token string, expiresAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.oauth2Manager.SetToken(token, expiresAt)
	m.savedToken = token
	m.savedExpiry = expiresAt
}

// IsTokenExpiringSoon returns true if the token expires within the given duration.
func (m *ConfigTokenManager) IsTokenExpiringSoon(within time.Duration) bool {
	token := m.oauth2Manager.CurrentToken()
	if token == nil {
		return true
	}

	if token.ExpiresAt.IsZero() {
		return false
	}

	return time.Now().Add(within).After(token.ExpiresAt)
}

func (m *ConfigTokenManager) persistIfChanged() {
	current := m.oauth2Manager.CurrentToken()
	if current == nil {
		return
	}

	m.mu.Lock()
	changed := current.AccessToken != m.savedToken || !current.ExpiresAt.Equal(m.savedExpiry)

	if changed {
		m.savedToken = current.AccessToken
		m.savedExpiry = current.ExpiresAt
	}
	m.mu.Unlock()

	if !changed {
		return
	}

	err := m.persistToken(current)
	if err != nil && m.onPersistError != nil {
		m.onPersistError(err)
	}
}

func (m *ConfigTokenManager) persistToken(token *Token) error {
	if m.configPersister == nil {
		return ErrNoConfigPersister
	}

	err := m.configPersister.UpdateToken(m.subscriptionID, token.AccessToken, token.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to update token: %w", err)
	}

	return nil
}
