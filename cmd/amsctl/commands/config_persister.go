package commands

import (
	"fmt"
	"sync"
	"time"

	"github.com/fivetwenty-io/media-client/internal/constants"
)

// ConfigPersister implements the auth.ConfigPersister interface.
type ConfigPersister struct {
	mutex sync.Mutex
}

// NewConfigPersister creates a new config persister.
func NewConfigPersister() *ConfigPersister {
	return &ConfigPersister{}
}

// UpdateToken stores a freshly issued token so the next run can reuse it
// until it expires.
func (p *ConfigPersister) UpdateToken(subscriptionID, token string, expiresAt time.Time) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config := loadConfig()

	if config.SubscriptionID != "" && config.SubscriptionID != subscriptionID {
		return fmt.Errorf("%w: %s", constants.ErrTokenSubscription, subscriptionID)
	}

	config.AccessToken = token
	config.TokenExpiresAt = nil

	if !expiresAt.IsZero() {
		expiry := expiresAt.UTC()
		config.TokenExpiresAt = &expiry
	}

	return saveConfigStruct(config)
}
