package spotify

import (
	"context"
	"os"
	"sync"
	"time"

	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.uber.org/zap"
	"golang.org/x/oauth2/clientcredentials"

	"previewfm/blueprint"
)

// tokenSafetyMargin is how long before the reported expiry we stop trusting a
// cached token. Spotify app tokens last about an hour.
const tokenSafetyMargin = time.Minute

// TokenCache holds the single app-wide client-credentials token. The token
// never leaves the proxy process; handlers only ever see catalog payloads.
type TokenCache struct {
	mu        sync.Mutex
	config    *clientcredentials.Config
	logger    *zap.Logger
	now       func() time.Time
	token     string
	expiresAt time.Time
}

func NewTokenCache(credentials *blueprint.IntegrationCredentials, logger *zap.Logger) *TokenCache {
	tokenURL := os.Getenv("SPOTIFY_TOKEN_URL")
	if tokenURL == "" {
		tokenURL = spotifyauth.TokenURL
	}
	return &TokenCache{
		config: &clientcredentials.Config{
			ClientID:     credentials.AppID,
			ClientSecret: credentials.AppSecret,
			TokenURL:     tokenURL,
		},
		logger: logger,
		now:    time.Now,
	}
}

// GetToken returns the cached token while it is still inside the safety
// margin, otherwise performs one client-credentials grant. Concurrent callers
// that observe an expired token wait on the same refresh rather than each
// issuing their own.
func (c *TokenCache) GetToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.expiresAt.Add(-tokenSafetyMargin)) {
		return c.token, nil
	}

	token, err := c.config.Token(ctx)
	if err != nil {
		c.logger.Error("[services][spotify][auth][GetToken] error - could not fetch spotify token", zap.Error(err))
		return "", blueprint.EUPSTREAMAUTH
	}

	c.token = token.AccessToken
	c.expiresAt = token.Expiry
	return c.token, nil
}
