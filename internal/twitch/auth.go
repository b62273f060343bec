package twitch

import (
	"context"
	"time"

	"github.com/askorupa/adbot/internal/config"

	"golang.org/x/oauth2"
)

// twitchEndpoint is Twitch's OAuth2 token endpoint, used for refresh-token
// grants.
var twitchEndpoint = oauth2.Endpoint{
	AuthURL:  "https://id.twitch.tv/oauth2/authorize",
	TokenURL: "https://id.twitch.tv/oauth2/token",
}

// NewTokenSource builds the chat token source. With a client id/secret and
// refresh token it auto-refreshes; otherwise the configured token is used
// as-is.
func NewTokenSource(ctx context.Context, cfg config.Twitch) oauth2.TokenSource {
	static := &oauth2.Token{AccessToken: cfg.Token}
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RefreshToken == "" {
		return oauth2.StaticTokenSource(static)
	}
	conf := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     twitchEndpoint,
	}
	// Expired seed forces a refresh on first use, so stale configured
	// tokens never reach the IRC handshake.
	seed := &oauth2.Token{
		AccessToken:  cfg.Token,
		RefreshToken: cfg.RefreshToken,
		Expiry:       time.Now().Add(-time.Minute),
	}
	return conf.TokenSource(ctx, seed)
}
