package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"swiss-virtual-airline/internal/domain/user"
	"swiss-virtual-airline/internal/pkg/config"
	"swiss-virtual-airline/internal/pkg/errs"
)

// Client exchanges a Discord authorization code for a verified identity.
// Endpoint URLs are configurable so tests can point at a local server.
type Client struct {
	oauth      *oauth2.Config
	apiBaseURL string
	timeout    time.Duration
}

func NewClient(cfg config.DiscordConfig) *Client {
	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
			Scopes: []string{"identify"},
		},
		apiBaseURL: cfg.APIBaseURL,
		timeout:    cfg.ExchangeTimeout,
	}
}

// Exchange runs the code-for-token exchange and fetches the user profile.
// The whole round trip is timeout-bounded; callers must not hold any ledger
// lock while it is in flight.
func (c *Client) Exchange(ctx context.Context, code, redirectURI string) (user.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	tok, err := c.oauth.Exchange(ctx, code, oauth2.SetAuthURLParam("redirect_uri", redirectURI))
	if err != nil {
		return user.Identity{}, errs.Mark(errs.Wrap(err, "discord code exchange failed"), errs.ErrUpstreamAuth)
	}

	return c.fetchIdentity(ctx, tok)
}

func (c *Client) fetchIdentity(ctx context.Context, tok *oauth2.Token) (user.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"/users/@me", nil)
	if err != nil {
		return user.Identity{}, errs.Wrap(err, "failed to build profile request")
	}

	resp, err := c.oauth.Client(ctx, tok).Do(req)
	if err != nil {
		return user.Identity{}, errs.Mark(errs.Wrap(err, "discord profile fetch failed"), errs.ErrUpstreamAuth)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return user.Identity{}, errs.Mark(
			errs.New(fmt.Sprintf("discord profile fetch returned status %d", resp.StatusCode)),
			errs.ErrUpstreamAuth,
		)
	}

	var payload struct {
		ID            string `json:"id"`
		Username      string `json:"username"`
		Discriminator string `json:"discriminator"`
		Avatar        string `json:"avatar"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return user.Identity{}, errs.Mark(errs.Wrap(err, "discord profile decode failed"), errs.ErrUpstreamAuth)
	}

	return user.Identity{
		ID:            payload.ID,
		Username:      payload.Username,
		Discriminator: payload.Discriminator,
		Avatar:        payload.Avatar,
	}, nil
}
