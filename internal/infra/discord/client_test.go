//go:build unit

package discord_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"swiss-virtual-airline/internal/infra/discord"
	"swiss-virtual-airline/internal/pkg/config"
	"swiss-virtual-airline/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDiscord struct {
	*httptest.Server
	wantCode    string
	tokenStatus int
	userStatus  int
}

func newFakeDiscord(t *testing.T) *fakeDiscord {
	f := &fakeDiscord{
		wantCode:    "valid-code",
		tokenStatus: http.StatusOK,
		userStatus:  http.StatusOK,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.FormValue("grant_type"))
		assert.NotEmpty(t, r.FormValue("redirect_uri"))

		if f.tokenStatus != http.StatusOK || r.FormValue("code") != f.wantCode {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "fake-access-token",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/users/@me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer fake-access-token", r.Header.Get("Authorization"))

		if f.userStatus != http.StatusOK {
			w.WriteHeader(f.userStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id":            "123456789",
			"username":      "pilot",
			"discriminator": "0042",
			"avatar":        "abc123",
		})
	})

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)
	return f
}

func (f *fakeDiscord) clientConfig() config.DiscordConfig {
	return config.DiscordConfig{
		ClientID:        "test-client-id",
		ClientSecret:    "test-client-secret",
		AuthURL:         f.URL + "/oauth2/authorize",
		TokenURL:        f.URL + "/oauth2/token",
		APIBaseURL:      f.URL,
		ExchangeTimeout: 2 * time.Second,
	}
}

func TestClient_Exchange(t *testing.T) {
	t.Run("valid code yields the Discord identity", func(t *testing.T) {
		fake := newFakeDiscord(t)
		client := discord.NewClient(fake.clientConfig())

		identity, err := client.Exchange(context.Background(), "valid-code", "http://localhost:3000/callback")
		require.NoError(t, err)

		assert.Equal(t, "123456789", identity.ID)
		assert.Equal(t, "pilot", identity.Username)
		assert.Equal(t, "0042", identity.Discriminator)
		assert.Equal(t, "abc123", identity.Avatar)
	})

	t.Run("rejected code maps to the upstream auth sentinel", func(t *testing.T) {
		fake := newFakeDiscord(t)
		client := discord.NewClient(fake.clientConfig())

		_, err := client.Exchange(context.Background(), "wrong-code", "http://localhost:3000/callback")
		assert.ErrorIs(t, err, errs.ErrUpstreamAuth)
	})

	t.Run("profile fetch failure maps to the upstream auth sentinel", func(t *testing.T) {
		fake := newFakeDiscord(t)
		fake.userStatus = http.StatusInternalServerError
		client := discord.NewClient(fake.clientConfig())

		_, err := client.Exchange(context.Background(), "valid-code", "http://localhost:3000/callback")
		assert.ErrorIs(t, err, errs.ErrUpstreamAuth)
	})

	t.Run("unreachable endpoint maps to the upstream auth sentinel", func(t *testing.T) {
		fake := newFakeDiscord(t)
		cfg := fake.clientConfig()
		fake.Close()
		client := discord.NewClient(cfg)

		_, err := client.Exchange(context.Background(), "valid-code", "http://localhost:3000/callback")
		assert.ErrorIs(t, err, errs.ErrUpstreamAuth)
	})
}
