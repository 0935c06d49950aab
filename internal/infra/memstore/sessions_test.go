//go:build unit

package memstore_test

import (
	"testing"
	"time"

	"swiss-virtual-airline/internal/domain/user"
	"swiss-virtual-airline/internal/infra/memstore"
	"swiss-virtual-airline/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testIdentity() user.Identity {
	return user.Identity{
		ID:            "discord-1",
		Username:      "pilot",
		Discriminator: "0042",
		Avatar:        "abc123",
	}
}

func TestSessionStore_IssueAndResolve(t *testing.T) {
	store := memstore.NewSessionStore(time.Hour)

	tok, err := store.Issue(testIdentity(), sessionTime)
	require.NoError(t, err)
	assert.Len(t, tok, 64) // 32 random bytes, hex encoded

	identity, err := store.Resolve(tok, sessionTime.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, testIdentity(), identity)
}

func TestSessionStore_TokensAreIndependent(t *testing.T) {
	store := memstore.NewSessionStore(time.Hour)

	tok1, err := store.Issue(testIdentity(), sessionTime)
	require.NoError(t, err)
	tok2, err := store.Issue(testIdentity(), sessionTime)
	require.NoError(t, err)
	assert.NotEqual(t, tok1, tok2)

	// Revoking one session leaves the other valid.
	store.Revoke(tok1)
	_, err = store.Resolve(tok1, sessionTime)
	assert.ErrorIs(t, err, errs.ErrInvalidSession)
	_, err = store.Resolve(tok2, sessionTime)
	assert.NoError(t, err)
}

func TestSessionStore_Expiry(t *testing.T) {
	store := memstore.NewSessionStore(time.Hour)

	tok, err := store.Issue(testIdentity(), sessionTime)
	require.NoError(t, err)

	// Valid right up to the TTL boundary.
	_, err = store.Resolve(tok, sessionTime.Add(time.Hour))
	assert.NoError(t, err)

	_, err = store.Resolve(tok, sessionTime.Add(time.Hour+time.Second))
	assert.ErrorIs(t, err, errs.ErrInvalidSession)

	// Evicted: still invalid even if the clock goes backwards.
	_, err = store.Resolve(tok, sessionTime)
	assert.ErrorIs(t, err, errs.ErrInvalidSession)
}

func TestSessionStore_ResolveUnknownToken(t *testing.T) {
	store := memstore.NewSessionStore(time.Hour)

	_, err := store.Resolve("deadbeef", sessionTime)
	assert.ErrorIs(t, err, errs.ErrInvalidSession)
}

func TestSessionStore_IdentityUpsert(t *testing.T) {
	store := memstore.NewSessionStore(time.Hour)

	tok, err := store.Issue(testIdentity(), sessionTime)
	require.NoError(t, err)

	// A later login refreshes the stored profile for all live sessions.
	renamed := testIdentity()
	renamed.Username = "captain"
	_, err = store.Issue(renamed, sessionTime)
	require.NoError(t, err)

	identity, err := store.Resolve(tok, sessionTime)
	require.NoError(t, err)
	assert.Equal(t, "captain", identity.Username)
}
