//go:build unit

package memstore_test

import (
	"testing"
	"time"

	"swiss-virtual-airline/internal/domain/rewards"
	"swiss-virtual-airline/internal/infra/memstore"
	"swiss-virtual-airline/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rewardsTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newRewardsStore() *memstore.RewardsStore {
	return memstore.NewRewardsStore(rewards.NewDefaultPolicy())
}

func TestRewardsStore_GetOrCreate(t *testing.T) {
	store := newRewardsStore()

	acct := store.GetOrCreate("user-1", rewardsTime)
	assert.Equal(t, 0, acct.Points())
	assert.Equal(t, "Standard", acct.Tier())
	assert.Equal(t, rewardsTime, acct.JoinDate())

	// Second call returns the same account, not a fresh one.
	later := rewardsTime.Add(time.Hour)
	again := store.GetOrCreate("user-1", later)
	assert.Equal(t, rewardsTime, again.JoinDate())
	assert.Equal(t, 1, store.Len())
}

func TestRewardsStore_Get(t *testing.T) {
	store := newRewardsStore()

	_, ok := store.Get("user-1")
	assert.False(t, ok)

	store.GetOrCreate("user-1", rewardsTime)
	acct, ok := store.Get("user-1")
	require.True(t, ok)
	assert.Equal(t, "user-1", acct.UserID())
}

func TestRewardsStore_Award(t *testing.T) {
	store := newRewardsStore()

	t.Run("award creates the account lazily", func(t *testing.T) {
		acct, result, err := store.Award("user-1", 25, true, rewardsTime)
		require.NoError(t, err)

		assert.Equal(t, 25, acct.Points())
		assert.Equal(t, 1, acct.FlightsCompleted())
		assert.Equal(t, "Bronze", acct.Tier())
		assert.True(t, result.TierChanged)
	})

	t.Run("negative balance is marked with the domain sentinel", func(t *testing.T) {
		_, _, err := store.Award("user-1", -100, false, rewardsTime)
		assert.ErrorIs(t, err, errs.ErrNegativePointsBalance)

		// Balance unchanged after the rejected award.
		acct, ok := store.Get("user-1")
		require.True(t, ok)
		assert.Equal(t, 25, acct.Points())
	})
}

func TestRewardsStore_Snapshot_JoinOrder(t *testing.T) {
	store := newRewardsStore()
	store.GetOrCreate("user-b", rewardsTime)
	store.GetOrCreate("user-a", rewardsTime.Add(time.Minute))
	store.GetOrCreate("user-c", rewardsTime.Add(2*time.Minute))

	snapshot := store.Snapshot()
	require.Len(t, snapshot, 3)
	assert.Equal(t, "user-b", snapshot[0].UserID())
	assert.Equal(t, "user-a", snapshot[1].UserID())
	assert.Equal(t, "user-c", snapshot[2].UserID())

	// Snapshot entries are copies.
	policy := rewards.NewDefaultPolicy()
	_, err := snapshot[0].Award(policy, 500, false, rewardsTime)
	require.NoError(t, err)
	acct, ok := store.Get("user-b")
	require.True(t, ok)
	assert.Equal(t, 0, acct.Points())
}
