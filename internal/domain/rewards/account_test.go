//go:build unit

package rewards_test

import (
	"testing"
	"time"

	"swiss-virtual-airline/internal/domain/rewards"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNewAccount(t *testing.T) {
	policy := rewards.NewDefaultPolicy()
	acct := rewards.NewAccount("user-1", policy, testTime)

	assert.Equal(t, "user-1", acct.UserID())
	assert.Equal(t, 0, acct.Points())
	assert.Equal(t, 0, acct.FlightsCompleted())
	assert.Equal(t, "Standard", acct.Tier())
	assert.Nil(t, acct.LastFlightDate())
	assert.Equal(t, testTime, acct.JoinDate())
}

func TestAccount_Award(t *testing.T) {
	policy := rewards.NewDefaultPolicy()

	t.Run("positive delta updates points and tier", func(t *testing.T) {
		acct := rewards.NewAccount("user-1", policy, testTime)

		result, err := acct.Award(policy, 25, false, testTime)
		require.NoError(t, err)

		assert.Equal(t, 25, acct.Points())
		assert.Equal(t, "Bronze", acct.Tier())
		assert.True(t, result.TierChanged)
		assert.Equal(t, "Standard", result.OldTier)
		assert.Equal(t, "Bronze", result.NewTier)
	})

	t.Run("flight completion records counter and date", func(t *testing.T) {
		acct := rewards.NewAccount("user-1", policy, testTime)
		completedAt := testTime.Add(time.Hour)

		_, err := acct.Award(policy, 5, true, completedAt)
		require.NoError(t, err)

		assert.Equal(t, 1, acct.FlightsCompleted())
		require.NotNil(t, acct.LastFlightDate())
		assert.Equal(t, completedAt, *acct.LastFlightDate())
	})

	t.Run("plain award leaves flight counter untouched", func(t *testing.T) {
		acct := rewards.NewAccount("user-1", policy, testTime)

		_, err := acct.Award(policy, 5, false, testTime)
		require.NoError(t, err)

		assert.Equal(t, 0, acct.FlightsCompleted())
		assert.Nil(t, acct.LastFlightDate())
	})

	t.Run("negative delta within balance succeeds", func(t *testing.T) {
		acct := rewards.ReconstructAccount("user-1", 30, 0, "Bronze", nil, testTime)

		result, err := acct.Award(policy, -15, false, testTime)
		require.NoError(t, err)

		assert.Equal(t, 15, acct.Points())
		assert.Equal(t, "Standard", acct.Tier())
		assert.True(t, result.TierChanged)
	})

	t.Run("delta below zero is rejected without mutation", func(t *testing.T) {
		acct := rewards.ReconstructAccount("user-1", 10, 2, "Standard", nil, testTime)

		_, err := acct.Award(policy, -11, true, testTime)
		assert.ErrorIs(t, err, rewards.ErrNegativePoints)

		assert.Equal(t, 10, acct.Points())
		assert.Equal(t, 2, acct.FlightsCompleted())
	})

	t.Run("same-tier award reports no change", func(t *testing.T) {
		acct := rewards.ReconstructAccount("user-1", 20, 0, "Bronze", nil, testTime)

		result, err := acct.Award(policy, 10, false, testTime)
		require.NoError(t, err)
		assert.False(t, result.TierChanged)
	})
}

func TestAccount_Clone(t *testing.T) {
	policy := rewards.NewDefaultPolicy()
	acct := rewards.NewAccount("user-1", policy, testTime)
	_, err := acct.Award(policy, 10, true, testTime)
	require.NoError(t, err)

	clone := acct.Clone()

	// Mutating the original must not leak into the clone.
	_, err = acct.Award(policy, 50, true, testTime.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 10, clone.Points())
	assert.Equal(t, 1, clone.FlightsCompleted())
	if diff := cmp.Diff(testTime, *clone.LastFlightDate()); diff != "" {
		t.Errorf("lastFlightDate mismatch (-want +got):\n%s", diff)
	}
}
