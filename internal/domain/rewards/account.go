package rewards

import (
	"errors"
	"time"
)

var ErrNegativePoints = errors.New("points balance cannot go negative")

// Account is a user's rewards ledger entry. The tier field is derived state:
// the only write path is a recompute from points inside Award, never an
// independent setter.
type Account struct {
	userID           string
	points           int
	flightsCompleted int
	tier             string
	lastFlightDate   *time.Time
	joinDate         time.Time
}

func NewAccount(userID string, policy *Policy, now time.Time) *Account {
	return &Account{
		userID:   userID,
		tier:     policy.TierFor(0).Name,
		joinDate: now,
	}
}

func ReconstructAccount(userID string, points, flightsCompleted int, tier string, lastFlightDate *time.Time, joinDate time.Time) *Account {
	return &Account{
		userID:           userID,
		points:           points,
		flightsCompleted: flightsCompleted,
		tier:             tier,
		lastFlightDate:   lastFlightDate,
		joinDate:         joinDate,
	}
}

type AwardResult struct {
	OldTier     string
	NewTier     string
	TierChanged bool
}

// Award applies a point delta, optionally records a completed flight, and
// recomputes the tier. Deltas that would drive the balance below zero are
// rejected without mutating the account.
func (a *Account) Award(policy *Policy, delta int, flightCompletion bool, now time.Time) (AwardResult, error) {
	if a.points+delta < 0 {
		return AwardResult{}, ErrNegativePoints
	}

	oldTier := a.tier
	a.points += delta
	if flightCompletion {
		a.flightsCompleted++
		completedAt := now
		a.lastFlightDate = &completedAt
	}
	a.tier = policy.TierFor(a.points).Name

	return AwardResult{
		OldTier:     oldTier,
		NewTier:     a.tier,
		TierChanged: oldTier != a.tier,
	}, nil
}

func (a *Account) Clone() *Account {
	clone := *a
	if a.lastFlightDate != nil {
		t := *a.lastFlightDate
		clone.lastFlightDate = &t
	}
	return &clone
}

func (a *Account) UserID() string             { return a.userID }
func (a *Account) Points() int                { return a.points }
func (a *Account) FlightsCompleted() int      { return a.flightsCompleted }
func (a *Account) Tier() string               { return a.tier }
func (a *Account) LastFlightDate() *time.Time { return a.lastFlightDate }
func (a *Account) JoinDate() time.Time        { return a.joinDate }
