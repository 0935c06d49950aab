package usecase

import (
	"context"
	"sort"
	"time"

	"swiss-virtual-airline/internal/domain/rewards"
	"swiss-virtual-airline/internal/domain/user"
	"swiss-virtual-airline/internal/pkg/clock"
	"swiss-virtual-airline/internal/pkg/config"
	"swiss-virtual-airline/internal/pkg/errs"
	"swiss-virtual-airline/internal/pkg/metrics"
)

type RewardsLedger interface {
	GetOrCreate(userID string, now time.Time) *rewards.Account
	Get(userID string) (*rewards.Account, bool)
	Award(userID string, delta int, flightCompletion bool, now time.Time) (*rewards.Account, rewards.AwardResult, error)
	Snapshot() []*rewards.Account
}

type AccountStatus struct {
	Account  *rewards.Account
	Tier     rewards.Tier
	Progress rewards.TierProgress
}

type AwardOutcome struct {
	Account     *rewards.Account
	TierChanged bool
	OldTier     string
	NewTier     string
}

type CompleteFlightOutcome struct {
	AwardOutcome
	PointsEarned int
}

type LeaderboardEntry struct {
	Rank             int
	UserID           string
	Points           int
	FlightsCompleted int
	Tier             string
}

type LeaderboardPage struct {
	Entries       []LeaderboardEntry
	Page          int
	PageSize      int
	TotalPages    int
	TotalAccounts int
}

type RewardsUseCase interface {
	GetAccount(ctx context.Context, userID string) *AccountStatus
	AwardPoints(ctx context.Context, actorID, userID string, points int, flightCompletion bool) (*AwardOutcome, error)
	CompleteFlight(ctx context.Context, actor user.Identity, bookingID string, points *int) (*CompleteFlightOutcome, error)
	Leaderboard(ctx context.Context, page int) *LeaderboardPage
	Tiers(ctx context.Context) []rewards.Tier
}

type rewardsUseCaseImpl struct {
	ledger        RewardsLedger
	bookings      BookingLedger
	policy        *rewards.Policy
	admins        AdminPolicy
	defaultPoints int
	pageSize      int
	clock         clock.Clock
	metrics       *metrics.Metrics
}

func NewRewardsUseCase(
	ledger RewardsLedger,
	bookings BookingLedger,
	policy *rewards.Policy,
	admins AdminPolicy,
	cfg config.RewardsConfig,
	clock clock.Clock,
	metrics *metrics.Metrics,
) RewardsUseCase {
	return &rewardsUseCaseImpl{
		ledger:        ledger,
		bookings:      bookings,
		policy:        policy,
		admins:        admins,
		defaultPoints: cfg.DefaultFlightPoints,
		pageSize:      cfg.LeaderboardPageSize,
		clock:         clock,
		metrics:       metrics,
	}
}

// GetAccount lazily creates the account on first reference.
func (u *rewardsUseCaseImpl) GetAccount(_ context.Context, userID string) *AccountStatus {
	acct := u.ledger.GetOrCreate(userID, u.clock.Now())
	return &AccountStatus{
		Account:  acct,
		Tier:     u.policy.TierFor(acct.Points()),
		Progress: u.policy.ProgressToNextTier(acct.Points()),
	}
}

// AwardPoints is privileged: the actor must pass the injected admin policy.
func (u *rewardsUseCaseImpl) AwardPoints(_ context.Context, actorID, userID string, points int, flightCompletion bool) (*AwardOutcome, error) {
	if !u.admins.IsAdmin(actorID) {
		return nil, errs.ErrNotAuthorized
	}

	acct, result, err := u.ledger.Award(userID, points, flightCompletion, u.clock.Now())
	if err != nil {
		u.metrics.ErrorsCount.WithLabelValues("award_points").Inc()
		return nil, err
	}

	u.recordAward(points, result.TierChanged)
	return &AwardOutcome{
		Account:     acct,
		TierChanged: result.TierChanged,
		OldTier:     result.OldTier,
		NewTier:     result.NewTier,
	}, nil
}

// CompleteFlight is the one-time points award for a booking. The flag flip
// in the booking ledger is the idempotence gate: once it succeeds the award
// below cannot fail (points are validated positive first), so the two ledger
// updates are never half-applied.
func (u *rewardsUseCaseImpl) CompleteFlight(_ context.Context, actor user.Identity, bookingID string, points *int) (*CompleteFlightOutcome, error) {
	earned := u.defaultPoints
	if points != nil {
		earned = *points
	}
	if earned <= 0 {
		return nil, errs.ErrInvalidPointsAmount
	}

	if _, err := u.bookings.MarkAwarded(bookingID, actor.ID, earned); err != nil {
		u.metrics.ErrorsCount.WithLabelValues("complete_flight").Inc()
		return nil, err
	}

	acct, result, err := u.ledger.Award(actor.ID, earned, true, u.clock.Now())
	if err != nil {
		return nil, err
	}

	u.recordAward(earned, result.TierChanged)
	return &CompleteFlightOutcome{
		AwardOutcome: AwardOutcome{
			Account:     acct,
			TierChanged: result.TierChanged,
			OldTier:     result.OldTier,
			NewTier:     result.NewTier,
		},
		PointsEarned: earned,
	}, nil
}

// Leaderboard sorts accounts by points descending with join order as the
// stable tie-break, and annotates global 1-based ranks. An empty ledger
// yields zero pages, not an error.
func (u *rewardsUseCaseImpl) Leaderboard(_ context.Context, page int) *LeaderboardPage {
	if page < 1 {
		page = 1
	}

	accounts := u.ledger.Snapshot()
	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].Points() > accounts[j].Points()
	})

	total := len(accounts)
	totalPages := (total + u.pageSize - 1) / u.pageSize

	result := &LeaderboardPage{
		Entries:       []LeaderboardEntry{},
		Page:          page,
		PageSize:      u.pageSize,
		TotalPages:    totalPages,
		TotalAccounts: total,
	}

	start := (page - 1) * u.pageSize
	if start >= total {
		return result
	}
	end := start + u.pageSize
	if end > total {
		end = total
	}

	for i, acct := range accounts[start:end] {
		result.Entries = append(result.Entries, LeaderboardEntry{
			Rank:             start + i + 1,
			UserID:           acct.UserID(),
			Points:           acct.Points(),
			FlightsCompleted: acct.FlightsCompleted(),
			Tier:             u.policy.TierFor(acct.Points()).Name,
		})
	}
	return result
}

func (u *rewardsUseCaseImpl) Tiers(_ context.Context) []rewards.Tier {
	return u.policy.Tiers()
}

func (u *rewardsUseCaseImpl) recordAward(points int, tierChanged bool) {
	if points > 0 {
		u.metrics.PointsAwarded.Add(float64(points))
	}
	if tierChanged {
		u.metrics.TierUpgrades.Inc()
	}
}
