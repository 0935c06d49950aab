package memstore

import (
	"sync"
	"time"

	"swiss-virtual-airline/internal/domain/rewards"
	"swiss-virtual-airline/internal/pkg/errs"
)

// RewardsStore is the in-memory rewards ledger: one lazily-created account
// per user. The order slice records join order, which is the leaderboard
// tie-break, so pagination stays stable.
type RewardsStore struct {
	mu       sync.Mutex
	policy   *rewards.Policy
	accounts map[string]*rewards.Account
	order    []string
}

func NewRewardsStore(policy *rewards.Policy) *RewardsStore {
	return &RewardsStore{
		policy:   policy,
		accounts: make(map[string]*rewards.Account),
	}
}

// GetOrCreate is idempotent: the first call initializes the account, later
// calls return it unchanged.
func (s *RewardsStore) GetOrCreate(userID string, now time.Time) *rewards.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreateLocked(userID, now).Clone()
}

func (s *RewardsStore) Get(userID string) (*rewards.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[userID]
	if !ok {
		return nil, false
	}
	return acct.Clone(), true
}

// Award applies the point delta, counter update and tier recompute as one
// step under the store lock, so tier and points can never be observed out of
// sync.
func (s *RewardsStore) Award(userID string, delta int, flightCompletion bool, now time.Time) (*rewards.Account, rewards.AwardResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct := s.getOrCreateLocked(userID, now)
	result, err := acct.Award(s.policy, delta, flightCompletion, now)
	if err != nil {
		return nil, rewards.AwardResult{}, errs.Mark(err, errs.ErrNegativePointsBalance)
	}
	return acct.Clone(), result, nil
}

// Snapshot returns account copies in join order.
func (s *RewardsStore) Snapshot() []*rewards.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*rewards.Account, 0, len(s.order))
	for _, userID := range s.order {
		out = append(out, s.accounts[userID].Clone())
	}
	return out
}

func (s *RewardsStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts)
}

func (s *RewardsStore) getOrCreateLocked(userID string, now time.Time) *rewards.Account {
	if acct, ok := s.accounts[userID]; ok {
		return acct
	}
	acct := rewards.NewAccount(userID, s.policy, now)
	s.accounts[userID] = acct
	s.order = append(s.order, userID)
	return acct
}
