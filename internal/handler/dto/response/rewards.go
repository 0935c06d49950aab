package response

import (
	"time"

	"swiss-virtual-airline/internal/domain/rewards"
	"swiss-virtual-airline/internal/usecase"
)

type AccountResponse struct {
	UserID           string     `json:"userId"`
	Points           int        `json:"points"`
	FlightsCompleted int        `json:"flightsCompleted"`
	Tier             string     `json:"tier"`
	LastFlightDate   *time.Time `json:"lastFlightDate"`
	JoinDate         time.Time  `json:"joinDate"`
}

func FromAccount(a *rewards.Account) AccountResponse {
	return AccountResponse{
		UserID:           a.UserID(),
		Points:           a.Points(),
		FlightsCompleted: a.FlightsCompleted(),
		Tier:             a.Tier(),
		LastFlightDate:   a.LastFlightDate(),
		JoinDate:         a.JoinDate(),
	}
}

type TierProgressResponse struct {
	IsMaxTier       bool          `json:"isMaxTier"`
	ProgressPercent int           `json:"progressPercent"`
	PointsNeeded    int           `json:"pointsNeeded"`
	NextTier        *rewards.Tier `json:"nextTier,omitempty"`
}

func FromTierProgress(p rewards.TierProgress) TierProgressResponse {
	return TierProgressResponse{
		IsMaxTier:       p.IsMaxTier,
		ProgressPercent: p.ProgressPercent,
		PointsNeeded:    p.PointsNeeded,
		NextTier:        p.NextTier,
	}
}

type RewardsAccountResponse struct {
	Success  bool                 `json:"success"`
	Account  AccountResponse      `json:"account"`
	Tier     rewards.Tier         `json:"tier"`
	Progress TierProgressResponse `json:"progress"`
}

type AwardResponse struct {
	Success     bool            `json:"success"`
	Message     string          `json:"message"`
	Account     AccountResponse `json:"account"`
	TierChanged bool            `json:"tierChanged"`
	OldTier     string          `json:"oldTier,omitempty"`
	NewTier     string          `json:"newTier,omitempty"`
}

type CompleteFlightResponse struct {
	Success      bool            `json:"success"`
	Message      string          `json:"message"`
	PointsEarned int             `json:"pointsEarned"`
	Account      AccountResponse `json:"account"`
	TierChanged  bool            `json:"tierChanged"`
	OldTier      string          `json:"oldTier,omitempty"`
	NewTier      string          `json:"newTier,omitempty"`
}

type LeaderboardEntryResponse struct {
	Rank             int    `json:"rank"`
	UserID           string `json:"userId"`
	Points           int    `json:"points"`
	FlightsCompleted int    `json:"flightsCompleted"`
	Tier             string `json:"tier"`
}

type LeaderboardResponse struct {
	Success       bool                       `json:"success"`
	Leaderboard   []LeaderboardEntryResponse `json:"leaderboard"`
	Page          int                        `json:"page"`
	PageSize      int                        `json:"pageSize"`
	TotalPages    int                        `json:"totalPages"`
	TotalAccounts int                        `json:"totalAccounts"`
}

func FromLeaderboard(page *usecase.LeaderboardPage) LeaderboardResponse {
	entries := make([]LeaderboardEntryResponse, 0, len(page.Entries))
	for _, e := range page.Entries {
		entries = append(entries, LeaderboardEntryResponse{
			Rank:             e.Rank,
			UserID:           e.UserID,
			Points:           e.Points,
			FlightsCompleted: e.FlightsCompleted,
			Tier:             e.Tier,
		})
	}
	return LeaderboardResponse{
		Success:       true,
		Leaderboard:   entries,
		Page:          page.Page,
		PageSize:      page.PageSize,
		TotalPages:    page.TotalPages,
		TotalAccounts: page.TotalAccounts,
	}
}

type TiersResponse struct {
	Success bool           `json:"success"`
	Tiers   []rewards.Tier `json:"tiers"`
}
