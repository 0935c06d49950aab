package usecase

import "swiss-virtual-airline/internal/pkg/config"

// AdminPolicy is the authorization hook for privileged rewards operations.
// The effective allow-list lives in configuration, never in code.
type AdminPolicy interface {
	IsAdmin(userID string) bool
}

type allowListAdminPolicy struct {
	ids map[string]struct{}
}

func NewAllowListAdminPolicy(cfg config.RewardsConfig) AdminPolicy {
	ids := make(map[string]struct{}, len(cfg.AdminUserIDs))
	for _, id := range cfg.AdminUserIDs {
		ids[id] = struct{}{}
	}
	return &allowListAdminPolicy{ids: ids}
}

func (p *allowListAdminPolicy) IsAdmin(userID string) bool {
	_, ok := p.ids[userID]
	return ok
}
