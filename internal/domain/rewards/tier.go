package rewards

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTierTable     = errors.New("tier table must not be empty")
	ErrTierRangeGap       = errors.New("tier ranges must be contiguous")
	ErrTierTableUnbounded = errors.New("only the highest tier may be unbounded")
)

// Tier is a loyalty band over an inclusive point range. A nil MaxPoints
// marks the highest, unbounded tier.
type Tier struct {
	Name        string `json:"name"`
	MinPoints   int    `json:"minPoints"`
	MaxPoints   *int   `json:"maxPoints"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// Contains reports whether points falls inside the tier's range.
func (t Tier) Contains(points int) bool {
	if points < t.MinPoints {
		return false
	}
	return t.MaxPoints == nil || points <= *t.MaxPoints
}

func maxPoints(v int) *int {
	return &v
}

// DefaultTiers is the static tier table served by /api/rewards/tiers.
func DefaultTiers() []Tier {
	return []Tier{
		{Name: "Standard", MinPoints: 0, MaxPoints: maxPoints(19), Color: "#9ca3af", Description: "Welcome aboard"},
		{Name: "Bronze", MinPoints: 20, MaxPoints: maxPoints(59), Color: "#cd7f32", Description: "Frequent flyer"},
		{Name: "Silver", MinPoints: 60, MaxPoints: maxPoints(149), Color: "#c0c0c0", Description: "Seasoned crew member"},
		{Name: "Gold", MinPoints: 150, MaxPoints: maxPoints(299), Color: "#ffd700", Description: "Captain's circle"},
		{Name: "Platinum", MinPoints: 300, MaxPoints: nil, Color: "#e5e4e2", Description: "Lifetime elite"},
	}
}

// Policy derives tier membership and progress from a point total. It is the
// single source of truth: stored tiers are only ever recomputed through it.
type Policy struct {
	tiers []Tier
}

// NewPolicy validates that the ordered tier table partitions [0, ∞):
// the lowest tier starts at 0, adjacent ranges touch without gap or overlap
// and only the last tier is unbounded.
func NewPolicy(tiers []Tier) (*Policy, error) {
	if len(tiers) == 0 {
		return nil, ErrEmptyTierTable
	}
	if tiers[0].MinPoints != 0 {
		return nil, fmt.Errorf("%w: lowest tier must start at 0", ErrTierRangeGap)
	}
	for i, t := range tiers {
		last := i == len(tiers)-1
		if t.MaxPoints == nil {
			if !last {
				return nil, ErrTierTableUnbounded
			}
			continue
		}
		if last {
			return nil, fmt.Errorf("%w: highest tier must be unbounded", ErrTierTableUnbounded)
		}
		if *t.MaxPoints < t.MinPoints {
			return nil, fmt.Errorf("%w: %q has an inverted range", ErrTierRangeGap, t.Name)
		}
		if tiers[i+1].MinPoints != *t.MaxPoints+1 {
			return nil, fmt.Errorf("%w: between %q and %q", ErrTierRangeGap, t.Name, tiers[i+1].Name)
		}
	}
	return &Policy{tiers: append([]Tier(nil), tiers...)}, nil
}

// NewDefaultPolicy panics only if DefaultTiers itself is broken.
func NewDefaultPolicy() *Policy {
	p, err := NewPolicy(DefaultTiers())
	if err != nil {
		panic("invalid default tier table: " + err.Error())
	}
	return p
}

// Tiers returns a copy of the ordered tier table.
func (p *Policy) Tiers() []Tier {
	return append([]Tier(nil), p.tiers...)
}

// TierFor returns the first tier whose range contains points. The fallback
// to the lowest tier cannot trigger with a valid table.
func (p *Policy) TierFor(points int) Tier {
	for _, t := range p.tiers {
		if t.Contains(points) {
			return t
		}
	}
	return p.tiers[0]
}

type TierProgress struct {
	IsMaxTier       bool
	ProgressPercent int
	PointsNeeded    int
	NextTier        *Tier
}

// ProgressToNextTier computes progress within the current tier toward the
// next boundary. Integer division truncates toward zero; adjacent boundaries
// are distinct by construction, so the divisor is never zero.
func (p *Policy) ProgressToNextTier(points int) TierProgress {
	current := p.TierFor(points)

	idx := 0
	for i, t := range p.tiers {
		if t.Name == current.Name {
			idx = i
			break
		}
	}
	if idx == len(p.tiers)-1 {
		return TierProgress{IsMaxTier: true, ProgressPercent: 100, PointsNeeded: 0}
	}

	next := p.tiers[idx+1]
	span := next.MinPoints - current.MinPoints
	return TierProgress{
		IsMaxTier:       false,
		ProgressPercent: 100 * (points - current.MinPoints) / span,
		PointsNeeded:    next.MinPoints - points,
		NextTier:        &next,
	}
}
