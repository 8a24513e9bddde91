package types

import (
	"cosmossdk.io/math"
)

// Module name and store key
const (
	ModuleName = "arisan"
	StoreKey   = ModuleName
)

// BaseDenom is the settlement denom for contributions and payouts
const BaseDenom = "uarn"

// Pool states
const (
	PoolStateCreated   = "created"
	PoolStateActive    = "active"
	PoolStateCompleted = "completed"
	PoolStateCancelled = "cancelled"
)

// Roles
const (
	RolePoolCreator    = "pool_creator"
	RoleEmergencyAdmin = "emergency_admin"
)

// Badge policies for join and completion badge minting
const (
	BadgePolicyBestEffort = "best_effort"
	BadgePolicyMandatory  = "mandatory"
)

// Membership bounds
const (
	MinMembers = 2
	MaxMembers = 100
)

// Supported pool durations in seconds
var SupportedDurations = []int64{
	7 * 24 * 60 * 60,
	30 * 24 * 60 * 60,
	90 * 24 * 60 * 60,
	180 * 24 * 60 * 60,
}

// IsSupportedDuration reports whether seconds is an allowed pool duration
func IsSupportedDuration(seconds int64) bool {
	for _, d := range SupportedDurations {
		if d == seconds {
			return true
		}
	}
	return false
}

// PoolConfig is the creation-time pool parameter set
type PoolConfig struct {
	Name               string         `json:"name"`
	ContributionAmount math.LegacyDec `json:"contribution_amount"`
	MaxMembers         int            `json:"max_members"`
	DurationSeconds    int64          `json:"duration_seconds"`
	StrategyID         uint64         `json:"strategy_id"`
}

// Validate checks the pool configuration
func (c *PoolConfig) Validate() error {
	if len(c.Name) == 0 || len(c.Name) > 64 {
		return ErrInvalidConfiguration.Wrap("name must be 1-64 characters")
	}
	if c.ContributionAmount.IsNil() || !c.ContributionAmount.IsPositive() {
		return ErrInvalidConfiguration.Wrap("contribution amount must be positive")
	}
	if c.MaxMembers < MinMembers || c.MaxMembers > MaxMembers {
		return ErrInvalidConfiguration.Wrap("max members out of range")
	}
	if !IsSupportedDuration(c.DurationSeconds) {
		return ErrInvalidConfiguration.Wrap("unsupported duration")
	}
	return nil
}

// PoolRecord is the lightweight registry entry kept per pool
type PoolRecord struct {
	PoolID    uint64 `json:"pool_id"`
	Creator   string `json:"creator"`
	State     string `json:"state"`
	CreatedAt int64  `json:"created_at"`
}

// Pool is the full state of one rotating savings group
type Pool struct {
	PoolID             uint64         `json:"pool_id"`
	Name               string         `json:"name"`
	Creator            string         `json:"creator"`
	ContributionAmount math.LegacyDec `json:"contribution_amount"`
	MaxMembers         int            `json:"max_members"`
	Members            []string       `json:"members"`
	TotalContributions math.LegacyDec `json:"total_contributions"`
	YieldGenerated     math.LegacyDec `json:"yield_generated"`
	StartTime          int64          `json:"start_time"`
	EndTime            int64          `json:"end_time"`
	State              string         `json:"state"`
	StrategyID         uint64         `json:"strategy_id"`

	// Lottery bookkeeping
	LastDrawAt int64  `json:"last_draw_at"`
	DrawsDone  uint64 `json:"draws_done"`

	// Settlement bookkeeping
	InvestmentWithdrawn bool            `json:"investment_withdrawn"`
	PayoutPerMember     math.LegacyDec  `json:"payout_per_member"`
	Withdrawn           map[string]bool `json:"withdrawn,omitempty"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// NewPool creates a pool in the active state. Pools accept members from
// the moment they are created.
func NewPool(poolID uint64, creator string, config *PoolConfig, now int64) *Pool {
	return &Pool{
		PoolID:             poolID,
		Name:               config.Name,
		Creator:            creator,
		ContributionAmount: config.ContributionAmount,
		MaxMembers:         config.MaxMembers,
		Members:            []string{},
		TotalContributions: math.LegacyZeroDec(),
		YieldGenerated:     math.LegacyZeroDec(),
		StartTime:          now,
		EndTime:            now + config.DurationSeconds,
		State:              PoolStateActive,
		StrategyID:         config.StrategyID,
		PayoutPerMember:    math.LegacyZeroDec(),
		Withdrawn:          make(map[string]bool),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// IsMember reports whether addr has joined the pool
func (p *Pool) IsMember(addr string) bool {
	for _, m := range p.Members {
		if m == addr {
			return true
		}
	}
	return false
}

// IsFull reports whether the pool has reached its member cap
func (p *Pool) IsFull() bool {
	return len(p.Members) >= p.MaxMembers
}

// HasWithdrawn reports whether addr already received its payout
func (p *Pool) HasWithdrawn(addr string) bool {
	return p.Withdrawn[addr]
}

// RemoveMember drops addr from the member list, preserving join order
func (p *Pool) RemoveMember(addr string) bool {
	for i, m := range p.Members {
		if m == addr {
			p.Members = append(p.Members[:i], p.Members[i+1:]...)
			return true
		}
	}
	return false
}

// IsMatured reports whether the pool has passed its end time
func (p *Pool) IsMatured(now int64) bool {
	return now >= p.EndTime
}

// PoolStatistics aggregates registry-wide counts
type PoolStatistics struct {
	TotalPools     int64          `json:"total_pools"`
	ActivePools    int64          `json:"active_pools"`
	CompletedPools int64          `json:"completed_pools"`
	CancelledPools int64          `json:"cancelled_pools"`
	TotalValue     math.LegacyDec `json:"total_value"`
}
