package types

import (
	"context"
	"time"
)

// PoolSummary is the list-view representation of a savings pool
type PoolSummary struct {
	PoolID             uint64 `json:"pool_id"`
	Name               string `json:"name"`
	State              string `json:"state"`
	ContributionAmount string `json:"contribution_amount"`
	MaxMembers         int    `json:"max_members"`
	MemberCount        int    `json:"member_count"`
	TotalContributions string `json:"total_contributions"`
	YieldGenerated     string `json:"yield_generated"`
	StartTime          int64  `json:"start_time"`
	EndTime            int64  `json:"end_time"`
}

// PoolDetail is the full representation of a savings pool
type PoolDetail struct {
	PoolSummary
	Creator         string   `json:"creator"`
	Members         []string `json:"members"`
	StrategyID      uint64   `json:"strategy_id"`
	DrawsDone       uint64   `json:"draws_done"`
	LastDrawAt      int64    `json:"last_draw_at"`
	PayoutPerMember string   `json:"payout_per_member,omitempty"`
	CreatedAt       int64    `json:"created_at"`
	UpdatedAt       int64    `json:"updated_at"`
}

// PoolStats aggregates registry-wide pool counters
type PoolStats struct {
	TotalPools     int64  `json:"total_pools"`
	ActivePools    int64  `json:"active_pools"`
	CompletedPools int64  `json:"completed_pools"`
	CancelledPools int64  `json:"cancelled_pools"`
	TotalValue     string `json:"total_value"`
}

// InvestmentInfo is the yield ledger view of one pool
type InvestmentInfo struct {
	PoolID          uint64 `json:"pool_id"`
	PrincipalAmount string `json:"principal_amount"`
	CurrentValue    string `json:"current_value"`
	YieldGenerated  string `json:"yield_generated"`
	StrategyID      uint64 `json:"strategy_id"`
	IsActive        bool   `json:"is_active"`
	LastUpdateTime  int64  `json:"last_update_time"`
}

// StrategyInfo describes a registered yield strategy
type StrategyInfo struct {
	StrategyID     uint64 `json:"strategy_id"`
	Name           string `json:"name"`
	ExpectedAPYBps int64  `json:"expected_apy_bps"`
	IsActive       bool   `json:"is_active"`
}

// RoundInfo is one completed lottery draw
type RoundInfo struct {
	PoolID      uint64 `json:"pool_id"`
	Round       uint64 `json:"round"`
	Winner      string `json:"winner"`
	PrizeAmount string `json:"prize_amount"`
	DrawnAt     int64  `json:"drawn_at"`
}

// BadgeInfo is one minted achievement badge
type BadgeInfo struct {
	TokenID   uint64 `json:"token_id"`
	BadgeType string `json:"badge_type"`
	PoolID    uint64 `json:"pool_id"`
	Recipient string `json:"recipient"`
	MintedAt  int64  `json:"minted_at"`
}

// HolderInfo is one leaderboard entry
type HolderInfo struct {
	Holder     string `json:"holder"`
	BadgeCount int64  `json:"badge_count"`
}

// CreatePoolRequest represents the request to create a pool
type CreatePoolRequest struct {
	Creator            string `json:"creator"`
	Name               string `json:"name"`
	ContributionAmount string `json:"contribution_amount"`
	MaxMembers         int    `json:"max_members"`
	DurationSeconds    int64  `json:"duration_seconds"`
	StrategyID         uint64 `json:"strategy_id"`
}

// JoinRequest represents the request to join a pool
type JoinRequest struct {
	Member string `json:"member"`
	Amount string `json:"amount"`
}

// LeaveRequest represents the request to leave a pool
type LeaveRequest struct {
	Member string `json:"member"`
}

// LeaveResponse represents the response after leaving a pool
type LeaveResponse struct {
	PoolID uint64 `json:"pool_id"`
	Member string `json:"member"`
	Refund string `json:"refund"`
}

// WithdrawRequest represents the request to withdraw the member share
type WithdrawRequest struct {
	Member string `json:"member"`
}

// WithdrawResponse represents the response after withdrawing
type WithdrawResponse struct {
	PoolID uint64 `json:"pool_id"`
	Member string `json:"member"`
	Payout string `json:"payout"`
}

// PoolService defines the interface for pool operations
type PoolService interface {
	ListPools(ctx context.Context) ([]*PoolSummary, error)
	GetPool(ctx context.Context, poolID uint64) (*PoolDetail, error)
	GetMembers(ctx context.Context, poolID uint64) ([]string, error)
	GetStats(ctx context.Context) (*PoolStats, error)
	CreatePool(ctx context.Context, req *CreatePoolRequest) (*PoolDetail, error)
	JoinPool(ctx context.Context, poolID uint64, req *JoinRequest) (*PoolDetail, error)
	LeavePool(ctx context.Context, poolID uint64, req *LeaveRequest) (*LeaveResponse, error)
	Withdraw(ctx context.Context, poolID uint64, req *WithdrawRequest) (*WithdrawResponse, error)
}

// YieldService defines the interface for yield ledger reads
type YieldService interface {
	GetInvestment(ctx context.Context, poolID uint64) (*InvestmentInfo, error)
	ListStrategies(ctx context.Context) ([]*StrategyInfo, error)
	GetTotalManagedFunds(ctx context.Context) (string, error)
}

// LotteryService defines the interface for draw history reads
type LotteryService interface {
	ListRounds(ctx context.Context, poolID uint64) ([]*RoundInfo, error)
	GetCurrentRound(ctx context.Context, poolID uint64) (uint64, error)
}

// BadgeService defines the interface for badge registry reads
type BadgeService interface {
	GetBadgesByHolder(ctx context.Context, holder string) ([]*BadgeInfo, error)
	GetBadgesByPool(ctx context.Context, poolID uint64) ([]*BadgeInfo, error)
	GetTopHolders(ctx context.Context, limit int) ([]*HolderInfo, error)
}

// Helper function to get current timestamp in milliseconds
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
