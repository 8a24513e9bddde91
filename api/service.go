package api

import (
	"github.com/openarisan/arisan-chain/api/types"
)

// Re-export types for convenience
type (
	PoolSummary       = types.PoolSummary
	PoolDetail        = types.PoolDetail
	PoolStats         = types.PoolStats
	InvestmentInfo    = types.InvestmentInfo
	StrategyInfo      = types.StrategyInfo
	RoundInfo         = types.RoundInfo
	BadgeInfo         = types.BadgeInfo
	HolderInfo        = types.HolderInfo
	CreatePoolRequest = types.CreatePoolRequest
	JoinRequest       = types.JoinRequest
	LeaveRequest      = types.LeaveRequest
	WithdrawRequest   = types.WithdrawRequest
	PoolService       = types.PoolService
	YieldService      = types.YieldService
	LotteryService    = types.LotteryService
	BadgeService      = types.BadgeService
)

// nowMillis returns current timestamp in milliseconds
func nowMillis() int64 {
	return types.NowMillis()
}
