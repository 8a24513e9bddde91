package types

import (
	"cosmossdk.io/math"
)

// Module name and store key
const (
	ModuleName = "yield"
	StoreKey   = ModuleName
)

// Yield math constants
const (
	BasisPointDenom = int64(10000)
	SecondsPerYear  = int64(365 * 24 * 60 * 60)
)

// Built-in strategies. MockYield is the only strategy active by default;
// FixedAPY is reserved and must be activated by the authority before use.
const (
	StrategyMockYield = uint64(0)
	StrategyFixedAPY  = uint64(1)
)

// MockYield accrues at a flat 5% APY
const MockYieldAPYBps = int64(500)

// Strategy describes where pooled principal is put to work
type Strategy struct {
	StrategyID     uint64 `json:"strategy_id"`
	Name           string `json:"name"`
	ExpectedAPYBps int64  `json:"expected_apy_bps"`
	IsActive       bool   `json:"is_active"`
}

// DefaultStrategies returns the strategy set seeded at genesis
func DefaultStrategies() []Strategy {
	return []Strategy{
		{StrategyID: StrategyMockYield, Name: "mock_yield", ExpectedAPYBps: MockYieldAPYBps, IsActive: true},
		{StrategyID: StrategyFixedAPY, Name: "fixed_apy", ExpectedAPYBps: 0, IsActive: false},
	}
}

// Investment tracks one pool's position with the yield manager.
// CurrentValue always equals PrincipalAmount + YieldGenerated.
type Investment struct {
	PoolID          uint64         `json:"pool_id"`
	PrincipalAmount math.LegacyDec `json:"principal_amount"`
	CurrentValue    math.LegacyDec `json:"current_value"`
	YieldGenerated  math.LegacyDec `json:"yield_generated"`
	LastUpdateTime  int64          `json:"last_update_time"`
	StrategyID      uint64         `json:"strategy_id"`
	IsActive        bool           `json:"is_active"`
}

// NewInvestment creates a new investment record
func NewInvestment(poolID, strategyID uint64, principal math.LegacyDec, now int64) *Investment {
	return &Investment{
		PoolID:          poolID,
		PrincipalAmount: principal,
		CurrentValue:    principal,
		YieldGenerated:  math.LegacyZeroDec(),
		LastUpdateTime:  now,
		StrategyID:      strategyID,
		IsActive:        true,
	}
}

// CalculateProjectedYield computes the yield principal earns over
// elapsedSeconds at apyBps. compoundFreq <= 1 gives simple interest;
// higher frequencies compound once per full period elapsed. Accrual in
// the keeper uses the simple-interest branch, so projections and
// persisted yield round identically.
func CalculateProjectedYield(principal math.LegacyDec, elapsedSeconds, apyBps, compoundFreq int64) math.LegacyDec {
	if principal.IsNil() || !principal.IsPositive() || elapsedSeconds <= 0 || apyBps <= 0 {
		return math.LegacyZeroDec()
	}

	if compoundFreq <= 1 {
		return principal.
			MulInt64(apyBps).
			QuoInt64(BasisPointDenom).
			MulInt64(elapsedSeconds).
			QuoInt64(SecondsPerYear)
	}

	periods := elapsedSeconds * compoundFreq / SecondsPerYear
	if periods <= 0 {
		return math.LegacyZeroDec()
	}
	ratePerPeriod := math.LegacyNewDec(apyBps).
		QuoInt64(BasisPointDenom).
		QuoInt64(compoundFreq)
	growth := math.LegacyOneDec().Add(ratePerPeriod).Power(uint64(periods))
	return principal.Mul(growth).Sub(principal)
}
