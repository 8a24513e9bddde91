package types

import (
	"cosmossdk.io/errors"
)

// Module errors
var (
	ErrZeroDeposit         = errors.Register(ModuleName, 1, "deposit amount must be positive")
	ErrUnsupportedStrategy = errors.Register(ModuleName, 2, "unsupported yield strategy")
	ErrDepositsPaused      = errors.Register(ModuleName, 3, "deposits are paused")
	ErrNoActiveInvestment  = errors.Register(ModuleName, 4, "no active investment for pool")
	ErrUnauthorized        = errors.Register(ModuleName, 5, "unauthorized")
	ErrInvalidAmount       = errors.Register(ModuleName, 6, "invalid amount")
	ErrStrategyExists      = errors.Register(ModuleName, 7, "strategy already registered")
	ErrStrategyNotFound    = errors.Register(ModuleName, 8, "strategy not found")
)
