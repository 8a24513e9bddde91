package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper moves contribution and payout funds
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// YieldKeeper is the principal and yield ledger for pool funds
type YieldKeeper interface {
	Deposit(ctx sdk.Context, poolID, strategyID uint64, amount math.LegacyDec) error
	UpdateYield(ctx sdk.Context, poolID uint64) (math.LegacyDec, error)
	GetYield(ctx sdk.Context, poolID uint64) math.LegacyDec
	Withdraw(ctx sdk.Context, poolID uint64) (math.LegacyDec, error)
	ReducePrincipal(ctx sdk.Context, poolID uint64, amount math.LegacyDec) error
}

// BadgeMinter mints membership and completion badges
type BadgeMinter interface {
	MintBadge(ctx sdk.Context, recipient, badgeType string, poolID uint64) error
}

// LotteryKeeper runs draws on behalf of active pools
type LotteryKeeper interface {
	DrawConfig(ctx sdk.Context) (prizePct math.LegacyDec, intervalSeconds int64)
	Draw(ctx sdk.Context, poolID uint64, participants []string, prize math.LegacyDec) error
}
