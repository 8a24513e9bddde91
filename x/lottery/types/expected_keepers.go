package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BadgeMinter mints the winner badge after a draw
type BadgeMinter interface {
	MintBadge(ctx sdk.Context, recipient, badgeType string, poolID uint64) error
}

// PrizePayer moves the prize to the winner after the round is committed
type PrizePayer interface {
	PayPrize(ctx sdk.Context, winner string, amount math.LegacyDec) error
}
