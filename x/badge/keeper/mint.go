package keeper

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openarisan/arisan-chain/x/badge/types"
)

// Mint issues a new badge to recipient. The minter must hold the minter role
// (or be a construction-time trusted module account). Token IDs are
// sequential and never reused.
func (k *Keeper) Mint(ctx sdk.Context, minter, recipient, badgeType string, poolID uint64) (*types.Badge, error) {
	if !k.HasRole(ctx, types.RoleMinter, minter) {
		return nil, types.ErrUnauthorized
	}
	if !types.ValidBadgeType(badgeType) {
		return nil, types.ErrInvalidBadgeType
	}
	if recipient == "" {
		return nil, types.ErrInvalidRecipient
	}

	badge := &types.Badge{
		TokenID:   k.nextTokenID(ctx),
		BadgeType: badgeType,
		PoolID:    poolID,
		Recipient: recipient,
		MintedAt:  ctx.BlockTime().Unix(),
	}
	k.SetBadge(ctx, badge)
	k.leaderboard.bump(recipient)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			"badge_minted",
			sdk.NewAttribute("token_id", strconv.FormatUint(badge.TokenID, 10)),
			sdk.NewAttribute("badge_type", badgeType),
			sdk.NewAttribute("pool_id", strconv.FormatUint(poolID, 10)),
			sdk.NewAttribute("recipient", recipient),
			sdk.NewAttribute("minter", minter),
		),
	)

	k.logger.Info("Badge minted",
		"token_id", badge.TokenID,
		"badge_type", badgeType,
		"pool_id", poolID,
		"recipient", recipient,
	)

	return badge, nil
}

// Transfer always fails. Badges prove participation; ownership is fixed at
// mint time.
func (k *Keeper) Transfer(ctx sdk.Context, from, to string, tokenID uint64) error {
	return types.ErrTransferDisabled
}
