package keeper

import (
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openarisan/arisan-chain/x/arisan/types"
)

// WithdrawFunds pays out a member's share of a matured pool. The first
// call settles the investment and fixes PayoutPerMember before any
// transfer; every member is paid exactly once; the last payout moves the
// pool to completed. On a cancelled pool this degrades to an immediate
// principal-only refund.
func (k *Keeper) WithdrawFunds(ctx sdk.Context, member string, poolID uint64) (math.LegacyDec, error) {
	pool := k.GetPool(ctx, poolID)
	if pool == nil {
		return math.LegacyZeroDec(), types.ErrPoolNotFound
	}
	if pool.State == types.PoolStateCreated {
		return math.LegacyZeroDec(), types.ErrPoolNotActive
	}
	if !pool.IsMember(member) {
		return math.LegacyZeroDec(), types.ErrNotMember
	}
	if pool.HasWithdrawn(member) {
		return math.LegacyZeroDec(), types.ErrAlreadyWithdrawn
	}

	now := ctx.BlockTime().Unix()
	cancelled := pool.State == types.PoolStateCancelled
	if !cancelled && !pool.IsMatured(now) {
		return math.LegacyZeroDec(), types.ErrNotMatured
	}

	// Settlement happens exactly once, on the first withdrawal
	if !pool.InvestmentWithdrawn {
		total, err := k.yield.Withdraw(ctx, poolID)
		if err != nil {
			return math.LegacyZeroDec(), err
		}
		if cancelled {
			// Yield earned before the cancel stays in the module account
			pool.PayoutPerMember = pool.ContributionAmount
		} else {
			pool.YieldGenerated = total.Sub(pool.TotalContributions)
			pool.PayoutPerMember = total.QuoInt64(int64(len(pool.Members)))
		}
		pool.InvestmentWithdrawn = true
		pool.UpdatedAt = now
		k.SetPool(ctx, pool)
	}

	payout := pool.PayoutPerMember
	pool.Withdrawn[member] = true

	allPaid := true
	for _, m := range pool.Members {
		if !pool.Withdrawn[m] {
			allPaid = false
			break
		}
	}
	if allPaid && pool.State == types.PoolStateActive {
		pool.State = types.PoolStateCompleted
	}
	pool.UpdatedAt = now
	k.SetPool(ctx, pool)

	memberAddr, err := sdk.AccAddressFromBech32(member)
	if err != nil {
		return math.LegacyZeroDec(), err
	}
	if err := k.bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, memberAddr, coinsOf(payout)); err != nil {
		return math.LegacyZeroDec(), err
	}
	if !cancelled {
		if err := k.mintBadge(ctx, member, "pool_completion", poolID); err != nil {
			return math.LegacyZeroDec(), err
		}
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			"arisan_funds_withdrawn",
			sdk.NewAttribute("pool_id", strconv.FormatUint(poolID, 10)),
			sdk.NewAttribute("member", member),
			sdk.NewAttribute("payout", payout.String()),
			sdk.NewAttribute("state", pool.State),
		),
	)

	k.logger.Info("Funds withdrawn",
		"pool_id", poolID,
		"member", member,
		"payout", payout.String(),
		"state", pool.State,
	)

	return payout, nil
}

// EmergencyCancel moves an active pool to cancelled. Joins and draws
// stop; members reclaim their principal through WithdrawFunds. Payouts
// already made are not reversed.
func (k *Keeper) EmergencyCancel(ctx sdk.Context, admin string, poolID uint64, reason string) error {
	if !k.HasRole(ctx, types.RoleEmergencyAdmin, admin) {
		return types.ErrUnauthorized
	}
	pool := k.GetPool(ctx, poolID)
	if pool == nil {
		return types.ErrPoolNotFound
	}
	if pool.State != types.PoolStateActive {
		return types.ErrPoolNotActive
	}

	pool.State = types.PoolStateCancelled
	pool.UpdatedAt = ctx.BlockTime().Unix()
	k.SetPool(ctx, pool)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			"arisan_pool_cancelled",
			sdk.NewAttribute("pool_id", strconv.FormatUint(poolID, 10)),
			sdk.NewAttribute("admin", admin),
			sdk.NewAttribute("reason", reason),
		),
	)

	k.logger.Info("Pool cancelled",
		"pool_id", poolID,
		"admin", admin,
		"reason", reason,
	)

	return nil
}
