package keeper

import (
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openarisan/arisan-chain/x/arisan/types"
)

// coinsOf converts a ledger amount to bank coins, truncating sub-unit dust
func coinsOf(amount math.LegacyDec) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(types.BaseDenom, amount.TruncateInt()))
}

// CreatePool creates a new pool. The pool is active immediately; its
// maturity clock starts at creation.
func (k *Keeper) CreatePool(ctx sdk.Context, creator string, config *types.PoolConfig) (*types.Pool, error) {
	if !k.HasRole(ctx, types.RolePoolCreator, creator) {
		return nil, types.ErrUnauthorized
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	poolID := k.nextPoolID(ctx)
	pool := types.NewPool(poolID, creator, config, ctx.BlockTime().Unix())
	k.SetPool(ctx, pool)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			"arisan_pool_created",
			sdk.NewAttribute("pool_id", strconv.FormatUint(poolID, 10)),
			sdk.NewAttribute("creator", creator),
			sdk.NewAttribute("name", pool.Name),
			sdk.NewAttribute("contribution_amount", pool.ContributionAmount.String()),
			sdk.NewAttribute("max_members", strconv.Itoa(pool.MaxMembers)),
			sdk.NewAttribute("end_time", strconv.FormatInt(pool.EndTime, 10)),
		),
	)

	k.logger.Info("Pool created",
		"pool_id", poolID,
		"creator", creator,
		"name", pool.Name,
		"max_members", pool.MaxMembers,
	)

	return pool, nil
}

// Join adds a member to an active pool. The pool ledger is committed
// before the funds move; the bank transfer, the yield deposit and the
// join badge follow in that order.
func (k *Keeper) Join(ctx sdk.Context, member string, poolID uint64, amount math.LegacyDec) (*types.Pool, error) {
	pool := k.GetPool(ctx, poolID)
	if pool == nil {
		return nil, types.ErrPoolNotFound
	}
	now := ctx.BlockTime().Unix()
	if pool.State != types.PoolStateActive || pool.IsMatured(now) {
		return nil, types.ErrPoolNotActive
	}
	if pool.IsFull() {
		return nil, types.ErrPoolFull
	}
	if pool.IsMember(member) {
		return nil, types.ErrAlreadyMember
	}
	if amount.IsNil() || !amount.Equal(pool.ContributionAmount) {
		return nil, types.ErrIncorrectAmount
	}

	pool.Members = append(pool.Members, member)
	pool.TotalContributions = pool.TotalContributions.Add(amount)
	pool.UpdatedAt = now
	k.SetPool(ctx, pool)

	memberAddr, err := sdk.AccAddressFromBech32(member)
	if err != nil {
		return nil, err
	}
	if err := k.bank.SendCoinsFromAccountToModule(ctx, memberAddr, types.ModuleName, coinsOf(amount)); err != nil {
		return nil, err
	}
	if err := k.yield.Deposit(ctx, poolID, pool.StrategyID, amount); err != nil {
		return nil, err
	}
	if err := k.mintBadge(ctx, member, "join", poolID); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			"arisan_member_joined",
			sdk.NewAttribute("pool_id", strconv.FormatUint(poolID, 10)),
			sdk.NewAttribute("member", member),
			sdk.NewAttribute("amount", amount.String()),
			sdk.NewAttribute("members", strconv.Itoa(len(pool.Members))),
		),
	)

	k.logger.Info("Member joined",
		"pool_id", poolID,
		"member", member,
		"members", len(pool.Members),
	)

	return pool, nil
}

// Leave refunds a member's contribution and removes them from the pool.
// Only possible before the first lottery draw and before maturity.
func (k *Keeper) Leave(ctx sdk.Context, member string, poolID uint64) (math.LegacyDec, error) {
	pool := k.GetPool(ctx, poolID)
	if pool == nil {
		return math.LegacyZeroDec(), types.ErrPoolNotFound
	}
	if pool.State != types.PoolStateActive {
		return math.LegacyZeroDec(), types.ErrPoolNotActive
	}
	if !pool.IsMember(member) {
		return math.LegacyZeroDec(), types.ErrNotMember
	}
	now := ctx.BlockTime().Unix()
	if pool.DrawsDone > 0 || pool.IsMatured(now) {
		return math.LegacyZeroDec(), types.ErrCannotLeave
	}

	refund := pool.ContributionAmount
	pool.RemoveMember(member)
	pool.TotalContributions = pool.TotalContributions.Sub(refund)
	pool.UpdatedAt = now
	k.SetPool(ctx, pool)

	if err := k.yield.ReducePrincipal(ctx, poolID, refund); err != nil {
		return math.LegacyZeroDec(), err
	}
	memberAddr, err := sdk.AccAddressFromBech32(member)
	if err != nil {
		return math.LegacyZeroDec(), err
	}
	if err := k.bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, memberAddr, coinsOf(refund)); err != nil {
		return math.LegacyZeroDec(), err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			"arisan_member_left",
			sdk.NewAttribute("pool_id", strconv.FormatUint(poolID, 10)),
			sdk.NewAttribute("member", member),
			sdk.NewAttribute("refund", refund.String()),
		),
	)

	k.logger.Info("Member left",
		"pool_id", poolID,
		"member", member,
		"refund", refund.String(),
	)

	return refund, nil
}
