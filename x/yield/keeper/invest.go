package keeper

import (
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openarisan/arisan-chain/x/yield/types"
)

// Deposit adds principal to a pool's investment. An existing active
// investment accrues its pending yield before the new principal lands so
// the APY never applies retroactively to the top-up.
func (k *Keeper) Deposit(ctx sdk.Context, poolID, strategyID uint64, amount math.LegacyDec) (*types.Investment, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return nil, types.ErrZeroDeposit
	}
	if k.IsPaused(ctx) {
		return nil, types.ErrDepositsPaused
	}
	strategy := k.GetStrategy(ctx, strategyID)
	if strategy == nil || !strategy.IsActive {
		return nil, types.ErrUnsupportedStrategy
	}

	now := ctx.BlockTime().Unix()
	inv := k.GetInvestment(ctx, poolID)
	if inv != nil && inv.IsActive {
		k.accrue(ctx, inv, now)
		inv.PrincipalAmount = inv.PrincipalAmount.Add(amount)
		inv.CurrentValue = inv.PrincipalAmount.Add(inv.YieldGenerated)
	} else {
		inv = types.NewInvestment(poolID, strategyID, amount, now)
	}
	k.SetInvestment(ctx, inv)
	k.setTotalManagedFunds(ctx, k.GetTotalManagedFunds(ctx).Add(amount))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			"yield_deposit",
			sdk.NewAttribute("pool_id", strconv.FormatUint(poolID, 10)),
			sdk.NewAttribute("strategy_id", strconv.FormatUint(strategyID, 10)),
			sdk.NewAttribute("amount", amount.String()),
			sdk.NewAttribute("principal", inv.PrincipalAmount.String()),
		),
	)

	k.logger.Info("Deposit invested",
		"pool_id", poolID,
		"strategy_id", strategyID,
		"amount", amount.String(),
	)

	return inv, nil
}

// accrue folds the yield earned since LastUpdateTime into the record.
// No-op for inactive investments or non-advancing clocks.
func (k *Keeper) accrue(ctx sdk.Context, inv *types.Investment, now int64) {
	if !inv.IsActive {
		return
	}
	elapsed := now - inv.LastUpdateTime
	if elapsed <= 0 {
		return
	}
	strategy := k.GetStrategy(ctx, inv.StrategyID)
	if strategy == nil {
		return
	}
	delta := types.CalculateProjectedYield(inv.PrincipalAmount, elapsed, strategy.ExpectedAPYBps, 1)
	inv.YieldGenerated = inv.YieldGenerated.Add(delta)
	inv.CurrentValue = inv.PrincipalAmount.Add(inv.YieldGenerated)
	inv.LastUpdateTime = now
}

// UpdateYield persists accrual since the last update and returns the record
func (k *Keeper) UpdateYield(ctx sdk.Context, poolID uint64) (*types.Investment, error) {
	inv := k.GetInvestment(ctx, poolID)
	if inv == nil || !inv.IsActive {
		return nil, types.ErrNoActiveInvestment
	}

	k.accrue(ctx, inv, ctx.BlockTime().Unix())
	k.SetInvestment(ctx, inv)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			"yield_updated",
			sdk.NewAttribute("pool_id", strconv.FormatUint(poolID, 10)),
			sdk.NewAttribute("yield_generated", inv.YieldGenerated.String()),
			sdk.NewAttribute("current_value", inv.CurrentValue.String()),
		),
	)

	return inv, nil
}

// GetYield returns the yield a pool has earned to date, including the
// portion accrued since the last persisted update. Zero for unknown or
// inactive pools.
func (k *Keeper) GetYield(ctx sdk.Context, poolID uint64) math.LegacyDec {
	inv := k.GetInvestment(ctx, poolID)
	if inv == nil || !inv.IsActive {
		return math.LegacyZeroDec()
	}
	projected := inv.YieldGenerated
	elapsed := ctx.BlockTime().Unix() - inv.LastUpdateTime
	if strategy := k.GetStrategy(ctx, inv.StrategyID); strategy != nil && elapsed > 0 {
		projected = projected.Add(types.CalculateProjectedYield(inv.PrincipalAmount, elapsed, strategy.ExpectedAPYBps, 1))
	}
	return projected
}

// GetTotalValue returns principal plus yield earned to date. A withdrawn
// investment keeps reporting its final settled value.
func (k *Keeper) GetTotalValue(ctx sdk.Context, poolID uint64) math.LegacyDec {
	inv := k.GetInvestment(ctx, poolID)
	if inv == nil {
		return math.LegacyZeroDec()
	}
	if !inv.IsActive {
		return inv.CurrentValue
	}
	return inv.PrincipalAmount.Add(k.GetYield(ctx, poolID))
}

// Withdraw finalizes accrual, deactivates the investment, and returns
// principal plus yield. A second call fails; withdrawals are not blocked
// by the deposit pause.
func (k *Keeper) Withdraw(ctx sdk.Context, poolID uint64) (math.LegacyDec, error) {
	inv := k.GetInvestment(ctx, poolID)
	if inv == nil || !inv.IsActive {
		return math.LegacyZeroDec(), types.ErrNoActiveInvestment
	}

	k.accrue(ctx, inv, ctx.BlockTime().Unix())
	payout := inv.CurrentValue
	inv.IsActive = false
	k.SetInvestment(ctx, inv)

	total := k.GetTotalManagedFunds(ctx).Sub(inv.PrincipalAmount)
	if total.IsNegative() {
		total = math.LegacyZeroDec()
	}
	k.setTotalManagedFunds(ctx, total)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			"yield_withdrawn",
			sdk.NewAttribute("pool_id", strconv.FormatUint(poolID, 10)),
			sdk.NewAttribute("principal", inv.PrincipalAmount.String()),
			sdk.NewAttribute("yield", inv.YieldGenerated.String()),
			sdk.NewAttribute("payout", payout.String()),
		),
	)

	k.logger.Info("Investment withdrawn",
		"pool_id", poolID,
		"payout", payout.String(),
	)

	return payout, nil
}

// ReducePrincipal returns part of a pool's principal, leaving accrued
// yield untouched. Used when a member leaves before maturity.
func (k *Keeper) ReducePrincipal(ctx sdk.Context, poolID uint64, amount math.LegacyDec) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount
	}
	inv := k.GetInvestment(ctx, poolID)
	if inv == nil || !inv.IsActive {
		return types.ErrNoActiveInvestment
	}

	k.accrue(ctx, inv, ctx.BlockTime().Unix())
	if amount.GT(inv.PrincipalAmount) {
		return types.ErrInvalidAmount
	}
	inv.PrincipalAmount = inv.PrincipalAmount.Sub(amount)
	inv.CurrentValue = inv.PrincipalAmount.Add(inv.YieldGenerated)
	k.SetInvestment(ctx, inv)

	total := k.GetTotalManagedFunds(ctx).Sub(amount)
	if total.IsNegative() {
		total = math.LegacyZeroDec()
	}
	k.setTotalManagedFunds(ctx, total)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			"yield_principal_reduced",
			sdk.NewAttribute("pool_id", strconv.FormatUint(poolID, 10)),
			sdk.NewAttribute("amount", amount.String()),
			sdk.NewAttribute("principal", inv.PrincipalAmount.String()),
		),
	)

	return nil
}
