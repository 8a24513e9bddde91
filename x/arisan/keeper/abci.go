package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openarisan/arisan-chain/x/arisan/types"
)

// EndBlocker drives the periodic draws. For every active pool whose
// draw interval has elapsed it refreshes the yield ledger, hands the
// accrued-since-last-draw slice to the lottery module, and advances the
// pool's draw bookkeeping. The pool never picks winners itself.
func (k *Keeper) EndBlocker(ctx sdk.Context) error {
	if k.lottery == nil {
		return nil
	}
	prizePct, interval := k.lottery.DrawConfig(ctx)
	now := ctx.BlockTime().Unix()

	for _, pool := range k.GetAllPools(ctx) {
		if pool.State != types.PoolStateActive || len(pool.Members) == 0 {
			continue
		}
		if pool.IsMatured(now) {
			continue
		}
		lastDraw := pool.LastDrawAt
		if lastDraw == 0 {
			lastDraw = pool.StartTime
		}
		if now-lastDraw < interval {
			continue
		}

		yieldNow, err := k.yield.UpdateYield(ctx, pool.PoolID)
		if err != nil {
			k.logger.Error("Yield update failed before draw", "pool_id", pool.PoolID, "error", err)
			continue
		}

		accruedSinceDraw := yieldNow.Sub(pool.YieldGenerated)
		prize := accruedSinceDraw.Mul(prizePct)
		if !prize.IsPositive() {
			continue
		}

		if err := k.lottery.Draw(ctx, pool.PoolID, pool.Members, prize); err != nil {
			k.logger.Error("Draw failed", "pool_id", pool.PoolID, "error", err)
			continue
		}

		pool.YieldGenerated = yieldNow
		pool.LastDrawAt = now
		pool.DrawsDone++
		pool.UpdatedAt = now
		k.SetPool(ctx, pool)
	}
	return nil
}
