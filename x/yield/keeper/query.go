package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openarisan/arisan-chain/x/yield/types"
)

// QueryServer defines the yield QueryServer
type QueryServer struct {
	keeper *Keeper
}

// NewQueryServerImpl creates a new QueryServer instance
func NewQueryServerImpl(keeper *Keeper) *QueryServer {
	return &QueryServer{keeper: keeper}
}

// Investment returns the investment record for a pool
func (q *QueryServer) Investment(ctx context.Context, poolID uint64) (*types.Investment, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	inv := q.keeper.GetInvestment(sdkCtx, poolID)
	if inv == nil {
		return nil, types.ErrNoActiveInvestment
	}
	return inv, nil
}

// YieldInfo reports the live yield numbers for a pool
type YieldInfo struct {
	PoolID         uint64 `json:"pool_id"`
	Principal      string `json:"principal"`
	YieldGenerated string `json:"yield_generated"`
	TotalValue     string `json:"total_value"`
	StrategyID     uint64 `json:"strategy_id"`
	IsActive       bool   `json:"is_active"`
}

// Yield returns live yield numbers for a pool, projected to the current
// block time. Unknown pools report zeros.
func (q *QueryServer) Yield(ctx context.Context, poolID uint64) (*YieldInfo, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	info := &YieldInfo{
		PoolID:         poolID,
		Principal:      "0",
		YieldGenerated: q.keeper.GetYield(sdkCtx, poolID).String(),
		TotalValue:     q.keeper.GetTotalValue(sdkCtx, poolID).String(),
	}
	if inv := q.keeper.GetInvestment(sdkCtx, poolID); inv != nil {
		info.Principal = inv.PrincipalAmount.String()
		info.StrategyID = inv.StrategyID
		info.IsActive = inv.IsActive
	}
	return info, nil
}

// Strategies returns all registered strategies
func (q *QueryServer) Strategies(ctx context.Context) ([]*types.Strategy, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return q.keeper.GetAllStrategies(sdkCtx), nil
}

// TotalManagedFunds returns the sum of all active principal
func (q *QueryServer) TotalManagedFunds(ctx context.Context) (string, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return q.keeper.GetTotalManagedFunds(sdkCtx).String(), nil
}
