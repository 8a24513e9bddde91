package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openarisan/arisan-chain/x/lottery/types"
)

// QueryServer defines the lottery QueryServer
type QueryServer struct {
	keeper *Keeper
}

// NewQueryServerImpl creates a new QueryServer instance
func NewQueryServerImpl(keeper *Keeper) *QueryServer {
	return &QueryServer{keeper: keeper}
}

// Round returns one draw record
func (q *QueryServer) Round(ctx context.Context, poolID, round uint64) (*types.Round, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	r := q.keeper.GetRound(sdkCtx, poolID, round)
	if r == nil {
		return nil, types.ErrRoundNotFound
	}
	return r, nil
}

// CurrentRound returns the number of the last drawn round for a pool
func (q *QueryServer) CurrentRound(ctx context.Context, poolID uint64) (uint64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return q.keeper.CurrentRound(sdkCtx, poolID), nil
}

// RoundsByPool returns all draws for a pool
func (q *QueryServer) RoundsByPool(ctx context.Context, poolID uint64) ([]*types.Round, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return q.keeper.GetRoundsByPool(sdkCtx, poolID), nil
}

// Config returns the active draw config
func (q *QueryServer) Config(ctx context.Context) (types.Config, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return q.keeper.GetConfig(sdkCtx), nil
}
