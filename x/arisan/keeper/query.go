package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openarisan/arisan-chain/x/arisan/types"
)

// QueryServer defines the arisan QueryServer
type QueryServer struct {
	keeper *Keeper
}

// NewQueryServerImpl creates a new QueryServer instance
func NewQueryServerImpl(keeper *Keeper) *QueryServer {
	return &QueryServer{keeper: keeper}
}

// Pool returns a pool by ID
func (q *QueryServer) Pool(ctx context.Context, poolID uint64) (*types.Pool, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	pool := q.keeper.GetPool(sdkCtx, poolID)
	if pool == nil {
		return nil, types.ErrPoolNotFound
	}
	return pool, nil
}

// Pools returns up to limit registry records starting at afterID
func (q *QueryServer) Pools(ctx context.Context, afterID uint64, limit int) ([]*types.PoolRecord, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if limit <= 0 {
		limit = 50
	}
	return q.keeper.ListPoolRecords(sdkCtx, afterID, limit), nil
}

// Members returns the member list of a pool in join order
func (q *QueryServer) Members(ctx context.Context, poolID uint64) ([]string, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	pool := q.keeper.GetPool(sdkCtx, poolID)
	if pool == nil {
		return nil, types.ErrPoolNotFound
	}
	return pool.Members, nil
}

// Statistics returns registry-wide pool counts
func (q *QueryServer) Statistics(ctx context.Context) (types.PoolStatistics, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return q.keeper.PoolStatistics(sdkCtx), nil
}
