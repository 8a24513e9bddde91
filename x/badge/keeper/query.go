package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openarisan/arisan-chain/x/badge/types"
)

// QueryServer defines the badge QueryServer
type QueryServer struct {
	keeper *Keeper
}

// NewQueryServerImpl creates a new QueryServer instance
func NewQueryServerImpl(keeper *Keeper) *QueryServer {
	return &QueryServer{keeper: keeper}
}

// Badge returns a badge by token ID
func (q *QueryServer) Badge(ctx context.Context, tokenID uint64) (*types.Badge, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	badge := q.keeper.GetBadge(sdkCtx, tokenID)
	if badge == nil {
		return nil, types.ErrBadgeNotFound
	}
	return badge, nil
}

// BadgesByHolder returns all badges owned by holder with a per-type summary
func (q *QueryServer) BadgesByHolder(ctx context.Context, holder string) ([]*types.Badge, *types.HolderSummary, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	badges := q.keeper.GetBadgesByHolder(sdkCtx, holder)

	summary := &types.HolderSummary{
		Holder:     holder,
		BadgeCount: int64(len(badges)),
		ByType:     make(map[string]int),
	}
	for _, b := range badges {
		summary.ByType[b.BadgeType]++
	}
	return badges, summary, nil
}

// BadgesByPool returns all badges minted for a pool
func (q *QueryServer) BadgesByPool(ctx context.Context, poolID uint64) ([]*types.Badge, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return q.keeper.GetBadgesByPool(sdkCtx, poolID), nil
}

// MintStats returns registry-wide mint statistics
func (q *QueryServer) MintStats(ctx context.Context) (*types.MintStats, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	stats := &types.MintStats{
		TotalMinted: q.keeper.TotalMinted(sdkCtx),
		CountByType: make(map[string]int),
	}
	recipients := make(map[string]struct{})
	for tokenID := uint64(1); tokenID <= stats.TotalMinted; tokenID++ {
		badge := q.keeper.GetBadge(sdkCtx, tokenID)
		if badge == nil {
			continue
		}
		stats.CountByType[badge.BadgeType]++
		recipients[badge.Recipient] = struct{}{}
	}
	stats.UniqueRecipients = len(recipients)
	return stats, nil
}

// TopHolders returns the n holders with the most badges
func (q *QueryServer) TopHolders(ctx context.Context, n int) ([]types.HolderSummary, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if n <= 0 {
		n = 10
	}
	return q.keeper.TopHolders(sdkCtx, n), nil
}
