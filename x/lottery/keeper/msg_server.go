package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openarisan/arisan-chain/x/lottery/types"
)

// MsgServer defines the lottery MsgServer
type MsgServer struct {
	keeper *Keeper
}

// NewMsgServerImpl creates a new MsgServer instance
func NewMsgServerImpl(keeper *Keeper) *MsgServer {
	return &MsgServer{keeper: keeper}
}

// UpdateConfig handles MsgUpdateConfig
func (m *MsgServer) UpdateConfig(ctx context.Context, msg *types.MsgUpdateConfig) (*types.MsgUpdateConfigResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	pct, err := math.LegacyNewDecFromStr(msg.PrizePoolPercentage)
	if err != nil {
		return nil, types.ErrInvalidConfig
	}
	cfg := types.Config{
		PrizePoolPercentage:  pct,
		RoundIntervalSeconds: msg.RoundIntervalSeconds,
	}
	if err := m.keeper.SetConfig(sdkCtx, msg.Authority, cfg); err != nil {
		return nil, err
	}
	return &types.MsgUpdateConfigResponse{}, nil
}
