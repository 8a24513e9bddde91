package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openarisan/arisan-chain/x/yield/types"
)

// MsgServer defines the yield MsgServer
type MsgServer struct {
	keeper *Keeper
}

// NewMsgServerImpl creates a new MsgServer instance
func NewMsgServerImpl(keeper *Keeper) *MsgServer {
	return &MsgServer{keeper: keeper}
}

// UpdateYield handles MsgUpdateYield
func (m *MsgServer) UpdateYield(ctx context.Context, msg *types.MsgUpdateYield) (*types.MsgUpdateYieldResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	inv, err := m.keeper.UpdateYield(sdkCtx, msg.PoolID)
	if err != nil {
		return nil, err
	}

	return &types.MsgUpdateYieldResponse{
		YieldGenerated: inv.YieldGenerated.String(),
		CurrentValue:   inv.CurrentValue.String(),
	}, nil
}

// PauseDeposits handles MsgPauseDeposits
func (m *MsgServer) PauseDeposits(ctx context.Context, msg *types.MsgPauseDeposits) (*types.MsgPauseDepositsResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if err := m.keeper.Pause(sdkCtx, msg.Authority); err != nil {
		return nil, err
	}
	return &types.MsgPauseDepositsResponse{}, nil
}

// UnpauseDeposits handles MsgUnpauseDeposits
func (m *MsgServer) UnpauseDeposits(ctx context.Context, msg *types.MsgUnpauseDeposits) (*types.MsgUnpauseDepositsResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if err := m.keeper.Unpause(sdkCtx, msg.Authority); err != nil {
		return nil, err
	}
	return &types.MsgUnpauseDepositsResponse{}, nil
}

// RegisterStrategy handles MsgRegisterStrategy
func (m *MsgServer) RegisterStrategy(ctx context.Context, msg *types.MsgRegisterStrategy) (*types.MsgRegisterStrategyResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	strategy := types.Strategy{
		StrategyID:     msg.StrategyID,
		Name:           msg.Name,
		ExpectedAPYBps: msg.ExpectedAPYBps,
		IsActive:       false,
	}
	if err := m.keeper.RegisterStrategy(sdkCtx, msg.Authority, strategy); err != nil {
		return nil, err
	}
	return &types.MsgRegisterStrategyResponse{}, nil
}

// SetStrategyActive handles MsgSetStrategyActive
func (m *MsgServer) SetStrategyActive(ctx context.Context, msg *types.MsgSetStrategyActive) (*types.MsgSetStrategyActiveResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if err := m.keeper.SetStrategyActive(sdkCtx, msg.Authority, msg.StrategyID, msg.Active); err != nil {
		return nil, err
	}
	return &types.MsgSetStrategyActiveResponse{}, nil
}
