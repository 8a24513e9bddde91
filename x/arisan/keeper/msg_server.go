package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openarisan/arisan-chain/x/arisan/types"
)

// MsgServer defines the arisan MsgServer
type MsgServer struct {
	keeper *Keeper
}

// NewMsgServerImpl creates a new MsgServer instance
func NewMsgServerImpl(keeper *Keeper) *MsgServer {
	return &MsgServer{keeper: keeper}
}

// CreatePool handles MsgCreatePool
func (m *MsgServer) CreatePool(ctx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	amount, err := math.LegacyNewDecFromStr(msg.ContributionAmount)
	if err != nil {
		return nil, types.ErrInvalidConfiguration.Wrap("invalid contribution amount")
	}
	config := &types.PoolConfig{
		Name:               msg.Name,
		ContributionAmount: amount,
		MaxMembers:         msg.MaxMembers,
		DurationSeconds:    msg.DurationSeconds,
		StrategyID:         msg.StrategyID,
	}

	pool, err := m.keeper.CreatePool(sdkCtx, msg.Creator, config)
	if err != nil {
		return nil, err
	}

	return &types.MsgCreatePoolResponse{
		PoolID:  pool.PoolID,
		EndTime: pool.EndTime,
	}, nil
}

// JoinPool handles MsgJoinPool
func (m *MsgServer) JoinPool(ctx context.Context, msg *types.MsgJoinPool) (*types.MsgJoinPoolResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	amount, err := math.LegacyNewDecFromStr(msg.Amount)
	if err != nil {
		return nil, types.ErrIncorrectAmount
	}

	pool, err := m.keeper.Join(sdkCtx, msg.Member, msg.PoolID, amount)
	if err != nil {
		return nil, err
	}

	return &types.MsgJoinPoolResponse{MemberIndex: len(pool.Members) - 1}, nil
}

// LeavePool handles MsgLeavePool
func (m *MsgServer) LeavePool(ctx context.Context, msg *types.MsgLeavePool) (*types.MsgLeavePoolResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	refund, err := m.keeper.Leave(sdkCtx, msg.Member, msg.PoolID)
	if err != nil {
		return nil, err
	}

	return &types.MsgLeavePoolResponse{Refund: refund.String()}, nil
}

// WithdrawFunds handles MsgWithdrawFunds
func (m *MsgServer) WithdrawFunds(ctx context.Context, msg *types.MsgWithdrawFunds) (*types.MsgWithdrawFundsResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	payout, err := m.keeper.WithdrawFunds(sdkCtx, msg.Member, msg.PoolID)
	if err != nil {
		return nil, err
	}

	return &types.MsgWithdrawFundsResponse{Payout: payout.String()}, nil
}

// EmergencyCancel handles MsgEmergencyCancel
func (m *MsgServer) EmergencyCancel(ctx context.Context, msg *types.MsgEmergencyCancel) (*types.MsgEmergencyCancelResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if err := m.keeper.EmergencyCancel(sdkCtx, msg.Admin, msg.PoolID, msg.Reason); err != nil {
		return nil, err
	}

	return &types.MsgEmergencyCancelResponse{}, nil
}

// GrantRole handles MsgGrantRole
func (m *MsgServer) GrantRole(ctx context.Context, msg *types.MsgGrantRole) (*types.MsgGrantRoleResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if err := m.keeper.GrantRole(sdkCtx, msg.Authority, msg.Role, msg.Account); err != nil {
		return nil, err
	}
	return &types.MsgGrantRoleResponse{}, nil
}

// RevokeRole handles MsgRevokeRole
func (m *MsgServer) RevokeRole(ctx context.Context, msg *types.MsgRevokeRole) (*types.MsgRevokeRoleResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if err := m.keeper.RevokeRole(sdkCtx, msg.Authority, msg.Role, msg.Account); err != nil {
		return nil, err
	}
	return &types.MsgRevokeRoleResponse{}, nil
}
