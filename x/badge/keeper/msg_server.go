package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openarisan/arisan-chain/x/badge/types"
)

// MsgServer defines the badge MsgServer
type MsgServer struct {
	keeper *Keeper
}

// NewMsgServerImpl creates a new MsgServer instance
func NewMsgServerImpl(keeper *Keeper) *MsgServer {
	return &MsgServer{keeper: keeper}
}

// MintBadge handles MsgMintBadge
func (m *MsgServer) MintBadge(ctx context.Context, msg *types.MsgMintBadge) (*types.MsgMintBadgeResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	badge, err := m.keeper.Mint(sdkCtx, msg.Minter, msg.Recipient, msg.BadgeType, msg.PoolID)
	if err != nil {
		return nil, err
	}

	return &types.MsgMintBadgeResponse{
		TokenID:  badge.TokenID,
		MintedAt: badge.MintedAt,
	}, nil
}

// GrantRole handles MsgGrantRole
func (m *MsgServer) GrantRole(ctx context.Context, msg *types.MsgGrantRole) (*types.MsgGrantRoleResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	grant, err := m.keeper.GrantRole(sdkCtx, msg.Authority, msg.Role, msg.Account)
	if err != nil {
		return nil, err
	}

	return &types.MsgGrantRoleResponse{GrantedAt: grant.GrantedAt}, nil
}

// RevokeRole handles MsgRevokeRole
func (m *MsgServer) RevokeRole(ctx context.Context, msg *types.MsgRevokeRole) (*types.MsgRevokeRoleResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if err := m.keeper.RevokeRole(sdkCtx, msg.Authority, msg.Role, msg.Account); err != nil {
		return nil, err
	}

	return &types.MsgRevokeRoleResponse{}, nil
}
