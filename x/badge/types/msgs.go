package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message types
const (
	TypeMsgMintBadge  = "mint_badge"
	TypeMsgGrantRole  = "grant_role"
	TypeMsgRevokeRole = "revoke_role"
)

// MsgMintBadge defines the MintBadge message
type MsgMintBadge struct {
	Minter    string `json:"minter"`
	Recipient string `json:"recipient"`
	BadgeType string `json:"badge_type"`
	PoolID    uint64 `json:"pool_id"`
}

// Route implements sdk.Msg
func (msg MsgMintBadge) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgMintBadge) Type() string { return TypeMsgMintBadge }

// ValidateBasic implements sdk.Msg
func (msg MsgMintBadge) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Minter); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return ErrInvalidRecipient
	}
	if !ValidBadgeType(msg.BadgeType) {
		return ErrInvalidBadgeType
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgMintBadge) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Minter)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgMintBadge) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgMintBadge) Reset() { *msg = MsgMintBadge{} }

// String implements proto.Message
func (msg MsgMintBadge) String() string {
	return fmt.Sprintf("MsgMintBadge{Minter: %s, Recipient: %s, BadgeType: %s, PoolID: %d}", msg.Minter, msg.Recipient, msg.BadgeType, msg.PoolID)
}

// MsgMintBadgeResponse defines the MintBadge response
type MsgMintBadgeResponse struct {
	TokenID  uint64 `json:"token_id"`
	MintedAt int64  `json:"minted_at"`
}

// MsgGrantRole defines the GrantRole message
type MsgGrantRole struct {
	Authority string `json:"authority"`
	Role      string `json:"role"`
	Account   string `json:"account"`
}

// Route implements sdk.Msg
func (msg MsgGrantRole) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgGrantRole) Type() string { return TypeMsgGrantRole }

// ValidateBasic implements sdk.Msg
func (msg MsgGrantRole) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return err
	}
	if msg.Account == "" {
		return ErrInvalidRecipient
	}
	if msg.Role != RoleAdmin && msg.Role != RoleMinter {
		return ErrInvalidRole
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgGrantRole) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgGrantRole) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgGrantRole) Reset() { *msg = MsgGrantRole{} }

// String implements proto.Message
func (msg MsgGrantRole) String() string {
	return fmt.Sprintf("MsgGrantRole{Authority: %s, Role: %s, Account: %s}", msg.Authority, msg.Role, msg.Account)
}

// MsgGrantRoleResponse defines the GrantRole response
type MsgGrantRoleResponse struct {
	GrantedAt int64 `json:"granted_at"`
}

// MsgRevokeRole defines the RevokeRole message
type MsgRevokeRole struct {
	Authority string `json:"authority"`
	Role      string `json:"role"`
	Account   string `json:"account"`
}

// Route implements sdk.Msg
func (msg MsgRevokeRole) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgRevokeRole) Type() string { return TypeMsgRevokeRole }

// ValidateBasic implements sdk.Msg
func (msg MsgRevokeRole) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return err
	}
	if msg.Account == "" {
		return ErrInvalidRecipient
	}
	if msg.Role != RoleAdmin && msg.Role != RoleMinter {
		return ErrInvalidRole
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgRevokeRole) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgRevokeRole) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgRevokeRole) Reset() { *msg = MsgRevokeRole{} }

// String implements proto.Message
func (msg MsgRevokeRole) String() string {
	return fmt.Sprintf("MsgRevokeRole{Authority: %s, Role: %s, Account: %s}", msg.Authority, msg.Role, msg.Account)
}

// MsgRevokeRoleResponse defines the RevokeRole response
type MsgRevokeRoleResponse struct{}

// Ensure all messages implement sdk.Msg interface
var (
	_ sdk.Msg = &MsgMintBadge{}
	_ sdk.Msg = &MsgGrantRole{}
	_ sdk.Msg = &MsgRevokeRole{}
)
