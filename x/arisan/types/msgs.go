package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message types
const (
	TypeMsgCreatePool      = "create_pool"
	TypeMsgJoinPool        = "join_pool"
	TypeMsgLeavePool       = "leave_pool"
	TypeMsgWithdrawFunds   = "withdraw_funds"
	TypeMsgEmergencyCancel = "emergency_cancel"
	TypeMsgGrantRole       = "grant_role"
	TypeMsgRevokeRole      = "revoke_role"
)

// MsgCreatePool defines the CreatePool message
type MsgCreatePool struct {
	Creator            string `json:"creator"`
	Name               string `json:"name"`
	ContributionAmount string `json:"contribution_amount"`
	MaxMembers         int    `json:"max_members"`
	DurationSeconds    int64  `json:"duration_seconds"`
	StrategyID         uint64 `json:"strategy_id"`
}

// Route implements sdk.Msg
func (msg MsgCreatePool) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgCreatePool) Type() string { return TypeMsgCreatePool }

// ValidateBasic implements sdk.Msg
func (msg MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return err
	}
	amount, err := math.LegacyNewDecFromStr(msg.ContributionAmount)
	if err != nil {
		return ErrInvalidConfiguration.Wrap("invalid contribution amount")
	}
	config := PoolConfig{
		Name:               msg.Name,
		ContributionAmount: amount,
		MaxMembers:         msg.MaxMembers,
		DurationSeconds:    msg.DurationSeconds,
		StrategyID:         msg.StrategyID,
	}
	return config.Validate()
}

// GetSigners implements sdk.Msg
func (msg MsgCreatePool) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Creator)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgCreatePool) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgCreatePool) Reset() { *msg = MsgCreatePool{} }

// String implements proto.Message
func (msg MsgCreatePool) String() string {
	return fmt.Sprintf("MsgCreatePool{Creator: %s, Name: %s, Amount: %s, MaxMembers: %d}",
		msg.Creator, msg.Name, msg.ContributionAmount, msg.MaxMembers)
}

// MsgCreatePoolResponse defines the CreatePool response
type MsgCreatePoolResponse struct {
	PoolID  uint64 `json:"pool_id"`
	EndTime int64  `json:"end_time"`
}

// MsgJoinPool defines the JoinPool message
type MsgJoinPool struct {
	Member string `json:"member"`
	PoolID uint64 `json:"pool_id"`
	Amount string `json:"amount"`
}

// Route implements sdk.Msg
func (msg MsgJoinPool) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgJoinPool) Type() string { return TypeMsgJoinPool }

// ValidateBasic implements sdk.Msg
func (msg MsgJoinPool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Member); err != nil {
		return err
	}
	amount, err := math.LegacyNewDecFromStr(msg.Amount)
	if err != nil || !amount.IsPositive() {
		return ErrIncorrectAmount
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgJoinPool) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Member)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgJoinPool) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgJoinPool) Reset() { *msg = MsgJoinPool{} }

// String implements proto.Message
func (msg MsgJoinPool) String() string {
	return fmt.Sprintf("MsgJoinPool{Member: %s, PoolID: %d, Amount: %s}", msg.Member, msg.PoolID, msg.Amount)
}

// MsgJoinPoolResponse defines the JoinPool response
type MsgJoinPoolResponse struct {
	MemberIndex int `json:"member_index"`
}

// MsgLeavePool defines the LeavePool message
type MsgLeavePool struct {
	Member string `json:"member"`
	PoolID uint64 `json:"pool_id"`
}

// Route implements sdk.Msg
func (msg MsgLeavePool) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgLeavePool) Type() string { return TypeMsgLeavePool }

// ValidateBasic implements sdk.Msg
func (msg MsgLeavePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Member); err != nil {
		return err
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgLeavePool) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Member)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgLeavePool) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgLeavePool) Reset() { *msg = MsgLeavePool{} }

// String implements proto.Message
func (msg MsgLeavePool) String() string {
	return fmt.Sprintf("MsgLeavePool{Member: %s, PoolID: %d}", msg.Member, msg.PoolID)
}

// MsgLeavePoolResponse defines the LeavePool response
type MsgLeavePoolResponse struct {
	Refund string `json:"refund"`
}

// MsgWithdrawFunds defines the WithdrawFunds message
type MsgWithdrawFunds struct {
	Member string `json:"member"`
	PoolID uint64 `json:"pool_id"`
}

// Route implements sdk.Msg
func (msg MsgWithdrawFunds) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgWithdrawFunds) Type() string { return TypeMsgWithdrawFunds }

// ValidateBasic implements sdk.Msg
func (msg MsgWithdrawFunds) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Member); err != nil {
		return err
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgWithdrawFunds) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Member)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgWithdrawFunds) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgWithdrawFunds) Reset() { *msg = MsgWithdrawFunds{} }

// String implements proto.Message
func (msg MsgWithdrawFunds) String() string {
	return fmt.Sprintf("MsgWithdrawFunds{Member: %s, PoolID: %d}", msg.Member, msg.PoolID)
}

// MsgWithdrawFundsResponse defines the WithdrawFunds response
type MsgWithdrawFundsResponse struct {
	Payout string `json:"payout"`
}

// MsgEmergencyCancel defines the EmergencyCancel message
type MsgEmergencyCancel struct {
	Admin  string `json:"admin"`
	PoolID uint64 `json:"pool_id"`
	Reason string `json:"reason,omitempty"`
}

// Route implements sdk.Msg
func (msg MsgEmergencyCancel) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgEmergencyCancel) Type() string { return TypeMsgEmergencyCancel }

// ValidateBasic implements sdk.Msg
func (msg MsgEmergencyCancel) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return err
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgEmergencyCancel) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgEmergencyCancel) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgEmergencyCancel) Reset() { *msg = MsgEmergencyCancel{} }

// String implements proto.Message
func (msg MsgEmergencyCancel) String() string {
	return fmt.Sprintf("MsgEmergencyCancel{Admin: %s, PoolID: %d}", msg.Admin, msg.PoolID)
}

// MsgEmergencyCancelResponse defines the EmergencyCancel response
type MsgEmergencyCancelResponse struct{}

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
		return ErrUnauthorized
	}
	if msg.Role != RolePoolCreator && msg.Role != RoleEmergencyAdmin {
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
type MsgGrantRoleResponse struct{}

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
		return ErrUnauthorized
	}
	if msg.Role != RolePoolCreator && msg.Role != RoleEmergencyAdmin {
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
	_ sdk.Msg = &MsgCreatePool{}
	_ sdk.Msg = &MsgJoinPool{}
	_ sdk.Msg = &MsgLeavePool{}
	_ sdk.Msg = &MsgWithdrawFunds{}
	_ sdk.Msg = &MsgEmergencyCancel{}
	_ sdk.Msg = &MsgGrantRole{}
	_ sdk.Msg = &MsgRevokeRole{}
)
