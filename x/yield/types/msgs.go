package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message types
const (
	TypeMsgUpdateYield       = "update_yield"
	TypeMsgPauseDeposits     = "pause_deposits"
	TypeMsgUnpauseDeposits   = "unpause_deposits"
	TypeMsgRegisterStrategy  = "register_strategy"
	TypeMsgSetStrategyActive = "set_strategy_active"
)

// MsgUpdateYield defines the UpdateYield message
type MsgUpdateYield struct {
	Caller string `json:"caller"`
	PoolID uint64 `json:"pool_id"`
}

// Route implements sdk.Msg
func (msg MsgUpdateYield) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgUpdateYield) Type() string { return TypeMsgUpdateYield }

// ValidateBasic implements sdk.Msg
func (msg MsgUpdateYield) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return err
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgUpdateYield) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Caller)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgUpdateYield) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgUpdateYield) Reset() { *msg = MsgUpdateYield{} }

// String implements proto.Message
func (msg MsgUpdateYield) String() string {
	return fmt.Sprintf("MsgUpdateYield{Caller: %s, PoolID: %d}", msg.Caller, msg.PoolID)
}

// MsgUpdateYieldResponse defines the UpdateYield response
type MsgUpdateYieldResponse struct {
	YieldGenerated string `json:"yield_generated"`
	CurrentValue   string `json:"current_value"`
}

// MsgPauseDeposits defines the PauseDeposits message
type MsgPauseDeposits struct {
	Authority string `json:"authority"`
}

// Route implements sdk.Msg
func (msg MsgPauseDeposits) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgPauseDeposits) Type() string { return TypeMsgPauseDeposits }

// ValidateBasic implements sdk.Msg
func (msg MsgPauseDeposits) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return err
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgPauseDeposits) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgPauseDeposits) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgPauseDeposits) Reset() { *msg = MsgPauseDeposits{} }

// String implements proto.Message
func (msg MsgPauseDeposits) String() string {
	return fmt.Sprintf("MsgPauseDeposits{Authority: %s}", msg.Authority)
}

// MsgPauseDepositsResponse defines the PauseDeposits response
type MsgPauseDepositsResponse struct{}

// MsgUnpauseDeposits defines the UnpauseDeposits message
type MsgUnpauseDeposits struct {
	Authority string `json:"authority"`
}

// Route implements sdk.Msg
func (msg MsgUnpauseDeposits) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgUnpauseDeposits) Type() string { return TypeMsgUnpauseDeposits }

// ValidateBasic implements sdk.Msg
func (msg MsgUnpauseDeposits) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return err
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgUnpauseDeposits) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgUnpauseDeposits) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgUnpauseDeposits) Reset() { *msg = MsgUnpauseDeposits{} }

// String implements proto.Message
func (msg MsgUnpauseDeposits) String() string {
	return fmt.Sprintf("MsgUnpauseDeposits{Authority: %s}", msg.Authority)
}

// MsgUnpauseDepositsResponse defines the UnpauseDeposits response
type MsgUnpauseDepositsResponse struct{}

// MsgRegisterStrategy defines the RegisterStrategy message
type MsgRegisterStrategy struct {
	Authority      string `json:"authority"`
	StrategyID     uint64 `json:"strategy_id"`
	Name           string `json:"name"`
	ExpectedAPYBps int64  `json:"expected_apy_bps"`
}

// Route implements sdk.Msg
func (msg MsgRegisterStrategy) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgRegisterStrategy) Type() string { return TypeMsgRegisterStrategy }

// ValidateBasic implements sdk.Msg
func (msg MsgRegisterStrategy) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return err
	}
	if msg.Name == "" {
		return ErrStrategyNotFound
	}
	if msg.ExpectedAPYBps < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgRegisterStrategy) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgRegisterStrategy) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgRegisterStrategy) Reset() { *msg = MsgRegisterStrategy{} }

// String implements proto.Message
func (msg MsgRegisterStrategy) String() string {
	return fmt.Sprintf("MsgRegisterStrategy{Authority: %s, StrategyID: %d, Name: %s}", msg.Authority, msg.StrategyID, msg.Name)
}

// MsgRegisterStrategyResponse defines the RegisterStrategy response
type MsgRegisterStrategyResponse struct{}

// MsgSetStrategyActive defines the SetStrategyActive message
type MsgSetStrategyActive struct {
	Authority  string `json:"authority"`
	StrategyID uint64 `json:"strategy_id"`
	Active     bool   `json:"active"`
}

// Route implements sdk.Msg
func (msg MsgSetStrategyActive) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgSetStrategyActive) Type() string { return TypeMsgSetStrategyActive }

// ValidateBasic implements sdk.Msg
func (msg MsgSetStrategyActive) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return err
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgSetStrategyActive) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgSetStrategyActive) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgSetStrategyActive) Reset() { *msg = MsgSetStrategyActive{} }

// String implements proto.Message
func (msg MsgSetStrategyActive) String() string {
	return fmt.Sprintf("MsgSetStrategyActive{Authority: %s, StrategyID: %d, Active: %t}", msg.Authority, msg.StrategyID, msg.Active)
}

// MsgSetStrategyActiveResponse defines the SetStrategyActive response
type MsgSetStrategyActiveResponse struct{}

// Ensure all messages implement sdk.Msg interface
var (
	_ sdk.Msg = &MsgUpdateYield{}
	_ sdk.Msg = &MsgPauseDeposits{}
	_ sdk.Msg = &MsgUnpauseDeposits{}
	_ sdk.Msg = &MsgRegisterStrategy{}
	_ sdk.Msg = &MsgSetStrategyActive{}
)
