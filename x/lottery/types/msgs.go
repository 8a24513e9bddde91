package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message types
const (
	TypeMsgUpdateConfig = "update_config"
)

// MsgUpdateConfig defines the UpdateConfig message
type MsgUpdateConfig struct {
	Authority            string `json:"authority"`
	PrizePoolPercentage  string `json:"prize_pool_percentage"`
	RoundIntervalSeconds int64  `json:"round_interval_seconds"`
}

// Route implements sdk.Msg
func (msg MsgUpdateConfig) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgUpdateConfig) Type() string { return TypeMsgUpdateConfig }

// ValidateBasic implements sdk.Msg
func (msg MsgUpdateConfig) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return err
	}
	pct, err := math.LegacyNewDecFromStr(msg.PrizePoolPercentage)
	if err != nil {
		return ErrInvalidConfig
	}
	cfg := Config{PrizePoolPercentage: pct, RoundIntervalSeconds: msg.RoundIntervalSeconds}
	if err := cfg.Validate(); err != nil {
		return ErrInvalidConfig
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgUpdateConfig) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgUpdateConfig) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgUpdateConfig) Reset() { *msg = MsgUpdateConfig{} }

// String implements proto.Message
func (msg MsgUpdateConfig) String() string {
	return fmt.Sprintf("MsgUpdateConfig{Authority: %s, PrizePoolPercentage: %s, RoundIntervalSeconds: %d}",
		msg.Authority, msg.PrizePoolPercentage, msg.RoundIntervalSeconds)
}

// MsgUpdateConfigResponse defines the UpdateConfig response
type MsgUpdateConfigResponse struct{}

// Ensure all messages implement sdk.Msg interface
var (
	_ sdk.Msg = &MsgUpdateConfig{}
)
