package types

import (
	"errors"

	"cosmossdk.io/math"
)

// Module name and store key
const (
	ModuleName = "lottery"
	StoreKey   = ModuleName
)

// Badge policies for winner badge minting
const (
	BadgePolicyBestEffort = "best_effort"
	BadgePolicyMandatory  = "mandatory"
)

// Round records one completed lottery draw for a pool. Participants is
// the membership snapshot the winner was drawn from.
type Round struct {
	PoolID       uint64         `json:"pool_id"`
	Round        uint64         `json:"round"`
	PrizeAmount  math.LegacyDec `json:"prize_amount"`
	Winner       string         `json:"winner"`
	Participants []string       `json:"participants"`
	DrawnAt      int64          `json:"drawn_at"`
}

// Config holds the draw parameters shared by all pools
type Config struct {
	PrizePoolPercentage  math.LegacyDec `json:"prize_pool_percentage"`
	RoundIntervalSeconds int64          `json:"round_interval_seconds"`
}

// DefaultConfig pays out 10% of accrued yield per draw, one draw per week
func DefaultConfig() Config {
	return Config{
		PrizePoolPercentage:  math.LegacyMustNewDecFromStr("0.10"),
		RoundIntervalSeconds: 7 * 24 * 60 * 60,
	}
}

// Validate checks config bounds
func (c Config) Validate() error {
	if c.PrizePoolPercentage.IsNil() || c.PrizePoolPercentage.IsNegative() ||
		c.PrizePoolPercentage.GT(math.LegacyOneDec()) {
		return errors.New("prize pool percentage must be in [0, 1]")
	}
	if c.RoundIntervalSeconds <= 0 {
		return errors.New("round interval must be positive")
	}
	return nil
}

// TrustConfig names the authority and the module accounts allowed to
// trigger draws without a runtime grant
type TrustConfig struct {
	Authority      string
	TrustedCallers []string
}

// Validate checks the trust config
func (tc TrustConfig) Validate() error {
	if tc.Authority == "" {
		return errors.New("lottery authority must be set")
	}
	for _, caller := range tc.TrustedCallers {
		if caller == "" {
			return errors.New("trusted caller must not be empty")
		}
	}
	return nil
}

// IsTrustedCaller reports whether addr is a construction-time trusted caller
func (tc TrustConfig) IsTrustedCaller(addr string) bool {
	for _, caller := range tc.TrustedCallers {
		if caller == addr {
			return true
		}
	}
	return false
}
