package types

// Module name and store key
const (
	ModuleName = "badge"
	StoreKey   = ModuleName
)

// Badge types
const (
	BadgeTypeJoin           = "join"
	BadgeTypeLotteryWinner  = "lottery_winner"
	BadgeTypePoolCompletion = "pool_completion"
)

// Roles
const (
	RoleAdmin  = "badge_admin"
	RoleMinter = "badge_minter"
)

// ValidBadgeType reports whether t is a known badge type.
func ValidBadgeType(t string) bool {
	switch t {
	case BadgeTypeJoin, BadgeTypeLotteryWinner, BadgeTypePoolCompletion:
		return true
	}
	return false
}

// Badge is a non-transferable achievement token. Ownership is fixed at mint
// time; there is no transfer operation.
type Badge struct {
	TokenID   uint64 `json:"token_id"`
	BadgeType string `json:"badge_type"`
	PoolID    uint64 `json:"pool_id"`
	Recipient string `json:"recipient"`
	MintedAt  int64  `json:"minted_at"`
}

// RoleGrant records that an account holds a role.
type RoleGrant struct {
	Role      string `json:"role"`
	Account   string `json:"account"`
	GrantedBy string `json:"granted_by"`
	GrantedAt int64  `json:"granted_at"`
}

// HolderSummary aggregates badge ownership for one account.
type HolderSummary struct {
	Holder     string         `json:"holder"`
	BadgeCount int64          `json:"badge_count"`
	ByType     map[string]int `json:"by_type,omitempty"`
}

// TrustConfig is the capability descriptor handed to the keeper at
// construction. Accounts listed here may mint without a runtime role grant;
// this replaces deployment-order-sensitive grant calls with typed wiring
// validated at startup.
type TrustConfig struct {
	Admin          string   `json:"admin"`
	TrustedMinters []string `json:"trusted_minters"`
}

// Validate checks the trust configuration.
func (c *TrustConfig) Validate() error {
	if c.Admin == "" {
		return ErrInvalidTrustConfig
	}
	for _, m := range c.TrustedMinters {
		if m == "" {
			return ErrInvalidTrustConfig
		}
	}
	return nil
}

// IsTrustedMinter reports whether account is in the construction-time minter set.
func (c *TrustConfig) IsTrustedMinter(account string) bool {
	for _, m := range c.TrustedMinters {
		if m == account {
			return true
		}
	}
	return false
}

// MintStats aggregates registry-wide mint counts.
type MintStats struct {
	TotalMinted      uint64         `json:"total_minted"`
	CountByType      map[string]int `json:"count_by_type"`
	UniqueRecipients int            `json:"unique_recipients"`
}
