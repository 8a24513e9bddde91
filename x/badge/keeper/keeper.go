package keeper

import (
	"encoding/json"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openarisan/arisan-chain/x/badge/types"
)

// Store key prefixes
var (
	BadgeKeyPrefix       = []byte{0x01}
	HolderIndexKeyPrefix = []byte{0x02}
	PoolIndexKeyPrefix   = []byte{0x03}
	RoleKeyPrefix        = []byte{0x04}
	NextTokenIDKey       = []byte{0x05}
)

// Keeper manages the badge registry state
type Keeper struct {
	cdc      codec.BinaryCodec
	storeKey storetypes.StoreKey
	trust    types.TrustConfig
	logger   log.Logger

	leaderboard *holderLeaderboard
}

// NewKeeper creates a new badge keeper. The trust config names the admin and
// the module accounts allowed to mint without a runtime role grant; it is
// validated here so that mis-wiring fails at startup rather than on the first
// mint.
func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
	trust types.TrustConfig,
	logger log.Logger,
) *Keeper {
	if err := trust.Validate(); err != nil {
		panic(err)
	}
	return &Keeper{
		cdc:         cdc,
		storeKey:    storeKey,
		trust:       trust,
		logger:      logger.With("module", "x/badge"),
		leaderboard: newHolderLeaderboard(),
	}
}

// Logger returns the module logger
func (k *Keeper) Logger() log.Logger {
	return k.logger
}

// GetAdmin returns the registry admin address
func (k *Keeper) GetAdmin() string {
	return k.trust.Admin
}

// GetStore returns the KVStore
func (k *Keeper) GetStore(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

// ============ Badge Storage ============

func badgeKey(tokenID uint64) []byte {
	return append(BadgeKeyPrefix, sdk.Uint64ToBigEndian(tokenID)...)
}

func holderIndexKey(holder string, tokenID uint64) []byte {
	key := append(HolderIndexKeyPrefix, []byte(holder+"/")...)
	return append(key, sdk.Uint64ToBigEndian(tokenID)...)
}

func poolIndexKey(poolID, tokenID uint64) []byte {
	key := append(PoolIndexKeyPrefix, sdk.Uint64ToBigEndian(poolID)...)
	return append(key, sdk.Uint64ToBigEndian(tokenID)...)
}

// SetBadge saves a badge and its indexes to the store
func (k *Keeper) SetBadge(ctx sdk.Context, badge *types.Badge) {
	store := k.GetStore(ctx)
	bz, _ := json.Marshal(badge)
	store.Set(badgeKey(badge.TokenID), bz)
	store.Set(holderIndexKey(badge.Recipient, badge.TokenID), sdk.Uint64ToBigEndian(badge.TokenID))
	store.Set(poolIndexKey(badge.PoolID, badge.TokenID), sdk.Uint64ToBigEndian(badge.TokenID))
}

// GetBadge retrieves a badge from the store
func (k *Keeper) GetBadge(ctx sdk.Context, tokenID uint64) *types.Badge {
	store := k.GetStore(ctx)
	bz := store.Get(badgeKey(tokenID))
	if bz == nil {
		return nil
	}
	var badge types.Badge
	if err := json.Unmarshal(bz, &badge); err != nil {
		return nil
	}
	return &badge
}

// GetBadgesByHolder returns all badges owned by holder, in mint order
func (k *Keeper) GetBadgesByHolder(ctx sdk.Context, holder string) []*types.Badge {
	store := k.GetStore(ctx)
	prefix := append(HolderIndexKeyPrefix, []byte(holder+"/")...)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var badges []*types.Badge
	for ; iterator.Valid(); iterator.Next() {
		tokenID := sdk.BigEndianToUint64(iterator.Value())
		if badge := k.GetBadge(ctx, tokenID); badge != nil {
			badges = append(badges, badge)
		}
	}
	return badges
}

// GetBadgesByPool returns all badges minted for a pool, in mint order
func (k *Keeper) GetBadgesByPool(ctx sdk.Context, poolID uint64) []*types.Badge {
	store := k.GetStore(ctx)
	prefix := append(PoolIndexKeyPrefix, sdk.Uint64ToBigEndian(poolID)...)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var badges []*types.Badge
	for ; iterator.Valid(); iterator.Next() {
		tokenID := sdk.BigEndianToUint64(iterator.Value())
		if badge := k.GetBadge(ctx, tokenID); badge != nil {
			badges = append(badges, badge)
		}
	}
	return badges
}

// nextTokenID allocates the next sequential token ID, starting at 1
func (k *Keeper) nextTokenID(ctx sdk.Context) uint64 {
	store := k.GetStore(ctx)
	next := uint64(1)
	if bz := store.Get(NextTokenIDKey); bz != nil {
		next = sdk.BigEndianToUint64(bz)
	}
	store.Set(NextTokenIDKey, sdk.Uint64ToBigEndian(next+1))
	return next
}

// TotalMinted returns the number of badges ever minted
func (k *Keeper) TotalMinted(ctx sdk.Context) uint64 {
	store := k.GetStore(ctx)
	bz := store.Get(NextTokenIDKey)
	if bz == nil {
		return 0
	}
	return sdk.BigEndianToUint64(bz) - 1
}

// ============ Role Grants ============

func roleKey(role, account string) []byte {
	return append(RoleKeyPrefix, []byte(role+"/"+account)...)
}

// HasRole reports whether account holds role. The trust config's minter set
// counts as holding the minter role, and the admin counts as holding admin.
func (k *Keeper) HasRole(ctx sdk.Context, role, account string) bool {
	switch role {
	case types.RoleAdmin:
		if account == k.trust.Admin {
			return true
		}
	case types.RoleMinter:
		if k.trust.IsTrustedMinter(account) {
			return true
		}
	}
	return k.GetStore(ctx).Has(roleKey(role, account))
}

// GrantRole grants role to account. Only the admin may grant.
func (k *Keeper) GrantRole(ctx sdk.Context, authority, role, account string) (*types.RoleGrant, error) {
	if !k.HasRole(ctx, types.RoleAdmin, authority) {
		return nil, types.ErrUnauthorized
	}
	if role != types.RoleAdmin && role != types.RoleMinter {
		return nil, types.ErrInvalidRole
	}

	grant := &types.RoleGrant{
		Role:      role,
		Account:   account,
		GrantedBy: authority,
		GrantedAt: ctx.BlockTime().Unix(),
	}
	bz, _ := json.Marshal(grant)
	k.GetStore(ctx).Set(roleKey(role, account), bz)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			"badge_role_granted",
			sdk.NewAttribute("role", role),
			sdk.NewAttribute("account", account),
			sdk.NewAttribute("granted_by", authority),
		),
	)

	k.logger.Info("Role granted", "role", role, "account", account, "granted_by", authority)
	return grant, nil
}

// RevokeRole revokes a previously granted role. Construction-time trusted
// minters and the admin cannot be revoked at runtime.
func (k *Keeper) RevokeRole(ctx sdk.Context, authority, role, account string) error {
	if !k.HasRole(ctx, types.RoleAdmin, authority) {
		return types.ErrUnauthorized
	}
	store := k.GetStore(ctx)
	key := roleKey(role, account)
	if !store.Has(key) {
		return types.ErrRoleNotGranted
	}
	store.Delete(key)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			"badge_role_revoked",
			sdk.NewAttribute("role", role),
			sdk.NewAttribute("account", account),
		),
	)

	k.logger.Info("Role revoked", "role", role, "account", account)
	return nil
}

// GetRoleGrants returns all runtime grants for a role
func (k *Keeper) GetRoleGrants(ctx sdk.Context, role string) []*types.RoleGrant {
	store := k.GetStore(ctx)
	prefix := append(RoleKeyPrefix, []byte(role+"/")...)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var grants []*types.RoleGrant
	for ; iterator.Valid(); iterator.Next() {
		var grant types.RoleGrant
		if err := json.Unmarshal(iterator.Value(), &grant); err != nil {
			continue
		}
		grants = append(grants, &grant)
	}
	return grants
}
