package keeper

import (
	"encoding/json"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openarisan/arisan-chain/x/arisan/types"
)

// Store key prefixes
var (
	PoolKeyPrefix   = []byte{0x01}
	RecordKeyPrefix = []byte{0x02}
	NextPoolIDKey   = []byte{0x03}
	RoleKeyPrefix   = []byte{0x04}
)

// Keeper manages pool lifecycles. Cross-module effects (funds, yield,
// draws, badges) go through the expected-keeper interfaces wired in by
// the app; the pool's own ledger is always committed first.
type Keeper struct {
	cdc         codec.BinaryCodec
	storeKey    storetypes.StoreKey
	authority   string
	badgePolicy string

	bank    types.BankKeeper
	yield   types.YieldKeeper
	lottery types.LotteryKeeper
	badge   types.BadgeMinter

	logger   log.Logger
	registry *poolRegistry
}

// NewKeeper creates a new arisan keeper
func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
	authority string,
	badgePolicy string,
	bank types.BankKeeper,
	yield types.YieldKeeper,
	lottery types.LotteryKeeper,
	badge types.BadgeMinter,
	logger log.Logger,
) *Keeper {
	if badgePolicy != types.BadgePolicyBestEffort && badgePolicy != types.BadgePolicyMandatory {
		panic("unknown badge policy: " + badgePolicy)
	}
	return &Keeper{
		cdc:         cdc,
		storeKey:    storeKey,
		authority:   authority,
		badgePolicy: badgePolicy,
		bank:        bank,
		yield:       yield,
		lottery:     lottery,
		badge:       badge,
		logger:      logger.With("module", "x/arisan"),
		registry:    newPoolRegistry(),
	}
}

// Logger returns the module logger
func (k *Keeper) Logger() log.Logger {
	return k.logger
}

// GetAuthority returns the module authority address
func (k *Keeper) GetAuthority() string {
	return k.authority
}

// GetStore returns the KVStore
func (k *Keeper) GetStore(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

// ============ Pool Storage ============

func poolKey(poolID uint64) []byte {
	return append(PoolKeyPrefix, sdk.Uint64ToBigEndian(poolID)...)
}

func recordKey(poolID uint64) []byte {
	return append(RecordKeyPrefix, sdk.Uint64ToBigEndian(poolID)...)
}

// SetPool saves a pool and keeps the registry record and index in step
func (k *Keeper) SetPool(ctx sdk.Context, pool *types.Pool) {
	store := k.GetStore(ctx)
	bz, _ := json.Marshal(pool)
	store.Set(poolKey(pool.PoolID), bz)

	record := &types.PoolRecord{
		PoolID:    pool.PoolID,
		Creator:   pool.Creator,
		State:     pool.State,
		CreatedAt: pool.CreatedAt,
	}
	rbz, _ := json.Marshal(record)
	store.Set(recordKey(pool.PoolID), rbz)

	k.registry.upsert(record)
}

// GetPool retrieves a pool from the store
func (k *Keeper) GetPool(ctx sdk.Context, poolID uint64) *types.Pool {
	store := k.GetStore(ctx)
	bz := store.Get(poolKey(poolID))
	if bz == nil {
		return nil
	}
	var pool types.Pool
	if err := json.Unmarshal(bz, &pool); err != nil {
		return nil
	}
	if pool.Withdrawn == nil {
		pool.Withdrawn = make(map[string]bool)
	}
	return &pool
}

// GetAllPools returns every pool, ordered by ID
func (k *Keeper) GetAllPools(ctx sdk.Context) []*types.Pool {
	store := k.GetStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PoolKeyPrefix)
	defer iterator.Close()

	var pools []*types.Pool
	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := json.Unmarshal(iterator.Value(), &pool); err != nil {
			continue
		}
		if pool.Withdrawn == nil {
			pool.Withdrawn = make(map[string]bool)
		}
		pools = append(pools, &pool)
	}
	return pools
}

// GetRecord retrieves a registry record
func (k *Keeper) GetRecord(ctx sdk.Context, poolID uint64) *types.PoolRecord {
	store := k.GetStore(ctx)
	bz := store.Get(recordKey(poolID))
	if bz == nil {
		return nil
	}
	var record types.PoolRecord
	if err := json.Unmarshal(bz, &record); err != nil {
		return nil
	}
	return &record
}

// nextPoolID allocates the next monotonic pool ID, starting at 1
func (k *Keeper) nextPoolID(ctx sdk.Context) uint64 {
	store := k.GetStore(ctx)
	next := uint64(1)
	if bz := store.Get(NextPoolIDKey); bz != nil {
		next = sdk.BigEndianToUint64(bz)
	}
	store.Set(NextPoolIDKey, sdk.Uint64ToBigEndian(next+1))
	return next
}

// ============ Roles ============

func roleKey(role, account string) []byte {
	return append(RoleKeyPrefix, []byte(role+"/"+account)...)
}

// HasRole reports whether account holds role. The authority holds every
// role implicitly.
func (k *Keeper) HasRole(ctx sdk.Context, role, account string) bool {
	if account == k.authority {
		return true
	}
	return k.GetStore(ctx).Has(roleKey(role, account))
}

// GrantRole grants role to account. Authority only.
func (k *Keeper) GrantRole(ctx sdk.Context, authority, role, account string) error {
	if authority != k.authority {
		return types.ErrUnauthorized
	}
	if role != types.RolePoolCreator && role != types.RoleEmergencyAdmin {
		return types.ErrInvalidRole
	}
	k.GetStore(ctx).Set(roleKey(role, account), []byte{1})

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			"arisan_role_granted",
			sdk.NewAttribute("role", role),
			sdk.NewAttribute("account", account),
		),
	)

	k.logger.Info("Role granted", "role", role, "account", account)
	return nil
}

// RevokeRole removes a role grant. Authority only.
func (k *Keeper) RevokeRole(ctx sdk.Context, authority, role, account string) error {
	if authority != k.authority {
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
			"arisan_role_revoked",
			sdk.NewAttribute("role", role),
			sdk.NewAttribute("account", account),
		),
	)

	k.logger.Info("Role revoked", "role", role, "account", account)
	return nil
}

// mintBadge applies the configured badge policy to a single mint attempt
func (k *Keeper) mintBadge(ctx sdk.Context, recipient, badgeType string, poolID uint64) error {
	if k.badge == nil {
		return nil
	}
	if err := k.badge.MintBadge(ctx, recipient, badgeType, poolID); err != nil {
		if k.badgePolicy == types.BadgePolicyMandatory {
			return types.ErrBadgeMintFailed.Wrap(err.Error())
		}
		k.logger.Error("Badge mint failed", "recipient", recipient, "badge_type", badgeType, "pool_id", poolID, "error", err)
	}
	return nil
}
