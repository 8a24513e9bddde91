package keeper

import (
	"encoding/json"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openarisan/arisan-chain/x/lottery/types"
)

// Store key prefixes
var (
	RoundKeyPrefix        = []byte{0x01}
	CurrentRoundKeyPrefix = []byte{0x02}
	ConfigKey             = []byte{0x03}
)

// Keeper runs the periodic draws. Draw callers are gated by the trust
// config; the badge minter and prize payer are wired in by the app and
// may be nil in isolation.
type Keeper struct {
	cdc         codec.BinaryCodec
	storeKey    storetypes.StoreKey
	trust       types.TrustConfig
	badgePolicy string
	badgeMinter types.BadgeMinter
	prizePayer  types.PrizePayer
	logger      log.Logger
}

// NewKeeper creates a new lottery keeper
func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
	trust types.TrustConfig,
	badgePolicy string,
	badgeMinter types.BadgeMinter,
	prizePayer types.PrizePayer,
	logger log.Logger,
) *Keeper {
	if err := trust.Validate(); err != nil {
		panic(err)
	}
	if badgePolicy != types.BadgePolicyBestEffort && badgePolicy != types.BadgePolicyMandatory {
		panic("unknown badge policy: " + badgePolicy)
	}
	return &Keeper{
		cdc:         cdc,
		storeKey:    storeKey,
		trust:       trust,
		badgePolicy: badgePolicy,
		badgeMinter: badgeMinter,
		prizePayer:  prizePayer,
		logger:      logger.With("module", "x/lottery"),
	}
}

// Logger returns the module logger
func (k *Keeper) Logger() log.Logger {
	return k.logger
}

// GetStore returns the KVStore
func (k *Keeper) GetStore(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

// ============ Round Storage ============

func roundKey(poolID, round uint64) []byte {
	key := append(RoundKeyPrefix, sdk.Uint64ToBigEndian(poolID)...)
	return append(key, sdk.Uint64ToBigEndian(round)...)
}

func currentRoundKey(poolID uint64) []byte {
	return append(CurrentRoundKeyPrefix, sdk.Uint64ToBigEndian(poolID)...)
}

// SetRound saves a round record
func (k *Keeper) SetRound(ctx sdk.Context, round *types.Round) {
	store := k.GetStore(ctx)
	bz, _ := json.Marshal(round)
	store.Set(roundKey(round.PoolID, round.Round), bz)
}

// GetRound retrieves a round record
func (k *Keeper) GetRound(ctx sdk.Context, poolID, round uint64) *types.Round {
	store := k.GetStore(ctx)
	bz := store.Get(roundKey(poolID, round))
	if bz == nil {
		return nil
	}
	var r types.Round
	if err := json.Unmarshal(bz, &r); err != nil {
		return nil
	}
	return &r
}

// GetRoundsByPool returns all rounds drawn for a pool, in draw order
func (k *Keeper) GetRoundsByPool(ctx sdk.Context, poolID uint64) []*types.Round {
	store := k.GetStore(ctx)
	prefix := append(RoundKeyPrefix, sdk.Uint64ToBigEndian(poolID)...)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var rounds []*types.Round
	for ; iterator.Valid(); iterator.Next() {
		var r types.Round
		if err := json.Unmarshal(iterator.Value(), &r); err != nil {
			continue
		}
		rounds = append(rounds, &r)
	}
	return rounds
}

// CurrentRound returns the number of the last drawn round for a pool,
// zero if no draw has happened yet
func (k *Keeper) CurrentRound(ctx sdk.Context, poolID uint64) uint64 {
	bz := k.GetStore(ctx).Get(currentRoundKey(poolID))
	if bz == nil {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

func (k *Keeper) setCurrentRound(ctx sdk.Context, poolID, round uint64) {
	k.GetStore(ctx).Set(currentRoundKey(poolID), sdk.Uint64ToBigEndian(round))
}

// ============ Config ============

// GetConfig returns the draw config, falling back to defaults
func (k *Keeper) GetConfig(ctx sdk.Context) types.Config {
	bz := k.GetStore(ctx).Get(ConfigKey)
	if bz == nil {
		return types.DefaultConfig()
	}
	var cfg types.Config
	if err := json.Unmarshal(bz, &cfg); err != nil {
		return types.DefaultConfig()
	}
	return cfg
}

// SetConfig updates the draw config. Authority only.
func (k *Keeper) SetConfig(ctx sdk.Context, authority string, cfg types.Config) error {
	if authority != k.trust.Authority {
		return types.ErrUnauthorized
	}
	if err := cfg.Validate(); err != nil {
		return types.ErrInvalidConfig
	}
	bz, _ := json.Marshal(cfg)
	k.GetStore(ctx).Set(ConfigKey, bz)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			"lottery_config_updated",
			sdk.NewAttribute("prize_pool_percentage", cfg.PrizePoolPercentage.String()),
		),
	)

	k.logger.Info("Config updated",
		"prize_pool_percentage", cfg.PrizePoolPercentage.String(),
		"round_interval_seconds", cfg.RoundIntervalSeconds,
	)
	return nil
}
