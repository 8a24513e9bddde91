package keeper

import (
	"encoding/json"
	"strconv"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openarisan/arisan-chain/x/yield/types"
)

// Store key prefixes
var (
	InvestmentKeyPrefix  = []byte{0x01}
	StrategyKeyPrefix    = []byte{0x02}
	PausedKey            = []byte{0x03}
	TotalManagedFundsKey = []byte{0x04}
)

// Keeper manages pooled principal and yield accrual
type Keeper struct {
	cdc       codec.BinaryCodec
	storeKey  storetypes.StoreKey
	authority string
	logger    log.Logger
}

// NewKeeper creates a new yield keeper. The authority may pause deposits
// and manage the strategy set.
func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
	authority string,
	logger log.Logger,
) *Keeper {
	return &Keeper{
		cdc:       cdc,
		storeKey:  storeKey,
		authority: authority,
		logger:    logger.With("module", "x/yield"),
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

// ============ Investment Storage ============

func investmentKey(poolID uint64) []byte {
	return append(InvestmentKeyPrefix, sdk.Uint64ToBigEndian(poolID)...)
}

// SetInvestment saves an investment record
func (k *Keeper) SetInvestment(ctx sdk.Context, inv *types.Investment) {
	store := k.GetStore(ctx)
	bz, _ := json.Marshal(inv)
	store.Set(investmentKey(inv.PoolID), bz)
}

// GetInvestment retrieves the investment record for a pool
func (k *Keeper) GetInvestment(ctx sdk.Context, poolID uint64) *types.Investment {
	store := k.GetStore(ctx)
	bz := store.Get(investmentKey(poolID))
	if bz == nil {
		return nil
	}
	var inv types.Investment
	if err := json.Unmarshal(bz, &inv); err != nil {
		return nil
	}
	return &inv
}

// GetAllInvestments returns every investment record
func (k *Keeper) GetAllInvestments(ctx sdk.Context) []*types.Investment {
	store := k.GetStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, InvestmentKeyPrefix)
	defer iterator.Close()

	var investments []*types.Investment
	for ; iterator.Valid(); iterator.Next() {
		var inv types.Investment
		if err := json.Unmarshal(iterator.Value(), &inv); err != nil {
			continue
		}
		investments = append(investments, &inv)
	}
	return investments
}

// ============ Strategy Storage ============

func strategyKey(strategyID uint64) []byte {
	return append(StrategyKeyPrefix, sdk.Uint64ToBigEndian(strategyID)...)
}

// SetStrategy saves a strategy
func (k *Keeper) SetStrategy(ctx sdk.Context, strategy *types.Strategy) {
	store := k.GetStore(ctx)
	bz, _ := json.Marshal(strategy)
	store.Set(strategyKey(strategy.StrategyID), bz)
}

// GetStrategy retrieves a strategy by ID
func (k *Keeper) GetStrategy(ctx sdk.Context, strategyID uint64) *types.Strategy {
	store := k.GetStore(ctx)
	bz := store.Get(strategyKey(strategyID))
	if bz == nil {
		return nil
	}
	var strategy types.Strategy
	if err := json.Unmarshal(bz, &strategy); err != nil {
		return nil
	}
	return &strategy
}

// GetAllStrategies returns every registered strategy
func (k *Keeper) GetAllStrategies(ctx sdk.Context) []*types.Strategy {
	store := k.GetStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, StrategyKeyPrefix)
	defer iterator.Close()

	var strategies []*types.Strategy
	for ; iterator.Valid(); iterator.Next() {
		var strategy types.Strategy
		if err := json.Unmarshal(iterator.Value(), &strategy); err != nil {
			continue
		}
		strategies = append(strategies, &strategy)
	}
	return strategies
}

// SeedDefaultStrategies writes the built-in strategy set if absent
func (k *Keeper) SeedDefaultStrategies(ctx sdk.Context) {
	for _, strategy := range types.DefaultStrategies() {
		s := strategy
		if k.GetStrategy(ctx, s.StrategyID) == nil {
			k.SetStrategy(ctx, &s)
		}
	}
}

// RegisterStrategy registers a new strategy. Authority only.
func (k *Keeper) RegisterStrategy(ctx sdk.Context, authority string, strategy types.Strategy) error {
	if authority != k.authority {
		return types.ErrUnauthorized
	}
	if k.GetStrategy(ctx, strategy.StrategyID) != nil {
		return types.ErrStrategyExists
	}
	k.SetStrategy(ctx, &strategy)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			"yield_strategy_registered",
			sdk.NewAttribute("strategy_id", strconv.FormatUint(strategy.StrategyID, 10)),
			sdk.NewAttribute("name", strategy.Name),
		),
	)

	k.logger.Info("Strategy registered", "strategy_id", strategy.StrategyID, "name", strategy.Name)
	return nil
}

// SetStrategyActive toggles whether a strategy accepts new deposits. Authority only.
func (k *Keeper) SetStrategyActive(ctx sdk.Context, authority string, strategyID uint64, active bool) error {
	if authority != k.authority {
		return types.ErrUnauthorized
	}
	strategy := k.GetStrategy(ctx, strategyID)
	if strategy == nil {
		return types.ErrStrategyNotFound
	}
	strategy.IsActive = active
	k.SetStrategy(ctx, strategy)

	k.logger.Info("Strategy toggled", "strategy_id", strategyID, "active", active)
	return nil
}

// ============ Pause State ============

// IsPaused reports whether new deposits are blocked
func (k *Keeper) IsPaused(ctx sdk.Context) bool {
	return k.GetStore(ctx).Has(PausedKey)
}

// Pause blocks new deposits. Withdrawals and accrual continue.
func (k *Keeper) Pause(ctx sdk.Context, authority string) error {
	if authority != k.authority {
		return types.ErrUnauthorized
	}
	k.GetStore(ctx).Set(PausedKey, []byte{1})

	ctx.EventManager().EmitEvent(sdk.NewEvent("yield_paused"))
	k.logger.Info("Deposits paused", "authority", authority)
	return nil
}

// Unpause re-enables deposits
func (k *Keeper) Unpause(ctx sdk.Context, authority string) error {
	if authority != k.authority {
		return types.ErrUnauthorized
	}
	k.GetStore(ctx).Delete(PausedKey)

	ctx.EventManager().EmitEvent(sdk.NewEvent("yield_unpaused"))
	k.logger.Info("Deposits unpaused", "authority", authority)
	return nil
}

// ============ Totals ============

// GetTotalManagedFunds returns the sum of all active principal
func (k *Keeper) GetTotalManagedFunds(ctx sdk.Context) math.LegacyDec {
	bz := k.GetStore(ctx).Get(TotalManagedFundsKey)
	if bz == nil {
		return math.LegacyZeroDec()
	}
	total, err := math.LegacyNewDecFromStr(string(bz))
	if err != nil {
		return math.LegacyZeroDec()
	}
	return total
}

func (k *Keeper) setTotalManagedFunds(ctx sdk.Context, total math.LegacyDec) {
	k.GetStore(ctx).Set(TotalManagedFundsKey, []byte(total.String()))
}
