package keeper

import (
	"sync"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/google/btree"

	"github.com/openarisan/arisan-chain/x/arisan/types"
)

const registryDegree = 32 // B-tree degree, affects node size and cache efficiency

// recordItem wraps a registry record for use in btree.
// Implements btree.Item interface.
type recordItem struct {
	record *types.PoolRecord
}

// Less implements btree.Item interface - ascending order by pool ID
func (a *recordItem) Less(b btree.Item) bool {
	return a.record.PoolID < b.(*recordItem).record.PoolID
}

// poolRegistry is an ordered in-memory index over the registry records,
// mirroring the store. Rebuilt lazily from the records after a restart;
// upserts before the first rebuild are dropped since the rebuild reads
// them from the store anyway.
//
// Upserts are not rolled back when a transaction aborts after SetPool,
// so list queries can briefly serve a record the store never committed,
// until the next restart rebuilds the index.
type poolRegistry struct {
	tree  *btree.BTree
	built bool
	mu    sync.RWMutex
}

func newPoolRegistry() *poolRegistry {
	return &poolRegistry{
		tree: btree.New(registryDegree),
	}
}

func (r *poolRegistry) upsert(record *types.PoolRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.built {
		return
	}
	r.tree.ReplaceOrInsert(&recordItem{record: record})
}

// list returns up to limit records with PoolID >= afterID, in ID order
func (r *poolRegistry) list(afterID uint64, limit int) []*types.PoolRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*types.PoolRecord, 0, limit)
	pivot := &recordItem{record: &types.PoolRecord{PoolID: afterID}}
	r.tree.AscendGreaterOrEqual(pivot, func(item btree.Item) bool {
		records = append(records, item.(*recordItem).record)
		return limit <= 0 || len(records) < limit
	})
	return records
}

// ListPoolRecords returns up to limit registry records starting at afterID
func (k *Keeper) ListPoolRecords(ctx sdk.Context, afterID uint64, limit int) []*types.PoolRecord {
	k.rebuildRegistryIfNeeded(ctx)
	return k.registry.list(afterID, limit)
}

func (k *Keeper) rebuildRegistryIfNeeded(ctx sdk.Context) {
	r := k.registry
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.built {
		return
	}

	store := k.GetStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, RecordKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		record := k.GetRecord(ctx, sdk.BigEndianToUint64(iterator.Key()[len(RecordKeyPrefix):]))
		if record == nil {
			continue
		}
		r.tree.ReplaceOrInsert(&recordItem{record: record})
	}
	r.built = true
}

// PoolStatistics scans the registry and returns exact counts per state
// plus the total value currently held across active pools
func (k *Keeper) PoolStatistics(ctx sdk.Context) types.PoolStatistics {
	stats := types.PoolStatistics{TotalValue: math.LegacyZeroDec()}

	for _, pool := range k.GetAllPools(ctx) {
		stats.TotalPools++
		switch pool.State {
		case types.PoolStateActive:
			stats.ActivePools++
			stats.TotalValue = stats.TotalValue.Add(pool.TotalContributions)
		case types.PoolStateCompleted:
			stats.CompletedPools++
		case types.PoolStateCancelled:
			stats.CancelledPools++
		}
	}
	return stats
}
