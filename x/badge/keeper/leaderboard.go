package keeper

import (
	"sync"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/huandu/skiplist"

	"github.com/openarisan/arisan-chain/x/badge/types"
)

// holderRank orders holders by badge count, highest first, with the holder
// address as tie-breaker so ranks are stable.
type holderRank struct {
	Count  int64
	Holder string
}

// rankKeyDesc is a comparator for descending badge-count order
type rankKeyDesc struct{}

func (k rankKeyDesc) Compare(lhs, rhs interface{}) int {
	l := lhs.(holderRank)
	r := rhs.(holderRank)
	if l.Count > r.Count {
		return -1
	}
	if l.Count < r.Count {
		return 1
	}
	if l.Holder < r.Holder {
		return -1
	}
	if l.Holder > r.Holder {
		return 1
	}
	return 0
}

func (k rankKeyDesc) CalcScore(key interface{}) float64 {
	return -float64(key.(holderRank).Count)
}

// holderLeaderboard maintains an in-memory ranking of holders by badge count,
// mirroring the store. O(log n) per mint once built; rebuilt lazily from the
// badge records after a restart.
//
// Bumps are not rolled back when a transaction aborts after Mint, so top
// queries can briefly overcount a holder relative to committed state,
// until the next restart rebuilds the ranking.
type holderLeaderboard struct {
	list   *skiplist.SkipList
	counts map[string]int64
	built  bool
	mu     sync.RWMutex
}

func newHolderLeaderboard() *holderLeaderboard {
	return &holderLeaderboard{
		list:   skiplist.New(rankKeyDesc{}),
		counts: make(map[string]int64),
	}
}

// bump increments the badge count for holder. Before the first rebuild the
// leaderboard is stale anyway, so bumps are dropped and the rebuild picks
// the badge up from the store instead.
func (lb *holderLeaderboard) bump(holder string) {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	if !lb.built {
		return
	}
	lb.add(holder)
}

// add must be called with the lock held
func (lb *holderLeaderboard) add(holder string) {
	old := lb.counts[holder]
	if old > 0 {
		lb.list.Remove(holderRank{Count: old, Holder: holder})
	}
	lb.counts[holder] = old + 1
	lb.list.Set(holderRank{Count: old + 1, Holder: holder}, holder)
}

// top returns the n highest-ranked holders
func (lb *holderLeaderboard) top(n int) []types.HolderSummary {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	summaries := make([]types.HolderSummary, 0, n)
	for el := lb.list.Front(); el != nil && len(summaries) < n; el = el.Next() {
		rank := el.Key().(holderRank)
		summaries = append(summaries, types.HolderSummary{
			Holder:     rank.Holder,
			BadgeCount: rank.Count,
		})
	}
	return summaries
}

// TopHolders returns the n holders with the most badges.
func (k *Keeper) TopHolders(ctx sdk.Context, n int) []types.HolderSummary {
	k.rebuildLeaderboardIfNeeded(ctx)
	return k.leaderboard.top(n)
}

func (k *Keeper) rebuildLeaderboardIfNeeded(ctx sdk.Context) {
	lb := k.leaderboard
	lb.mu.Lock()
	defer lb.mu.Unlock()
	if lb.built {
		return
	}

	store := k.GetStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, BadgeKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		badge := k.GetBadge(ctx, sdk.BigEndianToUint64(iterator.Key()[len(BadgeKeyPrefix):]))
		if badge == nil {
			continue
		}
		lb.add(badge.Recipient)
	}
	lb.built = true
}
