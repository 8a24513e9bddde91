package api

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/openarisan/arisan-chain/api/types"
)

// MockService is an in-memory implementation of all API services,
// used for development and frontend integration before a chain
// connection is available. Yield is simulated with simple interest at
// the mock strategy rate.
type MockService struct {
	mu sync.RWMutex

	pools      map[uint64]*types.PoolDetail
	rounds     map[uint64][]*types.RoundInfo
	badges     []*types.BadgeInfo
	nextPoolID uint64
	nextToken  uint64
}

const mockAPYBps = 500

// NewMockService creates a mock service seeded with sample pools
func NewMockService() *MockService {
	s := &MockService{
		pools:      make(map[uint64]*types.PoolDetail),
		rounds:     make(map[uint64][]*types.RoundInfo),
		nextPoolID: 1,
		nextToken:  1,
	}
	s.seed()
	return s
}

func (s *MockService) seed() {
	now := time.Now().Unix()
	members := []string{
		"cosmos1demo0member000000000000000000000001",
		"cosmos1demo0member000000000000000000000002",
		"cosmos1demo0member000000000000000000000003",
	}

	pool := &types.PoolDetail{
		PoolSummary: types.PoolSummary{
			PoolID:             s.nextPoolID,
			Name:               "office-arisan",
			State:              "active",
			ContributionAmount: "100.000000000000000000",
			MaxMembers:         5,
			MemberCount:        len(members),
			TotalContributions: "300.000000000000000000",
			YieldGenerated:     "0.000000000000000000",
			StartTime:          now - 86400,
			EndTime:            now - 86400 + 30*86400,
		},
		Creator:    members[0],
		Members:    members,
		StrategyID: 0,
		CreatedAt:  now - 86400,
		UpdatedAt:  now - 86400,
	}
	s.pools[pool.PoolID] = pool
	s.nextPoolID++

	for i, m := range members {
		s.badges = append(s.badges, &types.BadgeInfo{
			TokenID:   s.nextToken,
			BadgeType: "join",
			PoolID:    pool.PoolID,
			Recipient: m,
			MintedAt:  now - 86400 + int64(i),
		})
		s.nextToken++
	}
}

// ============ PoolService ============

func (s *MockService) ListPools(ctx context.Context) ([]*types.PoolSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*types.PoolSummary, 0, len(s.pools))
	for _, p := range s.pools {
		summary := p.PoolSummary
		out = append(out, &summary)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PoolID < out[j].PoolID })
	return out, nil
}

func (s *MockService) GetPool(ctx context.Context, poolID uint64) (*types.PoolDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pool, ok := s.pools[poolID]
	if !ok {
		return nil, fmt.Errorf("pool not found: %d", poolID)
	}
	copied := *pool
	return &copied, nil
}

func (s *MockService) GetMembers(ctx context.Context, poolID uint64) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pool, ok := s.pools[poolID]
	if !ok {
		return nil, fmt.Errorf("pool not found: %d", poolID)
	}
	members := make([]string, len(pool.Members))
	copy(members, pool.Members)
	return members, nil
}

func (s *MockService) GetStats(ctx context.Context) (*types.PoolStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &types.PoolStats{}
	total := 0.0
	for _, p := range s.pools {
		stats.TotalPools++
		switch p.State {
		case "active":
			stats.ActivePools++
			if v, err := strconv.ParseFloat(p.TotalContributions, 64); err == nil {
				total += v
			}
		case "completed":
			stats.CompletedPools++
		case "cancelled":
			stats.CancelledPools++
		}
	}
	stats.TotalValue = strconv.FormatFloat(total, 'f', 6, 64)
	return stats, nil
}

func (s *MockService) CreatePool(ctx context.Context, req *types.CreatePoolRequest) (*types.PoolDetail, error) {
	if req.Name == "" || req.MaxMembers < 2 {
		return nil, fmt.Errorf("invalid pool configuration")
	}
	if _, err := strconv.ParseFloat(req.ContributionAmount, 64); err != nil {
		return nil, fmt.Errorf("invalid contribution amount")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().Unix()
	pool := &types.PoolDetail{
		PoolSummary: types.PoolSummary{
			PoolID:             s.nextPoolID,
			Name:               req.Name,
			State:              "active",
			ContributionAmount: req.ContributionAmount,
			MaxMembers:         req.MaxMembers,
			TotalContributions: "0",
			YieldGenerated:     "0",
			StartTime:          now,
			EndTime:            now + req.DurationSeconds,
		},
		Creator:    req.Creator,
		StrategyID: req.StrategyID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.pools[pool.PoolID] = pool
	s.nextPoolID++

	copied := *pool
	return &copied, nil
}

func (s *MockService) JoinPool(ctx context.Context, poolID uint64, req *types.JoinRequest) (*types.PoolDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pool, ok := s.pools[poolID]
	if !ok {
		return nil, fmt.Errorf("pool not found: %d", poolID)
	}
	if pool.State != "active" {
		return nil, fmt.Errorf("pool is not accepting members")
	}
	if len(pool.Members) >= pool.MaxMembers {
		return nil, fmt.Errorf("pool is full")
	}
	if req.Amount != pool.ContributionAmount {
		return nil, fmt.Errorf("contribution must be exactly %s", pool.ContributionAmount)
	}
	for _, m := range pool.Members {
		if m == req.Member {
			return nil, fmt.Errorf("already a member")
		}
	}

	pool.Members = append(pool.Members, req.Member)
	pool.MemberCount = len(pool.Members)
	amount, _ := strconv.ParseFloat(pool.ContributionAmount, 64)
	total, _ := strconv.ParseFloat(pool.TotalContributions, 64)
	pool.TotalContributions = strconv.FormatFloat(total+amount, 'f', 6, 64)
	pool.UpdatedAt = time.Now().Unix()

	s.badges = append(s.badges, &types.BadgeInfo{
		TokenID:   s.nextToken,
		BadgeType: "join",
		PoolID:    poolID,
		Recipient: req.Member,
		MintedAt:  pool.UpdatedAt,
	})
	s.nextToken++

	copied := *pool
	return &copied, nil
}

func (s *MockService) LeavePool(ctx context.Context, poolID uint64, req *types.LeaveRequest) (*types.LeaveResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pool, ok := s.pools[poolID]
	if !ok {
		return nil, fmt.Errorf("pool not found: %d", poolID)
	}
	if pool.DrawsDone > 0 {
		return nil, fmt.Errorf("cannot leave after the first draw")
	}

	idx := -1
	for i, m := range pool.Members {
		if m == req.Member {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("not a member")
	}

	pool.Members = append(pool.Members[:idx], pool.Members[idx+1:]...)
	pool.MemberCount = len(pool.Members)
	amount, _ := strconv.ParseFloat(pool.ContributionAmount, 64)
	total, _ := strconv.ParseFloat(pool.TotalContributions, 64)
	pool.TotalContributions = strconv.FormatFloat(total-amount, 'f', 6, 64)
	pool.UpdatedAt = time.Now().Unix()

	return &types.LeaveResponse{
		PoolID: poolID,
		Member: req.Member,
		Refund: pool.ContributionAmount,
	}, nil
}

func (s *MockService) Withdraw(ctx context.Context, poolID uint64, req *types.WithdrawRequest) (*types.WithdrawResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pool, ok := s.pools[poolID]
	if !ok {
		return nil, fmt.Errorf("pool not found: %d", poolID)
	}
	now := time.Now().Unix()
	if pool.State == "active" && now < pool.EndTime {
		return nil, fmt.Errorf("pool has not matured")
	}

	total, _ := strconv.ParseFloat(pool.TotalContributions, 64)
	elapsed := float64(now - pool.StartTime)
	yield := total * float64(mockAPYBps) / 10000 * elapsed / (365 * 86400)
	payout := (total + yield) / float64(len(pool.Members))

	return &types.WithdrawResponse{
		PoolID: poolID,
		Member: req.Member,
		Payout: strconv.FormatFloat(payout, 'f', 6, 64),
	}, nil
}

// ============ YieldService ============

func (s *MockService) GetInvestment(ctx context.Context, poolID uint64) (*types.InvestmentInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pool, ok := s.pools[poolID]
	if !ok {
		return nil, fmt.Errorf("pool not found: %d", poolID)
	}

	now := time.Now().Unix()
	principal, _ := strconv.ParseFloat(pool.TotalContributions, 64)
	elapsed := float64(now - pool.StartTime)
	yield := principal * float64(mockAPYBps) / 10000 * elapsed / (365 * 86400)

	return &types.InvestmentInfo{
		PoolID:          poolID,
		PrincipalAmount: pool.TotalContributions,
		CurrentValue:    strconv.FormatFloat(principal+yield, 'f', 6, 64),
		YieldGenerated:  strconv.FormatFloat(yield, 'f', 6, 64),
		StrategyID:      pool.StrategyID,
		IsActive:        pool.State == "active",
		LastUpdateTime:  now,
	}, nil
}

func (s *MockService) ListStrategies(ctx context.Context) ([]*types.StrategyInfo, error) {
	return []*types.StrategyInfo{
		{StrategyID: 0, Name: "mock_yield", ExpectedAPYBps: mockAPYBps, IsActive: true},
		{StrategyID: 1, Name: "fixed_apy", ExpectedAPYBps: 0, IsActive: false},
	}, nil
}

func (s *MockService) GetTotalManagedFunds(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0.0
	for _, p := range s.pools {
		if p.State == "active" {
			if v, err := strconv.ParseFloat(p.TotalContributions, 64); err == nil {
				total += v
			}
		}
	}
	return strconv.FormatFloat(total, 'f', 6, 64), nil
}

// ============ LotteryService ============

func (s *MockService) ListRounds(ctx context.Context, poolID uint64) ([]*types.RoundInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rounds := s.rounds[poolID]
	out := make([]*types.RoundInfo, len(rounds))
	copy(out, rounds)
	return out, nil
}

func (s *MockService) GetCurrentRound(ctx context.Context, poolID uint64) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.rounds[poolID])), nil
}

// SimulateDraw records a draw result and mints a winner badge. Used by
// the mock broadcaster to generate realistic activity.
func (s *MockService) SimulateDraw(poolID uint64) (*types.RoundInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pool, ok := s.pools[poolID]
	if !ok || len(pool.Members) == 0 || pool.State != "active" {
		return nil, false
	}

	now := time.Now().Unix()
	round := uint64(len(s.rounds[poolID]) + 1)
	winner := pool.Members[int(now)%len(pool.Members)]

	info := &types.RoundInfo{
		PoolID:      poolID,
		Round:       round,
		Winner:      winner,
		PrizeAmount: "0.010000000000000000",
		DrawnAt:     now,
	}
	s.rounds[poolID] = append(s.rounds[poolID], info)
	pool.DrawsDone = round
	pool.LastDrawAt = now

	s.badges = append(s.badges, &types.BadgeInfo{
		TokenID:   s.nextToken,
		BadgeType: "lottery_winner",
		PoolID:    poolID,
		Recipient: winner,
		MintedAt:  now,
	})
	s.nextToken++

	return info, true
}

// ============ BadgeService ============

func (s *MockService) GetBadgesByHolder(ctx context.Context, holder string) ([]*types.BadgeInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*types.BadgeInfo, 0)
	for _, b := range s.badges {
		if b.Recipient == holder {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *MockService) GetBadgesByPool(ctx context.Context, poolID uint64) ([]*types.BadgeInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*types.BadgeInfo, 0)
	for _, b := range s.badges {
		if b.PoolID == poolID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *MockService) GetTopHolders(ctx context.Context, limit int) ([]*types.HolderInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int64)
	for _, b := range s.badges {
		counts[b.Recipient]++
	}
	out := make([]*types.HolderInfo, 0, len(counts))
	for holder, count := range counts {
		out = append(out, &types.HolderInfo{Holder: holder, BadgeCount: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BadgeCount != out[j].BadgeCount {
			return out[i].BadgeCount > out[j].BadgeCount
		}
		return out[i].Holder < out[j].Holder
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ListPoolIDs returns the ids of all known pools
func (s *MockService) ListPoolIDs() []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]uint64, 0, len(s.pools))
	for id := range s.pools {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
