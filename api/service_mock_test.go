package api

import (
	"context"
	"testing"

	"github.com/openarisan/arisan-chain/api/types"
)

func TestMockServiceSeededPool(t *testing.T) {
	s := NewMockService()
	ctx := context.Background()

	pools, err := s.ListPools(ctx)
	if err != nil {
		t.Fatalf("ListPools failed: %v", err)
	}
	if len(pools) != 1 {
		t.Fatalf("expected 1 seeded pool, got %d", len(pools))
	}
	if pools[0].Name != "office-arisan" {
		t.Errorf("unexpected seed pool name: %s", pools[0].Name)
	}
	if pools[0].MemberCount != 3 {
		t.Errorf("expected 3 seed members, got %d", pools[0].MemberCount)
	}
}

func TestMockServiceCreateAndJoin(t *testing.T) {
	s := NewMockService()
	ctx := context.Background()

	pool, err := s.CreatePool(ctx, &types.CreatePoolRequest{
		Creator:            "cosmos1creator",
		Name:               "family-pool",
		ContributionAmount: "50.000000",
		MaxMembers:         3,
		DurationSeconds:    30 * 86400,
	})
	if err != nil {
		t.Fatalf("CreatePool failed: %v", err)
	}
	if pool.State != "active" {
		t.Errorf("new pool should be active, got %s", pool.State)
	}

	joined, err := s.JoinPool(ctx, pool.PoolID, &types.JoinRequest{
		Member: "cosmos1member1",
		Amount: "50.000000",
	})
	if err != nil {
		t.Fatalf("JoinPool failed: %v", err)
	}
	if joined.MemberCount != 1 {
		t.Errorf("expected 1 member, got %d", joined.MemberCount)
	}

	// Joining twice fails
	if _, err := s.JoinPool(ctx, pool.PoolID, &types.JoinRequest{
		Member: "cosmos1member1",
		Amount: "50.000000",
	}); err == nil {
		t.Error("duplicate join should fail")
	}

	// Wrong amount fails
	if _, err := s.JoinPool(ctx, pool.PoolID, &types.JoinRequest{
		Member: "cosmos1member2",
		Amount: "40.000000",
	}); err == nil {
		t.Error("join with wrong amount should fail")
	}

	// Joining a badge is minted
	badges, err := s.GetBadgesByHolder(ctx, "cosmos1member1")
	if err != nil {
		t.Fatalf("GetBadgesByHolder failed: %v", err)
	}
	if len(badges) != 1 || badges[0].BadgeType != "join" {
		t.Errorf("expected one join badge, got %+v", badges)
	}
}

func TestMockServiceJoinFullPool(t *testing.T) {
	s := NewMockService()
	ctx := context.Background()

	pool, err := s.CreatePool(ctx, &types.CreatePoolRequest{
		Creator:            "cosmos1creator",
		Name:               "tiny",
		ContributionAmount: "10.000000",
		MaxMembers:         2,
		DurationSeconds:    86400,
	})
	if err != nil {
		t.Fatalf("CreatePool failed: %v", err)
	}

	for _, m := range []string{"cosmos1a", "cosmos1b"} {
		if _, err := s.JoinPool(ctx, pool.PoolID, &types.JoinRequest{Member: m, Amount: "10.000000"}); err != nil {
			t.Fatalf("JoinPool(%s) failed: %v", m, err)
		}
	}

	if _, err := s.JoinPool(ctx, pool.PoolID, &types.JoinRequest{Member: "cosmos1c", Amount: "10.000000"}); err == nil {
		t.Error("joining a full pool should fail")
	}
}

func TestMockServiceLeaveBeforeDraw(t *testing.T) {
	s := NewMockService()
	ctx := context.Background()

	resp, err := s.LeavePool(ctx, 1, &types.LeaveRequest{Member: "cosmos1demo0member000000000000000000000002"})
	if err != nil {
		t.Fatalf("LeavePool failed: %v", err)
	}
	if resp.Refund != "100.000000000000000000" {
		t.Errorf("unexpected refund: %s", resp.Refund)
	}

	members, err := s.GetMembers(ctx, 1)
	if err != nil {
		t.Fatalf("GetMembers failed: %v", err)
	}
	if len(members) != 2 {
		t.Errorf("expected 2 members after leave, got %d", len(members))
	}
}

func TestMockServiceLeaveAfterDraw(t *testing.T) {
	s := NewMockService()
	ctx := context.Background()

	if _, ok := s.SimulateDraw(1); !ok {
		t.Fatal("SimulateDraw failed on seeded pool")
	}

	if _, err := s.LeavePool(ctx, 1, &types.LeaveRequest{Member: "cosmos1demo0member000000000000000000000001"}); err == nil {
		t.Error("leave after first draw should fail")
	}
}

func TestMockServiceSimulateDraw(t *testing.T) {
	s := NewMockService()
	ctx := context.Background()

	round, ok := s.SimulateDraw(1)
	if !ok {
		t.Fatal("SimulateDraw failed on seeded pool")
	}
	if round.Round != 1 {
		t.Errorf("expected round 1, got %d", round.Round)
	}
	if round.Winner == "" {
		t.Error("draw should pick a winner")
	}

	rounds, err := s.ListRounds(ctx, 1)
	if err != nil {
		t.Fatalf("ListRounds failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("expected 1 recorded round, got %d", len(rounds))
	}

	current, err := s.GetCurrentRound(ctx, 1)
	if err != nil {
		t.Fatalf("GetCurrentRound failed: %v", err)
	}
	if current != 1 {
		t.Errorf("expected current round 1, got %d", current)
	}

	// Winner badge minted
	badges, err := s.GetBadgesByHolder(ctx, round.Winner)
	if err != nil {
		t.Fatalf("GetBadgesByHolder failed: %v", err)
	}
	found := false
	for _, b := range badges {
		if b.BadgeType == "lottery_winner" {
			found = true
		}
	}
	if !found {
		t.Error("winner should hold a lottery_winner badge")
	}
}

func TestMockServiceStats(t *testing.T) {
	s := NewMockService()
	ctx := context.Background()

	stats, err := s.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalPools != 1 || stats.ActivePools != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestMockServiceTopHolders(t *testing.T) {
	s := NewMockService()
	ctx := context.Background()

	// Seed gives each member one join badge; a draw gives the winner a second
	round, ok := s.SimulateDraw(1)
	if !ok {
		t.Fatal("SimulateDraw failed")
	}

	holders, err := s.GetTopHolders(ctx, 10)
	if err != nil {
		t.Fatalf("GetTopHolders failed: %v", err)
	}
	if len(holders) != 3 {
		t.Fatalf("expected 3 holders, got %d", len(holders))
	}
	if holders[0].Holder != round.Winner || holders[0].BadgeCount != 2 {
		t.Errorf("winner should lead the leaderboard, got %+v", holders[0])
	}
}

func TestMockServiceInvestment(t *testing.T) {
	s := NewMockService()
	ctx := context.Background()

	inv, err := s.GetInvestment(ctx, 1)
	if err != nil {
		t.Fatalf("GetInvestment failed: %v", err)
	}
	if inv.PrincipalAmount != "300.000000000000000000" {
		t.Errorf("unexpected principal: %s", inv.PrincipalAmount)
	}
	if !inv.IsActive {
		t.Error("seeded pool investment should be active")
	}
	// A day has elapsed since the seed pool started, so yield is positive
	if inv.YieldGenerated == "0.000000" {
		t.Error("expected nonzero simulated yield")
	}
}
