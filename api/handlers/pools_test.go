package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openarisan/arisan-chain/api/types"
)

// stubPoolService is a minimal PoolService for handler tests
type stubPoolService struct {
	pools map[uint64]*types.PoolDetail
}

func newStubPoolService() *stubPoolService {
	return &stubPoolService{pools: map[uint64]*types.PoolDetail{
		1: {
			PoolSummary: types.PoolSummary{
				PoolID:             1,
				Name:               "test-pool",
				State:              "active",
				ContributionAmount: "100",
				MaxMembers:         5,
				MemberCount:        2,
			},
			Creator: "cosmos1creator",
			Members: []string{"cosmos1creator", "cosmos1member"},
		},
	}}
}

func (s *stubPoolService) ListPools(ctx context.Context) ([]*types.PoolSummary, error) {
	out := make([]*types.PoolSummary, 0, len(s.pools))
	for _, p := range s.pools {
		summary := p.PoolSummary
		out = append(out, &summary)
	}
	return out, nil
}

func (s *stubPoolService) GetPool(ctx context.Context, poolID uint64) (*types.PoolDetail, error) {
	p, ok := s.pools[poolID]
	if !ok {
		return nil, fmt.Errorf("pool not found: %d", poolID)
	}
	return p, nil
}

func (s *stubPoolService) GetMembers(ctx context.Context, poolID uint64) ([]string, error) {
	p, ok := s.pools[poolID]
	if !ok {
		return nil, fmt.Errorf("pool not found: %d", poolID)
	}
	return p.Members, nil
}

func (s *stubPoolService) GetStats(ctx context.Context) (*types.PoolStats, error) {
	return &types.PoolStats{TotalPools: int64(len(s.pools)), ActivePools: 1, TotalValue: "200"}, nil
}

func (s *stubPoolService) CreatePool(ctx context.Context, req *types.CreatePoolRequest) (*types.PoolDetail, error) {
	id := uint64(len(s.pools) + 1)
	p := &types.PoolDetail{
		PoolSummary: types.PoolSummary{
			PoolID:             id,
			Name:               req.Name,
			State:              "active",
			ContributionAmount: req.ContributionAmount,
			MaxMembers:         req.MaxMembers,
		},
		Creator: req.Creator,
	}
	s.pools[id] = p
	return p, nil
}

func (s *stubPoolService) JoinPool(ctx context.Context, poolID uint64, req *types.JoinRequest) (*types.PoolDetail, error) {
	p, ok := s.pools[poolID]
	if !ok {
		return nil, fmt.Errorf("pool not found: %d", poolID)
	}
	p.Members = append(p.Members, req.Member)
	p.MemberCount = len(p.Members)
	return p, nil
}

func (s *stubPoolService) LeavePool(ctx context.Context, poolID uint64, req *types.LeaveRequest) (*types.LeaveResponse, error) {
	return &types.LeaveResponse{PoolID: poolID, Member: req.Member, Refund: "100"}, nil
}

func (s *stubPoolService) Withdraw(ctx context.Context, poolID uint64, req *types.WithdrawRequest) (*types.WithdrawResponse, error) {
	return &types.WithdrawResponse{PoolID: poolID, Member: req.Member, Payout: "105"}, nil
}

func TestHandlePoolsList(t *testing.T) {
	h := NewPoolHandler(newStubPoolService())

	req := httptest.NewRequest(http.MethodGet, "/v1/pools", nil)
	rec := httptest.NewRecorder()
	h.HandlePools(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Pools []*types.PoolSummary `json:"pools"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(body.Pools) != 1 {
		t.Errorf("expected 1 pool, got %d", len(body.Pools))
	}
}

func TestHandlePoolsCreate(t *testing.T) {
	h := NewPoolHandler(newStubPoolService())

	body := `{"creator":"cosmos1creator","name":"new-pool","contribution_amount":"50","max_members":4,"duration_seconds":86400}`
	req := httptest.NewRequest(http.MethodPost, "/v1/pools", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandlePools(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandlePoolsCreateValidation(t *testing.T) {
	h := NewPoolHandler(newStubPoolService())

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"creator":"c","contribution_amount":"50","max_members":4,"duration_seconds":1}`},
		{"bad max members", `{"creator":"c","name":"p","contribution_amount":"50","max_members":1,"duration_seconds":1}`},
		{"missing creator", `{"name":"p","contribution_amount":"50","max_members":4,"duration_seconds":1}`},
		{"bad duration", `{"creator":"c","name":"p","contribution_amount":"50","max_members":4}`},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/v1/pools", strings.NewReader(tc.body))
		rec := httptest.NewRecorder()
		h.HandlePools(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tc.name, rec.Code)
		}
	}
}

func TestHandlePoolGet(t *testing.T) {
	h := NewPoolHandler(newStubPoolService())

	req := httptest.NewRequest(http.MethodGet, "/v1/pools/1", nil)
	rec := httptest.NewRecorder()
	h.HandlePool(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var pool types.PoolDetail
	if err := json.NewDecoder(rec.Body).Decode(&pool); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if pool.Name != "test-pool" {
		t.Errorf("unexpected pool name: %s", pool.Name)
	}
}

func TestHandlePoolNotFound(t *testing.T) {
	h := NewPoolHandler(newStubPoolService())

	req := httptest.NewRequest(http.MethodGet, "/v1/pools/99", nil)
	rec := httptest.NewRecorder()
	h.HandlePool(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandlePoolBadID(t *testing.T) {
	h := NewPoolHandler(newStubPoolService())

	req := httptest.NewRequest(http.MethodGet, "/v1/pools/abc", nil)
	rec := httptest.NewRecorder()
	h.HandlePool(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandlePoolJoin(t *testing.T) {
	h := NewPoolHandler(newStubPoolService())

	body := `{"member":"cosmos1newmember","amount":"100"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/pools/1/join", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandlePool(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var pool types.PoolDetail
	if err := json.NewDecoder(rec.Body).Decode(&pool); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if pool.MemberCount != 3 {
		t.Errorf("expected 3 members after join, got %d", pool.MemberCount)
	}
}

func TestHandlePoolJoinFromHeader(t *testing.T) {
	h := NewPoolHandler(newStubPoolService())

	req := httptest.NewRequest(http.MethodPost, "/v1/pools/1/join", strings.NewReader(`{"amount":"100"}`))
	req.Header.Set("X-Member-Address", "cosmos1headermember")
	rec := httptest.NewRecorder()
	h.HandlePool(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandlePoolJoinWrongMethod(t *testing.T) {
	h := NewPoolHandler(newStubPoolService())

	req := httptest.NewRequest(http.MethodGet, "/v1/pools/1/join", nil)
	rec := httptest.NewRecorder()
	h.HandlePool(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestHandleStats(t *testing.T) {
	h := NewPoolHandler(newStubPoolService())

	req := httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
	rec := httptest.NewRecorder()
	h.HandleStats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var stats types.PoolStats
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if stats.TotalPools != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}
