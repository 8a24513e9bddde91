package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testConfig() *RateLimitConfig {
	return &RateLimitConfig{
		IPRequestsPerSecond:   2,
		IPBurst:               2,
		IPBlockDuration:       time.Minute,
		UserRequestsPerSecond: 2,
		UserBurst:             2,
		TxPerSecond:           1,
		TxPerDay:              3,
		TxBurst:               1,
		CleanupInterval:       time.Minute,
		BucketTTL:             time.Hour,
	}
}

func TestAllowIPWithinBurst(t *testing.T) {
	rl := NewRateLimiter(testConfig())
	defer rl.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := rl.AllowIP("1.2.3.4")
		if !allowed {
			t.Fatalf("request %d within burst should be allowed", i+1)
		}
	}

	allowed, info := rl.AllowIP("1.2.3.4")
	if allowed {
		t.Fatal("request beyond burst should be rejected")
	}
	if info.RetryAfter <= 0 {
		t.Error("rejection should carry a retry hint")
	}
}

func TestAllowIPIndependentKeys(t *testing.T) {
	rl := NewRateLimiter(testConfig())
	defer rl.Stop()

	for i := 0; i < 2; i++ {
		rl.AllowIP("1.1.1.1")
	}
	if allowed, _ := rl.AllowIP("1.1.1.1"); allowed {
		t.Fatal("exhausted IP should be rejected")
	}
	if allowed, _ := rl.AllowIP("2.2.2.2"); !allowed {
		t.Fatal("different IP should not be affected")
	}
}

func TestBlockedBucketStaysBlocked(t *testing.T) {
	rl := NewRateLimiter(testConfig())
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		rl.AllowIP("9.9.9.9")
	}

	// Even after token refill the block holds for IPBlockDuration
	allowed, info := rl.AllowIP("9.9.9.9")
	if allowed {
		t.Fatal("blocked bucket should reject")
	}
	if info.LimitType != "blocked" {
		t.Errorf("expected blocked limit type, got %s", info.LimitType)
	}
}

func TestAllowTxDailyLimit(t *testing.T) {
	cfg := testConfig()
	cfg.TxPerSecond = 100
	cfg.TxBurst = 100
	rl := NewRateLimiter(cfg)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := rl.AllowTx("cosmos1member")
		if !allowed {
			t.Fatalf("tx %d within daily limit should be allowed", i+1)
		}
	}

	allowed, info := rl.AllowTx("cosmos1member")
	if allowed {
		t.Fatal("tx beyond daily limit should be rejected")
	}
	if info.LimitType != "daily" {
		t.Errorf("expected daily limit type, got %s", info.LimitType)
	}
}

func TestRateLimitMiddlewareRejects(t *testing.T) {
	rl := NewRateLimiter(testConfig())
	defer rl.Stop()

	handler := RateLimitMiddleware(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/pools", nil)
		req.RemoteAddr = "5.5.5.5:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d should pass, got %d", i+1, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/pools", nil)
	req.RemoteAddr = "5.5.5.5:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("429 response should set Retry-After")
	}
}

func TestGetClientIPForwarded(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:443"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	if ip := getClientIP(req); ip != "203.0.113.7" {
		t.Errorf("expected first forwarded IP, got %s", ip)
	}
}

func TestStats(t *testing.T) {
	rl := NewRateLimiter(testConfig())
	defer rl.Stop()

	rl.AllowIP("1.2.3.4")
	rl.AllowTx("cosmos1member")

	stats := rl.GetStats()
	if stats.TotalBuckets != 1 {
		t.Errorf("expected 1 bucket, got %d", stats.TotalBuckets)
	}
	if stats.TxBuckets != 1 {
		t.Errorf("expected 1 tx bucket, got %d", stats.TxBuckets)
	}
	if stats.DailyCounters != 1 {
		t.Errorf("expected 1 daily counter, got %d", stats.DailyCounters)
	}
}
