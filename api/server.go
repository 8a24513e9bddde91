package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/openarisan/arisan-chain/api/handlers"
	"github.com/openarisan/arisan-chain/api/middleware"
	"github.com/openarisan/arisan-chain/api/types"
	"github.com/openarisan/arisan-chain/api/websocket"
	"github.com/openarisan/arisan-chain/metrics"
)

// Server represents the API server
type Server struct {
	httpServer *http.Server
	wsServer   *websocket.Server
	config     *Config
	mockMode   bool

	// Services
	poolService    types.PoolService
	yieldService   types.YieldService
	lotteryService types.LotteryService
	badgeService   types.BadgeService

	// Handlers
	poolHandler    *handlers.PoolHandler
	yieldHandler   *handlers.YieldHandler
	lotteryHandler *handlers.LotteryHandler
	badgeHandler   *handlers.BadgeHandler

	// Rate limiter
	rateLimiter *middleware.RateLimiter

	// Mock service retained for the draw simulator; nil with custom services
	mock *MockService
}

// Config contains server configuration
type Config struct {
	Host             string
	Port             int
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	MockMode         bool
	DrawInterval     time.Duration // Interval for simulated draws in mock mode
	DisableRateLimit bool          // For testing purposes
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Host:         "0.0.0.0",
		Port:         8080,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		MockMode:     true,
		DrawInterval: 30 * time.Second,
	}
}

// NewServer creates a new API server backed by the in-memory mock service
func NewServer(config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	}

	wsConfig := websocket.DefaultServerConfig()
	wsConfig.Port = config.Port

	mockService := NewMockService()
	rateLimiter := middleware.NewRateLimiter(middleware.DefaultRateLimitConfig())

	s := &Server{
		config:         config,
		wsServer:       websocket.NewServer(wsConfig),
		mockMode:       true,
		poolService:    mockService,
		yieldService:   mockService,
		lotteryService: mockService,
		badgeService:   mockService,
		rateLimiter:    rateLimiter,
		mock:           mockService,
	}

	s.initHandlers()
	return s
}

// NewServerWithServices creates a new API server with custom services
func NewServerWithServices(config *Config, poolSvc types.PoolService, yieldSvc types.YieldService, lotterySvc types.LotteryService, badgeSvc types.BadgeService) *Server {
	if config == nil {
		config = DefaultConfig()
	}

	wsConfig := websocket.DefaultServerConfig()
	wsConfig.Port = config.Port

	rateLimiter := middleware.NewRateLimiter(middleware.DefaultRateLimitConfig())

	s := &Server{
		config:         config,
		wsServer:       websocket.NewServer(wsConfig),
		mockMode:       config.MockMode,
		poolService:    poolSvc,
		yieldService:   yieldSvc,
		lotteryService: lotterySvc,
		badgeService:   badgeSvc,
		rateLimiter:    rateLimiter,
	}

	s.initHandlers()
	return s
}

func (s *Server) initHandlers() {
	s.poolHandler = handlers.NewPoolHandler(s.poolService)
	s.yieldHandler = handlers.NewYieldHandler(s.yieldService)
	s.lotteryHandler = handlers.NewLotteryHandler(s.lotteryService)
	s.badgeHandler = handlers.NewBadgeHandler(s.badgeService)
}

// Start starts the API server
func (s *Server) Start() error {
	mux := http.NewServeMux()

	// Health check (support both /health and /v1/health for compatibility)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/v1/health", s.handleHealth)

	// Pool endpoints
	mux.HandleFunc("/v1/pools", s.poolHandler.HandlePools)
	mux.HandleFunc("/v1/pools/", s.poolHandler.HandlePool)
	mux.HandleFunc("/v1/stats", s.poolHandler.HandleStats)

	// Yield endpoints (read-only)
	mux.HandleFunc("/v1/yield/strategies", s.yieldHandler.HandleStrategies)
	mux.HandleFunc("/v1/yield/total", s.yieldHandler.HandleTotal)
	mux.HandleFunc("/v1/yield/pools/", s.yieldHandler.HandleInvestment)

	// Lottery endpoints (read-only)
	mux.HandleFunc("/v1/lottery/pools/", s.lotteryHandler.HandlePoolRounds)

	// Badge endpoints (read-only)
	mux.HandleFunc("/v1/badges/holder/", s.badgeHandler.HandleHolder)
	mux.HandleFunc("/v1/badges/pool/", s.badgeHandler.HandlePool)
	mux.HandleFunc("/v1/badges/top", s.badgeHandler.HandleTop)

	// WebSocket
	mux.HandleFunc("/ws", s.wsServer.GetHub().ServeWS)

	// Prometheus metrics
	mux.Handle("/metrics", metrics.Handler())

	// Apply middleware chain: CORS -> Metrics -> RateLimit -> Handler
	var handler http.Handler
	if s.config.DisableRateLimit {
		handler = corsMiddleware(metricsMiddleware(mux))
	} else {
		handler = corsMiddleware(
			metricsMiddleware(
				middleware.RateLimitMiddleware(s.rateLimiter)(mux),
			),
		)
	}

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	// Start WebSocket hub
	go s.wsServer.GetHub().Run()

	// In mock mode simulated draws keep subscribers fed with activity
	if s.mock != nil {
		go s.startDrawSimulator()
	}

	log.Printf("API server starting on %s (mock mode: %v)", addr, s.mockMode)
	if s.config.DisableRateLimit {
		log.Printf("Rate limiting DISABLED (for testing)")
	}
	return s.httpServer.ListenAndServe()
}

// Stop gracefully shuts down the server
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// startDrawSimulator periodically runs lottery draws on mock pools and
// broadcasts the results over WebSocket channels.
func (s *Server) startDrawSimulator() {
	interval := s.config.DrawInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		for _, poolID := range s.mock.ListPoolIDs() {
			round, ok := s.mock.SimulateDraw(poolID)
			if !ok {
				continue
			}

			s.wsServer.BroadcastDraw(&websocket.DrawMessage{
				PoolID:      round.PoolID,
				Round:       round.Round,
				Winner:      round.Winner,
				PrizeAmount: round.PrizeAmount,
				Timestamp:   nowMillis(),
			})
			s.wsServer.BroadcastBadge(&websocket.BadgeMessage{
				BadgeType: "lottery_winner",
				PoolID:    round.PoolID,
				Recipient: round.Winner,
				Timestamp: nowMillis(),
			})

			if pool, err := s.mock.GetPool(context.Background(), poolID); err == nil {
				s.wsServer.BroadcastPoolUpdate(&websocket.PoolUpdateMessage{
					PoolID:             pool.PoolID,
					Name:               pool.Name,
					State:              pool.State,
					MemberCount:        pool.MemberCount,
					MaxMembers:         pool.MaxMembers,
					TotalContributions: pool.TotalContributions,
					YieldGenerated:     pool.YieldGenerated,
					Timestamp:          nowMillis(),
				})
			}
		}

		if stats, err := s.mock.GetStats(context.Background()); err == nil {
			s.wsServer.BroadcastStats(&websocket.StatsMessage{
				TotalPools:  stats.TotalPools,
				ActivePools: stats.ActivePools,
				TotalValue:  stats.TotalValue,
				Timestamp:   nowMillis(),
			})
		}
	}
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	mode := "real"
	if s.mockMode {
		mode = "mock"
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"mode":      mode,
	})
}

// Helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// statusRecorder captures the response status for metrics
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func metricsMiddleware(next http.Handler) http.Handler {
	collector := metrics.GetCollector()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		timer := metrics.NewTimer()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		collector.RecordAPIRequest(r.Method, r.URL.Path, fmt.Sprintf("%d", rec.status), timer.ElapsedMs())
		if rec.status == http.StatusTooManyRequests {
			collector.RecordRateLimitHit("http")
		}
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key, X-Member-Address")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
