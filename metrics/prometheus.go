package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Arisan metrics collector
// Provides metrics for monitoring pools, yield, draws and badges

var (
	// Singleton collector
	collector     *Collector
	collectorOnce sync.Once
)

// Collector holds all Arisan metrics
type Collector struct {
	// Pool metrics
	PoolsTotal        *prometheus.CounterVec
	PoolsActive       prometheus.Gauge
	PoolMembers       *prometheus.GaugeVec
	PoolTransitions   *prometheus.CounterVec
	EndBlockerLatency *prometheus.HistogramVec

	// Contribution metrics
	ContributionsTotal *prometheus.CounterVec
	ContributionValue  *prometheus.CounterVec
	RefundsTotal       *prometheus.CounterVec
	PayoutsTotal       *prometheus.CounterVec
	PayoutValue        *prometheus.CounterVec

	// Yield metrics
	ManagedFunds   prometheus.Gauge
	YieldAccrued   *prometheus.CounterVec
	YieldUpdates   *prometheus.CounterVec
	StrategyActive *prometheus.GaugeVec

	// Lottery metrics
	DrawsTotal  *prometheus.CounterVec
	PrizeValue  *prometheus.CounterVec
	DrawLatency *prometheus.HistogramVec

	// Badge metrics
	BadgesMinted *prometheus.CounterVec
	BadgeHolders prometheus.Gauge

	// WebSocket metrics
	WSConnectionsActive prometheus.Gauge
	WSMessagesTotal     *prometheus.CounterVec
	WSSubscriptions     *prometheus.GaugeVec

	// API metrics
	APIRequestsTotal  *prometheus.CounterVec
	APIRequestLatency *prometheus.HistogramVec
	APIErrorsTotal    *prometheus.CounterVec
	RateLimitHits     *prometheus.CounterVec

	// System metrics
	BlockHeight prometheus.Gauge
	BlockTime   *prometheus.HistogramVec
}

// GetCollector returns the singleton metrics collector
func GetCollector() *Collector {
	collectorOnce.Do(func() {
		collector = newCollector()
	})
	return collector
}

// newCollector creates a new metrics collector
func newCollector() *Collector {
	c := &Collector{}

	// Pool metrics
	c.PoolsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arisan",
			Subsystem: "pools",
			Name:      "total",
			Help:      "Total number of pools created",
		},
		[]string{"strategy_id"},
	)

	c.PoolsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "arisan",
			Subsystem: "pools",
			Name:      "active",
			Help:      "Number of active pools",
		},
	)

	c.PoolMembers = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "arisan",
			Subsystem: "pools",
			Name:      "members",
			Help:      "Number of members per pool",
		},
		[]string{"pool_id"},
	)

	c.PoolTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arisan",
			Subsystem: "pools",
			Name:      "transitions_total",
			Help:      "Total pool state transitions",
		},
		[]string{"from", "to"},
	)

	c.EndBlockerLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "arisan",
			Subsystem: "pools",
			Name:      "end_blocker_latency_ms",
			Help:      "End blocker latency in milliseconds",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500},
		},
		[]string{},
	)

	// Contribution metrics
	c.ContributionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arisan",
			Subsystem: "contributions",
			Name:      "total",
			Help:      "Total number of member contributions",
		},
		[]string{"pool_id"},
	)

	c.ContributionValue = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arisan",
			Subsystem: "contributions",
			Name:      "value",
			Help:      "Total contribution value in base denom",
		},
		[]string{"pool_id"},
	)

	c.RefundsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arisan",
			Subsystem: "contributions",
			Name:      "refunds_total",
			Help:      "Total number of refunds (leave and cancel)",
		},
		[]string{"reason"},
	)

	c.PayoutsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arisan",
			Subsystem: "payouts",
			Name:      "total",
			Help:      "Total number of member payouts",
		},
		[]string{"pool_id"},
	)

	c.PayoutValue = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arisan",
			Subsystem: "payouts",
			Name:      "value",
			Help:      "Total payout value in base denom",
		},
		[]string{"pool_id"},
	)

	// Yield metrics
	c.ManagedFunds = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "arisan",
			Subsystem: "yield",
			Name:      "managed_funds",
			Help:      "Total principal under management in base denom",
		},
	)

	c.YieldAccrued = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arisan",
			Subsystem: "yield",
			Name:      "accrued",
			Help:      "Total yield accrued in base denom",
		},
		[]string{"strategy_id"},
	)

	c.YieldUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arisan",
			Subsystem: "yield",
			Name:      "updates_total",
			Help:      "Total yield accrual updates",
		},
		[]string{"strategy_id"},
	)

	c.StrategyActive = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "arisan",
			Subsystem: "yield",
			Name:      "strategy_active",
			Help:      "Whether a strategy is active (1) or paused (0)",
		},
		[]string{"strategy_id"},
	)

	// Lottery metrics
	c.DrawsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arisan",
			Subsystem: "lottery",
			Name:      "draws_total",
			Help:      "Total lottery draws executed",
		},
		[]string{"pool_id"},
	)

	c.PrizeValue = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arisan",
			Subsystem: "lottery",
			Name:      "prize_value",
			Help:      "Total prize value paid in base denom",
		},
		[]string{"pool_id"},
	)

	c.DrawLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "arisan",
			Subsystem: "lottery",
			Name:      "draw_latency_ms",
			Help:      "Draw execution latency in milliseconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25},
		},
		[]string{},
	)

	// Badge metrics
	c.BadgesMinted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arisan",
			Subsystem: "badges",
			Name:      "minted_total",
			Help:      "Total badges minted",
		},
		[]string{"badge_type"},
	)

	c.BadgeHolders = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "arisan",
			Subsystem: "badges",
			Name:      "holders",
			Help:      "Number of distinct badge holders",
		},
	)

	// WebSocket metrics
	c.WSConnectionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "arisan",
			Subsystem: "websocket",
			Name:      "connections_active",
			Help:      "Number of active WebSocket connections",
		},
	)

	c.WSMessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arisan",
			Subsystem: "websocket",
			Name:      "messages_total",
			Help:      "Total WebSocket messages sent",
		},
		[]string{"channel"},
	)

	c.WSSubscriptions = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "arisan",
			Subsystem: "websocket",
			Name:      "subscriptions",
			Help:      "Number of active subscriptions per channel",
		},
		[]string{"channel"},
	)

	// API metrics
	c.APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arisan",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total API requests",
		},
		[]string{"method", "path", "status"},
	)

	c.APIRequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "arisan",
			Subsystem: "api",
			Name:      "request_latency_ms",
			Help:      "API request latency in milliseconds",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"method", "path"},
	)

	c.APIErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arisan",
			Subsystem: "api",
			Name:      "errors_total",
			Help:      "Total API errors",
		},
		[]string{"method", "path", "error_type"},
	)

	c.RateLimitHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arisan",
			Subsystem: "api",
			Name:      "rate_limit_hits",
			Help:      "Total rate limit hits",
		},
		[]string{"limit_type"},
	)

	// System metrics
	c.BlockHeight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "arisan",
			Subsystem: "system",
			Name:      "block_height",
			Help:      "Current block height",
		},
	)

	c.BlockTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "arisan",
			Subsystem: "system",
			Name:      "block_time_ms",
			Help:      "Block time in milliseconds",
			Buckets:   []float64{500, 1000, 2000, 5000, 10000},
		},
		[]string{},
	)

	// Register all metrics
	c.registerAll()

	return c
}

// registerAll registers all metrics with Prometheus
func (c *Collector) registerAll() {
	// Pool metrics
	prometheus.MustRegister(c.PoolsTotal)
	prometheus.MustRegister(c.PoolsActive)
	prometheus.MustRegister(c.PoolMembers)
	prometheus.MustRegister(c.PoolTransitions)
	prometheus.MustRegister(c.EndBlockerLatency)

	// Contribution metrics
	prometheus.MustRegister(c.ContributionsTotal)
	prometheus.MustRegister(c.ContributionValue)
	prometheus.MustRegister(c.RefundsTotal)
	prometheus.MustRegister(c.PayoutsTotal)
	prometheus.MustRegister(c.PayoutValue)

	// Yield metrics
	prometheus.MustRegister(c.ManagedFunds)
	prometheus.MustRegister(c.YieldAccrued)
	prometheus.MustRegister(c.YieldUpdates)
	prometheus.MustRegister(c.StrategyActive)

	// Lottery metrics
	prometheus.MustRegister(c.DrawsTotal)
	prometheus.MustRegister(c.PrizeValue)
	prometheus.MustRegister(c.DrawLatency)

	// Badge metrics
	prometheus.MustRegister(c.BadgesMinted)
	prometheus.MustRegister(c.BadgeHolders)

	// WebSocket metrics
	prometheus.MustRegister(c.WSConnectionsActive)
	prometheus.MustRegister(c.WSMessagesTotal)
	prometheus.MustRegister(c.WSSubscriptions)

	// API metrics
	prometheus.MustRegister(c.APIRequestsTotal)
	prometheus.MustRegister(c.APIRequestLatency)
	prometheus.MustRegister(c.APIErrorsTotal)
	prometheus.MustRegister(c.RateLimitHits)

	// System metrics
	prometheus.MustRegister(c.BlockHeight)
	prometheus.MustRegister(c.BlockTime)
}

// ============ Recording Helpers ============

// RecordPoolCreated records a pool creation
func (c *Collector) RecordPoolCreated(strategyID string) {
	c.PoolsTotal.WithLabelValues(strategyID).Inc()
	c.PoolsActive.Inc()
}

// RecordPoolTransition records a pool state transition
func (c *Collector) RecordPoolTransition(from, to string) {
	c.PoolTransitions.WithLabelValues(from, to).Inc()
	if from == "active" {
		c.PoolsActive.Dec()
	}
}

// RecordContribution records a member contribution
func (c *Collector) RecordContribution(poolID string, value float64) {
	c.ContributionsTotal.WithLabelValues(poolID).Inc()
	c.ContributionValue.WithLabelValues(poolID).Add(value)
}

// RecordRefund records a refund event
func (c *Collector) RecordRefund(reason string) {
	c.RefundsTotal.WithLabelValues(reason).Inc()
}

// RecordPayout records a member payout
func (c *Collector) RecordPayout(poolID string, value float64) {
	c.PayoutsTotal.WithLabelValues(poolID).Inc()
	c.PayoutValue.WithLabelValues(poolID).Add(value)
}

// RecordYieldUpdate records a yield accrual update
func (c *Collector) RecordYieldUpdate(strategyID string, accrued float64) {
	c.YieldUpdates.WithLabelValues(strategyID).Inc()
	if accrued > 0 {
		c.YieldAccrued.WithLabelValues(strategyID).Add(accrued)
	}
}

// RecordDraw records a lottery draw
func (c *Collector) RecordDraw(poolID string, prize, latencyMs float64) {
	c.DrawsTotal.WithLabelValues(poolID).Inc()
	c.PrizeValue.WithLabelValues(poolID).Add(prize)
	c.DrawLatency.WithLabelValues().Observe(latencyMs)
}

// RecordBadgeMint records a badge mint
func (c *Collector) RecordBadgeMint(badgeType string) {
	c.BadgesMinted.WithLabelValues(badgeType).Inc()
}

// RecordAPIRequest records an API request
func (c *Collector) RecordAPIRequest(method, path, status string, latencyMs float64) {
	c.APIRequestsTotal.WithLabelValues(method, path, status).Inc()
	c.APIRequestLatency.WithLabelValues(method, path).Observe(latencyMs)
}

// RecordRateLimitHit records a rate limit rejection
func (c *Collector) RecordRateLimitHit(limitType string) {
	c.RateLimitHits.WithLabelValues(limitType).Inc()
}

// RecordWSConnection records WebSocket connection changes
func (c *Collector) RecordWSConnection(delta int) {
	c.WSConnectionsActive.Add(float64(delta))
}

// RecordWSMessage records a WebSocket message
func (c *Collector) RecordWSMessage(channel string) {
	c.WSMessagesTotal.WithLabelValues(channel).Inc()
}

// UpdateSystemMetrics updates system-level metrics
func (c *Collector) UpdateSystemMetrics(blockHeight int64, blockTimeMs float64) {
	c.BlockHeight.Set(float64(blockHeight))
	if blockTimeMs > 0 {
		c.BlockTime.WithLabelValues().Observe(blockTimeMs)
	}
}

// ============ HTTP Handler ============

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer is a helper for measuring latency
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ElapsedMs returns the elapsed time in milliseconds
func (t *Timer) ElapsedMs() float64 {
	return float64(time.Since(t.start).Microseconds()) / 1000.0
}
