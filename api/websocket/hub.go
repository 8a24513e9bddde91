package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Hub maintains the set of active clients and broadcasts messages
type Hub struct {
	// Registered clients by channel
	clients  map[*Client]bool
	channels map[string]map[*Client]bool // channel -> clients

	// Inbound messages from clients
	broadcast chan []byte

	// Register/unregister requests
	register   chan *Client
	unregister chan *Client

	// Channel subscription requests
	subscribe   chan *SubscriptionRequest
	unsubscribe chan *SubscriptionRequest

	// Buffered updates flushed at the configured intervals
	poolBuffer  map[uint64]*PoolUpdateMessage
	statsBuffer *StatsMessage

	// Mutex for thread-safe operations
	mu sync.RWMutex

	// Configuration
	config *HubConfig
}

// HubConfig contains hub configuration
type HubConfig struct {
	// Update intervals
	PoolInterval  time.Duration // Default: 1s
	StatsInterval time.Duration // Default: 5s

	// Connection limits
	MaxClientsPerIP  int
	MaxSubscriptions int

	// Rate limiting
	MessageRateLimit int // Messages per second per client
}

// DefaultHubConfig returns default hub configuration
func DefaultHubConfig() *HubConfig {
	return &HubConfig{
		PoolInterval:     time.Second,
		StatsInterval:    5 * time.Second,
		MaxClientsPerIP:  10,
		MaxSubscriptions: 50,
		MessageRateLimit: 100,
	}
}

// SubscriptionRequest represents a subscription request
type SubscriptionRequest struct {
	Client  *Client
	Channel string
	Action  string // "subscribe" or "unsubscribe"
}

// NewHub creates a new Hub
func NewHub(config *HubConfig) *Hub {
	if config == nil {
		config = DefaultHubConfig()
	}

	return &Hub{
		clients:     make(map[*Client]bool),
		channels:    make(map[string]map[*Client]bool),
		broadcast:   make(chan []byte, 256),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		subscribe:   make(chan *SubscriptionRequest, 256),
		unsubscribe: make(chan *SubscriptionRequest, 256),
		poolBuffer:  make(map[uint64]*PoolUpdateMessage),
		config:      config,
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	poolTicker := time.NewTicker(h.config.PoolInterval)
	statsTicker := time.NewTicker(h.config.StatsInterval)

	defer poolTicker.Stop()
	defer statsTicker.Stop()

	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case req := <-h.subscribe:
			h.handleSubscription(req)

		case req := <-h.unsubscribe:
			h.handleUnsubscription(req)

		case message := <-h.broadcast:
			h.broadcastMessage(message)

		case <-poolTicker.C:
			h.broadcastPools()

		case <-statsTicker.C:
			h.broadcastStats()
		}
	}
}

// registerClient adds a new client
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
}

// unregisterClient removes a client
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)

		// Remove from all channels
		for channel, clients := range h.channels {
			delete(clients, client)
			if len(clients) == 0 {
				delete(h.channels, channel)
			}
		}

		close(client.send)
	}
}

// handleSubscription handles a subscription request
func (h *Hub) handleSubscription(req *SubscriptionRequest) {
	h.mu.Lock()
	defer h.mu.Unlock()

	channel := req.Channel
	client := req.Client

	if _, ok := h.channels[channel]; !ok {
		h.channels[channel] = make(map[*Client]bool)
	}
	h.channels[channel][client] = true

	// Send subscription confirmation
	confirmation := &WSMessage{
		Type:    "subscribed",
		Channel: channel,
		Data:    nil,
	}
	data, _ := json.Marshal(confirmation)
	client.send <- data
}

// handleUnsubscription handles an unsubscription request
func (h *Hub) handleUnsubscription(req *SubscriptionRequest) {
	h.mu.Lock()
	defer h.mu.Unlock()

	channel := req.Channel
	client := req.Client

	if clients, ok := h.channels[channel]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.channels, channel)
		}
	}

	// Send unsubscription confirmation
	confirmation := &WSMessage{
		Type:    "unsubscribed",
		Channel: channel,
		Data:    nil,
	}
	data, _ := json.Marshal(confirmation)
	client.send <- data
}

// broadcastMessage sends a message to all connected clients
func (h *Hub) broadcastMessage(message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			// Client buffer is full, skip
		}
	}
}

// BroadcastToChannel sends a message to all clients subscribed to a channel
func (h *Hub) BroadcastToChannel(channel string, message interface{}) {
	h.mu.RLock()
	clients, ok := h.channels[channel]
	if !ok {
		h.mu.RUnlock()
		return
	}

	// Make a copy of clients to avoid holding lock during send
	clientList := make([]*Client, 0, len(clients))
	for client := range clients {
		clientList = append(clientList, client)
	}
	h.mu.RUnlock()

	data, err := json.Marshal(message)
	if err != nil {
		return
	}

	for _, client := range clientList {
		select {
		case client.send <- data:
		default:
			// Client buffer is full, skip
		}
	}
}

// ============ Channel-specific broadcasts ============

// UpdatePool buffers a pool update for the next interval broadcast
func (h *Hub) UpdatePool(poolID uint64, update *PoolUpdateMessage) {
	h.mu.Lock()
	h.poolBuffer[poolID] = update
	h.mu.Unlock()
}

// UpdateStats buffers a registry-wide stats update
func (h *Hub) UpdateStats(stats *StatsMessage) {
	h.mu.Lock()
	h.statsBuffer = stats
	h.mu.Unlock()
}

// broadcastPools flushes buffered pool updates to per-pool channels
func (h *Hub) broadcastPools() {
	h.mu.Lock()
	updates := h.poolBuffer
	h.poolBuffer = make(map[uint64]*PoolUpdateMessage)
	h.mu.Unlock()

	for poolID, update := range updates {
		channel := fmt.Sprintf("pool:%d", poolID)
		msg := &WSMessage{
			Type:    "pool_update",
			Channel: channel,
			Data:    update,
		}
		h.BroadcastToChannel(channel, msg)

		// The list channel sees every pool update too
		h.BroadcastToChannel("pools", &WSMessage{
			Type:    "pool_update",
			Channel: "pools",
			Data:    update,
		})
	}
}

// broadcastStats flushes the buffered stats snapshot
func (h *Hub) broadcastStats() {
	h.mu.RLock()
	stats := h.statsBuffer
	h.mu.RUnlock()

	if stats == nil {
		return
	}
	msg := &WSMessage{
		Type:    "stats",
		Channel: "stats",
		Data:    stats,
	}
	h.BroadcastToChannel("stats", msg)
}

// BroadcastDraw broadcasts a completed lottery draw to pool subscribers
func (h *Hub) BroadcastDraw(poolID uint64, draw *DrawMessage) {
	channel := fmt.Sprintf("draws:%d", poolID)
	msg := &WSMessage{
		Type:    "draw",
		Channel: channel,
		Data:    draw,
	}
	h.BroadcastToChannel(channel, msg)
}

// BroadcastBadge broadcasts a badge mint to the recipient's private channel
func (h *Hub) BroadcastBadge(holder string, badge *BadgeMessage) {
	channel := "badges:" + holder
	msg := &WSMessage{
		Type:    "badge",
		Channel: channel,
		Data:    badge,
	}
	h.BroadcastToChannel(channel, msg)
}

// ============ Message Types ============

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string      `json:"type"`
	Channel string      `json:"channel"`
	Data    interface{} `json:"data,omitempty"`
}

// PoolUpdateMessage represents a pool state change
type PoolUpdateMessage struct {
	PoolID             uint64 `json:"pool_id"`
	Name               string `json:"name"`
	State              string `json:"state"`
	MemberCount        int    `json:"member_count"`
	MaxMembers         int    `json:"max_members"`
	TotalContributions string `json:"total_contributions"`
	YieldGenerated     string `json:"yield_generated"`
	Timestamp          int64  `json:"timestamp"`
}

// DrawMessage represents a completed lottery draw
type DrawMessage struct {
	PoolID      uint64 `json:"pool_id"`
	Round       uint64 `json:"round"`
	Winner      string `json:"winner"`
	PrizeAmount string `json:"prize_amount"`
	Timestamp   int64  `json:"timestamp"`
}

// BadgeMessage represents a badge mint
type BadgeMessage struct {
	TokenID   uint64 `json:"token_id"`
	BadgeType string `json:"badge_type"`
	PoolID    uint64 `json:"pool_id"`
	Recipient string `json:"recipient"`
	Timestamp int64  `json:"timestamp"`
}

// StatsMessage represents registry-wide pool statistics
type StatsMessage struct {
	TotalPools  int64  `json:"total_pools"`
	ActivePools int64  `json:"active_pools"`
	TotalValue  string `json:"total_value"`
	Timestamp   int64  `json:"timestamp"`
}

// GetClientCount returns the number of connected clients
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// GetChannelCount returns the number of active channels
func (h *Hub) GetChannelCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.channels)
}

// GetChannelClientCount returns the number of clients in a channel
func (h *Hub) GetChannelClientCount(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if clients, ok := h.channels[channel]; ok {
		return len(clients)
	}
	return 0
}

// ServeWS handles WebSocket upgrade requests
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	clientID := r.URL.Query().Get("client_id")
	if clientID == "" {
		clientID = generateID()
	}

	userID := r.URL.Query().Get("user_id")
	ip := getClientIPFromRequest(r)

	client := NewClient(h, conn, clientID, userID, ip)

	h.register <- client

	go client.writePump()
	go client.readPump()
}

// Helper function to get client IP
func getClientIPFromRequest(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for i := 0; i < len(xff); i++ {
			if xff[i] == ',' {
				return xff[:i]
			}
		}
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	ip := r.RemoteAddr
	for i := len(ip) - 1; i >= 0; i-- {
		if ip[i] == ':' {
			return ip[:i]
		}
	}
	return ip
}

// Generate a simple ID
func generateID() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}
