package websocket

import (
	"encoding/json"
	"testing"
)

// addSubscriber wires a connectionless client into a hub channel so
// routing can be observed through its send buffer.
func addSubscriber(h *Hub, userID, channel string) *Client {
	c := NewClient(h, nil, "test-"+userID, userID, "127.0.0.1")
	h.mu.Lock()
	h.clients[c] = true
	if _, ok := h.channels[channel]; !ok {
		h.channels[channel] = make(map[*Client]bool)
	}
	h.channels[channel][c] = true
	h.mu.Unlock()
	return c
}

func receiveMessage(t *testing.T, c *Client) *WSMessage {
	t.Helper()
	select {
	case data := <-c.send:
		var msg WSMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("bad frame: %v", err)
		}
		return &msg
	default:
		t.Fatal("expected a message, send buffer is empty")
		return nil
	}
}

func TestServerBroadcastBadgeRoutesByRecipient(t *testing.T) {
	srv := NewServer(nil)
	hub := srv.GetHub()

	winner := addSubscriber(hub, "cosmos1winner", "badges:cosmos1winner")
	other := addSubscriber(hub, "cosmos1other", "badges:cosmos1other")

	srv.BroadcastBadge(&BadgeMessage{
		TokenID:   7,
		BadgeType: "lottery_winner",
		PoolID:    1,
		Recipient: "cosmos1winner",
		Timestamp: 1700000000000,
	})

	msg := receiveMessage(t, winner)
	if msg.Type != "badge" || msg.Channel != "badges:cosmos1winner" {
		t.Errorf("unexpected frame: type=%s channel=%s", msg.Type, msg.Channel)
	}

	select {
	case data := <-other.send:
		t.Errorf("badge leaked to another holder's channel: %s", data)
	default:
	}
}

func TestServerBroadcastDrawRoutesByPool(t *testing.T) {
	srv := NewServer(nil)
	hub := srv.GetHub()

	sub := addSubscriber(hub, "cosmos1viewer", "draws:3")

	srv.BroadcastDraw(&DrawMessage{
		PoolID:      3,
		Round:       2,
		Winner:      "cosmos1winner",
		PrizeAmount: "1.500000000000000000",
		Timestamp:   1700000000000,
	})

	msg := receiveMessage(t, sub)
	if msg.Type != "draw" || msg.Channel != "draws:3" {
		t.Errorf("unexpected frame: type=%s channel=%s", msg.Type, msg.Channel)
	}
}
