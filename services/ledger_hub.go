package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	Conn *websocket.Conn
}

// LedgerHub fans ledger events out to connected UI clients so open screens
// re-render without polling: "day.updated" after an upsert or merge,
// "sync.state" on sync state transitions.
type LedgerHub struct {
	mu      sync.RWMutex
	clients map[*WSClient]struct{}
}

func NewLedgerHub() *LedgerHub {
	return &LedgerHub{clients: make(map[*WSClient]struct{})}
}

func (h *LedgerHub) Register(c *WSClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *LedgerHub) Unregister(c *WSClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *LedgerHub) Broadcast(kind string, payload any) {
	msg, _ := json.Marshal(map[string]any{"kind": kind, "data": payload})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
