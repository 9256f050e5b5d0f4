// Package notify broadcasts finalisation events to WebSocket clients
// watching a project.
package notify

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// FinalisationMessage is sent to every client watching a project when
// it is finalised.
type FinalisationMessage struct {
	Type        string    `json:"type"`
	ProjectID   int64     `json:"projectId"`
	ProjectName string    `json:"projectName"`
	Timestamp   time.Time `json:"timestamp"`
}

// Hub tracks WebSocket subscribers per project. A nil *Hub is valid and
// drops all broadcasts, so the web layer can run without notifications.
type Hub struct {
	mu       sync.RWMutex
	clients  map[int64]map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[int64]map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Subscribe upgrades the request to a WebSocket and registers the
// connection as a watcher of the project. It blocks until the client
// disconnects.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request, projectID int64) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("WebSocket upgrade failed", "project_id", projectID, "error", err)
		return
	}

	h.mu.Lock()
	if h.clients[projectID] == nil {
		h.clients[projectID] = make(map[*websocket.Conn]bool)
	}
	h.clients[projectID][conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		if clients, ok := h.clients[projectID]; ok {
			delete(clients, conn)
			if len(clients) == 0 {
				delete(h.clients, projectID)
			}
		}
		h.mu.Unlock()
		conn.Close()
		slog.Info("WebSocket closed", "project_id", projectID)
	}()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// The ping loop must exit with the subscription; a stopped ticker
	// never fires again, so the loop also waits on done.
	ticker := time.NewTicker(pingPeriod)
	done := make(chan struct{})
	defer func() {
		ticker.Stop()
		close(done)
	}()
	go func() {
		for {
			select {
			case <-ticker.C:
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("WebSocket read error", "project_id", projectID, "error", err)
			}
			return
		}
	}
}

// BroadcastFinalised notifies every watcher of the project that it has
// been finalised. Failed connections are dropped.
func (h *Hub) BroadcastFinalised(projectID int64, projectName string) {
	if h == nil {
		return
	}

	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients[projectID]))
	for conn := range h.clients[projectID] {
		clients = append(clients, conn)
	}
	h.mu.RUnlock()

	message := FinalisationMessage{
		Type:        "finalised",
		ProjectID:   projectID,
		ProjectName: projectName,
		Timestamp:   time.Now(),
	}

	for _, conn := range clients {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(message); err != nil {
			slog.Warn("Broadcast failed, dropping client", "project_id", projectID, "error", err)
			h.mu.Lock()
			if clients, ok := h.clients[projectID]; ok {
				delete(clients, conn)
				if len(clients) == 0 {
					delete(h.clients, projectID)
				}
			}
			h.mu.Unlock()
			conn.Close()
		}
	}
}
