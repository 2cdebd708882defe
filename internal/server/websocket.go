package server

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// wsHub pushes game snapshots to connected viewers. The pull API stays
// authoritative; this is only a change notification layer, so a dropped
// connection loses nothing a refetch cannot recover.
type wsHub struct {
	mu     sync.Mutex
	groups map[string]map[*websocket.Conn]struct{}
}

func newWSHub() *wsHub {
	return &wsHub{
		groups: make(map[string]map[*websocket.Conn]struct{}),
	}
}

func (h *wsHub) Add(gameID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	group, ok := h.groups[gameID]
	if !ok {
		group = make(map[*websocket.Conn]struct{})
		h.groups[gameID] = group
	}
	group[conn] = struct{}{}
}

func (h *wsHub) Remove(gameID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if group, ok := h.groups[gameID]; ok {
		delete(group, conn)
		if len(group) == 0 {
			delete(h.groups, gameID)
		}
	}
}

func (h *wsHub) Broadcast(gameID string, payload any) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.groups[gameID]))
	for conn := range h.groups[gameID] {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(payload); err != nil {
			h.Remove(gameID, conn)
			_ = conn.Close()
		}
	}
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (s *Server) handleGameWebsocket(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	game, ok := s.store.Snapshot(gameID)
	if !ok {
		http.NotFound(w, r)
		return
	}

	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.ws.Add(gameID, conn)

	if view, err := s.publicGameView(game); err == nil && view != nil {
		_ = conn.WriteJSON(view)
	}

	go func() {
		defer func() {
			s.ws.Remove(gameID, conn)
			_ = conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// broadcastGame pushes the viewer-neutral projection after a mutation. The
// unrevealed answer never rides along; clients needing host fields refetch
// the pull API with their own identity.
func (s *Server) broadcastGame(game *Game) {
	view, err := s.publicGameView(game)
	if err != nil {
		log.Printf("failed to build broadcast view game_id=%s: %v", game.ID, err)
		return
	}
	if view == nil {
		return
	}
	s.ws.Broadcast(game.ID, view)
}
