package httpserver

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"orderconsole/internal/session"
)

var upgrader = websocket.Upgrader{
	// The console UI may be served from a different origin than this API;
	// the token check below is what gates the feed.
	CheckOrigin: func(*http.Request) bool { return true },
}

// hub fans refresh events out to the websocket connections of each session.
type hub struct {
	mu    sync.Mutex
	conns map[string]map[*websocket.Conn]bool
}

func newHub() *hub {
	return &hub{conns: make(map[string]map[*websocket.Conn]bool)}
}

func (h *hub) add(token string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[token] == nil {
		h.conns[token] = make(map[*websocket.Conn]bool)
	}
	h.conns[token][conn] = true
}

func (h *hub) remove(token string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns[token], conn)
	if len(h.conns[token]) == 0 {
		delete(h.conns, token)
	}
}

// broadcast sends v to every connection of the session. Write failures drop
// the connection; the read loop notices on its next read.
func (h *hub) broadcast(token string, v any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns[token] {
		if err := conn.WriteJSON(v); err != nil {
			conn.Close()
			delete(h.conns[token], conn)
		}
	}
}

func (h *hub) closeSession(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns[token] {
		conn.Close()
	}
	delete(h.conns, token)
}

func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for token, conns := range h.conns {
		for conn := range conns {
			conn.Close()
		}
		delete(h.conns, token)
	}
}

// handleWS upgrades the connection and keeps it registered until the client
// goes away.
func (s *Server) handleWS(sessions *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if _, ok := sessions.Get(token); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		s.hub.add(token, conn)
		defer func() {
			s.hub.remove(token, conn)
			conn.Close()
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
