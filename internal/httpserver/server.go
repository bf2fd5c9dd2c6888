package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"orderconsole/internal/session"
)

// Server wraps the console's HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
	hub        *hub
}

// Deps carries the server's collaborators.
type Deps struct {
	Sessions    *session.Registry
	CORSOrigins []string
}

// New builds a Server with the console routes.
func New(addr string, logger *log.Logger, deps Deps) *Server {
	s := &Server{
		logger: logger,
		hub:    newHub(),
	}
	router := s.buildRouter(deps)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.closeAll()
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
