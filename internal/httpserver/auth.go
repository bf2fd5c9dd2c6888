package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"orderconsole/internal/session"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// handleLogin is the stubbed login: any non-empty credentials produce a
// session. The session's refresh runner is wired to the websocket feed here.
func (s *Server) handleLogin(sessions *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
			return
		}
		sess, err := sessions.Login(req.Email, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}

		token := sess.Token
		dash := sess.Dashboard
		sess.Refresh.SetNotify(func(remaining int, reloaded bool) {
			event := gin.H{"type": "countdown", "remainingSeconds": remaining}
			if reloaded {
				event["type"] = "refresh"
				event["stats"] = dash.Snapshot().Stats
			}
			s.hub.broadcast(token, event)
		})

		c.JSON(http.StatusOK, loginResponse{Token: sess.Token, Email: sess.Email})
	}
}

func (s *Server) handleLogout(sessions *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		s.hub.closeSession(sess.Token)
		sessions.Logout(sess.Token)
		c.Status(http.StatusNoContent)
	}
}
