package httpserver

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"orderconsole/internal/session"
)

// buildRouter wires the console's JSON API.
func (s *Server) buildRouter(deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	if s.logger != nil {
		router.Use(gin.LoggerWithWriter(s.logger.Writer()))
	}

	corsCfg := cors.DefaultConfig()
	if len(deps.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = deps.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)

	api := router.Group("/api")
	api.POST("/login", s.handleLogin(deps.Sessions))

	authed := api.Group("", sessionMiddleware(deps.Sessions))
	{
		authed.POST("/logout", s.handleLogout(deps.Sessions))

		authed.GET("/dashboard", s.handleDashboard)
		authed.PUT("/dashboard/filters", s.handleDashboardFilters)
		authed.PUT("/dashboard/page", s.handleDashboardPage)
		authed.PUT("/dashboard/page-size", s.handleDashboardPageSize)
		authed.PUT("/dashboard/sort", s.handleDashboardSort)
		authed.POST("/dashboard/refresh", s.handleManualRefresh)
		authed.PUT("/dashboard/auto-refresh", s.handleAutoRefresh)

		authed.GET("/orders/:id", s.handleOrder)
		authed.PATCH("/orders/:id/status", s.handleOrderStatus)

		authed.GET("/products", s.handleProducts)
		authed.POST("/products", s.handleProductCreate)
		authed.PUT("/products/page", s.handleProductsPage)
		authed.PUT("/products/page-size", s.handleProductsPageSize)
		authed.PUT("/products/:id", s.handleProductUpdate)
		authed.DELETE("/products/:id", s.handleProductDelete)

		authed.GET("/cart", s.handleCart)
		authed.POST("/cart", s.handleCartAdd)
		authed.PUT("/cart/:productId", s.handleCartQuantity)
		authed.DELETE("/cart/:productId", s.handleCartRemove)
		authed.POST("/cart/submit", s.handleCartSubmit)
	}

	// The websocket handshake carries the token as a query parameter because
	// browsers cannot set headers on WebSocket connections.
	api.GET("/ws", s.handleWS(deps.Sessions))

	return router
}

const sessionKey = "console-session"

// sessionMiddleware resolves the bearer token to a live session or rejects
// the request.
func sessionMiddleware(sessions *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessions.Get(bearerToken(c))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	const prefix = "Bearer "
	h := c.GetHeader("Authorization")
	if len(h) > len(prefix) && h[:len(prefix)] == prefix {
		return h[len(prefix):]
	}
	return ""
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}
