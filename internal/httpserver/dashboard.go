package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"orderconsole/internal/dashboard"
	"orderconsole/internal/domain"
)

type dashboardResponse struct {
	dashboard.Snapshot
	AutoRefresh      bool `json:"autoRefresh"`
	RemainingSeconds int  `json:"remainingSeconds"`
}

func (s *Server) dashboardResponse(c *gin.Context) dashboardResponse {
	sess := currentSession(c)
	return dashboardResponse{
		Snapshot:         sess.Dashboard.Snapshot(),
		AutoRefresh:      sess.Refresh.Enabled(),
		RemainingSeconds: sess.Refresh.Remaining(),
	}
}

// handleDashboard returns the current snapshot, loading the first page if
// nothing has been loaded yet.
func (s *Server) handleDashboard(c *gin.Context) {
	sess := currentSession(c)
	snap := sess.Dashboard.Snapshot()
	if snap.TotalPages == 0 && len(snap.Orders) == 0 {
		if err := sess.Dashboard.Load(c.Request.Context(), false); err != nil {
			writeError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, s.dashboardResponse(c))
}

func (s *Server) handleDashboardFilters(c *gin.Context) {
	var filter domain.Filter
	if err := c.ShouldBindJSON(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter payload"})
		return
	}
	currentSession(c).Dashboard.SetFilter(filter)
	c.JSON(http.StatusOK, s.dashboardResponse(c))
}

func (s *Server) handleDashboardPage(c *gin.Context) {
	var req struct {
		Page int `json:"page"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page payload"})
		return
	}
	if err := currentSession(c).Dashboard.ChangePage(c.Request.Context(), req.Page); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.dashboardResponse(c))
}

func (s *Server) handleDashboardPageSize(c *gin.Context) {
	var req struct {
		Size int `json:"size"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page size payload"})
		return
	}
	if err := currentSession(c).Dashboard.ChangePageSize(c.Request.Context(), req.Size); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.dashboardResponse(c))
}

func (s *Server) handleDashboardSort(c *gin.Context) {
	var req struct {
		SortBy  string `json:"sortBy"`
		SortDir string `json:"sortDirection"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sort payload"})
		return
	}
	if err := currentSession(c).Dashboard.ChangeSort(c.Request.Context(), req.SortBy, req.SortDir); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.dashboardResponse(c))
}

// handleManualRefresh reloads with the spinner and, when auto-refresh is on,
// restarts its window so the next silent reload is a full interval away.
func (s *Server) handleManualRefresh(c *gin.Context) {
	sess := currentSession(c)
	if err := sess.Dashboard.Load(c.Request.Context(), false); err != nil {
		writeError(c, err)
		return
	}
	sess.Refresh.Kick()
	c.JSON(http.StatusOK, s.dashboardResponse(c))
}

func (s *Server) handleAutoRefresh(c *gin.Context) {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid auto-refresh payload"})
		return
	}
	sess := currentSession(c)
	if req.Enabled {
		sess.Refresh.Enable()
	} else {
		sess.Refresh.Disable()
	}
	c.JSON(http.StatusOK, s.dashboardResponse(c))
}

func (s *Server) handleOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	order, err := currentSession(c).Dashboard.Order(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) handleOrderStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status required"})
		return
	}
	if err := currentSession(c).Dashboard.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.dashboardResponse(c))
}

func orderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return 0, false
	}
	return id, true
}
