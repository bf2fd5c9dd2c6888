package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"orderconsole/internal/catalog"
)

// handleProducts returns the product list snapshot, loading the first page on
// demand. A `search` query narrows the loaded page client-side.
func (s *Server) handleProducts(c *gin.Context) {
	sess := currentSession(c)
	snap := sess.Catalog.Snapshot()
	if snap.TotalPages == 0 && len(snap.Products) == 0 && !snap.Degraded {
		if err := sess.Catalog.Load(c.Request.Context(), false); err != nil {
			writeError(c, err)
			return
		}
	}
	if term, ok := c.GetQuery("search"); ok {
		sess.Catalog.Search(term)
	}
	c.JSON(http.StatusOK, sess.Catalog.Snapshot())
}

func (s *Server) handleProductCreate(c *gin.Context) {
	var in catalog.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product payload"})
		return
	}
	product, err := currentSession(c).Catalog.Save(c.Request.Context(), 0, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (s *Server) handleProductUpdate(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	var in catalog.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product payload"})
		return
	}
	product, err := currentSession(c).Catalog.Save(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) handleProductDelete(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	if err := currentSession(c).Catalog.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleProductsPage(c *gin.Context) {
	var req struct {
		Page int `json:"page"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page payload"})
		return
	}
	sess := currentSession(c)
	if err := sess.Catalog.ChangePage(c.Request.Context(), req.Page); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Catalog.Snapshot())
}

func (s *Server) handleProductsPageSize(c *gin.Context) {
	var req struct {
		Size int `json:"size"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page size payload"})
		return
	}
	sess := currentSession(c)
	if err := sess.Catalog.ChangePageSize(c.Request.Context(), req.Size); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Catalog.Snapshot())
}

func productID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return 0, false
	}
	return id, true
}
