// Package stubgateway is an in-memory double of the order-management backend
// REST API, for local development and hermetic integration tests. It honors
// the real wire contract: Spring-style page envelopes, stock decrement on
// order creation, and the 400/404 failure classes the console maps onto its
// error taxonomy.
package stubgateway

import (
	"errors"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"orderconsole/internal/domain"
)

// Server carries the stub's state and exposes it as a gin handler.
type Server struct {
	store  *store
	logger *log.Logger
}

// New builds a seeded Server.
func New(logger *log.Logger) *Server {
	s := &Server{store: newStore(), logger: logger}
	seed(s.store)
	return s
}

// Handler returns the stub's router, rooted at /api.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	if s.logger != nil {
		router.Use(gin.LoggerWithWriter(s.logger.Writer()))
	}

	api := router.Group("/api")
	{
		api.GET("/products", s.handleListProducts)
		api.POST("/products", s.handleCreateProduct)
		api.PUT("/products/:id", s.handleUpdateProduct)
		api.DELETE("/products/:id", s.handleDeleteProduct)

		api.GET("/orders", s.handleListOrders)
		api.POST("/orders", s.handleCreateOrder)
		api.GET("/orders/:id", s.handleGetOrder)
		api.PATCH("/orders/:id/status", s.handleUpdateOrderStatus)
		api.GET("/orders/status/:status", s.handleOrdersByStatus)
	}
	return router
}

func (s *Server) handleListProducts(c *gin.Context) {
	products := s.store.listProducts()
	sortProducts(products, c.DefaultQuery("sortBy", "id"), c.DefaultQuery("sortDirection", "asc"))

	// Without paging params the real backend returns a plain array.
	pageParam, hasPage := c.GetQuery("page")
	if !hasPage {
		c.JSON(http.StatusOK, products)
		return
	}
	page, size, ok := pagingParams(c, pageParam)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, paginate(products, page, size))
}

func (s *Server) handleCreateProduct(c *gin.Context) {
	var p product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product payload"})
		return
	}
	if strings.TrimSpace(p.Name) == "" || p.Price < 0 || p.StockQuantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product fields"})
		return
	}
	c.JSON(http.StatusCreated, s.store.createProduct(p))
}

func (s *Server) handleUpdateProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var p product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product payload"})
		return
	}
	updated, err := s.store.updateProduct(id, p)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleDeleteProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := s.store.deleteProduct(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleListOrders(c *gin.Context) {
	orders := s.store.listOrders()
	sortOrders(orders, c.DefaultQuery("sortBy", "id"), c.DefaultQuery("sortDirection", "desc"))

	pageParam, hasPage := c.GetQuery("page")
	if !hasPage {
		c.JSON(http.StatusOK, orders)
		return
	}
	page, size, ok := pagingParams(c, pageParam)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, paginate(orders, page, size))
}

func (s *Server) handleCreateOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order payload"})
		return
	}
	created, err := s.store.createOrder(req)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleGetOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	o, err := s.store.getOrder(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, o)
}

func (s *Server) handleUpdateOrderStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	updated, err := s.store.updateOrderStatus(id, c.Query("status"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleOrdersByStatus(c *gin.Context) {
	status := c.Param("status")
	if !domain.KnownStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}
	orders := s.store.ordersByStatus(status)
	if orders == nil {
		orders = []order{}
	}
	c.JSON(http.StatusOK, orders)
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func pagingParams(c *gin.Context, pageParam string) (page, size int, ok bool) {
	page, err := strconv.Atoi(pageParam)
	if err != nil || page < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return 0, 0, false
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid size"})
		return 0, 0, false
	}
	return page, size, true
}

func writeStoreError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func sortProducts(products []product, by, dir string) {
	less := func(i, j int) bool { return products[i].ID < products[j].ID }
	switch by {
	case "name":
		less = func(i, j int) bool { return products[i].Name < products[j].Name }
	case "price":
		less = func(i, j int) bool { return products[i].Price < products[j].Price }
	case "stockQuantity":
		less = func(i, j int) bool { return products[i].StockQuantity < products[j].StockQuantity }
	}
	sort.SliceStable(products, func(i, j int) bool {
		if dir == "desc" {
			return less(j, i)
		}
		return less(i, j)
	})
}

func sortOrders(orders []order, by, dir string) {
	less := func(i, j int) bool { return orders[i].ID < orders[j].ID }
	switch by {
	case "createdAt":
		less = func(i, j int) bool { return orders[i].CreatedAt.Before(orders[j].CreatedAt) }
	case "total":
		less = func(i, j int) bool { return orders[i].Total < orders[j].Total }
	}
	sort.SliceStable(orders, func(i, j int) bool {
		if dir == "desc" {
			return less(j, i)
		}
		return less(i, j)
	})
}
