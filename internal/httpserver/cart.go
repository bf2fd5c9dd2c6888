package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"orderconsole/internal/domain"
	"orderconsole/internal/money"
)

// redirectAfterSeconds is how long the UI shows the success banner before
// returning to the dashboard.
const redirectAfterSeconds = 3

type cartResponse struct {
	Items          []domain.CartItem `json:"items"`
	Total          float64           `json:"total"`
	TotalFormatted string            `json:"totalFormatted"`
}

func cartSnapshot(c *gin.Context) cartResponse {
	cart := currentSession(c).Cart
	total := cart.Total()
	return cartResponse{
		Items:          cart.Items(),
		Total:          total,
		TotalFormatted: money.Format(total),
	}
}

func (s *Server) handleCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartSnapshot(c))
}

// handleCartAdd stages a product from the currently loaded catalog page.
func (s *Server) handleCartAdd(c *gin.Context) {
	var req struct {
		ProductID int64 `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
		return
	}

	sess := currentSession(c)
	var staged bool
	for _, p := range sess.Catalog.Snapshot().Products {
		if p.ID == req.ProductID {
			staged = sess.Cart.Add(p)
			break
		}
	}
	if !staged {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not in the loaded catalog"})
		return
	}
	c.JSON(http.StatusOK, cartSnapshot(c))
}

func (s *Server) handleCartQuantity(c *gin.Context) {
	id, ok := cartProductID(c)
	if !ok {
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
		return
	}
	currentSession(c).Cart.UpdateQuantity(id, req.Quantity)
	c.JSON(http.StatusOK, cartSnapshot(c))
}

func (s *Server) handleCartRemove(c *gin.Context) {
	id, ok := cartProductID(c)
	if !ok {
		return
	}
	currentSession(c).Cart.Remove(id)
	c.JSON(http.StatusOK, cartSnapshot(c))
}

// handleCartSubmit places the staged order. On success the product list is
// reloaded so it reflects the backend's stock decrement, and the response
// tells the UI when to return to the dashboard. Failures keep the cart intact
// and map to the three user-facing messages.
func (s *Server) handleCartSubmit(c *gin.Context) {
	sess := currentSession(c)
	order, err := sess.Cart.Submit(c.Request.Context())
	if err != nil {
		status, message := submitFailure(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	if err := sess.Catalog.Load(c.Request.Context(), false); err != nil && s.logger != nil {
		s.logger.Printf("post-submit catalog reload failed: %v", err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"orderId":              order.ID,
		"total":                order.Total,
		"totalFormatted":       money.Format(order.Total),
		"redirectAfterSeconds": redirectAfterSeconds,
	})
}

func submitFailure(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return http.StatusBadRequest, "Please add at least one product to the order"
	case errors.Is(err, domain.ErrInvalid):
		return http.StatusBadRequest, "Invalid order data. Please check the quantities."
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "One or more products not found."
	default:
		return http.StatusBadGateway, "Failed to create order. Please try again."
	}
}

func cartProductID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return 0, false
	}
	return id, true
}
