package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type cartItemRequest struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

func (h *handlers) viewCart(c *gin.Context) {
	sid := sessionID(c)
	lines, total, err := h.deps.CartSvc.Price(c.Request.Context(), sid)
	if err != nil {
		h.logger.Printf("cart view: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      lines,
		"totalCents": total,
		"currency":   h.deps.Currency,
		"count":      h.deps.CartSvc.Count(sid),
	})
}

func (h *handlers) addToCart(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false})
		return
	}
	if _, err := strconv.ParseInt(req.ProductID, 10, 64); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false})
		return
	}
	count := h.deps.CartSvc.Add(sessionID(c), req.ProductID, req.Qty)
	c.JSON(http.StatusOK, gin.H{"ok": true, "count": count})
}

func (h *handlers) removeFromCart(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false})
		return
	}
	count := h.deps.CartSvc.Remove(sessionID(c), req.ProductID)
	c.JSON(http.StatusOK, gin.H{"ok": true, "count": count})
}

func (h *handlers) clearCart(c *gin.Context) {
	h.deps.CartSvc.Clear(sessionID(c))
	c.JSON(http.StatusOK, gin.H{"ok": true, "count": 0})
}
