package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"aurora-store/internal/domain"

	"github.com/gin-gonic/gin"
)

type commentView struct {
	domain.Comment
	Editable bool `json:"editable"`
}

func (h *handlers) listProducts(c *gin.Context) {
	products, err := h.deps.CatalogSvc.List(c.Request.Context())
	if err != nil {
		h.logger.Printf("list products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    h.deps.CartSvc.Count(sessionID(c)),
	})
}

func (h *handlers) getProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	product, err := h.deps.CatalogSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		h.logger.Printf("get product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}

	sid := sessionID(c)
	comments, err := h.deps.CommentSvc.ListByProduct(c.Request.Context(), id)
	if err != nil {
		h.logger.Printf("list comments for product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}

	views := make([]commentView, 0, len(comments))
	for _, cm := range comments {
		views = append(views, commentView{Comment: cm, Editable: cm.SessionID == sid})
	}

	c.JSON(http.StatusOK, gin.H{
		"product":  product,
		"comments": views,
	})
}
