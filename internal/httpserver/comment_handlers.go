package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type createCommentRequest struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

type editCommentRequest struct {
	Content string `json:"content"`
}

func (h *handlers) createComment(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "author and content required"})
		return
	}

	created, err := h.deps.CommentSvc.Create(c.Request.Context(), productID, sessionID(c), req.Author, req.Content)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "author and content required"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// editComment and deleteComment are no-ops for callers that do not own the
// comment; the response does not reveal whether the target existed.
func (h *handlers) editComment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}
	var req editCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content required"})
		return
	}
	if err := h.deps.CommentSvc.Edit(c.Request.Context(), id, sessionID(c), req.Content); err != nil {
		h.logger.Printf("edit comment %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) deleteComment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}
	if err := h.deps.CommentSvc.Delete(c.Request.Context(), id, sessionID(c)); err != nil {
		h.logger.Printf("delete comment %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}
	c.Status(http.StatusNoContent)
}
