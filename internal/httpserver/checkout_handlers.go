package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// startCheckout converts the session's cart into either a provider redirect
// (configured gateway) or a straight success redirect (simulated gateway).
// Which flow runs was decided once at startup.
func (h *handlers) startCheckout(c *gin.Context) {
	email := c.PostForm("email")
	target, err := h.deps.Checkout.Start(c.Request.Context(), sessionID(c), email)
	if err != nil {
		h.logger.Printf("checkout start: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "something went wrong"})
		return
	}
	c.Redirect(http.StatusSeeOther, target)
}

// checkoutSuccess clears the cart unconditionally. It does not verify that
// payment actually completed; that is the reconciliation path's job and it
// runs independently of the buyer's browser.
func (h *handlers) checkoutSuccess(c *gin.Context) {
	h.deps.CartSvc.Clear(sessionID(c))
	c.JSON(http.StatusOK, gin.H{"status": "complete", "count": 0})
}

// checkoutCancel leaves the cart untouched so the buyer can retry.
func (h *handlers) checkoutCancel(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "canceled", "count": h.deps.CartSvc.Count(sessionID(c))})
}
