package httpserver

import (
	"log"
	"net/http"

	"aurora-store/internal/service/reconcile"

	"github.com/gin-gonic/gin"
)

// webhookHandler feeds the raw provider callback to the reconciler. With no
// webhook secret configured there is no reconciler, and every callback is
// rejected without processing. Rejections carry no detail about why.
func webhookHandler(reconciler *reconcile.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if reconciler == nil {
			c.Status(http.StatusBadRequest)
			return
		}

		payload, err := c.GetRawData()
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		signature := c.GetHeader("Stripe-Signature")
		if err := reconciler.HandleCallback(c.Request.Context(), payload, signature); err != nil {
			logger.Printf("webhook: %v", err)
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	}
}
