package httpserver

import (
	"net/http"

	"aurora-store/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookie = "sid"
	ctxSessionID  = "sessionID"
)

// sessionMiddleware ensures every browser request carries a session identity
// token, issuing one on first need. The token lives as long as the cookie;
// there is no explicit destroy.
func sessionMiddleware(manager *session.Manager, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || sid == "" {
			sid, err = manager.Issue()
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, sid, 0, "/", "", secure, true)
		}
		c.Set(ctxSessionID, sid)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(ctxSessionID)
}

func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		h.Set("Cross-Origin-Opener-Policy", "same-origin")
		h.Set("Cross-Origin-Resource-Policy", "same-origin")
		c.Next()
	}
}
