package middleware

import (
	"github.com/gin-gonic/gin"

	"go-intake-backend/pkg/apperror"
	"go-intake-backend/pkg/logger"
)

// OriginCheck rejects requests whose Origin header is not on the
// allow-list. It runs before rate limiting and body parsing, so rejected
// traffic costs nothing downstream. devMode bypasses the check entirely
// for local frontends.
//
// The Origin header is spoofable; this check bounds the cost of casual
// abuse, it is not a trust boundary. The 403 body carries no detail so
// the allow-list contents are not revealed.
func OriginCheck(allowedOrigins []string, devMode bool) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return func(c *gin.Context) {
		if devMode {
			c.Next()
			return
		}

		origin := c.Request.Header.Get("Origin")
		if !allowed[origin] {
			logger.Log.Warn("request rejected by origin check", "origin", origin, "path", c.FullPath())
			c.Error(apperror.Forbidden(""))
			c.Abort()
			return
		}

		// Browsers cache per origin; make sure caches differentiate
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Vary", "Origin")

		c.Next()
	}
}
