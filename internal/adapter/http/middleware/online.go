package middleware

import (
	"net/http"

	"coatingshop/pkg"

	"github.com/gin-gonic/gin"
)

// OnlineChecker reports whether the persistence backend is reachable.
type OnlineChecker interface {
	Online() bool
}

var errOffline = pkg.NewDomainErrorSimple("OFFLINE", "Service is offline, changes are disabled until the connection is restored", http.StatusServiceUnavailable)

// RequireOnline rejects writes while the backend is unreachable. Reads pass
// through. Writes are not queued.
func RequireOnline(checker OnlineChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}
		if checker != nil && !checker.Online() {
			c.AbortWithStatusJSON(errOffline.HTTPStatus, errOffline.ToHTTPError())
			return
		}
		c.Next()
	}
}
