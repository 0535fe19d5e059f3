package middleware

import (
	"context"
	"net/http"
	"strings"

	"coatingshop/internal/usecase"
	"coatingshop/pkg"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

var errUnauthenticated = pkg.NewDomainErrorSimple(usecase.CodeUnauthenticated, "Authentication required", http.StatusUnauthorized)

// TokenVerifier turns a bearer token into the caller's identity.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (usecase.Actor, error)
}

// Authenticate requires a valid "Authorization: Bearer <token>" header and
// stores the caller for ActorFrom.
func Authenticate(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		actor, err := v.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// ActorFrom returns the authenticated caller, or the zero Actor on public routes.
func ActorFrom(c *gin.Context) usecase.Actor {
	if v, ok := c.Get(actorKey); ok {
		if a, ok := v.(usecase.Actor); ok {
			return a
		}
	}
	return usecase.Actor{}
}

// SetActor is used by tests and internal callers that authenticate by other means.
func SetActor(c *gin.Context, a usecase.Actor) {
	c.Set(actorKey, a)
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
