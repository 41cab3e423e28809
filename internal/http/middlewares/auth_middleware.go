package middlewares

import (
	"net/http"
	"strings"

	"github.com/avega-dev/cronogramas/internal/auth"
	"github.com/gin-gonic/gin"
)

// TokenVerifier is kept small so tests can fake it easily.
type TokenVerifier interface {
	VerifyAccessToken(token string) (int64, *auth.Claims, error)
}

type AuthMiddleware struct {
	jwt TokenVerifier
}

func NewAuthMiddleware(jwt TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwt}
}

// RequireAuth rejects requests without a valid bearer token and stashes
// the parsed account id and role on the gin context. Missing or
// unverifiable tokens are 401; whether the account still exists is the
// handlers' concern (404 there).
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Missing or invalid Authorization header")
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if raw == "" {
			abortUnauthorized(c, "Missing or invalid access token")
			return
		}

		userID, claims, err := m.jwt.VerifyAccessToken(raw)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired access token")
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxRolKey, claims.Rol)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "unauthorized",
			"message": message,
		},
	})
}

// Helpers so handlers don't need to know the magic keys.

func UserIDFromContext(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func RolFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxRolKey)
	if !ok {
		return "", false
	}
	rol, ok := v.(string)
	return rol, ok
}
