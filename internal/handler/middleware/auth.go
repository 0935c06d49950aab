package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"swiss-virtual-airline/internal/domain/user"
	"swiss-virtual-airline/internal/handler/httperr"
	"swiss-virtual-airline/internal/pkg/errs"
	"swiss-virtual-airline/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	auth usecase.AuthUseCase
}

const (
	ctxIdentityKey     = "session_identity"
	ctxSessionTokenKey = "session_token"
)

func NewAuthMiddleware(auth usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrInvalidSession, "No authorization header")
			return
		}

		identity, err := m.auth.ResolveSession(token)
		if err != nil {
			slog.Warn("session resolution failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token")
			return
		}

		c.Set(ctxIdentityKey, identity)
		c.Set(ctxSessionTokenKey, token)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

// GetIdentity returns the authenticated identity set by RequireAuth.
func GetIdentity(c *gin.Context) (user.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return user.Identity{}, false
	}

	identity, ok := v.(user.Identity)
	return identity, ok
}

// GetSessionToken returns the raw bearer token, for logout revocation.
func GetSessionToken(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxSessionTokenKey)
	if !exists {
		return "", false
	}

	token, ok := v.(string)
	return token, ok
}
