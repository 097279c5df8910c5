package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"petkeeper/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxOwnerIDKey = "owner_id"

// AuthMiddleware resolves the acting owner from a bearer token. Ownership of
// individual pets is checked downstream by the interaction engine; this
// layer only establishes who is asking.
type AuthMiddleware struct {
	tokens *jwt.Service
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxOwnerIDKey, claims.OwnerID)
		c.Next()
	}
}

// GetOwnerID returns the authenticated owner set by RequireAuth.
func GetOwnerID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxOwnerIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
