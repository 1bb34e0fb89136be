package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"greenrfq/internal/domain/actor"
	"greenrfq/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokens *jwt.Service
}

const (
	ctxActorIDKey   = "actor_id"
	ctxActorRoleKey = "actor_role"
)

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		role, err := actor.NewRole(claims.Role)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxActorIDKey, claims.ActorID)
		c.Set(ctxActorRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"actor_id": claims.ActorID.String(),
			"role":     string(role),
		})
		c.Next()
	}
}

// RequireRole gates a route group to the given roles. Must run after
// RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...actor.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetActorRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
		c.Abort()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetActorID(c *gin.Context) (uuid.UUID, bool) {
	actorID, exists := c.Get(ctxActorIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := actorID.(uuid.UUID)
	return id, ok
}

func GetActorRole(c *gin.Context) (actor.Role, bool) {
	actorRole, exists := c.Get(ctxActorRoleKey)
	if !exists {
		return "", false
	}

	role, ok := actorRole.(actor.Role)
	return role, ok
}
