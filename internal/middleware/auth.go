package middleware

import (
	"context"
	"net/http"
	"strings"

	"bobcathub/internal/model"
	"bobcathub/internal/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "user_id"
	ContextRoleKey   = "role"

	LoginPath    = "/auth/login"
	loginMessage = "Please login to access this page."
)

// SessionStore is the read side of the redis session repository.
type SessionStore interface {
	Get(ctx context.Context, userID uint64) (string, error)
	Extend(ctx context.Context, userID uint64) error
}

// Auth validates the bearer token against the single session stored for the
// user and slides its expiry. The 401 payload carries the login path and the
// originally requested path so the client can send the user back after login.
func Auth(tokens *pkg.TokenManager, sessions SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthenticated(c)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthenticated(c)
			return
		}

		claims, err := tokens.ParseAccess(parts[1])
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		stored, err := sessions.Get(c.Request.Context(), claims.UserID)
		if err != nil || stored != parts[1] {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"msg":   "Account has been logged in elsewhere",
				"login": LoginPath,
				"next":  c.Request.URL.Path,
			})
			return
		}

		if err := sessions.Extend(c.Request.Context(), claims.UserID); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			return
		}

		// Role already validated by ParseAccess against the closed set.
		role, _ := model.ParseRole(claims.Role)
		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, role)
		c.Next()
	}
}

// RequireRole gates a route group. notice is the user-visible denial text;
// denials redirect home rather than erroring out.
func RequireRole(notice string, roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get(ContextRoleKey)
		if !ok {
			abortUnauthenticated(c)
			return
		}
		role, ok := v.(model.Role)
		if !ok || !role.Valid() {
			abortUnauthenticated(c)
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"msg":      notice,
			"redirect": "/",
		})
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"msg":   loginMessage,
		"login": LoginPath,
		"next":  c.Request.URL.Path,
	})
}
