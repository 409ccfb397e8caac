package middleware

import (
	"context"
	"net/http"
	"strings"

	"tutoria/models"
	"tutoria/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Context keys set by the auth middleware.
const (
	CtxAccountID = "accountID"
	CtxRole      = "role"
)

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// bearerToken pulls the token out of the Authorization header.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// authenticate validates the bearer token against the signing key and the
// Redis auth cache, and returns the subject ID and role.
func authenticate(c *gin.Context) (string, string, bool) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		abortUnauthorized(c, "missing or malformed Authorization header")
		return "", "", false
	}

	subject, role, err := utils.ExtractClaims(tokenString)
	if err != nil || subject == "" {
		abortUnauthorized(c, "invalid or expired token")
		return "", "", false
	}

	// The cached hash is the source of truth for revocation. A missing or
	// mismatched entry means the token was revoked or superseded.
	cacheKey := utils.AuthCachePrefix + subject
	cachedHash, err := utils.GetAuthCacheClient().Get(context.Background(), cacheKey).Result()
	if err == redis.Nil {
		abortUnauthorized(c, "session expired, please sign in again")
		return "", "", false
	}
	if err != nil {
		zap.L().Error("auth cache lookup failed", zap.Error(err))
		abortUnauthorized(c, "authentication unavailable")
		return "", "", false
	}
	if cachedHash != utils.HashToken(tokenString) {
		abortUnauthorized(c, "session expired, please sign in again")
		return "", "", false
	}

	c.Set(CtxAccountID, subject)
	c.Set(CtxRole, role)
	return subject, role, true
}

// AuthMiddleware admits any signed-in account, parent or staff.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, _, ok := authenticate(c); !ok {
			return
		}
		c.Next()
	}
}

// ParentAuthMiddleware admits only parent tokens.
func ParentAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := authenticate(c)
		if !ok {
			return
		}
		if role != utils.RoleParent {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "parent account required"})
			return
		}
		c.Next()
	}
}

// StaffAuthMiddleware admits staff tokens whose role is in allowedRoles.
// With no arguments any staff role is admitted.
func StaffAuthMiddleware(allowedRoles ...string) gin.HandlerFunc {
	if len(allowedRoles) == 0 {
		allowedRoles = []string{models.RoleAdmin, models.RoleStaff, models.RoleTutor}
	}
	return func(c *gin.Context) {
		_, role, ok := authenticate(c)
		if !ok {
			return
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
	}
}
