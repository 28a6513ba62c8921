package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	userRepo "weddingsparks/database/repository/user"
	"weddingsparks/models"
	"weddingsparks/utils"
)

const authCacheTTL = 5 * time.Minute

// RequireAuth validates the bearer token and confirms the account still
// exists, caching positive lookups in Redis. The cache client may be nil;
// the check then always hits the repository.
func RequireAuth(users userRepo.UserRepository, cache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		ctx := c.Request.Context()
		cacheKey := "auth:user:" + claims.UserID

		known := false
		if cache != nil {
			if _, err := cache.Get(ctx, cacheKey).Result(); err == nil {
				known = true
			}
		}
		if !known {
			u, err := users.GetByID(ctx, claims.UserID)
			if err != nil {
				utils.GetLogger().Error("Auth user lookup failed", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
				return
			}
			if u == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account no longer exists"})
				return
			}
			if cache != nil {
				if err := cache.Set(ctx, cacheKey, "1", authCacheTTL).Err(); err != nil {
					utils.GetLogger().Warn("Auth cache write failed", zap.Error(err))
				}
			}
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("userRole", claims.Role)
		c.Next()
	}
}

// RequireRole gates a route on the authenticated account's role. Must run
// after RequireAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("userRole") != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

// RequireVendor gates a route to vendor accounts.
func RequireVendor() gin.HandlerFunc {
	return RequireRole(models.RoleVendor)
}

// RequireAdmin gates a route to admin accounts.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}
