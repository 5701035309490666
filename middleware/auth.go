package middleware

import (
	"net/http"
	"strings"
	"time"

	userRepo "courtside/database/repository/user"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthMiddleware validates the bearer token, checks its hash against the
// auth cache (falling back to the user record on a miss), and stores the
// caller's identity on the request context.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()
		ctx := c.Request.Context()

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			cachedHash, cerr := authCache.Get(ctx, cacheKey).Result()
			if cerr == nil {
				if cachedHash != computedHash {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
					return
				}
				_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
				c.Set("userID", userID)
				c.Set("role", role)
				c.Next()
				return
			}
			if cerr != redis.Nil {
				logger.Warn("auth cache lookup failed, falling back to DB", zap.Error(cerr))
			}
		}

		// Cache miss: check the hash stored on the user record.
		usr, err := users.GetByID(ctx, userID)
		if err != nil || usr == nil || usr.TokenHash == "" || usr.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}
		if authCache != nil {
			_ = authCache.Set(ctx, cacheKey, computedHash, time.Hour).Err()
		}

		c.Set("userID", userID)
		c.Set("role", usr.Role)
		c.Next()
	}
}
