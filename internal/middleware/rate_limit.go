package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/kingrain94/pitchcraft-api/internal/config"
	"github.com/kingrain94/pitchcraft-api/internal/utils"
	"github.com/kingrain94/pitchcraft-api/pkg/logger"
)

const rateLimitWindow = time.Minute

type RateLimitMiddleware struct {
	redis  *redis.Client
	config *config.Config
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		config: config,
		logger: logger,
	}
}

// OwnerRateLimit limits requests per authenticated owner. It must run after
// JWTAuth.
func (m *RateLimitMiddleware) OwnerRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := c.GetString(string(utils.OwnerIDKey))
		if ownerID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Owner required for rate limiting"})
			c.Abort()
			return
		}

		key := fmt.Sprintf("rate_limit:owner:%s", ownerID)
		if !m.allow(c, key, m.ownerRateLimit(), "Rate limit exceeded") {
			return
		}
		c.Next()
	}
}

// GlobalRateLimit limits requests per client IP.
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:global:%s", c.ClientIP())
		if !m.allow(c, key, limit, "Global rate limit exceeded") {
			return
		}
		c.Next()
	}
}

// allow counts the request in a fixed one minute window. Redis failures let
// the request through.
func (m *RateLimitMiddleware) allow(c *gin.Context, key string, limit int, message string) bool {
	ctx := c.Request.Context()

	count, err := m.redis.Incr(ctx, key).Result()
	if err != nil {
		m.logger.Error("Redis error in rate limiting", err)
		return true
	}
	if count == 1 {
		if err := m.redis.Expire(ctx, key, rateLimitWindow).Err(); err != nil {
			m.logger.Error("Redis expire error in rate limiting", err)
		}
	}

	current := int(count)
	reset := time.Now().Add(rateLimitWindow).Unix()
	if ttl, err := m.redis.TTL(ctx, key).Result(); err == nil && ttl > 0 {
		reset = time.Now().Add(ttl).Unix()
	}

	remaining := limit - current
	if remaining < 0 {
		remaining = 0
	}
	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(reset, 10))

	if current > limit {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": message,
			"limit": limit,
			"reset": reset,
		})
		c.Abort()
		return false
	}
	return true
}

func (m *RateLimitMiddleware) ownerRateLimit() int {
	if m.config.DefaultRateLimit > 0 {
		return m.config.DefaultRateLimit
	}
	return 60
}
