package middleware

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"statusfeed/internal/config"
	"statusfeed/pkg/logger"
)

// RateLimiterMiddleware 限流器
type RateLimiterMiddleware struct {
	RedisClient *redis.Client
	KeyPrefix   string
	Logger      logger.Logger
}

func NewRateLimiterMiddleware(
	redisClient *redis.Client,
	config *config.Config,
	logger logger.Logger,
) *RateLimiterMiddleware {
	keyPrefix := "cache:" + config.App.Name + ":mid:rl"
	return &RateLimiterMiddleware{
		RedisClient: redisClient,
		KeyPrefix:   keyPrefix,
		Logger:      logger,
	}
}

// Handle limits each client IP to `limit` requests per sliding window.
// The whole check runs in one Lua script so it stays atomic.
func (rl *RateLimiterMiddleware) Handle(limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", rl.KeyPrefix, c.ClientIP())
		now := time.Now().UnixMilli()
		windowStart := now - window.Milliseconds()
		ttlSeconds := int64(math.Ceil(window.Seconds()))

		script := `
        local key = KEYS[1]
        local now = tonumber(ARGV[1])
        local window_start = tonumber(ARGV[2])
        local limit = tonumber(ARGV[3])
        local window_ttl = tonumber(ARGV[4])
        local member = ARGV[5]

        redis.call('ZREMRANGEBYSCORE', key, 0, window_start)

        local count = redis.call('ZCARD', key)

        if count >= limit then
            return 0
        end

        redis.call('ZADD', key, now, member)
        redis.call('EXPIRE', key, window_ttl)
        return 1
        `

		// 生成唯一成员ID (时间戳+随机数)
		member := fmt.Sprintf("%d:%d", now, rand.Intn(10000))

		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		res, err := rl.RedisClient.Eval(ctx, script, []string{key},
			now, windowStart, limit, ttlSeconds, member).Result()

		if err != nil {
			rl.Logger.Error("Redis rate limiter error",
				zap.String("key", key),
				zap.Int64("limit", limit),
				zap.Duration("window", window),
				zap.Error(err))

			// fail-open: a broken limiter must not take the API down
			c.Next()
			return
		}

		if result, ok := res.(int64); !ok || result == 0 {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			return
		}

		c.Next()
	}
}
