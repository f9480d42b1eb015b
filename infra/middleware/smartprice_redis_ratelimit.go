package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"smartprice_server/pkg/ratelimit"
)

// RedisRateLimiter enforces a shared rate limit across instances using a
// Redis sliding window. Use this instead of RateLimiter when the service
// runs more than one replica.
func RedisRateLimiter(redisClient *redis.Client, limit int, window time.Duration) fiber.Handler {
	limiter := ratelimit.NewSlidingWindowLimiter(redisClient, limit, window, limit/10)

	return func(c *fiber.Ctx) error {
		allowed, wait := limiter.Allow(c.Context(), c.IP())
		if !allowed {
			c.Set("Retry-After", fmt.Sprintf("%d", int(wait.Seconds())+1))
			return c.Status(429).JSON(fiber.Map{
				"error":       "rate limit exceeded",
				"code":        "RATE_LIMITED",
				"retry_after": int(wait.Seconds()) + 1,
			})
		}
		return c.Next()
	}
}
