package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/jinzhu/now"
)

// RateLimiter caps requests per client IP inside a fixed window.
func RateLimiter(max int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		LimitReached: func(c *fiber.Ctx) error {
			return NewRateLimitError(
				"Rate limit exceeded. Please try again later.",
				int(window.Seconds()),
			)
		},
	})
}

// DailyRateLimiter caps requests per client IP per day. Retry-After
// points at the next local midnight.
func DailyRateLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 24 * time.Hour,
		LimitReached: func(c *fiber.Ctx) error {
			retryAfter := int(time.Until(now.EndOfDay()).Seconds()) + 1
			return NewRateLimitError(
				"Daily request limit reached. Please try again tomorrow.",
				retryAfter,
			)
		},
	})
}
