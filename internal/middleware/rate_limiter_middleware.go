package middleware

import (
	"time"

	"github.com/fadilmartias/careerboost/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func RateLimiter(max int, expiration time.Duration) fiber.Handler {
	return newLimiter(max, expiration, func(c *fiber.Ctx) string {
		return c.IP()
	})
}

// UserRateLimiter keys the budget on the session user and falls back to
// the client IP when no user is attached. Mount it after RequireSession.
func UserRateLimiter(max int, expiration time.Duration) fiber.Handler {
	return newLimiter(max, expiration, func(c *fiber.Ctx) string {
		if id := session.UserID(c); id != "" {
			return "user:" + id
		}
		return "ip:" + c.IP()
	})
}

func newLimiter(max int, expiration time.Duration, key func(*fiber.Ctx) string) fiber.Handler {
	if max == 0 {
		max = 50
	}
	if expiration == 0 {
		expiration = 1 * time.Minute
	}
	return limiter.New(limiter.Config{
		Max:          max,
		Expiration:   expiration,
		KeyGenerator: key,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"code":    fiber.StatusTooManyRequests,
				"message": "Too many requests, please slow down",
			})
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
