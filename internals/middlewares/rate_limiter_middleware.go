package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "wellness_backend/internals/helpers"
)

func limited(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// GlobalRateLimiter covers every /api endpoint.
func GlobalRateLimiter() fiber.Handler {
	return limited(300, time.Minute, "too many requests, try again later")
}

// ReportRateLimiter is stricter; report builds scan whole date ranges.
func ReportRateLimiter() fiber.Handler {
	return limited(30, time.Minute, "too many report requests, try again in a minute")
}
