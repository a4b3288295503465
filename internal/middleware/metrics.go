package middleware

import (
	"time"

	"trivia-api/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records request count and latency per matched route.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		handleChainError(c, c.Next())

		m.ObserveRequest(c.Method(), c.Route().Path, c.Response().StatusCode(), time.Since(start))
		return nil
	}
}
