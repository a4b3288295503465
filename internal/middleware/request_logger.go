package middleware

import (
	"time"

	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs every request once it has been answered.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		handleChainError(c, c.Next())

		status := c.Response().StatusCode()
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("request_id", RequestIDFromCtx(c)),
		}

		if status >= fiber.StatusInternalServerError {
			logger.Get().Error("HTTP request", fields...)
		} else {
			logger.Get().Info("HTTP request", fields...)
		}
		return nil
	}
}
