package middleware

import (
	"trivia-api/internal/util"

	"github.com/gofiber/fiber/v2"
)

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
)

// RequestID reuses the client's X-Request-ID or mints a ULID, and echoes it on the response.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = util.NewULID()
		}
		c.Locals(requestIDKey, id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}

// RequestIDFromCtx returns the id assigned by RequestID, or "" outside of it.
func RequestIDFromCtx(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDKey).(string)
	return id
}
