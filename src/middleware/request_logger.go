package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestLogger logs every incoming request with a generated request id.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := uuid.NewString()
		c.Locals("requestId", requestID)
		c.Set("X-Request-ID", requestID)

		log.Printf("➡️ %s %s [%s]", c.Method(), c.OriginalURL(), requestID)
		return c.Next()
	}
}
