package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	traceHeader = "X-Trace-Id"
	traceLocal  = "trace_id"
)

// Tracing tags every request with a trace ID so a trade can be followed
// from the route log into the provider calls. The caller's X-Trace-Id is
// reused when present; otherwise a fresh one is minted. The ID is echoed
// back on the response.
func Tracing() fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := c.Get(traceHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}
		c.Locals(traceLocal, traceID)
		c.Set(traceHeader, traceID)
		return c.Next()
	}
}

// GetTraceID returns the request's trace ID, empty when Tracing is not mounted.
func GetTraceID(c *fiber.Ctx) string {
	id, _ := c.Locals(traceLocal).(string)
	return id
}
