package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// RouteLogger writes one zerolog line per completed request: trace ID,
// method, path, status and elapsed time. The session username is attached
// when a user is logged in so trades in the log can be tied to an account.
func RouteLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		evt := log.Info()
		if status >= fiber.StatusInternalServerError {
			evt = log.Error()
		}
		evt = evt.
			Str("trace_id", GetTraceID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("elapsed", time.Since(start))
		if u, ok := GetUser(c).(map[string]interface{}); ok {
			if username, _ := u["username"].(string); username != "" {
				evt = evt.Str("user", username)
			}
		}
		evt.Msg("request")
		return err
	}
}
