package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracing_MintsAndEchoesTraceID(t *testing.T) {
	app := fiber.New()
	app.Use(Tracing())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(GetTraceID(c))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	header := resp.Header.Get("X-Trace-Id")
	assert.NotEmpty(t, header)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, header, string(body))
}

func TestTracing_ReusesCallerTraceID(t *testing.T) {
	app := fiber.New()
	app.Use(Tracing())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Trace-Id", "trace-from-caller")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "trace-from-caller", resp.Header.Get("X-Trace-Id"))
}
