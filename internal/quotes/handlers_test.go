package quotes

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupRequest(t *testing.T, h *Handlers, url string) (int, map[string]interface{}) {
	t.Helper()
	app := fiber.New()
	app.Get("/api/v1/quotes/lookup", h.Lookup)

	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestLookupEndpoint_Success(t *testing.T) {
	h := &Handlers{Provider: &countingProvider{
		quote: &Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: decimal.RequireFromString("190.10")},
	}}
	status, body := lookupRequest(t, h, "/api/v1/quotes/lookup?symbol=aapl")
	assert.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "AAPL", data["symbol"])
	assert.Equal(t, "$190.10", data["price_display"])
}

func TestLookupEndpoint_MissingSymbol(t *testing.T) {
	h := &Handlers{Provider: &countingProvider{}}
	status, _ := lookupRequest(t, h, "/api/v1/quotes/lookup")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestLookupEndpoint_UnknownSymbol(t *testing.T) {
	h := &Handlers{Provider: &countingProvider{quote: nil}}
	status, _ := lookupRequest(t, h, "/api/v1/quotes/lookup?symbol=ZZZZ")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestLookupEndpoint_ProviderDown(t *testing.T) {
	h := &Handlers{Provider: &countingProvider{err: assert.AnError}}
	status, _ := lookupRequest(t, h, "/api/v1/quotes/lookup?symbol=AAPL")
	assert.Equal(t, fiber.StatusBadGateway, status)
}
