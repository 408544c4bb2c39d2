package quotes

import (
	"strings"

	"papertrade-backend/internal/pkg/money"
	"papertrade-backend/internal/pkg/response"
	"papertrade-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles the quote lookup endpoint with its provider.
type Handlers struct {
	Provider Provider
}

// Lookup GET /api/v1/quotes/lookup?symbol=AAPL
func (h *Handlers) Lookup(c *fiber.Ctx) error {
	symbol := strings.ToUpper(strings.TrimSpace(c.Query("symbol")))
	if symbol == "" {
		return response.Error(c, "Must enter a symbol", 400, nil)
	}
	if !validation.IsValidSymbol(symbol) {
		return response.Error(c, "Invalid symbol", 400, nil)
	}

	q, err := h.Provider.Lookup(c.Context(), symbol)
	if err != nil {
		return response.Error(c, "Quote unavailable", fiber.StatusBadGateway, nil)
	}
	if q == nil {
		return response.Error(c, "Invalid symbol", 400, nil)
	}

	return response.Success(c, "Quote found", fiber.Map{
		"symbol":        q.Symbol,
		"name":          q.Name,
		"price":         q.Price,
		"price_display": money.USD(q.Price),
	}, nil)
}
