package ledger

import (
	"errors"
	"fmt"

	"papertrade-backend/internal/middleware"
	"papertrade-backend/internal/pkg/money"
	"papertrade-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Handlers bundles the ledger endpoints with the service.
type Handlers struct {
	Service *Service
}

type tradeRequest struct {
	Symbol string `json:"symbol"`
	Shares int64  `json:"shares"`
}

// Buy POST /api/v1/ledger/buy
func (h *Handlers) Buy(c *fiber.Ctx) error {
	var body tradeRequest
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, ErrInvalidShareCount.Error(), 400, nil)
	}
	userID := middleware.GetUserID(c)

	res, err := h.Service.Buy(c.Context(), userID, body.Symbol, body.Shares)
	if err != nil {
		return ledgerError(c, err)
	}
	return response.Success(c,
		fmt.Sprintf("You just purchased %d shares of %s.", body.Shares, res.Quote.Symbol),
		tradePayload(res), nil)
}

// Sell POST /api/v1/ledger/sell
func (h *Handlers) Sell(c *fiber.Ctx) error {
	var body tradeRequest
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, ErrInvalidShareCount.Error(), 400, nil)
	}
	userID := middleware.GetUserID(c)

	res, err := h.Service.Sell(c.Context(), userID, body.Symbol, body.Shares)
	if err != nil {
		return ledgerError(c, err)
	}
	return response.Success(c,
		fmt.Sprintf("You just sold %d shares of %s.", body.Shares, res.Quote.Symbol),
		tradePayload(res), nil)
}

type depositRequest struct {
	// decimal accepts both a JSON number and a quoted string.
	Amount decimal.Decimal `json:"amount"`
}

// Deposit POST /api/v1/ledger/deposit
func (h *Handlers) Deposit(c *fiber.Ctx) error {
	var body depositRequest
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, ErrInvalidAmount.Error(), 400, nil)
	}
	userID := middleware.GetUserID(c)

	cash, err := h.Service.Deposit(c.Context(), userID, body.Amount)
	if err != nil {
		return ledgerError(c, err)
	}
	return response.Success(c,
		fmt.Sprintf("You added %s to your balance", money.USD(body.Amount)),
		fiber.Map{
			"cash":         cash,
			"cash_display": money.USD(cash),
		}, nil)
}

// Portfolio GET /api/v1/ledger/portfolio
func (h *Handlers) Portfolio(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	p, err := h.Service.Valuate(c.Context(), userID)
	if err != nil {
		return ledgerError(c, err)
	}

	holdings := make([]fiber.Map, 0, len(p.Holdings))
	for _, hv := range p.Holdings {
		holdings = append(holdings, fiber.Map{
			"symbol":               hv.Symbol,
			"name":                 hv.Name,
			"shares":               hv.Shares,
			"current_price":        hv.CurrentPrice,
			"market_value":         hv.MarketValue,
			"market_value_display": money.USD(hv.MarketValue),
		})
	}
	message := "Portfolio valuated"
	if len(holdings) == 0 {
		message = "You haven't purchased any shares, yet."
	}
	return response.Success(c, message, fiber.Map{
		"holdings":            holdings,
		"cash":                p.Cash,
		"cash_display":        money.USD(p.Cash),
		"total_value":         p.TotalValue,
		"total_value_display": money.USD(p.TotalValue),
	}, nil)
}

// History GET /api/v1/ledger/history
func (h *Handlers) History(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	txs, err := h.Service.History(c.Context(), userID)
	if err != nil {
		return ledgerError(c, err)
	}
	return response.Success(c, "Transaction history", fiber.Map{"transactions": txs}, nil)
}

func tradePayload(res *TradeResult) fiber.Map {
	payload := fiber.Map{
		"cash":         res.Cash,
		"cash_display": money.USD(res.Cash),
		"holding":      res.Holding,
		"removed":      res.Holding == nil,
	}
	return payload
}

// ledgerError maps service sentinels onto HTTP statuses.
func ledgerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrInvalidSymbol),
		errors.Is(err, ErrInvalidShareCount),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInsufficientFunds),
		errors.Is(err, ErrInsufficientShares):
		return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
	case errors.Is(err, ErrQuoteUnavailable):
		return response.Error(c, err.Error(), fiber.StatusBadGateway, nil)
	case errors.Is(err, ErrUserNotFound):
		return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
	default:
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
}
