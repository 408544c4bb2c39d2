package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a symbol's current name and price as reported by the provider.
type Quote struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}

// Provider looks up the current quote for a symbol. An unrecognized symbol
// returns (nil, nil); a non-nil error means the provider itself failed and
// the caller must treat the price as unavailable. Lookups are idempotent and
// side-effect-free.
type Provider interface {
	Lookup(ctx context.Context, symbol string) (*Quote, error)
}

// NewHTTPClient returns the http.Client used against the quote API. The
// timeout bounds every lookup so a slow provider surfaces as unavailable
// instead of hanging the request.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// HTTPProvider is a Provider backed by the external quote HTTP API
// (GET {base}/stock/{symbol}/quote?token={key}).
type HTTPProvider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

type providerQuoteResponse struct {
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"companyName"`
	LatestPrice float64 `json:"latestPrice"`
}

func (p *HTTPProvider) Lookup(ctx context.Context, symbol string) (*Quote, error) {
	if p.Client == nil {
		p.Client = &http.Client{Timeout: 5 * time.Second}
	}
	if p.BaseURL == "" {
		return nil, fmt.Errorf("quotes: QUOTE_API_URL is not set")
	}

	base := strings.TrimRight(p.BaseURL, "/")
	url := fmt.Sprintf("%s/stock/%s/quote?token=%s", base, strings.ToUpper(symbol), p.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quotes request: %w", err)
	}
	defer resp.Body.Close()

	// Provider answers 404 for symbols it does not know.
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("quotes error: status %d body: %s", resp.StatusCode, string(respBody))
	}

	var data providerQuoteResponse
	if err := json.Unmarshal(respBody, &data); err != nil {
		return nil, fmt.Errorf("quotes response decode: %w", err)
	}
	if data.Symbol == "" || data.LatestPrice <= 0 {
		return nil, nil
	}

	return &Quote{
		Symbol: strings.ToUpper(data.Symbol),
		Name:   data.CompanyName,
		Price:  decimal.NewFromFloat(data.LatestPrice).Round(2),
	}, nil
}
