package quotes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPProvider_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stock/NFLX/quote", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"symbol":"NFLX","companyName":"Netflix, Inc.","latestPrice":123.45}`))
	}))
	defer srv.Close()

	p := &HTTPProvider{BaseURL: srv.URL, APIKey: "test-key", Client: srv.Client()}
	q, err := p.Lookup(context.Background(), "nflx")
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, "NFLX", q.Symbol)
	assert.Equal(t, "Netflix, Inc.", q.Name)
	assert.Equal(t, "123.45", q.Price.StringFixed(2))
}

func TestHTTPProvider_UnknownSymbolIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p := &HTTPProvider{BaseURL: srv.URL, APIKey: "k", Client: srv.Client()}
	q, err := p.Lookup(context.Background(), "ZZZZ")
	assert.NoError(t, err)
	assert.Nil(t, q)
}

func TestHTTPProvider_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := &HTTPProvider{BaseURL: srv.URL, APIKey: "k", Client: srv.Client()}
	q, err := p.Lookup(context.Background(), "AAPL")
	assert.Nil(t, q)
	assert.Error(t, err)
}

func TestHTTPProvider_ZeroPriceTreatedAsUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"symbol":"AAPL","companyName":"Apple Inc.","latestPrice":0}`))
	}))
	defer srv.Close()

	p := &HTTPProvider{BaseURL: srv.URL, APIKey: "k", Client: srv.Client()}
	q, err := p.Lookup(context.Background(), "AAPL")
	assert.NoError(t, err)
	assert.Nil(t, q)
}

func TestHTTPProvider_MissingBaseURL(t *testing.T) {
	p := &HTTPProvider{}
	q, err := p.Lookup(context.Background(), "AAPL")
	assert.Nil(t, q)
	assert.Error(t, err)
}
