package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tradewire/binance-spot/apierr"
	"github.com/tradewire/binance-spot/auth"
	"github.com/tradewire/binance-spot/config"
	"github.com/tradewire/binance-spot/types"
	"github.com/tradewire/binance-spot/types/requests"
)

func newTestClient(t *testing.T, signer auth.Signer, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.Default()
	cfg.Rest.BaseURL = srv.URL
	return New(cfg, signer)
}

func TestPing(t *testing.T) {
	var gotPath string
	c := newTestClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	})
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if gotPath != "/api/v3/ping" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestServerTime(t *testing.T) {
	c := newTestClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"serverTime":1700000000000}`))
	})
	st, err := c.ServerTime(context.Background())
	if err != nil {
		t.Fatalf("ServerTime: %v", err)
	}
	if st.ServerTime != 1700000000000 {
		t.Errorf("serverTime = %d", st.ServerTime)
	}
}

func TestQueryParameters(t *testing.T) {
	var gotQuery map[string][]string
	c := newTestClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"lastUpdateId":1,"bids":[],"asks":[]}`))
	})
	_, err := c.OrderBook(context.Background(), requests.OrderBook{Symbol: "BTCUSDT", Limit: 50})
	if err != nil {
		t.Fatalf("OrderBook: %v", err)
	}
	if got := gotQuery["symbol"]; len(got) != 1 || got[0] != "BTCUSDT" {
		t.Errorf("symbol query = %v", got)
	}
	if got := gotQuery["limit"]; len(got) != 1 || got[0] != "50" {
		t.Errorf("limit query = %v", got)
	}
}

func TestAPIErrorMapping(t *testing.T) {
	c := newTestClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":-1121,"msg":"Invalid symbol."}`))
	})
	_, err := c.OrderBook(context.Background(), requests.OrderBook{Symbol: "NOPE"})
	var apiErr *apierr.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want APIError", err)
	}
	if apiErr.Code != -1121 {
		t.Errorf("code = %d", apiErr.Code)
	}
}

func TestHTTPErrorWithoutBody(t *testing.T) {
	c := newTestClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>bad gateway</html>`))
	})
	err := c.Ping(context.Background())
	if err == nil {
		t.Fatal("Ping succeeded on a 502")
	}
	var apiErr *apierr.APIError
	if errors.As(err, &apiErr) {
		t.Errorf("non-JSON body mapped to APIError: %v", err)
	}
}

func TestSignedRequest(t *testing.T) {
	signer := auth.NewHMACSigner("test-key", "test-secret")
	var gotHeader string
	var gotQuery map[string][]string
	c := newTestClient(t, signer, func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-MBX-APIKEY")
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"symbol":"BTCUSDT","orderId":42,"status":"NEW"}`))
	})

	qty := decimal.RequireFromString("0.001")
	price := decimal.RequireFromString("50000")
	order, err := c.PlaceOrder(context.Background(), requests.NewOrder{
		Symbol:      "BTCUSDT",
		Side:        types.Buy,
		Type:        types.Limit,
		TimeInForce: types.GTC,
		Quantity:    &qty,
		Price:       &price,
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if order.OrderID != 42 {
		t.Errorf("orderId = %d", order.OrderID)
	}
	if gotHeader != "test-key" {
		t.Errorf("X-MBX-APIKEY = %q", gotHeader)
	}
	// The key travels in the header, not the query.
	if _, ok := gotQuery["apiKey"]; ok {
		t.Error("apiKey leaked into the query string")
	}
	for _, key := range []string{"signature", "timestamp", "recvWindow", "symbol", "side", "type"} {
		if _, ok := gotQuery[key]; !ok {
			t.Errorf("query missing %q", key)
		}
	}
}

func TestSignedRequestWithoutSigner(t *testing.T) {
	c := newTestClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request reached the server without credentials")
	})
	_, err := c.AccountInfo(context.Background())
	if !errors.Is(err, apierr.ErrNoAuth) {
		t.Errorf("error = %v, want ErrNoAuth", err)
	}
}

func TestValidationShortCircuits(t *testing.T) {
	c := newTestClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid spec reached the server")
	})
	_, err := c.OrderBook(context.Background(), requests.OrderBook{})
	var invalid *apierr.InvalidParameter
	if !errors.As(err, &invalid) {
		t.Errorf("error = %v, want InvalidParameter", err)
	}
}

func TestDecodesDecimalFields(t *testing.T) {
	c := newTestClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"mins":5,"price":"50123.45678900","closeTime":1700000000000}`))
	})
	avg, err := c.AveragePrice(context.Background(), requests.AveragePrice{Symbol: "BTCUSDT"})
	if err != nil {
		t.Fatalf("AveragePrice: %v", err)
	}
	if !avg.Price.Equal(decimal.RequireFromString("50123.456789")) {
		t.Errorf("price = %s", avg.Price)
	}
	if avg.Mins != 5 {
		t.Errorf("mins = %d", avg.Mins)
	}
}
