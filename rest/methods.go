package rest

import (
	"context"
	"net/http"

	"github.com/tradewire/binance-spot/types/requests"
	"github.com/tradewire/binance-spot/types/responses"
)

// Ping tests REST connectivity.
func (c *Client) Ping(ctx context.Context) error {
	return c.request(ctx, http.MethodGet, "/api/v3/ping", nil, nil, false)
}

// ServerTime returns the exchange's clock reading.
func (c *Client) ServerTime(ctx context.Context) (*responses.ServerTime, error) {
	out := &responses.ServerTime{}
	if err := c.request(ctx, http.MethodGet, "/api/v3/time", nil, out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// ExchangeInfo returns the exchange's static configuration.
func (c *Client) ExchangeInfo(ctx context.Context, spec requests.ExchangeInfo) (*responses.ExchangeInfo, error) {
	out := &responses.ExchangeInfo{}
	if err := c.request(ctx, http.MethodGet, "/api/v3/exchangeInfo", spec, out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// OrderBook returns a depth snapshot.
func (c *Client) OrderBook(ctx context.Context, spec requests.OrderBook) (*responses.OrderBook, error) {
	out := &responses.OrderBook{}
	if err := c.request(ctx, http.MethodGet, "/api/v3/depth", spec, out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// RecentTrades returns the latest public trades.
func (c *Client) RecentTrades(ctx context.Context, spec requests.RecentTrades) ([]responses.Trade, error) {
	var out []responses.Trade
	if err := c.request(ctx, http.MethodGet, "/api/v3/trades", spec, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// Klines returns candles for a symbol and interval.
func (c *Client) Klines(ctx context.Context, spec requests.Klines) ([]responses.Kline, error) {
	var out []responses.Kline
	if err := c.request(ctx, http.MethodGet, "/api/v3/klines", spec, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// AveragePrice returns the current weighted average price.
func (c *Client) AveragePrice(ctx context.Context, spec requests.AveragePrice) (*responses.AveragePrice, error) {
	out := &responses.AveragePrice{}
	if err := c.request(ctx, http.MethodGet, "/api/v3/avgPrice", spec, out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// TickerPrice returns the latest price for one symbol.
func (c *Client) TickerPrice(ctx context.Context, spec requests.TickerPrice) (*responses.TickerPrice, error) {
	out := &responses.TickerPrice{}
	if err := c.request(ctx, http.MethodGet, "/api/v3/ticker/price", spec, out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// BookTicker returns the best bid/ask for one symbol.
func (c *Client) BookTicker(ctx context.Context, spec requests.BookTicker) (*responses.BookTicker, error) {
	out := &responses.BookTicker{}
	if err := c.request(ctx, http.MethodGet, "/api/v3/ticker/bookTicker", spec, out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// PlaceOrder submits an order.
func (c *Client) PlaceOrder(ctx context.Context, spec requests.NewOrder) (*responses.Order, error) {
	out := &responses.Order{}
	if err := c.request(ctx, http.MethodPost, "/api/v3/order", spec, out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// TestOrder validates an order without placing it.
func (c *Client) TestOrder(ctx context.Context, spec requests.NewOrder) error {
	return c.request(ctx, http.MethodPost, "/api/v3/order/test", spec, nil, true)
}

// CancelOrder cancels a single order.
func (c *Client) CancelOrder(ctx context.Context, spec requests.CancelOrder) (*responses.CancelledOrder, error) {
	out := &responses.CancelledOrder{}
	if err := c.request(ctx, http.MethodDelete, "/api/v3/order", spec, out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// QueryOrder fetches an order's current state.
func (c *Client) QueryOrder(ctx context.Context, spec requests.QueryOrder) (*responses.Order, error) {
	out := &responses.Order{}
	if err := c.request(ctx, http.MethodGet, "/api/v3/order", spec, out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// OpenOrders lists open orders.
func (c *Client) OpenOrders(ctx context.Context, spec requests.OpenOrders) ([]responses.Order, error) {
	var out []responses.Order
	if err := c.request(ctx, http.MethodGet, "/api/v3/openOrders", spec, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// AccountInfo returns the account snapshot.
func (c *Client) AccountInfo(ctx context.Context) (*responses.AccountInfo, error) {
	out := &responses.AccountInfo{}
	if err := c.request(ctx, http.MethodGet, "/api/v3/account", nil, out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// MyTrades lists the account's executions for a symbol.
func (c *Client) MyTrades(ctx context.Context, spec requests.MyTrades) ([]responses.MyTrade, error) {
	var out []responses.MyTrade
	if err := c.request(ctx, http.MethodGet, "/api/v3/myTrades", spec, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}
