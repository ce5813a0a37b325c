package ws

import (
	"context"

	"github.com/tradewire/binance-spot/types/requests"
	"github.com/tradewire/binance-spot/types/responses"
)

// OrderBook returns a depth snapshot.
func (c *Client) OrderBook(ctx context.Context, spec requests.OrderBook) (*responses.OrderBook, error) {
	out := &responses.OrderBook{}
	if err := c.request(ctx, "depth", spec, out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// RecentTrades returns the latest public trades.
func (c *Client) RecentTrades(ctx context.Context, spec requests.RecentTrades) ([]responses.Trade, error) {
	var out []responses.Trade
	if err := c.request(ctx, "trades.recent", spec, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// Klines returns candles for a symbol and interval.
func (c *Client) Klines(ctx context.Context, spec requests.Klines) ([]responses.Kline, error) {
	var out []responses.Kline
	if err := c.request(ctx, "klines", spec, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// AveragePrice returns the current weighted average price.
func (c *Client) AveragePrice(ctx context.Context, spec requests.AveragePrice) (*responses.AveragePrice, error) {
	out := &responses.AveragePrice{}
	if err := c.request(ctx, "avgPrice", spec, out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// TickerPrice returns latest prices: one entry for a symbol query,
// every symbol otherwise.
func (c *Client) TickerPrice(ctx context.Context, spec requests.TickerPrice) ([]responses.TickerPrice, error) {
	var out []responses.TickerPrice
	if err := c.request(ctx, "ticker.price", spec, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// BookTicker returns best bid/ask entries, one per queried symbol.
func (c *Client) BookTicker(ctx context.Context, spec requests.BookTicker) ([]responses.BookTicker, error) {
	var out []responses.BookTicker
	if err := c.request(ctx, "ticker.book", spec, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}
