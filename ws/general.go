package ws

import (
	"context"

	"github.com/tradewire/binance-spot/types/requests"
	"github.com/tradewire/binance-spot/types/responses"
)

// Ping tests connectivity over the persistent connection.
func (c *Client) Ping(ctx context.Context) error {
	return c.request(ctx, "ping", nil, nil, false)
}

// ServerTime returns the exchange's clock reading.
func (c *Client) ServerTime(ctx context.Context) (*responses.ServerTime, error) {
	out := &responses.ServerTime{}
	if err := c.request(ctx, "time", nil, out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// ExchangeInfo returns the exchange's static configuration.
func (c *Client) ExchangeInfo(ctx context.Context, spec requests.ExchangeInfo) (*responses.ExchangeInfo, error) {
	out := &responses.ExchangeInfo{}
	if err := c.request(ctx, "exchangeInfo", spec, out, false); err != nil {
		return nil, err
	}
	return out, nil
}
