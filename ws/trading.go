package ws

import (
	"context"

	"github.com/tradewire/binance-spot/types/requests"
	"github.com/tradewire/binance-spot/types/responses"
)

// PlaceOrder submits an order.
func (c *Client) PlaceOrder(ctx context.Context, spec requests.NewOrder) (*responses.Order, error) {
	out := &responses.Order{}
	if err := c.request(ctx, "order.place", spec, out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// TestOrder validates an order against the exchange's rules without
// placing it.
func (c *Client) TestOrder(ctx context.Context, spec requests.NewOrder) error {
	return c.request(ctx, "order.test", spec, nil, true)
}

// CancelOrder cancels a single order.
func (c *Client) CancelOrder(ctx context.Context, spec requests.CancelOrder) (*responses.CancelledOrder, error) {
	out := &responses.CancelledOrder{}
	if err := c.request(ctx, "order.cancel", spec, out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// QueryOrder fetches an order's current state.
func (c *Client) QueryOrder(ctx context.Context, spec requests.QueryOrder) (*responses.Order, error) {
	out := &responses.Order{}
	if err := c.request(ctx, "order.status", spec, out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// CancelAllOrders cancels every open order on a symbol.
func (c *Client) CancelAllOrders(ctx context.Context, spec requests.CancelAllOrders) ([]responses.CancelledOrder, error) {
	var out []responses.CancelledOrder
	if err := c.request(ctx, "openOrders.cancelAll", spec, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// OpenOrders lists open orders.
func (c *Client) OpenOrders(ctx context.Context, spec requests.OpenOrders) ([]responses.Order, error) {
	var out []responses.Order
	if err := c.request(ctx, "openOrders.status", spec, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}
