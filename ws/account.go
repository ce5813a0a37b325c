package ws

import (
	"context"

	"github.com/tradewire/binance-spot/types/requests"
	"github.com/tradewire/binance-spot/types/responses"
)

// AccountInfo returns the account snapshot.
func (c *Client) AccountInfo(ctx context.Context) (*responses.AccountInfo, error) {
	out := &responses.AccountInfo{}
	if err := c.request(ctx, "account.status", nil, out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// MyTrades lists the account's executions for a symbol.
func (c *Client) MyTrades(ctx context.Context, spec requests.MyTrades) ([]responses.MyTrade, error) {
	var out []responses.MyTrade
	if err := c.request(ctx, "myTrades", spec, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}
