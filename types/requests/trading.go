package requests

import (
	"github.com/shopspring/decimal"

	"github.com/tradewire/binance-spot/apierr"
	"github.com/tradewire/binance-spot/types"
)

// NewOrder places an order. Which optional fields are required depends
// on the order type; Validate enforces the combinations the exchange
// documents so rejections surface before anything is signed or sent.
type NewOrder struct {
	Symbol                  string                        `json:"symbol"`
	Side                    types.OrderSide               `json:"side"`
	Type                    types.OrderType               `json:"type"`
	TimeInForce             types.TimeInForce             `json:"timeInForce,omitempty"`
	Quantity                *decimal.Decimal              `json:"quantity,omitempty"`
	QuoteOrderQty           *decimal.Decimal              `json:"quoteOrderQty,omitempty"`
	Price                   *decimal.Decimal              `json:"price,omitempty"`
	NewClientOrderID        string                        `json:"newClientOrderId,omitempty"`
	StopPrice               *decimal.Decimal              `json:"stopPrice,omitempty"`
	TrailingDelta           int64                         `json:"trailingDelta,omitempty"`
	IcebergQty              *decimal.Decimal              `json:"icebergQty,omitempty"`
	NewOrderRespType        types.OrderResponseType       `json:"newOrderRespType,omitempty"`
	SelfTradePreventionMode types.SelfTradePreventionMode `json:"selfTradePreventionMode,omitempty"`
}

// Validate enforces the per-type required field combinations.
func (s NewOrder) Validate() error {
	if s.Symbol == "" {
		return apierr.EmptyParameter("symbol")
	}
	if s.Side != types.Buy && s.Side != types.Sell {
		return &apierr.InvalidParameter{Name: "side", Reason: "must be BUY or SELL"}
	}
	switch s.Type {
	case types.Limit:
		if s.TimeInForce == "" {
			return apierr.EmptyParameter("timeInForce")
		}
		if err := requirePositive("price", s.Price); err != nil {
			return err
		}
		if err := requirePositive("quantity", s.Quantity); err != nil {
			return err
		}
	case types.Market:
		if s.Quantity == nil && s.QuoteOrderQty == nil {
			return &apierr.InvalidParameter{Name: "quantity", Reason: "market orders need quantity or quoteOrderQty"}
		}
		if s.Quantity != nil && s.QuoteOrderQty != nil {
			return &apierr.InvalidParameter{Name: "quoteOrderQty", Reason: "quantity and quoteOrderQty are mutually exclusive"}
		}
	case types.StopLoss, types.TakeProfit:
		if err := requirePositive("quantity", s.Quantity); err != nil {
			return err
		}
		if s.StopPrice == nil && s.TrailingDelta == 0 {
			return &apierr.InvalidParameter{Name: "stopPrice", Reason: "stop orders need stopPrice or trailingDelta"}
		}
	case types.StopLossLimit, types.TakeProfitLimit:
		if s.TimeInForce == "" {
			return apierr.EmptyParameter("timeInForce")
		}
		if err := requirePositive("price", s.Price); err != nil {
			return err
		}
		if err := requirePositive("quantity", s.Quantity); err != nil {
			return err
		}
		if s.StopPrice == nil && s.TrailingDelta == 0 {
			return &apierr.InvalidParameter{Name: "stopPrice", Reason: "stop orders need stopPrice or trailingDelta"}
		}
	case types.LimitMaker:
		if err := requirePositive("price", s.Price); err != nil {
			return err
		}
		if err := requirePositive("quantity", s.Quantity); err != nil {
			return err
		}
	default:
		return &apierr.InvalidParameter{Name: "type", Reason: "unknown order type"}
	}
	if s.IcebergQty != nil && s.TimeInForce != types.GTC {
		return &apierr.InvalidParameter{Name: "icebergQty", Reason: "iceberg orders must be GTC"}
	}
	return nil
}

func requirePositive(name string, d *decimal.Decimal) error {
	if d == nil {
		return apierr.EmptyParameter(name)
	}
	if !d.IsPositive() {
		return &apierr.InvalidParameter{Name: name, Reason: "must be positive"}
	}
	return nil
}

// CancelOrder cancels a single order by exchange id or client id.
type CancelOrder struct {
	Symbol             string                   `json:"symbol"`
	OrderID            int64                    `json:"orderId,omitempty"`
	OrigClientOrderID  string                   `json:"origClientOrderId,omitempty"`
	NewClientOrderID   string                   `json:"newClientOrderId,omitempty"`
	CancelRestrictions types.CancelRestrictions `json:"cancelRestrictions,omitempty"`
}

func (s CancelOrder) Validate() error {
	if s.Symbol == "" {
		return apierr.EmptyParameter("symbol")
	}
	if s.OrderID == 0 && s.OrigClientOrderID == "" {
		return &apierr.InvalidParameter{Name: "orderId", Reason: "orderId or origClientOrderId is required"}
	}
	return nil
}

// QueryOrder fetches a single order's current state.
type QueryOrder struct {
	Symbol            string `json:"symbol"`
	OrderID           int64  `json:"orderId,omitempty"`
	OrigClientOrderID string `json:"origClientOrderId,omitempty"`
}

func (s QueryOrder) Validate() error {
	if s.Symbol == "" {
		return apierr.EmptyParameter("symbol")
	}
	if s.OrderID == 0 && s.OrigClientOrderID == "" {
		return &apierr.InvalidParameter{Name: "orderId", Reason: "orderId or origClientOrderId is required"}
	}
	return nil
}

// CancelAllOrders cancels every open order on a symbol.
type CancelAllOrders struct {
	Symbol string `json:"symbol"`
}

func (s CancelAllOrders) Validate() error {
	if s.Symbol == "" {
		return apierr.EmptyParameter("symbol")
	}
	return nil
}

// OpenOrders lists open orders, for one symbol or across the account.
type OpenOrders struct {
	Symbol string `json:"symbol,omitempty"`
}

func (s OpenOrders) Validate() error { return nil }

// MyTrades lists the account's executions for a symbol.
type MyTrades struct {
	Symbol    string `json:"symbol"`
	OrderID   int64  `json:"orderId,omitempty"`
	StartTime int64  `json:"startTime,omitempty"`
	EndTime   int64  `json:"endTime,omitempty"`
	FromID    int64  `json:"fromId,omitempty"`
	// Limit is the number of trades (default 500, max 1000).
	Limit int `json:"limit,omitempty"`
}

func (s MyTrades) Validate() error {
	if s.Symbol == "" {
		return apierr.EmptyParameter("symbol")
	}
	if s.Limit < 0 || s.Limit > 1000 {
		return apierr.ParameterRange("limit", 1, 1000)
	}
	if s.StartTime != 0 && s.EndTime != 0 && s.EndTime < s.StartTime {
		return &apierr.InvalidParameter{Name: "endTime", Reason: "must not precede startTime"}
	}
	return nil
}
