package responses

import (
	"github.com/shopspring/decimal"

	"github.com/tradewire/binance-spot/types"
)

// Fill is one partial execution reported in a FULL order response.
type Fill struct {
	Price           decimal.Decimal `json:"price"`
	Qty             decimal.Decimal `json:"qty"`
	Commission      decimal.Decimal `json:"commission"`
	CommissionAsset string          `json:"commissionAsset"`
	TradeID         int64           `json:"tradeId"`
}

// Order is the exchange's view of an order, returned from placement,
// queries, and open-order listings. Fills is populated only for FULL
// placement responses.
type Order struct {
	Symbol                  string                        `json:"symbol"`
	OrderID                 int64                         `json:"orderId"`
	OrderListID             int64                         `json:"orderListId"`
	ClientOrderID           string                        `json:"clientOrderId"`
	TransactTime            int64                         `json:"transactTime,omitempty"`
	Price                   decimal.Decimal               `json:"price"`
	OrigQty                 decimal.Decimal               `json:"origQty"`
	ExecutedQty             decimal.Decimal               `json:"executedQty"`
	CummulativeQuoteQty     decimal.Decimal               `json:"cummulativeQuoteQty"`
	Status                  types.OrderStatus             `json:"status"`
	TimeInForce             types.TimeInForce             `json:"timeInForce"`
	Type                    types.OrderType               `json:"type"`
	Side                    types.OrderSide               `json:"side"`
	StopPrice               decimal.Decimal               `json:"stopPrice,omitempty"`
	IcebergQty              decimal.Decimal               `json:"icebergQty,omitempty"`
	Time                    int64                         `json:"time,omitempty"`
	UpdateTime              int64                         `json:"updateTime,omitempty"`
	IsWorking               bool                          `json:"isWorking,omitempty"`
	WorkingTime             int64                         `json:"workingTime,omitempty"`
	OrigQuoteOrderQty       decimal.Decimal               `json:"origQuoteOrderQty,omitempty"`
	SelfTradePreventionMode types.SelfTradePreventionMode `json:"selfTradePreventionMode,omitempty"`
	Fills                   []Fill                        `json:"fills,omitempty"`
}

// CancelledOrder is the result of a cancel request.
type CancelledOrder struct {
	Symbol                  string                        `json:"symbol"`
	OrigClientOrderID       string                        `json:"origClientOrderId"`
	OrderID                 int64                         `json:"orderId"`
	OrderListID             int64                         `json:"orderListId"`
	ClientOrderID           string                        `json:"clientOrderId"`
	TransactTime            int64                         `json:"transactTime"`
	Price                   decimal.Decimal               `json:"price"`
	OrigQty                 decimal.Decimal               `json:"origQty"`
	ExecutedQty             decimal.Decimal               `json:"executedQty"`
	CummulativeQuoteQty     decimal.Decimal               `json:"cummulativeQuoteQty"`
	Status                  types.OrderStatus             `json:"status"`
	TimeInForce             types.TimeInForce             `json:"timeInForce"`
	Type                    types.OrderType               `json:"type"`
	Side                    types.OrderSide               `json:"side"`
	SelfTradePreventionMode types.SelfTradePreventionMode `json:"selfTradePreventionMode,omitempty"`
}

// MyTrade is one of the account's own executions.
type MyTrade struct {
	Symbol          string          `json:"symbol"`
	ID              int64           `json:"id"`
	OrderID         int64           `json:"orderId"`
	OrderListID     int64           `json:"orderListId"`
	Price           decimal.Decimal `json:"price"`
	Qty             decimal.Decimal `json:"qty"`
	QuoteQty        decimal.Decimal `json:"quoteQty"`
	Commission      decimal.Decimal `json:"commission"`
	CommissionAsset string          `json:"commissionAsset"`
	Time            int64           `json:"time"`
	IsBuyer         bool            `json:"isBuyer"`
	IsMaker         bool            `json:"isMaker"`
	IsBestMatch     bool            `json:"isBestMatch"`
}
