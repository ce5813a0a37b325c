// Package types holds the shared enumerations used by request
// specifications and response models. Values are the exact strings the
// exchange speaks, so they marshal straight into wire JSON.
package types

// OrderSide is the trading side of an order.
type OrderSide string

const (
	Buy  OrderSide = "BUY"
	Sell OrderSide = "SELL"
)

// Opposite returns the other trading side.
func (s OrderSide) Opposite() OrderSide {
	if s == Buy {
		return Sell
	}
	return Buy
}

// OrderType selects the matching behavior of an order.
type OrderType string

const (
	Limit           OrderType = "LIMIT"
	Market          OrderType = "MARKET"
	StopLoss        OrderType = "STOP_LOSS"
	StopLossLimit   OrderType = "STOP_LOSS_LIMIT"
	TakeProfit      OrderType = "TAKE_PROFIT"
	TakeProfitLimit OrderType = "TAKE_PROFIT_LIMIT"
	LimitMaker      OrderType = "LIMIT_MAKER"
)

// RequiresPrice reports whether the order type carries a limit price.
func (t OrderType) RequiresPrice() bool {
	switch t {
	case Limit, StopLossLimit, TakeProfitLimit, LimitMaker:
		return true
	}
	return false
}

// TimeInForce controls how long an order stays active.
type TimeInForce string

const (
	GTC TimeInForce = "GTC"
	IOC TimeInForce = "IOC"
	FOK TimeInForce = "FOK"
)

// OrderStatus is the lifecycle state the exchange reports for an order.
type OrderStatus string

const (
	StatusNew             OrderStatus = "NEW"
	StatusPendingNew      OrderStatus = "PENDING_NEW"
	StatusPartiallyFilled OrderStatus = "PARTIALLY_FILLED"
	StatusFilled          OrderStatus = "FILLED"
	StatusCanceled        OrderStatus = "CANCELED"
	StatusPendingCancel   OrderStatus = "PENDING_CANCEL"
	StatusRejected        OrderStatus = "REJECTED"
	StatusExpired         OrderStatus = "EXPIRED"
	StatusExpiredInMatch  OrderStatus = "EXPIRED_IN_MATCH"
)

// Terminal reports whether the status is final for the order.
func (s OrderStatus) Terminal() bool {
	switch s {
	case StatusFilled, StatusCanceled, StatusRejected, StatusExpired, StatusExpiredInMatch:
		return true
	}
	return false
}

// OrderResponseType selects the payload shape returned when placing an
// order: an ack, the order summary, or the full fill breakdown.
type OrderResponseType string

const (
	ResponseAck    OrderResponseType = "ACK"
	ResponseResult OrderResponseType = "RESULT"
	ResponseFull   OrderResponseType = "FULL"
)

// SymbolStatus is the trading state of a symbol.
type SymbolStatus string

const (
	SymbolTrading  SymbolStatus = "TRADING"
	SymbolHalt     SymbolStatus = "HALT"
	SymbolBreak    SymbolStatus = "BREAK"
	SymbolEndOfDay SymbolStatus = "END_OF_DAY"
)

// SelfTradePreventionMode controls how the exchange handles an order
// that would match against the same account.
type SelfTradePreventionMode string

const (
	STPNone        SelfTradePreventionMode = "NONE"
	STPExpireTaker SelfTradePreventionMode = "EXPIRE_TAKER"
	STPExpireMaker SelfTradePreventionMode = "EXPIRE_MAKER"
	STPExpireBoth  SelfTradePreventionMode = "EXPIRE_BOTH"
)

// CancelRestrictions limits which order states a cancel may act on.
type CancelRestrictions string

const (
	CancelOnlyNew             CancelRestrictions = "ONLY_NEW"
	CancelOnlyPartiallyFilled CancelRestrictions = "ONLY_PARTIALLY_FILLED"
)

// RateLimitType identifies which quota a rate limit entry constrains.
type RateLimitType string

const (
	RateLimitRequestWeight RateLimitType = "REQUEST_WEIGHT"
	RateLimitOrders        RateLimitType = "ORDERS"
	RateLimitRawRequests   RateLimitType = "RAW_REQUESTS"
)

// RateLimitInterval is the window a rate limit entry applies over.
type RateLimitInterval string

const (
	IntervalSecond RateLimitInterval = "SECOND"
	IntervalMinute RateLimitInterval = "MINUTE"
	IntervalDay    RateLimitInterval = "DAY"
)

// KlineInterval is the candle width for kline queries.
type KlineInterval string

const (
	Interval1s  KlineInterval = "1s"
	Interval1m  KlineInterval = "1m"
	Interval3m  KlineInterval = "3m"
	Interval5m  KlineInterval = "5m"
	Interval15m KlineInterval = "15m"
	Interval30m KlineInterval = "30m"
	Interval1h  KlineInterval = "1h"
	Interval2h  KlineInterval = "2h"
	Interval4h  KlineInterval = "4h"
	Interval6h  KlineInterval = "6h"
	Interval8h  KlineInterval = "8h"
	Interval12h KlineInterval = "12h"
	Interval1d  KlineInterval = "1d"
	Interval3d  KlineInterval = "3d"
	Interval1w  KlineInterval = "1w"
	Interval1M  KlineInterval = "1M"
)

// Valid reports whether the interval is one the exchange accepts.
func (i KlineInterval) Valid() bool {
	switch i {
	case Interval1s, Interval1m, Interval3m, Interval5m, Interval15m,
		Interval30m, Interval1h, Interval2h, Interval4h, Interval6h,
		Interval8h, Interval12h, Interval1d, Interval3d, Interval1w, Interval1M:
		return true
	}
	return false
}
