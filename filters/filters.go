// Package filters models the exchange's trading-rule filters: the
// per-symbol and exchange-wide constraint entries reported by
// exchangeInfo, plus parsing of "Filter failure" rejection messages.
// Filters are pure data; enforcement happens on the exchange.
package filters

import "github.com/shopspring/decimal"

// FilterType discriminates the filter entries in exchangeInfo.
type FilterType string

const (
	PriceFilter         FilterType = "PRICE_FILTER"
	PercentPrice        FilterType = "PERCENT_PRICE"
	PercentPriceBySide  FilterType = "PERCENT_PRICE_BY_SIDE"
	LotSize             FilterType = "LOT_SIZE"
	MinNotional         FilterType = "MIN_NOTIONAL"
	Notional            FilterType = "NOTIONAL"
	IcebergParts        FilterType = "ICEBERG_PARTS"
	MarketLotSize       FilterType = "MARKET_LOT_SIZE"
	MaxNumOrders        FilterType = "MAX_NUM_ORDERS"
	MaxNumAlgoOrders    FilterType = "MAX_NUM_ALGO_ORDERS"
	MaxNumIcebergOrders FilterType = "MAX_NUM_ICEBERG_ORDERS"
	MaxNumOrderLists    FilterType = "MAX_NUM_ORDER_LISTS"
	MaxNumOrderAmends   FilterType = "MAX_NUM_ORDER_AMENDS"
	MaxPosition         FilterType = "MAX_POSITION"
	TrailingDelta       FilterType = "TRAILING_DELTA"

	ExchangeMaxNumOrders        FilterType = "EXCHANGE_MAX_NUM_ORDERS"
	ExchangeMaxNumAlgoOrders    FilterType = "EXCHANGE_MAX_NUM_ALGO_ORDERS"
	ExchangeMaxNumIcebergOrders FilterType = "EXCHANGE_MAX_NUM_ICEBERG_ORDERS"
)

// SymbolFilter is one per-symbol filter entry. The wire format is a
// tagged union on filterType; only the fields belonging to the tagged
// variant are populated, the rest stay zero.
type SymbolFilter struct {
	FilterType FilterType `json:"filterType"`

	// PRICE_FILTER: price bounds and tick; a zero value disables that rule.
	MinPrice decimal.Decimal `json:"minPrice,omitempty"`
	MaxPrice decimal.Decimal `json:"maxPrice,omitempty"`
	TickSize decimal.Decimal `json:"tickSize,omitempty"`

	// PERCENT_PRICE / PERCENT_PRICE_BY_SIDE: bounds relative to the
	// weighted average price over the last AvgPriceMins minutes.
	MultiplierUp      decimal.Decimal `json:"multiplierUp,omitempty"`
	MultiplierDown    decimal.Decimal `json:"multiplierDown,omitempty"`
	BidMultiplierUp   decimal.Decimal `json:"bidMultiplierUp,omitempty"`
	BidMultiplierDown decimal.Decimal `json:"bidMultiplierDown,omitempty"`
	AskMultiplierUp   decimal.Decimal `json:"askMultiplierUp,omitempty"`
	AskMultiplierDown decimal.Decimal `json:"askMultiplierDown,omitempty"`
	AvgPriceMins      int             `json:"avgPriceMins,omitempty"`

	// LOT_SIZE / MARKET_LOT_SIZE: quantity bounds and step.
	MinQty   decimal.Decimal `json:"minQty,omitempty"`
	MaxQty   decimal.Decimal `json:"maxQty,omitempty"`
	StepSize decimal.Decimal `json:"stepSize,omitempty"`

	// MIN_NOTIONAL / NOTIONAL.
	MinNotional      decimal.Decimal `json:"minNotional,omitempty"`
	MaxNotional      decimal.Decimal `json:"maxNotional,omitempty"`
	ApplyToMarket    bool            `json:"applyToMarket,omitempty"`
	ApplyMinToMarket bool            `json:"applyMinToMarket,omitempty"`
	ApplyMaxToMarket bool            `json:"applyMaxToMarket,omitempty"`

	// ICEBERG_PARTS / MAX_NUM_* counters.
	Limit               int `json:"limit,omitempty"`
	MaxNumOrders        int `json:"maxNumOrders,omitempty"`
	MaxNumAlgoOrders    int `json:"maxNumAlgoOrders,omitempty"`
	MaxNumIcebergOrders int `json:"maxNumIcebergOrders,omitempty"`
	MaxNumOrderLists    int `json:"maxNumOrderLists,omitempty"`
	MaxNumOrderAmends   int `json:"maxNumOrderAmends,omitempty"`

	// MAX_POSITION.
	MaxPosition decimal.Decimal `json:"maxPosition,omitempty"`

	// TRAILING_DELTA.
	MinTrailingAboveDelta int `json:"minTrailingAboveDelta,omitempty"`
	MaxTrailingAboveDelta int `json:"maxTrailingAboveDelta,omitempty"`
	MinTrailingBelowDelta int `json:"minTrailingBelowDelta,omitempty"`
	MaxTrailingBelowDelta int `json:"maxTrailingBelowDelta,omitempty"`
}

// ExchangeFilter is one exchange-wide filter entry.
type ExchangeFilter struct {
	FilterType FilterType `json:"filterType"`

	MaxNumOrders        int `json:"maxNumOrders,omitempty"`
	MaxNumAlgoOrders    int `json:"maxNumAlgoOrders,omitempty"`
	MaxNumIcebergOrders int `json:"maxNumIcebergOrders,omitempty"`
}
