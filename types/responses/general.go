// Package responses contains the typed response models returned by
// the REST and WebSocket API methods. Monetary fields use
// shopspring/decimal; the exchange sends them as JSON strings.
package responses

import (
	"github.com/tradewire/binance-spot/filters"
	"github.com/tradewire/binance-spot/types"
)

// ServerTime is the exchange's clock reading in milliseconds.
type ServerTime struct {
	ServerTime int64 `json:"serverTime"`
}

// RateLimit is one entry of the exchange's request quota table.
type RateLimit struct {
	RateLimitType types.RateLimitType     `json:"rateLimitType"`
	Interval      types.RateLimitInterval `json:"interval"`
	IntervalNum   int                     `json:"intervalNum"`
	Limit         int                     `json:"limit"`
	// Count is present on responses that report current usage.
	Count int `json:"count,omitempty"`
}

// SymbolInfo describes one tradable symbol and its trading rules.
type SymbolInfo struct {
	Symbol                     string                  `json:"symbol"`
	Status                     types.SymbolStatus      `json:"status"`
	BaseAsset                  string                  `json:"baseAsset"`
	BaseAssetPrecision         int                     `json:"baseAssetPrecision"`
	QuoteAsset                 string                  `json:"quoteAsset"`
	QuotePrecision             int                     `json:"quotePrecision"`
	QuoteAssetPrecision        int                     `json:"quoteAssetPrecision"`
	OrderTypes                 []types.OrderType       `json:"orderTypes"`
	IcebergAllowed             bool                    `json:"icebergAllowed"`
	OcoAllowed                 bool                    `json:"ocoAllowed"`
	QuoteOrderQtyMarketAllowed bool                    `json:"quoteOrderQtyMarketAllowed"`
	AllowTrailingStop          bool                    `json:"allowTrailingStop"`
	CancelReplaceAllowed       bool                    `json:"cancelReplaceAllowed"`
	IsSpotTradingAllowed       bool                    `json:"isSpotTradingAllowed"`
	IsMarginTradingAllowed     bool                    `json:"isMarginTradingAllowed"`
	Filters                    []filters.SymbolFilter  `json:"filters"`
	Permissions                []string                `json:"permissions"`
	SelfTradePreventionMode    string                  `json:"defaultSelfTradePreventionMode"`
}

// ExchangeInfo is the exchange's static configuration: timezone,
// rate limits, global filters, and per-symbol trading rules.
type ExchangeInfo struct {
	Timezone        string                   `json:"timezone"`
	ServerTime      int64                    `json:"serverTime"`
	RateLimits      []RateLimit              `json:"rateLimits"`
	ExchangeFilters []filters.ExchangeFilter `json:"exchangeFilters"`
	Symbols         []SymbolInfo             `json:"symbols"`
}

// Symbol returns the info for a symbol, or nil when unknown.
func (e *ExchangeInfo) Symbol(symbol string) *SymbolInfo {
	for i := range e.Symbols {
		if e.Symbols[i].Symbol == symbol {
			return &e.Symbols[i]
		}
	}
	return nil
}
