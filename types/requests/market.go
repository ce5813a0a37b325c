// Package requests contains the request specifications for API
// methods. A spec is a plain struct with wire-named json tags and a
// Validate method; transports validate before sending so bad
// parameters never reach the wire.
package requests

import (
	"github.com/tradewire/binance-spot/apierr"
	"github.com/tradewire/binance-spot/types"
)

// ExchangeInfo queries the exchange's static configuration, optionally
// narrowed to one symbol or a set of symbols.
type ExchangeInfo struct {
	Symbol  string   `json:"symbol,omitempty"`
	Symbols []string `json:"symbols,omitempty"`
}

func (s ExchangeInfo) Validate() error {
	if s.Symbol != "" && len(s.Symbols) > 0 {
		return &apierr.InvalidParameter{Name: "symbols", Reason: "symbol and symbols are mutually exclusive"}
	}
	return nil
}

// OrderBook queries a depth snapshot.
type OrderBook struct {
	Symbol string `json:"symbol"`
	// Limit is the number of levels per side (default 100, max 5000).
	Limit int `json:"limit,omitempty"`
}

func (s OrderBook) Validate() error {
	if s.Symbol == "" {
		return apierr.EmptyParameter("symbol")
	}
	if s.Limit < 0 || s.Limit > 5000 {
		return apierr.ParameterRange("limit", 1, 5000)
	}
	return nil
}

// RecentTrades queries the latest public trades.
type RecentTrades struct {
	Symbol string `json:"symbol"`
	// Limit is the number of trades (default 500, max 1000).
	Limit int `json:"limit,omitempty"`
}

func (s RecentTrades) Validate() error {
	if s.Symbol == "" {
		return apierr.EmptyParameter("symbol")
	}
	if s.Limit < 0 || s.Limit > 1000 {
		return apierr.ParameterRange("limit", 1, 1000)
	}
	return nil
}

// Klines queries candles for a symbol and interval, optionally bounded
// by a time range.
type Klines struct {
	Symbol    string              `json:"symbol"`
	Interval  types.KlineInterval `json:"interval"`
	StartTime int64               `json:"startTime,omitempty"`
	EndTime   int64               `json:"endTime,omitempty"`
	TimeZone  string              `json:"timeZone,omitempty"`
	// Limit is the number of candles (default 500, max 1000).
	Limit int `json:"limit,omitempty"`
}

func (s Klines) Validate() error {
	if s.Symbol == "" {
		return apierr.EmptyParameter("symbol")
	}
	if !s.Interval.Valid() {
		return &apierr.InvalidParameter{Name: "interval", Reason: "unknown kline interval"}
	}
	if s.Limit < 0 || s.Limit > 1000 {
		return apierr.ParameterRange("limit", 1, 1000)
	}
	if s.StartTime != 0 && s.EndTime != 0 && s.EndTime < s.StartTime {
		return &apierr.InvalidParameter{Name: "endTime", Reason: "must not precede startTime"}
	}
	return nil
}

// AveragePrice queries the current weighted average price.
type AveragePrice struct {
	Symbol string `json:"symbol"`
}

func (s AveragePrice) Validate() error {
	if s.Symbol == "" {
		return apierr.EmptyParameter("symbol")
	}
	return nil
}

// TickerPrice queries the latest price for one symbol, or for all
// symbols when empty.
type TickerPrice struct {
	Symbol string `json:"symbol,omitempty"`
}

func (s TickerPrice) Validate() error { return nil }

// BookTicker queries the best bid/ask for one symbol, or for all
// symbols when empty.
type BookTicker struct {
	Symbol string `json:"symbol,omitempty"`
}

func (s BookTicker) Validate() error { return nil }
