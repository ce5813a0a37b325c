package responses

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// PriceLevel is one order book level, sent on the wire as a
// ["price", "qty"] pair.
type PriceLevel struct {
	Price decimal.Decimal
	Qty   decimal.Decimal
}

// UnmarshalJSON decodes the two-element array form.
func (l *PriceLevel) UnmarshalJSON(data []byte) error {
	var pair [2]decimal.Decimal
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("invalid price level: %w", err)
	}
	l.Price = pair[0]
	l.Qty = pair[1]
	return nil
}

// MarshalJSON restores the wire pair form.
func (l PriceLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]decimal.Decimal{l.Price, l.Qty})
}

// OrderBook is a depth snapshot.
type OrderBook struct {
	LastUpdateID int64        `json:"lastUpdateId"`
	Bids         []PriceLevel `json:"bids"`
	Asks         []PriceLevel `json:"asks"`
}

// Trade is one public trade.
type Trade struct {
	ID           int64           `json:"id"`
	Price        decimal.Decimal `json:"price"`
	Qty          decimal.Decimal `json:"qty"`
	QuoteQty     decimal.Decimal `json:"quoteQty"`
	Time         int64           `json:"time"`
	IsBuyerMaker bool            `json:"isBuyerMaker"`
	IsBestMatch  bool            `json:"isBestMatch"`
}

// Kline is one candle. The wire format is a positional array:
// [openTime, open, high, low, close, volume, closeTime, quoteVolume,
// tradeCount, takerBuyBaseVolume, takerBuyQuoteVolume, ignored].
type Kline struct {
	OpenTime            int64
	Open                decimal.Decimal
	High                decimal.Decimal
	Low                 decimal.Decimal
	Close               decimal.Decimal
	Volume              decimal.Decimal
	CloseTime           int64
	QuoteVolume         decimal.Decimal
	TradeCount          int64
	TakerBuyBaseVolume  decimal.Decimal
	TakerBuyQuoteVolume decimal.Decimal
}

// UnmarshalJSON decodes the positional array form.
func (k *Kline) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("invalid kline: %w", err)
	}
	if len(fields) < 11 {
		return fmt.Errorf("invalid kline: expected 11+ fields, got %d", len(fields))
	}
	targets := []any{
		&k.OpenTime, &k.Open, &k.High, &k.Low, &k.Close, &k.Volume,
		&k.CloseTime, &k.QuoteVolume, &k.TradeCount,
		&k.TakerBuyBaseVolume, &k.TakerBuyQuoteVolume,
	}
	for i, target := range targets {
		if err := json.Unmarshal(fields[i], target); err != nil {
			return fmt.Errorf("invalid kline field %d: %w", i, err)
		}
	}
	return nil
}

// AveragePrice is the current weighted average price over Mins minutes.
type AveragePrice struct {
	Mins      int             `json:"mins"`
	Price     decimal.Decimal `json:"price"`
	CloseTime int64           `json:"closeTime"`
}

// TickerPrice is the latest price for a symbol.
type TickerPrice struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
}

// BookTicker is the best bid and ask for a symbol.
type BookTicker struct {
	Symbol   string          `json:"symbol"`
	BidPrice decimal.Decimal `json:"bidPrice"`
	BidQty   decimal.Decimal `json:"bidQty"`
	AskPrice decimal.Decimal `json:"askPrice"`
	AskQty   decimal.Decimal `json:"askQty"`
}
