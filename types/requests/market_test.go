package requests

import (
	"testing"

	"github.com/tradewire/binance-spot/types"
)

func TestExchangeInfoValidate(t *testing.T) {
	if err := (ExchangeInfo{}).Validate(); err != nil {
		t.Errorf("empty spec rejected: %v", err)
	}
	if err := (ExchangeInfo{Symbol: "BTCUSDT"}).Validate(); err != nil {
		t.Errorf("single symbol rejected: %v", err)
	}
	if err := (ExchangeInfo{Symbols: []string{"BTCUSDT", "ETHUSDT"}}).Validate(); err != nil {
		t.Errorf("symbol list rejected: %v", err)
	}
	if err := (ExchangeInfo{Symbol: "BTCUSDT", Symbols: []string{"ETHUSDT"}}).Validate(); err == nil {
		t.Error("symbol and symbols together accepted")
	}
}

func TestOrderBookValidate(t *testing.T) {
	if err := (OrderBook{Symbol: "BTCUSDT", Limit: 5000}).Validate(); err != nil {
		t.Errorf("limit 5000 rejected: %v", err)
	}
	if err := (OrderBook{Symbol: "BTCUSDT", Limit: 5001}).Validate(); err == nil {
		t.Error("limit above maximum accepted")
	}
	if err := (OrderBook{}).Validate(); err == nil {
		t.Error("empty symbol accepted")
	}
}

func TestRecentTradesValidate(t *testing.T) {
	if err := (RecentTrades{Symbol: "BTCUSDT"}).Validate(); err != nil {
		t.Errorf("valid spec rejected: %v", err)
	}
	if err := (RecentTrades{Symbol: "BTCUSDT", Limit: 1001}).Validate(); err == nil {
		t.Error("limit above maximum accepted")
	}
}

func TestKlinesValidate(t *testing.T) {
	ok := Klines{Symbol: "BTCUSDT", Interval: types.Interval1m}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid spec rejected: %v", err)
	}
	if err := (Klines{Symbol: "BTCUSDT", Interval: "7m"}).Validate(); err == nil {
		t.Error("unknown interval accepted")
	}
	bad := Klines{Symbol: "BTCUSDT", Interval: types.Interval1h, StartTime: 2000, EndTime: 1000}
	if err := bad.Validate(); err == nil {
		t.Error("inverted time range accepted")
	}
}

func TestOptionalSymbolSpecs(t *testing.T) {
	if err := (TickerPrice{}).Validate(); err != nil {
		t.Errorf("all-symbols ticker rejected: %v", err)
	}
	if err := (BookTicker{}).Validate(); err != nil {
		t.Errorf("all-symbols book ticker rejected: %v", err)
	}
	if err := (AveragePrice{}).Validate(); err == nil {
		t.Error("avg price without symbol accepted")
	}
}
