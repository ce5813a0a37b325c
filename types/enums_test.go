package types

import "testing"

func TestOrderSideOpposite(t *testing.T) {
	if Buy.Opposite() != Sell || Sell.Opposite() != Buy {
		t.Error("Opposite is not an involution on BUY/SELL")
	}
}

func TestOrderTypeRequiresPrice(t *testing.T) {
	priced := []OrderType{Limit, StopLossLimit, TakeProfitLimit, LimitMaker}
	for _, ot := range priced {
		if !ot.RequiresPrice() {
			t.Errorf("%s.RequiresPrice() = false", ot)
		}
	}
	for _, ot := range []OrderType{Market, StopLoss, TakeProfit} {
		if ot.RequiresPrice() {
			t.Errorf("%s.RequiresPrice() = true", ot)
		}
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	terminal := []OrderStatus{StatusFilled, StatusCanceled, StatusRejected, StatusExpired, StatusExpiredInMatch}
	for _, st := range terminal {
		if !st.Terminal() {
			t.Errorf("%s.Terminal() = false", st)
		}
	}
	for _, st := range []OrderStatus{StatusNew, StatusPartiallyFilled, StatusPendingCancel} {
		if st.Terminal() {
			t.Errorf("%s.Terminal() = true", st)
		}
	}
}

func TestKlineIntervalValid(t *testing.T) {
	for _, iv := range []KlineInterval{Interval1s, Interval1m, Interval1h, Interval1d, Interval1w, Interval1M} {
		if !iv.Valid() {
			t.Errorf("%s reported invalid", iv)
		}
	}
	for _, iv := range []KlineInterval{"", "7m", "1y", "1mo"} {
		if iv.Valid() {
			t.Errorf("%q reported valid", iv)
		}
	}
}
