package filters

import "strings"

const failurePrefix = "Filter failure: "

// orderedTypes is checked longest-name-first so e.g. MIN_NOTIONAL is
// never shadowed by NOTIONAL appearing inside it.
var orderedTypes = []FilterType{
	ExchangeMaxNumIcebergOrders,
	ExchangeMaxNumAlgoOrders,
	ExchangeMaxNumOrders,
	MaxNumIcebergOrders,
	MaxNumAlgoOrders,
	MaxNumOrderLists,
	MaxNumOrderAmends,
	MaxNumOrders,
	PercentPriceBySide,
	PercentPrice,
	MarketLotSize,
	MinNotional,
	Notional,
	PriceFilter,
	LotSize,
	IcebergParts,
	MaxPosition,
	TrailingDelta,
}

// ParseFailure extracts the filter named in a "Filter failure: X"
// rejection message. The second return is false when the message does
// not name a known filter.
func ParseFailure(msg string) (FilterType, bool) {
	for _, ft := range orderedTypes {
		if strings.Contains(msg, failurePrefix+string(ft)) {
			return ft, true
		}
	}
	return "", false
}

// TradingRejection classifies common order rejection messages that are
// not filter failures.
type TradingRejection string

const (
	RejectionUnknownOrder      TradingRejection = "unknown_order"
	RejectionInsufficientFunds TradingRejection = "insufficient_balance"
	RejectionDuplicateOrder    TradingRejection = "duplicate_order"
	RejectionMarketClosed      TradingRejection = "market_closed"
	RejectionAccountRestricted TradingRejection = "account_restricted"
	RejectionOrderWouldTrigger TradingRejection = "order_would_trigger"
)

var rejectionMessages = map[string]TradingRejection{
	"Unknown order sent.":                                    RejectionUnknownOrder,
	"Account has insufficient balance for requested action.": RejectionInsufficientFunds,
	"Duplicate order sent.":                                  RejectionDuplicateOrder,
	"Market is closed.":                                      RejectionMarketClosed,
	"This action is disabled on this account.":               RejectionAccountRestricted,
	"Order would immediately trigger.":                       RejectionOrderWouldTrigger,
}

// ParseRejection maps a rejection message to its classified reason.
func ParseRejection(msg string) (TradingRejection, bool) {
	for text, rejection := range rejectionMessages {
		if strings.Contains(msg, text) {
			return rejection, true
		}
	}
	return "", false
}
