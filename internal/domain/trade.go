package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType is the closed set of trade classifications. Raw broker
// strings are classified once, at load time - nothing downstream should
// re-parse the original text.
type TransactionType string

const (
	TransactionTypeBuy                  TransactionType = "BUY"
	TransactionTypeSell                 TransactionType = "SELL"
	TransactionTypeDividendReinvestment TransactionType = "DIVIDEND_REINVESTMENT"
	TransactionTypeOther                TransactionType = "OTHER"
)

// ParseTransactionType classifies a raw broker transaction type string.
// Matching is case-insensitive substring matching, so e.g. "Market buy"
// and "LIMIT BUY" both classify as a buy.
func ParseTransactionType(raw string) TransactionType {
	upper := strings.ToUpper(raw)
	switch {
	case strings.Contains(upper, "DIVIDEND REINVESTMENT"):
		return TransactionTypeDividendReinvestment
	case strings.Contains(upper, "BUY"):
		return TransactionTypeBuy
	case strings.Contains(upper, "SELL"):
		return TransactionTypeSell
	}
	return TransactionTypeOther
}

func (t TransactionType) IncreasesHoldings() bool {
	return t == TransactionTypeBuy || t == TransactionTypeDividendReinvestment
}

func (t TransactionType) DecreasesHoldings() bool {
	return t == TransactionTypeSell
}

type TradeRecord struct {
	TradeID        uuid.UUID
	Ticker         string
	Type           TransactionType
	Quantity       decimal.Decimal
	TotalValue     decimal.Decimal
	TradeDate      time.Time
	SettlementDate time.Time
}
