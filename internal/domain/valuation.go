package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyValuation is the portfolio's total value on one date, plus the
// cumulative net amount invested up to and including that date.
type DailyValuation struct {
	Date          time.Time
	TotalValue    decimal.Decimal
	InvestedValue decimal.Decimal
}

// TickerDailyValue is one cell of the rectangular date x ticker value matrix.
// Every known ticker gets a row for every date in the computed range, even
// when the value is zero, so per-ticker vectors stay aligned.
type TickerDailyValue struct {
	Date   time.Time
	Ticker string
	Value  decimal.Decimal
}

// MonthlyContribution is the net amount put into the portfolio during one
// calendar month, keyed "YYYY-MM". It merges buy/sell trade notional with
// external cash transfers.
type MonthlyContribution struct {
	Month    string
	NetValue decimal.Decimal
}
