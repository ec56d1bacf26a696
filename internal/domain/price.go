package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetPrice is one observation from the market data provider.
type AssetPrice struct {
	Ticker   string
	Date     time.Time
	Price    decimal.Decimal
	Currency string
}

// TickerPrice is a stored (ticker, date) price row, carrying both the
// provider's raw price and the base-currency conversion.
type TickerPrice struct {
	Ticker         string
	Date           time.Time
	Currency       string
	OriginalPrice  decimal.Decimal
	ConvertedPrice decimal.Decimal
}
