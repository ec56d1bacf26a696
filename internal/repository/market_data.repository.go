package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trackfolio/internal/domain"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"
)

// Yahoo labels LSE pence prices as GBP. Above this threshold a .L ticker
// reporting GBP is assumed to actually be quoting pence.
var penceDetectionThreshold = decimal.NewFromInt(250)

type MarketDataRepository interface {
	// GetHistoricalPrices returns daily (date, price, currency) observations
	// for the ticker, ordered by date ascending. Gaps (market holidays,
	// missing bars) are expected.
	GetHistoricalPrices(ctx context.Context, ticker string, start, end time.Time) ([]domain.AssetPrice, error)
}

type yahooFinanceRepositoryHandler struct{}

func NewMarketDataRepository() MarketDataRepository {
	return yahooFinanceRepositoryHandler{}
}

func (h yahooFinanceRepositoryHandler) GetHistoricalPrices(ctx context.Context, ticker string, start, end time.Time) ([]domain.AssetPrice, error) {
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   ticker,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	out := []domain.AssetPrice{}
	currency := iter.Meta().Currency

	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		bar := iter.Bar()
		date := time.Unix(int64(bar.Timestamp), 0).UTC()
		date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

		price := bar.AdjClose
		if strings.HasSuffix(ticker, ".L") && currency == "GBP" && price.GreaterThan(penceDetectionThreshold) {
			price = price.Div(decimal.NewFromInt(100))
		}

		out = append(out, domain.AssetPrice{
			Ticker:   ticker,
			Date:     date,
			Price:    price,
			Currency: currency,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", ticker, err)
	}

	return out, nil
}
