package l2_service

import (
	"sort"
	"time"

	"trackfolio/internal/domain"
	"trackfolio/internal/util"

	"github.com/shopspring/decimal"
)

type DailyValuationInput struct {
	Tickers []string
	Dates   []time.Time
	Trades  []domain.TradeRecord
	// ExternalFlows feed the cumulative invested series only; they do not
	// affect per-ticker values.
	ExternalFlows []domain.CashFlowEvent
	// ConvertedPrices maps ticker -> "2006-01-02" -> base-currency price.
	// Missing entries value as zero.
	ConvertedPrices map[string]map[string]decimal.Decimal
}

type DailyValuationResult struct {
	// TickerValues is rectangular: one row per (date, ticker) for every
	// known ticker on every date, zeros included, so per-ticker vectors
	// stay aligned for consumers.
	TickerValues []domain.TickerDailyValue
	DailyValues  []domain.DailyValuation
}

// ComputeDailyValues combines replayed holdings with converted prices into
// the daily value series: value(date, ticker) = shares x price, total per
// date is the sum across tickers, and the invested series is the running
// sum of buy/sell notional plus external flows.
func ComputeDailyValues(in DailyValuationInput) DailyValuationResult {
	tickers := make([]string, len(in.Tickers))
	copy(tickers, in.Tickers)
	sort.Strings(tickers)

	holdings := SimulateHoldings(in.Trades, in.Dates)
	investedByDate := dailyInvestedDeltas(in.Trades, in.ExternalFlows)

	result := DailyValuationResult{
		TickerValues: make([]domain.TickerDailyValue, 0, len(in.Dates)*len(tickers)),
		DailyValues:  make([]domain.DailyValuation, 0, len(in.Dates)),
	}

	invested := decimal.Zero
	for i, date := range in.Dates {
		dateKey := date.Format(time.DateOnly)
		totalValue := decimal.Zero

		for _, ticker := range tickers {
			shares := holdings[i][ticker]
			price := decimal.Zero
			if priceMap, ok := in.ConvertedPrices[ticker]; ok {
				price = priceMap[dateKey]
			}
			value := shares.Mul(price)
			totalValue = totalValue.Add(value)

			result.TickerValues = append(result.TickerValues, domain.TickerDailyValue{
				Date:   date,
				Ticker: ticker,
				Value:  value,
			})
		}

		invested = invested.Add(investedByDate[dateKey])
		result.DailyValues = append(result.DailyValues, domain.DailyValuation{
			Date:          date,
			TotalValue:    totalValue,
			InvestedValue: invested,
		})
	}

	return result
}

func dailyInvestedDeltas(trades []domain.TradeRecord, externalFlows []domain.CashFlowEvent) map[string]decimal.Decimal {
	deltas := map[string]decimal.Decimal{}
	for _, t := range trades {
		key := util.TruncateToDay(t.TradeDate).Format(time.DateOnly)
		switch t.Type {
		case domain.TransactionTypeBuy:
			deltas[key] = deltas[key].Add(t.TotalValue)
		case domain.TransactionTypeSell:
			deltas[key] = deltas[key].Sub(t.TotalValue)
		}
	}
	for _, f := range externalFlows {
		key := util.TruncateToDay(f.Date).Format(time.DateOnly)
		deltas[key] = deltas[key].Add(f.NetFlow)
	}
	return deltas
}

// ComputeMonthlyContributions buckets net money movement by calendar month:
// buy notional adds, sell notional subtracts, and external cash flows add
// their signed amount to the month they occurred in.
func ComputeMonthlyContributions(trades []domain.TradeRecord, externalFlows []domain.CashFlowEvent) []domain.MonthlyContribution {
	monthlyNet := map[string]decimal.Decimal{}

	for _, t := range trades {
		month := util.MonthKey(t.TradeDate)
		switch t.Type {
		case domain.TransactionTypeBuy:
			monthlyNet[month] = monthlyNet[month].Add(t.TotalValue)
		case domain.TransactionTypeSell:
			monthlyNet[month] = monthlyNet[month].Sub(t.TotalValue)
		}
	}

	for _, f := range externalFlows {
		month := util.MonthKey(f.Date)
		monthlyNet[month] = monthlyNet[month].Add(f.NetFlow)
	}

	months := make([]string, 0, len(monthlyNet))
	for month := range monthlyNet {
		months = append(months, month)
	}
	sort.Strings(months)

	out := make([]domain.MonthlyContribution, 0, len(months))
	for _, month := range months {
		out = append(out, domain.MonthlyContribution{
			Month:    month,
			NetValue: monthlyNet[month],
		})
	}

	return out
}
