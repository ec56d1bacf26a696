package l2_service

import (
	"testing"
	"time"

	"trackfolio/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_ComputeDailyValues(t *testing.T) {
	dates := []time.Time{date(2024, 3, 1), date(2024, 3, 2), date(2024, 3, 3)}
	trades := []domain.TradeRecord{
		{Ticker: "VUSA.L", Type: domain.TransactionTypeBuy, Quantity: decimal.NewFromInt(10), TotalValue: decimal.NewFromInt(700), TradeDate: date(2024, 3, 1)},
	}
	prices := map[string]map[string]decimal.Decimal{
		"VUSA.L": {
			"2024-03-01": decimal.NewFromInt(70),
			"2024-03-02": decimal.NewFromInt(71),
			"2024-03-03": decimal.NewFromInt(72),
		},
	}

	t.Run("values are shares times price", func(t *testing.T) {
		result := ComputeDailyValues(DailyValuationInput{
			Tickers:         []string{"VUSA.L"},
			Dates:           dates,
			Trades:          trades,
			ConvertedPrices: prices,
		})

		require.Len(t, result.DailyValues, 3)
		require.True(t, result.DailyValues[0].TotalValue.Equal(decimal.NewFromInt(700)))
		require.True(t, result.DailyValues[1].TotalValue.Equal(decimal.NewFromInt(710)))
		require.True(t, result.DailyValues[2].TotalValue.Equal(decimal.NewFromInt(720)))
	})

	t.Run("invested series accumulates trades and external flows", func(t *testing.T) {
		externalFlows := []domain.CashFlowEvent{
			{Date: date(2024, 3, 2), Activity: "Payment Received", NetFlow: decimal.NewFromInt(500)},
		}
		result := ComputeDailyValues(DailyValuationInput{
			Tickers:         []string{"VUSA.L"},
			Dates:           dates,
			Trades:          trades,
			ExternalFlows:   externalFlows,
			ConvertedPrices: prices,
		})

		require.True(t, result.DailyValues[0].InvestedValue.Equal(decimal.NewFromInt(700)))
		require.True(t, result.DailyValues[1].InvestedValue.Equal(decimal.NewFromInt(1200)))
		require.True(t, result.DailyValues[2].InvestedValue.Equal(decimal.NewFromInt(1200)))
	})

	t.Run("matrix is rectangular with zeros for missing data", func(t *testing.T) {
		result := ComputeDailyValues(DailyValuationInput{
			Tickers:         []string{"VUSA.L", "ZZZ"},
			Dates:           dates,
			Trades:          trades,
			ConvertedPrices: prices,
		})

		// every (date, ticker) cell exists, ZZZ rows carry zero
		require.Len(t, result.TickerValues, 6)
		for _, v := range result.TickerValues {
			if v.Ticker == "ZZZ" {
				require.True(t, v.Value.IsZero())
			}
		}
	})

	t.Run("empty grid yields empty series", func(t *testing.T) {
		result := ComputeDailyValues(DailyValuationInput{})
		require.Empty(t, result.DailyValues)
		require.Empty(t, result.TickerValues)
	})
}

func Test_ComputeMonthlyContributions(t *testing.T) {
	t.Run("buys add and withdrawals subtract within a month", func(t *testing.T) {
		trades := []domain.TradeRecord{
			{Ticker: "VUSA.L", Type: domain.TransactionTypeBuy, TotalValue: decimal.NewFromInt(1000), TradeDate: date(2024, 3, 5)},
		}
		flows := []domain.CashFlowEvent{
			{Date: date(2024, 3, 20), Activity: "Withdrawal", NetFlow: decimal.NewFromInt(-200)},
		}

		out := ComputeMonthlyContributions(trades, flows)
		require.Len(t, out, 1)
		require.Equal(t, "2024-03", out[0].Month)
		require.True(t, out[0].NetValue.Equal(decimal.NewFromInt(800)))
	})

	t.Run("sells subtract notional", func(t *testing.T) {
		trades := []domain.TradeRecord{
			{Ticker: "VUSA.L", Type: domain.TransactionTypeBuy, TotalValue: decimal.NewFromInt(1000), TradeDate: date(2024, 3, 5)},
			{Ticker: "VUSA.L", Type: domain.TransactionTypeSell, TotalValue: decimal.NewFromInt(300), TradeDate: date(2024, 3, 12)},
		}

		out := ComputeMonthlyContributions(trades, nil)
		require.Len(t, out, 1)
		require.True(t, out[0].NetValue.Equal(decimal.NewFromInt(700)))
	})

	t.Run("months come out sorted", func(t *testing.T) {
		trades := []domain.TradeRecord{
			{Type: domain.TransactionTypeBuy, TotalValue: decimal.NewFromInt(100), TradeDate: date(2024, 4, 1)},
			{Type: domain.TransactionTypeBuy, TotalValue: decimal.NewFromInt(100), TradeDate: date(2024, 1, 1)},
			{Type: domain.TransactionTypeBuy, TotalValue: decimal.NewFromInt(100), TradeDate: date(2024, 3, 1)},
		}

		out := ComputeMonthlyContributions(trades, nil)
		require.Equal(t, "", cmp.Diff([]domain.MonthlyContribution{
			{Month: "2024-01", NetValue: decimal.NewFromInt(100)},
			{Month: "2024-03", NetValue: decimal.NewFromInt(100)},
			{Month: "2024-04", NetValue: decimal.NewFromInt(100)},
		}, out))
	})
}
