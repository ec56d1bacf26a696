package calculator

import (
	"math"
	"testing"
	"time"

	"trackfolio/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Test_CalculateXIRR(t *testing.T) {
	t.Run("one year 10 percent", func(t *testing.T) {
		flows := []CashFlow{
			{Date: date(2023, 1, 1), Amount: -1000},
			{Date: date(2024, 1, 1), Amount: 1100},
		}

		// 365 elapsed days against a 365.25-day year nudges the root
		// slightly above 10%
		expected := math.Pow(1.1, 365.25/365.0) - 1
		require.InDelta(t, expected, CalculateXIRR(flows, 0.1), 1e-4)
	})

	t.Run("fewer than two flows", func(t *testing.T) {
		require.Zero(t, CalculateXIRR(nil, 0.1))
		require.Zero(t, CalculateXIRR([]CashFlow{{Date: date(2023, 1, 1), Amount: -1000}}, 0.1))
	})

	t.Run("same-sign flows have no root", func(t *testing.T) {
		flows := []CashFlow{
			{Date: date(2023, 1, 1), Amount: -1000},
			{Date: date(2024, 1, 1), Amount: -500},
		}
		require.Zero(t, CalculateXIRR(flows, 0.1))
	})

	t.Run("order does not matter", func(t *testing.T) {
		a := []CashFlow{
			{Date: date(2023, 1, 1), Amount: -1000},
			{Date: date(2023, 7, 1), Amount: -500},
			{Date: date(2024, 1, 1), Amount: 1700},
		}
		b := []CashFlow{a[2], a[0], a[1]}
		require.InDelta(t, CalculateXIRR(a, 0.1), CalculateXIRR(b, 0.1), 1e-9)
	})

	t.Run("deep loss converges", func(t *testing.T) {
		flows := []CashFlow{
			{Date: date(2023, 1, 1), Amount: -1000},
			{Date: date(2024, 1, 1), Amount: 50},
		}
		got := CalculateXIRR(flows, 0.1)
		require.Less(t, got, -0.9)
		require.Greater(t, got, -1.0)
	})
}

func Test_CalculateTWR(t *testing.T) {
	t.Run("single period doubling", func(t *testing.T) {
		start := date(2023, 1, 1)
		end := date(2024, 1, 1)
		dates := []time.Time{start, end}
		values := []decimal.Decimal{decimal.NewFromInt(100), decimal.NewFromInt(200)}

		days := end.Sub(start).Hours() / 24
		expected := math.Pow(2.0, 365.25/days) - 1
		require.InDelta(t, expected, CalculateTWR(dates, values, nil, end), 1e-9)
	})

	t.Run("flow at period end is stripped from the sub-period return", func(t *testing.T) {
		start := date(2023, 1, 1)
		mid := date(2023, 7, 1)
		end := date(2024, 1, 1)
		dates := []time.Time{start, mid, end}
		values := []decimal.Decimal{
			decimal.NewFromInt(100),
			decimal.NewFromInt(250), // 150 growth + 100 deposit
			decimal.NewFromInt(250),
		}
		flows := []DatedFlow{{Date: mid, Amount: decimal.NewFromInt(100)}}

		// period 1: (250-100)/100 = 1.5, period 2: 250/250 = 1.0
		days := end.Sub(start).Hours() / 24
		expected := math.Pow(1.5, 365.25/days) - 1
		require.InDelta(t, expected, CalculateTWR(dates, values, flows, end), 1e-9)
	})

	t.Run("zero start values are skipped", func(t *testing.T) {
		start := date(2023, 1, 1)
		mid := date(2023, 7, 1)
		end := date(2024, 1, 1)
		dates := []time.Time{start, mid, end}
		values := []decimal.Decimal{
			decimal.Zero,
			decimal.NewFromInt(100),
			decimal.NewFromInt(150),
		}
		flows := []DatedFlow{{Date: mid, Amount: decimal.NewFromInt(100)}}

		days := end.Sub(start).Hours() / 24
		expected := math.Pow(1.5, 365.25/days) - 1
		require.InDelta(t, expected, CalculateTWR(dates, values, flows, end), 1e-9)
	})

	t.Run("degenerate inputs", func(t *testing.T) {
		require.Zero(t, CalculateTWR(nil, nil, nil, date(2024, 1, 1)))
		require.Zero(t, CalculateTWR(
			[]time.Time{date(2024, 1, 1)},
			[]decimal.Decimal{decimal.NewFromInt(100)},
			nil,
			date(2024, 1, 1),
		))
	})
}

func Test_AnnualizedVolatility(t *testing.T) {
	t.Run("constant returns have zero volatility", func(t *testing.T) {
		values := []decimal.Decimal{
			decimal.NewFromInt(100),
			decimal.NewFromInt(110),
			decimal.NewFromInt(121),
		}
		require.InDelta(t, 0.0, AnnualizedVolatility(values), 1e-9)
	})

	t.Run("alternating returns", func(t *testing.T) {
		values := []decimal.Decimal{
			decimal.NewFromInt(100),
			decimal.NewFromInt(110),
			decimal.NewFromInt(99),
			decimal.NewFromFloat(108.9),
		}
		// returns: +10%, -10%, +10% -> sample stdev 0.11547
		require.InDelta(t, 0.1154700538*math.Sqrt(252), AnnualizedVolatility(values), 1e-4)
	})

	t.Run("too few returns", func(t *testing.T) {
		require.Zero(t, AnnualizedVolatility(nil))
		require.Zero(t, AnnualizedVolatility([]decimal.Decimal{decimal.NewFromInt(100), decimal.NewFromInt(110)}))
	})

	t.Run("zero days are skipped", func(t *testing.T) {
		values := []decimal.Decimal{
			decimal.Zero,
			decimal.NewFromInt(110),
			decimal.NewFromInt(121),
			decimal.NewFromFloat(133.1),
		}
		// the zero->110 step is dropped; remaining returns are constant 10%
		require.InDelta(t, 0.0, AnnualizedVolatility(values), 1e-9)
	})
}

func Test_CalculatePortfolioStats(t *testing.T) {
	t.Run("totals and derived fields", func(t *testing.T) {
		events := []domain.CashFlowEvent{
			{Date: date(2023, 1, 1), Activity: "Payment Received", NetFlow: decimal.NewFromInt(1000)},
			{Date: date(2023, 7, 1), Activity: "Withdrawal", NetFlow: decimal.NewFromInt(-200)},
		}
		currentDate := date(2024, 1, 1)
		dates := []time.Time{date(2023, 1, 1), date(2023, 7, 1), currentDate}
		values := []decimal.Decimal{
			decimal.NewFromInt(1000),
			decimal.NewFromInt(900),
			decimal.NewFromInt(1100),
		}

		stats := CalculatePortfolioStats(events, decimal.NewFromInt(1100), currentDate, dates, values)

		require.True(t, stats.TotalInvested.Equal(decimal.NewFromInt(1000)))
		require.True(t, stats.TotalWithdrawn.Equal(decimal.NewFromInt(200)))
		require.True(t, stats.CurrentValue.Equal(decimal.NewFromInt(1100)))
		// 1100 + 200 - 1000
		require.True(t, stats.ProfitLoss.Equal(decimal.NewFromInt(300)))
		require.True(t, stats.ReturnPercentage.Equal(decimal.NewFromFloat(0.3)))
		require.NotZero(t, stats.IRR)
		require.Equal(t, currentDate, stats.CalculatedAt)
	})

	t.Run("no flows yields zero rates", func(t *testing.T) {
		currentDate := date(2024, 1, 1)
		stats := CalculatePortfolioStats(nil, decimal.Zero, currentDate, nil, nil)

		require.Zero(t, stats.IRR)
		require.Zero(t, stats.TWR)
		require.True(t, stats.TotalInvested.IsZero())
		require.True(t, stats.ReturnPercentage.IsZero())
	})
}
