package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_LoadTrades(t *testing.T) {
	csv := strings.Join([]string{
		`Ticker,Transaction Type,Quantity,Total Trade Value,Trade Date/Time,Settlement Date`,
		`VUSA.L,Market buy,10,"£1,234.50",05/03/24 14:30:00,07/03/24`,
		`AAPL,Market sell,2.5,£425.00,10/03/24,12/03/24`,
	}, "\n")

	trades, err := LoadTrades(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, trades, 2)

	require.Equal(t, "VUSA.L", trades[0].Ticker)
	require.Equal(t, "Market buy", trades[0].TransactionType)
	require.True(t, trades[0].Quantity.Equal(decimal.NewFromInt(10)))
	require.True(t, trades[0].TotalValue.Equal(decimal.NewFromFloat(1234.50)))
	require.Equal(t, time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC), trades[0].TradeDate)
	require.Equal(t, time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), trades[0].SettlementDate)
	require.NotEqual(t, trades[0].TradeID, trades[1].TradeID)

	// date-only trade timestamps parse at midnight
	require.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), trades[1].TradeDate)
}

func Test_LoadTrades_badDate(t *testing.T) {
	csv := strings.Join([]string{
		`Ticker,Transaction Type,Quantity,Total Trade Value,Trade Date/Time,Settlement Date`,
		`VUSA.L,Market buy,10,£100.00,2024-03-05,07/03/24`,
	}, "\n")

	_, err := LoadTrades(strings.NewReader(csv))
	require.Error(t, err)
}

func Test_LoadCashFlows(t *testing.T) {
	csv := strings.Join([]string{
		`Date,Activity,Credit,Debit,Balance`,
		`05/03/24,Payment Received,"£1,000.00",,£1000.00`,
		`20/03/24,Withdrawal,,£200.00,£800.00`,
		`25/03/24,Dividend,£12.34,,£812.34`,
	}, "\n")

	events, err := LoadCashFlows(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, events, 3)

	require.Equal(t, "Payment Received", events[0].Activity)
	require.True(t, events[0].NetFlow.Equal(decimal.NewFromInt(1000)))

	// debits come out negative
	require.True(t, events[1].NetFlow.Equal(decimal.NewFromInt(-200)))
	require.Equal(t, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), events[1].Date)

	require.True(t, events[2].NetFlow.Equal(decimal.NewFromFloat(12.34)))
}
