package l2_service

import (
	"testing"
	"time"

	"trackfolio/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Test_SimulateHoldings(t *testing.T) {
	trades := []domain.TradeRecord{
		{Ticker: "VUSA.L", Type: domain.TransactionTypeBuy, Quantity: decimal.NewFromInt(10), TradeDate: date(2024, 1, 1)},
		{Ticker: "VUSA.L", Type: domain.TransactionTypeSell, Quantity: decimal.NewFromInt(4), TradeDate: date(2024, 1, 10)},
	}

	t.Run("position steps at trade dates", func(t *testing.T) {
		dates := []time.Time{date(2023, 12, 31), date(2024, 1, 5), date(2024, 1, 15)}
		snapshots := SimulateHoldings(trades, dates)
		require.Len(t, snapshots, 3)

		require.True(t, snapshots[0]["VUSA.L"].IsZero())
		require.True(t, snapshots[1]["VUSA.L"].Equal(decimal.NewFromInt(10)))
		require.True(t, snapshots[2]["VUSA.L"].Equal(decimal.NewFromInt(6)))
	})

	t.Run("trade applies on its own date", func(t *testing.T) {
		snapshots := SimulateHoldings(trades, []time.Time{date(2024, 1, 1), date(2024, 1, 10)})
		require.True(t, snapshots[0]["VUSA.L"].Equal(decimal.NewFromInt(10)))
		require.True(t, snapshots[1]["VUSA.L"].Equal(decimal.NewFromInt(6)))
	})

	t.Run("unsorted ledger replays identically", func(t *testing.T) {
		reversed := []domain.TradeRecord{trades[1], trades[0]}
		dates := []time.Time{date(2024, 1, 15)}
		require.True(t, SimulateHoldings(reversed, dates)[0]["VUSA.L"].Equal(decimal.NewFromInt(6)))
	})

	t.Run("dividend reinvestment adds shares", func(t *testing.T) {
		withDrip := append([]domain.TradeRecord{}, trades...)
		withDrip = append(withDrip, domain.TradeRecord{
			Ticker:    "VUSA.L",
			Type:      domain.TransactionTypeDividendReinvestment,
			Quantity:  decimal.NewFromFloat(0.5),
			TradeDate: date(2024, 1, 12),
		})
		snapshots := SimulateHoldings(withDrip, []time.Time{date(2024, 1, 15)})
		require.True(t, snapshots[0]["VUSA.L"].Equal(decimal.NewFromFloat(6.5)))
	})

	t.Run("other transaction types leave holdings untouched", func(t *testing.T) {
		withOther := append([]domain.TradeRecord{}, trades...)
		withOther = append(withOther, domain.TradeRecord{
			Ticker:    "VUSA.L",
			Type:      domain.TransactionTypeOther,
			Quantity:  decimal.NewFromInt(100),
			TradeDate: date(2024, 1, 12),
		})
		snapshots := SimulateHoldings(withOther, []time.Time{date(2024, 1, 15)})
		require.True(t, snapshots[0]["VUSA.L"].Equal(decimal.NewFromInt(6)))
	})
}
