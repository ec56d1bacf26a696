package l2_service

import (
	"sort"
	"time"

	"trackfolio/internal/domain"
	"trackfolio/internal/util"

	"github.com/shopspring/decimal"
)

// SimulateHoldings replays the trade ledger over the date grid and returns
// one per-ticker share count snapshot per date. Trades are applied through a
// single forward pointer - for each date, every not-yet-applied trade dated
// on or before that date is folded into the running balances, then the
// balances are snapshotted. The pointer never rewinds, so the whole replay
// is one linear pass over trades + dates.
func SimulateHoldings(trades []domain.TradeRecord, dates []time.Time) []map[string]decimal.Decimal {
	sorted := make([]domain.TradeRecord, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TradeDate.Before(sorted[j].TradeDate)
	})

	balances := map[string]decimal.Decimal{}
	snapshots := make([]map[string]decimal.Decimal, 0, len(dates))
	tradeIdx := 0

	for _, date := range dates {
		for tradeIdx < len(sorted) && util.DateLte(util.TruncateToDay(sorted[tradeIdx].TradeDate), date) {
			t := sorted[tradeIdx]
			if t.Ticker != "" {
				switch {
				case t.Type.IncreasesHoldings():
					balances[t.Ticker] = balances[t.Ticker].Add(t.Quantity)
				case t.Type.DecreasesHoldings():
					balances[t.Ticker] = balances[t.Ticker].Sub(t.Quantity)
				}
			}
			tradeIdx++
		}

		snapshot := make(map[string]decimal.Decimal, len(balances))
		for ticker, qty := range balances {
			snapshot[ticker] = qty
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots
}
