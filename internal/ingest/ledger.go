// Package ingest imports broker statement CSVs into the ledger tables.
// Column names and formats follow the statement exports: monetary cells may
// carry pound signs and thousands separators, dates are dd/mm/yy, and trade
// timestamps are dd/mm/yy hh:mm:ss.
package ingest

import (
	"fmt"
	"io"
	"strings"
	"time"

	"trackfolio/internal/db/models/postgres/public/model"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type csvMoney struct {
	decimal.Decimal
}

func (m *csvMoney) UnmarshalCSV(s string) error {
	clean := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(s, "£", ""), ",", ""))
	if clean == "" {
		m.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return fmt.Errorf("invalid monetary value %q: %w", s, err)
	}
	m.Decimal = d
	return nil
}

type csvDate struct {
	time.Time
}

func (d *csvDate) UnmarshalCSV(s string) error {
	t, err := time.Parse("02/01/06", strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t.UTC()
	return nil
}

type csvDateTime struct {
	time.Time
}

func (d *csvDateTime) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("02/01/06 15:04:05", s); err == nil {
		d.Time = t.UTC()
		return nil
	}
	if t, err := time.Parse("02/01/06", s); err == nil {
		d.Time = t.UTC()
		return nil
	}
	return fmt.Errorf("invalid datetime %q", s)
}

type tradingRow struct {
	Ticker          string      `csv:"Ticker"`
	TransactionType string      `csv:"Transaction Type"`
	Quantity        csvMoney    `csv:"Quantity"`
	TotalTradeValue csvMoney    `csv:"Total Trade Value"`
	TradeDateTime   csvDateTime `csv:"Trade Date/Time"`
	SettlementDate  csvDate     `csv:"Settlement Date"`
}

type cashRow struct {
	Date     csvDate  `csv:"Date"`
	Activity string   `csv:"Activity"`
	Credit   csvMoney `csv:"Credit"`
	Debit    csvMoney `csv:"Debit"`
}

// LoadTrades parses a trading statement CSV into trade rows ready for
// insertion.
func LoadTrades(r io.Reader) ([]model.Trade, error) {
	rows := []tradingRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse trading csv: %w", err)
	}

	out := make([]model.Trade, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.Trade{
			TradeID:         uuid.New(),
			Ticker:          strings.TrimSpace(row.Ticker),
			TransactionType: strings.TrimSpace(row.TransactionType),
			Quantity:        row.Quantity.Decimal,
			TotalValue:      row.TotalTradeValue.Decimal,
			TradeDate:       row.TradeDateTime.Time,
			SettlementDate:  row.SettlementDate.Time,
		})
	}

	return out, nil
}

// LoadCashFlows parses a cash statement CSV into cash flow events. The net
// flow is credit minus debit, so withdrawals come out negative.
func LoadCashFlows(r io.Reader) ([]model.CashFlowEvent, error) {
	rows := []cashRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse cash csv: %w", err)
	}

	out := make([]model.CashFlowEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.CashFlowEvent{
			CashFlowEventID: uuid.New(),
			Date:            row.Date.Time,
			Activity:        strings.TrimSpace(row.Activity),
			NetFlow:         row.Credit.Decimal.Sub(row.Debit.Decimal),
		})
	}

	return out, nil
}
