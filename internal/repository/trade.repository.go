package repository

import (
	"database/sql"
	"fmt"
	"time"

	"trackfolio/internal/db/models/postgres/public/model"
	"trackfolio/internal/db/models/postgres/public/table"
	"trackfolio/internal/domain"

	"github.com/go-jet/jet/v2/qrm"
)

type TradeRepository interface {
	Add(tx *sql.Tx, trades []model.Trade) error
	// List returns the full trade ledger ordered by trade date ascending.
	// Raw transaction type strings are classified into the closed variant
	// here, so nothing downstream re-parses text.
	List() ([]domain.TradeRecord, error)
}

type tradeRepositoryHandler struct {
	Db *sql.DB
}

func NewTradeRepository(db *sql.DB) TradeRepository {
	return tradeRepositoryHandler{Db: db}
}

func (h tradeRepositoryHandler) Add(tx *sql.Tx, trades []model.Trade) error {
	if len(trades) == 0 {
		return nil
	}
	for i := range trades {
		trades[i].CreatedAt = time.Now().UTC()
	}

	query := table.Trade.
		INSERT(table.Trade.AllColumns).
		MODELS(trades)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to add trades: %w", err)
	}

	return nil
}

func (h tradeRepositoryHandler) List() ([]domain.TradeRecord, error) {
	query := table.Trade.
		SELECT(table.Trade.AllColumns).
		ORDER_BY(table.Trade.TradeDate.ASC())

	result := []model.Trade{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}

	out := make([]domain.TradeRecord, 0, len(result))
	for _, t := range result {
		out = append(out, domain.TradeRecord{
			TradeID:        t.TradeID,
			Ticker:         t.Ticker,
			Type:           domain.ParseTransactionType(t.TransactionType),
			Quantity:       t.Quantity,
			TotalValue:     t.TotalValue,
			TradeDate:      t.TradeDate,
			SettlementDate: t.SettlementDate,
		})
	}

	return out, nil
}
