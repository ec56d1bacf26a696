package repository

import (
	"database/sql"
	"fmt"
	"time"

	"trackfolio/internal/db/models/postgres/public/model"
	. "trackfolio/internal/db/models/postgres/public/table"
	"trackfolio/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
)

type TickerPriceRepository interface {
	Add(tx *sql.Tx, prices []model.TickerPrice) error
	List(ticker string) ([]domain.TickerPrice, error)
	ListAll() ([]domain.TickerPrice, error)
	Clear(tx *sql.Tx) error
}

type tickerPriceRepositoryHandler struct {
	Db *sql.DB
}

func NewTickerPriceRepository(db *sql.DB) TickerPriceRepository {
	return tickerPriceRepositoryHandler{Db: db}
}

func (h tickerPriceRepositoryHandler) Add(tx *sql.Tx, prices []model.TickerPrice) error {
	if len(prices) == 0 {
		return nil
	}
	for i := range prices {
		prices[i].CreatedAt = time.Now().UTC()
	}

	for _, batch := range batches(prices, insertBatchSize) {
		query := TickerPrice.
			INSERT(TickerPrice.AllColumns).
			MODELS(batch).
			ON_CONFLICT(
				TickerPrice.Ticker, TickerPrice.Date,
			).DO_UPDATE(
			SET(
				TickerPrice.Currency.SET(TickerPrice.EXCLUDED.Currency),
				TickerPrice.OriginalPrice.SET(TickerPrice.EXCLUDED.OriginalPrice),
				TickerPrice.ConvertedPrice.SET(TickerPrice.EXCLUDED.ConvertedPrice),
			),
		)

		_, err := query.Exec(tx)
		if err != nil {
			return fmt.Errorf("failed to add ticker prices: %w", err)
		}
	}

	return nil
}

func (h tickerPriceRepositoryHandler) List(ticker string) ([]domain.TickerPrice, error) {
	query := TickerPrice.
		SELECT(TickerPrice.AllColumns).
		WHERE(TickerPrice.Ticker.EQ(String(ticker))).
		ORDER_BY(TickerPrice.Date.ASC())

	return h.query(query)
}

func (h tickerPriceRepositoryHandler) ListAll() ([]domain.TickerPrice, error) {
	query := TickerPrice.
		SELECT(TickerPrice.AllColumns).
		ORDER_BY(TickerPrice.Ticker.ASC(), TickerPrice.Date.ASC())

	return h.query(query)
}

func (h tickerPriceRepositoryHandler) query(query SelectStatement) ([]domain.TickerPrice, error) {
	result := []model.TickerPrice{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list ticker prices: %w", err)
	}

	out := make([]domain.TickerPrice, 0, len(result))
	for _, p := range result {
		out = append(out, domain.TickerPrice{
			Ticker:         p.Ticker,
			Date:           p.Date,
			Currency:       p.Currency,
			OriginalPrice:  p.OriginalPrice,
			ConvertedPrice: p.ConvertedPrice,
		})
	}

	return out, nil
}

func (h tickerPriceRepositoryHandler) Clear(tx *sql.Tx) error {
	_, err := TickerPrice.DELETE().WHERE(Bool(true)).Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to clear ticker prices: %w", err)
	}
	return nil
}
