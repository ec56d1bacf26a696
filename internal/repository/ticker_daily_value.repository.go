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

type TickerDailyValueRepository interface {
	Add(tx *sql.Tx, values []model.TickerDailyValue) error
	List() ([]domain.TickerDailyValue, error)
	Clear(tx *sql.Tx) error
}

type tickerDailyValueRepositoryHandler struct {
	Db *sql.DB
}

func NewTickerDailyValueRepository(db *sql.DB) TickerDailyValueRepository {
	return tickerDailyValueRepositoryHandler{Db: db}
}

func (h tickerDailyValueRepositoryHandler) Add(tx *sql.Tx, values []model.TickerDailyValue) error {
	if len(values) == 0 {
		return nil
	}
	for i := range values {
		values[i].CreatedAt = time.Now().UTC()
	}

	for _, batch := range batches(values, insertBatchSize) {
		query := TickerDailyValue.
			INSERT(TickerDailyValue.AllColumns).
			MODELS(batch).
			ON_CONFLICT(
				TickerDailyValue.Date, TickerDailyValue.Ticker,
			).DO_UPDATE(
			SET(
				TickerDailyValue.Value.SET(TickerDailyValue.EXCLUDED.Value),
			),
		)

		_, err := query.Exec(tx)
		if err != nil {
			return fmt.Errorf("failed to add ticker daily values: %w", err)
		}
	}

	return nil
}

func (h tickerDailyValueRepositoryHandler) List() ([]domain.TickerDailyValue, error) {
	query := TickerDailyValue.
		SELECT(TickerDailyValue.AllColumns).
		ORDER_BY(TickerDailyValue.Ticker.ASC(), TickerDailyValue.Date.ASC())

	result := []model.TickerDailyValue{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list ticker daily values: %w", err)
	}

	out := make([]domain.TickerDailyValue, 0, len(result))
	for _, v := range result {
		out = append(out, domain.TickerDailyValue{
			Date:   v.Date,
			Ticker: v.Ticker,
			Value:  v.Value,
		})
	}

	return out, nil
}

func (h tickerDailyValueRepositoryHandler) Clear(tx *sql.Tx) error {
	_, err := TickerDailyValue.DELETE().WHERE(Bool(true)).Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to clear ticker daily values: %w", err)
	}
	return nil
}
