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

type PortfolioValueRepository interface {
	Add(tx *sql.Tx, values []model.PortfolioValue) error
	List() ([]domain.DailyValuation, error)
	Clear(tx *sql.Tx) error
}

type portfolioValueRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioValueRepository(db *sql.DB) PortfolioValueRepository {
	return portfolioValueRepositoryHandler{Db: db}
}

func (h portfolioValueRepositoryHandler) Add(tx *sql.Tx, values []model.PortfolioValue) error {
	if len(values) == 0 {
		return nil
	}
	for i := range values {
		values[i].CreatedAt = time.Now().UTC()
	}

	for _, batch := range batches(values, insertBatchSize) {
		query := PortfolioValue.
			INSERT(PortfolioValue.AllColumns).
			MODELS(batch).
			ON_CONFLICT(
				PortfolioValue.Date,
			).DO_UPDATE(
			SET(
				PortfolioValue.TotalValue.SET(PortfolioValue.EXCLUDED.TotalValue),
				PortfolioValue.InvestedValue.SET(PortfolioValue.EXCLUDED.InvestedValue),
			),
		)

		_, err := query.Exec(tx)
		if err != nil {
			return fmt.Errorf("failed to add portfolio values: %w", err)
		}
	}

	return nil
}

func (h portfolioValueRepositoryHandler) List() ([]domain.DailyValuation, error) {
	query := PortfolioValue.
		SELECT(PortfolioValue.AllColumns).
		ORDER_BY(PortfolioValue.Date.ASC())

	result := []model.PortfolioValue{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio values: %w", err)
	}

	out := make([]domain.DailyValuation, 0, len(result))
	for _, v := range result {
		out = append(out, domain.DailyValuation{
			Date:          v.Date,
			TotalValue:    v.TotalValue,
			InvestedValue: v.InvestedValue,
		})
	}

	return out, nil
}

func (h portfolioValueRepositoryHandler) Clear(tx *sql.Tx) error {
	_, err := PortfolioValue.DELETE().WHERE(Bool(true)).Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to clear portfolio values: %w", err)
	}
	return nil
}
