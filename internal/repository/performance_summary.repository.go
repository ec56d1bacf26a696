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

// the summary is a singleton row - every run overwrites it in full
const performanceSummarySingletonID = 1

type PerformanceSummaryRepository interface {
	Overwrite(tx *sql.Tx, summary model.PerformanceSummary) error
	Get() (*domain.PerformanceSummary, error)
	Clear(tx *sql.Tx) error
}

type performanceSummaryRepositoryHandler struct {
	Db *sql.DB
}

func NewPerformanceSummaryRepository(db *sql.DB) PerformanceSummaryRepository {
	return performanceSummaryRepositoryHandler{Db: db}
}

func (h performanceSummaryRepositoryHandler) Overwrite(tx *sql.Tx, summary model.PerformanceSummary) error {
	summary.SingletonID = performanceSummarySingletonID
	summary.CreatedAt = time.Now().UTC()

	query := PerformanceSummary.
		INSERT(PerformanceSummary.AllColumns).
		MODEL(summary).
		ON_CONFLICT(
			PerformanceSummary.SingletonID,
		).DO_UPDATE(
		SET(
			PerformanceSummary.Irr.SET(PerformanceSummary.EXCLUDED.Irr),
			PerformanceSummary.Twr.SET(PerformanceSummary.EXCLUDED.Twr),
			PerformanceSummary.AnnualizedVolatility.SET(PerformanceSummary.EXCLUDED.AnnualizedVolatility),
			PerformanceSummary.TotalInvested.SET(PerformanceSummary.EXCLUDED.TotalInvested),
			PerformanceSummary.TotalWithdrawn.SET(PerformanceSummary.EXCLUDED.TotalWithdrawn),
			PerformanceSummary.CurrentValue.SET(PerformanceSummary.EXCLUDED.CurrentValue),
			PerformanceSummary.ProfitLoss.SET(PerformanceSummary.EXCLUDED.ProfitLoss),
			PerformanceSummary.ReturnPercentage.SET(PerformanceSummary.EXCLUDED.ReturnPercentage),
			PerformanceSummary.CalculatedAt.SET(PerformanceSummary.EXCLUDED.CalculatedAt),
			PerformanceSummary.CreatedAt.SET(PerformanceSummary.EXCLUDED.CreatedAt),
		),
	)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to overwrite performance summary: %w", err)
	}

	return nil
}

func (h performanceSummaryRepositoryHandler) Get() (*domain.PerformanceSummary, error) {
	query := PerformanceSummary.
		SELECT(PerformanceSummary.AllColumns).
		WHERE(PerformanceSummary.SingletonID.EQ(Int32(performanceSummarySingletonID)))

	result := model.PerformanceSummary{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get performance summary: %w", err)
	}

	return &domain.PerformanceSummary{
		IRR:                  result.Irr,
		TWR:                  result.Twr,
		AnnualizedVolatility: result.AnnualizedVolatility,
		TotalInvested:        result.TotalInvested,
		TotalWithdrawn:       result.TotalWithdrawn,
		CurrentValue:         result.CurrentValue,
		ProfitLoss:           result.ProfitLoss,
		ReturnPercentage:     result.ReturnPercentage,
		CalculatedAt:         result.CalculatedAt,
	}, nil
}

func (h performanceSummaryRepositoryHandler) Clear(tx *sql.Tx) error {
	_, err := PerformanceSummary.DELETE().WHERE(Bool(true)).Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to clear performance summary: %w", err)
	}
	return nil
}
