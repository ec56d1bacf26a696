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

type MonthlyContributionRepository interface {
	Add(tx *sql.Tx, contributions []model.MonthlyContribution) error
	List() ([]domain.MonthlyContribution, error)
	Clear(tx *sql.Tx) error
}

type monthlyContributionRepositoryHandler struct {
	Db *sql.DB
}

func NewMonthlyContributionRepository(db *sql.DB) MonthlyContributionRepository {
	return monthlyContributionRepositoryHandler{Db: db}
}

func (h monthlyContributionRepositoryHandler) Add(tx *sql.Tx, contributions []model.MonthlyContribution) error {
	if len(contributions) == 0 {
		return nil
	}
	for i := range contributions {
		contributions[i].CreatedAt = time.Now().UTC()
	}

	query := MonthlyContribution.
		INSERT(MonthlyContribution.AllColumns).
		MODELS(contributions).
		ON_CONFLICT(
			MonthlyContribution.Month,
		).DO_UPDATE(
		SET(
			MonthlyContribution.NetValue.SET(MonthlyContribution.EXCLUDED.NetValue),
		),
	)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add monthly contributions: %w", err)
	}

	return nil
}

func (h monthlyContributionRepositoryHandler) List() ([]domain.MonthlyContribution, error) {
	query := MonthlyContribution.
		SELECT(MonthlyContribution.AllColumns).
		ORDER_BY(MonthlyContribution.Month.ASC())

	result := []model.MonthlyContribution{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly contributions: %w", err)
	}

	out := make([]domain.MonthlyContribution, 0, len(result))
	for _, c := range result {
		out = append(out, domain.MonthlyContribution{
			Month:    c.Month,
			NetValue: c.NetValue,
		})
	}

	return out, nil
}

func (h monthlyContributionRepositoryHandler) Clear(tx *sql.Tx) error {
	_, err := MonthlyContribution.DELETE().WHERE(Bool(true)).Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to clear monthly contributions: %w", err)
	}
	return nil
}
