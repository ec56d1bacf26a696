package repository

import (
	"database/sql"
	"fmt"
	"time"

	"trackfolio/internal/db/models/postgres/public/model"
	"trackfolio/internal/db/models/postgres/public/table"
	"trackfolio/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type CashFlowRepository interface {
	Add(tx *sql.Tx, events []model.CashFlowEvent) error
	// List returns the full cash ledger ordered by date ascending.
	List() ([]domain.CashFlowEvent, error)
	// ListExternalFlows returns only events that move money across the
	// portfolio boundary (payments in, withdrawals, ISA transfers in).
	ListExternalFlows() ([]domain.CashFlowEvent, error)
}

type cashFlowRepositoryHandler struct {
	Db *sql.DB
}

func NewCashFlowRepository(db *sql.DB) CashFlowRepository {
	return cashFlowRepositoryHandler{Db: db}
}

func (h cashFlowRepositoryHandler) Add(tx *sql.Tx, events []model.CashFlowEvent) error {
	if len(events) == 0 {
		return nil
	}
	for i := range events {
		events[i].CreatedAt = time.Now().UTC()
	}

	query := table.CashFlowEvent.
		INSERT(table.CashFlowEvent.AllColumns).
		MODELS(events)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to add cash flow events: %w", err)
	}

	return nil
}

func (h cashFlowRepositoryHandler) List() ([]domain.CashFlowEvent, error) {
	query := table.CashFlowEvent.
		SELECT(table.CashFlowEvent.AllColumns).
		ORDER_BY(table.CashFlowEvent.Date.ASC())

	return h.queryEvents(query)
}

func (h cashFlowRepositoryHandler) ListExternalFlows() ([]domain.CashFlowEvent, error) {
	activity := LOWER(table.CashFlowEvent.Activity)
	query := table.CashFlowEvent.
		SELECT(table.CashFlowEvent.AllColumns).
		WHERE(
			OR(
				activity.LIKE(String("%payment received%")),
				activity.LIKE(String("%withdrawal%")),
				activity.LIKE(String("%isa transfer in%")),
			),
		).
		ORDER_BY(table.CashFlowEvent.Date.ASC())

	return h.queryEvents(query)
}

func (h cashFlowRepositoryHandler) queryEvents(query SelectStatement) ([]domain.CashFlowEvent, error) {
	result := []model.CashFlowEvent{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash flow events: %w", err)
	}

	out := make([]domain.CashFlowEvent, 0, len(result))
	for _, e := range result {
		out = append(out, domain.CashFlowEvent{
			CashFlowEventID: e.CashFlowEventID,
			Date:            e.Date,
			Activity:        e.Activity,
			NetFlow:         e.NetFlow,
		})
	}

	return out, nil
}
