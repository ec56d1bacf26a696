package repository

import (
	"database/sql"
	"fmt"
	"time"

	"trackfolio/internal/db/models/postgres/public/model"
	"trackfolio/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type PrecomputeRunRepository interface {
	Add(tx *sql.Tx, run model.PrecomputeRun) (*model.PrecomputeRun, error)
	Update(tx *sql.Tx, run *model.PrecomputeRun, columns postgres.ColumnList) (*model.PrecomputeRun, error)
	// GetLatest returns the most recently created run. Only the latest row
	// is authoritative - concurrent runs race last-writer-wins.
	GetLatest() (*model.PrecomputeRun, error)
	List() ([]model.PrecomputeRun, error)
}

type precomputeRunRepositoryHandler struct {
	Db *sql.DB
}

func NewPrecomputeRunRepository(db *sql.DB) PrecomputeRunRepository {
	return precomputeRunRepositoryHandler{Db: db}
}

func (h precomputeRunRepositoryHandler) Add(tx *sql.Tx, run model.PrecomputeRun) (*model.PrecomputeRun, error) {
	if run.PrecomputeRunID == uuid.Nil {
		run.PrecomputeRunID = uuid.New()
	}
	run.CreatedAt = time.Now().UTC()
	run.ModifiedAt = time.Now().UTC()

	query := table.PrecomputeRun.
		INSERT(table.PrecomputeRun.AllColumns).
		MODEL(run).
		RETURNING(table.PrecomputeRun.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.PrecomputeRun{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert precompute run: %w", err)
	}

	return &out, nil
}

func (h precomputeRunRepositoryHandler) Update(tx *sql.Tx, run *model.PrecomputeRun, columns postgres.ColumnList) (*model.PrecomputeRun, error) {
	run.ModifiedAt = time.Now().UTC()
	if run.PrecomputeRunID == uuid.Nil {
		return nil, fmt.Errorf("failed to update precompute run - id not provided in inputted model")
	}
	query := table.PrecomputeRun.
		UPDATE(columns).
		MODEL(run).
		RETURNING(table.PrecomputeRun.AllColumns).
		WHERE(table.PrecomputeRun.PrecomputeRunID.EQ(
			postgres.UUID(run.PrecomputeRunID),
		))

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.PrecomputeRun{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update precompute run %s: %w", run.PrecomputeRunID.String(), err)
	}

	return &out, nil
}

func (h precomputeRunRepositoryHandler) GetLatest() (*model.PrecomputeRun, error) {
	query := table.PrecomputeRun.
		SELECT(table.PrecomputeRun.AllColumns).
		ORDER_BY(table.PrecomputeRun.CreatedAt.DESC()).
		LIMIT(1)

	result := model.PrecomputeRun{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest precompute run: %w", err)
	}

	return &result, nil
}

func (h precomputeRunRepositoryHandler) List() ([]model.PrecomputeRun, error) {
	query := table.PrecomputeRun.
		SELECT(table.PrecomputeRun.AllColumns).
		ORDER_BY(table.PrecomputeRun.CreatedAt.ASC())

	result := []model.PrecomputeRun{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list precompute runs: %w", err)
	}

	return result, nil
}
