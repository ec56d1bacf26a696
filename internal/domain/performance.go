package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PerformanceSummary is the singleton snapshot of portfolio performance,
// fully overwritten on every precompute run. IRR, TWR and volatility are
// approximate rates and stay floats; everything monetary is exact.
type PerformanceSummary struct {
	IRR                  float64
	TWR                  float64
	AnnualizedVolatility float64
	TotalInvested        decimal.Decimal
	TotalWithdrawn       decimal.Decimal
	CurrentValue         decimal.Decimal
	ProfitLoss           decimal.Decimal
	ReturnPercentage     decimal.Decimal
	CalculatedAt         time.Time
}

// PrecomputeRunStatus values for the run log state machine.
const (
	RunStatusNotStarted = "not_started"
	RunStatusInProgress = "in_progress"
	RunStatusCompleted  = "completed"
	RunStatusFailed     = "failed"
)
