package app

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"trackfolio/internal/db/models/postgres/public/model"
	"trackfolio/internal/domain"
	mock_repository "trackfolio/internal/repository/mocks"
	l1_service "trackfolio/internal/service/l1"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_Run(t *testing.T) {
	t.Run("empty ledger completes with no derived data", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		tradeRepository := mock_repository.NewMockTradeRepository(ctrl)
		cashFlowRepository := mock_repository.NewMockCashFlowRepository(ctrl)
		runRepository := mock_repository.NewMockPrecomputeRunRepository(ctrl)

		runRepository.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(tx *sql.Tx, run model.PrecomputeRun) (*model.PrecomputeRun, error) {
				require.Equal(t, domain.RunStatusInProgress, run.Status)
				run.PrecomputeRunID = uuid.New()
				return &run, nil
			})
		tradeRepository.EXPECT().List().Return([]domain.TradeRecord{}, nil)
		cashFlowRepository.EXPECT().ListExternalFlows().Return([]domain.CashFlowEvent{}, nil)
		runRepository.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(tx *sql.Tx, run *model.PrecomputeRun, columns postgres.ColumnList) (*model.PrecomputeRun, error) {
				require.Equal(t, domain.RunStatusCompleted, run.Status)
				require.NotNil(t, run.CompletedAt)
				require.Nil(t, run.LastError)
				return run, nil
			})

		handler := PrecomputeHandler{
			TradeRepository:         tradeRepository,
			CashFlowRepository:      cashFlowRepository,
			PrecomputeRunRepository: runRepository,
		}

		err := handler.Run(context.Background())
		require.NoError(t, err)
	})

	t.Run("ledger load failure marks the run failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		tradeRepository := mock_repository.NewMockTradeRepository(ctrl)
		runRepository := mock_repository.NewMockPrecomputeRunRepository(ctrl)

		runRepository.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(tx *sql.Tx, run model.PrecomputeRun) (*model.PrecomputeRun, error) {
				run.PrecomputeRunID = uuid.New()
				return &run, nil
			})
		tradeRepository.EXPECT().List().Return(nil, fmt.Errorf("connection refused"))
		runRepository.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(tx *sql.Tx, run *model.PrecomputeRun, columns postgres.ColumnList) (*model.PrecomputeRun, error) {
				require.Equal(t, domain.RunStatusFailed, run.Status)
				require.NotNil(t, run.LastError)
				require.Contains(t, *run.LastError, "connection refused")
				return run, nil
			})

		handler := PrecomputeHandler{
			TradeRepository:         tradeRepository,
			PrecomputeRunRepository: runRepository,
		}

		err := handler.Run(context.Background())
		require.Error(t, err)
	})
}

func Test_buildConvertedPrices(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}

	t.Run("converts via fx and skips empty cells", func(t *testing.T) {
		series := l1_service.NewPriceSeriesFromObservations(
			map[string]map[string]decimal.Decimal{
				"AAPL":     {"2024-03-01": decimal.NewFromInt(170)},
				"GBPUSD=X": {"2024-03-01": decimal.NewFromFloat(1.25)},
			},
			map[string]string{"AAPL": "USD"},
			l1_service.PriceLookupConfig{BackwardDays: 5, ForwardDays: 2},
		)

		handler := PrecomputeHandler{
			CurrencyService: l1_service.NewCurrencyService(l1_service.DefaultFXTable()),
		}

		rows, converted := handler.buildConvertedPrices(context.Background(), series, []string{"AAPL"}, dates)

		// both dates resolve through the backward scan, so both become rows
		require.Len(t, rows, 2)
		require.Equal(t, "USD", rows[0].Currency)
		require.True(t, rows[0].OriginalPrice.Equal(decimal.NewFromInt(170)))
		require.True(t, rows[0].ConvertedPrice.Equal(decimal.NewFromInt(136)))
		require.True(t, converted["AAPL"]["2024-03-01"].Equal(decimal.NewFromInt(136)))
	})

	t.Run("degrades to raw price when conversion fails", func(t *testing.T) {
		series := l1_service.NewPriceSeriesFromObservations(
			map[string]map[string]decimal.Decimal{
				"AAPL": {"2024-03-01": decimal.NewFromInt(170)},
			},
			map[string]string{"AAPL": "USD"},
			l1_service.PriceLookupConfig{BackwardDays: 5, ForwardDays: 2},
		)

		handler := PrecomputeHandler{
			CurrencyService: l1_service.NewCurrencyService(l1_service.DefaultFXTable()),
		}

		rows, converted := handler.buildConvertedPrices(context.Background(), series, []string{"AAPL"}, dates[:1])
		require.Len(t, rows, 1)
		require.True(t, rows[0].ConvertedPrice.Equal(decimal.NewFromInt(170)))
		require.True(t, converted["AAPL"]["2024-03-01"].Equal(decimal.NewFromInt(170)))
	})

	t.Run("priceless tickers produce no rows", func(t *testing.T) {
		series := l1_service.NewPriceSeriesFromObservations(
			map[string]map[string]decimal.Decimal{},
			nil,
			l1_service.PriceLookupConfig{BackwardDays: 5, ForwardDays: 2},
		)

		handler := PrecomputeHandler{
			CurrencyService: l1_service.NewCurrencyService(l1_service.DefaultFXTable()),
		}

		rows, converted := handler.buildConvertedPrices(context.Background(), series, []string{"GHOST"}, dates)
		require.Empty(t, rows)
		require.True(t, converted["GHOST"]["2024-03-01"].IsZero())
	})
}

func Test_discoverLedgerSpan(t *testing.T) {
	trades := []domain.TradeRecord{
		{Ticker: "VUSA.L", TradeDate: time.Date(2024, 2, 10, 14, 30, 0, 0, time.UTC)},
		{Ticker: "AAPL", TradeDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Ticker: "", TradeDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
	}
	flows := []domain.CashFlowEvent{
		{Date: time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC)},
	}

	tickers, minDate := discoverLedgerSpan(trades, flows)

	require.Equal(t, []string{"AAPL", "VUSA.L"}, tickers)
	require.Equal(t, time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC), minDate)
}
