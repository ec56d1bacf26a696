package l1_service

import (
	"context"
	"testing"
	"time"

	"trackfolio/internal/domain"
	mock_repository "trackfolio/internal/repository/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Test_PriceSeries_Resolve(t *testing.T) {
	config := PriceLookupConfig{BackwardDays: 10, ForwardDays: 3}
	series := NewPriceSeriesFromObservations(map[string]map[string]decimal.Decimal{
		"VUSA.L": {
			"2024-03-01": decimal.NewFromInt(70),
			"2024-03-08": decimal.NewFromInt(72),
			"2024-03-15": decimal.Zero,
		},
	}, nil, config)

	t.Run("exact hit", func(t *testing.T) {
		got := series.Resolve("VUSA.L", date(2024, 3, 8))
		require.True(t, got.Equal(decimal.NewFromInt(72)))
	})

	t.Run("falls back to last known price", func(t *testing.T) {
		got := series.Resolve("VUSA.L", date(2024, 3, 11))
		require.True(t, got.Equal(decimal.NewFromInt(72)))
	})

	t.Run("backward search wins over forward", func(t *testing.T) {
		// both directions have observations in range; backward runs first
		got := series.Resolve("VUSA.L", date(2024, 3, 6))
		require.True(t, got.Equal(decimal.NewFromInt(70)))
	})

	t.Run("forward search covers pre-history dates", func(t *testing.T) {
		got := series.Resolve("VUSA.L", date(2024, 2, 28))
		require.True(t, got.Equal(decimal.NewFromInt(70)))
	})

	t.Run("zero observations are skipped", func(t *testing.T) {
		// 03-15 holds an explicit zero; the scan keeps going back to 03-08
		got := series.Resolve("VUSA.L", date(2024, 3, 15))
		require.True(t, got.Equal(decimal.NewFromInt(72)))
	})

	t.Run("outside the window resolves to zero", func(t *testing.T) {
		got := series.Resolve("VUSA.L", date(2024, 6, 1))
		require.True(t, got.IsZero())
	})

	t.Run("unknown ticker resolves to zero", func(t *testing.T) {
		got := series.Resolve("NOPE", date(2024, 3, 8))
		require.True(t, got.IsZero())
	})
}

func Test_PriceSeries_FXRate(t *testing.T) {
	config := PriceLookupConfig{BackwardDays: 5, ForwardDays: 3}
	series := NewPriceSeriesFromObservations(map[string]map[string]decimal.Decimal{
		"GBPUSD=X": {
			"2024-03-01": decimal.NewFromFloat(1.25),
		},
	}, nil, config)

	rate := series.FXRate("GBPUSD=X", date(2024, 3, 4))
	require.NotNil(t, rate)
	require.True(t, rate.Equal(decimal.NewFromFloat(1.25)))

	require.Nil(t, series.FXRate("GBPUSD=X", date(2024, 6, 1)))
	require.Nil(t, series.FXRate("EURGBP=X", date(2024, 3, 1)))
}

func Test_BuildPriceSeries(t *testing.T) {
	start := date(2024, 3, 1)
	end := date(2024, 3, 10)

	t.Run("fetches fx series for non-base currencies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketData := mock_repository.NewMockMarketDataRepository(ctrl)

		config := PriceLookupConfig{BackwardDays: 90, ForwardDays: 30, LookbackBufferDays: 7}
		fetchStart := start.AddDate(0, 0, -7)

		marketData.EXPECT().
			GetHistoricalPrices(gomock.Any(), "AAPL", fetchStart, end).
			Return([]domain.AssetPrice{
				{Ticker: "AAPL", Date: date(2024, 3, 1), Price: decimal.NewFromInt(170), Currency: "USD"},
			}, nil)
		marketData.EXPECT().
			GetHistoricalPrices(gomock.Any(), "GBPUSD=X", fetchStart, end).
			Return([]domain.AssetPrice{
				{Ticker: "GBPUSD=X", Date: date(2024, 3, 1), Price: decimal.NewFromFloat(1.25)},
			}, nil)

		svc := NewPriceService(marketData, NewCurrencyService(DefaultFXTable()), config)
		series, err := svc.BuildPriceSeries(context.Background(), []string{"AAPL"}, start, end)
		require.NoError(t, err)

		require.Equal(t, "USD", series.Currency("AAPL"))
		require.True(t, series.Resolve("AAPL", date(2024, 3, 1)).Equal(decimal.NewFromInt(170)))
		rate := series.FXRate("GBPUSD=X", date(2024, 3, 1))
		require.NotNil(t, rate)
		require.True(t, rate.Equal(decimal.NewFromFloat(1.25)))
	})

	t.Run("provider failure skips the ticker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketData := mock_repository.NewMockMarketDataRepository(ctrl)

		config := DefaultPriceLookupConfig()
		marketData.EXPECT().
			GetHistoricalPrices(gomock.Any(), "BAD", gomock.Any(), gomock.Any()).
			Return(nil, context.DeadlineExceeded)

		svc := NewPriceService(marketData, NewCurrencyService(DefaultFXTable()), config)
		series, err := svc.BuildPriceSeries(context.Background(), []string{"BAD"}, start, end)
		require.NoError(t, err)

		require.True(t, series.Resolve("BAD", date(2024, 3, 1)).IsZero())
		require.Equal(t, BaseCurrency, series.Currency("BAD"))
	})

	t.Run("base currency tickers need no fx fetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketData := mock_repository.NewMockMarketDataRepository(ctrl)

		config := DefaultPriceLookupConfig()
		marketData.EXPECT().
			GetHistoricalPrices(gomock.Any(), "VUSA.L", gomock.Any(), gomock.Any()).
			Return([]domain.AssetPrice{
				{Ticker: "VUSA.L", Date: date(2024, 3, 1), Price: decimal.NewFromInt(70), Currency: "GBP"},
			}, nil)

		svc := NewPriceService(marketData, NewCurrencyService(DefaultFXTable()), config)
		series, err := svc.BuildPriceSeries(context.Background(), []string{"VUSA.L"}, start, end)
		require.NoError(t, err)
		require.Equal(t, "GBP", series.Currency("VUSA.L"))
	})
}
