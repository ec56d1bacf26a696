package l1_service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_Convert(t *testing.T) {
	svc := NewCurrencyService(DefaultFXTable())
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	t.Run("base currency passes through", func(t *testing.T) {
		out, err := svc.Convert(decimal.NewFromInt(123), "GBP", date, nil)
		require.NoError(t, err)
		require.True(t, out.Equal(decimal.NewFromInt(123)))
	})

	t.Run("pence divide by 100", func(t *testing.T) {
		out, err := svc.Convert(decimal.NewFromInt(100), "GBp", date, nil)
		require.NoError(t, err)
		require.True(t, out.Equal(decimal.NewFromInt(1)))
	})

	t.Run("usd divides by the pair rate", func(t *testing.T) {
		rate := decimal.NewFromFloat(1.25)
		out, err := svc.Convert(decimal.NewFromInt(100), "USD", date, &rate)
		require.NoError(t, err)
		require.True(t, out.Equal(decimal.NewFromInt(80)), out.String())
	})

	t.Run("eur multiplies by the pair rate", func(t *testing.T) {
		rate := decimal.NewFromFloat(0.85)
		out, err := svc.Convert(decimal.NewFromInt(100), "EUR", date, &rate)
		require.NoError(t, err)
		require.True(t, out.Equal(decimal.NewFromInt(85)), out.String())
	})

	t.Run("unknown currency fails", func(t *testing.T) {
		rate := decimal.NewFromFloat(150.0)
		_, err := svc.Convert(decimal.NewFromInt(100), "JPY", date, &rate)
		require.Error(t, err)
		require.IsType(t, ConversionError{}, err)
	})

	t.Run("missing rate fails", func(t *testing.T) {
		_, err := svc.Convert(decimal.NewFromInt(100), "USD", date, nil)
		require.Error(t, err)
		require.IsType(t, ConversionError{}, err)
	})

	t.Run("zero rate fails", func(t *testing.T) {
		rate := decimal.Zero
		_, err := svc.Convert(decimal.NewFromInt(100), "USD", date, &rate)
		require.Error(t, err)
		require.IsType(t, ConversionError{}, err)
	})
}

func Test_FXTicker(t *testing.T) {
	svc := NewCurrencyService(DefaultFXTable())

	fx, ok := svc.FXTicker("USD")
	require.True(t, ok)
	require.Equal(t, "GBPUSD=X", fx)

	fx, ok = svc.FXTicker("EUR")
	require.True(t, ok)
	require.Equal(t, "EURGBP=X", fx)

	_, ok = svc.FXTicker("JPY")
	require.False(t, ok)
}
