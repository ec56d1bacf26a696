package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ParseTransactionType(t *testing.T) {
	tests := []struct {
		raw      string
		expected TransactionType
	}{
		{"Market buy", TransactionTypeBuy},
		{"LIMIT BUY", TransactionTypeBuy},
		{"Market sell", TransactionTypeSell},
		{"Dividend Reinvestment", TransactionTypeDividendReinvestment},
		{"dividend reinvestment (DRIP)", TransactionTypeDividendReinvestment},
		{"Interest", TransactionTypeOther},
		{"", TransactionTypeOther},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			require.Equal(t, tc.expected, ParseTransactionType(tc.raw))
		})
	}
}

func Test_TransactionType_holdingsEffect(t *testing.T) {
	require.True(t, TransactionTypeBuy.IncreasesHoldings())
	require.True(t, TransactionTypeDividendReinvestment.IncreasesHoldings())
	require.False(t, TransactionTypeSell.IncreasesHoldings())

	require.True(t, TransactionTypeSell.DecreasesHoldings())
	require.False(t, TransactionTypeBuy.DecreasesHoldings())
	require.False(t, TransactionTypeOther.DecreasesHoldings())
	require.False(t, TransactionTypeOther.IncreasesHoldings())
}
