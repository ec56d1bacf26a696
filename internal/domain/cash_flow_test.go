package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_IsExternalFlow(t *testing.T) {
	tests := []struct {
		activity string
		expected bool
	}{
		{"Payment Received", true},
		{"payment received - faster payments", true},
		{"Withdrawal", true},
		{"ISA Transfer In", true},
		{"Dividend", false},
		{"Management Fee", false},
		{"Interest on cash", false},
	}

	for _, tc := range tests {
		t.Run(tc.activity, func(t *testing.T) {
			e := CashFlowEvent{Activity: tc.activity}
			require.Equal(t, tc.expected, e.IsExternalFlow())
		})
	}
}
