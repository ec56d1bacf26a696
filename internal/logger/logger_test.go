package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_FromContext(t *testing.T) {
	t.Run("round trips through context", func(t *testing.T) {
		log := New()
		ctx := NewContext(context.Background(), log)
		require.Same(t, log, FromContext(ctx))
	})

	t.Run("missing logger falls back to a fresh one", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}
