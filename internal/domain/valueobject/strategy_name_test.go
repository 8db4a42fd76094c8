package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatewise/payment-router/internal/domain/valueobject"
)

func TestNewStrategyName(t *testing.T) {
	t.Run("accepts the known strategies", func(t *testing.T) {
		for _, name := range []string{"best_price", "highest_reliability", "balanced"} {
			got, err := valueobject.NewStrategyName(name)
			require.NoError(t, err, name)
			assert.Equal(t, name, got.String())
			assert.False(t, got.IsZero())
		}
	})

	t.Run("rejects unknown identifiers with a typed error", func(t *testing.T) {
		_, err := valueobject.NewStrategyName("fastest")

		var unknownErr *valueobject.UnknownStrategyError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, "fastest", unknownErr.Name)
		assert.Equal(t, `unknown routing strategy: "fastest"`, err.Error())
	})

	t.Run("matching is case-sensitive", func(t *testing.T) {
		_, err := valueobject.NewStrategyName("BEST_PRICE")
		assert.Error(t, err)
	})

	t.Run("empty string is not a strategy", func(t *testing.T) {
		_, err := valueobject.NewStrategyName("")
		assert.Error(t, err)
	})
}
