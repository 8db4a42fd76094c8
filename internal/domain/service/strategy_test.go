package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatewise/payment-router/internal/domain/port"
	"github.com/gatewise/payment-router/internal/domain/service"
	"github.com/gatewise/payment-router/internal/domain/valueobject"
)

func TestNewStrategy(t *testing.T) {
	t.Run("resolves each known identifier", func(t *testing.T) {
		for name, want := range map[string]service.SelectionStrategy{
			"best_price":          service.BestPriceStrategy{},
			"highest_reliability": service.HighestReliabilityStrategy{},
			"balanced":            service.BalancedStrategy{},
		} {
			got, err := service.NewStrategy(name)
			require.NoError(t, err, name)
			assert.IsType(t, want, got, name)
		}
	})

	t.Run("unknown identifier returns a typed error", func(t *testing.T) {
		_, err := service.NewStrategy("fastest")

		var unknownErr *valueobject.UnknownStrategyError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, "fastest", unknownErr.Name)
	})
}

func TestBestPriceStrategy(t *testing.T) {
	t.Run("picks the lowest total fee", func(t *testing.T) {
		expensive := newFakeProcessor("expensive", true, 2.9, 0.30, 95, []string{"USD"}, []string{"*"})
		cheap := newFakeProcessor("cheap", true, 1.4, 0.20, 85, []string{"USD"}, []string{"*"})

		selected := service.BestPriceStrategy{}.Select(
			[]port.PaymentProcessor{expensive, cheap},
			mustTransaction(100, "USD", "US"),
		)

		require.NotNil(t, selected)
		assert.Equal(t, "cheap", selected.Name())
	})

	t.Run("fee ties resolve to the earliest processor", func(t *testing.T) {
		first := newFakeProcessor("first", true, 2, 0.10, 80, []string{"USD"}, []string{"*"})
		second := newFakeProcessor("second", true, 2, 0.10, 99, []string{"USD"}, []string{"*"})

		selected := service.BestPriceStrategy{}.Select(
			[]port.PaymentProcessor{first, second},
			mustTransaction(100, "USD", "US"),
		)

		require.NotNil(t, selected)
		assert.Equal(t, "first", selected.Name())
	})

	t.Run("returns nil when nothing is eligible", func(t *testing.T) {
		inactive := newFakeProcessor("inactive", false, 1, 0, 90, []string{"USD"}, []string{"*"})

		selected := service.BestPriceStrategy{}.Select(
			[]port.PaymentProcessor{inactive},
			mustTransaction(100, "USD", "US"),
		)

		assert.Nil(t, selected)
	})
}

func TestHighestReliabilityStrategy(t *testing.T) {
	t.Run("picks the highest score regardless of fee", func(t *testing.T) {
		cheap := newFakeProcessor("cheap", true, 1.4, 0.20, 85, []string{"USD"}, []string{"*"})
		reliable := newFakeProcessor("reliable", true, 2.9, 0.30, 95, []string{"USD"}, []string{"*"})

		selected := service.HighestReliabilityStrategy{}.Select(
			[]port.PaymentProcessor{cheap, reliable},
			mustTransaction(100, "USD", "US"),
		)

		require.NotNil(t, selected)
		assert.Equal(t, "reliable", selected.Name())
	})

	t.Run("score ties resolve to the earliest processor", func(t *testing.T) {
		first := newFakeProcessor("first", true, 3, 0.30, 90, []string{"USD"}, []string{"*"})
		second := newFakeProcessor("second", true, 1, 0.10, 90, []string{"USD"}, []string{"*"})

		selected := service.HighestReliabilityStrategy{}.Select(
			[]port.PaymentProcessor{first, second},
			mustTransaction(100, "USD", "US"),
		)

		require.NotNil(t, selected)
		assert.Equal(t, "first", selected.Name())
	})

	t.Run("never picks an inactive processor even with the top score", func(t *testing.T) {
		down := newFakeProcessor("down", false, 1, 0, 99, []string{"USD"}, []string{"*"})
		up := newFakeProcessor("up", true, 3, 0.30, 70, []string{"USD"}, []string{"*"})

		selected := service.HighestReliabilityStrategy{}.Select(
			[]port.PaymentProcessor{down, up},
			mustTransaction(100, "USD", "US"),
		)

		require.NotNil(t, selected)
		assert.Equal(t, "up", selected.Name())
	})
}

func TestBalancedStrategy(t *testing.T) {
	t.Run("prefers a cheap reliable processor over extremes", func(t *testing.T) {
		// cheap but flaky: fee term 1.6/3.2=0.5 -> 0.5*0.5 + 0.5*0.40 = 0.45
		// expensive but solid: 0.5*1 + 0.5*0.05 = 0.525
		// middle ground:       fee 2.3 -> 0.5*0.71875 + 0.5*0.10 = 0.409
		flaky := newFakeProcessor("flaky", true, 1.4, 0.20, 60, []string{"USD"}, []string{"*"})
		solid := newFakeProcessor("solid", true, 2.9, 0.30, 95, []string{"USD"}, []string{"*"})
		middle := newFakeProcessor("middle", true, 2.0, 0.30, 90, []string{"USD"}, []string{"*"})

		selected := service.BalancedStrategy{}.Select(
			[]port.PaymentProcessor{flaky, solid, middle},
			mustTransaction(100, "USD", "US"),
		)

		require.NotNil(t, selected)
		assert.Equal(t, "middle", selected.Name())
	})

	t.Run("identical candidates resolve to the earliest", func(t *testing.T) {
		first := newFakeProcessor("first", true, 2, 0.20, 90, []string{"USD"}, []string{"*"})
		second := newFakeProcessor("second", true, 2, 0.20, 90, []string{"USD"}, []string{"*"})

		selected := service.BalancedStrategy{}.Select(
			[]port.PaymentProcessor{first, second},
			mustTransaction(100, "USD", "US"),
		)

		require.NotNil(t, selected)
		assert.Equal(t, "first", selected.Name())
	})

	t.Run("handles all-zero fees", func(t *testing.T) {
		free := newFakeProcessor("free", true, 0, 0, 80, []string{"USD"}, []string{"*"})
		alsoFree := newFakeProcessor("also-free", true, 0, 0, 95, []string{"USD"}, []string{"*"})

		selected := service.BalancedStrategy{}.Select(
			[]port.PaymentProcessor{free, alsoFree},
			mustTransaction(100, "USD", "US"),
		)

		require.NotNil(t, selected)
		assert.Equal(t, "also-free", selected.Name())
	})

	t.Run("returns nil when nothing is eligible", func(t *testing.T) {
		selected := service.BalancedStrategy{}.Select(nil, mustTransaction(100, "USD", "US"))
		assert.Nil(t, selected)
	})
}
