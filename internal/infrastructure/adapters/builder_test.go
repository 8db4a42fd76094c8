package adapters_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatewise/payment-router/internal/infrastructure/adapters"
	"github.com/gatewise/payment-router/internal/infrastructure/config"
)

func stripeConfig() config.ProcessorConfig {
	return config.ProcessorConfig{
		Kind:             "stripe",
		Name:             "Stripe",
		Active:           true,
		FeePercentage:    2.9,
		FeeFixed:         0.30,
		ReliabilityScore: 95,
		Currencies:       []string{"USD", "EUR"},
		Countries:        []string{"*"},
		Credentials:      map[string]string{"api_key": "sk_test_123"},
	}
}

func TestNew(t *testing.T) {
	t.Run("builds each known kind", func(t *testing.T) {
		for _, kind := range []string{"stripe", "paypal", "flutterwave"} {
			cfg := stripeConfig()
			cfg.Kind = kind

			processor, err := adapters.New(cfg, slog.Default())
			require.NoError(t, err, kind)
			assert.Equal(t, "Stripe", processor.Name())
			assert.True(t, processor.SupportsCurrency("usd"))
		}
	})

	t.Run("rejects an unknown kind", func(t *testing.T) {
		cfg := stripeConfig()
		cfg.Kind = "square"

		_, err := adapters.New(cfg, slog.Default())
		assert.Error(t, err)
	})

	t.Run("rejects a negative fee schedule", func(t *testing.T) {
		cfg := stripeConfig()
		cfg.FeePercentage = -1

		_, err := adapters.New(cfg, slog.Default())
		assert.Error(t, err)
	})
}

func TestBuildRegistry(t *testing.T) {
	t.Run("registers all valid processors in order", func(t *testing.T) {
		paypal := stripeConfig()
		paypal.Kind = "paypal"
		paypal.Name = "PayPal"

		registry := adapters.BuildRegistry([]config.ProcessorConfig{stripeConfig(), paypal}, slog.Default())

		processors := registry.List()
		require.Len(t, processors, 2)
		assert.Equal(t, "Stripe", processors[0].Name())
		assert.Equal(t, "PayPal", processors[1].Name())
	})

	t.Run("skips a bad entry and keeps the rest", func(t *testing.T) {
		bad := stripeConfig()
		bad.Kind = "square"
		bad.Name = "Square"

		registry := adapters.BuildRegistry([]config.ProcessorConfig{bad, stripeConfig()}, slog.Default())

		processors := registry.List()
		require.Len(t, processors, 1)
		assert.Equal(t, "Stripe", processors[0].Name())
	})
}
