package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatewise/payment-router/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 9090, cfg.GRPCPort)
	assert.Equal(t, "best_price", cfg.DefaultStrategy)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)

	require.Len(t, cfg.Processors, 3)
	assert.Equal(t, "stripe", cfg.Processors[0].Kind)
	assert.Equal(t, "paypal", cfg.Processors[1].Kind)
	assert.Equal(t, "flutterwave", cfg.Processors[2].Kind)
	assert.InDelta(t, 2.9, cfg.Processors[0].FeePercentage, 0.001)
	assert.InDelta(t, 85, cfg.Processors[2].ReliabilityScore, 0.001)
	assert.Contains(t, cfg.Processors[0].Countries, "*")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GRPC_PORT", "7001")
	t.Setenv("ROUTER_DEFAULT_STRATEGY", "balanced")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("STRIPE_ACTIVE", "false")
	t.Setenv("STRIPE_CURRENCIES", "USD, eur")
	t.Setenv("FLUTTERWAVE_FEE_FIXED", "0.45")

	cfg := config.Load()

	assert.Equal(t, 7001, cfg.GRPCPort)
	assert.Equal(t, "balanced", cfg.DefaultStrategy)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.False(t, cfg.Processors[0].Active)
	assert.Equal(t, []string{"USD", "eur"}, cfg.Processors[0].Currencies)
	assert.InDelta(t, 0.45, cfg.Processors[2].FeeFixed, 0.001)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-number")
	t.Setenv("PAYPAL_ACTIVE", "definitely")

	cfg := config.Load()

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.True(t, cfg.Processors[1].Active)
}
