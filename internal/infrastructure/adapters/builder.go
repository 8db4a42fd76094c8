package adapters

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/gatewise/payment-router/internal/domain/port"
	"github.com/gatewise/payment-router/internal/domain/service"
	"github.com/gatewise/payment-router/internal/domain/valueobject"
	"github.com/gatewise/payment-router/internal/infrastructure/config"
)

// New constructs the adapter described by the processor configuration.
func New(cfg config.ProcessorConfig, logger *slog.Logger) (port.PaymentProcessor, error) {
	fees, err := valueobject.NewFeeSchedule(
		decimal.NewFromFloat(cfg.FeePercentage),
		decimal.NewFromFloat(cfg.FeeFixed),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid fee schedule for %s: %w", cfg.Name, err)
	}

	base := NewBaseProcessor(cfg.Name, cfg.Active, fees, cfg.ReliabilityScore, cfg.Currencies, cfg.Countries)

	switch cfg.Kind {
	case "stripe":
		return NewStripeAdapter(base, cfg.Credentials["api_key"], logger), nil
	case "paypal":
		return NewPayPalAdapter(base, cfg.Credentials["client_id"], cfg.Credentials["client_secret"], logger), nil
	case "flutterwave":
		return NewFlutterwaveAdapter(base, cfg.Credentials["api_key"], logger), nil
	default:
		return nil, fmt.Errorf("unknown processor kind: %q", cfg.Kind)
	}
}

// BuildRegistry populates a processor registry from configuration. A
// processor that fails to construct is logged as a warning and skipped, so a
// single bad entry never prevents the remaining processors from serving
// traffic.
func BuildRegistry(cfgs []config.ProcessorConfig, logger *slog.Logger) *service.ProcessorRegistry {
	registry := service.NewProcessorRegistry(logger)
	for _, cfg := range cfgs {
		processor, err := New(cfg, logger)
		if err != nil {
			logger.Warn("failed to initialize processor, skipping",
				"processor", cfg.Name,
				"kind", cfg.Kind,
				"error", err,
			)
			continue
		}
		registry.Register(processor)
	}
	return registry
}
