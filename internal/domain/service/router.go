package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gatewise/payment-router/internal/domain/model"
	"github.com/gatewise/payment-router/internal/domain/port"
	"github.com/gatewise/payment-router/internal/domain/valueobject"
)

// ErrNoEligibleProcessor is returned when every registered processor was
// filtered out for a transaction. Retrying without changing inputs cannot
// change the outcome, so the router never retries internally.
var ErrNoEligibleProcessor = errors.New("no eligible payment processor for this transaction")

// RoutingOutcome is the final result of a processed payment.
type RoutingOutcome struct {
	Processor string
	Strategy  string
	Result    port.ExecutionResult
}

// PaymentRouter selects one processor per transaction under a strategy and
// optionally delegates execution to it. Each call is an independent snapshot
// read over the registry; the router holds no per-call state and no registry
// lock while a processor executes.
type PaymentRouter struct {
	registry        *ProcessorRegistry
	defaultStrategy valueobject.StrategyName
	logger          *slog.Logger
}

// NewPaymentRouter creates a PaymentRouter. An empty defaultStrategy falls
// back to best_price; an invalid one is rejected.
func NewPaymentRouter(registry *ProcessorRegistry, defaultStrategy string, logger *slog.Logger) (*PaymentRouter, error) {
	if logger == nil {
		logger = slog.Default()
	}

	resolved := valueobject.StrategyBestPrice
	if defaultStrategy != "" {
		var err error
		resolved, err = valueobject.NewStrategyName(defaultStrategy)
		if err != nil {
			return nil, err
		}
	}

	return &PaymentRouter{
		registry:        registry,
		defaultStrategy: resolved,
		logger:          logger,
	}, nil
}

// EffectiveStrategy resolves the strategy identifier a routing call will use:
// the explicit argument when given, otherwise the configured default.
func (r *PaymentRouter) EffectiveStrategy(strategyName string) string {
	if strategyName != "" {
		return strategyName
	}
	return r.defaultStrategy.String()
}

// Route selects the processor best suited for the transaction under the given
// strategy (or the default when empty). It returns
// *valueobject.UnknownStrategyError for an unrecognized strategy and
// ErrNoEligibleProcessor when nothing can serve the transaction. No processor
// is invoked.
func (r *PaymentRouter) Route(_ context.Context, txn model.Transaction, strategyName string) (port.PaymentProcessor, error) {
	effective := r.EffectiveStrategy(strategyName)

	strategy, err := NewStrategy(effective)
	if err != nil {
		r.logger.Error("invalid routing strategy", "strategy", effective)
		return nil, err
	}

	processors := r.registry.List()
	selected := strategy.Select(processors, txn)
	if selected == nil {
		r.logger.Error("no suitable processor found",
			"strategy", effective,
			"currency", txn.Currency(),
			"country", txn.Country(),
		)
		return nil, ErrNoEligibleProcessor
	}

	r.logger.Info("processor selected",
		"processor", selected.Name(),
		"strategy", effective,
		"currency", txn.Currency(),
		"country", txn.Country(),
	)
	return selected, nil
}

// ProcessPayment routes the transaction and then executes it on the selected
// processor, exactly once. A routing failure propagates unchanged and invokes
// no processor. An execution failure propagates the processor's own error
// unchanged: the router never silently retries on a different processor, so
// the caller sees which processor failed and why.
func (r *PaymentRouter) ProcessPayment(ctx context.Context, txn model.Transaction, strategyName string) (RoutingOutcome, error) {
	processor, err := r.Route(ctx, txn, strategyName)
	if err != nil {
		return RoutingOutcome{}, err
	}

	result, err := processor.Execute(ctx, txn)
	if err != nil {
		r.logger.Error("payment execution failed",
			"processor", processor.Name(),
			"error", err,
		)
		return RoutingOutcome{}, err
	}

	r.logger.Info("payment processed",
		"processor", processor.Name(),
		"execution_id", result.ExecutionID,
	)

	return RoutingOutcome{
		Processor: processor.Name(),
		Strategy:  r.EffectiveStrategy(strategyName),
		Result:    result,
	}, nil
}
