package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gatewise/payment-router/internal/domain/model"
	"github.com/gatewise/payment-router/internal/domain/port"
	"github.com/gatewise/payment-router/pkg/events"
)

// recordDecision writes an audit row best-effort: a failed audit write is
// logged, never surfaced, so it cannot fail an otherwise successful call.
func recordDecision(ctx context.Context, repo port.DecisionRepository, logger *slog.Logger, decision model.RoutingDecision) {
	if repo == nil {
		return
	}
	if err := repo.Record(ctx, decision); err != nil {
		logger.Warn("failed to record routing decision",
			"decision_id", decision.ID,
			"error", err,
		)
	}
}

// publishEvents sends domain events best-effort; a broker failure is logged,
// never surfaced.
func publishEvents(ctx context.Context, publisher port.EventPublisher, logger *slog.Logger, evts ...events.DomainEvent) {
	if publisher == nil || len(evts) == 0 {
		return
	}
	if err := publisher.Publish(ctx, TopicRoutingDecisions, evts...); err != nil {
		logger.Warn("failed to publish routing events", "error", err)
	}
}

// processorFromError extracts the processor name carried by a typed processor
// error, or "" when the error is not processor-specific.
func processorFromError(err error) string {
	var currencyErr *port.UnsupportedCurrencyError
	if errors.As(err, &currencyErr) {
		return currencyErr.Processor
	}
	var countryErr *port.UnsupportedCountryError
	if errors.As(err, &countryErr) {
		return countryErr.Processor
	}
	var fieldErr *port.MissingFieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Processor
	}
	var configErr *port.ProcessorConfigError
	if errors.As(err, &configErr) {
		return configErr.Processor
	}
	return ""
}
