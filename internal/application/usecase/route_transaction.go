package usecase

import (
	"context"
	"log/slog"

	"github.com/gatewise/payment-router/internal/application/dto"
	"github.com/gatewise/payment-router/internal/domain/event"
	"github.com/gatewise/payment-router/internal/domain/model"
	"github.com/gatewise/payment-router/internal/domain/port"
	"github.com/gatewise/payment-router/internal/domain/service"
)

// TopicRoutingDecisions is the Kafka topic routing events are published to.
const TopicRoutingDecisions = "router.routing.decisions"

// RouteTransaction selects the best processor for a transaction without
// executing the payment.
type RouteTransaction struct {
	router    *service.PaymentRouter
	publisher port.EventPublisher
	decisions port.DecisionRepository
	logger    *slog.Logger
}

func NewRouteTransaction(router *service.PaymentRouter, publisher port.EventPublisher, decisions port.DecisionRepository, logger *slog.Logger) *RouteTransaction {
	return &RouteTransaction{
		router:    router,
		publisher: publisher,
		decisions: decisions,
		logger:    logger,
	}
}

func (uc *RouteTransaction) Execute(ctx context.Context, req dto.RouteRequest) (dto.RouteResponse, error) {
	txn, err := model.NewTransaction(req.Amount, req.Currency, req.Country, req.Details)
	if err != nil {
		return dto.RouteResponse{}, err
	}

	processor, err := uc.router.Route(ctx, txn, req.Strategy)
	if err != nil {
		return dto.RouteResponse{}, err
	}

	fee, err := processor.TransactionFee(txn.Amount(), txn.Currency())
	if err != nil {
		return dto.RouteResponse{}, err
	}

	strategy := uc.router.EffectiveStrategy(req.Strategy)
	decision := model.NewRoutingDecision(strategy, processor.Name(), txn, fee, model.OutcomeRouted, "")
	recordDecision(ctx, uc.decisions, uc.logger, decision)
	publishEvents(ctx, uc.publisher, uc.logger,
		event.NewProcessorSelected(decision.ID, processor.Name(), strategy, txn.Amount(), txn.Currency(), txn.Country()))

	return dto.RouteResponse{
		Processor:        processor.Name(),
		Strategy:         strategy,
		Fee:              fee,
		ReliabilityScore: processor.ReliabilityScore(),
	}, nil
}
