package usecase

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/gatewise/payment-router/internal/application/dto"
	"github.com/gatewise/payment-router/internal/domain/event"
	"github.com/gatewise/payment-router/internal/domain/model"
	"github.com/gatewise/payment-router/internal/domain/port"
	"github.com/gatewise/payment-router/internal/domain/service"
)

// ExecutePayment routes a transaction and executes it against the selected
// processor in a single shot. There is no fallback: an execution failure is
// recorded and returned to the caller unchanged.
type ExecutePayment struct {
	router    *service.PaymentRouter
	publisher port.EventPublisher
	decisions port.DecisionRepository
	logger    *slog.Logger
}

func NewExecutePayment(router *service.PaymentRouter, publisher port.EventPublisher, decisions port.DecisionRepository, logger *slog.Logger) *ExecutePayment {
	return &ExecutePayment{
		router:    router,
		publisher: publisher,
		decisions: decisions,
		logger:    logger,
	}
}

func (uc *ExecutePayment) Execute(ctx context.Context, req dto.RouteRequest) (dto.ExecuteResponse, error) {
	txn, err := model.NewTransaction(req.Amount, req.Currency, req.Country, req.Details)
	if err != nil {
		return dto.ExecuteResponse{}, err
	}

	strategy := uc.router.EffectiveStrategy(req.Strategy)

	outcome, err := uc.router.ProcessPayment(ctx, txn, req.Strategy)
	if err != nil {
		// Routing failures (unknown strategy, no eligible processor) leave no
		// audit row: no processor was ever involved.
		processor := processorFromError(err)
		if processor != "" {
			decision := model.NewRoutingDecision(strategy, processor, txn, decimal.Zero, model.OutcomeFailed, err.Error())
			recordDecision(ctx, uc.decisions, uc.logger, decision)
			publishEvents(ctx, uc.publisher, uc.logger,
				event.NewPaymentFailed(decision.ID, processor, strategy, err.Error()))
		}
		return dto.ExecuteResponse{}, err
	}

	result := outcome.Result
	decision := model.NewRoutingDecision(outcome.Strategy, outcome.Processor, txn, result.Fee, model.OutcomeExecuted, "")
	recordDecision(ctx, uc.decisions, uc.logger, decision)
	publishEvents(ctx, uc.publisher, uc.logger,
		event.NewPaymentExecuted(decision.ID, outcome.Processor, outcome.Strategy, result.ExecutionID, result.Amount, result.Currency, result.Fee))

	return dto.ExecuteResponse{
		ExecutionID: result.ExecutionID,
		Status:      result.Status,
		Processor:   outcome.Processor,
		Strategy:    outcome.Strategy,
		Amount:      result.Amount,
		Currency:    result.Currency,
		Fee:         result.Fee,
		ExecutedAt:  result.ExecutedAt,
	}, nil
}
