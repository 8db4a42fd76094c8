package grpc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gatewise/payment-router/internal/application/dto"
	"github.com/gatewise/payment-router/internal/application/usecase"
	"github.com/gatewise/payment-router/internal/domain/port"
	"github.com/gatewise/payment-router/internal/domain/service"
	"github.com/gatewise/payment-router/internal/domain/valueobject"
	"github.com/gatewise/payment-router/pkg/auth"
	"github.com/gatewise/payment-router/pkg/observability"
)

// requireRole checks that the caller has at least one of the given roles.
func requireRole(ctx context.Context, roles ...string) error {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "authentication required")
	}
	for _, role := range roles {
		if claims.HasRole(role) {
			return nil
		}
	}
	return status.Error(codes.PermissionDenied, "insufficient permissions")
}

// Compile-time assertion that RouterHandler implements RouterServiceServer.
var _ RouterServiceServer = (*RouterHandler)(nil)

// RouterHandler implements the gRPC RouterService server.
type RouterHandler struct {
	UnimplementedRouterServiceServer
	routeTransaction *usecase.RouteTransaction
	executePayment   *usecase.ExecutePayment
	listProcessors   *usecase.ListProcessors
	removeProcessor  *usecase.RemoveProcessor

	metrics *observability.Metrics
	logger  *slog.Logger
}

func NewRouterHandler(
	routeTransaction *usecase.RouteTransaction,
	executePayment *usecase.ExecutePayment,
	listProcessors *usecase.ListProcessors,
	removeProcessor *usecase.RemoveProcessor,
	metrics *observability.Metrics,
	logger *slog.Logger,
) *RouterHandler {
	return &RouterHandler{
		routeTransaction: routeTransaction,
		executePayment:   executePayment,
		listProcessors:   listProcessors,
		removeProcessor:  removeProcessor,

		metrics: metrics,
		logger:  logger,
	}
}

// Temporary gRPC message types until proto generation is wired.

type RouteTransactionRequest struct {
	Amount   string            `json:"amount"`
	Currency string            `json:"currency"`
	Country  string            `json:"country"`
	Strategy string            `json:"strategy,omitempty"`
	Details  map[string]string `json:"details,omitempty"`
}

type RouteTransactionResponse struct {
	Processor        string  `json:"processor"`
	Strategy         string  `json:"strategy"`
	Fee              string  `json:"fee"`
	ReliabilityScore float64 `json:"reliability_score"`
}

type ProcessPaymentRequest struct {
	Amount   string            `json:"amount"`
	Currency string            `json:"currency"`
	Country  string            `json:"country"`
	Strategy string            `json:"strategy,omitempty"`
	Details  map[string]string `json:"details,omitempty"`
}

type ProcessPaymentResponse struct {
	ExecutionID string `json:"execution_id"`
	Status      string `json:"status"`
	Processor   string `json:"processor"`
	Strategy    string `json:"strategy"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Fee         string `json:"fee"`
	ExecutedAt  string `json:"executed_at"`
}

type ListProcessorsRequestMsg struct{}

type ProcessorMsg struct {
	Name             string  `json:"name"`
	Active           bool    `json:"active"`
	ReliabilityScore float64 `json:"reliability_score"`
}

type ListProcessorsResponseMsg struct {
	Processors []*ProcessorMsg `json:"processors"`
}

type RemoveProcessorRequestMsg struct {
	Name string `json:"name"`
}

type RemoveProcessorResponseMsg struct{}

func (h *RouterHandler) RouteTransaction(ctx context.Context, req *RouteTransactionRequest) (*RouteTransactionResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleOperator, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	routeReq, err := parseRouteRequest(req.Amount, req.Currency, req.Country, req.Strategy, req.Details)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	result, err := h.routeTransaction.Execute(ctx, routeReq)
	h.metrics.SelectionDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		return nil, h.mapRoutingError(err)
	}

	h.metrics.RoutingDecisions.WithLabelValues(result.Strategy, result.Processor).Inc()

	return &RouteTransactionResponse{
		Processor:        result.Processor,
		Strategy:         result.Strategy,
		Fee:              result.Fee.String(),
		ReliabilityScore: result.ReliabilityScore,
	}, nil
}

func (h *RouterHandler) ProcessPayment(ctx context.Context, req *ProcessPaymentRequest) (*ProcessPaymentResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleOperator, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	routeReq, err := parseRouteRequest(req.Amount, req.Currency, req.Country, req.Strategy, req.Details)
	if err != nil {
		return nil, err
	}

	result, err := h.executePayment.Execute(ctx, routeReq)
	if err != nil {
		if processor := executedProcessor(err); processor != "" {
			h.metrics.PaymentExecutions.WithLabelValues(processor, "failed").Inc()
		}
		return nil, h.mapRoutingError(err)
	}

	h.metrics.RoutingDecisions.WithLabelValues(result.Strategy, result.Processor).Inc()
	h.metrics.PaymentExecutions.WithLabelValues(result.Processor, result.Status).Inc()

	return &ProcessPaymentResponse{
		ExecutionID: result.ExecutionID,
		Status:      result.Status,
		Processor:   result.Processor,
		Strategy:    result.Strategy,
		Amount:      result.Amount.String(),
		Currency:    result.Currency,
		Fee:         result.Fee.String(),
		ExecutedAt:  result.ExecutedAt.Format(time.RFC3339),
	}, nil
}

func (h *RouterHandler) ListProcessors(ctx context.Context, _ *ListProcessorsRequestMsg) (*ListProcessorsResponseMsg, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleOperator, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	result := h.listProcessors.Execute(ctx)

	processors := make([]*ProcessorMsg, 0, len(result.Processors))
	for _, p := range result.Processors {
		processors = append(processors, &ProcessorMsg{
			Name:             p.Name,
			Active:           p.Active,
			ReliabilityScore: p.ReliabilityScore,
		})
	}
	return &ListProcessorsResponseMsg{Processors: processors}, nil
}

func (h *RouterHandler) RemoveProcessor(ctx context.Context, req *RemoveProcessorRequestMsg) (*RemoveProcessorResponseMsg, error) {
	if err := requireRole(ctx, auth.RoleAdmin); err != nil {
		return nil, err
	}

	if req == nil || req.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	h.removeProcessor.Execute(ctx, req.Name)
	return &RemoveProcessorResponseMsg{}, nil
}

func parseRouteRequest(amount, currency, country, strategy string, details map[string]string) (dto.RouteRequest, error) {
	if amount == "" {
		return dto.RouteRequest{}, status.Error(codes.InvalidArgument, "amount is required")
	}
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return dto.RouteRequest{}, status.Errorf(codes.InvalidArgument, "invalid amount: %v", err)
	}
	if parsed.IsNegative() {
		return dto.RouteRequest{}, status.Error(codes.InvalidArgument, "amount must not be negative")
	}
	if currency == "" {
		return dto.RouteRequest{}, status.Error(codes.InvalidArgument, "currency is required")
	}
	if country == "" {
		return dto.RouteRequest{}, status.Error(codes.InvalidArgument, "country is required")
	}

	return dto.RouteRequest{
		Amount:   parsed,
		Currency: currency,
		Country:  country,
		Strategy: strategy,
		Details:  details,
	}, nil
}

// mapRoutingError translates domain errors into gRPC status codes. The domain
// error message is preserved so callers see which processor or strategy was at
// fault.
func (h *RouterHandler) mapRoutingError(err error) error {
	var unknownStrategy *valueobject.UnknownStrategyError
	if errors.As(err, &unknownStrategy) {
		h.metrics.RoutingFailures.WithLabelValues("unknown_strategy").Inc()
		return status.Error(codes.InvalidArgument, err.Error())
	}

	if errors.Is(err, service.ErrNoEligibleProcessor) {
		h.metrics.RoutingFailures.WithLabelValues("no_eligible_processor").Inc()
		return status.Error(codes.FailedPrecondition, err.Error())
	}

	var missingField *port.MissingFieldError
	if errors.As(err, &missingField) {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	var currencyErr *port.UnsupportedCurrencyError
	var countryErr *port.UnsupportedCountryError
	var configErr *port.ProcessorConfigError
	if errors.As(err, &currencyErr) || errors.As(err, &countryErr) || errors.As(err, &configErr) {
		return status.Error(codes.FailedPrecondition, err.Error())
	}

	h.logger.Error("handler error", "error", err)
	return status.Error(codes.Internal, "internal error")
}

// executedProcessor names the processor behind an execution failure, or ""
// when the failure happened before any processor was invoked.
func executedProcessor(err error) string {
	var missingField *port.MissingFieldError
	if errors.As(err, &missingField) {
		return missingField.Processor
	}
	var currencyErr *port.UnsupportedCurrencyError
	if errors.As(err, &currencyErr) {
		return currencyErr.Processor
	}
	var countryErr *port.UnsupportedCountryError
	if errors.As(err, &countryErr) {
		return countryErr.Processor
	}
	var configErr *port.ProcessorConfigError
	if errors.As(err, &configErr) {
		return configErr.Processor
	}
	return ""
}
