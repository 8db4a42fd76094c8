package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gatewise/payment-router/internal/domain/model"
	"github.com/gatewise/payment-router/pkg/events"
)

// PaymentProcessor is the capability contract every backend must satisfy to
// participate in routing. All operations except Execute are pure.
type PaymentProcessor interface {
	// Name returns the stable identifier used as the registry key.
	Name() string
	// Active reports whether the processor may be selected at all.
	Active() bool
	// TransactionFee quotes the fee for processing the given amount.
	// It returns *UnsupportedCurrencyError when the currency is not supported.
	TransactionFee(amount decimal.Decimal, currency string) (decimal.Decimal, error)
	// ReliabilityScore returns the configured score, by convention in [0, 100].
	ReliabilityScore() float64
	// SupportsCurrency reports case-insensitive currency support; "*" in the
	// configured set means universal support.
	SupportsCurrency(code string) bool
	// SupportsCountry is the country analogue of SupportsCurrency.
	SupportsCountry(code string) bool
	// Execute processes the payment. It is the only side-effecting operation.
	// Required detail fields are validated first; a missing field or
	// unsupported value fails with a processor-specific typed error.
	Execute(ctx context.Context, txn model.Transaction) (ExecutionResult, error)
}

// ExecutionResult is a processor's report of a completed payment.
type ExecutionResult struct {
	ExecutionID string
	Status      string
	Processor   string
	Amount      decimal.Decimal
	Currency    string
	Fee         decimal.Decimal
	ExecutedAt  time.Time
}

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, events ...events.DomainEvent) error
}

// DecisionRepository persists routing decisions for audit.
type DecisionRepository interface {
	Record(ctx context.Context, decision model.RoutingDecision) error
}
