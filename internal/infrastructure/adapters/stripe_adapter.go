package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gatewise/payment-router/internal/domain/model"
	"github.com/gatewise/payment-router/internal/domain/port"
)

var _ port.PaymentProcessor = (*StripeAdapter)(nil)

// StripeAdapter processes card payments through Stripe. Execution is
// simulated; in production this would call the Stripe charges API.
type StripeAdapter struct {
	BaseProcessor
	apiKey string
	logger *slog.Logger
}

// NewStripeAdapter creates a StripeAdapter with the given capability profile.
func NewStripeAdapter(base BaseProcessor, apiKey string, logger *slog.Logger) *StripeAdapter {
	return &StripeAdapter{BaseProcessor: base, apiKey: apiKey, logger: logger}
}

// Execute charges the card token carried in the transaction details.
func (a *StripeAdapter) Execute(ctx context.Context, txn model.Transaction) (port.ExecutionResult, error) {
	if a.apiKey == "" {
		return port.ExecutionResult{}, &port.ProcessorConfigError{Processor: a.Name(), Reason: "api key is not configured"}
	}

	if !a.SupportsCurrency(txn.Currency()) {
		return port.ExecutionResult{}, &port.UnsupportedCurrencyError{Processor: a.Name(), Currency: txn.Currency()}
	}

	if _, ok := txn.Detail("card_token"); !ok {
		return port.ExecutionResult{}, &port.MissingFieldError{Processor: a.Name(), Field: "card_token"}
	}

	fee, err := a.TransactionFee(txn.Amount(), txn.Currency())
	if err != nil {
		return port.ExecutionResult{}, err
	}

	a.logger.Info("stripe: charging card",
		"amount", txn.Amount(),
		"currency", txn.Currency(),
	)
	// Stub: in production this would create a PaymentIntent via the Stripe API
	// and confirm it with the card token.

	return port.ExecutionResult{
		ExecutionID: fmt.Sprintf("stripe_%s", uuid.NewString()),
		Status:      "success",
		Processor:   a.Name(),
		Amount:      txn.Amount(),
		Currency:    txn.Currency(),
		Fee:         fee,
		ExecutedAt:  time.Now().UTC(),
	}, nil
}
