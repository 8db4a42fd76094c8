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

var _ port.PaymentProcessor = (*PayPalAdapter)(nil)

// PayPalAdapter processes payments through PayPal. Execution is simulated; in
// production this would call the PayPal orders API.
type PayPalAdapter struct {
	BaseProcessor
	clientID     string
	clientSecret string
	logger       *slog.Logger
}

// NewPayPalAdapter creates a PayPalAdapter with the given capability profile.
func NewPayPalAdapter(base BaseProcessor, clientID, clientSecret string, logger *slog.Logger) *PayPalAdapter {
	return &PayPalAdapter{
		BaseProcessor: base,
		clientID:      clientID,
		clientSecret:  clientSecret,
		logger:        logger,
	}
}

// Execute captures a payment for the payer carried in the transaction details.
func (a *PayPalAdapter) Execute(ctx context.Context, txn model.Transaction) (port.ExecutionResult, error) {
	if a.clientID == "" || a.clientSecret == "" {
		return port.ExecutionResult{}, &port.ProcessorConfigError{Processor: a.Name(), Reason: "client credentials are not configured"}
	}

	if !a.SupportsCurrency(txn.Currency()) {
		return port.ExecutionResult{}, &port.UnsupportedCurrencyError{Processor: a.Name(), Currency: txn.Currency()}
	}

	if _, ok := txn.Detail("payer_id"); !ok {
		return port.ExecutionResult{}, &port.MissingFieldError{Processor: a.Name(), Field: "payer_id"}
	}

	fee, err := a.TransactionFee(txn.Amount(), txn.Currency())
	if err != nil {
		return port.ExecutionResult{}, err
	}

	a.logger.Info("paypal: capturing payment",
		"amount", txn.Amount(),
		"currency", txn.Currency(),
	)
	// Stub: in production this would create and capture an order via the
	// PayPal REST API using the payer ID.

	return port.ExecutionResult{
		ExecutionID: fmt.Sprintf("paypal_%s", uuid.NewString()),
		Status:      "success",
		Processor:   a.Name(),
		Amount:      txn.Amount(),
		Currency:    txn.Currency(),
		Fee:         fee,
		ExecutedAt:  time.Now().UTC(),
	}, nil
}
