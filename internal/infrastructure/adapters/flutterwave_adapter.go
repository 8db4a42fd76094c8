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

var _ port.PaymentProcessor = (*FlutterwaveAdapter)(nil)

// FlutterwaveAdapter processes payments through Flutterwave. Execution is
// simulated; in production this would call the Flutterwave charges API.
type FlutterwaveAdapter struct {
	BaseProcessor
	apiKey string
	logger *slog.Logger
}

// NewFlutterwaveAdapter creates a FlutterwaveAdapter with the given capability profile.
func NewFlutterwaveAdapter(base BaseProcessor, apiKey string, logger *slog.Logger) *FlutterwaveAdapter {
	return &FlutterwaveAdapter{BaseProcessor: base, apiKey: apiKey, logger: logger}
}

// Execute charges the payment referenced by tx_ref in the transaction details.
// Flutterwave also validates the destination country at execution time.
func (a *FlutterwaveAdapter) Execute(ctx context.Context, txn model.Transaction) (port.ExecutionResult, error) {
	if a.apiKey == "" {
		return port.ExecutionResult{}, &port.ProcessorConfigError{Processor: a.Name(), Reason: "api key is not configured"}
	}

	if !a.SupportsCurrency(txn.Currency()) {
		return port.ExecutionResult{}, &port.UnsupportedCurrencyError{Processor: a.Name(), Currency: txn.Currency()}
	}

	if !a.SupportsCountry(txn.Country()) {
		return port.ExecutionResult{}, &port.UnsupportedCountryError{Processor: a.Name(), Country: txn.Country()}
	}

	if _, ok := txn.Detail("tx_ref"); !ok {
		return port.ExecutionResult{}, &port.MissingFieldError{Processor: a.Name(), Field: "tx_ref"}
	}

	fee, err := a.TransactionFee(txn.Amount(), txn.Currency())
	if err != nil {
		return port.ExecutionResult{}, err
	}

	a.logger.Info("flutterwave: initiating charge",
		"amount", txn.Amount(),
		"currency", txn.Currency(),
		"country", txn.Country(),
	)
	// Stub: in production this would create a charge via the Flutterwave v3
	// API with the transaction reference.

	return port.ExecutionResult{
		ExecutionID: fmt.Sprintf("flutterwave_%s", uuid.NewString()),
		Status:      "success",
		Processor:   a.Name(),
		Amount:      txn.Amount(),
		Currency:    txn.Currency(),
		Fee:         fee,
		ExecutedAt:  time.Now().UTC(),
	}, nil
}
