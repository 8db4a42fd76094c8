package service

import (
	"github.com/shopspring/decimal"

	"github.com/gatewise/payment-router/internal/domain/model"
	"github.com/gatewise/payment-router/internal/domain/port"
)

// Candidate pairs a processor with its quoted fee for one ranking pass.
type Candidate struct {
	Processor port.PaymentProcessor
	Fee       decimal.Decimal
}

// EligibleProcessors returns, in input order, the processors that can handle
// the transaction: active, currency and country supported, and fee quotable.
// A fee quote failure marks the processor ineligible; it is never surfaced as
// an error. The input slice is not deduplicated.
func EligibleProcessors(processors []port.PaymentProcessor, txn model.Transaction) []Candidate {
	var eligible []Candidate
	for _, p := range processors {
		if !p.Active() {
			continue
		}
		if !p.SupportsCurrency(txn.Currency()) {
			continue
		}
		if !p.SupportsCountry(txn.Country()) {
			continue
		}
		fee, err := p.TransactionFee(txn.Amount(), txn.Currency())
		if err != nil {
			continue
		}
		eligible = append(eligible, Candidate{Processor: p, Fee: fee})
	}
	return eligible
}
