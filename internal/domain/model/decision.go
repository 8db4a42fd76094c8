package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Decision outcomes recorded for audit.
const (
	OutcomeRouted   = "ROUTED"
	OutcomeExecuted = "EXECUTED"
	OutcomeFailed   = "FAILED"
)

// RoutingDecision is the audit record of one routing call: which strategy ran,
// which processor won, and how execution went. It captures the decision, not
// the transaction itself.
type RoutingDecision struct {
	ID            uuid.UUID
	Strategy      string
	Processor     string
	Amount        decimal.Decimal
	Currency      string
	Country       string
	Fee           decimal.Decimal
	Outcome       string
	FailureReason string
	DecidedAt     time.Time
}

// NewRoutingDecision creates a decision record for a routed transaction.
func NewRoutingDecision(strategy, processor string, txn Transaction, fee decimal.Decimal, outcome, failureReason string) RoutingDecision {
	return RoutingDecision{
		ID:            uuid.New(),
		Strategy:      strategy,
		Processor:     processor,
		Amount:        txn.Amount(),
		Currency:      txn.Currency(),
		Country:       txn.Country(),
		Fee:           fee,
		Outcome:       outcome,
		FailureReason: failureReason,
		DecidedAt:     time.Now().UTC(),
	}
}
