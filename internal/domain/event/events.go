package event

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gatewise/payment-router/pkg/events"
)

const AggregateTypeRoutingDecision = "RoutingDecision"

// ProcessorSelected is emitted when routing picks a processor for a transaction.
type ProcessorSelected struct {
	events.BaseEvent
	DecisionID uuid.UUID       `json:"decision_id"`
	Processor  string          `json:"processor"`
	Strategy   string          `json:"strategy"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Country    string          `json:"country"`
}

func NewProcessorSelected(decisionID uuid.UUID, processor, strategy string, amount decimal.Decimal, currency, country string) ProcessorSelected {
	payload, _ := json.Marshal(struct {
		DecisionID uuid.UUID       `json:"decision_id"`
		Processor  string          `json:"processor"`
		Strategy   string          `json:"strategy"`
		Amount     decimal.Decimal `json:"amount"`
		Currency   string          `json:"currency"`
		Country    string          `json:"country"`
	}{decisionID, processor, strategy, amount, currency, country})

	return ProcessorSelected{
		BaseEvent:  events.NewBaseEvent("routing.processor.selected", decisionID, AggregateTypeRoutingDecision, payload),
		DecisionID: decisionID,
		Processor:  processor,
		Strategy:   strategy,
		Amount:     amount,
		Currency:   currency,
		Country:    country,
	}
}

// PaymentExecuted is emitted when the selected processor completes a payment.
type PaymentExecuted struct {
	events.BaseEvent
	DecisionID  uuid.UUID       `json:"decision_id"`
	Processor   string          `json:"processor"`
	Strategy    string          `json:"strategy"`
	ExecutionID string          `json:"execution_id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Fee         decimal.Decimal `json:"fee"`
}

func NewPaymentExecuted(decisionID uuid.UUID, processor, strategy, executionID string, amount decimal.Decimal, currency string, fee decimal.Decimal) PaymentExecuted {
	payload, _ := json.Marshal(struct {
		DecisionID  uuid.UUID       `json:"decision_id"`
		Processor   string          `json:"processor"`
		Strategy    string          `json:"strategy"`
		ExecutionID string          `json:"execution_id"`
		Amount      decimal.Decimal `json:"amount"`
		Currency    string          `json:"currency"`
		Fee         decimal.Decimal `json:"fee"`
	}{decisionID, processor, strategy, executionID, amount, currency, fee})

	return PaymentExecuted{
		BaseEvent:   events.NewBaseEvent("routing.payment.executed", decisionID, AggregateTypeRoutingDecision, payload),
		DecisionID:  decisionID,
		Processor:   processor,
		Strategy:    strategy,
		ExecutionID: executionID,
		Amount:      amount,
		Currency:    currency,
		Fee:         fee,
	}
}

// PaymentFailed is emitted when the selected processor rejects or fails a payment.
type PaymentFailed struct {
	events.BaseEvent
	DecisionID uuid.UUID `json:"decision_id"`
	Processor  string    `json:"processor"`
	Strategy   string    `json:"strategy"`
	Reason     string    `json:"reason"`
}

func NewPaymentFailed(decisionID uuid.UUID, processor, strategy, reason string) PaymentFailed {
	payload, _ := json.Marshal(struct {
		DecisionID uuid.UUID `json:"decision_id"`
		Processor  string    `json:"processor"`
		Strategy   string    `json:"strategy"`
		Reason     string    `json:"reason"`
	}{decisionID, processor, strategy, reason})

	return PaymentFailed{
		BaseEvent:  events.NewBaseEvent("routing.payment.failed", decisionID, AggregateTypeRoutingDecision, payload),
		DecisionID: decisionID,
		Processor:  processor,
		Strategy:   strategy,
		Reason:     reason,
	}
}
