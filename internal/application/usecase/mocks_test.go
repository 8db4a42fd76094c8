package usecase_test

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gatewise/payment-router/internal/domain/model"
	"github.com/gatewise/payment-router/internal/domain/port"
	"github.com/gatewise/payment-router/pkg/events"
)

// --- Mock implementations ---

type mockProcessor struct {
	name        string
	active      bool
	reliability float64
	currencies  []string
	countries   []string
	feePct      decimal.Decimal
	feeFixed    decimal.Decimal

	executeFunc func(ctx context.Context, txn model.Transaction) (port.ExecutionResult, error)
}

func (m *mockProcessor) Name() string              { return m.name }
func (m *mockProcessor) Active() bool              { return m.active }
func (m *mockProcessor) ReliabilityScore() float64 { return m.reliability }

func (m *mockProcessor) TransactionFee(amount decimal.Decimal, currency string) (decimal.Decimal, error) {
	if !m.SupportsCurrency(currency) {
		return decimal.Zero, &port.UnsupportedCurrencyError{Processor: m.name, Currency: currency}
	}
	return amount.Mul(m.feePct).Div(decimal.NewFromInt(100)).Add(m.feeFixed), nil
}

func (m *mockProcessor) SupportsCurrency(code string) bool {
	return supports(m.currencies, code)
}

func (m *mockProcessor) SupportsCountry(code string) bool {
	return supports(m.countries, code)
}

func (m *mockProcessor) Execute(ctx context.Context, txn model.Transaction) (port.ExecutionResult, error) {
	if m.executeFunc != nil {
		return m.executeFunc(ctx, txn)
	}
	fee, _ := m.TransactionFee(txn.Amount(), txn.Currency())
	return port.ExecutionResult{
		ExecutionID: m.name + "_exec_1",
		Status:      "success",
		Processor:   m.name,
		Amount:      txn.Amount(),
		Currency:    txn.Currency(),
		Fee:         fee,
		ExecutedAt:  time.Now().UTC(),
	}, nil
}

func supports(set []string, code string) bool {
	for _, c := range set {
		if c == "*" || strings.EqualFold(c, code) {
			return true
		}
	}
	return false
}

type mockPublisher struct {
	publishFunc func(ctx context.Context, topic string, evts ...events.DomainEvent) error

	topics    []string
	published []events.DomainEvent
}

func (m *mockPublisher) Publish(ctx context.Context, topic string, evts ...events.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, topic, evts...)
	}
	m.topics = append(m.topics, topic)
	m.published = append(m.published, evts...)
	return nil
}

type mockDecisionRepo struct {
	recordFunc func(ctx context.Context, decision model.RoutingDecision) error

	recorded []model.RoutingDecision
}

func (m *mockDecisionRepo) Record(ctx context.Context, decision model.RoutingDecision) error {
	if m.recordFunc != nil {
		return m.recordFunc(ctx, decision)
	}
	m.recorded = append(m.recorded, decision)
	return nil
}
