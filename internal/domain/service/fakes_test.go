package service_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gatewise/payment-router/internal/domain/model"
	"github.com/gatewise/payment-router/internal/domain/port"
	"github.com/gatewise/payment-router/internal/domain/valueobject"
)

// fakeProcessor is a configurable in-memory processor built on the same value
// objects the real adapters use.
type fakeProcessor struct {
	name        string
	active      bool
	reliability float64
	fees        valueobject.FeeSchedule
	currencies  valueobject.SupportSet
	countries   valueobject.SupportSet

	executeCalls int
	executeFunc  func(ctx context.Context, txn model.Transaction) (port.ExecutionResult, error)
}

func newFakeProcessor(name string, active bool, feePct, feeFixed, reliability float64, currencies, countries []string) *fakeProcessor {
	fees, _ := valueobject.NewFeeSchedule(decimal.NewFromFloat(feePct), decimal.NewFromFloat(feeFixed))
	return &fakeProcessor{
		name:        name,
		active:      active,
		reliability: reliability,
		fees:        fees,
		currencies:  valueobject.NewSupportSet(currencies),
		countries:   valueobject.NewSupportSet(countries),
	}
}

func (f *fakeProcessor) Name() string              { return f.name }
func (f *fakeProcessor) Active() bool              { return f.active }
func (f *fakeProcessor) ReliabilityScore() float64 { return f.reliability }

func (f *fakeProcessor) TransactionFee(amount decimal.Decimal, currency string) (decimal.Decimal, error) {
	if !f.currencies.Contains(currency) {
		return decimal.Zero, &port.UnsupportedCurrencyError{Processor: f.name, Currency: currency}
	}
	return f.fees.FeeFor(amount), nil
}

func (f *fakeProcessor) SupportsCurrency(code string) bool { return f.currencies.Contains(code) }
func (f *fakeProcessor) SupportsCountry(code string) bool  { return f.countries.Contains(code) }

func (f *fakeProcessor) Execute(ctx context.Context, txn model.Transaction) (port.ExecutionResult, error) {
	f.executeCalls++
	if f.executeFunc != nil {
		return f.executeFunc(ctx, txn)
	}
	fee, err := f.TransactionFee(txn.Amount(), txn.Currency())
	if err != nil {
		return port.ExecutionResult{}, err
	}
	return port.ExecutionResult{
		ExecutionID: f.name + "_exec",
		Status:      "success",
		Processor:   f.name,
		Amount:      txn.Amount(),
		Currency:    txn.Currency(),
		Fee:         fee,
		ExecutedAt:  time.Now().UTC(),
	}, nil
}

func mustTransaction(amount int64, currency, country string) model.Transaction {
	txn, err := model.NewTransaction(decimal.NewFromInt(amount), currency, country, nil)
	if err != nil {
		panic(err)
	}
	return txn
}
