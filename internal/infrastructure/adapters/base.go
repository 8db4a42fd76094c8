package adapters

import (
	"github.com/shopspring/decimal"

	"github.com/gatewise/payment-router/internal/domain/port"
	"github.com/gatewise/payment-router/internal/domain/valueobject"
)

// BaseProcessor carries the capability profile shared by every adapter: name,
// active flag, fee schedule, reliability score, and supported currency and
// country sets. Concrete adapters embed it and add Execute.
type BaseProcessor struct {
	name        string
	active      bool
	fees        valueobject.FeeSchedule
	reliability float64
	currencies  valueobject.SupportSet
	countries   valueobject.SupportSet
}

// NewBaseProcessor creates the shared capability profile. Currency and country
// codes are normalized to uppercase by the support sets.
func NewBaseProcessor(
	name string,
	active bool,
	fees valueobject.FeeSchedule,
	reliability float64,
	currencies []string,
	countries []string,
) BaseProcessor {
	return BaseProcessor{
		name:        name,
		active:      active,
		fees:        fees,
		reliability: reliability,
		currencies:  valueobject.NewSupportSet(currencies),
		countries:   valueobject.NewSupportSet(countries),
	}
}

// Name returns the processor's registry key.
func (p BaseProcessor) Name() string {
	return p.name
}

// Active reports whether the processor may be selected.
func (p BaseProcessor) Active() bool {
	return p.active
}

// ReliabilityScore returns the configured reliability score.
func (p BaseProcessor) ReliabilityScore() float64 {
	return p.reliability
}

// SupportsCurrency reports whether the processor supports the currency.
func (p BaseProcessor) SupportsCurrency(code string) bool {
	return p.currencies.Contains(code)
}

// SupportsCountry reports whether the processor supports the country.
func (p BaseProcessor) SupportsCountry(code string) bool {
	return p.countries.Contains(code)
}

// TransactionFee quotes the fee for the given amount and currency.
func (p BaseProcessor) TransactionFee(amount decimal.Decimal, currency string) (decimal.Decimal, error) {
	if !p.currencies.Contains(currency) {
		return decimal.Zero, &port.UnsupportedCurrencyError{Processor: p.name, Currency: currency}
	}
	return p.fees.FeeFor(amount), nil
}
