package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction describes a payment to be routed. It is immutable after
// construction: currency and country are normalized to uppercase, and the
// details map is copied both on construction and on read, so no caller can
// mutate a transaction another component holds.
type Transaction struct {
	amount   decimal.Decimal
	currency string
	country  string
	details  map[string]string
}

// NewTransaction validates and creates a Transaction.
func NewTransaction(amount decimal.Decimal, currency, country string, details map[string]string) (Transaction, error) {
	if amount.IsNegative() {
		return Transaction{}, fmt.Errorf("amount must not be negative, got: %s", amount.String())
	}
	if currency == "" {
		return Transaction{}, fmt.Errorf("currency is required")
	}
	if country == "" {
		return Transaction{}, fmt.Errorf("country code is required")
	}

	copied := make(map[string]string, len(details))
	for k, v := range details {
		copied[k] = v
	}

	return Transaction{
		amount:   amount,
		currency: strings.ToUpper(currency),
		country:  strings.ToUpper(country),
		details:  copied,
	}, nil
}

// Amount returns the transaction amount.
func (t Transaction) Amount() decimal.Decimal {
	return t.amount
}

// Currency returns the uppercase currency code.
func (t Transaction) Currency() string {
	return t.currency
}

// Country returns the uppercase country code.
func (t Transaction) Country() string {
	return t.country
}

// Detail returns the backend-specific detail for the given key. The routing
// core never interprets details; they are passed through to the processor.
func (t Transaction) Detail(key string) (string, bool) {
	v, ok := t.details[key]
	return v, ok
}

// Details returns a copy of the backend-specific detail fields.
func (t Transaction) Details() map[string]string {
	copied := make(map[string]string, len(t.details))
	for k, v := range t.details {
		copied[k] = v
	}
	return copied
}
