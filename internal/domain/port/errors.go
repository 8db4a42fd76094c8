package port

import "fmt"

// UnsupportedCurrencyError is returned by a processor asked to quote or
// execute in a currency it does not support. The eligibility filter treats it
// as a filtering signal, not a routing error.
type UnsupportedCurrencyError struct {
	Processor string
	Currency  string
}

func (e *UnsupportedCurrencyError) Error() string {
	return fmt.Sprintf("currency %s not supported by %s", e.Currency, e.Processor)
}

// UnsupportedCountryError is the country analogue of UnsupportedCurrencyError.
type UnsupportedCountryError struct {
	Processor string
	Country   string
}

func (e *UnsupportedCountryError) Error() string {
	return fmt.Sprintf("country %s not supported by %s", e.Country, e.Processor)
}

// MissingFieldError is returned by a processor when a required transaction
// detail is absent. It names the exact field so the caller can fix the input.
type MissingFieldError struct {
	Processor string
	Field     string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field: %s", e.Processor, e.Field)
}

// ProcessorConfigError is returned when a processor cannot execute because its
// own configuration is incomplete (e.g. absent credentials).
type ProcessorConfigError struct {
	Processor string
	Reason    string
}

func (e *ProcessorConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Processor, e.Reason)
}
