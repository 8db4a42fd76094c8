package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RouteRequest is the input DTO for routing a transaction (with or without
// execution). Strategy may be empty to use the configured default.
type RouteRequest struct {
	Amount   decimal.Decimal
	Currency string
	Country  string
	Strategy string
	Details  map[string]string
}

// RouteResponse is the output DTO for a routing-only call.
type RouteResponse struct {
	Processor        string
	Strategy         string
	Fee              decimal.Decimal
	ReliabilityScore float64
}

// ExecuteResponse is the output DTO after a payment has been executed.
type ExecuteResponse struct {
	ExecutionID string
	Status      string
	Processor   string
	Strategy    string
	Amount      decimal.Decimal
	Currency    string
	Fee         decimal.Decimal
	ExecutedAt  time.Time
}

// ProcessorInfo describes one registered processor.
type ProcessorInfo struct {
	Name             string
	Active           bool
	ReliabilityScore float64
}

// ListProcessorsResponse is the output DTO for listing registered processors.
type ListProcessorsResponse struct {
	Processors []ProcessorInfo
}
