package service

import (
	"sort"

	"github.com/gatewise/payment-router/internal/domain/model"
	"github.com/gatewise/payment-router/internal/domain/port"
	"github.com/gatewise/payment-router/internal/domain/valueobject"
)

// SelectionStrategy ranks the eligible processors for a transaction and picks
// exactly one. Strategies are stateless values; each applies the eligibility
// filter itself so it is usable standalone. A nil return means no processor
// can serve the transaction.
type SelectionStrategy interface {
	Select(processors []port.PaymentProcessor, txn model.Transaction) port.PaymentProcessor
}

// NewStrategy resolves a strategy identifier to a strategy instance. It
// returns *valueobject.UnknownStrategyError for unrecognized identifiers.
func NewStrategy(name string) (SelectionStrategy, error) {
	resolved, err := valueobject.NewStrategyName(name)
	if err != nil {
		return nil, err
	}

	switch resolved {
	case valueobject.StrategyHighestReliability:
		return HighestReliabilityStrategy{}, nil
	case valueobject.StrategyBalanced:
		return BalancedStrategy{}, nil
	default:
		return BestPriceStrategy{}, nil
	}
}

// BestPriceStrategy selects the eligible processor with the lowest fee.
// Ties resolve to the earliest processor in input order.
type BestPriceStrategy struct{}

func (BestPriceStrategy) Select(processors []port.PaymentProcessor, txn model.Transaction) port.PaymentProcessor {
	candidates := EligibleProcessors(processors, txn)
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Fee.LessThan(candidates[j].Fee)
	})
	return candidates[0].Processor
}

// HighestReliabilityStrategy selects the eligible processor with the highest
// reliability score. Ties resolve to the earliest processor in input order.
type HighestReliabilityStrategy struct{}

func (HighestReliabilityStrategy) Select(processors []port.PaymentProcessor, txn model.Transaction) port.PaymentProcessor {
	candidates := EligibleProcessors(processors, txn)
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Processor.ReliabilityScore() > candidates[j].Processor.ReliabilityScore()
	})
	return candidates[0].Processor
}

// BalancedStrategy blends fee and reliability into a single score:
//
//	score = 0.5 * fee/maxFee + 0.5 * (1 - reliability/100)
//
// with the fee normalized against the highest candidate fee. Lower fee and
// higher reliability both lower the score; the lowest score wins, ties
// resolving to the earliest processor in input order.
type BalancedStrategy struct{}

func (BalancedStrategy) Select(processors []port.PaymentProcessor, txn model.Transaction) port.PaymentProcessor {
	candidates := EligibleProcessors(processors, txn)
	if len(candidates) == 0 {
		return nil
	}

	maxFee := candidates[0].Fee
	for _, c := range candidates[1:] {
		if c.Fee.GreaterThan(maxFee) {
			maxFee = c.Fee
		}
	}

	scores := make([]float64, len(candidates))
	for i, c := range candidates {
		feeTerm := 0.0
		if maxFee.IsPositive() {
			feeTerm, _ = c.Fee.Div(maxFee).Float64()
		}
		scores[i] = 0.5*feeTerm + 0.5*(1-c.Processor.ReliabilityScore()/100)
	}

	best := 0
	for i := 1; i < len(candidates); i++ {
		if scores[i] < scores[best] {
			best = i
		}
	}
	return candidates[best].Processor
}
