package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gatewise/payment-router/internal/domain/model"
	"github.com/gatewise/payment-router/internal/domain/port"
)

// DecisionRepo persists routing decisions to Postgres.
type DecisionRepo struct {
	pool *pgxpool.Pool
}

var _ port.DecisionRepository = (*DecisionRepo)(nil)

func NewDecisionRepo(pool *pgxpool.Pool) *DecisionRepo {
	return &DecisionRepo{pool: pool}
}

func (r *DecisionRepo) Record(ctx context.Context, d model.RoutingDecision) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO routing_decisions (
			id, strategy, processor, amount, currency, country,
			fee, outcome, failure_reason, decided_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		d.ID, d.Strategy, d.Processor, d.Amount, d.Currency, d.Country,
		d.Fee, d.Outcome, d.FailureReason, d.DecidedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting routing decision %s: %w", d.ID, err)
	}
	return nil
}
