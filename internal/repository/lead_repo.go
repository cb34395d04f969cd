package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anyulbade/travel-budget-estimator/internal/model"
)

// LeadRepository appends lead submissions to the leads table. There are no
// update or delete operations; the table is an append-only log and Postgres
// serializes concurrent inserts.
type LeadRepository struct {
	pool *pgxpool.Pool
}

func NewLeadRepository(pool *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{pool: pool}
}

func (r *LeadRepository) Insert(ctx context.Context, lead *model.Lead) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO leads (continent, country, duration_weeks, month, year, total_amount, total_savings,
			full_name, email, preferred_benefit, session_id, ip_hash, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at`,
		lead.Continent, lead.Country, lead.DurationWeeks, lead.Month, lead.Year,
		lead.TotalAmount, lead.TotalSavings, lead.FullName, lead.Email,
		lead.PreferredBenefit, lead.SessionID, lead.IPHash, lead.UserAgent,
	).Scan(&lead.ID, &lead.CreatedAt, &lead.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// Count reports how many leads have been collected.
func (r *LeadRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM leads`).Scan(&count)
	return count, err
}
