package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OwnershipRepository implements port.OwnershipRepo over the
// user_campaigns join table. Every statement is a single atomic
// insert/delete/select, so correctness does not depend on request
// ordering.
type OwnershipRepository struct {
	pool *pgxpool.Pool
}

// NewOwnershipRepository returns a new repository instance.
func NewOwnershipRepository(pool *pgxpool.Pool) *OwnershipRepository {
	return &OwnershipRepository{pool: pool}
}

// CampaignIDs returns every campaign id owned by the user.
func (r *OwnershipRepository) CampaignIDs(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT campaign_id FROM user_campaigns WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// Exists reports whether the exact (user, campaign) pair is recorded.
func (r *OwnershipRepository) Exists(ctx context.Context, userID int64, campaignID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_campaigns WHERE user_id = $1 AND campaign_id = $2)`,
		userID, campaignID).Scan(&exists)
	return exists, err
}

// Insert records ownership. Re-inserting an existing pair is a no-op so
// concurrent grants stay safe.
func (r *OwnershipRepository) Insert(ctx context.Context, userID int64, campaignID string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_campaigns (user_id, campaign_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, campaignID)
	return err
}

// Delete revokes ownership of a single campaign.
func (r *OwnershipRepository) Delete(ctx context.Context, userID int64, campaignID string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM user_campaigns WHERE user_id = $1 AND campaign_id = $2`, userID, campaignID)
	return err
}

// DeleteAllForUser revokes every grant held by the user.
func (r *OwnershipRepository) DeleteAllForUser(ctx context.Context, userID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM user_campaigns WHERE user_id = $1`, userID)
	return err
}
