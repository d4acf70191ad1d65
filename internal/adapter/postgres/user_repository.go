package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"wise-ads/internal/core/domain"
	"wise-ads/internal/core/port"
)

// UserRepository implements port.UserRepo using pgxpool for PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a new repository instance.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint hits.
const uniqueViolation = "23505"

// Create inserts a user with the default role and returns the stored
// row. A duplicate email maps to port.ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	u := domain.User{Email: email, Role: domain.RoleUser}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id, created_at`,
		email, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, port.ErrEmailTaken
		}
		return nil, err
	}
	return &u, nil
}

// FindByEmail returns the user and its password hash, or nil when the
// email is unknown.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, string, error) {
	var (
		u    domain.User
		hash string
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, role, created_at FROM users WHERE email = $1`,
		email).Scan(&u.ID, &u.Email, &hash, &u.Role, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	return &u, hash, nil
}

// List returns every user with its campaign count, newest first.
func (r *UserRepository) List(ctx context.Context) ([]port.UserWithStats, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT u.id, u.email, u.role, u.created_at,
            (SELECT count(*) FROM user_campaigns uc WHERE uc.user_id = u.id) AS campaign_count
        FROM users u
        ORDER BY u.created_at DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.UserWithStats, error) {
		var u port.UserWithStats
		err := row.Scan(&u.ID, &u.Email, &u.Role, &u.CreatedAt, &u.CampaignCount)
		return u, err
	})
}

// Delete removes a user account. Ownership records cascade via the
// foreign key.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}
