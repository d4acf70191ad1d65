package port

import (
	"context"

	"wise-ads/internal/core/domain"
)

// OwnershipRepo is the persistence port for (user, campaign) ownership
// pairs, the single source of truth for who may touch what. Campaign
// identifiers are stored as opaque strings. Implementations must make
// Insert idempotent (insert if absent) so concurrent re-grants are safe.
type OwnershipRepo interface {
	// CampaignIDs returns every campaign the user owns.
	CampaignIDs(ctx context.Context, userID int64) ([]string, error)
	// Exists reports whether the exact (user, campaign) pair is recorded.
	Exists(ctx context.Context, userID int64, campaignID string) (bool, error)
	// Insert records ownership; inserting an existing pair is a no-op.
	Insert(ctx context.Context, userID int64, campaignID string) error
	// Delete revokes ownership of a single campaign.
	Delete(ctx context.Context, userID int64, campaignID string) error
	// DeleteAllForUser revokes every grant held by the user.
	DeleteAllForUser(ctx context.Context, userID int64) error
}

// UserWithStats is a user row joined with its ownership count, used by
// the admin listing.
type UserWithStats struct {
	domain.User
	CampaignCount int64 `json:"campaignCount"`
}

// UserRepo is the persistence port for user accounts.
type UserRepo interface {
	// Create inserts a user and returns it with the assigned id.
	// Duplicate emails return ErrEmailTaken.
	Create(ctx context.Context, email, passwordHash string) (*domain.User, error)
	// FindByEmail returns nil when no such user exists.
	FindByEmail(ctx context.Context, email string) (*domain.User, string, error)
	// List returns all users with their campaign counts, newest first.
	List(ctx context.Context) ([]UserWithStats, error)
	// Delete removes a user account.
	Delete(ctx context.Context, id int64) error
}
