package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"wise-ads/internal/core/domain"
	"wise-ads/internal/core/port"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeOwnershipRepo is an in-memory port.OwnershipRepo.
type fakeOwnershipRepo struct {
	mu    sync.Mutex
	pairs map[string]bool
	err   error
}

func newFakeOwnershipRepo() *fakeOwnershipRepo {
	return &fakeOwnershipRepo{pairs: make(map[string]bool)}
}

func ownKey(userID int64, campaignID string) string {
	return fmt.Sprintf("%d/%s", userID, campaignID)
}

func (f *fakeOwnershipRepo) CampaignIDs(_ context.Context, userID int64) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []string
	prefix := fmt.Sprintf("%d/", userID)
	for key := range f.pairs {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			ids = append(ids, key[len(prefix):])
		}
	}
	return ids, nil
}

func (f *fakeOwnershipRepo) Exists(_ context.Context, userID int64, campaignID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pairs[ownKey(userID, campaignID)], nil
}

func (f *fakeOwnershipRepo) Insert(_ context.Context, userID int64, campaignID string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pairs[ownKey(userID, campaignID)] = true
	return nil
}

func (f *fakeOwnershipRepo) Delete(_ context.Context, userID int64, campaignID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.pairs, ownKey(userID, campaignID))
	return nil
}

func (f *fakeOwnershipRepo) DeleteAllForUser(_ context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	prefix := fmt.Sprintf("%d/", userID)
	for key := range f.pairs {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			delete(f.pairs, key)
		}
	}
	return nil
}

// fakeAdsClient dispatches to configurable functions and records the
// operations it received.
type fakeAdsClient struct {
	searchFn  func(query string) ([]port.SearchRow, error)
	mutateFn  func(ops []domain.MutateOperation) (*port.MutateResult, error)
	mutateOps [][]domain.MutateOperation
	searches  []string
}

func (f *fakeAdsClient) Search(_ context.Context, query string) ([]port.SearchRow, error) {
	f.searches = append(f.searches, query)
	if f.searchFn == nil {
		return nil, nil
	}
	return f.searchFn(query)
}

func (f *fakeAdsClient) Mutate(_ context.Context, ops []domain.MutateOperation) (*port.MutateResult, error) {
	f.mutateOps = append(f.mutateOps, ops)
	if f.mutateFn == nil {
		return &port.MutateResult{}, nil
	}
	return f.mutateFn(ops)
}

// parentRow builds the single-row response of a parent-campaign lookup.
func parentRow(campaignID int64) []port.SearchRow {
	return []port.SearchRow{{Campaign: &port.CampaignRow{ID: campaignID}}}
}

// fakeUserRepo is an in-memory port.UserRepo.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*fakeUserRecord
}

type fakeUserRecord struct {
	user domain.User
	hash string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[string]*fakeUserRecord)}
}

func (f *fakeUserRepo) Create(_ context.Context, email, passwordHash string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[email]; exists {
		return nil, port.ErrEmailTaken
	}
	u := domain.User{ID: f.nextID, Email: email, Role: domain.RoleUser}
	f.nextID++
	f.users[email] = &fakeUserRecord{user: u, hash: passwordHash}
	return &u, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.users[email]
	if !ok {
		return nil, "", nil
	}
	u := rec.user
	return &u, rec.hash, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]port.UserWithStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []port.UserWithStats
	for _, rec := range f.users {
		out = append(out, port.UserWithStats{User: rec.user})
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for email, rec := range f.users {
		if rec.user.ID == id {
			delete(f.users, email)
		}
	}
	return nil
}

// fakeIssuer issues predictable tokens.
type fakeIssuer struct{}

func (fakeIssuer) Issue(userID int64, email, _ string) (string, error) {
	return fmt.Sprintf("token-%d-%s", userID, email), nil
}

// fakeIdentityVerifier resolves any credential to a fixed email.
type fakeIdentityVerifier struct {
	email string
	err   error
}

func (f fakeIdentityVerifier) VerifyIDToken(_ context.Context, _ string) (string, error) {
	return f.email, f.err
}

// fakeTextGenerator returns canned text.
type fakeTextGenerator struct {
	text string
	err  error
}

func (f fakeTextGenerator) Generate(_ context.Context, _ string) (string, error) {
	return f.text, f.err
}
