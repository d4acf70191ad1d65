package port

import (
	"context"

	"wise-ads/internal/core/domain"
)

// CampaignUseCase exposes campaign operations for an authenticated
// caller. Raw identifiers from the request path are passed through
// unparsed; implementations run the identifier codec before anything
// else so malformed fragments never reach the query layer.
type CampaignUseCase interface {
	// List returns the caller's campaigns with metrics. Users without any
	// ownership record get an empty list without an upstream call.
	List(ctx context.Context, caller domain.Identity) ([]domain.Campaign, error)
	// Create provisions a budget and campaign in one atomic batch and
	// records ownership for the caller on success.
	Create(ctx context.Context, caller domain.Identity, req domain.CreateCampaignRequest) (*CreateCampaignResult, error)
	// SetStatus flips an owned campaign between ENABLED and PAUSED.
	SetStatus(ctx context.Context, caller domain.Identity, rawCampaignID, status string) (*MutateResult, error)
}

// CreateCampaignResult carries the raw batch result plus the recovered
// campaign identifier.
type CreateCampaignResult struct {
	Results    *MutateResult `json:"results"`
	CampaignID string        `json:"campaignId"`
}

// AdGroupUseCase exposes ad group operations scoped to owned campaigns.
type AdGroupUseCase interface {
	List(ctx context.Context, caller domain.Identity, rawCampaignID string) ([]domain.AdGroup, error)
	Create(ctx context.Context, caller domain.Identity, rawCampaignID string, req domain.CreateAdGroupRequest) (*CreateAdGroupResult, error)
}

// CreateAdGroupResult carries the batch result plus the recovered ad
// group identifier.
type CreateAdGroupResult struct {
	Results   *MutateResult `json:"results"`
	AdGroupID string        `json:"adGroupId"`
}

// AdUseCase exposes ad creation scoped to ad groups whose campaign the
// caller owns.
type AdUseCase interface {
	Create(ctx context.Context, caller domain.Identity, rawAdGroupID string, req domain.CreateAdRequest) (*MutateResult, error)
}

// KeywordUseCase exposes keyword operations scoped to ad groups whose
// campaign the caller owns.
type KeywordUseCase interface {
	List(ctx context.Context, caller domain.Identity, rawAdGroupID string) ([]domain.Keyword, error)
	Create(ctx context.Context, caller domain.Identity, rawAdGroupID string, keywords []domain.KeywordRequest) (*MutateResult, error)
}

// AuthResult is a freshly issued token with its subject.
type AuthResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// AuthUseCase covers registration and both login paths.
type AuthUseCase interface {
	Register(ctx context.Context, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// LoginWithGoogle verifies an OAuth identity token and signs the
	// matching user in, creating the account on first login.
	LoginWithGoogle(ctx context.Context, credential string) (*AuthResult, error)
}

// AdminUseCase covers administrative user and grant management. The
// HTTP layer guards these behind the admin role.
type AdminUseCase interface {
	ListUsers(ctx context.Context) ([]UserWithStats, error)
	// DeleteUser removes an account and cascades its ownership records.
	// Admins cannot delete themselves.
	DeleteUser(ctx context.Context, caller domain.Identity, rawUserID string) error
	// ListAllCampaigns returns every search campaign on the platform
	// account regardless of ownership.
	ListAllCampaigns(ctx context.Context) ([]domain.Campaign, error)
	ListUserCampaigns(ctx context.Context, rawUserID string) ([]string, error)
	GrantCampaign(ctx context.Context, rawUserID, campaignID string) error
	RevokeCampaign(ctx context.Context, rawUserID, campaignID string) error
}

// AdGroupPlan is the generated ad group content of an onboarding plan.
type AdGroupPlan struct {
	Name         string                  `json:"name"`
	Headlines    []string                `json:"headlines"`
	Descriptions []string                `json:"descriptions"`
	Keywords     []domain.KeywordRequest `json:"keywords"`
}

// OnboardingPlan is a generated campaign structure suggestion.
type OnboardingPlan struct {
	CampaignName string      `json:"campaignName"`
	Category     string      `json:"category"`
	AdGroup      AdGroupPlan `json:"adGroup"`
}

// OnboardingUseCase turns a website URL into a suggested campaign
// structure via the text generation collaborator.
type OnboardingUseCase interface {
	Generate(ctx context.Context, websiteURL string) (*OnboardingPlan, error)
}
