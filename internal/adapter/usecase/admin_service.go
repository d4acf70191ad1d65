package usecase

import (
	"context"
	"log/slog"
	"strconv"

	"wise-ads/internal/core/domain"
	"wise-ads/internal/core/port"
)

// AdminService implements port.AdminUseCase. Role enforcement happens at
// the transport layer; these methods assume an admin caller.
type AdminService struct {
	users  port.UserRepo
	owns   port.OwnershipRepo
	ads    port.AdsClient
	logger *slog.Logger
}

// NewAdminService wires an admin service.
func NewAdminService(users port.UserRepo, owns port.OwnershipRepo, ads port.AdsClient, logger *slog.Logger) *AdminService {
	return &AdminService{users: users, owns: owns, ads: ads, logger: logger}
}

// ListUsers returns every account with its campaign count.
func (s *AdminService) ListUsers(ctx context.Context) ([]port.UserWithStats, error) {
	return s.users.List(ctx)
}

// DeleteUser removes an account and its ownership grants. Admins cannot
// delete themselves; demote first, then let another admin delete.
func (s *AdminService) DeleteUser(ctx context.Context, caller domain.Identity, rawUserID string) error {
	userID, ok := domain.ParseID(rawUserID)
	if !ok {
		return &domain.ValidationError{Message: "invalid user id"}
	}
	if userID == caller.ID {
		return port.ErrSelfDelete
	}
	if err := s.owns.DeleteAllForUser(ctx, userID); err != nil {
		return err
	}
	return s.users.Delete(ctx, userID)
}

// ListAllCampaigns returns every search campaign on the platform
// account, regardless of ownership.
func (s *AdminService) ListAllCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := s.ads.Search(ctx, `
        SELECT
            campaign.id,
            campaign.name,
            campaign.status
        FROM campaign
        WHERE campaign.advertising_channel_type = 'SEARCH'
        ORDER BY campaign.name`)
	if err != nil {
		return nil, err
	}
	campaigns := make([]domain.Campaign, 0, len(rows))
	for _, row := range rows {
		if row.Campaign == nil {
			continue
		}
		campaigns = append(campaigns, domain.Campaign{
			ID:     strconv.FormatInt(row.Campaign.ID, 10),
			Name:   row.Campaign.Name,
			Status: row.Campaign.Status,
		})
	}
	return campaigns, nil
}

// ListUserCampaigns returns the campaign ids granted to a user.
func (s *AdminService) ListUserCampaigns(ctx context.Context, rawUserID string) ([]string, error) {
	userID, ok := domain.ParseID(rawUserID)
	if !ok {
		return nil, &domain.ValidationError{Message: "invalid user id"}
	}
	return s.owns.CampaignIDs(ctx, userID)
}

// GrantCampaign records ownership of a campaign for a user. Granting an
// existing pair is a no-op.
func (s *AdminService) GrantCampaign(ctx context.Context, rawUserID, campaignID string) error {
	userID, ok := domain.ParseID(rawUserID)
	if !ok {
		return &domain.ValidationError{Message: "invalid user id"}
	}
	if campaignID == "" {
		return &domain.ValidationError{Message: "campaignId is required"}
	}
	return s.owns.Insert(ctx, userID, campaignID)
}

// RevokeCampaign removes a user's grant for a campaign.
func (s *AdminService) RevokeCampaign(ctx context.Context, rawUserID, campaignID string) error {
	userID, ok := domain.ParseID(rawUserID)
	if !ok {
		return &domain.ValidationError{Message: "invalid user id"}
	}
	if _, ok = domain.ParseID(campaignID); !ok {
		return &domain.ValidationError{Message: "invalid campaignId"}
	}
	return s.owns.Delete(ctx, userID, campaignID)
}
