package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"wise-ads/internal/core/domain"
	"wise-ads/internal/core/port"
)

// AdGroupService implements port.AdGroupUseCase. All operations are
// scoped to a campaign the caller owns.
type AdGroupService struct {
	verifier   ownershipVerifier
	ads        port.AdsClient
	customerID string
	logger     *slog.Logger
}

// NewAdGroupService wires an ad group service for the configured
// customer account.
func NewAdGroupService(owns port.OwnershipRepo, ads port.AdsClient, customerID string, logger *slog.Logger) *AdGroupService {
	return &AdGroupService{
		verifier:   ownershipVerifier{owns: owns, ads: ads, logger: logger},
		ads:        ads,
		customerID: customerID,
		logger:     logger,
	}
}

// guardCampaign runs the codec and the ownership check shared by both
// operations. The numeric id is returned for query building.
func (s *AdGroupService) guardCampaign(ctx context.Context, caller domain.Identity, rawCampaignID string) (int64, error) {
	campaignID, ok := domain.ParseID(rawCampaignID)
	if !ok {
		return 0, &domain.ValidationError{Message: "invalid campaignId"}
	}
	owned, err := s.verifier.verifyCampaign(ctx, caller.ID, rawCampaignID)
	if err != nil {
		return 0, err
	}
	if !owned {
		return 0, port.ErrAccessDenied
	}
	return campaignID, nil
}

// List returns the ad groups of an owned campaign.
func (s *AdGroupService) List(ctx context.Context, caller domain.Identity, rawCampaignID string) ([]domain.AdGroup, error) {
	campaignID, err := s.guardCampaign(ctx, caller, rawCampaignID)
	if err != nil {
		return nil, err
	}

	rows, err := s.ads.Search(ctx, fmt.Sprintf(`
        SELECT
            ad_group.id,
            ad_group.name,
            ad_group.status,
            ad_group.type,
            ad_group.cpc_bid_micros
        FROM ad_group
        WHERE campaign.id = %d
        ORDER BY ad_group.name`, campaignID))
	if err != nil {
		return nil, err
	}

	groups := make([]domain.AdGroup, 0, len(rows))
	for _, row := range rows {
		if row.AdGroup == nil {
			continue
		}
		groups = append(groups, domain.AdGroup{
			ID:           strconv.FormatInt(row.AdGroup.ID, 10),
			Name:         row.AdGroup.Name,
			Status:       row.AdGroup.Status,
			Type:         row.AdGroup.Type,
			CPCBidMicros: row.AdGroup.CPCBidMicros,
		})
	}
	return groups, nil
}

// Create adds a search ad group to an owned campaign.
func (s *AdGroupService) Create(ctx context.Context, caller domain.Identity, rawCampaignID string, req domain.CreateAdGroupRequest) (*port.CreateAdGroupResult, error) {
	campaignID, err := s.guardCampaign(ctx, caller, rawCampaignID)
	if err != nil {
		return nil, err
	}
	if err = req.Validate(); err != nil {
		return nil, err
	}

	op := domain.ComposeAdGroupCreation(s.customerID, campaignID, req)
	result, err := s.ads.Mutate(ctx, []domain.MutateOperation{op})
	if err != nil {
		return nil, err
	}

	adGroupID, ok := result.CreatedID(domain.EntityAdGroup)
	if !ok {
		s.logger.Error("ad group created but id unrecoverable",
			slog.String("campaign_id", rawCampaignID),
			slog.Any("results", result.Results))
		return nil, port.ErrIDUnrecoverable
	}
	return &port.CreateAdGroupResult{Results: result, AdGroupID: adGroupID}, nil
}
