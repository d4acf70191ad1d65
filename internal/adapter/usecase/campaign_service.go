package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"wise-ads/internal/core/domain"
	"wise-ads/internal/core/port"
)

// CampaignService implements port.CampaignUseCase. It orchestrates
// ownership checks, request validation, mutation composition and
// ownership bookkeeping around the platform client.
type CampaignService struct {
	verifier   ownershipVerifier
	owns       port.OwnershipRepo
	ads        port.AdsClient
	customerID string
	logger     *slog.Logger
}

// NewCampaignService wires a campaign service for the configured
// customer account.
func NewCampaignService(owns port.OwnershipRepo, ads port.AdsClient, customerID string, logger *slog.Logger) *CampaignService {
	return &CampaignService{
		verifier:   ownershipVerifier{owns: owns, ads: ads, logger: logger},
		owns:       owns,
		ads:        ads,
		customerID: customerID,
		logger:     logger,
	}
}

// List returns the caller's campaigns with metrics. A caller without
// ownership records gets an empty list without touching the platform.
func (s *CampaignService) List(ctx context.Context, caller domain.Identity) ([]domain.Campaign, error) {
	ids, err := s.owns.CampaignIDs(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.Campaign{}, nil
	}

	// Stored ids are opaque strings; run them through the codec anyway so
	// nothing unparseable is ever spliced into a query.
	filtered := make([]string, 0, len(ids))
	for _, raw := range ids {
		if _, ok := domain.ParseID(raw); ok {
			filtered = append(filtered, raw)
		}
	}
	if len(filtered) == 0 {
		return []domain.Campaign{}, nil
	}

	rows, err := s.ads.Search(ctx, `
        SELECT
            campaign.id,
            campaign.name,
            campaign.status,
            campaign.advertising_channel_type,
            campaign_budget.amount_micros,
            metrics.impressions,
            metrics.clicks,
            metrics.cost_micros
        FROM campaign
        WHERE campaign.advertising_channel_type = 'SEARCH'
          AND campaign.id IN (`+strings.Join(filtered, ",")+`)
        ORDER BY campaign.name`)
	if err != nil {
		return nil, err
	}

	campaigns := make([]domain.Campaign, 0, len(rows))
	for _, row := range rows {
		if row.Campaign == nil {
			continue
		}
		c := domain.Campaign{
			ID:          strconv.FormatInt(row.Campaign.ID, 10),
			Name:        row.Campaign.Name,
			Status:      row.Campaign.Status,
			ChannelType: row.Campaign.AdvertisingChannelType,
		}
		if row.CampaignBudget != nil {
			c.BudgetMicros = row.CampaignBudget.AmountMicros
		}
		if row.Metrics != nil {
			c.Impressions = row.Metrics.Impressions
			c.Clicks = row.Metrics.Clicks
			c.CostMicros = row.Metrics.CostMicros
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, nil
}

// Create provisions a budget and campaign in one atomic batch, recovers
// the generated id and records ownership for the caller. Ownership is
// written only after the platform confirms the creation; a partially
// failed batch therefore leaves no local record.
func (s *CampaignService) Create(ctx context.Context, caller domain.Identity, req domain.CreateCampaignRequest) (*port.CreateCampaignResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ops, err := domain.ComposeCampaignCreation(s.customerID, req)
	if err != nil {
		return nil, err
	}
	result, err := s.ads.Mutate(ctx, ops)
	if err != nil {
		return nil, err
	}

	campaignID, ok := result.CreatedID(domain.EntityCampaign)
	if !ok {
		// The campaign may exist upstream untracked; log everything we got.
		s.logger.Error("campaign created but id unrecoverable",
			slog.Int64("user_id", caller.ID),
			slog.Any("results", result.Results))
		return nil, port.ErrIDUnrecoverable
	}

	if err = s.owns.Insert(ctx, caller.ID, campaignID); err != nil {
		return nil, err
	}
	return &port.CreateCampaignResult{Results: result, CampaignID: campaignID}, nil
}

// SetStatus flips an owned campaign between ENABLED and PAUSED.
func (s *CampaignService) SetStatus(ctx context.Context, caller domain.Identity, rawCampaignID, status string) (*port.MutateResult, error) {
	campaignID, ok := domain.ParseID(rawCampaignID)
	if !ok {
		return nil, &domain.ValidationError{Message: "invalid campaignId"}
	}
	owned, err := s.verifier.verifyCampaign(ctx, caller.ID, rawCampaignID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, port.ErrAccessDenied
	}
	if err = domain.ValidateStatus(status); err != nil {
		return nil, err
	}

	op := domain.ComposeStatusUpdate(s.customerID, campaignID, status)
	return s.ads.Mutate(ctx, []domain.MutateOperation{op})
}
