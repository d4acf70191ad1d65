package usecase

import (
	"context"
	"errors"
	"log/slog"

	"wise-ads/internal/core/domain"
	"wise-ads/internal/core/port"
)

// AdService implements port.AdUseCase.
type AdService struct {
	verifier   ownershipVerifier
	ads        port.AdsClient
	customerID string
	logger     *slog.Logger
}

// NewAdService wires an ad service for the configured customer account.
func NewAdService(owns port.OwnershipRepo, ads port.AdsClient, customerID string, logger *slog.Logger) *AdService {
	return &AdService{
		verifier:   ownershipVerifier{owns: owns, ads: ads, logger: logger},
		ads:        ads,
		customerID: customerID,
		logger:     logger,
	}
}

// Create adds a paused responsive search ad to an ad group whose
// campaign the caller owns. Ad creation is the one operation whose
// contract reveals existence: a missing ad group is reported as not
// found rather than folded into access denied.
func (s *AdService) Create(ctx context.Context, caller domain.Identity, rawAdGroupID string, req domain.CreateAdRequest) (*port.MutateResult, error) {
	adGroupID, ok := domain.ParseID(rawAdGroupID)
	if !ok {
		return nil, &domain.ValidationError{Message: "invalid adGroupId"}
	}

	campaignID, err := s.verifier.resolveParentCampaign(ctx, adGroupID)
	if errors.Is(err, port.ErrNotFound) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	owned, err := s.verifier.verifyCampaign(ctx, caller.ID, campaignID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, port.ErrAccessDenied
	}

	if err = req.Validate(); err != nil {
		return nil, err
	}

	op := domain.ComposeAdCreation(s.customerID, adGroupID, req)
	return s.ads.Mutate(ctx, []domain.MutateOperation{op})
}
