package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"wise-ads/internal/core/domain"
	"wise-ads/internal/core/port"
)

// KeywordService implements port.KeywordUseCase. Keyword operations are
// scoped through the ad group's owning campaign; the hierarchy hop is
// fail-closed, so a missing group and a foreign group are
// indistinguishable to the caller.
type KeywordService struct {
	verifier   ownershipVerifier
	ads        port.AdsClient
	customerID string
	logger     *slog.Logger
}

// NewKeywordService wires a keyword service for the configured customer
// account.
func NewKeywordService(owns port.OwnershipRepo, ads port.AdsClient, customerID string, logger *slog.Logger) *KeywordService {
	return &KeywordService{
		verifier:   ownershipVerifier{owns: owns, ads: ads, logger: logger},
		ads:        ads,
		customerID: customerID,
		logger:     logger,
	}
}

func (s *KeywordService) guardAdGroup(ctx context.Context, caller domain.Identity, rawAdGroupID string) (int64, error) {
	adGroupID, ok := domain.ParseID(rawAdGroupID)
	if !ok {
		return 0, &domain.ValidationError{Message: "invalid adGroupId"}
	}
	if !s.verifier.verifyAdGroup(ctx, caller.ID, adGroupID) {
		return 0, port.ErrAccessDenied
	}
	return adGroupID, nil
}

// List returns the keyword criteria of an accessible ad group.
func (s *KeywordService) List(ctx context.Context, caller domain.Identity, rawAdGroupID string) ([]domain.Keyword, error) {
	adGroupID, err := s.guardAdGroup(ctx, caller, rawAdGroupID)
	if err != nil {
		return nil, err
	}

	rows, err := s.ads.Search(ctx, fmt.Sprintf(`
        SELECT
            ad_group_criterion.criterion_id,
            ad_group_criterion.keyword.text,
            ad_group_criterion.keyword.match_type,
            ad_group_criterion.status
        FROM ad_group_criterion
        WHERE ad_group.id = %d
          AND ad_group_criterion.type = 'KEYWORD'
        ORDER BY ad_group_criterion.keyword.text`, adGroupID))
	if err != nil {
		return nil, err
	}

	keywords := make([]domain.Keyword, 0, len(rows))
	for _, row := range rows {
		if row.AdGroupCriterion == nil {
			continue
		}
		k := domain.Keyword{
			CriterionID: strconv.FormatInt(row.AdGroupCriterion.CriterionID, 10),
			Status:      row.AdGroupCriterion.Status,
		}
		if kw := row.AdGroupCriterion.Keyword; kw != nil {
			k.Text = kw.Text
			k.MatchType = kw.MatchType
		}
		keywords = append(keywords, k)
	}
	return keywords, nil
}

// Create adds keyword criteria to an accessible ad group, one operation
// per keyword in a single batch.
func (s *KeywordService) Create(ctx context.Context, caller domain.Identity, rawAdGroupID string, keywords []domain.KeywordRequest) (*port.MutateResult, error) {
	adGroupID, err := s.guardAdGroup(ctx, caller, rawAdGroupID)
	if err != nil {
		return nil, err
	}
	if err = domain.ValidateKeywords(keywords); err != nil {
		return nil, err
	}

	ops := domain.ComposeKeywordCreations(s.customerID, adGroupID, keywords)
	return s.ads.Mutate(ctx, ops)
}
