package domain

import "strings"

// ComposeCampaignCreation builds the two-operation batch that creates a
// budget and a campaign referencing it. The budget is addressed by a
// temporary placeholder resolved by the platform within the same atomic
// batch. The campaign starts paused.
func ComposeCampaignCreation(customerID string, req CreateCampaignRequest) ([]MutateOperation, error) {
	variant, err := BiddingVariantFor(req.BiddingStrategy)
	if err != nil {
		return nil, err
	}

	batch := NewMutationBatch(customerID)
	budgetName := batch.TempResourceName(KindCampaignBudget)

	batch.Create(EntityCampaignBudget, CampaignBudgetPayload{
		ResourceName:     budgetName,
		Name:             req.Name + " Budget",
		AmountMicros:     req.BudgetAmountMicros,
		DeliveryMethod:   "STANDARD",
		ExplicitlyShared: false,
	})

	campaign := CampaignPayload{
		Name:                   req.Name,
		CampaignBudget:         budgetName,
		AdvertisingChannelType: ChannelTypeSearch,
		Status:                 StatusPaused,
		NetworkSettings: &NetworkSettings{
			TargetGoogleSearch:   true,
			TargetSearchNetwork:  false,
			TargetContentNetwork: false,
		},
		ContainsEUPoliticalAdvertising: euPoliticalAdsNone,
	}
	variant.apply(&campaign)
	batch.Create(EntityCampaign, campaign)

	return batch.Operations(), nil
}

// ComposeStatusUpdate builds the single operation that flips a campaign
// between ENABLED and PAUSED.
func ComposeStatusUpdate(customerID string, campaignID int64, status string) MutateOperation {
	return MutateOperation{
		Entity:    EntityCampaign,
		Operation: OpUpdate,
		Resource: CampaignPayload{
			ResourceName: ResourceName(KindCampaign, customerID, campaignID),
			Status:       status,
		},
	}
}

// ComposeAdGroupCreation builds the operation that creates a search ad
// group under an existing campaign. A zero bid takes the default.
func ComposeAdGroupCreation(customerID string, campaignID int64, req CreateAdGroupRequest) MutateOperation {
	bid := req.CPCBidMicros
	if bid == 0 {
		bid = defaultAdGroupCPCBidMicros
	}
	return MutateOperation{
		Entity:    EntityAdGroup,
		Operation: OpCreate,
		Resource: AdGroupPayload{
			Name:         req.Name,
			Campaign:     ResourceName(KindCampaign, customerID, campaignID),
			Status:       StatusEnabled,
			Type:         "SEARCH_STANDARD",
			CPCBidMicros: bid,
		},
	}
}

// ComposeAdCreation builds the operation that creates a responsive
// search ad. Only the first headline is pinned to the primary slot; the
// ad itself starts paused.
func ComposeAdCreation(customerID string, adGroupID int64, req CreateAdRequest) MutateOperation {
	headlines := make([]AdTextAsset, len(req.Headlines))
	for i, text := range req.Headlines {
		asset := AdTextAsset{Text: text}
		if i == 0 {
			asset.PinnedField = "HEADLINE_1"
		}
		headlines[i] = asset
	}
	descriptions := make([]AdTextAsset, len(req.Descriptions))
	for i, text := range req.Descriptions {
		descriptions[i] = AdTextAsset{Text: text}
	}
	return MutateOperation{
		Entity:    EntityAdGroupAd,
		Operation: OpCreate,
		Resource: AdGroupAdPayload{
			AdGroup: ResourceName(KindAdGroup, customerID, adGroupID),
			Status:  StatusPaused,
			Ad: AdPayload{
				ResponsiveSearchAd: &ResponsiveSearchAd{
					Headlines:    headlines,
					Descriptions: descriptions,
				},
				FinalURLs: []string{req.FinalURL},
			},
		},
	}
}

// ComposeKeywordCreations fans a keyword batch out into one operation
// per keyword, all targeting the same ad group. An omitted match type
// defaults to BROAD.
func ComposeKeywordCreations(customerID string, adGroupID int64, keywords []KeywordRequest) []MutateOperation {
	adGroup := ResourceName(KindAdGroup, customerID, adGroupID)
	ops := make([]MutateOperation, len(keywords))
	for i, k := range keywords {
		matchType := k.MatchType
		if matchType == "" {
			matchType = MatchBroad
		}
		ops[i] = MutateOperation{
			Entity:    EntityAdGroupCriterion,
			Operation: OpCreate,
			Resource: AdGroupCriterionPayload{
				AdGroup: adGroup,
				Status:  StatusEnabled,
				Keyword: KeywordInfo{
					Text:      strings.TrimSpace(k.Text),
					MatchType: matchType,
				},
			},
		}
	}
	return ops
}
