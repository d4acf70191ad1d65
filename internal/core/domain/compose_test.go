package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeCampaignCreation(t *testing.T) {
	req := CreateCampaignRequest{Name: "Spring Sale", BudgetAmountMicros: 5_000_000}

	ops, err := ComposeCampaignCreation("111222", req)
	require.NoError(t, err)
	require.Len(t, ops, 2)

	require.Equal(t, EntityCampaignBudget, ops[0].Entity)
	require.Equal(t, OpCreate, ops[0].Operation)
	budget := ops[0].Resource.(CampaignBudgetPayload)
	require.Equal(t, "customers/111222/campaignBudgets/-1", budget.ResourceName)
	require.Equal(t, "Spring Sale Budget", budget.Name)
	require.Equal(t, int64(5_000_000), budget.AmountMicros)
	require.False(t, budget.ExplicitlyShared)

	require.Equal(t, EntityCampaign, ops[1].Entity)
	campaign := ops[1].Resource.(CampaignPayload)
	// the campaign must reference the budget via the same placeholder
	require.Equal(t, budget.ResourceName, campaign.CampaignBudget)
	require.Equal(t, StatusPaused, campaign.Status)
	require.Equal(t, ChannelTypeSearch, campaign.AdvertisingChannelType)
	require.True(t, campaign.NetworkSettings.TargetGoogleSearch)
	require.False(t, campaign.NetworkSettings.TargetContentNetwork)
}

// An omitted strategy always yields a target-spend block, and whatever
// the strategy, exactly one bidding block is attached.
func TestComposeCampaignBiddingExclusive(t *testing.T) {
	cases := map[string]string{
		"":                     "target_spend",
		StrategyMaximizeClicks: "target_spend",
		StrategyManualCPC:      "manual_cpc",
		StrategyTargetCPA:      "target_cpa",
	}
	for strategy, want := range cases {
		req := CreateCampaignRequest{Name: "c", BudgetAmountMicros: 1, BiddingStrategy: strategy}
		ops, err := ComposeCampaignCreation("1", req)
		require.NoError(t, err, "strategy %q", strategy)
		campaign := ops[1].Resource.(CampaignPayload)

		attached := map[string]bool{
			"manual_cpc":   campaign.ManualCPC != nil,
			"target_cpa":   campaign.TargetCPA != nil,
			"target_spend": campaign.TargetSpend != nil,
		}
		count := 0
		for _, set := range attached {
			if set {
				count++
			}
		}
		require.Equal(t, 1, count, "strategy %q attached %d bidding blocks", strategy, count)
		require.True(t, attached[want], "strategy %q missing %s", strategy, want)
	}

	_, err := ComposeCampaignCreation("1", CreateCampaignRequest{Name: "c", BudgetAmountMicros: 1, BiddingStrategy: "TARGET_ROAS"})
	require.Error(t, err)
}

func TestComposeStatusUpdate(t *testing.T) {
	op := ComposeStatusUpdate("9", 456, StatusEnabled)
	require.Equal(t, EntityCampaign, op.Entity)
	require.Equal(t, OpUpdate, op.Operation)
	campaign := op.Resource.(CampaignPayload)
	require.Equal(t, "customers/9/campaigns/456", campaign.ResourceName)
	require.Equal(t, StatusEnabled, campaign.Status)
	require.Nil(t, campaign.ManualCPC)
	require.Nil(t, campaign.TargetCPA)
	require.Nil(t, campaign.TargetSpend)
}

func TestComposeAdGroupCreation(t *testing.T) {
	op := ComposeAdGroupCreation("9", 77, CreateAdGroupRequest{Name: "Group A"})
	ag := op.Resource.(AdGroupPayload)
	require.Equal(t, "customers/9/campaigns/77", ag.Campaign)
	require.Equal(t, StatusEnabled, ag.Status)
	require.Equal(t, "SEARCH_STANDARD", ag.Type)
	require.Equal(t, int64(1_000_000), ag.CPCBidMicros)

	op = ComposeAdGroupCreation("9", 77, CreateAdGroupRequest{Name: "Group B", CPCBidMicros: 250_000})
	require.Equal(t, int64(250_000), op.Resource.(AdGroupPayload).CPCBidMicros)
}

func TestComposeAdCreation(t *testing.T) {
	req := CreateAdRequest{
		Headlines:    []string{"First", "Second", "Third"},
		Descriptions: []string{"Desc one", "Desc two"},
		FinalURL:     "https://example.com",
	}
	op := ComposeAdCreation("9", 88, req)
	ad := op.Resource.(AdGroupAdPayload)

	require.Equal(t, "customers/9/adGroups/88", ad.AdGroup)
	// new creative never serves until someone enables it
	require.Equal(t, StatusPaused, ad.Status)

	rsa := ad.Ad.ResponsiveSearchAd
	require.Len(t, rsa.Headlines, 3)
	require.Equal(t, "HEADLINE_1", rsa.Headlines[0].PinnedField)
	require.Empty(t, rsa.Headlines[1].PinnedField)
	require.Empty(t, rsa.Headlines[2].PinnedField)
	for _, d := range rsa.Descriptions {
		require.Empty(t, d.PinnedField)
	}
	require.Equal(t, []string{"https://example.com"}, ad.Ad.FinalURLs)
}

func TestComposeKeywordCreations(t *testing.T) {
	ops := ComposeKeywordCreations("9", 88, []KeywordRequest{
		{Text: "running shoes"},
		{Text: "  trail shoes  ", MatchType: MatchExact},
	})
	require.Len(t, ops, 2)

	first := ops[0].Resource.(AdGroupCriterionPayload)
	require.Equal(t, "customers/9/adGroups/88", first.AdGroup)
	require.Equal(t, MatchBroad, first.Keyword.MatchType)

	second := ops[1].Resource.(AdGroupCriterionPayload)
	require.Equal(t, "trail shoes", second.Keyword.Text)
	require.Equal(t, MatchExact, second.Keyword.MatchType)
}
