package domain

// Wire payloads for mutation operations. Field names follow the
// platform's proto JSON mapping, which accepts the snake_case form.

// CampaignBudgetPayload creates or updates a campaign budget.
type CampaignBudgetPayload struct {
	ResourceName     string `json:"resource_name,omitempty"`
	Name             string `json:"name,omitempty"`
	AmountMicros     int64  `json:"amount_micros,omitempty"`
	DeliveryMethod   string `json:"delivery_method,omitempty"`
	ExplicitlyShared bool   `json:"explicitly_shared"`
}

// NetworkSettings selects the networks a campaign serves on.
type NetworkSettings struct {
	TargetGoogleSearch   bool `json:"target_google_search"`
	TargetSearchNetwork  bool `json:"target_search_network"`
	TargetContentNetwork bool `json:"target_content_network"`
}

// CampaignPayload creates or updates a campaign. At most one of the
// bidding blocks is set; composition goes through a BiddingVariant so
// the exclusivity holds by construction.
type CampaignPayload struct {
	ResourceName           string           `json:"resource_name,omitempty"`
	Name                   string           `json:"name,omitempty"`
	CampaignBudget         string           `json:"campaign_budget,omitempty"`
	AdvertisingChannelType string           `json:"advertising_channel_type,omitempty"`
	Status                 string           `json:"status,omitempty"`
	NetworkSettings        *NetworkSettings `json:"network_settings,omitempty"`
	// The declaration is mandatory on creation for accounts serving in
	// the EU; campaigns managed here never carry political advertising.
	ContainsEUPoliticalAdvertising string `json:"contains_eu_political_advertising,omitempty"`

	ManualCPC   *ManualCPC   `json:"manual_cpc,omitempty"`
	TargetCPA   *TargetCPA   `json:"target_cpa,omitempty"`
	TargetSpend *TargetSpend `json:"target_spend,omitempty"`
}

const euPoliticalAdsNone = "DOES_NOT_CONTAIN_EU_POLITICAL_ADVERTISING"

// AdGroupPayload creates an ad group under a campaign.
type AdGroupPayload struct {
	ResourceName string `json:"resource_name,omitempty"`
	Name         string `json:"name,omitempty"`
	Campaign     string `json:"campaign,omitempty"`
	Status       string `json:"status,omitempty"`
	Type         string `json:"type,omitempty"`
	CPCBidMicros int64  `json:"cpc_bid_micros,omitempty"`
}

// AdTextAsset is one headline or description slot of a creative.
type AdTextAsset struct {
	Text        string `json:"text"`
	PinnedField string `json:"pinned_field,omitempty"`
}

// ResponsiveSearchAd is the fixed-slot creative content of an ad.
type ResponsiveSearchAd struct {
	Headlines    []AdTextAsset `json:"headlines"`
	Descriptions []AdTextAsset `json:"descriptions"`
}

// AdPayload is the ad content wrapper.
type AdPayload struct {
	ResponsiveSearchAd *ResponsiveSearchAd `json:"responsive_search_ad,omitempty"`
	FinalURLs          []string            `json:"final_urls,omitempty"`
}

// AdGroupAdPayload attaches an ad to an ad group.
type AdGroupAdPayload struct {
	AdGroup string    `json:"ad_group,omitempty"`
	Status  string    `json:"status,omitempty"`
	Ad      AdPayload `json:"ad"`
}

// KeywordInfo is the keyword criterion content.
type KeywordInfo struct {
	Text      string `json:"text"`
	MatchType string `json:"match_type"`
}

// AdGroupCriterionPayload attaches a keyword criterion to an ad group.
type AdGroupCriterionPayload struct {
	AdGroup string      `json:"ad_group,omitempty"`
	Status  string      `json:"status,omitempty"`
	Keyword KeywordInfo `json:"keyword"`
}
