package domain

// Campaign statuses accepted by status-change requests. The platform
// knows more states (REMOVED among them) but this backend only ever
// toggles between these two.
const (
	StatusEnabled = "ENABLED"
	StatusPaused  = "PAUSED"
)

// ChannelTypeSearch is the only advertising channel type this backend
// manages. List queries filter on it and created campaigns carry it.
const ChannelTypeSearch = "SEARCH"

// Campaign is the read model for a platform campaign returned by list
// queries. Metrics are included when the query selects them.
type Campaign struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	ChannelType  string `json:"channelType"`
	BudgetMicros int64  `json:"budgetMicros"`
	Impressions  int64  `json:"impressions"`
	Clicks       int64  `json:"clicks"`
	CostMicros   int64  `json:"costMicros"`
}

// CreateCampaignRequest is the inbound shape for campaign creation.
// BiddingStrategy may be empty, which selects the maximize-clicks
// default; an unknown value is rejected, never silently defaulted.
type CreateCampaignRequest struct {
	Name               string `json:"name"`
	BudgetAmountMicros int64  `json:"budgetAmountMicros"`
	BiddingStrategy    string `json:"biddingStrategy"`
}

// Validate checks the structural rules for campaign creation.
func (r CreateCampaignRequest) Validate() error {
	if r.Name == "" {
		return invalid("name is required")
	}
	if r.BudgetAmountMicros <= 0 {
		return invalid("budgetAmountMicros must be a positive amount")
	}
	if _, err := BiddingVariantFor(r.BiddingStrategy); err != nil {
		return err
	}
	return nil
}

// ValidateStatus checks a requested campaign status value.
func ValidateStatus(status string) error {
	if status != StatusEnabled && status != StatusPaused {
		return invalid(`status must be "ENABLED" or "PAUSED"`)
	}
	return nil
}
