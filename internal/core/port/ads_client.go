package port

import (
	"context"

	"wise-ads/internal/core/domain"
)

// AdsClient is the outbound port to the advertising platform. Search
// issues read-only reporting queries; Mutate submits a batch of create
// and update operations evaluated with platform-defined atomicity.
// Rejections surface as *AdsError.
type AdsClient interface {
	Search(ctx context.Context, query string) ([]SearchRow, error)
	Mutate(ctx context.Context, ops []domain.MutateOperation) (*MutateResult, error)
}

// SearchRow is one row of a search response. Only the selected entities
// are populated; the rest stay nil.
type SearchRow struct {
	Campaign         *CampaignRow  `json:"campaign,omitempty"`
	CampaignBudget   *BudgetRow    `json:"campaignBudget,omitempty"`
	AdGroup          *AdGroupRow   `json:"adGroup,omitempty"`
	AdGroupCriterion *CriterionRow `json:"adGroupCriterion,omitempty"`
	Metrics          *MetricsRow   `json:"metrics,omitempty"`
}

// CampaignRow carries the campaign attributes this backend selects.
// Integer identifiers arrive JSON-encoded as strings per the platform's
// proto JSON mapping.
type CampaignRow struct {
	ID                     int64  `json:"id,string"`
	Name                   string `json:"name"`
	Status                 string `json:"status"`
	AdvertisingChannelType string `json:"advertisingChannelType"`
}

// BudgetRow carries the selected budget attributes.
type BudgetRow struct {
	AmountMicros int64 `json:"amountMicros,string"`
}

// AdGroupRow carries the selected ad group attributes.
type AdGroupRow struct {
	ID           int64  `json:"id,string"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	Type         string `json:"type"`
	CPCBidMicros int64  `json:"cpcBidMicros,string"`
}

// CriterionRow carries the selected keyword criterion attributes.
type CriterionRow struct {
	CriterionID int64       `json:"criterionId,string"`
	Status      string      `json:"status"`
	Keyword     *KeywordRow `json:"keyword,omitempty"`
}

// KeywordRow is the keyword content of a criterion row.
type KeywordRow struct {
	Text      string `json:"text"`
	MatchType string `json:"matchType"`
}

// MetricsRow carries the selected reporting metrics.
type MetricsRow struct {
	Impressions int64 `json:"impressions,string"`
	Clicks      int64 `json:"clicks,string"`
	CostMicros  int64 `json:"costMicros,string"`
}

// MutateResultEntry is one per-operation result of a mutation batch,
// keyed by the entity it belongs to.
type MutateResultEntry struct {
	Entity       domain.Entity
	ResourceName string
}

// MutateResult is the platform's batch mutation response. Entry order is
// not guaranteed to match operation order.
type MutateResult struct {
	Results []MutateResultEntry
}

// ResourceNameFor scans for the first entry of the given entity kind.
func (r *MutateResult) ResourceNameFor(entity domain.Entity) (string, bool) {
	for _, e := range r.Results {
		if e.Entity == entity && e.ResourceName != "" {
			return e.ResourceName, true
		}
	}
	return "", false
}

// CreatedID recovers the generated identifier of a newly created
// resource of the given kind. ok=false is distinct from a platform
// rejection: the batch was accepted but the identifier cannot be read
// back, which callers must surface as an inspect-manually condition.
func (r *MutateResult) CreatedID(entity domain.Entity) (string, bool) {
	name, ok := r.ResourceNameFor(entity)
	if !ok {
		return "", false
	}
	return domain.TrailingID(name), true
}
