package domain

// Bidding strategy names accepted on campaign creation.
const (
	StrategyMaximizeClicks = "MAXIMIZE_CLICKS"
	StrategyManualCPC      = "MANUAL_CPC"
	StrategyTargetCPA      = "TARGET_CPA"
)

// Platform defaults applied when composing a bidding block. Values are
// micro-currency units.
const (
	defaultTargetCPAMicros     = 1_000_000
	defaultCPCBidCeilingMicros = 10_000_000
)

// BiddingVariant is one of the mutually exclusive bidding configurations
// a campaign can carry. The sealed apply method guarantees exactly one
// bidding block is ever attached to a composed campaign.
type BiddingVariant interface {
	apply(c *CampaignPayload)
}

// ManualCPC bids a fixed amount per click. Enhanced CPC stays disabled.
type ManualCPC struct {
	EnhancedCPCEnabled bool `json:"enhanced_cpc_enabled"`
}

func (v ManualCPC) apply(c *CampaignPayload) { c.ManualCPC = &v }

// TargetCPA lets the platform optimize toward a fixed cost per action.
type TargetCPA struct {
	TargetCPAMicros int64 `json:"target_cpa_micros"`
}

func (v TargetCPA) apply(c *CampaignPayload) { c.TargetCPA = &v }

// TargetSpend is the maximize-clicks strategy: spend the budget for as
// many clicks as possible under a bid ceiling.
type TargetSpend struct {
	CPCBidCeilingMicros int64 `json:"cpc_bid_ceiling_micros"`
}

func (v TargetSpend) apply(c *CampaignPayload) { c.TargetSpend = &v }

// BiddingVariantFor maps a requested strategy name to its variant. An
// empty strategy selects the maximize-clicks default; any name outside
// the supported set is a validation error.
func BiddingVariantFor(strategy string) (BiddingVariant, error) {
	switch strategy {
	case "", StrategyMaximizeClicks:
		return TargetSpend{CPCBidCeilingMicros: defaultCPCBidCeilingMicros}, nil
	case StrategyManualCPC:
		return ManualCPC{EnhancedCPCEnabled: false}, nil
	case StrategyTargetCPA:
		return TargetCPA{TargetCPAMicros: defaultTargetCPAMicros}, nil
	default:
		return nil, invalid("biddingStrategy must be MAXIMIZE_CLICKS, MANUAL_CPC or TARGET_CPA")
	}
}
