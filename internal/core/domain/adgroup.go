package domain

// AdGroup is the read model for a platform ad group.
type AdGroup struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	Type         string `json:"type"`
	CPCBidMicros int64  `json:"cpcBidMicros"`
}

// defaultAdGroupCPCBidMicros is applied when the request omits a bid.
const defaultAdGroupCPCBidMicros = 1_000_000

// CreateAdGroupRequest is the inbound shape for ad group creation.
type CreateAdGroupRequest struct {
	Name         string `json:"name"`
	CPCBidMicros int64  `json:"cpcBidMicros"`
}

// Validate checks the structural rules for ad group creation.
func (r CreateAdGroupRequest) Validate() error {
	if r.Name == "" {
		return invalid("name is required")
	}
	if r.CPCBidMicros < 0 {
		return invalid("cpcBidMicros must not be negative")
	}
	return nil
}
