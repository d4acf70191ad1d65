package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ResourceKind names an addressable entity kind on the advertising
// platform. It selects the collection segment used when composing a
// hierarchical resource name.
type ResourceKind string

const (
	KindCampaign       ResourceKind = "campaigns"
	KindCampaignBudget ResourceKind = "campaignBudgets"
	KindAdGroup        ResourceKind = "adGroups"
)

// ParseID parses an externally supplied identifier. Only strings made of
// one or more ASCII digits are accepted; anything else (empty, signed,
// fractional, non-numeric) reports ok=false so the caller can produce a
// uniform bad-request response instead of handling a panic or error.
func ParseID(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ResourceName composes the platform's hierarchical path for an entity,
// e.g. customers/123/campaigns/456. The id may be negative when it is a
// temporary placeholder inside a mutation batch.
func ResourceName(kind ResourceKind, customerID string, id int64) string {
	return fmt.Sprintf("customers/%s/%s/%d", customerID, kind, id)
}

// TrailingID returns the final path segment of a resource name. It is
// used to recover the platform-assigned identifier of a newly created
// resource from the resource name echoed back in a mutation result.
func TrailingID(resourceName string) string {
	if i := strings.LastIndexByte(resourceName, '/'); i >= 0 {
		return resourceName[i+1:]
	}
	return resourceName
}
