package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"wise-ads/internal/core/port"
)

// ownershipVerifier decides whether a caller may act on a platform
// resource. Ownership is defined only at campaign granularity; deeper
// resources degrade to a campaign check after one upward hierarchy hop.
type ownershipVerifier struct {
	owns   port.OwnershipRepo
	ads    port.AdsClient
	logger *slog.Logger
}

// verifyCampaign reports whether the caller owns the campaign. A store
// failure propagates; it must not read as either owned or denied.
func (v *ownershipVerifier) verifyCampaign(ctx context.Context, userID int64, campaignID string) (bool, error) {
	return v.owns.Exists(ctx, userID, campaignID)
}

// resolveParentCampaign looks up the ad group's owning campaign on the
// platform. port.ErrNotFound means the ad group does not exist.
func (v *ownershipVerifier) resolveParentCampaign(ctx context.Context, adGroupID int64) (string, error) {
	query := fmt.Sprintf(
		`SELECT campaign.id FROM ad_group WHERE ad_group.id = %d LIMIT 1`, adGroupID)
	rows, err := v.ads.Search(ctx, query)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 || rows[0].Campaign == nil {
		return "", port.ErrNotFound
	}
	return strconv.FormatInt(rows[0].Campaign.ID, 10), nil
}

// verifyAdGroup resolves the ad group's campaign and delegates to the
// campaign check. It fails closed: a missing ad group, an upstream
// failure or a store failure all read as not authorized. The cause is
// logged because a denied caller learns nothing from the response.
func (v *ownershipVerifier) verifyAdGroup(ctx context.Context, userID int64, adGroupID int64) bool {
	campaignID, err := v.resolveParentCampaign(ctx, adGroupID)
	if err != nil {
		v.logger.Warn("ad group ownership check failed closed",
			slog.Int64("ad_group_id", adGroupID),
			slog.Any("error", err))
		return false
	}
	owned, err := v.verifyCampaign(ctx, userID, campaignID)
	if err != nil {
		v.logger.Warn("ownership lookup failed closed",
			slog.String("campaign_id", campaignID),
			slog.Any("error", err))
		return false
	}
	return owned
}
