package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"wise-ads/internal/core/domain"
	"wise-ads/internal/core/port"
)

func validAdRequest() domain.CreateAdRequest {
	return domain.CreateAdRequest{
		Headlines:    []string{"First", "Second", "Third"},
		Descriptions: []string{"Desc one", "Desc two"},
		FinalURL:     "https://example.com",
	}
}

func TestCreateAd(t *testing.T) {
	owns := newFakeOwnershipRepo()
	require.NoError(t, owns.Insert(context.Background(), callerA.ID, "456"))

	ads := &fakeAdsClient{
		searchFn: func(string) ([]port.SearchRow, error) { return parentRow(456), nil },
	}
	svc := NewAdService(owns, ads, testCustomerID, testLogger())

	_, err := svc.Create(context.Background(), callerA, "88", validAdRequest())
	require.NoError(t, err)

	ad := ads.mutateOps[0][0].Resource.(domain.AdGroupAdPayload)
	require.Equal(t, domain.StatusPaused, ad.Status)
	require.Equal(t, "HEADLINE_1", ad.Ad.ResponsiveSearchAd.Headlines[0].PinnedField)
}

func TestCreateAdTwoHeadlinesRejected(t *testing.T) {
	owns := newFakeOwnershipRepo()
	require.NoError(t, owns.Insert(context.Background(), callerA.ID, "456"))
	ads := &fakeAdsClient{
		searchFn: func(string) ([]port.SearchRow, error) { return parentRow(456), nil },
	}
	svc := NewAdService(owns, ads, testCustomerID, testLogger())

	req := validAdRequest()
	req.Headlines = req.Headlines[:2]
	var vErr *domain.ValidationError
	_, err := svc.Create(context.Background(), callerA, "88", req)
	require.ErrorAs(t, err, &vErr)
	require.Empty(t, ads.mutateOps)
}

func TestCreateAdMissingAdGroup(t *testing.T) {
	svc := NewAdService(newFakeOwnershipRepo(), &fakeAdsClient{}, testCustomerID, testLogger())

	_, err := svc.Create(context.Background(), callerA, "88", validAdRequest())
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestCreateAdForeignCampaign(t *testing.T) {
	// ad group resolves, but the campaign belongs to someone else
	owns := newFakeOwnershipRepo()
	require.NoError(t, owns.Insert(context.Background(), callerB.ID, "456"))
	ads := &fakeAdsClient{
		searchFn: func(string) ([]port.SearchRow, error) { return parentRow(456), nil },
	}
	svc := NewAdService(owns, ads, testCustomerID, testLogger())

	_, err := svc.Create(context.Background(), callerA, "88", validAdRequest())
	require.ErrorIs(t, err, port.ErrAccessDenied)
}

func TestCreateAdLookupFailure(t *testing.T) {
	ads := &fakeAdsClient{
		searchFn: func(string) ([]port.SearchRow, error) { return nil, errors.New("upstream down") },
	}
	svc := NewAdService(newFakeOwnershipRepo(), ads, testCustomerID, testLogger())

	_, err := svc.Create(context.Background(), callerA, "88", validAdRequest())
	require.Error(t, err)
	require.NotErrorIs(t, err, port.ErrNotFound)
}

func TestCreateAdInvalidID(t *testing.T) {
	svc := NewAdService(newFakeOwnershipRepo(), &fakeAdsClient{}, testCustomerID, testLogger())
	var vErr *domain.ValidationError
	_, err := svc.Create(context.Background(), callerA, "12a", validAdRequest())
	require.ErrorAs(t, err, &vErr)
}
