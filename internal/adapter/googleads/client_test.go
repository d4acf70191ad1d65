package googleads

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"wise-ads/internal/config/configs"
	"wise-ads/internal/core/domain"
	"wise-ads/internal/core/port"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(configs.GoogleAds{
		CustomerID:     "1112223333",
		DeveloperToken: "dev-token",
		ClientID:       "cid",
		ClientSecret:   "secret",
		RefreshToken:   "refresh",
		Endpoint:       srv.URL,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	// bypass the oauth transport; the fake server does not check tokens
	c.http = srv.Client()
	return c
}

func TestMutateRequestShape(t *testing.T) {
	var got map[string]any
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/customers/1112223333/googleAds:mutate", r.URL.Path)
		require.Equal(t, "dev-token", r.Header.Get("developer-token"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"mutateOperationResponses":[
            {"campaignBudgetResult":{"resourceName":"customers/1112223333/campaignBudgets/9"}},
            {"campaignResult":{"resourceName":"customers/1112223333/campaigns/456"}}
        ]}`))
	})

	ops, err := domain.ComposeCampaignCreation(client.CustomerID(), domain.CreateCampaignRequest{
		Name:               "Spring Sale",
		BudgetAmountMicros: 5_000_000,
	})
	require.NoError(t, err)

	res, err := client.Mutate(context.Background(), ops)
	require.NoError(t, err)

	wireOps := got["mutateOperations"].([]any)
	require.Len(t, wireOps, 2)
	budgetOp := wireOps[0].(map[string]any)["campaignBudgetOperation"].(map[string]any)
	require.Contains(t, budgetOp, "create")
	campaignOp := wireOps[1].(map[string]any)["campaignOperation"].(map[string]any)
	create := campaignOp["create"].(map[string]any)
	require.Equal(t, "customers/1112223333/campaignBudgets/-1", create["campaign_budget"])

	id, ok := res.CreatedID(domain.EntityCampaign)
	require.True(t, ok)
	require.Equal(t, "456", id)
}

func TestMutateUpdateMask(t *testing.T) {
	var got map[string]any
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"mutateOperationResponses":[{"campaignResult":{"resourceName":"customers/1/campaigns/2"}}]}`))
	})

	op := domain.ComposeStatusUpdate(client.CustomerID(), 2, domain.StatusEnabled)
	_, err := client.Mutate(context.Background(), []domain.MutateOperation{op})
	require.NoError(t, err)

	campaignOp := got["mutateOperations"].([]any)[0].(map[string]any)["campaignOperation"].(map[string]any)
	require.Equal(t, "status", campaignOp["updateMask"])
	update := campaignOp["update"].(map[string]any)
	require.Equal(t, "customers/1112223333/campaigns/2", update["resource_name"])
}

func TestSearchDecodesRows(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/customers/1112223333/googleAds:search", r.URL.Path)
		_, _ = w.Write([]byte(`{"results":[
            {"campaign":{"id":"456","name":"Spring Sale","status":"PAUSED","advertisingChannelType":"SEARCH"},
             "campaignBudget":{"amountMicros":"5000000"},
             "metrics":{"impressions":"120","clicks":"7","costMicros":"42000"}}
        ]}`))
	})

	rows, err := client.Search(context.Background(), "SELECT campaign.id FROM campaign")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, int64(456), rows[0].Campaign.ID)
	require.Equal(t, int64(5_000_000), rows[0].CampaignBudget.AmountMicros)
	require.Equal(t, int64(7), rows[0].Metrics.Clicks)
}

func TestRejectionCarriesFirstIssue(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"Request contains an invalid argument.","status":"INVALID_ARGUMENT","details":[
            {"errors":[{"errorCode":{"campaignError":"DUPLICATE_CAMPAIGN_NAME"},"message":"Campaign name already exists."}]}
        ]}}`))
	})

	_, err := client.Search(context.Background(), "SELECT campaign.id FROM campaign")
	var adsErr *port.AdsError
	require.True(t, errors.As(err, &adsErr))
	require.Equal(t, "Campaign name already exists.", adsErr.UserMessage())
	require.Equal(t, "DUPLICATE_CAMPAIGN_NAME", adsErr.Issues[0].Code)
}

func TestRejectionWithoutIssuesFallsBack(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := client.Search(context.Background(), "SELECT campaign.id FROM campaign")
	var adsErr *port.AdsError
	require.True(t, errors.As(err, &adsErr))
	require.Equal(t, "unexpected status 503", adsErr.UserMessage())
}
