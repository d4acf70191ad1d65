package googleads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"wise-ads/internal/config/configs"
	"wise-ads/internal/core/domain"
	"wise-ads/internal/core/port"
)

// tokenURL mints Google OAuth access tokens from the refresh token.
const tokenURL = "https://oauth2.googleapis.com/token"

// Client implements port.AdsClient over the Google Ads REST interface.
// It is an outbound adapter; one instance serves all requests and is
// safe for concurrent use.
type Client struct {
	http            *http.Client
	endpoint        string
	customerID      string
	developerToken  string
	loginCustomerID string
	logger          *slog.Logger
}

// NewClient builds a client from configuration. The underlying HTTP
// client refreshes access tokens transparently and applies a request
// timeout; a timeout is surfaced like any other upstream failure.
func NewClient(cfg configs.GoogleAds, logger *slog.Logger) *Client {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: tokenURL},
	}
	ts := oauthCfg.TokenSource(context.Background(), &oauth2.Token{RefreshToken: cfg.RefreshToken})
	httpClient := oauth2.NewClient(context.Background(), ts)
	httpClient.Timeout = 30 * time.Second

	return &Client{
		http:            httpClient,
		endpoint:        cfg.Endpoint,
		customerID:      cfg.CustomerID,
		developerToken:  cfg.DeveloperToken,
		loginCustomerID: cfg.LoginCustomerID,
		logger:          logger,
	}
}

// CustomerID returns the operating customer account id.
func (c *Client) CustomerID() string { return c.customerID }

type searchRequest struct {
	Query string `json:"query"`
}

type searchResponse struct {
	Results       []port.SearchRow `json:"results"`
	NextPageToken string           `json:"nextPageToken"`
}

// Search issues a read-only GAQL query against the configured customer.
func (c *Client) Search(ctx context.Context, query string) ([]port.SearchRow, error) {
	var out searchResponse
	url := fmt.Sprintf("%s/customers/%s/googleAds:search", c.endpoint, c.customerID)
	if err := c.post(ctx, url, searchRequest{Query: query}, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// operationField maps an entity to its REST operation wrapper field.
var operationField = map[domain.Entity]string{
	domain.EntityCampaign:         "campaignOperation",
	domain.EntityCampaignBudget:   "campaignBudgetOperation",
	domain.EntityAdGroup:          "adGroupOperation",
	domain.EntityAdGroupAd:        "adGroupAdOperation",
	domain.EntityAdGroupCriterion: "adGroupCriterionOperation",
}

// resultField is the inverse mapping for batch result entries.
var resultField = map[string]domain.Entity{
	"campaignResult":         domain.EntityCampaign,
	"campaignBudgetResult":   domain.EntityCampaignBudget,
	"adGroupResult":          domain.EntityAdGroup,
	"adGroupAdResult":        domain.EntityAdGroupAd,
	"adGroupCriterionResult": domain.EntityAdGroupCriterion,
}

type mutateRequest struct {
	MutateOperations []map[string]any `json:"mutateOperations"`
}

type mutateResponse struct {
	Responses []map[string]struct {
		ResourceName string `json:"resourceName"`
	} `json:"mutateOperationResponses"`
}

// Mutate submits a batch of operations in one atomic request and
// returns the per-operation results keyed by entity.
func (c *Client) Mutate(ctx context.Context, ops []domain.MutateOperation) (*port.MutateResult, error) {
	wireOps := make([]map[string]any, 0, len(ops))
	for _, op := range ops {
		field, ok := operationField[op.Entity]
		if !ok {
			return nil, fmt.Errorf("googleads: unsupported entity %q", op.Entity)
		}
		inner := map[string]any{op.Operation: op.Resource}
		if op.Operation == domain.OpUpdate {
			mask, err := updateMask(op.Resource)
			if err != nil {
				return nil, err
			}
			inner["updateMask"] = mask
		}
		wireOps = append(wireOps, map[string]any{field: inner})
	}

	var out mutateResponse
	url := fmt.Sprintf("%s/customers/%s/googleAds:mutate", c.endpoint, c.customerID)
	if err := c.post(ctx, url, mutateRequest{MutateOperations: wireOps}, &out); err != nil {
		return nil, err
	}

	result := &port.MutateResult{}
	for _, entry := range out.Responses {
		for key, val := range entry {
			entity, ok := resultField[key]
			if !ok {
				continue
			}
			result.Results = append(result.Results, port.MutateResultEntry{
				Entity:       entity,
				ResourceName: val.ResourceName,
			})
		}
	}
	return result, nil
}

// updateMask lists the populated fields of an update payload, excluding
// the resource name, as a comma-separated field mask.
func updateMask(resource any) (string, error) {
	raw, err := json.Marshal(resource)
	if err != nil {
		return "", err
	}
	var fields map[string]json.RawMessage
	if err = json.Unmarshal(raw, &fields); err != nil {
		return "", err
	}
	mask := ""
	for name := range fields {
		if name == "resource_name" {
			continue
		}
		if mask != "" {
			mask += ","
		}
		mask += name
	}
	return mask, nil
}

// apiError is the REST error envelope.
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Details []struct {
			Errors []struct {
				ErrorCode map[string]string `json:"errorCode"`
				Message   string            `json:"message"`
			} `json:"errors"`
		} `json:"details"`
	} `json:"error"`
}

func (c *Client) post(ctx context.Context, url string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.developerToken)
	if c.loginCustomerID != "" {
		req.Header.Set("login-customer-id", c.loginCustomerID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &port.AdsError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &port.AdsError{Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(resp.StatusCode, raw)
	}
	if err = json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("googleads: decode response: %w", err)
	}
	return nil
}

// decodeError turns a non-2xx response into an AdsError, preserving the
// structured issue list when the platform supplied one. The full body is
// logged server-side; only normalized messages leave the process.
func (c *Client) decodeError(status int, raw []byte) error {
	c.logger.Error("google ads api rejection",
		slog.Int("status", status),
		slog.String("body", string(raw)))

	var envelope apiError
	adsErr := &port.AdsError{}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		adsErr.Message = envelope.Error.Message
		for _, detail := range envelope.Error.Details {
			for _, e := range detail.Errors {
				issue := port.AdsIssue{Message: e.Message}
				for _, code := range e.ErrorCode {
					issue.Code = code
					break
				}
				adsErr.Issues = append(adsErr.Issues, issue)
			}
		}
	}
	if adsErr.Message == "" && len(adsErr.Issues) == 0 {
		adsErr.Message = fmt.Sprintf("unexpected status %d", status)
	}
	return adsErr
}
