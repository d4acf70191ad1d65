package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"wise-ads/internal/core/domain"
	"wise-ads/internal/core/port"
)

// onboardingPrompt instructs the generator to propose a full search
// campaign structure for a website. The response is requested as JSON
// but still treated as loose text and coerced afterwards.
const onboardingPrompt = `You are a Google Ads expert. Based on a website address, generate a complete Google Ads Search campaign structure.

Website: %s

Analyze the site yourself, determine the industry and business category, and generate the campaign from that.

Generate JSON:
{
  "campaignName": "short campaign name (max 50 characters)",
  "category": "detected business category",
  "adGroup": {
    "name": "ad group name (max 50 characters)",
    "headlines": ["headline1", "headline2"],
    "descriptions": ["description1", "description2"],
    "keywords": [
      {"text": "keyword", "matchType": "BROAD"}
    ]
  }
}

Rules:
- campaignName: concise campaign name, max 50 characters
- category: short name of the detected category (e.g. "E-commerce", "Local services", "IT/SaaS")
- headlines: 5 to 10 texts, each max 30 characters
- descriptions: 2 to 4 texts, each MUST be max 90 characters (NEVER exceed 90 characters!)
- keywords: 5 to 10 keywords, matchType: BROAD, PHRASE or EXACT
- Headline 1 should contain the company or site name
- Headlines and descriptions should contain calls to action (CTA)
- Keywords should be relevant to the detected industry`

// OnboardingService implements port.OnboardingUseCase. It treats the
// text generator as a black box and coerces its output into the fixed
// plan schema.
type OnboardingService struct {
	gen    port.TextGenerator
	logger *slog.Logger
}

// NewOnboardingService wires an onboarding service.
func NewOnboardingService(gen port.TextGenerator, logger *slog.Logger) *OnboardingService {
	return &OnboardingService{gen: gen, logger: logger}
}

// Generate produces a suggested campaign structure for a website.
func (s *OnboardingService) Generate(ctx context.Context, websiteURL string) (*port.OnboardingPlan, error) {
	if websiteURL == "" {
		return nil, &domain.ValidationError{Message: "websiteUrl is required"}
	}
	u, err := url.Parse(websiteURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, &domain.ValidationError{Message: "websiteUrl must be a well-formed absolute URL"}
	}

	text, err := s.gen.Generate(ctx, fmt.Sprintf(onboardingPrompt, websiteURL))
	if err != nil {
		return nil, err
	}

	plan, err := coercePlan(text)
	if err != nil {
		s.logger.Error("unusable generator output",
			slog.Any("error", err),
			slog.String("text", text))
		return nil, port.ErrGenerationFailed
	}
	return plan, nil
}

// coercePlan fits loose generator output into the plan schema. Models
// wrap JSON in markdown fences often enough that stripping them is part
// of the contract.
func coercePlan(text string) (*port.OnboardingPlan, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var plan port.OnboardingPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, err
	}
	if plan.CampaignName == "" || plan.AdGroup.Name == "" {
		return nil, fmt.Errorf("generated plan missing required fields")
	}
	return &plan, nil
}
