package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"wise-ads/internal/config/configs"
	"wise-ads/internal/core/port"
)

// Generator implements port.TextGenerator over the Gemini REST API. The
// model is treated as a black box returning loosely structured text;
// schema coercion is the caller's job.
type Generator struct {
	apiKey   string
	model    string
	endpoint string
	http     *http.Client
	logger   *slog.Logger
}

// NewGenerator builds a generator from configuration.
func NewGenerator(cfg configs.Gemini, logger *slog.Logger) *Generator {
	return &Generator{
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		endpoint: cfg.Endpoint,
		http:     &http.Client{Timeout: 60 * time.Second},
		logger:   logger,
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text,omitempty"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
	ResponseMIMEType string  `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate sends the prompt and returns the first text part of the
// first candidate. The model may interleave non-text parts (thinking
// output); those are skipped.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", port.ErrGenerationFailed
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:      0.7,
			MaxOutputTokens:  8192,
			ResponseMIMEType: "application/json",
		},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.endpoint, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		g.logger.Error("gemini request failed", slog.Any("error", err))
		return "", port.ErrGenerationFailed
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", port.ErrGenerationFailed
	}
	if resp.StatusCode != http.StatusOK {
		g.logger.Error("gemini api error",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(raw)))
		return "", port.ErrGenerationFailed
	}

	var out generateResponse
	if err = json.Unmarshal(raw, &out); err != nil {
		return "", port.ErrGenerationFailed
	}
	if len(out.Candidates) == 0 {
		g.logger.Error("gemini empty response", slog.String("body", string(raw)))
		return "", port.ErrGenerationFailed
	}
	for _, p := range out.Candidates[0].Content.Parts {
		if p.Text != "" {
			return p.Text, nil
		}
	}
	g.logger.Error("gemini response has no text part", slog.String("body", string(raw)))
	return "", port.ErrGenerationFailed
}
