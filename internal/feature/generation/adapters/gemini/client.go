// Package gemini implements the code model with the Google Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"regalis_backend/internal/feature/generation/usecase"
	"regalis_backend/internal/shared/ratelimiter"
)

const (
	// DefaultModel is the Gemini model used when none is configured.
	DefaultModel = "gemini-2.5-flash"
	// DefaultTemperature keeps designs varied without drifting off the prompt.
	DefaultTemperature float32 = 0.7
)

// Config configures the Gemini code model.
type Config struct {
	// APIKey selects the Gemini Developer API. When empty, the client falls
	// back to the GOOGLE_* environment (Vertex AI or GOOGLE_API_KEY).
	APIKey      string
	Model       string
	Temperature float32
	HTTPClient  *http.Client
	// BaseURL overrides the API endpoint.
	BaseURL string
	// Limiter throttles outbound calls. Nil means unlimited.
	Limiter ratelimiter.Limiter
}

// CodeModel generates HTML with Gemini.
type CodeModel struct {
	client      *genai.Client
	model       string
	temperature float32
	limiter     ratelimiter.Limiter
}

var _ usecase.CodeModel = (*CodeModel)(nil)

// NewCodeModel creates a Gemini client from cfg.
func NewCodeModel(ctx context.Context, cfg Config) (*CodeModel, error) {
	cc := &genai.ClientConfig{
		HTTPClient:  cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	}
	if cfg.APIKey != "" {
		cc.APIKey = cfg.APIKey
		cc.Backend = genai.BackendGeminiAPI
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	temperature := cfg.Temperature
	if temperature <= 0 {
		temperature = DefaultTemperature
	}
	return &CodeModel{client: client, model: model, temperature: temperature, limiter: cfg.Limiter}, nil
}

// Generate sends prompt with the system instruction and returns the response text.
func (g *CodeModel) Generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter: %w", err)
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(g.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini returned an empty response")
	}
	return text, nil
}
