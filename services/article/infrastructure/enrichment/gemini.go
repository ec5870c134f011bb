package enrichment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/config"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/logger"
)

const (
	defaultModel   = "gemini-2.5-flash"
	defaultTimeout = 15 * time.Second

	promptTemplate = "Analiza esta referencia técnica: %s para el cliente %s. " +
		"Genera una descripción técnica breve (máximo 15 palabras) en español sobre qué tipo " +
		"de pieza o componente industrial podría ser basándote en la nomenclatura común de oficina técnica."
)

// GeminiDescriber asks a Gemini model for the description.
type GeminiDescriber struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	log     logger.Logger
}

// GeminiOptions configures NewGemini. Zero values fall back to defaults.
type GeminiOptions struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	// BaseURL overrides the API endpoint; empty uses the public Gemini API.
	BaseURL string
}

// NewGemini builds a GeminiDescriber. The API key is required.
func NewGemini(ctx context.Context, opts GeminiOptions, log logger.Logger) (*GeminiDescriber, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("gemini api key required")
	}
	cc := &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = defaultModel
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &GeminiDescriber{client: client, model: model, timeout: timeout, log: log}, nil
}

// Describe bounds the model call by the configured timeout.
func (g *GeminiDescriber) Describe(ctx context.Context, clientReferenceCode, clientName string) string {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := fmt.Sprintf(promptTemplate, clientReferenceCode, clientName)
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		g.log.WarnContext(ctx, "gemini describe failed",
			"model", g.model, "reference", clientReferenceCode, "error", err)
		return DescriptionFailed
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return DescriptionEmpty
	}
	return text
}

// New picks the Describer for cfg: Gemini when a key is configured, Unavailable otherwise.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (Describer, error) {
	if cfg.GeminiAPIKey == "" {
		log.Info("gemini api key not set, article descriptions disabled")
		return Unavailable{}, nil
	}
	g, err := NewGemini(ctx, GeminiOptions{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		Timeout: cfg.EnrichmentTimeout,
	}, log)
	if err != nil {
		return nil, err
	}
	return g, nil
}
