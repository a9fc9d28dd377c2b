// Package gemini wraps the Gemini SDK behind the small completion surface
// the rest of the relay needs.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/thaumiel-labs/seraph-relay/internal/models"
	"github.com/thaumiel-labs/seraph-relay/internal/utils/clientcache"

	fiberlog "github.com/gofiber/fiber/v2/log"
	"google.golang.org/genai"
)

const clientCacheKey = "gemini"

// Client provides text completion against the Gemini API. The underlying
// SDK client is built lazily and reused across requests.
type Client struct {
	cfg         models.GeminiConfig
	clientCache *clientcache.Cache[*genai.Client]
}

// NewClient creates a Client for the given provider configuration.
func NewClient(cfg models.GeminiConfig) *Client {
	return &Client{
		cfg:         cfg,
		clientCache: clientcache.NewCache[*genai.Client](),
	}
}

func (c *Client) sdkClient(ctx context.Context) (*genai.Client, error) {
	return c.clientCache.GetOrCreate(clientCacheKey, func() (*genai.Client, error) {
		fiberlog.Debug("Creating Gemini SDK client")
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  c.cfg.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	})
}

// Generate sends a single-turn completion request with the given system
// prompt and temperature. The returned text is trimmed.
func (c *Client) Generate(ctx context.Context, systemPrompt, userText string, temperature float32) (string, error) {
	client, err := c.sdkClient(ctx)
	if err != nil {
		return "", models.NewProviderError("gemini", "client initialization failed", err)
	}

	genCfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(temperature),
		TopP:              genai.Ptr(c.cfg.Generation.TopP),
		TopK:              genai.Ptr(c.cfg.Generation.TopK),
		MaxOutputTokens:   c.cfg.Generation.MaxOutputTokens,
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	startTime := time.Now()
	resp, err := client.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(userText), genCfg)
	duration := time.Since(startTime)

	if err != nil {
		fiberlog.Errorf("Gemini generate request failed after %v: %v", duration, err)
		return "", models.NewProviderError("gemini", "generate request failed", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		fiberlog.Errorf("Gemini returned an empty completion after %v", duration)
		return "", models.NewProviderError("gemini", "empty completion", nil)
	}

	fiberlog.Debugf("Gemini generate request completed in %v", duration)
	return text, nil
}

// StructuredOptions tunes a structured-output generation call.
type StructuredOptions struct {
	Temperature     float32
	TopP            float32
	TopK            float32
	MaxOutputTokens int32
	Schema          *genai.Schema
	SafetySettings  []*genai.SafetySetting
}

// GenerateStructured sends a completion request constrained to JSON output
// matching the given schema and returns the raw JSON text.
func (c *Client) GenerateStructured(ctx context.Context, prompt string, opts StructuredOptions) (string, error) {
	client, err := c.sdkClient(ctx)
	if err != nil {
		return "", models.NewProviderError("gemini", "client initialization failed", err)
	}

	genCfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(opts.Temperature),
		TopP:             genai.Ptr(opts.TopP),
		TopK:             genai.Ptr(opts.TopK),
		MaxOutputTokens:  opts.MaxOutputTokens,
		ResponseMIMEType: "application/json",
		ResponseSchema:   opts.Schema,
		SafetySettings:   opts.SafetySettings,
	}

	resp, err := client.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(prompt), genCfg)
	if err != nil {
		return "", models.NewProviderError("gemini", "structured generate request failed", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", models.NewProviderError("gemini", "empty structured completion", nil)
	}
	return text, nil
}
