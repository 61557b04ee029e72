package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"
)

// Backend names accepted in GeminiConfig
const (
	BackendGemini = "gemini"
	BackendVertex = "vertex"
)

// GeminiConfig selects the Gemini model and how to reach it
type GeminiConfig struct {
	APIKey   string
	Model    string
	Backend  string // gemini (API key) or vertex (project + location)
	Project  string
	Location string
}

// Gemini implements Client with Google's genai SDK
type Gemini struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewGemini creates a Gemini client
func NewGemini(ctx context.Context, cfg GeminiConfig, logger *slog.Logger) (*Gemini, error) {
	cc := &genai.ClientConfig{}
	switch strings.ToLower(cfg.Backend) {
	case "", BackendGemini:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("gemini api key is required")
		}
		cc.Backend = genai.BackendGeminiAPI
		cc.APIKey = cfg.APIKey
	case BackendVertex:
		if cfg.Project == "" || cfg.Location == "" {
			return nil, fmt.Errorf("vertex backend needs a project and location")
		}
		cc.Backend = genai.BackendVertexAI
		cc.Project = cfg.Project
		cc.Location = cfg.Location
	default:
		return nil, fmt.Errorf("unknown gemini backend %q", cfg.Backend)
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  cfg.Model,
		logger: logger,
	}, nil
}

// Ensure Gemini implements Client
var _ Client = (*Gemini)(nil)

// GenerateJSON sends a single user turn and asks for a JSON reply shaped by schema
func (g *Gemini) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) ([]byte, error) {
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	start := time.Now()
	res, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	text := res.Text()
	g.logger.Debug("gemini response",
		slog.String("model", g.model),
		slog.Duration("duration", time.Since(start)),
		slog.Int("bytes", len(text)),
	)
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyResponse
	}
	return []byte(text), nil
}
