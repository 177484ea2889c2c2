package analysis

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents/pkg/agent"
	agtconfig "github.com/JaimeStill/go-agents/pkg/config"
	"google.golang.org/genai"

	"github.com/JaimeStill/brand-lab/internal/config"
	"github.com/JaimeStill/brand-lab/pkg/decode"
)

// Generator sends one prompt to a generative text model and returns its reply.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// NewGenerator creates the Generator selected by cfg.Provider.
func NewGenerator(ctx context.Context, cfg *config.AnalysisConfig) (Generator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return newGemini(ctx, cfg)
	case config.ProviderAgent:
		return newAgent(cfg)
	default:
		return nil, fmt.Errorf("unsupported analysis provider: %s", cfg.Provider)
	}
}

type geminiGenerator struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

func newGemini(ctx context.Context, cfg *config.AnalysisConfig) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &geminiGenerator{
		client: client,
		model:  cfg.Model,
		config: &genai.GenerateContentConfig{
			Temperature:      cfg.Temperature,
			TopK:             cfg.TopK,
			TopP:             cfg.TopP,
			MaxOutputTokens:  cfg.MaxOutputTokens,
			ResponseMIMEType: "application/json",
		},
	}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), g.config)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

type agentGenerator struct {
	agent   agent.Agent
	options map[string]any
}

func newAgent(cfg *config.AnalysisConfig) (Generator, error) {
	userCfg, err := decode.FromMap[agtconfig.AgentConfig](cfg.Agent)
	if err != nil {
		return nil, fmt.Errorf("decode agent config: %w", err)
	}

	agentCfg := agtconfig.DefaultAgentConfig()
	agentCfg.Merge(&userCfg)

	a, err := agent.New(&agentCfg)
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}

	return &agentGenerator{
		agent: a,
		options: map[string]any{
			"temperature": *cfg.Temperature,
			"top_p":       *cfg.TopP,
			"max_tokens":  cfg.MaxOutputTokens,
		},
	}, nil
}

func (g *agentGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.agent.Chat(ctx, prompt, g.options)
	if err != nil {
		return "", err
	}
	return resp.Content(), nil
}
