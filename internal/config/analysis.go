package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvAnalysisProvider        = "ANALYSIS_PROVIDER"
	EnvAnalysisModel           = "ANALYSIS_MODEL"
	EnvAnalysisTimeout         = "ANALYSIS_TIMEOUT"
	EnvAnalysisTemperature     = "ANALYSIS_TEMPERATURE"
	EnvAnalysisMaxOutputTokens = "ANALYSIS_MAX_OUTPUT_TOKENS"

	// EnvGeminiAPIKey supplies the key for the gemini provider.
	EnvGeminiAPIKey = "GEMINI_API_KEY"
)

// Analysis providers.
const (
	ProviderGemini = "gemini"
	ProviderAgent  = "agent"
)

// AnalysisConfig selects and tunes the generative model used for brand analysis.
//
// Sampling fields are pointers so an explicit zero in TOML survives defaults
// and overlays.
type AnalysisConfig struct {
	Provider        string   `toml:"provider"`
	Model           string   `toml:"model"`
	APIKey          string   `toml:"api_key"`
	Temperature     *float32 `toml:"temperature"`
	TopK            *float32 `toml:"top_k"`
	TopP            *float32 `toml:"top_p"`
	MaxOutputTokens int32    `toml:"max_output_tokens"`
	Timeout         string   `toml:"timeout"`

	// Agent is decoded into a go-agents AgentConfig when Provider is "agent".
	Agent map[string]any `toml:"agent"`
}

// TimeoutDuration parses and returns the per-analysis timeout.
func (c *AnalysisConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

func (c *AnalysisConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

func (c *AnalysisConfig) Merge(overlay *AnalysisConfig) {
	if overlay.Provider != "" {
		c.Provider = overlay.Provider
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.Temperature != nil {
		c.Temperature = overlay.Temperature
	}
	if overlay.TopK != nil {
		c.TopK = overlay.TopK
	}
	if overlay.TopP != nil {
		c.TopP = overlay.TopP
	}
	if overlay.MaxOutputTokens != 0 {
		c.MaxOutputTokens = overlay.MaxOutputTokens
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.Agent != nil {
		c.Agent = overlay.Agent
	}
}

func (c *AnalysisConfig) loadDefaults() {
	if c.Provider == "" {
		c.Provider = ProviderGemini
	}
	if c.Model == "" {
		c.Model = "gemini-1.5-flash"
	}
	if c.Temperature == nil {
		c.Temperature = float32Ptr(0.7)
	}
	if c.TopK == nil {
		c.TopK = float32Ptr(40)
	}
	if c.TopP == nil {
		c.TopP = float32Ptr(0.95)
	}
	if c.MaxOutputTokens == 0 {
		c.MaxOutputTokens = 2048
	}
	if c.Timeout == "" {
		c.Timeout = "60s"
	}
}

func (c *AnalysisConfig) loadEnv() {
	if v := os.Getenv(EnvAnalysisProvider); v != "" {
		c.Provider = v
	}
	if v := os.Getenv(EnvAnalysisModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvGeminiAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvAnalysisTimeout); v != "" {
		c.Timeout = v
	}
	if v := os.Getenv(EnvAnalysisTemperature); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			c.Temperature = float32Ptr(float32(f))
		}
	}
	if v := os.Getenv(EnvAnalysisMaxOutputTokens); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			c.MaxOutputTokens = int32(n)
		}
	}
}

func (c *AnalysisConfig) validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderAgent:
	default:
		return fmt.Errorf("invalid provider: %s (must be gemini or agent)", c.Provider)
	}
	if c.Provider == ProviderAgent && len(c.Agent) == 0 {
		return fmt.Errorf("agent table required for agent provider")
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.MaxOutputTokens < 0 {
		return fmt.Errorf("max_output_tokens must be positive")
	}
	return nil
}

func float32Ptr(v float32) *float32 {
	return &v
}
