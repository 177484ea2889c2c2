package analysis_test

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/JaimeStill/brand-lab/internal/analysis"
)

func loadFixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("testdata/acme.json")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return string(data)
}

func mutate(t *testing.T, raw string, fn func(m map[string]any)) string {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	fn(m)
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return string(b)
}

func section(m map[string]any, name string) map[string]any {
	return m[name].(map[string]any)
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```\n  ", `{"a":1}`},
		{"nested fences", "```json\n```json\n{\"a\":1}\n```\n```", `{"a":1}`},
		{"no closing fence", "```json\n{\"a\":1}", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analysis.StripFences(tt.input)
			if got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := analysis.StripFences(got); again != got {
				t.Errorf("StripFences not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestParse_FencedEqualsBare(t *testing.T) {
	raw := loadFixture(t)

	bare, err := analysis.Parse(raw)
	if err != nil {
		t.Fatalf("Parse(bare) error: %v", err)
	}

	fenced, err := analysis.Parse("```json\n" + raw + "\n```")
	if err != nil {
		t.Fatalf("Parse(fenced) error: %v", err)
	}

	if bare.BrandAnalysis != fenced.BrandAnalysis || bare.ColorPalette != fenced.ColorPalette {
		t.Errorf("fenced result differs from bare result")
	}
	if bare.BrandAnalysis.CompanyName != "Acme" {
		t.Errorf("CompanyName = %q, want Acme", bare.BrandAnalysis.CompanyName)
	}
	if len(bare.LandingPageContent.Features) != 3 {
		t.Errorf("features = %d, want 3", len(bare.LandingPageContent.Features))
	}
}

func TestParse_Malformed(t *testing.T) {
	raw := loadFixture(t)

	tests := []struct {
		name  string
		input string
	}{
		{"not json", "I'm sorry, I cannot help with that."},
		{"empty object", "{}"},
		{"truncated", raw[:len(raw)/2]},
		{"trailing text", raw + "\nHope this helps!"},
		{"two value propositions", mutate(t, raw, func(m map[string]any) {
			section(m, "landingPageContent")["valuePropositions"] = []any{"a", "b"}
		})},
		{"four features", mutate(t, raw, func(m map[string]any) {
			lp := section(m, "landingPageContent")
			features := lp["features"].([]any)
			lp["features"] = append(features, features[0])
		})},
		{"unknown personality", mutate(t, raw, func(m map[string]any) {
			section(m, "brandAnalysis")["brandPersonality"] = "quirky"
		})},
		{"unknown style", mutate(t, raw, func(m map[string]any) {
			section(m, "visualConcepts")["style"] = "neon"
		})},
		{"short hex", mutate(t, raw, func(m map[string]any) {
			section(m, "colorPalette")["primary"] = "#123"
		})},
		{"named color", mutate(t, raw, func(m map[string]any) {
			section(m, "colorPalette")["accent"] = "orange"
		})},
		{"missing company", mutate(t, raw, func(m map[string]any) {
			delete(section(m, "brandAnalysis"), "companyName")
		})},
		{"one strength", mutate(t, raw, func(m map[string]any) {
			section(m, "recommendations")["strengths"] = []any{"only"}
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := analysis.Parse(tt.input)
			if err == nil {
				t.Fatal("Parse() error = nil, want malformed response")
			}
			if result != nil {
				t.Error("Parse() returned a result alongside an error")
			}
			if !errors.Is(err, analysis.ErrMalformedResponse) {
				t.Errorf("error = %v, want ErrMalformedResponse", err)
			}
			if got := analysis.RawResponse(err); got != tt.input {
				t.Errorf("RawResponse() = %q, want the verbatim input", got)
			}
		})
	}
}

func TestIsHexColor(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"#AABBCC", true},
		{"#a1b2c3", true},
		{"AABBCC", false},
		{"#ABC", false},
		{"#GGHHII", false},
		{"#AABBCCDD", false},
	}

	for _, tt := range tests {
		if got := analysis.IsHexColor(tt.input); got != tt.want {
			t.Errorf("IsHexColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestBuildPrompt(t *testing.T) {
	t.Run("without hints", func(t *testing.T) {
		prompt, err := analysis.BuildPrompt("Acme makes anvils.", nil)
		if err != nil {
			t.Fatalf("BuildPrompt() error: %v", err)
		}
		if !strings.Contains(prompt, "BRAND DOCUMENT:\nAcme makes anvils.") {
			t.Error("prompt missing document text")
		}
		if strings.Contains(prompt, "ADDITIONAL CONTEXT FROM USER") {
			t.Error("hint block rendered without hints")
		}
		if !strings.Contains(prompt, "one of: professional, playful, luxurious, minimal, bold, elegant, modern, traditional") {
			t.Error("prompt missing personality enumeration")
		}
		if !strings.Contains(prompt, "one of: minimalist, vibrant, dark, light, gradient, corporate") {
			t.Error("prompt missing style enumeration")
		}
	})

	t.Run("with partial hints", func(t *testing.T) {
		prompt, err := analysis.BuildPrompt("doc", &analysis.Hints{CompanyName: "Acme", Industry: "  "})
		if err != nil {
			t.Fatalf("BuildPrompt() error: %v", err)
		}
		for _, want := range []string{
			"ADDITIONAL CONTEXT FROM USER:",
			"Company Name: Acme",
			"Industry: Not provided",
			"Call to Action: Not provided",
		} {
			if !strings.Contains(prompt, want) {
				t.Errorf("prompt missing %q", want)
			}
		}
	})

	t.Run("image sentinel passes through", func(t *testing.T) {
		prompt, err := analysis.BuildPrompt("[IMAGE_FILE]", nil)
		if err != nil {
			t.Fatalf("BuildPrompt() error: %v", err)
		}
		if !strings.Contains(prompt, "[IMAGE_FILE]") {
			t.Error("prompt missing image sentinel")
		}
	})
}
