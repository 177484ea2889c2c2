package presentations

import (
	"fmt"

	"github.com/JaimeStill/brand-lab/internal/analysis"
	"github.com/JaimeStill/brand-lab/internal/questionnaire"
)

// Synthesis defaults.
const (
	DefaultSubheadline  = "Powered by AI"
	DefaultPrimaryCTA   = "Get Started"
	DefaultSecondaryCTA = "Learn More"
	DefaultFont         = "Inter"
	DefaultPrimary      = "#2E5BFF"
	DefaultSecondary    = "#6E7C91"
	DefaultAccent       = "#FFFFFF"
	DefaultBackground   = "#0F1115"
	DefaultText         = "#FFFFFF"
)

// Assemble uses a verbatim when a is non-nil and otherwise synthesizes
// content from q. The result has no ID or timestamp.
func Assemble(q questionnaire.Questionnaire, a *analysis.BrandAnalysis) Presentation {
	if a != nil {
		return Presentation{
			Source:      SourceAnalysis,
			CompanyName: companyName(a.BrandAnalysis.CompanyName, q.CompanyName),
			Content:     *a,
		}
	}
	return Presentation{
		Source:      SourceQuestionnaire,
		CompanyName: q.CompanyName,
		Content:     synthesize(q),
	}
}

func companyName(preferred, fallback string) string {
	if preferred != "" {
		return preferred
	}
	return fallback
}

func synthesize(q questionnaire.Questionnaire) analysis.BrandAnalysis {
	lines := q.FeatureLines()

	features := make([]analysis.Feature, len(lines))
	for i, line := range lines {
		features[i] = analysis.Feature{
			Title:       fmt.Sprintf("Feature %d", i+1),
			Description: line,
		}
	}

	props := lines[:min(3, len(lines))]

	subheadline := q.Tagline
	if subheadline == "" {
		subheadline = DefaultSubheadline
	}

	cta := q.CallToAction
	if cta == "" {
		cta = DefaultPrimaryCTA
	}

	return analysis.BrandAnalysis{
		BrandAnalysis: analysis.BrandProfile{
			CompanyName:      q.CompanyName,
			Tagline:          q.Tagline,
			Industry:         q.Industry,
			BrandPersonality: q.BrandPersonality,
			TargetAudience:   q.TargetAudience,
		},
		ColorPalette: analysis.ColorPalette{
			Primary:    colorOr(q.PrimaryColor, DefaultPrimary),
			Secondary:  colorOr(q.SecondaryColor, DefaultSecondary),
			Accent:     DefaultAccent,
			Background: DefaultBackground,
			Text:       DefaultText,
		},
		Typography: analysis.Typography{
			HeadingFont: DefaultFont,
			BodyFont:    DefaultFont,
		},
		LandingPageContent: analysis.LandingPageContent{
			HeroHeadline:      q.CompanyName,
			HeroSubheadline:   subheadline,
			ValuePropositions: append([]string(nil), props...),
			Features:          features,
			CallToAction: analysis.CallToAction{
				Primary:   cta,
				Secondary: DefaultSecondaryCTA,
			},
			AboutSection: fmt.Sprintf("%s is a %s company serving %s.", q.CompanyName, q.Industry, q.TargetAudience),
		},
		VisualConcepts: analysis.VisualConcepts{
			Style: q.PreferredStyle,
		},
	}
}

func colorOr(value, fallback string) string {
	if analysis.IsHexColor(value) {
		return value
	}
	return fallback
}
