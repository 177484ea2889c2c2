// Package questionnaire holds the brand questionnaire and the four-step
// wizard that collects it. The wizard is a small state machine driven by
// an explicit transition table; analysis results pre-fill answers without
// overwriting anything the user typed.
package questionnaire

import (
	"fmt"
	"strings"
)

// Questionnaire is the set of answers submitted at the end of the wizard.
type Questionnaire struct {
	CompanyName      string `json:"companyName" validate:"required"`
	Tagline          string `json:"tagline,omitempty"`
	Industry         string `json:"industry" validate:"required"`
	TargetAudience   string `json:"targetAudience" validate:"required"`
	AgeRange         string `json:"ageRange,omitempty"`
	BrandPersonality string `json:"brandPersonality" validate:"required,personality"`
	PreferredStyle   string `json:"preferredStyle" validate:"required,style"`
	PrimaryColor     string `json:"primaryColor,omitempty"`
	SecondaryColor   string `json:"secondaryColor,omitempty"`
	KeyFeatures      string `json:"keyFeatures" validate:"required,features"`
	CallToAction     string `json:"callToAction" validate:"required"`
	Website          string `json:"website,omitempty" validate:"omitempty,url"`
	Email            string `json:"email" validate:"required,email"`
	DocumentURL      string `json:"documentUrl" validate:"required,url"`
}

// Answers maps field names to user-entered values.
type Answers map[string]string

// Field names accepted by Set. documentUrl is owned by the wizard.
const (
	FieldCompanyName      = "companyName"
	FieldTagline          = "tagline"
	FieldIndustry         = "industry"
	FieldTargetAudience   = "targetAudience"
	FieldAgeRange         = "ageRange"
	FieldBrandPersonality = "brandPersonality"
	FieldPreferredStyle   = "preferredStyle"
	FieldPrimaryColor     = "primaryColor"
	FieldSecondaryColor   = "secondaryColor"
	FieldKeyFeatures      = "keyFeatures"
	FieldCallToAction     = "callToAction"
	FieldWebsite          = "website"
	FieldEmail            = "email"
)

func (q *Questionnaire) field(name string) (*string, error) {
	switch name {
	case FieldCompanyName:
		return &q.CompanyName, nil
	case FieldTagline:
		return &q.Tagline, nil
	case FieldIndustry:
		return &q.Industry, nil
	case FieldTargetAudience:
		return &q.TargetAudience, nil
	case FieldAgeRange:
		return &q.AgeRange, nil
	case FieldBrandPersonality:
		return &q.BrandPersonality, nil
	case FieldPreferredStyle:
		return &q.PreferredStyle, nil
	case FieldPrimaryColor:
		return &q.PrimaryColor, nil
	case FieldSecondaryColor:
		return &q.SecondaryColor, nil
	case FieldKeyFeatures:
		return &q.KeyFeatures, nil
	case FieldCallToAction:
		return &q.CallToAction, nil
	case FieldWebsite:
		return &q.Website, nil
	case FieldEmail:
		return &q.Email, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
}

// FeatureLines splits keyFeatures on newlines and drops blank lines.
func (q *Questionnaire) FeatureLines() []string {
	var lines []string
	for line := range strings.SplitSeq(q.KeyFeatures, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
