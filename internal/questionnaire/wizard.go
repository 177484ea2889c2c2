package questionnaire

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/JaimeStill/brand-lab/internal/analysis"
	"github.com/JaimeStill/brand-lab/internal/documents"
)

type Step string

const (
	StepUpload       Step = "upload"
	StepCompanyInfo  Step = "company_info"
	StepBrandDetails Step = "brand_details"
	StepReview       Step = "review"
)

type Event string

const (
	EventNext Event = "next"
	EventBack Event = "back"
)

type transitionKey struct {
	from  Step
	event Event
}

type transition struct {
	to    Step
	guard func(*Wizard) error
}

var transitions = map[transitionKey]transition{
	{StepUpload, EventNext}:       {to: StepCompanyInfo, guard: requireDocument},
	{StepCompanyInfo, EventNext}:  {to: StepBrandDetails},
	{StepBrandDetails, EventNext}: {to: StepReview},
	{StepCompanyInfo, EventBack}:  {to: StepUpload},
	{StepBrandDetails, EventBack}: {to: StepCompanyInfo},
	{StepReview, EventBack}:       {to: StepBrandDetails},
}

func requireDocument(w *Wizard) error {
	if w.Document == nil {
		return ErrDocumentRequired
	}
	return nil
}

// AnalysisError is the inline failure shown when pre-fill analysis fails.
type AnalysisError struct {
	Stage       string `json:"stage"`
	Message     string `json:"message"`
	RawResponse string `json:"rawResponse,omitempty"`
}

// Wizard tracks progress through the questionnaire steps.
type Wizard struct {
	Step          Step                    `json:"step"`
	Answers       Questionnaire           `json:"answers"`
	Document      *documents.Document     `json:"document,omitempty"`
	Analysis      *analysis.BrandAnalysis `json:"analysis,omitempty"`
	AnalysisError *AnalysisError          `json:"analysisError,omitempty"`

	edited map[string]bool
}

// NewWizard returns a wizard at the upload step.
func NewWizard() *Wizard {
	return &Wizard{
		Step:   StepUpload,
		edited: make(map[string]bool),
	}
}

// Fire applies event to the current step. Unknown transitions return
// ErrInvalidTransition; a failing guard leaves the step unchanged.
func (w *Wizard) Fire(event Event) error {
	t, ok := transitions[transitionKey{w.Step, event}]
	if !ok {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, event, w.Step)
	}
	if t.guard != nil {
		if err := t.guard(w); err != nil {
			return err
		}
	}
	w.Step = t.to
	return nil
}

func (w *Wizard) Next() error { return w.Fire(EventNext) }

func (w *Wizard) Back() error { return w.Fire(EventBack) }

// AttachDocument records a stored document and points documentUrl at it.
// Any earlier analysis belongs to the previous document and is discarded.
func (w *Wizard) AttachDocument(doc *documents.Document) {
	w.Document = doc
	w.Answers.DocumentURL = doc.Address
	w.Analysis = nil
	w.AnalysisError = nil
}

// Set records a user edit. Edited fields are never overwritten by Prefill.
func (w *Wizard) Set(field, value string) error {
	p, err := w.Answers.field(field)
	if err != nil {
		return err
	}
	*p = value
	w.edited[field] = true
	return nil
}

// Apply sets every answer in a. No field is changed if any name is unknown.
func (w *Wizard) Apply(a Answers) error {
	for name := range a {
		if _, err := w.Answers.field(name); err != nil {
			return err
		}
	}
	for name, value := range a {
		w.Set(name, value)
	}
	return nil
}

// Edited returns the sorted names of fields the user has set.
func (w *Wizard) Edited() []string {
	return slices.Sorted(maps.Keys(w.edited))
}

// CanAnalyze reports whether pre-fill analysis may run now.
func (w *Wizard) CanAnalyze() error {
	if w.Step != StepUpload {
		return fmt.Errorf("%w: analysis runs from %s, not %s", ErrInvalidTransition, StepUpload, w.Step)
	}
	return requireDocument(w)
}

// CompleteAnalysis stores a successful analysis and pre-fills from it.
func (w *Wizard) CompleteAnalysis(a *analysis.BrandAnalysis) {
	w.Analysis = a
	w.AnalysisError = nil
	w.Prefill(a)
}

// FailAnalysis records err inline. The step does not change.
func (w *Wizard) FailAnalysis(err error) {
	w.AnalysisError = &AnalysisError{
		Stage:       analysis.Stage(err),
		Message:     err.Error(),
		RawResponse: analysis.RawResponse(err),
	}
}

// Prefill copies analysis values into answers the user has not edited.
// Empty values and values outside the accepted enumerations are skipped.
func (w *Wizard) Prefill(a *analysis.BrandAnalysis) {
	if a == nil {
		return
	}

	profile := a.BrandAnalysis
	w.setIfPresent(FieldCompanyName, profile.CompanyName)
	w.setIfPresent(FieldTagline, profile.Tagline)
	w.setIfPresent(FieldIndustry, profile.Industry)
	w.setIfPresent(FieldTargetAudience, profile.TargetAudience)
	if analysis.IsPersonality(profile.BrandPersonality) {
		w.setIfPresent(FieldBrandPersonality, profile.BrandPersonality)
	}
	if analysis.IsStyle(a.VisualConcepts.Style) {
		w.setIfPresent(FieldPreferredStyle, a.VisualConcepts.Style)
	}

	titles := make([]string, 0, len(a.LandingPageContent.Features))
	for _, f := range a.LandingPageContent.Features {
		if t := strings.TrimSpace(f.Title); t != "" {
			titles = append(titles, t)
		}
	}
	w.setIfPresent(FieldKeyFeatures, strings.Join(titles, "\n"))
	w.setIfPresent(FieldCallToAction, a.LandingPageContent.CallToAction.Primary)
	w.setIfPresent(FieldPrimaryColor, a.ColorPalette.Primary)
	w.setIfPresent(FieldSecondaryColor, a.ColorPalette.Secondary)
}

func (w *Wizard) setIfPresent(field, value string) {
	if w.edited[field] || strings.TrimSpace(value) == "" {
		return
	}
	p, _ := w.Answers.field(field)
	*p = value
}

// Submit returns the validated questionnaire. It is only reachable from
// review and requires documentUrl to match the attached document.
func (w *Wizard) Submit() (Questionnaire, error) {
	if w.Step != StepReview {
		return Questionnaire{}, fmt.Errorf("%w: submit from %s", ErrInvalidTransition, w.Step)
	}
	if w.Document == nil || w.Answers.DocumentURL != w.Document.Address {
		return Questionnaire{}, ErrDocumentRequired
	}
	if err := w.Answers.Validate(); err != nil {
		return Questionnaire{}, err
	}
	return w.Answers, nil
}
