package questionnaire_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/brand-lab/internal/analysis"
	"github.com/JaimeStill/brand-lab/internal/documents"
	"github.com/JaimeStill/brand-lab/internal/questionnaire"
)

const docAddress = "https://storage.googleapis.com/brand-docs/documents/1-abcd1234-acme.pdf"

func storedDocument() *documents.Document {
	return &documents.Document{
		Address:     docAddress,
		ContentType: documents.ContentTypePDF,
		SizeBytes:   2048,
		Filename:    "1-abcd1234-acme.pdf",
	}
}

func completeAnswers() questionnaire.Answers {
	return questionnaire.Answers{
		"companyName":      "Acme",
		"industry":         "Tech",
		"targetAudience":   "SMBs",
		"brandPersonality": "modern",
		"preferredStyle":   "minimalist",
		"keyFeatures":      "Fast\nSecure\nSimple",
		"callToAction":     "Get Started",
		"email":            "a@b.com",
	}
}

func sampleAnalysis() *analysis.BrandAnalysis {
	a := &analysis.BrandAnalysis{}
	a.BrandAnalysis = analysis.BrandProfile{
		CompanyName:      "Acme Corp",
		Tagline:          "Built to last",
		Industry:         "Manufacturing",
		BrandPersonality: "bold",
		TargetAudience:   "Workshops",
	}
	a.ColorPalette = analysis.ColorPalette{Primary: "#112233", Secondary: "#445566"}
	a.LandingPageContent.Features = []analysis.Feature{
		{Title: "Steel"}, {Title: "Service"}, {Title: "Speed"},
	}
	a.LandingPageContent.CallToAction = analysis.CallToAction{Primary: "Shop now"}
	a.VisualConcepts.Style = "corporate"
	return a
}

func TestWizard_Transitions(t *testing.T) {
	w := questionnaire.NewWizard()
	if w.Step != questionnaire.StepUpload {
		t.Fatalf("initial step = %q, want upload", w.Step)
	}

	w.AttachDocument(storedDocument())

	forward := []questionnaire.Step{
		questionnaire.StepCompanyInfo,
		questionnaire.StepBrandDetails,
		questionnaire.StepReview,
	}
	for _, want := range forward {
		if err := w.Next(); err != nil {
			t.Fatalf("Next() error: %v", err)
		}
		if w.Step != want {
			t.Fatalf("step = %q, want %q", w.Step, want)
		}
	}

	if err := w.Next(); !errors.Is(err, questionnaire.ErrInvalidTransition) {
		t.Errorf("Next() from review error = %v, want ErrInvalidTransition", err)
	}

	backward := []questionnaire.Step{
		questionnaire.StepBrandDetails,
		questionnaire.StepCompanyInfo,
		questionnaire.StepUpload,
	}
	for _, want := range backward {
		if err := w.Back(); err != nil {
			t.Fatalf("Back() error: %v", err)
		}
		if w.Step != want {
			t.Fatalf("step = %q, want %q", w.Step, want)
		}
	}

	if err := w.Back(); !errors.Is(err, questionnaire.ErrInvalidTransition) {
		t.Errorf("Back() from upload error = %v, want ErrInvalidTransition", err)
	}
	if err := w.Fire("skip"); !errors.Is(err, questionnaire.ErrInvalidTransition) {
		t.Errorf("Fire(skip) error = %v, want ErrInvalidTransition", err)
	}
}

func TestWizard_UploadGuard(t *testing.T) {
	w := questionnaire.NewWizard()

	err := w.Next()
	if !errors.Is(err, questionnaire.ErrDocumentRequired) {
		t.Fatalf("Next() error = %v, want ErrDocumentRequired", err)
	}
	if w.Step != questionnaire.StepUpload {
		t.Errorf("step = %q, want upload after failed guard", w.Step)
	}
	if got := questionnaire.MapHTTPStatus(err); got != http.StatusConflict {
		t.Errorf("MapHTTPStatus() = %d, want 409", got)
	}

	w.AttachDocument(storedDocument())
	if w.Answers.DocumentURL != docAddress {
		t.Errorf("documentUrl = %q, want %q", w.Answers.DocumentURL, docAddress)
	}
	if err := w.Next(); err != nil {
		t.Errorf("Next() with document error: %v", err)
	}
}

func TestWizard_Apply(t *testing.T) {
	w := questionnaire.NewWizard()

	if err := w.Apply(questionnaire.Answers{"companyName": "Acme", "documentUrl": "https://evil"}); !errors.Is(err, questionnaire.ErrUnknownField) {
		t.Fatalf("Apply() error = %v, want ErrUnknownField", err)
	}
	if w.Answers.CompanyName != "" {
		t.Error("Apply() changed a field despite rejecting the batch")
	}

	if err := w.Apply(questionnaire.Answers{"companyName": "Acme", "email": "a@b.com"}); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if diff := cmp.Diff([]string{"companyName", "email"}, w.Edited()); diff != "" {
		t.Errorf("Edited() mismatch (-want +got):\n%s", diff)
	}
}

func TestWizard_Prefill(t *testing.T) {
	w := questionnaire.NewWizard()
	w.Set("companyName", "Acme")
	w.Set("tagline", "")

	w.Prefill(sampleAnalysis())

	want := questionnaire.Questionnaire{
		CompanyName:      "Acme",
		Tagline:          "",
		Industry:         "Manufacturing",
		TargetAudience:   "Workshops",
		BrandPersonality: "bold",
		PreferredStyle:   "corporate",
		PrimaryColor:     "#112233",
		SecondaryColor:   "#445566",
		KeyFeatures:      "Steel\nService\nSpeed",
		CallToAction:     "Shop now",
	}
	if diff := cmp.Diff(want, w.Answers); diff != "" {
		t.Errorf("answers mismatch (-want +got):\n%s", diff)
	}
}

func TestWizard_PrefillSkipsEmptyAndUnknown(t *testing.T) {
	w := questionnaire.NewWizard()
	w.Set("industry", "Tech")

	a := sampleAnalysis()
	a.BrandAnalysis.CompanyName = "  "
	a.BrandAnalysis.BrandPersonality = "quirky"
	a.VisualConcepts.Style = "neon"

	w.Prefill(a)

	if w.Answers.CompanyName != "" {
		t.Errorf("companyName = %q, want empty", w.Answers.CompanyName)
	}
	if w.Answers.Industry != "Tech" {
		t.Errorf("industry = %q, want user value Tech", w.Answers.Industry)
	}
	if w.Answers.BrandPersonality != "" || w.Answers.PreferredStyle != "" {
		t.Errorf("out-of-enum values copied: %q, %q", w.Answers.BrandPersonality, w.Answers.PreferredStyle)
	}

	w.Prefill(nil)
}

func TestWizard_AnalysisOutcome(t *testing.T) {
	w := questionnaire.NewWizard()

	if err := w.CanAnalyze(); !errors.Is(err, questionnaire.ErrDocumentRequired) {
		t.Errorf("CanAnalyze() error = %v, want ErrDocumentRequired", err)
	}

	w.AttachDocument(storedDocument())
	if err := w.CanAnalyze(); err != nil {
		t.Fatalf("CanAnalyze() error: %v", err)
	}

	w.FailAnalysis(&analysis.MalformedResponseError{Raw: "oops", Err: errors.New("bad json")})
	if w.Step != questionnaire.StepUpload {
		t.Errorf("step = %q, want upload", w.Step)
	}
	if w.AnalysisError == nil || w.AnalysisError.RawResponse != "oops" || w.AnalysisError.Stage != analysis.StageAnalyze {
		t.Errorf("AnalysisError = %+v", w.AnalysisError)
	}

	w.CompleteAnalysis(sampleAnalysis())
	if w.AnalysisError != nil {
		t.Error("AnalysisError not cleared by a successful analysis")
	}
	if w.Answers.CompanyName != "Acme Corp" {
		t.Errorf("companyName = %q, want prefilled value", w.Answers.CompanyName)
	}

	w.Next()
	if err := w.CanAnalyze(); !errors.Is(err, questionnaire.ErrInvalidTransition) {
		t.Errorf("CanAnalyze() past upload error = %v, want ErrInvalidTransition", err)
	}
}

func TestWizard_Submit(t *testing.T) {
	ready := func(t *testing.T) *questionnaire.Wizard {
		t.Helper()
		w := questionnaire.NewWizard()
		w.AttachDocument(storedDocument())
		if err := w.Apply(completeAnswers()); err != nil {
			t.Fatalf("Apply() error: %v", err)
		}
		for range 3 {
			if err := w.Next(); err != nil {
				t.Fatalf("Next() error: %v", err)
			}
		}
		return w
	}

	t.Run("valid", func(t *testing.T) {
		q, err := ready(t).Submit()
		if err != nil {
			t.Fatalf("Submit() error: %v", err)
		}
		if q.CompanyName != "Acme" || q.DocumentURL != docAddress {
			t.Errorf("questionnaire = %+v", q)
		}
	})

	t.Run("not at review", func(t *testing.T) {
		w := ready(t)
		w.Back()
		if _, err := w.Submit(); !errors.Is(err, questionnaire.ErrInvalidTransition) {
			t.Errorf("Submit() error = %v, want ErrInvalidTransition", err)
		}
	})

	t.Run("lists every invalid field", func(t *testing.T) {
		w := ready(t)
		w.Apply(questionnaire.Answers{
			"email":            "not-an-email",
			"brandPersonality": "quirky",
			"website":          "nope",
			"keyFeatures":      "  \n ",
			"industry":         "",
		})

		_, err := w.Submit()
		var verrs questionnaire.ValidationErrors
		if !errors.As(err, &verrs) {
			t.Fatalf("Submit() error = %v, want ValidationErrors", err)
		}

		want := []string{"industry", "brandPersonality", "keyFeatures", "website", "email"}
		if diff := cmp.Diff(want, verrs.Fields()); diff != "" {
			t.Errorf("fields mismatch (-want +got):\n%s", diff)
		}
		if got := questionnaire.MapHTTPStatus(err); got != http.StatusBadRequest {
			t.Errorf("MapHTTPStatus() = %d, want 400", got)
		}
	})
}

func TestQuestionnaire_FeatureLines(t *testing.T) {
	q := questionnaire.Questionnaire{KeyFeatures: "Fast\n\n  Secure  \r\nSimple\n"}

	if diff := cmp.Diff([]string{"Fast", "Secure", "Simple"}, q.FeatureLines()); diff != "" {
		t.Errorf("FeatureLines() mismatch (-want +got):\n%s", diff)
	}
}
