// Package analysis asks a generative model to extract a structured brand
// profile from document text. Model output is untrusted: it is stripped of
// markdown fences, decoded, and structurally validated before use.
package analysis

// Brand personalities accepted in analysis and questionnaire answers.
var Personalities = []string{
	"professional", "playful", "luxurious", "minimal",
	"bold", "elegant", "modern", "traditional",
}

// Visual styles accepted in analysis and questionnaire answers.
var Styles = []string{
	"minimalist", "vibrant", "dark", "light", "gradient", "corporate",
}

// BrandAnalysis is the structured result of a brand document analysis.
type BrandAnalysis struct {
	BrandAnalysis      BrandProfile       `json:"brandAnalysis"`
	ColorPalette       ColorPalette       `json:"colorPalette"`
	Typography         Typography         `json:"typography"`
	LandingPageContent LandingPageContent `json:"landingPageContent"`
	VisualConcepts     VisualConcepts     `json:"visualConcepts"`
	Recommendations    Recommendations    `json:"recommendations"`
}

type BrandProfile struct {
	CompanyName      string `json:"companyName" validate:"required"`
	Tagline          string `json:"tagline" validate:"required"`
	Industry         string `json:"industry" validate:"required"`
	BrandPersonality string `json:"brandPersonality" validate:"required,personality"`
	TargetAudience   string `json:"targetAudience" validate:"required"`
	BrandVoice       string `json:"brandVoice" validate:"required"`
}

// ColorPalette holds #RRGGBB colors.
type ColorPalette struct {
	Primary    string `json:"primary" validate:"rgbhex"`
	Secondary  string `json:"secondary" validate:"rgbhex"`
	Accent     string `json:"accent" validate:"rgbhex"`
	Background string `json:"background" validate:"rgbhex"`
	Text       string `json:"text" validate:"rgbhex"`
}

type Typography struct {
	HeadingFont string `json:"headingFont" validate:"required"`
	BodyFont    string `json:"bodyFont" validate:"required"`
	FontPairing string `json:"fontPairing"`
}

type LandingPageContent struct {
	HeroHeadline      string       `json:"heroHeadline" validate:"required"`
	HeroSubheadline   string       `json:"heroSubheadline" validate:"required"`
	ValuePropositions []string     `json:"valuePropositions" validate:"len=3,dive,required"`
	Features          []Feature    `json:"features" validate:"len=3,dive"`
	CallToAction      CallToAction `json:"callToAction"`
	AboutSection      string       `json:"aboutSection" validate:"required"`
}

type Feature struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type CallToAction struct {
	Primary   string `json:"primary" validate:"required"`
	Secondary string `json:"secondary" validate:"required"`
}

type VisualConcepts struct {
	Style             string   `json:"style" validate:"required,style"`
	Mood              string   `json:"mood" validate:"required"`
	KeyVisualElements []string `json:"keyVisualElements" validate:"len=3,dive,required"`
	ThreeDConcepts    []string `json:"threeDConcepts" validate:"len=2,dive,required"`
}

type Recommendations struct {
	Strengths       []string `json:"strengths" validate:"len=2,dive,required"`
	Opportunities   []string `json:"opportunities" validate:"len=2,dive,required"`
	DesignDirection string   `json:"designDirection" validate:"required"`
}

// Hints are optional user answers rendered into the prompt as additional context.
type Hints struct {
	CompanyName      string `json:"companyName,omitempty"`
	Industry         string `json:"industry,omitempty"`
	TargetAudience   string `json:"targetAudience,omitempty"`
	BrandPersonality string `json:"brandPersonality,omitempty"`
	PreferredStyle   string `json:"preferredStyle,omitempty"`
	KeyFeatures      string `json:"keyFeatures,omitempty"`
	CallToAction     string `json:"callToAction,omitempty"`
}
