package analysis

import "github.com/JaimeStill/brand-lab/pkg/openapi"

type spec struct {
	Analyze *openapi.Operation
}

var Spec = spec{
	Analyze: &openapi.Operation{
		Summary:     "Analyze document",
		Description: "Extract text from a stored document and ask the model for a structured brand analysis. A reply that fails to parse returns 502 with the raw model output.",
		RequestBody: openapi.RequestBodyJSON("AnalyzeRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Brand analysis", "AnalyzeResponse"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			422: {Description: "Text extraction failed"},
			502: openapi.ResponseRef("BadGateway"),
			504: {Description: "Extraction or model call exceeded the analysis timeout"},
		},
	},
}

func str() *openapi.Schema {
	return &openapi.Schema{Type: "string"}
}

func colorSchema() *openapi.Schema {
	return &openapi.Schema{Type: "string", Pattern: "^#[0-9A-Fa-f]{6}$"}
}

func object(required []string, props map[string]*openapi.Schema) *openapi.Schema {
	return &openapi.Schema{Type: "object", Properties: props, Required: required}
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"BrandHints": object(nil, map[string]*openapi.Schema{
			"companyName":      str(),
			"industry":         str(),
			"targetAudience":   str(),
			"brandPersonality": str(),
			"preferredStyle":   str(),
			"keyFeatures":      str(),
			"callToAction":     str(),
		}),
		"AnalyzeRequest": object([]string{"documentUrl"}, map[string]*openapi.Schema{
			"documentUrl": {Type: "string", Format: "uri"},
			"fileType":    {Type: "string", Description: "Content type of the stored document"},
			"formData":    openapi.SchemaRef("BrandHints"),
		}),
		"AnalyzeResponse": object(nil, map[string]*openapi.Schema{
			"success":     {Type: "boolean"},
			"analysis":    openapi.SchemaRef("BrandAnalysis"),
			"documentUrl": str(),
		}),
		"BrandAnalysis": object(nil, map[string]*openapi.Schema{
			"brandAnalysis": object(nil, map[string]*openapi.Schema{
				"companyName":      str(),
				"tagline":          str(),
				"industry":         str(),
				"brandPersonality": {Type: "string", Enum: Personalities},
				"targetAudience":   str(),
				"brandVoice":       str(),
			}),
			"colorPalette": object(nil, map[string]*openapi.Schema{
				"primary":    colorSchema(),
				"secondary":  colorSchema(),
				"accent":     colorSchema(),
				"background": colorSchema(),
				"text":       colorSchema(),
			}),
			"typography": object(nil, map[string]*openapi.Schema{
				"headingFont": str(),
				"bodyFont":    str(),
				"fontPairing": str(),
			}),
			"landingPageContent": object(nil, map[string]*openapi.Schema{
				"heroHeadline":      str(),
				"heroSubheadline":   str(),
				"valuePropositions": openapi.Array(str(), 3),
				"features": openapi.Array(object(nil, map[string]*openapi.Schema{
					"title":       str(),
					"description": str(),
				}), 3),
				"callToAction": object(nil, map[string]*openapi.Schema{
					"primary":   str(),
					"secondary": str(),
				}),
				"aboutSection": str(),
			}),
			"visualConcepts": object(nil, map[string]*openapi.Schema{
				"style":             {Type: "string", Enum: Styles},
				"mood":              str(),
				"keyVisualElements": openapi.Array(str(), 3),
				"threeDConcepts":    openapi.Array(str(), 2),
			}),
			"recommendations": object(nil, map[string]*openapi.Schema{
				"strengths":       openapi.Array(str(), 2),
				"opportunities":   openapi.Array(str(), 2),
				"designDirection": str(),
			}),
		}),
	}
}
