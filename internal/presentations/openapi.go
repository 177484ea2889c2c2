package presentations

import "github.com/JaimeStill/brand-lab/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Create *openapi.Operation
	Latest *openapi.Operation
	Find   *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List presentations",
		Description: "Newest first unless sort is given. Searches company names.",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("pageSize", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Company name search", false),
			openapi.QueryParam("sort", "string", "Comma-separated sort fields. Prefix with - for descending.", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Presentation page", "PresentationPageResult"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create presentation",
		Description: "Validate the questionnaire and assemble a presentation. A supplied analysis is used verbatim; otherwise content is synthesized from the answers.",
		RequestBody: openapi.RequestBodyJSON("CreatePresentationCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Presentation created", "Presentation"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Latest: &openapi.Operation{
		Summary: "Latest presentation",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Most recent presentation", "Presentation"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Get presentation",
		Parameters: []*openapi.Parameter{openapi.UUIDParam("id", "Presentation ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Presentation", "Presentation"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	str := &openapi.Schema{Type: "string"}
	return map[string]*openapi.Schema{
		"Questionnaire": {
			Type: "object",
			Required: []string{
				"companyName", "industry", "targetAudience", "brandPersonality",
				"preferredStyle", "keyFeatures", "callToAction", "email", "documentUrl",
			},
			Properties: map[string]*openapi.Schema{
				"companyName":      str,
				"tagline":          str,
				"industry":         str,
				"targetAudience":   str,
				"ageRange":         str,
				"brandPersonality": str,
				"preferredStyle":   str,
				"primaryColor":     str,
				"secondaryColor":   str,
				"keyFeatures":      {Type: "string", Description: "One feature per line"},
				"callToAction":     str,
				"website":          {Type: "string", Format: "uri"},
				"email":            {Type: "string", Format: "email"},
				"documentUrl":      {Type: "string", Format: "uri"},
			},
		},
		"CreatePresentationCommand": {
			Type:     "object",
			Required: []string{"questionnaire"},
			Properties: map[string]*openapi.Schema{
				"questionnaire": openapi.SchemaRef("Questionnaire"),
				"analysis":      openapi.SchemaRef("BrandAnalysis"),
			},
		},
		"Presentation": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"source":      {Type: "string", Enum: []string{string(SourceAnalysis), string(SourceQuestionnaire)}},
				"companyName": str,
				"content":     openapi.SchemaRef("BrandAnalysis"),
				"createdAt":   {Type: "string", Format: "date-time"},
			},
		},
		"PresentationSummary": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"source":      str,
				"companyName": str,
				"createdAt":   {Type: "string", Format: "date-time"},
			},
		},
		"PresentationPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":       {Type: "array", Items: openapi.SchemaRef("PresentationSummary")},
				"total":      {Type: "integer"},
				"page":       {Type: "integer"},
				"pageSize":   {Type: "integer"},
				"totalPages": {Type: "integer"},
			},
		},
	}
}
