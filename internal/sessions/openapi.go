package sessions

import "github.com/JaimeStill/brand-lab/pkg/openapi"

type spec struct {
	Create  *openapi.Operation
	Find    *openapi.Operation
	Attach  *openapi.Operation
	Analyze *openapi.Operation
	Answers *openapi.Operation
	Next    *openapi.Operation
	Back    *openapi.Operation
	Submit  *openapi.Operation
}

var sessionID = openapi.UUIDParam("id", "Session ID")

func sessionResponse(description string) *openapi.Response {
	return openapi.ResponseJSON(description, "Session")
}

var Spec = spec{
	Create: &openapi.Operation{
		Summary: "Start session",
		Responses: map[int]*openapi.Response{
			201: sessionResponse("New session at the upload step"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Get session",
		Parameters: []*openapi.Parameter{sessionID},
		Responses: map[int]*openapi.Response{
			200: sessionResponse("Session"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Attach: &openapi.Operation{
		Summary:     "Upload document",
		Description: "Store a brand document and attach it to the session. Failure leaves the session unchanged.",
		Parameters:  []*openapi.Parameter{sessionID},
		RequestBody: &openapi.RequestBody{
			Required: true,
			Content: map[string]*openapi.MediaType{
				"multipart/form-data": {Schema: &openapi.Schema{
					Type:       "object",
					Required:   []string{"file"},
					Properties: map[string]*openapi.Schema{"file": {Type: "string", Format: "binary"}},
				}},
			},
		},
		Responses: map[int]*openapi.Response{
			200: sessionResponse("Document attached"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			413: {Description: "Request body too large"},
			502: openapi.ResponseRef("BadGateway"),
		},
	},
	Analyze: &openapi.Operation{
		Summary:     "Analyze document",
		Description: "Run brand analysis on the attached document and pre-fill unedited answers. Analysis failures are reported in analysisError with status 200.",
		Parameters:  []*openapi.Parameter{sessionID},
		Responses: map[int]*openapi.Response{
			200: sessionResponse("Session with analysis or analysisError"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Answers: &openapi.Operation{
		Summary:     "Edit answers",
		Parameters:  []*openapi.Parameter{sessionID},
		RequestBody: openapi.RequestBodyJSON("Answers", true),
		Responses: map[int]*openapi.Response{
			200: sessionResponse("Answers applied"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Next: &openapi.Operation{
		Summary:    "Next step",
		Parameters: []*openapi.Parameter{sessionID},
		Responses: map[int]*openapi.Response{
			200: sessionResponse("Advanced"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Back: &openapi.Operation{
		Summary:    "Previous step",
		Parameters: []*openapi.Parameter{sessionID},
		Responses: map[int]*openapi.Response{
			200: sessionResponse("Moved back"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Submit: &openapi.Operation{
		Summary:     "Submit questionnaire",
		Description: "Validate the answers and create a presentation from them, or from the analysis when one succeeded.",
		Parameters:  []*openapi.Parameter{sessionID},
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Presentation created", "SubmitResult"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Answers": {
			Type:        "object",
			Description: "Questionnaire field names mapped to values",
		},
		"AnalysisError": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"stage":       {Type: "string", Enum: []string{"extract", "analyze"}},
				"message":     {Type: "string"},
				"rawResponse": {Type: "string"},
			},
		},
		"Session": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":             {Type: "string", Format: "uuid"},
				"step":           {Type: "string", Enum: []string{"upload", "company_info", "brand_details", "review"}},
				"answers":        openapi.SchemaRef("Questionnaire"),
				"edited":         {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"document":       openapi.SchemaRef("Document"),
				"analysis":       openapi.SchemaRef("BrandAnalysis"),
				"analysisError":  openapi.SchemaRef("AnalysisError"),
				"presentationId": {Type: "string", Format: "uuid"},
				"createdAt":      {Type: "string", Format: "date-time"},
				"updatedAt":      {Type: "string", Format: "date-time"},
			},
		},
		"SubmitResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"session":      openapi.SchemaRef("Session"),
				"presentation": openapi.SchemaRef("Presentation"),
			},
		},
	}
}
