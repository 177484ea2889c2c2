package documents

import "github.com/JaimeStill/brand-lab/pkg/openapi"

type spec struct {
	Upload *openapi.Operation
	Blob   *openapi.Operation
}

var Spec = spec{
	Upload: &openapi.Operation{
		Summary:     "Upload document",
		Description: "Upload a brand document (PDF, DOCX, JPEG, PNG or WebP, at most the configured size). Type and size are validated before anything is stored.",
		RequestBody: &openapi.RequestBody{
			Required: true,
			Content: map[string]*openapi.MediaType{
				"multipart/form-data": {
					Schema: &openapi.Schema{
						Type: "object",
						Properties: map[string]*openapi.Schema{
							"file": {Type: "string", Format: "binary", Description: "Document file to upload"},
						},
						Required: []string{"file"},
					},
				},
			},
		},
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Document stored", "Document"),
			400: openapi.ResponseRef("BadRequest"),
			413: {Description: "Request body too large"},
			502: openapi.ResponseRef("BadGateway"),
		},
	},
	Blob: &openapi.Operation{
		Summary:     "Read stored blob",
		Description: "Serve the bytes stored under a document key",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("key", "Storage key"),
		},
		Responses: map[int]*openapi.Response{
			200: {Description: "Blob bytes"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Document": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"address":      {Type: "string", Format: "uri", Description: "Opaque locator of the stored document"},
				"contentType":  {Type: "string", Enum: AllowedContentTypes},
				"sizeBytes":    {Type: "integer", Format: "int64"},
				"filename":     {Type: "string", Description: "Generated storage file name"},
				"originalName": {Type: "string", Description: "Client supplied file name"},
				"pageCount":    {Type: "integer", Description: "Page count (PDFs only)"},
			},
			Required: []string{"address", "contentType", "sizeBytes", "filename", "originalName"},
		},
	}
}
