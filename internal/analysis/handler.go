package analysis

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/brand-lab/pkg/handlers"
	"github.com/JaimeStill/brand-lab/pkg/routes"
)

// Response is returned by a successful analysis request.
type Response struct {
	Success     bool           `json:"success"`
	Analysis    *BrandAnalysis `json:"analysis"`
	DocumentURL string         `json:"documentUrl"`
}

// Handler provides the HTTP endpoint for document analysis.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates an analysis handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "analysis"),
	}
}

// Routes returns the analysis endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/analyze",
		Tags:        []string{"Analysis"},
		Description: "AI brand analysis of stored documents",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Analyze, OpenAPI: Spec.Analyze},
		},
		Schemas: Spec.Schemas(),
	}
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	req, err := handlers.DecodeJSON[Request](r)
	if err != nil {
		h.fail(w, errors.Join(ErrInvalidRequest, err))
		return
	}

	result, err := h.sys.AnalyzeDocument(r.Context(), req)
	if err != nil {
		h.fail(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		Success:     true,
		Analysis:    result,
		DocumentURL: req.DocumentURL,
	})
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	handlers.RespondFailure(w, h.logger, MapHTTPStatus(err), FailureBody(err))
}

// FailureBody describes a pipeline error for clients, including the raw
// model reply when parsing failed.
func FailureBody(err error) handlers.ErrorBody {
	body := handlers.ErrorBody{
		Stage:   Stage(err),
		Details: err.Error(),
	}

	switch {
	case errors.Is(err, ErrInvalidRequest):
		body.Error = "invalid analysis request"
	case errors.Is(err, ErrMalformedResponse):
		body.Error = ErrMalformedResponse.Error()
		body.RawResponse = RawResponse(err)
	default:
		body.Error = "failed to analyze document"
	}
	return body
}
