package presentations

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/brand-lab/internal/analysis"
	"github.com/JaimeStill/brand-lab/internal/questionnaire"
	"github.com/JaimeStill/brand-lab/pkg/handlers"
	"github.com/JaimeStill/brand-lab/pkg/pagination"
	"github.com/JaimeStill/brand-lab/pkg/routes"
)

// CreateCommand is the body of a presentation create request.
type CreateCommand struct {
	Questionnaire questionnaire.Questionnaire `json:"questionnaire"`
	Analysis      *analysis.BrandAnalysis     `json:"analysis,omitempty"`
}

// Handler provides HTTP endpoints for presentations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "presentations"),
		pagination: pagination,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/presentations",
		Tags:        []string{"Presentations"},
		Description: "Assembled landing page presentations",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
			{Method: "GET", Pattern: "/latest", Handler: h.Latest, OpenAPI: Spec.Latest},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
		},
		Schemas: Spec.Schemas(),
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.List(r.Context(), page)
	if err != nil {
		h.fail(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	cmd, err := handlers.DecodeJSON[CreateCommand](r)
	if err != nil {
		h.fail(w, errors.Join(ErrInvalidRequest, err))
		return
	}

	result, err := h.sys.Create(r.Context(), cmd.Questionnaire, cmd.Analysis)
	if err != nil {
		h.fail(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

func (h *Handler) Latest(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.Latest(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.fail(w, errors.Join(ErrInvalidRequest, err))
		return
	}

	result, err := h.sys.Get(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	handlers.RespondFailure(w, h.logger, MapHTTPStatus(err), FailureBody(err))
}

// FailureBody describes a presentation error, listing invalid fields when
// the questionnaire failed validation.
func FailureBody(err error) handlers.ErrorBody {
	body := handlers.ErrorBody{
		Error: err.Error(),
		Stage: StageAssemble,
	}

	var verrs questionnaire.ValidationErrors
	if errors.As(err, &verrs) {
		body.Error = "invalid questionnaire"
		body.Details = verrs.Error()
	}
	return body
}
