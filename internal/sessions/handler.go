package sessions

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/brand-lab/internal/documents"
	"github.com/JaimeStill/brand-lab/internal/presentations"
	"github.com/JaimeStill/brand-lab/internal/questionnaire"
	"github.com/JaimeStill/brand-lab/pkg/handlers"
	"github.com/JaimeStill/brand-lab/pkg/routes"
)

var errInvalidID = errors.New("invalid session id")

// Handler provides the HTTP surface of the questionnaire wizard.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "sessions"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/sessions",
		Tags:        []string{"Sessions"},
		Description: "Questionnaire wizard sessions",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "POST", Pattern: "/{id}/document", Handler: h.Attach, OpenAPI: Spec.Attach},
			{Method: "POST", Pattern: "/{id}/analyze", Handler: h.Analyze, OpenAPI: Spec.Analyze},
			{Method: "PATCH", Pattern: "/{id}/answers", Handler: h.Answers, OpenAPI: Spec.Answers},
			{Method: "POST", Pattern: "/{id}/next", Handler: h.event(questionnaire.EventNext), OpenAPI: Spec.Next},
			{Method: "POST", Pattern: "/{id}/back", Handler: h.event(questionnaire.EventBack), OpenAPI: Spec.Back},
			{Method: "POST", Pattern: "/{id}/submit", Handler: h.Submit, OpenAPI: Spec.Submit},
		},
		Schemas: Spec.Schemas(),
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	view, err := h.sys.Create(r.Context())
	if err != nil {
		h.fail(w, err, "")
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, view)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}

	view, err := h.sys.Get(r.Context(), id)
	if err != nil {
		h.fail(w, err, "")
		return
	}
	handlers.RespondJSON(w, http.StatusOK, view)
}

func (h *Handler) Attach(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}

	if _, err := h.sys.Get(r.Context(), id); err != nil {
		h.fail(w, err, "")
		return
	}

	upload, err := documents.ReceiveUpload(w, r, h.sys.MaxUploadSize(), h.logger)
	if err != nil {
		h.fail(w, err, documents.StageUpload)
		return
	}

	view, err := h.sys.Attach(r.Context(), id, upload)
	if err != nil {
		h.fail(w, err, documents.StageUpload)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, view)
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}

	view, err := h.sys.Analyze(r.Context(), id)
	if err != nil {
		h.fail(w, err, "")
		return
	}
	handlers.RespondJSON(w, http.StatusOK, view)
}

func (h *Handler) Answers(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}

	answers, err := handlers.DecodeJSON[questionnaire.Answers](r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	view, err := h.sys.Apply(r.Context(), id, answers)
	if err != nil {
		h.fail(w, err, "")
		return
	}
	handlers.RespondJSON(w, http.StatusOK, view)
}

func (h *Handler) event(event questionnaire.Event) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.id(w, r)
		if !ok {
			return
		}

		view, err := h.sys.Fire(r.Context(), id, event)
		if err != nil {
			h.fail(w, err, "")
			return
		}
		handlers.RespondJSON(w, http.StatusOK, view)
	}
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}

	result, err := h.sys.Submit(r.Context(), id)
	if err != nil {
		h.fail(w, err, presentations.StageAssemble)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, result)
}

func (h *Handler) id(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) fail(w http.ResponseWriter, err error, stage string) {
	body := handlers.ErrorBody{Error: err.Error(), Stage: stage}

	var verrs questionnaire.ValidationErrors
	if errors.As(err, &verrs) {
		body.Error = "invalid questionnaire"
		body.Details = verrs.Error()
	}

	handlers.RespondFailure(w, h.logger, MapHTTPStatus(err), body)
}
