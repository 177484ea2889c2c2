package documents

import (
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/JaimeStill/brand-lab/pkg/handlers"
	"github.com/JaimeStill/brand-lab/pkg/routes"
)

// Handler provides HTTP endpoints for document operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a document handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "documents"),
	}
}

// Routes returns the document endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/documents",
		Tags:        []string{"Documents"},
		Description: "Brand document upload and blob access",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Upload, OpenAPI: Spec.Upload},
			{Method: "GET", Pattern: "/blobs/{key...}", Handler: h.Blob, OpenAPI: Spec.Blob},
		},
		Schemas: Spec.Schemas(),
	}
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	upload, err := ReceiveUpload(w, r, h.sys.MaxUploadSize(), h.logger)
	if err != nil {
		h.fail(w, err)
		return
	}

	doc, err := h.sys.Store(r.Context(), upload.Data, upload.ContentType, upload.OriginalName)
	if err != nil {
		h.fail(w, err)
		return
	}
	doc.PageCount = upload.PageCount

	handlers.RespondJSON(w, http.StatusCreated, doc)
}

func (h *Handler) Blob(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	data, err := h.sys.Blob(r.Context(), key)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	contentType, ok := extensionTypes[strings.ToLower(path.Ext(key))]
	if !ok {
		contentType = http.DetectContentType(data)
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	handlers.RespondFailure(w, h.logger, MapHTTPStatus(err), handlers.ErrorBody{
		Error: err.Error(),
		Stage: StageUpload,
	})
}
