// Package preview renders stored presentations as static landing pages.
package preview

import (
	"context"
	"embed"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/brand-lab/internal/presentations"
	"github.com/JaimeStill/brand-lab/pkg/module"
	"github.com/JaimeStill/brand-lab/pkg/web"
)

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "preview.html"

var (
	presentationView = web.ViewDef{Template: "presentation.html", Title: "Preview"}
	notFoundView     = web.ViewDef{Template: "404.html", Title: "Not Found"}
)

// Source loads presentations for rendering.
type Source interface {
	Get(ctx context.Context, id uuid.UUID) (*presentations.Presentation, error)
	Latest(ctx context.Context) (*presentations.Presentation, error)
}

type handler struct {
	templates *web.TemplateSet
	source    Source
	logger    *slog.Logger
}

// NewModule creates the preview module mounted at basePath.
func NewModule(basePath string, source Source, logger *slog.Logger) (*module.Module, error) {
	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		basePath,
		nil,
		[]web.ViewDef{presentationView, notFoundView},
	)
	if err != nil {
		return nil, err
	}

	h := &handler{
		templates: ts,
		source:    source,
		logger:    logger.With("module", "preview"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /latest", h.latest)
	mux.HandleFunc("GET /{id}", h.find)
	mux.HandleFunc("/", ts.ErrorHandler(layout, notFoundView, http.StatusNotFound))

	return module.New(basePath, mux), nil
}

func (h *handler) latest(w http.ResponseWriter, r *http.Request) {
	p, err := h.source.Latest(r.Context())
	h.render(w, p, err)
}

func (h *handler) find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.render(w, nil, presentations.ErrNotFound)
		return
	}

	p, err := h.source.Get(r.Context(), id)
	h.render(w, p, err)
}

func (h *handler) render(w http.ResponseWriter, p *presentations.Presentation, err error) {
	switch {
	case errors.Is(err, presentations.ErrNotFound):
		h.templates.Render(w, http.StatusNotFound, layout, notFoundView, nil)
		return
	case err != nil:
		h.logger.Error("load presentation", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	view := presentationView
	view.Title = p.CompanyName
	if err := h.templates.Render(w, http.StatusOK, layout, view, p); err != nil {
		h.logger.Error("render presentation", "id", p.ID, "error", err)
	}
}
