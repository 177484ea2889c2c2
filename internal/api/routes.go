package api

import (
	"net/http"

	"github.com/JaimeStill/brand-lab/internal/analysis"
	"github.com/JaimeStill/brand-lab/internal/config"
	"github.com/JaimeStill/brand-lab/internal/documents"
	"github.com/JaimeStill/brand-lab/internal/presentations"
	"github.com/JaimeStill/brand-lab/internal/sessions"
	"github.com/JaimeStill/brand-lab/pkg/openapi"
	"github.com/JaimeStill/brand-lab/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
	cfg *config.Config,
) {
	documentsHandler := documents.NewHandler(domain.Documents, runtime.Logger)
	analysisHandler := analysis.NewHandler(domain.Analysis, runtime.Logger)
	sessionsHandler := sessions.NewHandler(domain.Sessions, runtime.Logger)
	presentationsHandler := presentations.NewHandler(domain.Presentations, runtime.Logger, runtime.Pagination)

	routes.Register(
		mux,
		cfg.API.BasePath,
		spec,
		documentsHandler.Routes(),
		analysisHandler.Routes(),
		sessionsHandler.Routes(),
		presentationsHandler.Routes(),
	)
}
