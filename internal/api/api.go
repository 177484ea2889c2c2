// Package api assembles the JSON API module: domain systems, their routes,
// and the generated OpenAPI document.
package api

import (
	"net/http"

	"github.com/JaimeStill/brand-lab/internal/config"
	"github.com/JaimeStill/brand-lab/pkg/middleware"
	"github.com/JaimeStill/brand-lab/pkg/module"
	"github.com/JaimeStill/brand-lab/pkg/openapi"
)

// NewModule builds the API module mounted at cfg.API.BasePath.
func NewModule(cfg *config.Config, runtime *Runtime, domain *Domain) (*module.Module, error) {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.Domain)

	mux := http.NewServeMux()
	registerRoutes(mux, spec, runtime, domain, cfg)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.TrimSlash())
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(runtime.Metrics.Middleware())
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
