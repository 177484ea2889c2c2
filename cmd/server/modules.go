package main

import (
	"context"
	"net/http"
	"time"

	"github.com/JaimeStill/brand-lab/internal/api"
	"github.com/JaimeStill/brand-lab/internal/config"
	"github.com/JaimeStill/brand-lab/internal/infrastructure"
	"github.com/JaimeStill/brand-lab/pkg/middleware"
	"github.com/JaimeStill/brand-lab/pkg/module"
	"github.com/JaimeStill/brand-lab/web/preview"
	"github.com/JaimeStill/brand-lab/web/scalar"
)

type Modules struct {
	API     *module.Module
	Preview *module.Module
	Scalar  *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	runtime := api.NewRuntime(cfg, infra)

	domain, err := api.NewDomain(cfg, runtime)
	if err != nil {
		return nil, err
	}

	apiModule, err := api.NewModule(cfg, runtime, domain)
	if err != nil {
		return nil, err
	}

	previewModule, err := preview.NewModule("/preview", domain.Presentations, infra.Logger)
	if err != nil {
		return nil, err
	}
	previewModule.Use(middleware.TrimSlash())
	previewModule.Use(middleware.Logger(infra.Logger))

	scalarModule := scalar.NewModule("/scalar", cfg.API.BasePath+"/openapi.json")
	scalarModule.Use(middleware.AddSlash())

	return &Modules{
		API:     apiModule,
		Preview: previewModule,
		Scalar:  scalarModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.Preview)
	router.Mount(m.Scalar)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() || !databaseReady(r.Context(), infra) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	router.HandleNative("GET /metrics", infra.Metrics.Handler().ServeHTTP)

	return router
}

func databaseReady(ctx context.Context, infra *infrastructure.Infrastructure) bool {
	if infra.Database == nil {
		return true
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return infra.Database.Ping(ctx) == nil
}
