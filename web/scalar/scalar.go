// Package scalar serves the interactive API reference for the generated
// OpenAPI document.
package scalar

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/JaimeStill/brand-lab/pkg/module"
)

//go:embed index.html
var indexHTML string

var index = template.Must(template.New("index").Parse(indexHTML))

// Page renders the reference page pointed at specURL.
func Page(specURL string) []byte {
	var buf bytes.Buffer
	index.Execute(&buf, struct{ SpecURL string }{specURL})
	return buf.Bytes()
}

// NewModule creates the reference module mounted at basePath.
func NewModule(basePath, specURL string) *module.Module {
	page := Page(specURL)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(page)
	})

	return module.New(basePath, mux)
}
