package web_test

import (
	"embed"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/brand-lab/pkg/web"
)

//go:embed testdata/layouts/*
var layoutFS embed.FS

//go:embed testdata/views/*
var viewFS embed.FS

var (
	page     = web.ViewDef{Route: "/{id}", Template: "page.html", Title: "Page"}
	notFound = web.ViewDef{Template: "404.html", Title: "Not Found"}
	funcs    = template.FuncMap{"shout": func(v any) string { return strings.ToUpper(v.(string)) }}
)

func newSet(t *testing.T) *web.TemplateSet {
	t.Helper()
	ts, err := web.NewTemplateSet(layoutFS, viewFS, "testdata/layouts/*.html", "testdata/views", "/preview", funcs, []web.ViewDef{page, notFound})
	if err != nil {
		t.Fatalf("NewTemplateSet() error = %v", err)
	}
	return ts
}

func TestNewTemplateSet_InvalidGlob(t *testing.T) {
	_, err := web.NewTemplateSet(layoutFS, viewFS, "missing/*.html", "testdata/views", "/preview", funcs, []web.ViewDef{page})
	if err == nil {
		t.Error("NewTemplateSet() error = nil, want error")
	}
}

func TestTemplateSet_Render(t *testing.T) {
	ts := newSet(t)
	w := httptest.NewRecorder()

	if err := ts.Render(w, http.StatusOK, "base.html", page, "acme"); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	body := w.Body.String()
	for _, want := range []string{"<title>Page</title>", `href="/preview/x"`, "ACME"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q: %s", want, body)
		}
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestTemplateSet_RenderUnknown(t *testing.T) {
	ts := newSet(t)
	err := ts.Render(httptest.NewRecorder(), http.StatusOK, "base.html", web.ViewDef{Template: "nope.html"}, nil)
	if err == nil {
		t.Error("Render() error = nil, want error")
	}
}

func TestTemplateSet_ErrorHandler(t *testing.T) {
	ts := newSet(t)
	w := httptest.NewRecorder()

	ts.ErrorHandler("base.html", notFound, http.StatusNotFound)(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "missing") {
		t.Errorf("body = %q", w.Body.String())
	}
}
