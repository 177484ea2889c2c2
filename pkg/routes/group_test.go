package routes_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/brand-lab/pkg/openapi"
	"github.com/JaimeStill/brand-lab/pkg/routes"
)

func noop(w http.ResponseWriter, r *http.Request) {}

func TestGroup_AddToSpec(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")

	group := routes.Group{
		Prefix: "/sessions",
		Tags:   []string{"Sessions"},
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: noop, OpenAPI: &openapi.Operation{Summary: "Create"}},
			{Method: "PATCH", Pattern: "/{id}/answers", Handler: noop, OpenAPI: &openapi.Operation{Summary: "Answer", Tags: []string{"Answers"}}},
			{Method: "GET", Pattern: "/{id}", Handler: noop},
		},
		Schemas: map[string]*openapi.Schema{
			"Session": {Type: "object"},
		},
	}

	group.AddToSpec("/api", spec)

	if spec.Paths["/api/sessions"] == nil || spec.Paths["/api/sessions"].Post == nil {
		t.Fatal("POST /api/sessions not added")
	}
	if got := spec.Paths["/api/sessions"].Post.Tags; len(got) != 1 || got[0] != "Sessions" {
		t.Errorf("inherited Tags = %v, want [Sessions]", got)
	}

	answers := spec.Paths["/api/sessions/{id}/answers"]
	if answers == nil || answers.Patch == nil {
		t.Fatal("PATCH answers not added")
	}
	if answers.Patch.Tags[0] != "Answers" {
		t.Errorf("explicit Tags = %v, want [Answers]", answers.Patch.Tags)
	}

	if spec.Paths["/api/sessions/{id}"] != nil {
		t.Error("route without OpenAPI should not be added")
	}
	if spec.Components.Schemas["Session"] == nil {
		t.Error("group schema not added")
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	spec := openapi.NewSpec("Test API", "1.0.0")

	group := routes.Group{
		Prefix: "/presentations",
		Routes: []routes.Route{
			{
				Method:  "GET",
				Pattern: "/latest",
				Handler: func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("latest")) },
				OpenAPI: &openapi.Operation{Summary: "Latest"},
			},
		},
		Children: []routes.Group{
			{
				Prefix: "/{id}/preview",
				Routes: []routes.Route{
					{
						Method:  "GET",
						Pattern: "",
						Handler: func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(r.PathValue("id"))) },
						OpenAPI: &openapi.Operation{Summary: "Preview"},
					},
				},
			},
		},
	}

	routes.Register(mux, "/api", spec, group)

	tests := []struct {
		path string
		want string
	}{
		{"/presentations/latest", "latest"},
		{"/presentations/abc/preview", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			b, _ := io.ReadAll(w.Result().Body)
			if string(b) != tt.want {
				t.Errorf("body = %q, want %q", string(b), tt.want)
			}
		})
	}

	if spec.Paths["/api/presentations/{id}/preview"] == nil {
		t.Error("child spec path not added")
	}
}
