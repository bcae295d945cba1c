package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestSwaggerDocument(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("Failed to read registered doc: %v", err)
	}

	var parsed struct {
		Swagger     string                     `json:"swagger"`
		BasePath    string                     `json:"basePath"`
		Paths       map[string]map[string]any  `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("Swagger document is not valid JSON: %v", err)
	}

	if parsed.Swagger != "2.0" || parsed.BasePath != "/api" {
		t.Fatalf("Unexpected header: swagger %q, basePath %q", parsed.Swagger, parsed.BasePath)
	}

	routes := map[string][]string{
		"/health":             {"get"},
		"/media":              {"get", "post"},
		"/media/{id}":         {"get", "patch", "delete"},
		"/generate-media/{n}": {"get"},
		"/events":             {"get"},
		"/rate-limit":         {"get"},
	}
	for path, methods := range routes {
		ops, ok := parsed.Paths[path]
		if !ok {
			t.Errorf("Missing path %s", path)
			continue
		}
		for _, method := range methods {
			if _, ok := ops[method]; !ok {
				t.Errorf("Missing %s %s", method, path)
			}
		}
	}

	for _, name := range []string{"media.Media", "media.CreateMediaRequest", "media.UpdateMediaRequest", "response.GenericResponse", "response.MediaListResponse", "response.SingleMediaResponse"} {
		if _, ok := parsed.Definitions[name]; !ok {
			t.Errorf("Missing definition %s", name)
		}
	}
}
