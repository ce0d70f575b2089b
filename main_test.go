package main

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwaggerDoc(t *testing.T) {
	raw, err := os.ReadFile("docs/swagger.json")
	require.NoError(t, err)

	var doc struct {
		Swagger     string                                `json:"swagger"`
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Equal(t, "2.0", doc.Swagger)

	t.Run(`документированы все маршруты`, func(t *testing.T) {
		routes := map[string][]string{
			"/api/health":                         {"get"},
			"/api/jobs":                           {"get", "post"},
			"/api/jobs/reorder":                   {"patch"},
			"/api/jobs/tags":                      {"get"},
			"/api/jobs/{id}":                      {"get", "put", "patch", "delete"},
			"/api/jobs/{jobId}/candidates":        {"get"},
			"/api/jobs/{jobId}/candidates/export": {"get"},
			"/api/candidates/{id}":                {"get", "put"},
			"/api/candidates/{id}/notes":          {"post"},
			"/api/candidates/{id}/notes/{noteId}": {"delete"},
			"/api/jobs/{jobId}/assessments":       {"get", "post"},
			"/api/assessments/{id}":               {"get", "put", "delete"},
			"/api/assessments/responses":          {"post"},
		}
		require.Len(t, doc.Paths, len(routes))
		for path, methods := range routes {
			require.Contains(t, doc.Paths, path)
			for _, method := range methods {
				require.Contains(t, doc.Paths[path], method, "%s %s", method, path)
			}
		}
	})

	t.Run(`все $ref разрешаются в definitions`, func(t *testing.T) {
		var generic interface{}
		require.NoError(t, json.Unmarshal(raw, &generic))
		var walk func(node interface{})
		walk = func(node interface{}) {
			switch v := node.(type) {
			case map[string]interface{}:
				if ref, ok := v["$ref"].(string); ok {
					require.Contains(t, ref, "#/definitions/")
					name := ref[len("#/definitions/"):]
					require.Contains(t, doc.Definitions, name)
				}
				for _, child := range v {
					walk(child)
				}
			case []interface{}:
				for _, child := range v {
					walk(child)
				}
			}
		}
		walk(generic)
	})
}
