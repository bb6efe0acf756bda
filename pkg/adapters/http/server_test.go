package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/chempath"
	"github.com/aretw0/chempath/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, opts ...chempath.Option) http.Handler {
	t.Helper()
	return NewHandler(chempath.New(opts...))
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

type pathResponse struct {
	Found   bool `json:"found"`
	Cached  bool `json:"cached"`
	Visited int  `json:"visited"`
	Path    struct {
		Compounds []struct {
			Formula string `json:"formula"`
		} `json:"compounds"`
		Steps []struct {
			Rule        string `json:"rule"`
			Description string `json:"description"`
		} `json:"steps"`
	} `json:"path"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestFindPath_Post(t *testing.T) {
	h := newTestHandler(t)
	w := do(t, h, "POST", "/paths", `{"start":{"group":"alkyl bromide","carbons":2},"target":{"group":"alkane","carbons":2}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	resp := decode[pathResponse](t, w)
	assert.True(t, resp.Found)
	require.Len(t, resp.Path.Compounds, 3)
	assert.Equal(t, "C2H4", resp.Path.Compounds[1].Formula)
	require.Len(t, resp.Path.Steps, 2)
	assert.Equal(t, "C2H4 + H2 -[Ni / 180 - 200°C]-> C2H6", resp.Path.Steps[1].Description)
}

func TestFindPath_Get(t *testing.T) {
	h := newTestHandler(t)
	w := do(t, h, "GET", "/paths?start_group=alkane&start_carbons=1&target_group=carboxylic_acid&target_carbons=1", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[pathResponse](t, w)
	assert.True(t, resp.Found)
	require.Len(t, resp.Path.Steps, 1)
	assert.Equal(t, "alkane_to_carboxylic", resp.Path.Steps[0].Rule)
}

func TestFindPath_NoPathIsOK(t *testing.T) {
	h := newTestHandler(t)
	w := do(t, h, "POST", "/paths", `{"start":{"group":"carboxylate salt","carbons":1},"target":{"group":"alkane","carbons":1}}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[pathResponse](t, w)
	assert.False(t, resp.Found)
	assert.Empty(t, resp.Path.Compounds)
	assert.Equal(t, 1, resp.Visited)
}

func TestFindPath_InvalidInput(t *testing.T) {
	h := newTestHandler(t)
	tests := []struct {
		name   string
		method string
		target string
		body   string
		side   string
		field  string
		min    int
	}{
		{"below minimum", "POST", "/paths", `{"start":{"group":"alkene","carbons":1},"target":{"group":"alkane","carbons":2}}`, "start", "carbons", 2},
		{"fractional carbons", "POST", "/paths", `{"start":{"group":"alkane","carbons":2},"target":{"group":"alkane","carbons":2.5}}`, "target", "carbons", 0},
		{"missing carbons", "POST", "/paths", `{"start":{"group":"alkane"},"target":{"group":"alkane","carbons":2}}`, "start", "carbons", 0},
		{"unknown group", "POST", "/paths", `{"start":{"group":"ketone","carbons":3},"target":{"group":"alkane","carbons":2}}`, "start", "group", 0},
		{"query text carbons", "GET", "/paths?start_group=alkane&start_carbons=two&target_group=alkane&target_carbons=2", "", "start", "carbons", 0},
		{"query dibromo", "GET", "/paths?start_group=alkane&start_carbons=2&target_group=dibromo_alkane&target_carbons=1", "", "target", "carbons", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, tt.method, tt.target, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			resp := decode[errorResponse](t, w)
			assert.NotEmpty(t, resp.Error)
			assert.Equal(t, tt.side, resp.Side)
			assert.Equal(t, tt.field, resp.Field)
			assert.Equal(t, tt.min, resp.Min)
		})
	}

	w := do(t, h, "POST", "/paths", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, "POST", "/paths", `{"start":{"group":"alkane","carbons":-1e300},"target":{"group":"alkane","carbons":2}}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[errorResponse](t, w).Error, `(got "-1e+300")`)
}

func TestFindPath_SearchLimit(t *testing.T) {
	h := newTestHandler(t, chempath.WithMaxVisited(20))
	w := do(t, h, "GET", "/paths?start_group=alkane&start_carbons=1&target_group=alkane&target_carbons=777", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, decode[errorResponse](t, w).Error, "search limit exceeded")
}

func TestCatalogEndpoints(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, "GET", "/groups", "")
	require.Equal(t, http.StatusOK, w.Code)
	groups := decode[[]groupInfo](t, w)
	require.Len(t, groups, 9)
	assert.Equal(t, "Dibromo Alkane", groups[5].Name.String())
	assert.Equal(t, 2, groups[5].MinCarbons)

	w = do(t, h, "GET", "/rules", "")
	require.Equal(t, http.StatusOK, w.Code)
	var rules []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rules))
	require.Len(t, rules, 19)
	assert.Equal(t, "halogenation_alkane", rules[0]["name"])
	assert.Equal(t, "Alkyl Bromide", rules[0]["to"])
}

func TestInfoAndSpec(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(t, h, "GET", "/info", "")
	info := decode[map[string]string](t, w)
	assert.Equal(t, "1.0.0", info["api_version"])
	assert.Equal(t, chempath.Version, info["version"])
	assert.Len(t, info["rules_fingerprint"], 16)

	w = do(t, h, "GET", "/openapi.yaml", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi: 3.0.3")
}

func TestSpecDocumentsEveryRoute(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)
	for _, p := range []string{"/health", "/info", "/groups", "/rules", "/paths", "/paths/trace", "/graph", "/metrics"} {
		assert.NotNil(t, doc.Paths.Value(p), p)
	}
}

func TestExploreGraph(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, "GET", "/graph?group=alcohol&carbons=1", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var g struct {
		Nodes []map[string]any `json:"nodes"`
		Edges []map[string]any `json:"edges"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &g))
	assert.Len(t, g.Nodes, 4)
	assert.Len(t, g.Edges, 5)

	w = do(t, h, "GET", "/graph?group=alcohol&carbons=1&format=mermaid", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "graph LR"))

	w = do(t, h, "GET", "/graph?group=alkane&carbons=1&limit=3", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &g))
	assert.Len(t, g.Nodes, 3)

	assert.Equal(t, http.StatusBadRequest, do(t, h, "GET", "/graph?group=alkane&carbons=1&limit=0", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, "GET", "/graph?group=alkane&carbons=1&format=svg", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, "GET", "/graph?group=alkene&carbons=1", "").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	h := NewHandler(chempath.New(chempath.WithHooks(m.Hooks())), WithGatherer(reg))

	do(t, h, "GET", "/paths?start_group=alkene&start_carbons=2&target_group=alkane&target_carbons=2", "")
	w := do(t, h, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `chempath_searches_total{outcome="found"} 1`)
}

func TestTracePath(t *testing.T) {
	h := newTestHandler(t)
	w := do(t, h, "GET", "/paths/trace?start_group=alcohol&start_carbons=1&target_group=carboxylate_salt&target_carbons=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, "event: ping")
	assert.Equal(t, 3, strings.Count(body, "event: expand"))
	assert.Equal(t, 3, strings.Count(body, "event: reaction"))
	assert.Contains(t, body, "event: result")
	assert.Contains(t, body, `"found":true`)

	w = do(t, h, "GET", "/paths/trace?start_group=alkene&start_carbons=1&target_group=alkane&target_carbons=1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCORS(t *testing.T) {
	h := newTestHandler(t)
	w := do(t, h, "OPTIONS", "/paths", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
