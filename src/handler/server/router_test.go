package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"complexity-analyzer/src/config"
	"complexity-analyzer/src/controller"
)

func newTestRouter(mutate ...func(*config.Config)) *gin.Engine {
	cfg := config.DefaultConfig()
	cfg.Server.Mode = gin.TestMode
	for _, m := range mutate {
		m(cfg)
	}
	return SetupRouter(controller.NewAnalysisController(cfg), cfg, zap.NewNop())
}

func do(t *testing.T, router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestAnalyze_NestedLoops(t *testing.T) {
	body := `{"code": "for (let i=0;i<n;i++) { for (let j=0;j<n;j++) { sum += i*j; } }", "language": "javascript", "fileName": "loops.js"}`
	w := do(t, newTestRouter(), http.MethodPost, "/api/v1/analyze", body)

	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Equal(t, "loops.js", out["file_name"])
	assert.Equal(t, "javascript", out["language"])

	bigO := out["big_o"].(map[string]any)
	assert.Equal(t, "O(n²)", bigO["time_complexity"])
	assert.Equal(t, "O(1)", bigO["space_complexity"])
	assert.EqualValues(t, 88, bigO["confidence"])
}

func TestAnalyze_LanguageFromFileName(t *testing.T) {
	body := `{"code": "def f():\n    pass\n", "fileName": "tool.py"}`
	w := do(t, newTestRouter(), http.MethodPost, "/api/v1/analyze", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "python", decode(t, w)["language"])
}

func TestAnalyze_DefaultFileName(t *testing.T) {
	w := do(t, newTestRouter(), http.MethodPost, "/api/v1/analyze", `{"code": "x = 1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Equal(t, "code.txt", out["file_name"])
	assert.Equal(t, "javascript", out["language"])
}

func TestAnalyze_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty code", `{"code": ""}`, "code is required"},
		{"whitespace code", `{"code": "  \n\t"}`, "code is required"},
		{"missing code", `{"language": "go"}`, "code is required"},
		{"malformed json", `{"code": `, "invalid request body"},
	}

	router := newTestRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodPost, "/api/v1/analyze", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decode(t, w)["error"], tt.want)
		})
	}
}

func TestAnalyze_BodyTooLarge(t *testing.T) {
	router := newTestRouter(func(c *config.Config) { c.Server.MaxBodyBytes = 64 })
	body := `{"code": "` + strings.Repeat("x", 200) + `"}`

	w := do(t, router, http.MethodPost, "/api/v1/analyze", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLanguages(t *testing.T) {
	w := do(t, newTestRouter(), http.MethodGet, "/api/v1/languages", "")

	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Equal(t, "javascript", out["default"])

	langs := out["languages"].([]any)
	require.Len(t, langs, 9)
	first := langs[0].(map[string]any)
	assert.Equal(t, "c", first["tag"])
	assert.Equal(t, []any{".c", ".h"}, first["extensions"])
}

func TestGrowth(t *testing.T) {
	w := do(t, newTestRouter(), http.MethodGet, "/api/v1/growth?max=10&step=3", "")

	require.Equal(t, http.StatusOK, w.Code)
	points := decode(t, w)["points"].([]any)
	require.Len(t, points, 4)

	last := points[3].(map[string]any)
	assert.EqualValues(t, 10, last["n"])
	values := last["values"].(map[string]any)
	assert.EqualValues(t, 100, values["O(n²)"])
	assert.EqualValues(t, 1024, values["O(2ⁿ)"])
}

func TestGrowth_Defaults(t *testing.T) {
	w := do(t, newTestRouter(), http.MethodGet, "/api/v1/growth", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["points"], 25)
}

func TestGrowth_InvalidParams(t *testing.T) {
	router := newTestRouter()
	for _, target := range []string{
		"/api/v1/growth?max=0",
		"/api/v1/growth?max=5000",
		"/api/v1/growth?max=abc",
		"/api/v1/growth?step=0",
		"/api/v1/growth?step=-2",
	} {
		w := do(t, router, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestHealth(t *testing.T) {
	w := do(t, newTestRouter(), http.MethodGet, "/api/v1/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Equal(t, "healthy", out["status"])
	assert.Equal(t, "1.0.0", out["version"])
}

func TestCustomRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CustomRecoveryMiddleware(zap.NewNop()))
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := do(t, router, http.MethodGet, "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decode(t, w)["error"])
}

func TestUnknownRoute(t *testing.T) {
	w := do(t, newTestRouter(), http.MethodGet, "/api/v1/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
