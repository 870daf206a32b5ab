package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appControllers "github.com/sis-eval/backend/internal/app/controllers"
	"github.com/sis-eval/backend/internal/config"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func testConfig(t *testing.T, staticDir string) *config.Config {
	t.Helper()

	t.Setenv("STATIC_DIR", staticDir)
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	return cfg
}

func testDeps() *Dependencies {
	return &Dependencies{
		ProfessorController: appControllers.NewProfessorController(nil),
		HealthController:    appControllers.NewHealthController(okPinger{}, zerolog.Nop()),
		Logger:              zerolog.Nop(),
	}
}

func serve(router http.Handler, method, path, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSetupRouterWithoutStaticDir(t *testing.T) {
	router, err := SetupRouter(testConfig(t, ""), testDeps(), zerolog.Nop())
	require.NoError(t, err)

	w := serve(router, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(router, http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)

	w = serve(router, http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/prof/evaluar")
}

func TestSetupRouterCORS(t *testing.T) {
	router, err := SetupRouter(testConfig(t, ""), testDeps(), zerolog.Nop())
	require.NoError(t, err)

	w := serve(router, http.MethodGet, "/api/health", "http://localhost:5173")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(router, http.MethodGet, "/api/health", "https://evil.example")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSetupRouterServesFrontend(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	router, err := SetupRouter(testConfig(t, dir), testDeps(), zerolog.Nop())
	require.NoError(t, err)

	w := serve(router, http.MethodGet, "/app.js", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log(1)", w.Body.String())

	w = serve(router, http.MethodGet, "/profesores/123", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "app")

	w = serve(router, http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}
