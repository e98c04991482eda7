package ui

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digitlens/internal/render"
)

func publishFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, render.ReportFile), []byte("# Benford Analysis Report"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, render.HTMLReportFile), []byte("<!DOCTYPE html><html></html>"), 0o644))
	return dir
}

func TestApp_IndexListsArtifacts(t *testing.T) {
	app := NewApp(Config{OutputDir: publishFixtures(t)})

	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), render.ReportFile)
	assert.Contains(t, rec.Body.String(), render.HTMLReportFile)
	assert.Contains(t, rec.Body.String(), "/artifacts/"+render.ReportFile)
}

func TestApp_IndexWithoutArtifacts(t *testing.T) {
	app := NewApp(Config{OutputDir: filepath.Join(t.TempDir(), "missing")})

	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No artifacts published yet")
}

func TestApp_ServesArtifactFiles(t *testing.T) {
	app := NewApp(Config{OutputDir: publishFixtures(t)})

	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/artifacts/"+render.ReportFile, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# Benford Analysis Report", rec.Body.String())
}

func TestApp_ReportRedirectsToHTML(t *testing.T) {
	app := NewApp(Config{OutputDir: publishFixtures(t)})

	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/report", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/artifacts/"+render.HTMLReportFile, rec.Header().Get("Location"))
}
