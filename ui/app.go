package ui

import (
	"html/template"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"digitlens/internal/render"
)

// App serves the published analysis artifacts for local review
type App struct {
	router    *chi.Mux
	outputDir string
}

// Config holds preview server configuration
type Config struct {
	Port      string
	OutputDir string
}

// NewApp creates the preview application over an output directory
func NewApp(config Config) *App {
	app := &App{
		router:    chi.NewRouter(),
		outputDir: config.OutputDir,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Get("/report", a.handleReport)

	fileServer := http.FileServer(http.Dir(a.outputDir))
	a.router.Handle("/artifacts/*", http.StripPrefix("/artifacts/", fileServer))
}

// Router exposes the HTTP handler, mainly for tests
func (a *App) Router() http.Handler {
	return a.router
}

// Start serves until the listener fails
func (a *App) Start(port string) error {
	addr := ":" + port
	log.Printf("[UI] Preview server listening on http://localhost%s", addr)
	return http.ListenAndServe(addr, a.router)
}

type artifactEntry struct {
	Name    string
	Size    int64
	ModTime string
}

type indexData struct {
	Artifacts []artifactEntry
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Benford analysis artifacts</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; color: #222; }
table { border-collapse: collapse; width: 100%; }
th, td { border-bottom: 1px solid #ddd; padding: 6px 10px; text-align: left; }
</style>
</head>
<body>
<h1>Benford analysis artifacts</h1>
{{if .Artifacts}}
<p><a href="/report">Open the latest report</a></p>
<table>
<tr><th>Artifact</th><th>Size</th><th>Modified</th></tr>
{{range .Artifacts}}
<tr><td><a href="/artifacts/{{.Name}}">{{.Name}}</a></td><td>{{.Size}}</td><td>{{.ModTime}}</td></tr>
{{end}}
</table>
{{else}}
<p>No artifacts published yet. Run the analyzer first.</p>
{{end}}
</body>
</html>
`))

// handleIndex lists the published artifacts
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{}

	entries, err := os.ReadDir(a.outputDir)
	if err != nil && !os.IsNotExist(err) {
		http.Error(w, "output directory not readable", http.StatusInternalServerError)
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		data.Artifacts = append(data.Artifacts, artifactEntry{
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime().Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		log.Printf("[UI] index render failed: %v", err)
	}
}

// handleReport sends the browser to the HTML rendition of the report.
// It lives under /artifacts/ so the chart references resolve.
func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/artifacts/"+render.HTMLReportFile, http.StatusFound)
}
