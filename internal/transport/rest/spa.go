package rest

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/budget-tracker/web"
	"github.com/go-chi/chi"
)

// RegisterSPARoutes serves the embedded frontend. The root path yields the
// contents of index.html directly (a forward, not a redirect) so deep
// links keep working behind the SPA router.
func RegisterSPARoutes(router *chi.Mux, logger *slog.Logger) {
	staticRoot, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		logger.Warn("failed to mount embedded static assets", "error", err)
		return
	}

	fileServer := http.FileServer(http.FS(staticRoot))
	router.Handle("/static/*", http.StripPrefix("/static/", fileServer))
	router.Get("/index.html", serveIndex(staticRoot, logger))
	router.Get("/", serveIndex(staticRoot, logger))
}

func serveIndex(staticRoot fs.FS, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := fs.ReadFile(staticRoot, "index.html")
		if err != nil {
			logger.Error("failed to read embedded index.html", "error", err)
			http.Error(w, "frontend not available", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(index)
	}
}
