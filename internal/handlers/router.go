package handlers

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
)

// NewRouter assembles the REST API, the optional Slack endpoint and the
// optional static front end. slackHandler may be nil and staticDir empty.
func NewRouter(api *APIHandler, slackHandler *SlackHandler, limiter *RateLimiter, staticDir string) http.Handler {
	mux := http.NewServeMux()

	api.Register(mux, limiter.Limit)
	if slackHandler != nil {
		slackHandler.Register(mux)
	}
	if staticDir != "" {
		mux.Handle("GET /", spaHandler(staticDir))
	}

	return Logging(mux)
}

// spaHandler serves files from dir and falls back to index.html for client routes.
func spaHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir() && r.URL.Path != "/") {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}
		files.ServeHTTP(w, r)
	})
}
