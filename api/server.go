/*
server.go - Preview server for generated report artifacts

PURPOSE:
  Optional, opt-in via the -serve flag: after a one-shot run finishes, serve
  the chart HTML artifacts so they can be opened in a browser. The server
  holds no pipeline state; it only lists and serves files the run already
  wrote.

ROUTER: chi
  Same middleware stack as any small chi service:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request
  4. CORS:       Allows a local frontend to fetch the artifact list

ROUTES:
  /healthz          liveness
  /api/artifacts    JSON list of generated artifact file names
  /*                static files from the output directory
*/
package api

import (
	"encoding/json"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter serves the artifact directory and the artifact listing.
func NewRouter(artifactDir string, artifacts []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	names := make([]string, len(artifacts))
	for i, a := range artifacts {
		names[i] = filepath.Base(a)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/artifacts", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"artifacts": names,
		})
	})

	r.Handle("/*", http.FileServer(http.Dir(artifactDir)))

	return r
}
