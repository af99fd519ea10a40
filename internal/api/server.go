package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jorge-barreto/cex/internal/config"
	"github.com/jorge-barreto/cex/internal/loader"
)

// Server answers block queries over a single loaded document.
type Server struct {
	router chi.Router
	doc    *loader.Document
	log    *slog.Logger
	cfg    *config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(doc *loader.Document, log *slog.Logger, cfg *config.Config) *Server {
	s := &Server{
		doc: doc,
		log: log,
		cfg: cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/document", s.handleDocument)
		r.Get("/labels", s.handleLabels)
		r.Get("/blocks/{label}", s.handleBlocks)
		r.Get("/tables/{label}", s.handleTable)
		r.Get("/values/{label}", s.handleValues)
		r.Get("/models", s.handleModels)
		r.Get("/models/{model}/collections", s.handleCollections)
		r.Get("/relations", s.handleRelations)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
