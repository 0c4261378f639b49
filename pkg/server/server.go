// Package server exposes stored graph documents over HTTP. It persists
// documents through a store backend, re-renders them on demand through
// the shared pipeline, and caches the rendered HTML by content hash.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vizlab/netvis/pkg/graph"
	"github.com/vizlab/netvis/pkg/observability"
	"github.com/vizlab/netvis/pkg/pipeline"
	"github.com/vizlab/netvis/pkg/store"
)

// Server serves stored graph documents as interactive visualizations.
type Server struct {
	store  store.Store
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New assembles a server around a store and a pipeline runner.
func New(st store.Store, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		store:  st,
		runner: runner,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/graphs", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Get("/", s.handleList)
		r.Get("/{id}", s.handleView)
		r.Get("/{id}/document", s.handleDocument)
		r.Delete("/{id}", s.handleDelete)
	})
	s.router = r
	return s
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// logRequests logs every request and feeds the HTTP hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), duration)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", duration)
	})
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// createRequest is the POST /graphs payload.
type createRequest struct {
	Name    string         `json:"name"`
	Graph   graph.Document `json:"graph"`
	Options string         `json:"options,omitempty"`
	Display store.Display  `json:"display"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("name is required"))
		return
	}
	// Reject documents the registry would refuse to rebuild.
	if _, err := graph.Build(req.Graph); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	doc := store.NewDocument(req.Name, req.Graph, req.Options, req.Display)
	if err := s.store.Save(r.Context(), doc); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.logger.Info("stored document", "id", doc.ID, "name", doc.Name, "nodes", len(doc.Graph.Nodes))
	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// handleView renders a stored document as its interactive HTML page.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.lookup(w, r)
	if !ok {
		return
	}

	html, err := s.renderDocument(r.Context(), doc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(html)
}

// handleDocument returns the stored document as JSON.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (store.Document, bool) {
	id := chi.URLParam(r, "id")
	doc, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, err)
		} else {
			writeError(w, http.StatusInternalServerError, err)
		}
		return store.Document{}, false
	}
	return doc, true
}

// renderDocument rebuilds a stored document through the pipeline, with
// the rendered HTML cached by content hash.
func (s *Server) renderDocument(ctx context.Context, doc store.Document) ([]byte, error) {
	input, err := json.Marshal(doc.Graph)
	if err != nil {
		return nil, fmt.Errorf("serialize graph: %w", err)
	}

	result, err := s.runner.Execute(ctx, pipeline.Options{
		Input:       input,
		InputFormat: pipeline.InputJSON,
		Heading:     doc.Display.Heading,
		Height:      doc.Display.Height,
		Width:       doc.Display.Width,
		BGColor:     doc.Display.BGColor,
		FontColor:   doc.Display.FontColor,
		RawOptions:  doc.Options,
		Formats:     []string{pipeline.FormatHTML},
	})
	if err != nil {
		return nil, err
	}
	return result.Artifacts[pipeline.FormatHTML], nil
}

// =============================================================================
// Response Helpers
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
