// Package server exposes scene rendering over HTTP for quick previews.
//
// Scenes are posted as TOML bodies and held in an in-memory registry keyed by
// a generated id; rendered artifacts are produced on demand per request. The
// registry is deliberately ephemeral - the server is a preview surface, not a
// scene store.
package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sketchkit/sketch/pkg/backend/raster"
	"github.com/sketchkit/sketch/pkg/cache"
	"github.com/sketchkit/sketch/pkg/errors"
	"github.com/sketchkit/sketch/pkg/scenefile"
	"github.com/sketchkit/sketch/pkg/sketch"
)

// renderTTL bounds how long converted artifacts stay in the render cache.
const renderTTL = 24 * time.Hour

// maxSceneBytes bounds the accepted scene body size.
const maxSceneBytes = 1 << 20

// Server holds the scene registry and render dependencies.
type Server struct {
	log   *log.Logger
	cache cache.Cache

	mu     sync.RWMutex
	scenes map[string]*sketch.Document
}

// NewHandler creates the HTTP handler. The cache is consulted for PNG
// conversions; pass a NullCache to disable caching.
func NewHandler(logger *log.Logger, c cache.Cache) http.Handler {
	s := &Server{
		log:    logger,
		cache:  c,
		scenes: map[string]*sketch.Document{},
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Post("/scenes", s.handleCreate)
	r.Get("/scenes/{id}.svg", s.handleRender(raster.FormatSVG))
	r.Get("/scenes/{id}.png", s.handleRender(raster.FormatPNG))
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleCreate parses a TOML scene body and registers it under a fresh id.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}

	doc, err := scenefile.Parse(body)
	if err != nil {
		s.log.Debug("rejected scene", "err", err)
		http.Error(w, errors.UserMessage(err), http.StatusBadRequest)
		return
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.scenes[id] = doc
	s.mu.Unlock()

	s.log.Info("registered scene", "id", id, "items", doc.Len())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":    id,
		"items": doc.Len(),
	})
}

// handleRender renders a registered scene in the given format.
func (s *Server) handleRender(format raster.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		s.mu.RLock()
		doc, ok := s.scenes[id]
		s.mu.RUnlock()
		if !ok {
			http.Error(w, "unknown scene", http.StatusNotFound)
			return
		}

		b := raster.New(
			raster.WithFormat(format),
			raster.WithCache(s.cache, renderTTL),
			raster.WithContext(r.Context()),
		)
		if err := sketch.Render(doc, b); err != nil {
			s.log.Error("render failed", "id", id, "format", format, "err", err)
			status := http.StatusInternalServerError
			if errors.Is(err, errors.ErrCodeMissingTool) {
				status = http.StatusNotImplemented
			}
			http.Error(w, errors.UserMessage(err), status)
			return
		}

		w.Header().Set("Content-Type", contentType(format))
		_, _ = w.Write(b.Bytes())
	}
}

func contentType(format raster.Format) string {
	switch format {
	case raster.FormatPNG:
		return "image/png"
	case raster.FormatPDF:
		return "application/pdf"
	default:
		return "image/svg+xml"
	}
}

func readBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	data, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxSceneBytes))
	if err != nil {
		var mbe *http.MaxBytesError
		if stderrors.As(err, &mbe) {
			return nil, errors.New(errors.ErrCodeInvalidScene,
				"scene body exceeds %d bytes", maxSceneBytes)
		}
		return nil, err
	}
	return data, nil
}
