package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"sentencer/internal/service"
	"sentencer/web"

	"go.uber.org/zap"
)

// Handler serves the upload form, the results page and static assets
type Handler struct {
	sentenceService *service.SentenceService
	templates       *template.Template
	static          fs.FS
	maxUploadSize   int64
	logger          *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	sentenceService *service.SentenceService,
	maxUploadSize int64,
	logger *zap.Logger,
) (*Handler, error) {
	tmpl, err := template.ParseFS(web.Templates(), "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Handler{
		sentenceService: sentenceService,
		templates:       tmpl,
		static:          web.Static(),
		maxUploadSize:   maxUploadSize,
		logger:          logger,
	}, nil
}

// RegisterRoutes registers all HTTP routes on mux
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.handleForm)
	mux.HandleFunc("POST /upload", h.handleUpload)
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(h.static)))
}

// render executes a template into a buffer first so a failing template
// never leaves a half-written page
func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("Failed to render template", zap.String("template", name), zap.Error(err))
		internalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("Failed to write response", zap.Error(err))
	}
}

func internalError(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
