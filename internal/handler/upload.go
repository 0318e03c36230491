package handler

import (
	"errors"
	"net/http"

	"sentencer/internal/domain"
	"sentencer/internal/middleware"
	"sentencer/internal/wordlist"

	"go.uber.org/zap"
)

// resultsPage is the data passed to results.html
type resultsPage struct {
	FileName string
	Rows     []domain.ResultRow
}

// handleForm renders the upload form
func (h *Handler) handleForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "form.html", nil)
}

// handleUpload parses the uploaded word list, looks up a sentence for every
// word and renders the results table
func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(zap.String("request_id", middleware.RequestIDFromContext(r.Context())))

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			logger.Warn("Upload too large", zap.Int64("limit", maxErr.Limit))
			http.Error(w, "The uploaded file is too big", http.StatusBadRequest)
			return
		}
		logger.Warn("Failed to read uploaded file", zap.Error(err))
		http.Error(w, "Invalid file upload", http.StatusBadRequest)
		return
	}
	defer file.Close()

	words, err := wordlist.Parse(header.Filename, file)
	if err != nil {
		logger.Error("Failed to parse word list",
			zap.String("filename", header.Filename),
			zap.Error(err),
		)
		internalError(w)
		return
	}

	logger.Info("Word list uploaded",
		zap.String("filename", header.Filename),
		zap.Int("words", len(words)),
	)

	rows, err := h.sentenceService.Lookup(r.Context(), words)
	if err != nil {
		logger.Error("Failed to look up sentences", zap.Error(err))
		internalError(w)
		return
	}

	h.render(w, "results.html", resultsPage{
		FileName: header.Filename,
		Rows:     rows,
	})
}
