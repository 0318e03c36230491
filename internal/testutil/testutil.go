package testutil

import (
	"sentencer/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// Found creates a successful lookup result
func Found(sentence string) domain.SentenceResult {
	return domain.SentenceResult{Sentence: sentence}
}

// Status creates a lookup result for a non-200 API response
func Status(code int) domain.SentenceResult {
	return domain.SentenceResult{Err: &domain.StatusError{Code: code}}
}

// NoSentences creates a lookup result for an empty sentence list
func NoSentences() domain.SentenceResult {
	return domain.SentenceResult{Err: domain.ErrNoSentences}
}
