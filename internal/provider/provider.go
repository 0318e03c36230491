package provider

import (
	"context"

	"sentencer/internal/domain"
)

// SentenceProvider looks up one example sentence for a word.
//
// API-level failures (non-200 status, empty or malformed payload) are
// reported inside the returned SentenceResult. A non-nil error means the
// call itself could not be completed and the whole batch must fail.
type SentenceProvider interface {
	FetchSentence(ctx context.Context, word string) (domain.SentenceResult, error)
}
