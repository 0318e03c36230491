package service

import (
	"context"
	"fmt"

	"sentencer/internal/domain"
	"sentencer/internal/provider"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SentenceService looks up example sentences for uploaded word lists
type SentenceService struct {
	provider    provider.SentenceProvider
	concurrency int
	logger      *zap.Logger
}

// NewSentenceService creates a new sentence service.
// concurrency <= 0 means one in-flight fetch per word.
func NewSentenceService(p provider.SentenceProvider, concurrency int, logger *zap.Logger) *SentenceService {
	return &SentenceService{
		provider:    p,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Lookup fetches one sentence per word concurrently and returns the rows in
// input order. Any fetch error fails the whole batch.
func (s *SentenceService) Lookup(ctx context.Context, words []string) ([]domain.ResultRow, error) {
	rows := make([]domain.ResultRow, len(words))
	if len(words) == 0 {
		return rows, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}

	for i, word := range words {
		g.Go(func() error {
			result, err := s.provider.FetchSentence(gctx, word)
			if err != nil {
				return fmt.Errorf("fetch sentence for %q: %w", word, err)
			}
			rows[i] = domain.ResultRow{Word: word, Result: result}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("Sentence lookup failed",
			zap.Int("words", len(words)),
			zap.Error(err),
		)
		return nil, err
	}

	found := 0
	for _, row := range rows {
		if row.Result.Found() {
			found++
		}
	}
	s.logger.Info("Sentence lookup completed",
		zap.Int("words", len(words)),
		zap.Int("found", found),
	)

	return rows, nil
}
