package sentenceapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"net/http"

	"sentencer/internal/config"
	"sentencer/internal/domain"

	"go.uber.org/zap"
)

// Rand is the source of randomness for seeds and sentence choice.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// globalRand uses the goroutine-safe top-level math/rand/v2 functions.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// Client fetches example sentences from the sentence search API.
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
	rnd        Rand
	logger     *zap.Logger
}

// NewClient creates a Client from the API configuration.
// A zero cfg.Timeout means outbound calls never time out.
func NewClient(cfg config.APIConfig, logger *zap.Logger) *Client {
	return NewClientWithRand(cfg, globalRand{}, logger)
}

// NewClientWithRand creates a Client with a custom randomness source (for testing).
func NewClientWithRand(cfg config.APIConfig, rnd Rand, logger *zap.Logger) *Client {
	return &Client{
		url:        cfg.URL,
		apiKey:     cfg.Key,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		rnd:        rnd,
		logger:     logger.With(zap.String("component", "sentenceapi")),
	}
}

// FetchSentence posts a search for word and picks one sentence at random
// from the response.
func (c *Client) FetchSentence(ctx context.Context, word string) (domain.SentenceResult, error) {
	payload := domain.NewSentenceRequest(word, roundSeed(c.rnd.Float64()))

	body, err := json.Marshal(payload)
	if err != nil {
		return domain.SentenceResult{}, fmt.Errorf("sentenceapi: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return domain.SentenceResult{}, fmt.Errorf("sentenceapi: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Sentence request failed", zap.String("word", word), zap.Error(err))
		return domain.SentenceResult{}, fmt.Errorf("sentenceapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.SentenceResult{}, fmt.Errorf("sentenceapi: read body: %w", err)
	}

	c.logger.Debug("Sentence API response",
		zap.String("word", word),
		zap.Float64("random_seed", payload.RandomSeed),
		zap.Int("status", resp.StatusCode),
		zap.ByteString("body", raw),
	)

	if resp.StatusCode != http.StatusOK {
		return domain.SentenceResult{Err: &domain.StatusError{Code: resp.StatusCode}}, nil
	}

	sentence, err := c.pickSentence(raw)
	if err != nil {
		if !errors.Is(err, domain.ErrNoSentences) {
			c.logger.Warn("Failed to process sentence response",
				zap.String("word", word),
				zap.Error(err),
			)
		}
		return domain.SentenceResult{Err: err}, nil
	}

	return domain.SentenceResult{Sentence: sentence}, nil
}

// pickSentence decodes the response body and returns the highlighted text
// of one uniformly chosen sentence.
func (c *Client) pickSentence(raw []byte) (string, error) {
	var resp apiResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", &domain.ParseError{Err: fmt.Errorf("decode response: %w", err)}
	}

	if len(resp.Sentences) == 0 {
		return "", domain.ErrNoSentences
	}

	var selected apiSentence
	if err := json.Unmarshal(resp.Sentences[c.rnd.IntN(len(resp.Sentences))], &selected); err != nil {
		return "", &domain.ParseError{Err: fmt.Errorf("decode sentence: %w", err)}
	}
	if selected.SegmentInfo == nil {
		return "", &domain.ParseError{Err: errors.New("missing field segment_info")}
	}
	if selected.SegmentInfo.ContentJPHighlight == nil {
		return "", &domain.ParseError{Err: errors.New("missing field segment_info.content_jp_highlight")}
	}

	return *selected.SegmentInfo.ContentJPHighlight, nil
}

// roundSeed rounds to 4 decimal places.
func roundSeed(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
