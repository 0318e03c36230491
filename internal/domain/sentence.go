package domain

import (
	"errors"
	"fmt"
)

const (
	// DefaultSentenceLimit is the number of candidates requested per word
	DefaultSentenceLimit = 3
	// ContentSortDesc orders candidate sentences by content, descending
	ContentSortDesc = "DESC"
)

// ErrNoSentences is reported when the API answers 200 with an empty list
var ErrNoSentences = errors.New("0 sentences found")

// SentenceRequest is the JSON body posted to the sentence API
type SentenceRequest struct {
	Query       string  `json:"query"`
	Limit       int     `json:"limit"`
	RandomSeed  float64 `json:"random_seed"`
	ContentSort string  `json:"content_sort"`
}

// NewSentenceRequest builds the payload for one word.
// seed must already be in [0,1).
func NewSentenceRequest(word string, seed float64) SentenceRequest {
	return SentenceRequest{
		Query:       word,
		Limit:       DefaultSentenceLimit,
		RandomSeed:  seed,
		ContentSort: ContentSortDesc,
	}
}

// StatusError is reported when the API answers with a non-200 status
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// ParseError is reported when a 200 response cannot be decoded
// or lacks the expected fields
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SentenceResult is the outcome of a single sentence lookup.
// Exactly one of Sentence or Err is meaningful.
type SentenceResult struct {
	Sentence string
	Err      error
}

// Found reports whether the lookup produced a sentence
func (r SentenceResult) Found() bool {
	return r.Err == nil
}

// Text renders the result for the results table. Failures become
// human-readable placeholders instead of sentences.
func (r SentenceResult) Text() string {
	if r.Err == nil {
		return r.Sentence
	}

	var statusErr *StatusError
	var parseErr *ParseError
	switch {
	case errors.Is(r.Err, ErrNoSentences):
		return "(0 sentences found)"
	case errors.As(r.Err, &statusErr):
		return fmt.Sprintf("(Error: %d)", statusErr.Code)
	case errors.As(r.Err, &parseErr):
		return fmt.Sprintf("(Failed when processing: %s)", parseErr.Error())
	default:
		return fmt.Sprintf("(Failed when processing: %s)", r.Err.Error())
	}
}
