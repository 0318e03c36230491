package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentenceResult_Text(t *testing.T) {
	tests := []struct {
		name     string
		result   SentenceResult
		expected string
	}{
		{
			name:     "sentence found",
			result:   SentenceResult{Sentence: "He runs fast."},
			expected: "He runs fast.",
		},
		{
			name:     "no sentences",
			result:   SentenceResult{Err: ErrNoSentences},
			expected: "(0 sentences found)",
		},
		{
			name:     "server error status",
			result:   SentenceResult{Err: &StatusError{Code: 500}},
			expected: "(Error: 500)",
		},
		{
			name:     "not found status",
			result:   SentenceResult{Err: &StatusError{Code: 404}},
			expected: "(Error: 404)",
		},
		{
			name:     "parse error",
			result:   SentenceResult{Err: &ParseError{Err: errors.New("missing field segment_info")}},
			expected: "(Failed when processing: missing field segment_info)",
		},
		{
			name:     "wrapped parse error",
			result:   SentenceResult{Err: fmt.Errorf("decode: %w", &ParseError{Err: errors.New("bad json")})},
			expected: "(Failed when processing: bad json)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.result.Text())
		})
	}
}

func TestSentenceResult_Found(t *testing.T) {
	assert.True(t, SentenceResult{Sentence: "ok"}.Found())
	assert.False(t, SentenceResult{Err: ErrNoSentences}.Found())
}

func TestNewSentenceRequest_JSON(t *testing.T) {
	req := NewSentenceRequest("run", 0.1234)

	data, err := json.Marshal(req)
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"query":"run","limit":3,"random_seed":0.1234,"content_sort":"DESC"}`,
		string(data),
	)
}

func TestResultRow_Cell(t *testing.T) {
	row := ResultRow{Word: "jump", Result: SentenceResult{Err: &StatusError{Code: 503}}}
	assert.Equal(t, "(Error: 503)", row.Cell())
}
