package sentenceapi

import "encoding/json"

// apiResponse is the top-level search response. Sentences are kept raw so
// that only the randomly chosen element has to be well-formed.
type apiResponse struct {
	Sentences []json.RawMessage `json:"sentences"`
}

// apiSentence is a single candidate sentence.
type apiSentence struct {
	SegmentInfo *apiSegmentInfo `json:"segment_info"`
}

// apiSegmentInfo carries the highlighted sentence text.
type apiSegmentInfo struct {
	ContentJPHighlight *string `json:"content_jp_highlight"`
}
