package model

import "time"

// AnalysisReport summarizes one completed file analysis: what was read,
// where the sorted statistics were written, and how long each phase took.
type AnalysisReport struct {
	ID            string    `json:"id"`
	InputPath     string    `json:"input_path"`
	OutputPath    string    `json:"output_path"`
	DistinctWords int       `json:"distinct_words"`
	TotalTokens   uint64    `json:"total_tokens"`
	ReadMs        int64     `json:"read_ms"`
	SortMs        int64     `json:"sort_ms"`
	WriteMs       int64     `json:"write_ms"`
	CreatedAt     time.Time `json:"created_at"`
}

// AnalysisResult is the response for a synchronous text analysis: the
// records in output order (possibly truncated to a requested top N) plus
// the whole-input totals.
type AnalysisResult struct {
	Words         []WordRecord `json:"words"`
	DistinctWords int          `json:"distinct_words"`
	TotalTokens   uint64       `json:"total_tokens"`
	TookMs        int64        `json:"took_ms"`
}
