package services

import (
	"time"

	"github.com/gcbaptista/go-word-stats/model"
)

// Pipeline phase names used in elapsed-time diagnostics.
const (
	PhaseReadAndCount = "read and count stats"
	PhaseSort         = "sort stats"
	PhaseWrite        = "write stats"
)

// PhaseCallback receives the name and duration of each completed pipeline
// phase, in order. It may be nil when the caller does not care about
// timings.
type PhaseCallback func(phase string, elapsed time.Duration)

// Analyzer defines word-frequency analysis operations
type Analyzer interface {
	// AnalyzeText counts and sorts the words of text. topN <= 0 means
	// "all records".
	AnalyzeText(text string, topN int) (*model.AnalysisResult, error)

	// AnalyzeFile runs the full pipeline: read and count inputPath, sort,
	// write "word count" lines to outputPath. onPhase, if non-nil, is
	// invoked after each phase completes.
	AnalyzeFile(inputPath, outputPath string, onPhase PhaseCallback) (*model.AnalysisReport, error)
}

// AsyncAnalyzer extends Analyzer with background file analysis
type AsyncAnalyzer interface {
	Analyzer
	AnalyzeFileAsync(inputPath, outputPath string) (string, error) // Returns job ID
}

// JobManager defines operations for managing background jobs
type JobManager interface {
	GetJob(jobID string) (*model.Job, error)
	ListJobs(status *model.JobStatus) []*model.Job
}

// ReportProvider defines read access to completed analysis reports
type ReportProvider interface {
	GetReport(reportID string) (*model.AnalysisReport, error)
	ListReports() []*model.AnalysisReport
}
