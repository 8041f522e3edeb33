// Package engine orchestrates the word statistics pipeline: counting,
// parallel sorting, output writing, background jobs, and report storage.
package engine

import (
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gcbaptista/go-word-stats/config"
	"github.com/gcbaptista/go-word-stats/internal/jobs"
	"github.com/gcbaptista/go-word-stats/internal/sorter"
	"github.com/gcbaptista/go-word-stats/internal/tokenizer"
	"github.com/gcbaptista/go-word-stats/internal/writer"
	"github.com/gcbaptista/go-word-stats/model"
	"github.com/gcbaptista/go-word-stats/services"
	"github.com/gcbaptista/go-word-stats/store"
)

const reportsFile = "reports.gob"

// Engine runs word-frequency analyses and tracks their jobs and reports.
// It implements the services.AsyncAnalyzer interface.
type Engine struct {
	settings   config.Settings
	sorter     sorter.Sorter
	jobManager *jobs.Manager
	reports    *store.ReportStore
}

// NewEngine creates a new analysis engine. Previously persisted reports are
// loaded from the configured data directory; a missing or unreadable
// reports file only costs the history, not the engine.
func NewEngine(settings config.Settings) *Engine {
	settings.ApplyDefaults()

	eng := &Engine{
		settings: settings,
		sorter: sorter.Sorter{
			Threshold: settings.SortThreshold,
			Budget:    settings.SortBudget,
		},
		jobManager: jobs.NewManager(settings.MaxConcurrentJobs),
		reports:    store.NewReportStore(),
	}

	if err := eng.reports.LoadFromFile(eng.reportsPath()); err != nil {
		log.Printf("Warning: failed to load persisted reports: %v. Starting with empty history.", err)
	}

	eng.jobManager.Start()
	return eng
}

// Close gracefully shuts down the engine's background workers.
func (e *Engine) Close() {
	e.jobManager.Stop()
}

func (e *Engine) reportsPath() string {
	return filepath.Join(e.settings.DataDir, reportsFile)
}

// AnalyzeText counts and sorts the words of text, returning at most topN
// records (topN <= 0 returns all of them).
func (e *Engine) AnalyzeText(text string, topN int) (*model.AnalysisResult, error) {
	startTime := time.Now()

	counts, err := tokenizer.CountWords(strings.NewReader(text))
	if err != nil {
		return nil, err
	}

	records := model.BuildRecords(counts)
	e.sorter.Sort(records)

	distinct := len(records)
	total := tokenizer.TotalTokens(counts)

	if topN > 0 && topN < len(records) {
		records = records[:topN]
	}

	return &model.AnalysisResult{
		Words:         records,
		DistinctWords: distinct,
		TotalTokens:   total,
		TookMs:        time.Since(startTime).Milliseconds(),
	}, nil
}

// AnalyzeFile runs the full pipeline on inputPath and writes the sorted
// statistics to outputPath. A read failure aborts before counting finishes;
// a write failure aborts after sorting, discarding the sorted result.
// onPhase, if non-nil, is called after each phase with its duration.
func (e *Engine) AnalyzeFile(inputPath, outputPath string, onPhase services.PhaseCallback) (*model.AnalysisReport, error) {
	phaseStart := time.Now()
	lap := func(phase string) time.Duration {
		elapsed := time.Since(phaseStart)
		phaseStart = time.Now()
		if onPhase != nil {
			onPhase(phase, elapsed)
		}
		return elapsed
	}

	counts, err := tokenizer.CountFile(inputPath)
	if err != nil {
		return nil, err
	}
	readElapsed := lap(services.PhaseReadAndCount)

	records := model.BuildRecords(counts)
	e.sorter.Sort(records)
	sortElapsed := lap(services.PhaseSort)

	if err := writer.WriteFile(outputPath, records); err != nil {
		return nil, err
	}
	writeElapsed := lap(services.PhaseWrite)

	report := &model.AnalysisReport{
		ID:            uuid.New().String(),
		InputPath:     inputPath,
		OutputPath:    outputPath,
		DistinctWords: len(records),
		TotalTokens:   tokenizer.TotalTokens(counts),
		ReadMs:        readElapsed.Milliseconds(),
		SortMs:        sortElapsed.Milliseconds(),
		WriteMs:       writeElapsed.Milliseconds(),
		CreatedAt:     time.Now(),
	}

	e.reports.Add(report)
	if err := e.reports.SaveToFile(e.reportsPath()); err != nil {
		log.Printf("Warning: failed to persist reports: %v", err)
	}

	return report, nil
}

// GetJob retrieves a background job by ID.
func (e *Engine) GetJob(jobID string) (*model.Job, error) {
	return e.jobManager.GetJob(jobID)
}

// ListJobs returns background jobs, optionally filtered by status.
func (e *Engine) ListJobs(status *model.JobStatus) []*model.Job {
	return e.jobManager.ListJobs(status)
}

// GetReport retrieves a completed analysis report by ID.
func (e *Engine) GetReport(reportID string) (*model.AnalysisReport, error) {
	return e.reports.Get(reportID)
}

// ListReports returns all completed analysis reports in completion order.
func (e *Engine) ListReports() []*model.AnalysisReport {
	return e.reports.List()
}

// GetJobMetrics returns current job performance metrics.
func (e *Engine) GetJobMetrics() jobs.JobMetricsData {
	return e.jobManager.GetMetrics()
}

// GetJobSuccessRate returns the overall job success rate.
func (e *Engine) GetJobSuccessRate() float64 {
	return e.jobManager.GetJobSuccessRate()
}

// GetCurrentWorkload returns the number of currently active jobs.
func (e *Engine) GetCurrentWorkload() int64 {
	return e.jobManager.GetCurrentWorkload()
}
