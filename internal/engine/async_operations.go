package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/gcbaptista/go-word-stats/internal/errors"
	"github.com/gcbaptista/go-word-stats/model"
)

// AnalyzeFileAsync starts a background job that runs the full file pipeline
// and returns the job ID immediately. The report ID is attached to the job
// once the analysis completes.
func (e *Engine) AnalyzeFileAsync(inputPath, outputPath string) (string, error) {
	if inputPath == "" {
		return "", errors.NewValidationError("input_path", "input path cannot be empty")
	}
	if outputPath == "" {
		return "", errors.NewValidationError("output_path", "output path cannot be empty")
	}

	jobID := e.jobManager.CreateJob(model.JobTypeAnalyzeFile, inputPath, map[string]string{
		"output_path": outputPath,
	})

	err := e.jobManager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		return e.executeAnalyzeFileJob(ctx, jobID, inputPath, outputPath)
	})
	if err != nil {
		return "", fmt.Errorf("failed to start analyze file job: %w", err)
	}

	return jobID, nil
}

// executeAnalyzeFileJob executes the file analysis job.
func (e *Engine) executeAnalyzeFileJob(_ context.Context, jobID, inputPath, outputPath string) error {
	e.jobManager.UpdateJobProgress(jobID, 0, 3, "Reading and counting words")

	phases := 0
	report, err := e.AnalyzeFile(inputPath, outputPath, func(phase string, _ time.Duration) {
		phases++
		e.jobManager.UpdateJobProgress(jobID, phases, 3, "Completed "+phase)
	})
	if err != nil {
		return err
	}

	e.jobManager.SetJobReport(jobID, report.ID)
	return nil
}
