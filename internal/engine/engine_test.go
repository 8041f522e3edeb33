package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-word-stats/config"
	werrors "github.com/gcbaptista/go-word-stats/internal/errors"
	"github.com/gcbaptista/go-word-stats/model"
	"github.com/gcbaptista/go-word-stats/services"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	settings := config.Settings{DataDir: t.TempDir()}
	eng := NewEngine(settings)
	t.Cleanup(eng.Close)
	return eng
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestEngine_AnalyzeFile(t *testing.T) {
	eng := newTestEngine(t)

	inputPath := writeInput(t, "The cat sat. The CAT sat!")
	outputPath := filepath.Join(t.TempDir(), "output.txt")

	var phases []string
	report, err := eng.AnalyzeFile(inputPath, outputPath, func(phase string, elapsed time.Duration) {
		phases = append(phases, phase)
		assert.GreaterOrEqual(t, elapsed, time.Duration(0))
	})
	require.NoError(t, err)

	// All counts are equal, so the output order is the alphabetical
	// tie-break.
	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "cat 2\nsat 2\nthe 2\n", string(data))

	assert.Equal(t, []string{
		services.PhaseReadAndCount,
		services.PhaseSort,
		services.PhaseWrite,
	}, phases)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, inputPath, report.InputPath)
	assert.Equal(t, outputPath, report.OutputPath)
	assert.Equal(t, 3, report.DistinctWords)
	assert.Equal(t, uint64(6), report.TotalTokens)
}

func TestEngine_AnalyzeFile_EmptyInput(t *testing.T) {
	eng := newTestEngine(t)

	inputPath := writeInput(t, "")
	outputPath := filepath.Join(t.TempDir(), "output.txt")

	report, err := eng.AnalyzeFile(inputPath, outputPath, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, report.DistinctWords)
	assert.Equal(t, uint64(0), report.TotalTokens)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Empty(t, string(data), "empty input should produce an output file with zero lines")
}

func TestEngine_AnalyzeFile_NonAlphabeticInput(t *testing.T) {
	eng := newTestEngine(t)

	inputPath := writeInput(t, "123 !!! ---")
	outputPath := filepath.Join(t.TempDir(), "output.txt")

	report, err := eng.AnalyzeFile(inputPath, outputPath, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, report.DistinctWords)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Empty(t, string(data))
}

func TestEngine_AnalyzeFile_MissingInput(t *testing.T) {
	eng := newTestEngine(t)

	outputPath := filepath.Join(t.TempDir(), "output.txt")
	_, err := eng.AnalyzeFile(filepath.Join(t.TempDir(), "missing.txt"), outputPath, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, werrors.ErrIO))

	// A read failure aborts before any output is produced.
	_, statErr := os.Stat(outputPath)
	assert.True(t, os.IsNotExist(statErr), "no output file should be created on read failure")
}

func TestEngine_AnalyzeFile_PersistsReport(t *testing.T) {
	dataDir := t.TempDir()
	settings := config.Settings{DataDir: dataDir}

	eng := NewEngine(settings)
	inputPath := writeInput(t, "alpha beta alpha")
	outputPath := filepath.Join(t.TempDir(), "output.txt")
	report, err := eng.AnalyzeFile(inputPath, outputPath, nil)
	require.NoError(t, err)
	eng.Close()

	// A fresh engine over the same data directory sees the report.
	reloaded := NewEngine(settings)
	defer reloaded.Close()

	got, err := reloaded.GetReport(report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.DistinctWords, got.DistinctWords)
	assert.Len(t, reloaded.ListReports(), 1)
}

func TestEngine_AnalyzeText(t *testing.T) {
	eng := newTestEngine(t)

	result, err := eng.AnalyzeText("to be or not to be", 0)
	require.NoError(t, err)

	assert.Equal(t, 4, result.DistinctWords)
	assert.Equal(t, uint64(6), result.TotalTokens)
	require.Len(t, result.Words, 4)
	assert.Equal(t, model.WordRecord{Word: "be", Count: 2}, result.Words[0])
	assert.Equal(t, model.WordRecord{Word: "to", Count: 2}, result.Words[1])
	assert.Equal(t, model.WordRecord{Word: "not", Count: 1}, result.Words[2])
	assert.Equal(t, model.WordRecord{Word: "or", Count: 1}, result.Words[3])
}

func TestEngine_AnalyzeText_TopN(t *testing.T) {
	eng := newTestEngine(t)

	result, err := eng.AnalyzeText("a b c d e", 2)
	require.NoError(t, err)

	assert.Len(t, result.Words, 2, "topN should truncate the returned records")
	assert.Equal(t, 5, result.DistinctWords, "totals should reflect the whole input")
	assert.Equal(t, uint64(5), result.TotalTokens)
	assert.Equal(t, "a", result.Words[0].Word)
	assert.Equal(t, "b", result.Words[1].Word)
}

func TestEngine_AnalyzeFileAsync(t *testing.T) {
	eng := newTestEngine(t)

	inputPath := writeInput(t, "one two two")
	outputPath := filepath.Join(t.TempDir(), "output.txt")

	jobID, err := eng.AnalyzeFileAsync(inputPath, outputPath)
	require.NoError(t, err)
	require.NotEmpty(t, jobID)

	job := waitForJob(t, eng, jobID, model.JobStatusCompleted)
	require.NotEmpty(t, job.ReportID)

	report, err := eng.GetReport(job.ReportID)
	require.NoError(t, err)
	assert.Equal(t, 2, report.DistinctWords)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "two 2\none 1\n", string(data))
}

func TestEngine_AnalyzeFileAsync_MissingInputFailsJob(t *testing.T) {
	eng := newTestEngine(t)

	jobID, err := eng.AnalyzeFileAsync(filepath.Join(t.TempDir(), "missing.txt"), filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err, "job creation should succeed; the failure surfaces in the job")

	job := waitForJob(t, eng, jobID, model.JobStatusFailed)
	assert.Contains(t, job.Error, "can't open input file for reading")
}

func TestEngine_AnalyzeFileAsync_EmptyPaths(t *testing.T) {
	eng := newTestEngine(t)

	_, err := eng.AnalyzeFileAsync("", "out.txt")
	require.Error(t, err)

	_, err = eng.AnalyzeFileAsync("in.txt", "")
	require.Error(t, err)
}

func waitForJob(t *testing.T, eng *Engine, jobID string, want model.JobStatus) *model.Job {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		job, err := eng.GetJob(jobID)
		if err == nil && job.Status == want {
			return job
		}
		time.Sleep(5 * time.Millisecond)
	}
	job, _ := eng.GetJob(jobID)
	t.Fatalf("job %s never reached status %s (last: %+v)", jobID, want, job)
	return nil
}
