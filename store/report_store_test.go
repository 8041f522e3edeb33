package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	werrors "github.com/gcbaptista/go-word-stats/internal/errors"
	"github.com/gcbaptista/go-word-stats/model"
)

func sampleReport(id string) *model.AnalysisReport {
	return &model.AnalysisReport{
		ID:            id,
		InputPath:     "in.txt",
		OutputPath:    "out.txt",
		DistinctWords: 3,
		TotalTokens:   6,
		ReadMs:        12,
		SortMs:        3,
		WriteMs:       1,
		CreatedAt:     time.Now().Truncate(time.Millisecond),
	}
}

func TestReportStore_AddGetList(t *testing.T) {
	rs := NewReportStore()

	rs.Add(sampleReport("r1"))
	rs.Add(sampleReport("r2"))
	rs.Add(sampleReport("r3"))

	require.Equal(t, 3, rs.Len())

	got, err := rs.Get("r2")
	require.NoError(t, err)
	assert.Equal(t, "r2", got.ID)

	// Listing preserves insertion order.
	listed := rs.List()
	require.Len(t, listed, 3)
	assert.Equal(t, "r1", listed[0].ID)
	assert.Equal(t, "r2", listed[1].ID)
	assert.Equal(t, "r3", listed[2].ID)
}

func TestReportStore_GetNotFound(t *testing.T) {
	rs := NewReportStore()

	_, err := rs.Get("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, werrors.ErrReportNotFound))
}

func TestReportStore_ReplaceKeepsOrder(t *testing.T) {
	rs := NewReportStore()

	rs.Add(sampleReport("r1"))
	rs.Add(sampleReport("r2"))

	updated := sampleReport("r1")
	updated.DistinctWords = 99
	rs.Add(updated)

	require.Equal(t, 2, rs.Len())
	listed := rs.List()
	assert.Equal(t, "r1", listed[0].ID)
	assert.Equal(t, 99, listed[0].DistinctWords)
}

func TestReportStore_GetReturnsCopy(t *testing.T) {
	rs := NewReportStore()
	rs.Add(sampleReport("r1"))

	got, err := rs.Get("r1")
	require.NoError(t, err)
	got.DistinctWords = 12345

	again, err := rs.Get("r1")
	require.NoError(t, err)
	assert.Equal(t, 3, again.DistinctWords, "mutating a returned report must not affect the store")
}

func TestReportStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "reports.gob")

	rs := NewReportStore()
	rs.Add(sampleReport("r1"))
	rs.Add(sampleReport("r2"))
	require.NoError(t, rs.SaveToFile(path))

	loaded := NewReportStore()
	require.NoError(t, loaded.LoadFromFile(path))

	require.Equal(t, 2, loaded.Len())
	listed := loaded.List()
	assert.Equal(t, "r1", listed[0].ID)
	assert.Equal(t, "r2", listed[1].ID)
	assert.Equal(t, uint64(6), listed[0].TotalTokens)
}

func TestReportStore_LoadMissingFileIsFreshStart(t *testing.T) {
	rs := NewReportStore()
	err := rs.LoadFromFile(filepath.Join(t.TempDir(), "nope.gob"))
	require.NoError(t, err)
	assert.Equal(t, 0, rs.Len())
}
