package store

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gcbaptista/go-word-stats/internal/errors"
	"github.com/gcbaptista/go-word-stats/model"
)

// ReportStore keeps completed analysis reports in memory, keyed by report
// ID, and remembers insertion order so listings are stable.
type ReportStore struct {
	mu      sync.RWMutex
	reports map[string]*model.AnalysisReport
	order   []string // Report IDs in insertion order
}

// NewReportStore creates an empty report store.
func NewReportStore() *ReportStore {
	return &ReportStore{
		reports: make(map[string]*model.AnalysisReport),
	}
}

// Add stores a report. An existing report with the same ID is replaced
// without disturbing its position in the listing order.
func (rs *ReportStore) Add(report *model.AnalysisReport) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if _, exists := rs.reports[report.ID]; !exists {
		rs.order = append(rs.order, report.ID)
	}
	reportCopy := *report
	rs.reports[report.ID] = &reportCopy
}

// Get retrieves a report by ID.
func (rs *ReportStore) Get(reportID string) (*model.AnalysisReport, error) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	report, exists := rs.reports[reportID]
	if !exists {
		return nil, errors.NewReportNotFoundError(reportID)
	}

	reportCopy := *report
	return &reportCopy, nil
}

// List returns all reports in insertion order.
func (rs *ReportStore) List() []*model.AnalysisReport {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	result := make([]*model.AnalysisReport, 0, len(rs.order))
	for _, id := range rs.order {
		reportCopy := *rs.reports[id]
		result = append(result, &reportCopy)
	}
	return result
}

// Len returns the number of stored reports.
func (rs *ReportStore) Len() int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return len(rs.reports)
}

// gobReportStoreData is a helper struct for Gob encoding/decoding
// ReportStore data. It excludes the mutex.
type gobReportStoreData struct {
	Reports map[string]*model.AnalysisReport
	Order   []string
}

// GobEncode implements the gob.GobEncoder interface for ReportStore.
func (rs *ReportStore) GobEncode() ([]byte, error) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	dataToEncode := gobReportStoreData{
		Reports: rs.reports,
		Order:   rs.order,
	}

	var buf bytes.Buffer
	encoder := gob.NewEncoder(&buf)
	if err := encoder.Encode(dataToEncode); err != nil {
		return nil, fmt.Errorf("failed to gob encode report store data: %w", err)
	}
	return buf.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface for ReportStore.
func (rs *ReportStore) GobDecode(data []byte) error {
	decodedData := gobReportStoreData{}

	buf := bytes.NewBuffer(data)
	decoder := gob.NewDecoder(buf)
	if err := decoder.Decode(&decodedData); err != nil {
		return fmt.Errorf("failed to gob decode report store data: %w", err)
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.reports = decodedData.Reports
	rs.order = decodedData.Order

	// Guard against decoding from an empty file
	if rs.reports == nil {
		rs.reports = make(map[string]*model.AnalysisReport)
	}

	return nil
}

// SaveToFile persists the store to filePath as gob, creating the parent
// directory if needed.
func (rs *ReportStore) SaveToFile(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filePath, err)
	}
	defer file.Close()

	encoder := gob.NewEncoder(file)
	if err := encoder.Encode(rs); err != nil {
		return fmt.Errorf("failed to gob encode to file %s: %w", filePath, err)
	}
	return nil
}

// LoadFromFile restores the store from filePath. A missing file is not an
// error; the store is simply left empty so fresh starts work.
func (rs *ReportStore) LoadFromFile(filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	decoder := gob.NewDecoder(file)
	if err := decoder.Decode(rs); err != nil {
		return fmt.Errorf("failed to gob decode from file %s: %w", filePath, err)
	}
	return nil
}
