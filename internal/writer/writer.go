// Package writer serializes sorted word-count records, one "word count"
// line per record.
package writer

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gcbaptista/go-word-stats/internal/errors"
	"github.com/gcbaptista/go-word-stats/model"
)

// WriteRecords writes one line per record, in slice order, formatted as
// "<word> <count>\n". No header and no trailing summary line.
func WriteRecords(w io.Writer, records []model.WordRecord) error {
	buffered := bufio.NewWriter(w)
	for _, record := range records {
		if _, err := fmt.Fprintf(buffered, "%s %d\n", record.Word, record.Count); err != nil {
			return err
		}
	}
	return buffered.Flush()
}

// WriteFile creates (or truncates) the file at path and writes the records
// to it. Open, write, and close failures are reported as output file
// errors; a failure discards the output rather than leaving it half-written
// silently.
func WriteFile(path string, records []model.WordRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.NewOutputFileError(path, err)
	}

	if err := WriteRecords(file, records); err != nil {
		file.Close()
		return errors.NewOutputFileError(path, err)
	}

	if err := file.Close(); err != nil {
		return errors.NewOutputFileError(path, err)
	}
	return nil
}
