package writer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	werrors "github.com/gcbaptista/go-word-stats/internal/errors"
	"github.com/gcbaptista/go-word-stats/model"
)

func TestWriteRecords(t *testing.T) {
	tests := []struct {
		name    string
		records []model.WordRecord
		want    string
	}{
		{
			name:    "no records writes nothing",
			records: nil,
			want:    "",
		},
		{
			name:    "single record",
			records: []model.WordRecord{{Word: "hello", Count: 3}},
			want:    "hello 3\n",
		},
		{
			name: "records in sequence order",
			records: []model.WordRecord{
				{Word: "cat", Count: 2},
				{Word: "sat", Count: 2},
				{Word: "the", Count: 2},
			},
			want: "cat 2\nsat 2\nthe 2\n",
		},
		{
			name:    "large count",
			records: []model.WordRecord{{Word: "many", Count: 18446744073709551615}},
			want:    "many 18446744073709551615\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteRecords(&buf, tt.records); err != nil {
				t.Fatalf("WriteRecords() returned error: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("WriteRecords() wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteFile(t *testing.T) {
	t.Run("writes records to a new file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		records := []model.WordRecord{
			{Word: "alpha", Count: 4},
			{Word: "beta", Count: 1},
		}

		if err := WriteFile(path, records); err != nil {
			t.Fatalf("WriteFile() returned error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read back output file: %v", err)
		}
		if got, want := string(data), "alpha 4\nbeta 1\n"; got != want {
			t.Errorf("output file contains %q, want %q", got, want)
		}
	})

	t.Run("empty record sequence creates an empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")

		if err := WriteFile(path, nil); err != nil {
			t.Fatalf("WriteFile() returned error: %v", err)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("output file was not created: %v", err)
		}
		if info.Size() != 0 {
			t.Errorf("expected empty output file, got %d bytes", info.Size())
		}
	})

	t.Run("unwritable destination", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing_dir", "out.txt")

		err := WriteFile(path, []model.WordRecord{{Word: "a", Count: 1}})
		if err == nil {
			t.Fatal("expected error for unwritable destination, got nil")
		}
		if !errors.Is(err, werrors.ErrIO) {
			t.Errorf("expected error to match ErrIO, got %v", err)
		}
	})
}
