package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/goldengate-rescue/chipsync/internal/core/domain"
	"github.com/goldengate-rescue/chipsync/internal/core/ports/driven"
)

// Ensure Tables implements the interface.
var _ driven.Tables = (*Tables)(nil)

// Tables is a CSV file implementation of driven.Tables.
type Tables struct{}

// NewTables creates a CSV-backed table store.
func NewTables() *Tables {
	return &Tables{}
}

// Read loads the data rows of the CSV file at path. The first record must
// equal header field for field; every following record must have the same
// number of fields. encoding/csv enforces the latter on its own, so the
// only check added here is the header comparison.
func (t *Tables) Read(path string, header []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w: file is empty", path, domain.ErrBadHeader)
	}

	got := records[0]
	if len(got) != len(header) {
		return nil, fmt.Errorf("%s: %w: got %d columns, want %d",
			path, domain.ErrBadHeader, len(got), len(header))
	}
	for i := range header {
		if got[i] != header[i] {
			return nil, fmt.Errorf("%s: %w: column %d is %q, want %q",
				path, domain.ErrBadHeader, i+1, got[i], header[i])
		}
	}
	return records[1:], nil
}

// Write stores header plus rows to the CSV file at path, replacing any
// existing file, and returns the number of data rows written.
func (t *Tables) Write(path string, header []string, rows [][]string) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	for i, row := range rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return i, fmt.Errorf("%s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return len(rows), nil
}
