package services

import (
	"errors"
	"fmt"

	"github.com/goldengate-rescue/chipsync/internal/core/domain"
	"github.com/goldengate-rescue/chipsync/internal/core/ports/driven"
	"github.com/goldengate-rescue/chipsync/internal/logger"
)

// Loader builds registry snapshots from exported files.
type Loader struct {
	tables driven.Tables
}

// NewLoader creates a loader over the given table store.
func NewLoader(tables driven.Tables) *Loader {
	return &Loader{tables: tables}
}

// Load reads one snapshot file into a registry. Records acquired strictly
// before the cutoff year are discarded at load time - the export contains
// every dog back to the beginning of time, and the old ones only slow the
// comparison down. Rows with a bad registry number are reported and
// skipped; file-level problems (unreadable file, wrong header, ragged rows)
// abort the load.
func (l *Loader) Load(path string, layout domain.Layout, cutoff int, rep *domain.Report) (*domain.Registry, error) {
	rows, err := l.tables.Read(path, layout.Header())
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	logger.Info("read %d rows from %s", len(rows), path)

	reg := domain.NewRegistry()
	for _, row := range rows {
		d, err := domain.FromRow(row, layout)
		if errors.Is(err, domain.ErrColumnCount) {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		if err != nil {
			rep.Add(d, err.Error())
			continue
		}
		after, dated := d.AcquiredAfter(cutoff)
		if !dated {
			rep.Add(d, "no acquisition date recorded")
		}
		if after {
			// Duplicates are reported by Add and dropped; the run continues.
			_ = reg.Add(d, rep)
		}
		// Field validation is NOT done here - the database holds too much
		// junk for that to be useful. Only records headed for the update
		// file get verified, in the update builder.
	}
	logger.Info("registry loaded, %d dogs, %d chips", reg.Count(), reg.ChipCount())
	return reg, nil
}
