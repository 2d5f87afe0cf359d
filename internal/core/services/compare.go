package services

import (
	"fmt"

	"github.com/goldengate-rescue/chipsync/internal/core/domain"
	"github.com/goldengate-rescue/chipsync/internal/core/ports/driven"
	"github.com/goldengate-rescue/chipsync/internal/core/ports/driving"
	"github.com/goldengate-rescue/chipsync/internal/logger"
)

// Ensure CompareService implements the interface.
var _ driving.CompareService = (*CompareService)(nil)

// CompareService runs the whole reconciliation pipeline: load the two
// snapshots, compare them, build the update file, and write the error
// report. One call is one registration cycle.
type CompareService struct {
	tables  driven.Tables
	loader  *Loader
	compare *Reconciler
	builder *UpdateBuilder
}

// NewCompareService wires the pipeline over the given table store and
// registration identity.
func NewCompareService(tables driven.Tables, org domain.Org) *CompareService {
	return &CompareService{
		tables:  tables,
		loader:  NewLoader(tables),
		compare: NewReconciler(),
		builder: NewUpdateBuilder(org),
	}
}

// Compare executes one run. The error report is written on every exit path
// that produced issues, including a failed load - a half-run's findings are
// still findings.
func (s *CompareService) Compare(req driving.CompareRequest) (driving.CompareResult, error) {
	rep := domain.NewReport()
	logger.Info("run %s: comparing %s against %s", rep.RunID, req.OldPath, req.NewPath)

	res := driving.CompareResult{RunID: rep.RunID}
	defer func() {
		if _, err := s.tables.Write(req.ErrorsPath, domain.IssueHeader, rep.Rows()); err != nil {
			logger.Warn("write %s: %v", req.ErrorsPath, err)
		} else {
			logger.Info("wrote %d issues to %s", rep.Len(), req.ErrorsPath)
		}
	}()

	layout := func(legacy bool) domain.Layout {
		if legacy {
			return domain.LayoutLegacy
		}
		return domain.LayoutCurrent
	}

	oldReg, err := s.loader.Load(req.OldPath, layout(req.OldLegacy), req.Cutoff, rep)
	if err != nil {
		return res, err
	}
	res.OldDogs, res.OldChips = oldReg.Count(), oldReg.ChipCount()

	newReg, err := s.loader.Load(req.NewPath, layout(req.NewLegacy), req.Cutoff, rep)
	if err != nil {
		return res, err
	}
	res.NewDogs, res.NewChips = newReg.Count(), newReg.ChipCount()

	s.compare.Compare(oldReg, newReg, req.Cutoff, rep)

	set := s.builder.Build(newReg, rep)
	written, err := s.tables.Write(req.UpdatesPath, domain.UpdateHeader, set.Rows())
	if err != nil {
		return res, fmt.Errorf("write %s: %w", req.UpdatesPath, err)
	}
	logger.Info("wrote %d rows to %s", written, req.UpdatesPath)

	res.Updates = written
	res.Issues = rep.Len()
	return res, nil
}
