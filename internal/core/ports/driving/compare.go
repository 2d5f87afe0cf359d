package driving

// CompareRequest names the inputs of one reconciliation run.
type CompareRequest struct {
	// OldPath and NewPath locate the two registry snapshot files.
	OldPath string
	NewPath string

	// UpdatesPath and ErrorsPath locate the two output files.
	UpdatesPath string
	ErrorsPath  string

	// OldLegacy and NewLegacy select the 35-column layout for the
	// corresponding snapshot.
	OldLegacy bool
	NewLegacy bool

	// Cutoff discards records acquired strictly before this year.
	Cutoff int
}

// CompareResult summarises one reconciliation run.
type CompareResult struct {
	// RunID identifies the run in the console trace.
	RunID string

	// OldDogs/NewDogs and OldChips/NewChips count what each snapshot loaded.
	OldDogs  int
	NewDogs  int
	OldChips int
	NewChips int

	// Updates counts rows written to the update file.
	Updates int

	// Issues counts entries written to the error file.
	Issues int
}

// CompareService runs the whole pipeline: load both snapshots, reconcile,
// build the update file, and write the error report.
type CompareService interface {
	Compare(req CompareRequest) (CompareResult, error)
}
