package domain

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/goldengate-rescue/chipsync/internal/logger"
)

// IssueHeader is the header row of the error report file.
var IssueHeader = []string{"Name", "Number", "Contact Member", "Error"}

// Issue is one data-quality problem attributed to a dog record.
type Issue struct {
	// Name is the dog's name as recorded.
	Name string

	// Number is the dog's registry number.
	Number int

	// Contact is the person responsible for the record.
	Contact string

	// Message describes the problem.
	Message string
}

// Report collects data-quality issues for one run. It is created at run
// start, handed explicitly to every component that can raise an issue, and
// written out exactly once at the end - there is no package-level sink.
// Issues keep insertion order and are never deduplicated: a dog with three
// bad phone numbers gets three entries.
type Report struct {
	// RunID tags the run this report belongs to.
	RunID string

	issues []Issue
}

// NewReport creates an empty report with a fresh run ID.
func NewReport() *Report {
	return &Report{RunID: uuid.NewString()}
}

// Add records an issue against a dog and echoes it to the console trace.
func (r *Report) Add(d *Dog, msg string) {
	logger.Warn("dog %s #%d contact %s - %s", d.Name, d.Number, d.ResponsibleParty(), msg)
	r.issues = append(r.issues, Issue{
		Name:    d.Name,
		Number:  d.Number,
		Contact: d.ResponsibleParty(),
		Message: msg,
	})
}

// Issues returns the collected issues in insertion order.
func (r *Report) Issues() []Issue { return r.issues }

// Len returns the number of collected issues.
func (r *Report) Len() int { return len(r.issues) }

// Rows renders the issues as error-file rows matching IssueHeader.
func (r *Report) Rows() [][]string {
	rows := make([][]string, 0, len(r.issues))
	for _, is := range r.issues {
		rows = append(rows, []string{is.Name, strconv.Itoa(is.Number), is.Contact, is.Message})
	}
	return rows
}
