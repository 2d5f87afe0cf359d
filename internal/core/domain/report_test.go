package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_FreshRunID(t *testing.T) {
	a := NewReport()
	b := NewReport()

	assert.NotEmpty(t, a.RunID)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestReport_AddAttributesToContact(t *testing.T) {
	rep := NewReport()
	d := &Dog{
		Name: "Rex", Number: 12,
		PrimaryContactFirst: "Pat", PrimaryContactLast: "Jones",
	}

	rep.Add(d, "no microchip number recorded")

	require.Equal(t, 1, rep.Len())
	issue := rep.Issues()[0]
	assert.Equal(t, "Rex", issue.Name)
	assert.Equal(t, 12, issue.Number)
	assert.Equal(t, "Pat Jones", issue.Contact)
	assert.Equal(t, "no microchip number recorded", issue.Message)
}

func TestReport_KeepsOrderAndDuplicates(t *testing.T) {
	rep := NewReport()
	d := &Dog{Name: "Rex", Number: 12}

	rep.Add(d, "first")
	rep.Add(d, "second")
	rep.Add(d, "first")

	require.Equal(t, 3, rep.Len())
	assert.Equal(t, "first", rep.Issues()[0].Message)
	assert.Equal(t, "second", rep.Issues()[1].Message)
	assert.Equal(t, "first", rep.Issues()[2].Message)
}

func TestReport_Rows(t *testing.T) {
	rep := NewReport()
	rep.Add(&Dog{Name: "Rex", Number: 12, Location: "North Bay"}, "should have a microchip")

	rows := rep.Rows()

	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Rex", "12", "North Bay", "should have a microchip"}, rows[0])
	assert.Len(t, rows[0], len(IssueHeader))
}

func TestReport_EmptyRows(t *testing.T) {
	rep := NewReport()
	assert.Empty(t, rep.Rows())
	assert.Equal(t, 0, rep.Len())
}
