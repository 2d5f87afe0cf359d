package domain

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldengate-rescue/chipsync/internal/logger"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// rowWith builds a snapshot row for the given layout with the named columns
// set and everything else blank.
func rowWith(t *testing.T, layout Layout, fields map[string]string) []string {
	t.Helper()
	header := layout.Header()
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	row := make([]string, len(header))
	for name, value := range fields {
		i, ok := index[name]
		require.True(t, ok, "unknown column %q", name)
		row[i] = value
	}
	return row
}

func TestLayout_Columns(t *testing.T) {
	assert.Equal(t, 36, LayoutCurrent.Columns())
	assert.Equal(t, 35, LayoutLegacy.Columns())
	assert.Len(t, LayoutCurrent.Header(), 36)
	assert.Len(t, LayoutLegacy.Header(), 35)
}

func TestLayout_HeaderDiffers(t *testing.T) {
	current := LayoutCurrent.Header()
	legacy := LayoutLegacy.Header()

	assert.Contains(t, current, "County")
	assert.NotContains(t, legacy, "County")

	// The name pairs swap order between layouts.
	idx := func(header []string, name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		return -1
	}
	assert.Less(t, idx(legacy, "Adoption Fname"), idx(legacy, "AC Fname"))
	assert.Less(t, idx(current, "AC Fname"), idx(current, "Adoption Fname"))
}

func TestFromRow_CurrentLayout(t *testing.T) {
	row := rowWith(t, LayoutCurrent, map[string]string{
		"Dog Name": "Rex", "Dog Number": "12",
		"Microchip Number": "981234567890123",
		"Dog Sex":          "Male", "Dog Status": "Adopted",
		"AC Fname": "Area", "AC Lname": "Contact",
		"Adoption Fname": "Jane", "Adoption Lname": "Doe",
	})

	d, err := FromRow(row, LayoutCurrent)

	require.NoError(t, err)
	assert.Equal(t, 12, d.Number)
	assert.Equal(t, "Rex", d.Name)
	assert.Equal(t, "981234567890123", d.Microchip)
	assert.Equal(t, "Area", d.ContactFirst)
	assert.Equal(t, "Contact", d.ContactLast)
	assert.Equal(t, "Jane", d.AdopterFirst)
	assert.Equal(t, "Doe", d.AdopterLast)
}

func TestFromRow_LegacyLayout(t *testing.T) {
	row := rowWith(t, LayoutLegacy, map[string]string{
		"Dog Name": "Bella", "Dog Number": "15",
		"AC Fname": "Area", "AC Lname": "Contact",
		"Adoption Fname": "Jane", "Adoption Lname": "Doe",
	})

	d, err := FromRow(row, LayoutLegacy)

	require.NoError(t, err)
	assert.Equal(t, 15, d.Number)
	assert.Equal(t, "Area", d.ContactFirst)
	assert.Equal(t, "Jane", d.AdopterFirst)
}

func TestFromRow_NoneChipCleared(t *testing.T) {
	for _, chip := range []string{"none", "None", "NONE"} {
		row := rowWith(t, LayoutCurrent, map[string]string{
			"Dog Number": "12", "Microchip Number": chip,
		})

		d, err := FromRow(row, LayoutCurrent)

		require.NoError(t, err)
		assert.False(t, d.HasChip())
	}
}

func TestFromRow_WrongColumnCount(t *testing.T) {
	_, err := FromRow(make([]string, 10), LayoutCurrent)
	assert.ErrorIs(t, err, ErrColumnCount)

	// A legacy row is one short for the current layout.
	_, err = FromRow(make([]string, 35), LayoutCurrent)
	assert.ErrorIs(t, err, ErrColumnCount)
}

func TestFromRow_BadNumber(t *testing.T) {
	for _, number := range []string{"", "abc", "12a", "-5", "0", "100000"} {
		row := rowWith(t, LayoutCurrent, map[string]string{
			"Dog Name": "Rex", "Dog Number": number,
		})

		d, err := FromRow(row, LayoutCurrent)

		assert.ErrorIs(t, err, ErrInvalidNumber, "number %q", number)
		// The dog is still populated so the caller can attribute the error.
		assert.Equal(t, "Rex", d.Name)
	}
}

func TestDog_Chip(t *testing.T) {
	chip, err := (&Dog{Microchip: "981234567890123"}).Chip()
	require.NoError(t, err)
	assert.Equal(t, "981234567890123", chip)

	// Nine-digit chips come back normalised.
	chip, err = (&Dog{Microchip: "123 456 789"}).Chip()
	require.NoError(t, err)
	assert.Equal(t, "123456789", chip)

	// A chipless dog and a malformed chip are distinct failures.
	_, err = (&Dog{}).Chip()
	assert.ErrorIs(t, err, ErrNoChip)

	_, err = (&Dog{Microchip: "not-a-chip"}).Chip()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoChip)
}

func TestDog_StatusPredicates(t *testing.T) {
	assert.True(t, (&Dog{Status: "Euthanized - Behavior"}).IsEuthanized())
	assert.True(t, (&Dog{Status: "Died in Foster"}).IsDied())
	assert.True(t, (&Dog{Status: "Euthanized - Medical"}).IsDead())
	assert.True(t, (&Dog{Status: "Returned to Owner"}).IsReturned())
	assert.False(t, (&Dog{Status: "Available"}).IsDead())
}

func TestDog_IsAdopted_UsesNamesNotStatus(t *testing.T) {
	assert.True(t, (&Dog{AdopterFirst: "Jane"}).IsAdopted())
	assert.True(t, (&Dog{AdopterLast: "Doe"}).IsAdopted())
	assert.False(t, (&Dog{Status: "Adopted"}).IsAdopted())
}

func TestDog_ResponsibleParty(t *testing.T) {
	d := &Dog{
		PrimaryContactFirst: "Pat", PrimaryContactLast: "Jones",
		ContactFirst: "Area", ContactLast: "Contact",
		Location: "North Bay", OriginatingArea: "Marin",
	}
	assert.Equal(t, "Pat Jones", d.ResponsibleParty())

	d.PrimaryContactFirst, d.PrimaryContactLast = "", ""
	assert.Equal(t, "Area Contact", d.ResponsibleParty())

	d.ContactFirst, d.ContactLast = "", ""
	assert.Equal(t, "North Bay", d.ResponsibleParty())

	d.Location = ""
	assert.Equal(t, "Marin", d.ResponsibleParty())
}

func TestDog_AcquiredAfter(t *testing.T) {
	d := &Dog{DateAcquired: "2022-03-10"}
	after, ok := d.AcquiredAfter(2019)
	assert.True(t, after)
	assert.True(t, ok)

	after, ok = d.AcquiredAfter(2023)
	assert.False(t, after)
	assert.True(t, ok)

	// Dateless records are never discarded by the cutoff.
	d = &Dog{}
	after, ok = d.AcquiredAfter(2019)
	assert.True(t, after)
	assert.False(t, ok)
}

func TestDog_VerifySex_ForcesDefault(t *testing.T) {
	rep := NewReport()
	d := &Dog{Name: "Rex", Number: 12, Sex: "unknown"}

	ok := d.VerifySex(rep)

	assert.False(t, ok)
	assert.Equal(t, "Male", d.Sex)
	require.Equal(t, 1, rep.Len())
	assert.Contains(t, rep.Issues()[0].Message, "invalid sex")
}

func TestDog_VerifySpayNeuter_ForcesDefault(t *testing.T) {
	rep := NewReport()
	d := &Dog{Name: "Rex", Number: 12, Neuter: "maybe"}

	ok := d.VerifySpayNeuter(rep)

	assert.False(t, ok)
	assert.Equal(t, "Yes", d.Neuter)
	assert.Equal(t, 1, rep.Len())
}

func TestDog_VerifyHomePhone(t *testing.T) {
	rep := NewReport()
	d := &Dog{Name: "Rex", Number: 12, HomePhone: "(408) 555-1212"}

	assert.True(t, d.VerifyHomePhone(rep))
	assert.Equal(t, "4085551212", d.HomePhone)
	assert.Equal(t, 0, rep.Len())

	d.HomePhone = "555-1212"
	assert.False(t, d.VerifyHomePhone(rep))
	assert.Equal(t, "", d.HomePhone)
	assert.Equal(t, 1, rep.Len())
}

func TestDog_VerifyCellPhone_ClearsQuietly(t *testing.T) {
	rep := NewReport()
	d := &Dog{Name: "Rex", Number: 12, CellPhone: "garbage"}

	assert.False(t, d.VerifyCellPhone(rep))
	assert.Equal(t, "", d.CellPhone)
	// Quiet: cleared but not reported.
	assert.Equal(t, 0, rep.Len())
}

func TestDog_VerifyAdopterZip(t *testing.T) {
	rep := NewReport()
	d := &Dog{Name: "Rex", Number: 12, AdopterZip: ""}

	assert.False(t, d.VerifyAdopterZip(rep))
	require.Equal(t, 1, rep.Len())
	assert.Equal(t, "zip code cannot be blank", rep.Issues()[0].Message)

	d.AdopterZip = "9412"
	assert.False(t, d.VerifyAdopterZip(rep))
	assert.Equal(t, "", d.AdopterZip)

	d.AdopterZip = "94123"
	assert.True(t, d.VerifyAdopterZip(rep))
}

func TestDog_VerifyAdopterState(t *testing.T) {
	rep := NewReport()

	d := &Dog{Name: "Rex", Number: 12, AdopterState: ""}
	assert.True(t, d.VerifyAdopterState(rep))
	assert.Equal(t, "CA", d.AdopterState)

	d = &Dog{Name: "Rex", Number: 12, AdopterState: "XX"}
	assert.False(t, d.VerifyAdopterState(rep))
	assert.Equal(t, "", d.AdopterState)
}

func TestDog_VerifyAll_AdoptedValid(t *testing.T) {
	rep := NewReport()
	d := &Dog{
		Name: "Rex", Number: 12,
		Sex: "Female", Neuter: "No",
		Age: "2 Years 3 Months", DateAcquired: "2022-03-10",
		AdopterFirst: "Jane", AdopterLast: "Doe",
		AdopterEmail: "jane@example.com", HomePhone: "4155550123",
		AdopterZip: "94901", AdopterState: "CA",
	}

	assert.True(t, d.VerifyAll(rep))
	assert.Equal(t, 0, rep.Len())
}

func TestDog_VerifyAll_NotAdoptedMustBeBlank(t *testing.T) {
	rep := NewReport()
	d := &Dog{
		Name: "Rex", Number: 12,
		Sex: "Male", Neuter: "Yes",
		Age: "2 Years 3 Months", DateAcquired: "2022-03-10",
		// No adopter name, but a leftover phone number.
		HomePhone: "4155550123",
	}

	assert.False(t, d.VerifyAll(rep))
	require.Equal(t, 1, rep.Len())
	assert.Equal(t, "adoption information should be blank", rep.Issues()[0].Message)
}

func TestDog_VerifyAll_MissingDOB(t *testing.T) {
	rep := NewReport()
	d := &Dog{Name: "Rex", Number: 12, Sex: "Male", Neuter: "Yes"}

	assert.False(t, d.VerifyAll(rep))
	require.Equal(t, 1, rep.Len())
	assert.Equal(t, "has no valid DOB", rep.Issues()[0].Message)
}
