package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxNumber is the largest registry number the organisation has ever issued.
const MaxNumber = 99999

var reNumber = regexp.MustCompile(`^\d+$`)

// Layout identifies which snapshot column layout a file uses. The export
// format has changed over the years; both surviving layouts carry the same
// fields, but the legacy one lacks the County column and orders the
// adopter-name pair before the area-contact pair.
type Layout int

const (
	// LayoutCurrent is the 36-column layout with a County column.
	LayoutCurrent Layout = iota

	// LayoutLegacy is the older 35-column layout without County.
	LayoutLegacy
)

// Columns returns the number of columns in a row of this layout.
func (l Layout) Columns() int {
	if l == LayoutLegacy {
		return 35
	}
	return 36
}

// Header returns the expected header row for this layout.
func (l Layout) Header() []string {
	head := []string{
		"Dog Name", "Dog Number", "Microchip Number", "Dog Age", "Dog Sex",
		"Dog Breed", "Dog Neuter", "Dog Status", "Dog Location",
		"How Acquired", "Date Acquired",
		"Primary Contact Fname", "Primary Contact Lname",
		"Surrender Fname", "Surrender Lname", "Surrender Address",
		"Surrender City", "Surrender State", "Surrender Zip Code",
		"Originating Area",
	}
	if l == LayoutLegacy {
		head = append(head,
			"Adoption Fname", "Adoption Lname", "AC Fname", "AC Lname")
	} else {
		head = append(head, "County",
			"AC Fname", "AC Lname", "Adoption Fname", "Adoption Lname")
	}
	return append(head,
		"Adoption Address", "Adoption City", "Adoption State",
		"Adoption Zip Code", "Adoption Area", "Adoption Email",
		"Adoption Home Phone", "Adoption Work Phone", "Adoption Cell Phone",
		"Adoption Status", "Adoption or Disposition Date")
}

// Dog is one animal's registry entry, bound from one snapshot row. The
// registry number is the only field parsed into a real value; everything
// else is stored verbatim because the source database does no validation
// and the contents range from valid to total garbage.
type Dog struct {
	// Number is the organisation's registry number, unique per snapshot.
	// Immutable once set - it keys the Registry indices.
	Number int

	// Microchip is the recorded chip number; empty means none.
	Microchip string

	Name         string
	Age          string
	Sex          string
	Neuter       string
	Status       string
	Location     string
	HowAcquired  string
	DateAcquired string

	PrimaryContactFirst string
	PrimaryContactLast  string

	SurrenderFirst   string
	SurrenderLast    string
	SurrenderAddress string
	SurrenderCity    string
	SurrenderState   string
	SurrenderZip     string

	OriginatingArea string

	// ContactFirst and ContactLast name the area contact assigned to the dog.
	ContactFirst string
	ContactLast  string

	AdopterFirst   string
	AdopterLast    string
	AdopterAddress string
	AdopterCity    string
	AdopterState   string
	AdopterZip     string
	AdopterArea    string
	AdopterEmail   string
	HomePhone      string
	WorkPhone      string
	CellPhone      string

	AdoptionStatus  string
	DispositionDate string

	// UpdateRequired marks the record for the external registration file.
	// Only the reconciliation passes set it; it is never persisted.
	UpdateRequired bool
}

// FromRow binds one snapshot row into a Dog. The returned Dog is populated
// even when the error is non-nil so the caller can attribute the problem.
// The registry number is the only field that can fail; everything else is
// accepted as-is. A microchip of "none" (any case) is treated as blank.
func FromRow(row []string, layout Layout) (*Dog, error) {
	if len(row) != layout.Columns() {
		return &Dog{}, fmt.Errorf("%w: got %d, want %d", ErrColumnCount, len(row), layout.Columns())
	}

	d := &Dog{}
	col := 0
	next := func() string {
		v := row[col]
		col++
		return v
	}

	d.Name = next()
	number := next()
	d.Microchip = next()
	d.Age = next()
	d.Sex = next()
	next() // breed, unused
	d.Neuter = next()
	d.Status = next()
	d.Location = next()
	d.HowAcquired = next()
	d.DateAcquired = next()
	d.PrimaryContactFirst = next()
	d.PrimaryContactLast = next()
	d.SurrenderFirst = next()
	d.SurrenderLast = next()
	d.SurrenderAddress = next()
	d.SurrenderCity = next()
	d.SurrenderState = next()
	d.SurrenderZip = next()
	d.OriginatingArea = next()
	if layout == LayoutLegacy {
		d.AdopterFirst = next()
		d.AdopterLast = next()
		d.ContactFirst = next()
		d.ContactLast = next()
	} else {
		next() // county, unused
		d.ContactFirst = next()
		d.ContactLast = next()
		d.AdopterFirst = next()
		d.AdopterLast = next()
	}
	d.AdopterAddress = next()
	d.AdopterCity = next()
	d.AdopterState = next()
	d.AdopterZip = next()
	d.AdopterArea = next()
	d.AdopterEmail = next()
	d.HomePhone = next()
	d.WorkPhone = next()
	d.CellPhone = next()
	d.AdoptionStatus = next()
	d.DispositionDate = next()

	if strings.EqualFold(d.Microchip, "none") {
		d.Microchip = ""
	}

	if !reNumber.MatchString(number) {
		return d, fmt.Errorf("%w %q", ErrInvalidNumber, number)
	}
	n, err := strconv.Atoi(number)
	if err != nil || n == 0 || n > MaxNumber {
		return d, fmt.Errorf("%w %q", ErrInvalidNumber, number)
	}
	d.Number = n
	return d, nil
}

// HasChip reports whether a microchip number is recorded.
func (d *Dog) HasChip() bool { return d.Microchip != "" }

// Chip returns the validated, normalised microchip number. A record without
// a chip returns ErrNoChip; a recorded but malformed chip is its own error.
// The two states get different treatment downstream, so callers must not
// collapse them.
func (d *Dog) Chip() (string, error) {
	if !d.HasChip() {
		return "", ErrNoChip
	}
	chip, ok := CheckChip(d.Microchip)
	if !ok {
		return "", fmt.Errorf("invalid microchip %q", d.Microchip)
	}
	return chip, nil
}

// IsEuthanized reports whether the status field mentions euthanasia.
// Beware of leaning on any of these status predicates - the database is
// none too accurate.
func (d *Dog) IsEuthanized() bool { return strings.Contains(d.Status, "Euthanized") }

// IsDied reports whether the status field mentions death.
func (d *Dog) IsDied() bool { return strings.Contains(d.Status, "Died") }

// IsDead reports whether the dog died or was euthanized.
func (d *Dog) IsDead() bool { return d.IsEuthanized() || d.IsDied() }

// IsReturned reports whether the dog was returned to its owner.
func (d *Dog) IsReturned() bool { return strings.Contains(d.Status, "Returned") }

// IsAdopted reports whether the dog is adopted. A dog is adopted iff an
// adopter first or last name is recorded. Checking the status field for
// "Adopted" sounds more obvious but is not reliable in our data.
func (d *Dog) IsAdopted() bool { return d.AdopterFirst != "" || d.AdopterLast != "" }

// ResponsibleParty returns the person to contact about this record.
// The primary contact is preferred, then the area contact, then the
// location, then the originating area - the last two aren't people, but
// they are the best the record offers.
func (d *Dog) ResponsibleParty() string {
	if d.PrimaryContactFirst != "" || d.PrimaryContactLast != "" {
		return d.PrimaryContactFirst + " " + d.PrimaryContactLast
	}
	if d.ContactFirst != "" || d.ContactLast != "" {
		return d.ContactFirst + " " + d.ContactLast
	}
	if d.Location != "" {
		return d.Location
	}
	return d.OriginatingArea
}

// AcquiredAfter reports whether the dog was acquired in or after the given
// year. ok is false when the acquisition date is blank or unparseable; the
// caller decides whether that is worth reporting. A dateless record counts
// as acquired after any year so it is never silently discarded.
func (d *Dog) AcquiredAfter(year int) (after, ok bool) {
	y, _, _, ok := ParseDate(d.DateAcquired)
	if !ok {
		return true, false
	}
	return y >= year, true
}

// VerifySex checks the sex field, forcing "Male" and reporting when invalid.
func (d *Dog) VerifySex(rep *Report) bool {
	if CheckSex(d.Sex) {
		return true
	}
	rep.Add(d, fmt.Sprintf("invalid sex %q", d.Sex))
	d.Sex = "Male"
	return false
}

// VerifySpayNeuter checks the spay/neuter field, forcing "Yes" and
// reporting when invalid.
func (d *Dog) VerifySpayNeuter(rep *Report) bool {
	if CheckSpayNeuter(d.Neuter) {
		return true
	}
	rep.Add(d, fmt.Sprintf("invalid spay/neuter %q", d.Neuter))
	d.Neuter = "Yes"
	return false
}

// verifyPhone normalises one of the three phone fields in place. A failed
// match clears the field; quiet suppresses the report but not the clearing.
func (d *Dog) verifyPhone(which string, phone *string, rep *Report, quiet bool) bool {
	normalised, ok := CheckPhone(*phone)
	if !ok {
		if !quiet {
			rep.Add(d, fmt.Sprintf("invalid %s phone %q", which, *phone))
		}
		*phone = ""
		return false
	}
	*phone = normalised
	return true
}

// VerifyHomePhone normalises the home phone, clearing and reporting on failure.
func (d *Dog) VerifyHomePhone(rep *Report) bool {
	return d.verifyPhone("home", &d.HomePhone, rep, false)
}

// VerifyWorkPhone normalises the work phone, clearing silently on failure.
func (d *Dog) VerifyWorkPhone(rep *Report) bool {
	return d.verifyPhone("work", &d.WorkPhone, rep, true)
}

// VerifyCellPhone normalises the cell phone, clearing silently on failure.
func (d *Dog) VerifyCellPhone(rep *Report) bool {
	return d.verifyPhone("cell", &d.CellPhone, rep, true)
}

// VerifyAdopterZip checks the adopter zip, clearing and reporting on failure.
func (d *Dog) VerifyAdopterZip(rep *Report) bool {
	if d.AdopterZip == "" {
		rep.Add(d, "zip code cannot be blank")
		return false
	}
	if CheckZip(d.AdopterZip) {
		return true
	}
	rep.Add(d, fmt.Sprintf("invalid zip code %q", d.AdopterZip))
	d.AdopterZip = ""
	return false
}

// VerifyAdopterEmail checks the adopter email, clearing and reporting on failure.
func (d *Dog) VerifyAdopterEmail(rep *Report) bool {
	if d.AdopterEmail == "" {
		rep.Add(d, "email address cannot be blank")
		return false
	}
	if CheckEmail(d.AdopterEmail) {
		return true
	}
	rep.Add(d, fmt.Sprintf("invalid email address %q", d.AdopterEmail))
	d.AdopterEmail = ""
	return false
}

// VerifyAdopterState checks the adopter state. Blank coerces to "CA";
// anything else invalid clears the field and reports.
func (d *Dog) VerifyAdopterState(rep *Report) bool {
	state, ok := CheckState(d.AdopterState)
	if !ok {
		rep.Add(d, fmt.Sprintf("invalid state %q", d.AdopterState))
		d.AdopterState = ""
		return false
	}
	d.AdopterState = state
	return true
}

// VerifyAll checks and, where possible, repairs the whole record.
//
// Sex, spay/neuter, and the date-of-birth derivation run unconditionally.
// The adoption fields branch on whether an adopter name is present: with a
// name, the email, home phone, zip, and state must be valid (cell and work
// phones are normalised quietly); without one, every adopter field must be
// blank. The adopter-name test stands in for the status field here because
// the status is unreliable - see IsAdopted.
//
// The aggregate result is advisory: callers log it, nothing aborts on it.
func (d *Dog) VerifyAll(rep *Report) bool {
	ok := true
	ok = d.VerifySex(rep) && ok
	ok = d.VerifySpayNeuter(rep) && ok

	if _, valid := Birthday(d.Age, d.DateAcquired); !valid {
		rep.Add(d, "has no valid DOB")
		ok = false
	}

	if d.IsAdopted() {
		ok = d.VerifyAdopterEmail(rep) && ok
		ok = d.VerifyHomePhone(rep) && ok
		d.VerifyCellPhone(rep)
		d.VerifyWorkPhone(rep)
		ok = d.VerifyAdopterZip(rep) && ok
		ok = d.VerifyAdopterState(rep) && ok
	} else {
		blank := d.AdopterEmail == "" && d.AdopterFirst == "" && d.AdopterLast == "" &&
			d.CellPhone == "" && d.HomePhone == "" && d.WorkPhone == "" &&
			d.AdopterAddress == "" && d.AdopterState == "" && d.AdopterZip == ""
		if !blank {
			rep.Add(d, "adoption information should be blank")
			ok = false
		}
	}
	return ok
}
