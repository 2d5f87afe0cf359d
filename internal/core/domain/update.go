package domain

import "fmt"

// UpdateHeader is the column set the external registration service requires.
var UpdateHeader = []string{
	"First Name", "Last Name", "Email Address", "Address 1", "Address 2",
	"City", "State", "Zip Code", "Home Phone", "Work Phone", "Cell Phone",
	"Pet Name", "Microchip Number", "Service Date", "Date of Birth",
	"Species", "Sex", "Spayed/Neutered", "Primary Breed", "Secondary Breed",
	"Rescue Group Email", "Notes",
}

// Org is the organisation's registration identity. When a dog is not yet
// adopted it is registered under these values, because the external service
// refuses blank contact fields even for animals still in our care.
type Org struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Species      string
	PrimaryBreed string
}

// DefaultOrg returns the hardwired registration identity, used when the
// config file does not override it.
func DefaultOrg() Org {
	return Org{
		FirstName:    "Golden Gate",
		LastName:     "Retriever Rescue",
		Email:        "microchips@goldengaterescue.org",
		Phone:        "4155550140",
		Species:      "Dog",
		PrimaryBreed: "Golden Retriever",
	}
}

// Update is the external-service-shaped record for one dog's registration.
// It is an independent value, not a view into the Dog it was built from.
type Update struct {
	FirstName   string
	LastName    string
	Email       string
	Address1    string
	Address2    string
	City        string
	State       string
	Zip         string
	HomePhone   string
	WorkPhone   string
	CellPhone   string
	PetName     string
	Microchip   string
	ServiceDate string
	DateOfBirth string
	Species     string
	Sex         string
	SpayNeuter  string
	Breed       string
	SecondBreed string
	RescueEmail string
	Notes       string
}

// BuildUpdate shapes a dog record for the external service. chip is the
// validated (normalised) microchip number, which may differ from the raw
// value still stored on the record. serviceDate is today's date in
// YYYY-MM-DD form - the stored disposition date is deliberately ignored.
//
// An adopted dog's contact fields are copied verbatim; an un-adopted dog is
// registered under the organisation's identity with a blank address. The
// second address line is always blank (the registry has no such field), and
// spay/neuter is always reported "Yes": the source field records the dog's
// condition on intake, and every dog is fixed before adoption.
func BuildUpdate(d *Dog, chip string, org Org, serviceDate string) Update {
	u := Update{
		PetName:     d.Name,
		Microchip:   chip,
		ServiceDate: serviceDate,
		Species:     org.Species,
		Sex:         d.Sex,
		SpayNeuter:  "Yes",
		Breed:       org.PrimaryBreed,
		RescueEmail: org.Email,
		Notes:       fmt.Sprintf("Rescue #%d", d.Number),
	}
	if dob, ok := Birthday(d.Age, d.DateAcquired); ok {
		u.DateOfBirth = dob
	}
	if d.IsAdopted() {
		u.FirstName = d.AdopterFirst
		u.LastName = d.AdopterLast
		u.Email = d.AdopterEmail
		u.Address1 = d.AdopterAddress
		u.City = d.AdopterCity
		u.State = d.AdopterState
		u.Zip = d.AdopterZip
		u.HomePhone = d.HomePhone
		u.WorkPhone = d.WorkPhone
		u.CellPhone = d.CellPhone
	} else {
		u.FirstName = org.FirstName
		u.LastName = org.LastName
		u.Email = org.Email
		u.HomePhone = org.Phone
	}
	return u
}

// Row renders the update as a file row matching UpdateHeader.
func (u Update) Row() []string {
	return []string{
		u.FirstName, u.LastName, u.Email, u.Address1, u.Address2,
		u.City, u.State, u.Zip, u.HomePhone, u.WorkPhone, u.CellPhone,
		u.PetName, u.Microchip, u.ServiceDate, u.DateOfBirth,
		u.Species, u.Sex, u.SpayNeuter, u.Breed, u.SecondBreed,
		u.RescueEmail, u.Notes,
	}
}

// UpdateSet collects updates keyed by microchip. Chips must be unique
// across the output file; on a collision the first record wins and the
// later one is reported.
type UpdateSet struct {
	byChip  map[string]Update
	ordered []Update
}

// NewUpdateSet creates an empty update set.
func NewUpdateSet() *UpdateSet {
	return &UpdateSet{byChip: make(map[string]Update)}
}

// Add inserts an update. A duplicate chip is reported against d (the dog
// the update was built from) and returned as ErrDuplicateChip; the first
// insertion wins.
func (s *UpdateSet) Add(u Update, d *Dog, rep *Report) error {
	if _, dup := s.byChip[u.Microchip]; dup {
		rep.Add(d, fmt.Sprintf("duplicate microchip %q", u.Microchip))
		return fmt.Errorf("%w %q", ErrDuplicateChip, u.Microchip)
	}
	s.byChip[u.Microchip] = u
	s.ordered = append(s.ordered, u)
	return nil
}

// Len returns the number of updates in the set.
func (s *UpdateSet) Len() int { return len(s.ordered) }

// Rows renders every update, in insertion order, as file rows.
func (s *UpdateSet) Rows() [][]string {
	rows := make([][]string, 0, len(s.ordered))
	for _, u := range s.ordered {
		rows = append(rows, u.Row())
	}
	return rows
}
