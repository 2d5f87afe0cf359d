package domain

import (
	"fmt"
	"sort"
)

// Registry holds every dog record from one snapshot. The map keyed by
// registry number owns the records; the chip map is a secondary index over
// the same records, holding only the ones with a chip recorded. A registry
// is read-only after loading, except for the UpdateRequired flag on the
// records it contains.
type Registry struct {
	byNumber map[int]*Dog
	byChip   map[string]*Dog
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byNumber: make(map[int]*Dog),
		byChip:   make(map[string]*Dog),
	}
}

// Add inserts a dog, enforcing uniqueness of the registry number and of any
// non-blank chip. Violations are reported against the record and returned as
// ErrDuplicateNumber or ErrDuplicateChip; the record is rejected before
// either index is touched.
func (r *Registry) Add(d *Dog, rep *Report) error {
	if r.ByNumber(d.Number) != nil {
		rep.Add(d, "already in collection")
		return fmt.Errorf("%w %d", ErrDuplicateNumber, d.Number)
	}
	if d.HasChip() {
		if other := r.ByChip(d.Microchip); other != nil {
			rep.Add(d, fmt.Sprintf("and %s #%d have the same microchip", other.Name, other.Number))
			return fmt.Errorf("%w %q", ErrDuplicateChip, d.Microchip)
		}
	}
	r.byNumber[d.Number] = d
	if d.HasChip() {
		r.byChip[d.Microchip] = d
	}
	return nil
}

// ByNumber returns the dog with the given registry number, or nil.
func (r *Registry) ByNumber(n int) *Dog { return r.byNumber[n] }

// ByChip returns the dog with the given microchip number, or nil. A dog
// existing does not guarantee it has a chip.
func (r *Registry) ByChip(chip string) *Dog { return r.byChip[chip] }

// Count returns the number of dogs in the registry.
func (r *Registry) Count() int { return len(r.byNumber) }

// ChipCount returns the number of dogs with a recorded microchip.
func (r *Registry) ChipCount() int { return len(r.byChip) }

// Dogs returns every record ordered by ascending registry number. The
// reconciliation passes and the output files iterate through this, so one
// input always produces one output, byte for byte.
func (r *Registry) Dogs() []*Dog {
	dogs := make([]*Dog, 0, len(r.byNumber))
	for _, d := range r.byNumber {
		dogs = append(dogs, d)
	}
	sort.Slice(dogs, func(i, j int) bool { return dogs[i].Number < dogs[j].Number })
	return dogs
}
