package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/goldengate-rescue/chipsync/internal/core/domain"
)

// UpdateBuilder turns records flagged by the reconciler into the update set
// destined for the external registration service.
type UpdateBuilder struct {
	org domain.Org

	// now supplies the service date; overridable in tests.
	now func() time.Time
}

// NewUpdateBuilder creates a builder registering under the given identity.
func NewUpdateBuilder(org domain.Org) *UpdateBuilder {
	return &UpdateBuilder{org: org, now: time.Now}
}

// Build collects an update for every flagged record in the registry.
// Flagged records get the full field verification here, and only here -
// these are the rows leaving the building, so this is where data quality
// actually matters. A flagged dog with no chip or an invalid chip cannot be
// registered and is reported instead.
func (b *UpdateBuilder) Build(reg *domain.Registry, rep *domain.Report) *domain.UpdateSet {
	set := domain.NewUpdateSet()
	serviceDate := b.now().Format("2006-01-02")
	for _, d := range reg.Dogs() {
		if !d.UpdateRequired {
			continue
		}
		chip, err := d.Chip()
		if errors.Is(err, domain.ErrNoChip) {
			rep.Add(d, "requires update but has no microchip")
			continue
		}
		d.VerifyAll(rep)
		if err != nil {
			rep.Add(d, fmt.Sprintf("has invalid microchip %q", d.Microchip))
			continue
		}
		// A duplicate chip is reported by Add; the first record keeps the slot.
		_ = set.Add(domain.BuildUpdate(d, chip, b.org, serviceDate), d, rep)
	}
	return set
}
