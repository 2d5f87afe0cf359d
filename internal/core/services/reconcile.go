package services

import (
	"fmt"

	"github.com/goldengate-rescue/chipsync/internal/core/domain"
	"github.com/goldengate-rescue/chipsync/internal/logger"
)

// Reconciler compares two registry snapshots. The database never tells us
// which dogs need their chip registration refreshed; we have to infer it
// from what changed between dumps, while flagging the data-entry noise we
// trip over along the way.
type Reconciler struct{}

// NewReconciler creates a reconciler.
func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// Compare runs the reconciliation passes over old and new, in a fixed
// order so the error report reads the same way every run. It marks records
// in new that need an external update and appends issues to rep; it writes
// no files itself.
//
// The passes only read status fields established at load time - no pass
// depends on another's mutations - but the report ordering is part of the
// contract, so they stay sequential.
func (r *Reconciler) Compare(oldReg, newReg *domain.Registry, cutoff int, rep *domain.Report) {
	logger.Info("comparing %d old dogs with %d new dogs ...", oldReg.Count(), newReg.Count())

	// Records are never deleted upstream, so every old dog should still be
	// in the new snapshot. Dogs disappear anyway, more often than you would
	// think; only the ones with a registered chip are worth a report.
	for _, oldDog := range oldReg.Dogs() {
		if newReg.ByNumber(oldDog.Number) == nil && oldDog.HasChip() {
			rep.Add(oldDog, fmt.Sprintf("has microchip %s but is not found in new dog report", oldDog.Microchip))
		}
	}

	// New acquisitions and chip changes. A dog in new but not old was just
	// acquired and must have a chip recorded; a chip appearing on a known
	// dog means the contact entered it late. Either way the external
	// service needs the record. A chip that CHANGED is only reported -
	// the old registration cannot be fixed from here.
	for _, newDog := range newReg.Dogs() {
		if newDog.IsDead() || newDog.IsReturned() {
			continue
		}
		oldDog := oldReg.ByNumber(newDog.Number)
		switch {
		case oldDog == nil:
			logger.Info("dog %s #%d was acquired", newDog.Name, newDog.Number)
			if !newDog.HasChip() {
				rep.Add(newDog, "no microchip number recorded")
			} else {
				newDog.UpdateRequired = true
			}
		case !oldDog.HasChip() && newDog.HasChip():
			logger.Info("dog %s #%d microchip was added", newDog.Name, newDog.Number)
			newDog.UpdateRequired = true
		case oldDog.Microchip != newDog.Microchip:
			rep.Add(newDog, fmt.Sprintf("microchip number changed - was %q is %q", oldDog.Microchip, newDog.Microchip))
		}
	}

	// Status says adopted but no adopter is recorded. Usually a dog adopted
	// by a volunteer - the web form drops the adopter fields on those.
	for _, newDog := range newReg.Dogs() {
		if newDog.Status == "Adopted" && newDog.AdopterFirst == "" && newDog.AdopterLast == "" {
			rep.Add(newDog, newDog.Status+" but no adopting party is recorded")
		}
	}

	// The converse: an adopter is recorded but the status disagrees. Dead
	// and returned dogs are excluded - some records show a death AFTER an
	// adoption, and whatever that means, it is not ours to untangle.
	for _, newDog := range newReg.Dogs() {
		if newDog.AdopterFirst == "" && newDog.AdopterLast == "" {
			continue
		}
		if newDog.Status == "Adopted" || newDog.Status == "Adoption Pending" {
			continue
		}
		if newDog.IsDead() || newDog.IsReturned() {
			continue
		}
		rep.Add(newDog, "adopting party is recorded but status is "+newDog.Status)
	}

	// A disposition date normally means adopted, returned, or died; if the
	// status still says the dog is in evaluation or available, one of the
	// two fields is wrong. "0000-00-00" is a placeholder, not a date.
	for _, newDog := range newReg.Dogs() {
		if newDog.DispositionDate == "" || newDog.DispositionDate == "0000-00-00" {
			continue
		}
		if newDog.Status == "Evaluation" || newDog.Status == "Available" {
			rep.Add(newDog, fmt.Sprintf("disposition date is %s but status is %s", newDog.DispositionDate, newDog.Status))
		}
	}

	// Fresh adoptions need registering. A dog adopted in both snapshots
	// whose adopter name changed is only reported.
	// TODO: should an adopter change force an update too? Pending an answer
	// from the registration coordinator; until then it is report-only.
	for _, newDog := range newReg.Dogs() {
		if newDog.IsDead() || newDog.IsReturned() || !newDog.IsAdopted() {
			continue
		}
		oldDog := oldReg.ByNumber(newDog.Number)
		if oldDog != nil && oldDog.IsAdopted() {
			if oldDog.AdopterFirst != newDog.AdopterFirst || oldDog.AdopterLast != newDog.AdopterLast {
				rep.Add(oldDog, "adopting family changed")
			}
		} else {
			logger.Info("dog %s #%d was adopted by %s %s", newDog.Name, newDog.Number, newDog.AdopterFirst, newDog.AdopterLast)
			newDog.UpdateRequired = true
		}
	}

	// Dogs back in our care: adopted last time, not adopted now. The
	// registration must revert to the organisation.
	for _, newDog := range newReg.Dogs() {
		oldDog := oldReg.ByNumber(newDog.Number)
		if oldDog == nil || !oldDog.IsAdopted() {
			continue
		}
		if !newDog.IsAdopted() {
			logger.Info("dog %s #%d was returned to the rescue", newDog.Name, newDog.Number)
			newDog.UpdateRequired = true
		}
	}

	// Chip audit: every live dog carried across both snapshots and acquired
	// after the cutoff is supposed to have a chip by now. Newly acquired
	// dogs were already covered above.
	for _, newDog := range newReg.Dogs() {
		if newDog.IsDead() || newDog.IsReturned() || newDog.HasChip() {
			continue
		}
		if oldReg.ByNumber(newDog.Number) == nil {
			continue
		}
		if after, ok := newDog.AcquiredAfter(cutoff); ok && after {
			rep.Add(newDog, "should have a microchip")
		}
	}
}
