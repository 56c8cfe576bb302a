// Package reconcile compares the persisted Summary snapshot with the live workbook state.
package reconcile

import (
	"github.com/ukaji3/xlsummary-go/pkg/xlsummary/models"
)

// Normalize drops records without a name from a previously persisted snapshot.
// A nil or single-row snapshot is returned as a well-formed list.
func Normalize(previous models.Snapshot) models.Snapshot {
	out := make(models.Snapshot, 0, len(previous))
	for _, rec := range previous {
		if rec.Name == "" {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Reconcile classifies every name of previous and current and returns the
// snapshot to persist, which is always a copy of current in current order.
//
// Duplicate names in previous resolve to the last occurrence. Removed
// records are reported in the order their names last appear in previous.
func Reconcile(previous, current models.Snapshot) (models.ChangeSet, models.Snapshot) {
	previous = Normalize(previous)

	prevValues := make(map[string]models.Value, len(previous))
	lastIndex := make(map[string]int, len(previous))
	for i, rec := range previous {
		prevValues[rec.Name] = rec.UnitCost
		lastIndex[rec.Name] = i
	}

	var changes models.ChangeSet
	seen := make(map[string]struct{}, len(current))
	for _, rec := range current {
		seen[rec.Name] = struct{}{}
		old, ok := prevValues[rec.Name]
		if !ok {
			changes.Added = append(changes.Added, rec)
			continue
		}
		if !old.Equal(rec.UnitCost) {
			changes.Updated = append(changes.Updated, models.Update{
				Name: rec.Name,
				Old:  old,
				New:  rec.UnitCost,
			})
		}
	}

	for i, rec := range previous {
		if lastIndex[rec.Name] != i {
			continue
		}
		if _, ok := seen[rec.Name]; ok {
			continue
		}
		changes.Removed = append(changes.Removed, models.SheetRecord{
			Name:     rec.Name,
			UnitCost: prevValues[rec.Name],
		})
	}

	result := make(models.Snapshot, len(current))
	copy(result, current)
	return changes, result
}
