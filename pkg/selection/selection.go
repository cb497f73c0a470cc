// Package selection keeps the selected record consistent with the filtered
// subset.
package selection

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-houseprint/pkg/record"
)

// ErrNotInSubset is returned when a user picks an id that the current filters
// exclude.
var ErrNotInSubset = errors.New("selection: record is not in the filtered subset")

// Reconcile returns prevID when the subset still contains it, otherwise the id
// of the first record in subset, or "" when subset is empty.
func Reconcile(prevID string, subset []record.Record) string {
	if len(subset) == 0 {
		return ""
	}
	if prevID != "" && contains(subset, prevID) {
		return prevID
	}
	return subset[0].ID()
}

// Validate accepts id only when subset contains it.
func Validate(id string, subset []record.Record) error {
	if !contains(subset, id) {
		return fmt.Errorf("%w: %q", ErrNotInSubset, id)
	}
	return nil
}

func contains(subset []record.Record, id string) bool {
	for _, rec := range subset {
		if rec.ID() == id {
			return true
		}
	}
	return false
}
