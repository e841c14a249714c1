package services

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/liftworks/strengthdb/internal/models"
	"github.com/liftworks/strengthdb/internal/types"
)

// SetInput is the raw shape of one set as submitted by a client. Weight, reps
// and set number tolerate junk (strings, floats, negatives); normalization
// coerces them to safe values and never fails.
type SetInput struct {
	ID        string           `json:"id,omitempty"`
	SetNumber types.FlexNumber `json:"setNumber"`
	Weight    types.FlexNumber `json:"weight"`
	Reps      types.FlexNumber `json:"reps"`
	Done      bool             `json:"done"`
}

// NormalizeSet sanitizes a single raw set: a fresh uuid when no id was
// supplied, weight/reps clamped to non-negative integers (non-finite input
// treated as 0), set number defaulted to 1.
func NormalizeSet(in SetInput) models.SetEntry {
	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}

	setNumber := clampToInt(in.SetNumber.Float64())
	if setNumber < 1 {
		setNumber = 1
	}

	return models.SetEntry{
		SetID:     id,
		SetNumber: setNumber,
		Weight:    clampToInt(in.Weight.Float64()),
		Reps:      clampToInt(in.Reps.Float64()),
		Done:      in.Done,
	}
}

// NormalizeSets sanitizes and orders a raw set list. The last entry for a
// given set number wins; the result is sorted ascending by set number.
func NormalizeSets(ins []SetInput) []models.SetEntry {
	entries := make([]models.SetEntry, 0, len(ins))
	for _, in := range ins {
		entries = append(entries, NormalizeSet(in))
	}
	return dedupeAndSort(entries)
}

// NormalizeEntries re-normalizes an already-persisted set list the same way
// NormalizeSets treats raw input, preserving existing ids.
func NormalizeEntries(entries []models.SetEntry) []models.SetEntry {
	out := make([]models.SetEntry, 0, len(entries))
	for _, e := range entries {
		if e.SetID == "" {
			e.SetID = uuid.NewString()
		}
		if e.SetNumber < 1 {
			e.SetNumber = 1
		}
		if e.Weight < 0 {
			e.Weight = 0
		}
		if e.Reps < 0 {
			e.Reps = 0
		}
		out = append(out, e)
	}
	return dedupeAndSort(out)
}

func dedupeAndSort(entries []models.SetEntry) []models.SetEntry {
	byNumber := make(map[int]models.SetEntry, len(entries))
	for _, e := range entries {
		byNumber[e.SetNumber] = e
	}

	out := make([]models.SetEntry, 0, len(byNumber))
	for _, e := range byNumber {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SetNumber < out[j].SetNumber
	})
	return out
}

func clampToInt(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return int(math.Trunc(v))
}

// setsEqual performs the deep structural comparison the idempotence
// short-circuit relies on, ids included. Both lists must already be
// normalized.
func setsEqual(a, b []models.SetEntry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].SetID != b[i].SetID ||
			a[i].SetNumber != b[i].SetNumber ||
			a[i].Weight != b[i].Weight ||
			a[i].Reps != b[i].Reps ||
			a[i].Done != b[i].Done {
			return false
		}
	}
	return true
}
