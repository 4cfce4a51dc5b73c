package cyclecast

import (
	"sort"
	"time"
)

// CycleRecord is one recorded menstrual cycle as supplied by the caller.
// The engine treats records as immutable: it never mutates or stores them.
type CycleRecord struct {
	// Start is the first day of the period. Required.
	Start time.Time `json:"start"`
	// End is the day the period had ended, so End−Start is the period
	// duration in days. Zero while the period is still ongoing.
	End time.Time `json:"end,omitzero"`
	// Confirmed marks a user-confirmed record. It is a caller-side filter
	// and does not change the math; callers who only trust confirmed
	// records should filter before calling.
	Confirmed bool `json:"confirmed"`
}

// HasEnded reports whether the record carries an end date.
func (r CycleRecord) HasEnded() bool {
	return !r.End.IsZero()
}

// sortedByStart returns a copy of records in ascending start order. The gap
// arithmetic is only meaningful on sorted history, so the engine sorts
// defensively instead of trusting caller order.
func sortedByStart(records []CycleRecord) []CycleRecord {
	sorted := make([]CycleRecord, 0, len(records))
	sorted = append(sorted, records...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})
	return sorted
}
