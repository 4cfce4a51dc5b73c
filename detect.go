package cyclecast

import (
	"sort"
	"time"
)

// DayEntry is one day of period tracking, the raw form history arrives in
// when the caller logs day by day instead of whole cycles.
type DayEntry struct {
	Date   time.Time `json:"date"`
	Period bool      `json:"period"`
}

// newCycleGapDays is the minimum run of non-period days separating two
// periods; a period day after a shorter gap still belongs to the previous
// period (spotting, irregular flow).
const newCycleGapDays = 5

// maxPeriodRunDays caps how far a period run is followed; anything longer is
// treated as mislogged days, not one period.
const maxPeriodRunDays = 10

// DetectCycleStarts finds the cycle start dates in day-grained entries: every
// period day preceded by at least newCycleGapDays non-period days opens a new
// cycle. Entries may arrive in any order and use UTC calendar days.
func DetectCycleStarts(entries []DayEntry) []time.Time {
	return detectCycleStarts(LocationCalendar{}, entries)
}

func detectCycleStarts(calendar Calendar, entries []DayEntry) []time.Time {
	if len(entries) == 0 {
		return nil
	}

	sorted := sortedByDate(calendar, entries)

	starts := make([]time.Time, 0)
	var previousPeriodDay time.Time

	for _, entry := range sorted {
		if !entry.Period {
			continue
		}

		if previousPeriodDay.IsZero() {
			starts = append(starts, entry.Date)
			previousPeriodDay = entry.Date
			continue
		}

		gapDays := calendar.DayDifference(previousPeriodDay, entry.Date) - 1
		if gapDays >= newCycleGapDays {
			starts = append(starts, entry.Date)
		}
		previousPeriodDay = entry.Date
	}

	return starts
}

// RecordsFromDayEntries folds day-grained entries into cycle records: one
// record per detected cycle start, with End set past the last day of the
// consecutive period run so End−Start is the period duration. A run still
// touching the newest entry is left open (End zero), since the period may be
// ongoing.
func RecordsFromDayEntries(entries []DayEntry) []CycleRecord {
	return recordsFromDayEntries(LocationCalendar{}, entries)
}

func recordsFromDayEntries(calendar Calendar, entries []DayEntry) []CycleRecord {
	if len(entries) == 0 {
		return nil
	}

	sorted := sortedByDate(calendar, entries)
	starts := detectCycleStarts(calendar, sorted)
	if len(starts) == 0 {
		return nil
	}

	periodByDate := make(map[string]bool, len(sorted))
	for _, entry := range sorted {
		periodByDate[calendar.StartOfDay(entry.Date).Format("2006-01-02")] = entry.Period
	}
	newestDay := calendar.StartOfDay(sorted[len(sorted)-1].Date)

	records := make([]CycleRecord, 0, len(starts))
	for _, start := range starts {
		runDays := 0
		for offset := 0; offset <= maxPeriodRunDays; offset++ {
			day := calendar.AddDays(start, offset)
			if !periodByDate[day.Format("2006-01-02")] {
				break
			}
			runDays++
		}

		record := CycleRecord{Start: start}
		lastRunDay := calendar.AddDays(start, runDays-1)
		if lastRunDay.Before(newestDay) {
			record.End = calendar.AddDays(start, runDays)
		}
		records = append(records, record)
	}

	return records
}

func sortedByDate(calendar Calendar, entries []DayEntry) []DayEntry {
	sorted := make([]DayEntry, 0, len(entries))
	for _, entry := range entries {
		entry.Date = calendar.StartOfDay(entry.Date)
		sorted = append(sorted, entry)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}
