package cyclecast

import (
	"math"
	"time"
)

// Calendar is the date arithmetic used by the engine. Predictions only ever
// deal in whole calendar days, so every platform-specific concern (DST
// transitions, month lengths, leap years, locale) is confined to the three
// operations here and substitutable in one place.
type Calendar interface {
	// StartOfDay truncates t to midnight of its calendar day.
	StartOfDay(t time.Time) time.Time
	// AddDays moves t by the given number of calendar days, not fixed
	// 24-hour intervals.
	AddDays(t time.Time, days int) time.Time
	// DayDifference returns the number of calendar days from from to to,
	// negative when to precedes from.
	DayDifference(from time.Time, to time.Time) int
}

// LocationCalendar implements Calendar with days anchored to midnight in a
// fixed location. The zero value uses UTC.
type LocationCalendar struct {
	Location *time.Location
}

func (c LocationCalendar) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

func (c LocationCalendar) StartOfDay(t time.Time) time.Time {
	localized := t.In(c.location())
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, c.location())
}

func (c LocationCalendar) AddDays(t time.Time, days int) time.Time {
	return c.StartOfDay(t.AddDate(0, 0, days))
}

func (c LocationCalendar) DayDifference(from time.Time, to time.Time) int {
	elapsed := c.StartOfDay(to).Sub(c.StartOfDay(from))
	// Rounding absorbs the 23/25-hour days around DST transitions.
	return int(math.Round(elapsed.Hours() / 24))
}
