package schedule

import (
	"sort"
	"time"

	"marlow-cli/internal/model"
)

// WindowAll disables the rolling-window cutoff: every event passes
// regardless of date. Any windowDays <= 0 behaves the same way.
const WindowAll = 0

// WindowPresets are the canonical rolling-window sizes offered by the CLI
// and TUI, in days. WindowAll is the "no cutoff" sentinel.
var WindowPresets = []int{7, 14, 30, 90, 180, WindowAll}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of next month is last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return daysInMonth(year, month)
}

// MonthGrid lays out a month as a flat Sun..Sat grid: empty-string filler
// cells up to the weekday of day 1, one ISO date per calendar day, then
// trailing filler so the length is a multiple of 7. Filler cells hold no
// events and render as blanks.
func MonthGrid(year int, month time.Month) []string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lead := int(first.Weekday()) // 0 = Sunday
	days := daysInMonth(year, month)

	grid := make([]string, 0, ((lead+days)/7+1)*7)
	for i := 0; i < lead; i++ {
		grid = append(grid, "")
	}
	for d := 1; d <= days; d++ {
		grid = append(grid, time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Format(isoDate))
	}
	for len(grid)%7 != 0 {
		grid = append(grid, "")
	}
	return grid
}

// entryLess orders events within a single day: all-day entries first, then
// ascending HH:MM. Zero-padded times compare chronologically as strings.
func entryLess(a, b model.Event) bool {
	if a.AllDay != b.AllDay {
		return a.AllDay
	}
	if a.AllDay {
		return false // equal; keep input order
	}
	return a.Time < b.Time
}

// EventsForDay selects events dated iso, ordered all-day first then by time.
// Events sharing the same slot keep their input order.
func EventsForDay(events []model.Event, iso string) []model.Event {
	var out []model.Event
	for _, ev := range events {
		if ev.Date == iso {
			out = append(out, ev)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return entryLess(out[i], out[j]) })
	return out
}

// Rolling filters events to the closed window [today, today+windowDays] and
// sorts them by date, then by the per-day ordering. windowDays <= 0 means
// no cutoff (every event passes, including past dates).
func Rolling(events []model.Event, windowDays int) []model.Event {
	var out []model.Event
	if windowDays <= 0 {
		out = append(out, events...)
	} else {
		start := Today()
		end, err := AddDays(start, windowDays)
		if err != nil {
			return nil
		}
		for _, ev := range events {
			if ev.Date >= start && ev.Date <= end {
				out = append(out, ev)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return entryLess(out[i], out[j])
	})
	return out
}

// Expand produces the closed interval of ISO dates from start through end.
// When multi is false or end precedes start, the result is just start.
func Expand(start, end string, multi bool) ([]string, error) {
	if _, err := ParseDate(start); err != nil {
		return nil, err
	}
	if !multi || end == "" || end < start {
		return []string{start}, nil
	}
	n, err := DaysBetween(start, end)
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0, n+1)
	for i := 0; i <= n; i++ {
		d, err := AddDays(start, i)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}
