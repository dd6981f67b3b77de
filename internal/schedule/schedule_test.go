package schedule

import (
	"testing"
	"time"

	"marlow-cli/internal/model"
)

func TestMonthGridShape(t *testing.T) {
	t.Parallel()

	for year := 2023; year <= 2026; year++ {
		for m := time.January; m <= time.December; m++ {
			grid := MonthGrid(year, m)
			if len(grid)%7 != 0 {
				t.Fatalf("%d-%d: grid length %d not a multiple of 7", year, m, len(grid))
			}

			nonEmpty := 0
			firstIdx := -1
			for i, cell := range grid {
				if cell != "" {
					if firstIdx == -1 {
						firstIdx = i
					}
					nonEmpty++
				}
			}
			if want := DaysInMonth(year, m); nonEmpty != want {
				t.Fatalf("%d-%d: %d day cells, want %d", year, m, nonEmpty, want)
			}
			first := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
			if firstIdx != int(first.Weekday()) {
				t.Fatalf("%d-%d: first day at index %d, want weekday %d", year, m, firstIdx, int(first.Weekday()))
			}
		}
	}
}

func TestMonthGridJune2024(t *testing.T) {
	t.Parallel()

	// June 2024 starts on a Saturday: 6 leading fillers, 30 days, 6 trailing.
	grid := MonthGrid(2024, time.June)
	if len(grid) != 42 {
		t.Fatalf("expected 42 cells; got %d", len(grid))
	}
	for i := 0; i < 6; i++ {
		if grid[i] != "" {
			t.Fatalf("expected filler at index %d; got %q", i, grid[i])
		}
	}
	if grid[6] != "2024-06-01" {
		t.Fatalf("expected 2024-06-01 at index 6; got %q", grid[6])
	}
	if grid[35] != "2024-06-30" {
		t.Fatalf("expected 2024-06-30 at index 35; got %q", grid[35])
	}
}

func TestEventsForDayOrdering(t *testing.T) {
	t.Parallel()

	events := []model.Event{
		{ID: "a", Date: "2024-06-01", AllDay: false, Time: "09:00"},
		{ID: "b", Date: "2024-06-01", AllDay: true},
		{ID: "c", Date: "2024-06-01", AllDay: false, Time: "08:00"},
		{ID: "d", Date: "2024-06-02", AllDay: true},
	}
	got := EventsForDay(events, "2024-06-01")
	want := []string{"b", "c", "a"}
	if len(got) != len(want) {
		t.Fatalf("expected %d events; got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s; got %s", i, id, got[i].ID)
		}
	}
}

func TestEventsForDayStable(t *testing.T) {
	t.Parallel()

	events := []model.Event{
		{ID: "x", Date: "2024-06-01", AllDay: true},
		{ID: "y", Date: "2024-06-01", AllDay: true},
		{ID: "z", Date: "2024-06-01", AllDay: false, Time: "10:00"},
		{ID: "w", Date: "2024-06-01", AllDay: false, Time: "10:00"},
	}
	got := EventsForDay(events, "2024-06-01")
	order := []string{"x", "y", "z", "w"}
	for i, id := range order {
		if got[i].ID != id {
			t.Fatalf("equal-slot events should keep input order; position %d got %s", i, got[i].ID)
		}
	}
}

func TestRollingWindowBoundary(t *testing.T) {
	day7, err := AddDays(Today(), 7)
	if err != nil {
		t.Fatalf("AddDays: %v", err)
	}
	day8, err := AddDays(Today(), 8)
	if err != nil {
		t.Fatalf("AddDays: %v", err)
	}

	events := []model.Event{
		{ID: "in", Date: day7},
		{ID: "out", Date: day8},
	}
	got := Rolling(events, 7)
	if len(got) != 1 || got[0].ID != "in" {
		t.Fatalf("window=7: expected only the day-7 event; got %v", got)
	}
}

func TestRollingUnbounded(t *testing.T) {
	far, err := AddDays(Today(), 365)
	if err != nil {
		t.Fatalf("AddDays: %v", err)
	}
	events := []model.Event{
		{ID: "past", Date: "2020-01-01"},
		{ID: "far", Date: far},
	}
	got := Rolling(events, WindowAll)
	if len(got) != 2 {
		t.Fatalf("unbounded window should pass everything; got %d", len(got))
	}
	if got[0].ID != "past" || got[1].ID != "far" {
		t.Fatalf("expected date-ascending order; got %s, %s", got[0].ID, got[1].ID)
	}
}

func TestRollingSortsByDateThenTime(t *testing.T) {
	events := []model.Event{
		{ID: "b", Date: "2020-01-02", AllDay: false, Time: "09:00"},
		{ID: "c", Date: "2020-01-02", AllDay: true},
		{ID: "a", Date: "2020-01-01"},
	}
	got := Rolling(events, WindowAll)
	want := []string{"a", "c", "b"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s; got %s", i, id, got[i].ID)
		}
	}
}

func TestExpandClosedInterval(t *testing.T) {
	t.Parallel()

	dates, err := Expand("2024-06-01", "2024-06-03", true)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	want := []string{"2024-06-01", "2024-06-02", "2024-06-03"}
	if len(dates) != len(want) {
		t.Fatalf("expected %d dates; got %d", len(want), len(dates))
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("position %d: expected %s; got %s", i, want[i], dates[i])
		}
	}
}

func TestExpandSingleFallbacks(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		start string
		end   string
		multi bool
	}{
		{name: "multi disabled", start: "2024-06-05", end: "2024-06-10", multi: false},
		{name: "end before start", start: "2024-06-05", end: "2024-06-01", multi: true},
		{name: "no end date", start: "2024-06-05", end: "", multi: true},
	}
	for _, tc := range cases {
		dates, err := Expand(tc.start, tc.end, tc.multi)
		if err != nil {
			t.Fatalf("%s: Expand: %v", tc.name, err)
		}
		if len(dates) != 1 || dates[0] != tc.start {
			t.Fatalf("%s: expected single date %s; got %v", tc.name, tc.start, dates)
		}
	}
}

func TestExpandAcrossMonthBoundary(t *testing.T) {
	t.Parallel()

	dates, err := Expand("2024-02-28", "2024-03-01", true)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	// 2024 is a leap year.
	want := []string{"2024-02-28", "2024-02-29", "2024-03-01"}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("position %d: expected %s; got %s", i, want[i], dates[i])
		}
	}
}

func TestExpandRejectsBadStart(t *testing.T) {
	t.Parallel()

	if _, err := Expand("not-a-date", "", false); err == nil {
		t.Fatalf("expected error for malformed start date")
	}
}
