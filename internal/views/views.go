// Package views computes read-only projections over the client and event
// collections. Every function here is pure: (clients, events, params) in,
// derived structure out, sources never mutated.
package views

import (
	"time"

	"marlow-cli/internal/model"
	"marlow-cli/internal/schedule"
)

// Entry is an event enriched with its owning client's display name and
// accent color. Dangling client references resolve to the neutral fallback
// rather than failing.
type Entry struct {
	model.Event
	ClientName  string `json:"clientName"`
	ClientColor string `json:"clientColor"`
}

// Totals are the overview headline counters.
type Totals struct {
	Clients    int `json:"clients"`
	Events     int `json:"events"`
	TodayCount int `json:"today"`
}

func clientLookup(clients []model.Client) map[string]model.Client {
	m := make(map[string]model.Client, len(clients))
	for _, c := range clients {
		m[c.ID] = c
	}
	return m
}

func enrich(byID map[string]model.Client, events []model.Event) []Entry {
	out := make([]Entry, 0, len(events))
	for _, ev := range events {
		e := Entry{Event: ev, ClientName: model.UnknownClientName, ClientColor: model.NeutralColor}
		if c, ok := byID[ev.ClientID]; ok {
			e.ClientName = c.Name
			e.ClientColor = c.Color
		}
		out = append(out, e)
	}
	return out
}

// CountsByClient maps clientId -> number of events referencing it.
func CountsByClient(events []model.Event) map[string]int {
	counts := make(map[string]int)
	for _, ev := range events {
		counts[ev.ClientID]++
	}
	return counts
}

// Today returns the entries dated today, in per-day order.
func Today(clients []model.Client, events []model.Event) []Entry {
	day := schedule.EventsForDay(events, schedule.Today())
	return enrich(clientLookup(clients), day)
}

// ComputeTotals derives the overview counters.
func ComputeTotals(clients []model.Client, events []model.Event) Totals {
	return Totals{
		Clients:    len(clients),
		Events:     len(events),
		TodayCount: len(schedule.EventsForDay(events, schedule.Today())),
	}
}

// Month buckets a month's entries per day. The returned grid is the fixed
// Sun..Sat layout from schedule.MonthGrid; days holds the ordered, enriched
// entries for each non-filler cell that has any.
func Month(clients []model.Client, events []model.Event, year int, month time.Month) (grid []string, days map[string][]Entry) {
	grid = schedule.MonthGrid(year, month)
	byID := clientLookup(clients)
	days = make(map[string][]Entry)
	for _, iso := range grid {
		if iso == "" {
			continue
		}
		if day := schedule.EventsForDay(events, iso); len(day) > 0 {
			days[iso] = enrich(byID, day)
		}
	}
	return grid, days
}

// Schedule is the cross-client rolling view: events within
// [today, today+windowDays] (windowDays <= 0 means unbounded), date-ordered
// and enriched.
func Schedule(clients []model.Client, events []model.Event, windowDays int) []Entry {
	return enrich(clientLookup(clients), schedule.Rolling(events, windowDays))
}
