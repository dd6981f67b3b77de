package tui

import (
	"testing"
	"time"

	"marlow-cli/internal/model"
	"marlow-cli/internal/store"
)

func TestPresetIndex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		key  string
		want int
	}{
		{"1", 0},
		{"3", 2},
		{"6", 5},
		{"0", -1},
		{"7", -1},
		{"a", -1},
		{"", -1},
		{"12", -1},
	}
	for _, tc := range cases {
		if got := presetIndex(tc.key); got != tc.want {
			t.Fatalf("presetIndex(%q) = %d, want %d", tc.key, got, tc.want)
		}
	}
}

func TestMonthNavigation(t *testing.T) {
	t.Parallel()

	if y, m := prevMonth(2024, time.January); y != 2023 || m != time.December {
		t.Fatalf("prevMonth(2024, Jan) = %d, %v", y, m)
	}
	if y, m := prevMonth(2024, time.June); y != 2024 || m != time.May {
		t.Fatalf("prevMonth(2024, Jun) = %d, %v", y, m)
	}
	if y, m := nextMonth(2024, time.December); y != 2025 || m != time.January {
		t.Fatalf("nextMonth(2024, Dec) = %d, %v", y, m)
	}
	if y, m := nextMonth(2024, time.June); y != 2024 || m != time.July {
		t.Fatalf("nextMonth(2024, Jun) = %d, %v", y, m)
	}
}

func TestNewAppModelPopulatesLists(t *testing.T) {
	s := store.Store{Dir: t.TempDir()}
	db := &store.DB{
		Clients: []model.Client{
			{ID: "client-a", Name: "Acme", Color: model.Palette[0], Todos: []model.Todo{}},
		},
		Events: []model.Event{
			{ID: "evt-1", ClientID: "client-a", Title: "Shoot", Date: "2099-01-01"},
		},
		ActiveClientID: "client-a",
	}

	m := newAppModel(s, db)
	if m.view != viewOverview {
		t.Fatalf("expected overview as the initial view")
	}
	if got := len(m.clientsList.Items()); got != 1 {
		t.Fatalf("expected 1 client row; got %d", got)
	}
	// Default 30-day window excludes the far-future event.
	if got := len(m.scheduleList.Items()); got != 0 {
		t.Fatalf("expected empty schedule within the default window; got %d", got)
	}

	m.windowDays = 0
	m.refresh()
	if got := len(m.scheduleList.Items()); got != 1 {
		t.Fatalf("unbounded window should include the event; got %d", got)
	}
}
