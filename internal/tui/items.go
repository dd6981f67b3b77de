package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"marlow-cli/internal/model"
	"marlow-cli/internal/schedule"
	"marlow-cli/internal/views"
)

// clientRow adapts a client (plus its entry count) to bubbles/list.
type clientRow struct {
	client  model.Client
	entries int
	active  bool
}

func (r clientRow) Title() string {
	marker := "  "
	if r.active {
		marker = "* "
	}
	return marker + clientStyle(r.client.Color).Render("●") + " " + r.client.Name
}

func (r clientRow) Description() string {
	return fmt.Sprintf("%d entries · %s · onboarded %s",
		r.entries, r.client.Status, schedule.FormatDate(r.client.OnboardDate))
}

func (r clientRow) FilterValue() string { return r.client.Name }

// entryRow adapts an enriched schedule entry to bubbles/list.
type entryRow struct {
	entry views.Entry
}

func (r entryRow) Title() string {
	return clientStyle(r.entry.ClientColor).Render("●") + " " +
		r.entry.ClientName + " · " + r.entry.Title + " " + phaseTag(r.entry.Phase)
}

func (r entryRow) Description() string {
	slot := "all day"
	if !r.entry.AllDay && r.entry.Time != "" {
		slot = r.entry.Time
	}
	return fmt.Sprintf("%s · %s · %s", schedule.FormatDate(r.entry.Date), slot, r.entry.Type)
}

func (r entryRow) FilterValue() string { return r.entry.ClientName + " " + r.entry.Title }

func newList(title, statusbar string) list.Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	l.SetStatusBarItemName(statusbar, statusbar+"s")
	return l
}
