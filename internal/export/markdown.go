package export

import (
	"bytes"
	"fmt"
	"strings"

	"marlow-cli/internal/schedule"
	"marlow-cli/internal/store"
	"marlow-cli/internal/views"
)

// RenderClientMarkdown produces a one-page client brief: meta, socials,
// to-dos, and the client's entries in date order.
func RenderClientMarkdown(db *store.DB, clientID string) (string, error) {
	if db == nil {
		return "", fmt.Errorf("missing db")
	}
	c, ok := db.FindClient(strings.TrimSpace(clientID))
	if !ok {
		return "", fmt.Errorf("client not found: %s", clientID)
	}

	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	writeLn("# " + strings.TrimSpace(c.Name))
	writeLn("")
	writeLn("## Meta")
	writeLn("")
	writeLn("- ID: " + c.ID)
	writeLn("- Onboarded: " + schedule.FormatDate(c.OnboardDate))
	writeLn("- Status: " + string(c.Status))
	writeLn("- Color: " + c.Color)

	socials := [][2]string{
		{"Instagram", c.Socials.Instagram},
		{"TikTok", c.Socials.TikTok},
		{"YouTube", c.Socials.YouTube},
		{"Other", c.Socials.Other},
	}
	wroteHeading := false
	for _, s := range socials {
		if strings.TrimSpace(s[1]) != "" {
			if !wroteHeading {
				writeLn("")
				writeLn("## Socials")
				writeLn("")
				wroteHeading = true
			}
			writeLn("- " + s[0] + ": " + strings.TrimSpace(s[1]))
		}
	}

	if len(c.Todos) > 0 {
		writeLn("")
		writeLn("## To-dos")
		writeLn("")
		for _, td := range c.Todos {
			writeLn("- [ ] " + td.Text)
		}
	}

	entries := schedule.Rolling(db.EventsForClient(c.ID), schedule.WindowAll)
	if len(entries) > 0 {
		writeLn("")
		writeLn("## Entries")
		writeLn("")
		for _, ev := range entries {
			slot := "all day"
			if !ev.AllDay && ev.Time != "" {
				slot = ev.Time
			}
			writeLn(fmt.Sprintf("- %s (%s): %s [%s/%s]",
				schedule.FormatDate(ev.Date), slot, ev.Title, ev.Type, ev.Phase))
		}
	}

	return buf.String(), nil
}

// RenderScheduleMarkdown produces the cross-client rolling schedule grouped
// by day. windowDays <= 0 lists everything.
func RenderScheduleMarkdown(db *store.DB, windowDays int) (string, error) {
	if db == nil {
		return "", fmt.Errorf("missing db")
	}
	entries := views.Schedule(db.Clients, db.Events, windowDays)

	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	if windowDays > 0 {
		writeLn(fmt.Sprintf("# Schedule (next %d days)", windowDays))
	} else {
		writeLn("# Schedule (all)")
	}

	if len(entries) == 0 {
		writeLn("")
		writeLn("No entries.")
		return buf.String(), nil
	}

	day := ""
	for _, e := range entries {
		if e.Date != day {
			day = e.Date
			writeLn("")
			writeLn("## " + schedule.FormatDate(day))
			writeLn("")
		}
		slot := "all day"
		if !e.AllDay && e.Time != "" {
			slot = e.Time
		}
		writeLn(fmt.Sprintf("- %s  %s: %s [%s]", slot, e.ClientName, e.Title, e.Phase))
	}

	return buf.String(), nil
}
