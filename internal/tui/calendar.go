package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"marlow-cli/internal/schedule"
	"marlow-cli/internal/views"
)

const maxCellEntries = 3

// renderCalendar draws a month as seven fixed-width columns. Filler cells
// render blank; today gets the highlighted day number; each day shows up to
// maxCellEntries entries, truncated to the cell width, colored by client.
func renderCalendar(width int, year int, month time.Month, grid []string, days map[string][]views.Entry) string {
	cellW := width/7 - 1
	if cellW < 8 {
		cellW = 8
	}

	var b strings.Builder
	b.WriteString(styleHeader.Render(fmt.Sprintf("%s %d", month, year)))
	b.WriteString("\n")

	for _, wd := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		b.WriteString(styleMuted.Render(pad(wd, cellW)))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	today := schedule.Today()
	rows := len(grid) / 7
	for row := 0; row < rows; row++ {
		// Each week renders as cell columns joined horizontally so multi-line
		// day content stays aligned.
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			iso := grid[row*7+col]
			cells = append(cells, renderDayCell(iso, cellW, iso == today, days[iso]))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, join(cells, " ")...))
		b.WriteString("\n")
	}
	return b.String()
}

func renderDayCell(iso string, w int, isToday bool, entries []views.Entry) string {
	lines := make([]string, 0, maxCellEntries+1)
	if iso == "" {
		lines = append(lines, pad("", w))
	} else {
		day := strings.TrimPrefix(iso[8:], "0")
		if isToday {
			lines = append(lines, styleToday.Render(pad(day, w)))
		} else {
			lines = append(lines, pad(day, w))
		}
		for i, e := range entries {
			if i == maxCellEntries {
				break
			}
			if i == maxCellEntries-1 && len(entries) > maxCellEntries {
				lines = append(lines, styleMuted.Render(pad(fmt.Sprintf("+%d more", len(entries)-i), w)))
				break
			}
			title := ansi.Truncate(e.Title, w-2, "…")
			lines = append(lines, phaseTag(e.Phase)+" "+clientStyle(e.ClientColor).Render(title))
		}
	}
	for len(lines) < maxCellEntries+1 {
		lines = append(lines, pad("", w))
	}
	return lipgloss.NewStyle().Width(w).Render(strings.Join(lines, "\n"))
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s[:w]
	}
	return s + strings.Repeat(" ", w-len(s))
}

// join interleaves a separator column between cells for JoinHorizontal.
func join(cells []string, sep string) []string {
	out := make([]string, 0, len(cells)*2)
	for i, c := range cells {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, c)
	}
	return out
}
