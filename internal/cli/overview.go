package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"marlow-cli/internal/schedule"
	"marlow-cli/internal/views"

	"github.com/spf13/cobra"
)

func newOverviewCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Headline counters plus today's entries across all clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"totals": views.ComputeTotals(db.Clients, db.Events),
				"today":  views.Today(db.Clients, db.Events),
			}})
		},
	}
	return cmd
}

func newCalendarCmd(app *App) *cobra.Command {
	var monthFlag, clientID string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Month grid of entries (all clients, or one with --client)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			year, month, err := parseMonthFlag(monthFlag)
			if err != nil {
				return writeErr(cmd, err)
			}

			events := db.Events
			if clientID != "" {
				events = db.EventsForClient(clientID)
			}
			grid, days := views.Month(db.Clients, events, year, month)

			if asJSON {
				return writeOut(cmd, app, map[string]any{"data": map[string]any{
					"year":  year,
					"month": int(month),
					"grid":  grid,
					"days":  days,
				}})
			}
			fmt.Fprint(cmd.OutOrStdout(), renderMonth(year, month, grid, days))
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "Month YYYY-MM (default: current month)")
	cmd.Flags().StringVar(&clientID, "client", "", "Limit to one client's entries")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the grid as JSON instead of rendering it")
	return cmd
}

func newScheduleCmd(app *App) *cobra.Command {
	var days int
	var all bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Upcoming entries across all clients in a rolling window",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			window := days
			if all {
				window = schedule.WindowAll
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"windowDays": window,
				"entries":    views.Schedule(db.Clients, db.Events, window),
			}})
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "Window size in days from today")
	cmd.Flags().BoolVar(&all, "all", false, "No cutoff: list every entry")
	return cmd
}

// parseMonthFlag parses "YYYY-MM", defaulting to the current local month.
func parseMonthFlag(s string) (int, time.Month, error) {
	if strings.TrimSpace(s) == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return y, time.Month(m), nil
}

// renderMonth prints the grid as plain Sun..Sat rows with per-day entry
// lines underneath. The TUI owns the colored rendering; this stays
// pipe-friendly.
func renderMonth(year int, month time.Month, grid []string, days map[string][]views.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", month, year)
	b.WriteString("Sun    Mon    Tue    Wed    Thu    Fri    Sat\n")
	for row := 0; row < len(grid)/7; row++ {
		for col := 0; col < 7; col++ {
			iso := grid[row*7+col]
			cell := "  "
			if iso != "" {
				cell = iso[8:]
				if n := len(days[iso]); n > 0 {
					cell = fmt.Sprintf("%s*%d", cell, n)
				}
			}
			fmt.Fprintf(&b, "%-7s", cell)
		}
		b.WriteString("\n")
	}
	for _, iso := range grid {
		for _, e := range days[iso] {
			slot := "all day"
			if !e.AllDay && e.Time != "" {
				slot = e.Time
			}
			fmt.Fprintf(&b, "%s  %-8s %s: %s [%s]\n", iso, slot, e.ClientName, e.Title, e.Phase)
		}
	}
	return b.String()
}
