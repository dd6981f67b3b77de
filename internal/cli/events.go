package cli

import (
	"marlow-cli/internal/model"
	"marlow-cli/internal/mutate"

	"github.com/spf13/cobra"
)

func newEventsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Scheduled entry commands",
	}
	cmd.AddCommand(newEventsAddCmd(app))
	cmd.AddCommand(newEventsListCmd(app))
	cmd.AddCommand(newEventsShowCmd(app))
	cmd.AddCommand(newEventsUpdateCmd(app))
	cmd.AddCommand(newEventsDeleteCmd(app))
	return cmd
}

func newEventsAddCmd(app *App) *cobra.Command {
	var clientID, title, typ, date, end, timeOfDay, phase string
	var everyDay, allDay bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an entry, or one per day across a date range",
		Long: `Create a scheduled entry for a client.

With --end and --every-day, one independent entry is created per calendar
day from --date through --end inclusive. Each gets its own id; editing one
later never affects the others.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			cid, err := resolveClientID(db, clientID)
			if err != nil {
				return writeErr(cmd, err)
			}

			created, err := mutate.CreateEvents(db, s, mutate.EventSpec{
				ClientID: cid,
				Type:     model.EntryType(typ),
				Title:    title,
				Date:     date,
				EndDate:  end,
				Multi:    everyDay,
				AllDay:   allDay,
				Time:     timeOfDay,
				Phase:    model.Phase(phase),
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			s.Save(db)
			return writeOut(cmd, app, map[string]any{"data": created})
		},
	}

	cmd.Flags().StringVar(&clientID, "client", "", "Client id (default: active client)")
	cmd.Flags().StringVar(&title, "title", "", "Entry title")
	cmd.Flags().StringVar(&typ, "type", "task", "Entry type (task|event|item)")
	cmd.Flags().StringVar(&date, "date", "", "Date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&end, "end", "", "End date YYYY-MM-DD for --every-day ranges")
	cmd.Flags().BoolVar(&everyDay, "every-day", false, "Create one entry per day from --date through --end")
	cmd.Flags().BoolVar(&allDay, "all-day", false, "All-day entry (ignores --time)")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "Time HH:MM")
	cmd.Flags().StringVar(&phase, "phase", "scripting", "Phase (scripting|filming)")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newEventsListCmd(app *App) *cobra.Command {
	var clientID, date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries, optionally filtered by client or date",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			out := make([]model.Event, 0, len(db.Events))
			for _, ev := range db.Events {
				if clientID != "" && ev.ClientID != clientID {
					continue
				}
				if date != "" && ev.Date != date {
					continue
				}
				out = append(out, ev)
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}

	cmd.Flags().StringVar(&clientID, "client", "", "Filter by client id")
	cmd.Flags().StringVar(&date, "date", "", "Filter by date YYYY-MM-DD")
	return cmd
}

func newEventsShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <event-id>",
		Short: "Show one entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			ev, ok := db.FindEvent(args[0])
			if !ok {
				return writeErr(cmd, mutate.NotFoundError{Kind: "event", ID: args[0]})
			}
			return writeOut(cmd, app, map[string]any{"data": ev})
		},
	}
	return cmd
}

func newEventsUpdateCmd(app *App) *cobra.Command {
	var clientID, title, typ, date, timeOfDay, phase string
	var allDay bool

	cmd := &cobra.Command{
		Use:   "update <event-id>",
		Short: "Update one entry (only the flags you pass change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			var patch mutate.EventPatch
			if cmd.Flags().Changed("client") {
				patch.ClientID = &clientID
			}
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("type") {
				t := model.EntryType(typ)
				patch.Type = &t
			}
			if cmd.Flags().Changed("date") {
				patch.Date = &date
			}
			if cmd.Flags().Changed("time") {
				patch.Time = &timeOfDay
			}
			if cmd.Flags().Changed("all-day") {
				patch.AllDay = &allDay
			}
			if cmd.Flags().Changed("phase") {
				p := model.Phase(phase)
				patch.Phase = &p
			}

			if err := mutate.UpdateEvent(db, args[0], patch); err != nil {
				return writeErr(cmd, err)
			}
			s.Save(db)
			ev, _ := db.FindEvent(args[0])
			return writeOut(cmd, app, map[string]any{"data": ev})
		},
	}

	cmd.Flags().StringVar(&clientID, "client", "", "Owning client id")
	cmd.Flags().StringVar(&title, "title", "", "Entry title")
	cmd.Flags().StringVar(&typ, "type", "", "Entry type (task|event|item)")
	cmd.Flags().StringVar(&date, "date", "", "Date YYYY-MM-DD")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "Time HH:MM")
	cmd.Flags().BoolVar(&allDay, "all-day", false, "All-day entry")
	cmd.Flags().StringVar(&phase, "phase", "", "Phase (scripting|filming)")
	return cmd
}

func newEventsDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <event-id>",
		Short: "Delete one entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := mutate.DeleteEvent(db, args[0]); err != nil {
				return writeErr(cmd, err)
			}
			s.Save(db)
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": args[0]}})
		},
	}
	return cmd
}
