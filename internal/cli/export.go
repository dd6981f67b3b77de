package cli

import (
	"marlow-cli/internal/export"
	"marlow-cli/internal/schedule"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write markdown pages for sharing",
	}

	var clientTo, clientID string
	var clientOverwrite bool
	client := &cobra.Command{
		Use:   "client",
		Short: "Write one client brief as markdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id, err := resolveClientID(db, clientID)
			if err != nil {
				return writeErr(cmd, err)
			}
			res, err := export.WriteClient(db, id, clientTo, export.WriteOptions{Overwrite: clientOverwrite})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": res})
		},
	}
	client.Flags().StringVar(&clientID, "client", "", "Client id (default: active client)")
	client.Flags().StringVar(&clientTo, "to", "", "Output directory")
	client.Flags().BoolVar(&clientOverwrite, "overwrite", false, "Replace existing files")
	_ = client.MarkFlagRequired("to")

	var schedTo string
	var schedDays int
	var schedAll, schedOverwrite bool
	sched := &cobra.Command{
		Use:   "schedule",
		Short: "Write the rolling schedule as markdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			window := schedDays
			if schedAll {
				window = schedule.WindowAll
			}
			res, err := export.WriteSchedule(db, window, schedTo, export.WriteOptions{Overwrite: schedOverwrite})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": res})
		},
	}
	sched.Flags().StringVar(&schedTo, "to", "", "Output directory")
	sched.Flags().IntVar(&schedDays, "days", 30, "Window size in days from today")
	sched.Flags().BoolVar(&schedAll, "all", false, "No cutoff: include every entry")
	sched.Flags().BoolVar(&schedOverwrite, "overwrite", false, "Replace existing files")
	_ = sched.MarkFlagRequired("to")

	cmd.AddCommand(client, sched)
	return cmd
}
