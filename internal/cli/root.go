package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"marlow-cli/internal/format"
	"marlow-cli/internal/store"
	"marlow-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "marlow",
		Short:        "Marlow content-production tracker (local-first CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  marlow

  # Scriptable commands
  marlow clients list
  marlow events add --title "Shoot" --date 2026-09-05 --all-day
  marlow schedule --days 7

  # Direct client lookup (shortcut for: marlow clients show <client-id>)
  marlow client-abc123
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("MARLOW_DIR", ""), "Path to store dir (default: discovered .marlow or ./.marlow)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newStatusCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newClientsCmd(app))
	cmd.AddCommand(newEventsCmd(app))
	cmd.AddCommand(newOverviewCmd(app))
	cmd.AddCommand(newCalendarCmd(app))
	cmd.AddCommand(newScheduleCmd(app))
	cmd.AddCommand(newLogoCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newBackupCmd(app))

	return cmd
}

func runTUI(app *App) error {
	db, s, err := loadDB(app)
	if err != nil {
		return err
	}
	return tui.Run(s, db)
}

func loadDB(app *App) (*store.DB, store.Store, error) {
	dir := app.Dir
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return nil, store.Store{}, err
		}
		dir = d
		app.Dir = dir
	}

	s := store.Store{Dir: dir}
	db, err := s.Load()
	if err != nil {
		return nil, s, err
	}
	return db, s, nil
}

// resolveClientID picks the explicit id when given, else the active client.
func resolveClientID(db *store.DB, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if db.ActiveClientID != "" {
		return db.ActiveClientID, nil
	}
	return "", errors.New("no active client; run `marlow clients create --name ...` or pass --client")
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
