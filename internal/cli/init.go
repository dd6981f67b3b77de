package cli

import (
	"marlow-cli/internal/store"
	"marlow-cli/internal/views"

	"github.com/spf13/cobra"
)

func newInitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the store directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			// First save materializes the key documents on disk.
			s.Save(db)
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"dir":     s.Dir,
				"backend": store.StoreBackend(),
			}})
		},
	}
	return cmd
}

func newStatusCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show store location, backend, and collection sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"dir":            s.Dir,
				"backend":        store.StoreBackend(),
				"activeClientId": db.ActiveClientID,
				"totals":         views.ComputeTotals(db.Clients, db.Events),
			}})
		},
	}
	return cmd
}
