package cli

import (
	"marlow-cli/internal/backup"

	"github.com/spf13/cobra"
)

func newBackupCmd(app *App) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Commit a snapshot of the store into the surrounding git repo",
		Long: `Commit the store documents to git when the store directory lives inside
a repository. Outside a repo this is a no-op. Derived files (tmp writes,
SQLite WAL sidecars) are never staged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			committed, err := backup.Snapshot(cmd.Context(), s.Dir, message)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"committed": committed,
			}})
		},
	}
	cmd.Flags().StringVar(&message, "message", "", "Commit message (default: timestamped)")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show git status for the store directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st, err := backup.GetStatus(cmd.Context(), s.Dir)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": st})
		},
	}
	cmd.AddCommand(status)

	return cmd
}
